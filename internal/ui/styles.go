package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"deckdelve/internal/card"
	"deckdelve/internal/game"
)

var (
	notificationStyle = color.RGB(110, 110, 110).Add(color.Italic)
	badStyle          = color.New(color.FgRed)
	okStyle           = color.New(color.FgYellow)
	goodStyle         = color.New(color.FgGreen)
	moneyStyle        = color.RGB(200, 150, 25)
	commandStyle      = color.RGB(110, 110, 110)

	heartsStyle     = color.RGB(200, 0, 0)
	diamondsStyle   = color.RGB(200, 75, 25)
	clubsStyle      = color.RGB(25, 100, 25)
	spadesStyle     = color.RGB(25, 25, 100)
	blackJokerStyle = color.RGB(150, 25, 150)
	redJokerStyle   = color.RGB(255, 25, 75)

	dungeonHeaderStyle = color.RGB(0, 50, 75).Add(color.Bold)
	shopHeaderStyle    = color.RGB(100, 50, 0).Add(color.Bold)
	lostHeaderStyle    = color.New(color.FgRed, color.Bold)
	wonHeaderStyle     = color.New(color.FgGreen, color.Bold)
)

// Styled renders a status line in its category's color.
func Styled(cat game.Category, text string) string {
	switch cat {
	case game.CatNotification:
		return notificationStyle.Sprint(text)
	case game.CatBad:
		return badStyle.Sprint(text)
	case game.CatOk:
		return okStyle.Sprint(text)
	case game.CatGood:
		return goodStyle.Sprint(text)
	case game.CatMoney:
		return moneyStyle.Sprint(text)
	}
	return text
}

// CardLabel renders a card glyph in its suit color.
func CardLabel(c card.Card) string {
	if c.IsJoker() {
		if c.Color() == card.Black {
			return blackJokerStyle.Sprint(c)
		}
		return redJokerStyle.Sprint(c)
	}
	switch c.Suit() {
	case card.Hearts:
		return heartsStyle.Sprint(c)
	case card.Diamonds:
		return diamondsStyle.Sprint(c)
	case card.Clubs:
		return clubsStyle.Sprint(c)
	case card.Spades:
		return spadesStyle.Sprint(c)
	}
	return c.String()
}

// ColorReporter prints the engine's status lines, styled by category.
// It is the game.Reporter used for a live session.
type ColorReporter struct {
	Out io.Writer
}

func (r ColorReporter) Report(cat game.Category, line string) {
	fmt.Fprintln(r.Out, Styled(cat, line))
}
