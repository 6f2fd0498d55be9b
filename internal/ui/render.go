package ui

import (
	"fmt"
	"io"

	"deckdelve/internal/game"
	"deckdelve/internal/telemetry"
)

// Render draws the screen for the game's current state, ending with
// the command hints. The caller prints the prompt.
func Render(w io.Writer, g *game.Game) {
	switch g.State() {
	case game.StateFloor:
		renderFloor(w, g)
	case game.StateShop:
		renderShop(w, g)
	case game.StateLost:
		fmt.Fprintln(w, lostHeaderStyle.Sprint("===== Game over ====="))
		fmt.Fprintln(w, commandStyle.Sprint("Commands: retry, quit"))
	case game.StateWon:
		fmt.Fprintln(w, wonHeaderStyle.Sprint("===== You win! ====="))
		fmt.Fprintln(w, commandStyle.Sprint("Commands: retry, quit"))
	}
}

func renderFloor(w io.Writer, g *game.Game) {
	fmt.Fprintln(w, dungeonHeaderStyle.Sprint("===== Dungeon ====="))
	fmt.Fprintf(w, "%d card(s) left in Dungeon\n", g.DungeonLen())

	health := fmt.Sprintf("%d/12 HP", g.Health())
	switch {
	case g.Health() <= 4:
		health = badStyle.Sprint(health)
	case g.Health() <= 8:
		health = okStyle.Sprint(health)
	default:
		health = goodStyle.Sprint(health)
	}
	fmt.Fprintf(w, "%s, %s\n", health, moneyStyle.Sprintf("$%d", g.Money()))

	fmt.Fprint(w, "Room:")
	for _, c := range g.Room() {
		fmt.Fprintf(w, " %s", CardLabel(c))
	}
	fmt.Fprintln(w)

	if g.WeaponDamage() > 0 {
		fmt.Fprintf(w, "Weapon: %s", diamondsStyle.Sprintf("%d♦", g.WeaponDamage()))
		if g.WeaponDegraded() {
			fmt.Fprintf(w, " (%d durability)", g.WeaponDurability())
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, commandStyle.Sprint("Commands: use [card 1-4], flee, quit"))
}

func renderShop(w io.Writer, g *game.Game) {
	fmt.Fprintln(w, shopHeaderStyle.Sprint("===== Shop ====="))
	fmt.Fprintln(w, moneyStyle.Sprintf("$%d", g.Money()))

	if stock := g.ShopStock(); len(stock) > 0 {
		fmt.Fprint(w, "On sale:")
		for _, c := range stock {
			fmt.Fprintf(w, " %s-%s", CardLabel(c), moneyStyle.Sprintf("$%d", c.Value()))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, commandStyle.Sprint("Commands: buy [card 1-4], continue, quit"))
}

// RenderSummary prints the end-of-run statistics.
func RenderSummary(w io.Writer, stats telemetry.Stats) {
	fmt.Fprintln(w, notificationStyle.Sprintf(
		"Run %s: %d floor(s), %d monster(s) fought, %d damage taken, %d HP healed",
		shortRunID(stats.RunID), stats.FloorsStarted, stats.MonstersFought,
		stats.DamageTaken, stats.HealingDone))
	fmt.Fprintln(w, notificationStyle.Sprintf(
		"Gold: +$%d earned, -$%d spent on %d card(s); fled %d time(s)",
		stats.GoldEarned, stats.GoldSpent, stats.CardsBought, stats.Flees))
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
