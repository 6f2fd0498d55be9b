package card

import "fmt"

// Suit of a regular card. Declaration order is the tie-break order used
// when comparing cards of equal rank.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	}
	return "?"
}

// Rank of a regular card, Ace low.
type Rank int

const (
	Ace   Rank = 1
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return fmt.Sprintf("%d", int(r))
}

// JokerColor distinguishes the two jokers. Black sorts before Red.
type JokerColor int

const (
	Black JokerColor = iota
	Red
)

// JokerValue is the value of either joker, used as its sale price and
// as the base of the joker destroy refund.
const JokerValue = 15

type kind int

const (
	kindRegular kind = iota
	kindJoker
)

// Card is an immutable playing card: either a ranked suit card or a
// joker. The zero value is the Ace of Hearts; build cards with Of and
// JokerOf.
type Card struct {
	kind  kind
	suit  Suit
	rank  Rank
	color JokerColor
}

// Of returns the regular card with the given suit and rank.
func Of(s Suit, r Rank) Card {
	return Card{kind: kindRegular, suit: s, rank: r}
}

// JokerOf returns the joker of the given color.
func JokerOf(c JokerColor) Card {
	return Card{kind: kindJoker, color: c}
}

func (c Card) IsJoker() bool { return c.kind == kindJoker }

// Suit is only meaningful for regular cards.
func (c Card) Suit() Suit { return c.suit }

// Rank is only meaningful for regular cards.
func (c Card) Rank() Rank { return c.rank }

// Color is only meaningful for jokers.
func (c Card) Color() JokerColor { return c.color }

// IsMonster reports whether the card is a Clubs or Spades regular card.
func (c Card) IsMonster() bool {
	return c.kind == kindRegular && (c.suit == Clubs || c.suit == Spades)
}

// Value is the card's numeric worth: the rank for regular cards,
// JokerValue for jokers.
func (c Card) Value() int {
	if c.kind == kindJoker {
		return JokerValue
	}
	return int(c.rank)
}

// Compare defines the total order over cards: regular cards by rank
// then suit, every regular card below every joker, Black joker below
// Red. Returns -1, 0 or 1.
func (c Card) Compare(o Card) int {
	if c.kind != o.kind {
		if c.kind == kindRegular {
			return -1
		}
		return 1
	}
	if c.kind == kindJoker {
		return cmpInt(int(c.color), int(o.color))
	}
	if d := cmpInt(int(c.rank), int(o.rank)); d != 0 {
		return d
	}
	return cmpInt(int(c.suit), int(o.suit))
}

// Less reports whether c sorts before o under Compare.
func (c Card) Less(o Card) bool { return c.Compare(o) < 0 }

func (c Card) String() string {
	if c.kind == kindJoker {
		return "Jo"
	}
	return c.rank.String() + c.suit.String()
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
