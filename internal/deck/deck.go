package deck

import (
	"sort"

	"deckdelve/internal/card"
)

// Pile is an ordered pile of cards. The front (index 0) is the next
// card drawn; new cards are pushed onto the back.
type Pile []card.Card

// DrawFront removes and returns the front card. ok is false when the
// pile is empty.
func (p *Pile) DrawFront() (c card.Card, ok bool) {
	if len(*p) == 0 {
		return card.Card{}, false
	}
	c = (*p)[0]
	*p = (*p)[1:]
	return c, true
}

// RemoveAt removes and returns the card at index i. ok is false when i
// is out of range.
func (p *Pile) RemoveAt(i int) (c card.Card, ok bool) {
	if i < 0 || i >= len(*p) {
		return card.Card{}, false
	}
	c = (*p)[i]
	*p = append((*p)[:i], (*p)[i+1:]...)
	return c, true
}

// Push appends cards to the back of the pile.
func (p *Pile) Push(cards ...card.Card) {
	*p = append(*p, cards...)
}

// TakeAll empties the pile and returns its cards in order.
func (p *Pile) TakeAll() []card.Card {
	cards := *p
	*p = nil
	return cards
}

// Any reports whether some card in the pile satisfies pred.
func (p Pile) Any(pred func(card.Card) bool) bool {
	for _, c := range p {
		if pred(c) {
			return true
		}
	}
	return false
}

// Cards returns a copy of the pile for display and inspection.
func (p Pile) Cards() []card.Card {
	out := make([]card.Card, len(p))
	copy(out, p)
	return out
}

// Build returns the full 54-card deck in a fixed order: all thirteen
// ranks of each suit, then the black and red jokers. Shuffling is the
// caller's concern.
func Build() []card.Card {
	deck := make([]card.Card, 0, 54)
	for _, s := range []card.Suit{card.Hearts, card.Diamonds, card.Clubs, card.Spades} {
		for r := card.Ace; r <= card.King; r++ {
			deck = append(deck, card.Of(s, r))
		}
	}
	deck = append(deck, card.JokerOf(card.Black), card.JokerOf(card.Red))
	return deck
}

// Pools are the three piles a shuffled deck is split into at game
// start. Ranks Ace through Three are dropped entirely.
type Pools struct {
	Dungeon Pile // ranks 4-9, any suit
	Shop    Pile // ranks 10-13 of hearts/diamonds, plus both jokers
	Bosses  Pile // ranks 10-13 of clubs/spades, sorted ascending
}

// Partition splits a deck into pools, consuming it in order so that
// each pool inherits the shuffle. Bosses are sorted ascending by card
// order so they are released in increasing threat.
func Partition(cards []card.Card) Pools {
	var pools Pools
	for _, c := range cards {
		if c.IsJoker() {
			pools.Shop.Push(c)
			continue
		}
		switch {
		case c.Rank() >= card.Four && c.Rank() <= card.Nine:
			pools.Dungeon.Push(c)
		case c.Rank() >= card.Ten:
			if c.Suit() == card.Hearts || c.Suit() == card.Diamonds {
				pools.Shop.Push(c)
			} else {
				pools.Bosses.Push(c)
			}
		}
		// Ace through Three fall through and are dropped.
	}
	sort.Slice(pools.Bosses, func(i, j int) bool {
		return pools.Bosses[i].Less(pools.Bosses[j])
	})
	return pools
}
