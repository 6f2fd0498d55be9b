package deck

import (
	"math/rand"
	"testing"

	"deckdelve/internal/card"
)

func TestBuild(t *testing.T) {
	t.Run("deck has 54 cards", func(t *testing.T) {
		deck := Build()
		if len(deck) != 54 {
			t.Fatalf("expected 54 cards, got %d", len(deck))
		}
	})

	t.Run("deck has exactly two jokers and no duplicates", func(t *testing.T) {
		seen := map[card.Card]int{}
		jokers := 0
		for _, c := range Build() {
			seen[c]++
			if c.IsJoker() {
				jokers++
			}
		}
		if jokers != 2 {
			t.Errorf("expected 2 jokers, got %d", jokers)
		}
		for c, n := range seen {
			if !c.IsJoker() && n != 1 {
				t.Errorf("card %s appears %d times", c, n)
			}
		}
	})
}

func TestPartition(t *testing.T) {
	shuffles := []int64{0, 1, 42, 1337}
	for _, seed := range shuffles {
		deck := Build()
		r := rand.New(rand.NewSource(seed))
		r.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

		pools := Partition(deck)

		if got := len(pools.Dungeon); got != 24 {
			t.Errorf("seed %d: dungeon has %d cards, want 24", seed, got)
		}
		if got := len(pools.Shop); got != 10 {
			t.Errorf("seed %d: shop has %d cards, want 10", seed, got)
		}
		if got := len(pools.Bosses); got != 8 {
			t.Errorf("seed %d: bosses has %d cards, want 8", seed, got)
		}

		for _, c := range pools.Dungeon {
			if c.IsJoker() || c.Rank() < card.Four || c.Rank() > card.Nine {
				t.Errorf("seed %d: %s does not belong in the dungeon pool", seed, c)
			}
		}
		for _, c := range pools.Bosses {
			if c.IsJoker() || c.Rank() < card.Ten || !c.IsMonster() {
				t.Errorf("seed %d: %s does not belong in the boss pool", seed, c)
			}
		}
		jokers := 0
		for _, c := range pools.Shop {
			if c.IsJoker() {
				jokers++
				continue
			}
			if c.Rank() < card.Ten || c.IsMonster() {
				t.Errorf("seed %d: %s does not belong in the shop pool", seed, c)
			}
		}
		if jokers != 2 {
			t.Errorf("seed %d: shop holds %d jokers, want 2", seed, jokers)
		}
	}
}

func TestPartitionSortsBosses(t *testing.T) {
	deck := Build()
	r := rand.New(rand.NewSource(7))
	r.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	pools := Partition(deck)
	for i := 1; i < len(pools.Bosses); i++ {
		if pools.Bosses[i].Less(pools.Bosses[i-1]) {
			t.Fatalf("bosses out of order at %d: %s before %s", i, pools.Bosses[i-1], pools.Bosses[i])
		}
	}
}

func TestPileOps(t *testing.T) {
	t.Run("draw front preserves order", func(t *testing.T) {
		p := Pile{card.Of(card.Hearts, card.Four), card.Of(card.Spades, card.Five)}
		c, ok := p.DrawFront()
		if !ok || c != card.Of(card.Hearts, card.Four) {
			t.Fatalf("expected 4♥, got %s (ok=%v)", c, ok)
		}
		if len(p) != 1 {
			t.Fatalf("expected 1 card left, got %d", len(p))
		}
	})

	t.Run("draw from empty pile reports not ok", func(t *testing.T) {
		var p Pile
		if _, ok := p.DrawFront(); ok {
			t.Fatal("expected ok=false on empty pile")
		}
	})

	t.Run("remove at out of range reports not ok", func(t *testing.T) {
		p := Pile{card.Of(card.Hearts, card.Four)}
		if _, ok := p.RemoveAt(1); ok {
			t.Fatal("expected ok=false for index 1")
		}
		if _, ok := p.RemoveAt(-1); ok {
			t.Fatal("expected ok=false for index -1")
		}
	})

	t.Run("take all empties the pile", func(t *testing.T) {
		p := Pile{card.JokerOf(card.Red)}
		cards := p.TakeAll()
		if len(cards) != 1 || len(p) != 0 {
			t.Fatalf("expected 1 taken and empty pile, got %d taken, %d left", len(cards), len(p))
		}
	})
}
