package card

import (
	"sort"
	"testing"
)

func TestValue(t *testing.T) {
	t.Run("regular cards are worth their rank", func(t *testing.T) {
		if got := Of(Hearts, Ace).Value(); got != 1 {
			t.Errorf("expected 1, got %d", got)
		}
		if got := Of(Spades, King).Value(); got != 13 {
			t.Errorf("expected 13, got %d", got)
		}
	})

	t.Run("jokers are worth 15", func(t *testing.T) {
		if got := JokerOf(Black).Value(); got != JokerValue {
			t.Errorf("expected %d, got %d", JokerValue, got)
		}
	})
}

func TestCompare(t *testing.T) {
	cases := []struct {
		name string
		a, b Card
		want int
	}{
		{"rank decides first", Of(Spades, Four), Of(Hearts, Five), -1},
		{"suit breaks rank ties", Of(Hearts, Ten), Of(Diamonds, Ten), -1},
		{"suit order ends at spades", Of(Clubs, Ten), Of(Spades, Ten), -1},
		{"equal cards tie", Of(Diamonds, Seven), Of(Diamonds, Seven), 0},
		{"regular below joker", Of(Spades, King), JokerOf(Black), -1},
		{"black joker below red", JokerOf(Black), JokerOf(Red), -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Compare(tc.b); got != tc.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
			if got := tc.b.Compare(tc.a); got != -tc.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tc.b, tc.a, got, -tc.want)
			}
		})
	}
}

func TestSortUsesTotalOrder(t *testing.T) {
	cards := []Card{
		JokerOf(Red),
		Of(Spades, Jack),
		Of(Clubs, King),
		JokerOf(Black),
		Of(Clubs, Jack),
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].Less(cards[j]) })

	want := []Card{
		Of(Clubs, Jack),
		Of(Spades, Jack),
		Of(Clubs, King),
		JokerOf(Black),
		JokerOf(Red),
	}
	for i := range want {
		if cards[i] != want[i] {
			t.Fatalf("position %d: got %s, want %s", i, cards[i], want[i])
		}
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		c    Card
		want string
	}{
		{Of(Hearts, Ace), "A♥"},
		{Of(Diamonds, Ten), "10♦"},
		{Of(Clubs, Jack), "J♣"},
		{Of(Spades, Queen), "Q♠"},
		{Of(Spades, King), "K♠"},
		{JokerOf(Black), "Jo"},
		{JokerOf(Red), "Jo"},
	}
	for _, tc := range cases {
		if got := tc.c.String(); got != tc.want {
			t.Errorf("expected %q, got %q", tc.want, got)
		}
	}
}
