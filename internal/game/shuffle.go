package game

import "math/rand"

// Shuffler is the engine's only source of randomness. It matches the
// signature of rand.Shuffle so piles can be shuffled in place.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// RandShuffler shuffles uniformly with a seeded math/rand source.
type RandShuffler struct {
	r *rand.Rand
}

func NewRandShuffler(seed int64) *RandShuffler {
	return &RandShuffler{r: rand.New(rand.NewSource(seed))}
}

func (s *RandShuffler) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}

// NoopShuffler leaves every pile in dealt order. Deterministic and
// test-friendly: tests arrange piles by hand and nothing disturbs them.
type NoopShuffler struct{}

func (NoopShuffler) Shuffle(int, func(i, j int)) {}
