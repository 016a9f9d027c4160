package pkg

import (
	"time"

	"golang.org/x/exp/rand"
)

// Random is the source of randomness used for shuffling and computer choices.
type Random interface {
	Intn(n int) int
}

// NewRandom - returns a process-wide generator seeded from the clock.
func NewRandom() Random {
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}

// NewSeededRandom - returns a reproducible generator, used by tests.
func NewSeededRandom(seed uint64) Random {
	return rand.New(rand.NewSource(seed))
}
