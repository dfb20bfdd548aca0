// Package shuffle implements the seeded Fisher-Yates permutation used for
// answer options.
package shuffle

import (
	"math/rand"
	"time"
)

// NewRand returns a random source seeded with seed, or with the current
// time when seed is zero.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Slice permutes items in place. Every ordering is equally likely for a
// uniform rng.
func Slice[T any](rng *rand.Rand, items []T) {
	for i := len(items) - 1; i >= 1; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
