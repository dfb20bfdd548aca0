package shuffle

import (
	"math/rand"
	"sort"
	"testing"
)

func TestSliceIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 10; n++ {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}
		Slice(rng, items)
		sorted := append([]int(nil), items...)
		sort.Ints(sorted)
		for i, v := range sorted {
			if v != i {
				t.Fatalf("n=%d: not a permutation: %v", n, items)
			}
		}
	}
}

func TestSliceDeterministicWithSeed(t *testing.T) {
	a := []string{"a", "b", "c", "d", "e"}
	b := append([]string(nil), a...)
	Slice(rand.New(rand.NewSource(42)), a)
	Slice(rand.New(rand.NewSource(42)), b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced %v and %v", a, b)
		}
	}
}

func TestSliceCoversAllOrderings(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := make(map[[3]int]int)
	const rounds = 6000
	for i := 0; i < rounds; i++ {
		items := []int{0, 1, 2}
		Slice(rng, items)
		seen[[3]int{items[0], items[1], items[2]}]++
	}
	if len(seen) != 6 {
		t.Fatalf("expected 6 orderings, saw %d", len(seen))
	}
	for perm, count := range seen {
		if count < rounds/6/2 || count > rounds/6*2 {
			t.Errorf("ordering %v seen %d times, far from uniform", perm, count)
		}
	}
}

func TestNewRandZeroSeedUsesClock(t *testing.T) {
	if NewRand(0) == nil {
		t.Fatal("expected a random source")
	}
}
