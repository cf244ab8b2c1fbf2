// Package scramble generates a random TopSpin instance by applying M
// random reversals to the solved state. The search engine itself
// never depends on where its initial state came from.
package scramble

import (
	"fmt"
	"math/rand"

	"github.com/drehermarco/topspin/topspin"
)

// Random builds an n-tile, k-window state reached by applying m
// random reversals to the solved permutation 1..n, using rng for
// position selection. Pass a seeded *rand.Rand for reproducible
// instances (tests), or rand.New(rand.NewSource(seed)) from a caller
// that wants a fresh scramble per run.
func Random(n, k, m int, rng *rand.Rand) (topspin.State, error) {
	if n < 1 {
		return topspin.State{}, fmt.Errorf("scramble: n must be positive, got %d", n)
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i + 1
	}
	state, err := topspin.NewState(perm)
	if err != nil {
		return topspin.State{}, err
	}
	for i := 0; i < m; i++ {
		pos := rng.Intn(n)
		state = topspin.Apply(state, pos, k)
	}
	return state, nil
}
