package heuristic

// CircularManhattan sums, for every position, the minimum cyclic
// distance between a tile's current position and its goal position,
// taking the best such sum over all N rotations (the goal is
// rotation-invariant), then divides by the maximum positional change
// a single k-window reversal can induce and rounds up.
func CircularManhattan(perm []int, k int) int {
	n := len(perm)
	best := Prune
	for rot := 0; rot < n; rot++ {
		count := 0
		for i := 0; i < n; i++ {
			tile := perm[(i+rot)%n]
			goalPos := tile - 1
			fwd := mod(i-goalPos, n)
			bwd := mod(goalPos-i, n)
			if fwd < bwd {
				count += fwd
			} else {
				count += bwd
			}
		}
		if count < best {
			best = count
		}
	}

	denom := 0
	for i := 0; i < k; i++ {
		denom += abs(i - (k - 1 - i))
	}
	if denom == 0 {
		return 0
	}
	return ceilDiv(best, denom)
}

func mod(x, n int) int {
	return ((x % n) + n) % n
}
