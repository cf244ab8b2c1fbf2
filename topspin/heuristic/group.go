package heuristic

import "github.com/drehermarco/topspin/topspin/abstraction"

// Group partitions tiles 1..N into numGroups contiguous value ranges
// of ceil(N/numGroups) each, abstracts the state by keeping only one
// group's tiles at a time, solves each resulting abstraction, and
// returns the max across groups; the max of several admissible
// estimates is itself admissible.
func Group(perm []int, k, numGroups int, cache *abstraction.Cache) int {
	n := len(perm)
	bound := (n + numGroups - 1) / numGroups

	best := 0
	for g := 0; g < numGroups; g++ {
		lo, hi := groupRange(g, numGroups, bound, n)
		abs := abstraction.ByPredicate(perm, func(x int) bool {
			return x > lo && x <= hi
		})
		h := cache.SolutionLength(abs, k, abstraction.IsGoalPredicate)
		if h == abstraction.Unreachable {
			// an unsolvable abstraction means the full state is
			// unsolvable too
			return Prune
		}
		if h > best {
			best = h
		}
	}
	return best
}

// groupRange gives group g's half-open value range: every group but
// the last spans exactly `bound` values; the last group absorbs
// whatever remains up to n.
func groupRange(g, numGroups, bound, n int) (lo, hi int) {
	lo = g * bound
	if g == numGroups-1 {
		hi = n
	} else {
		hi = (g + 1) * bound
	}
	return lo, hi
}

// GroupC is the mapping-form counterpart of Group: every tile is
// labelled by its group index (1..numGroups) up front, producing a
// single abstraction and a single BFS rather than numGroups of them.
func GroupC(perm []int, k, numGroups int, cache *abstraction.Cache) int {
	n := len(perm)
	bound := (n + numGroups - 1) / numGroups
	mapping := func(x int) int {
		group := (x-1)/bound + 1
		if group > numGroups {
			group = numGroups
		}
		return group
	}
	abs := abstraction.ByMapping(perm, mapping)
	h := cache.SolutionLength(abs, k, func(a abstraction.Abstracted) bool {
		return abstraction.IsGoalMapping(a, mapping)
	})
	if h == abstraction.Unreachable {
		return Prune
	}
	return h
}
