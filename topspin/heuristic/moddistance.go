package heuristic

import "github.com/drehermarco/topspin/topspin/abstraction"

// ModDistance partitions tiles by residue class mod m, solves each
// residue class's predicate-form abstraction independently, and
// returns the max (mod 2 is the "odd/even" heuristic).
func ModDistance(perm []int, k, m int, cache *abstraction.Cache) int {
	best := 0
	for r := 0; r < m; r++ {
		residue := r
		abs := abstraction.ByPredicate(perm, func(x int) bool { return x%m == residue })
		h := cache.SolutionLength(abs, k, abstraction.IsGoalPredicate)
		if h == abstraction.Unreachable {
			return Prune
		}
		if h > best {
			best = h
		}
	}
	return best
}

// ModDistanceC is the mapping-form counterpart: every tile is
// labelled by its residue mod m up front, producing a single
// abstraction and BFS.
func ModDistanceC(perm []int, k, m int, cache *abstraction.Cache) int {
	mapping := func(x int) int { return x % m }
	abs := abstraction.ByMapping(perm, mapping)
	h := cache.SolutionLength(abs, k, func(a abstraction.Abstracted) bool {
		return abstraction.IsGoalMapping(a, mapping)
	})
	if h == abstraction.Unreachable {
		return Prune
	}
	return h
}
