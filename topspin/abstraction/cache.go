package abstraction

// Unreachable is returned by SolutionLength when no rotation of abs
// can reach goal under repeated k-window reversals.
const Unreachable = -1

// GoalFunc tests whether an abstracted state satisfies some goal
// condition. IsGoalPredicate and a closure over IsGoalMapping (fixed
// to a particular Mapping) are the two shapes this module uses.
type GoalFunc func(Abstracted) bool

// Cache memoizes solution_length results by normalized abstracted
// state. It is an explicit handle rather than a package-level global:
// callers construct one per process (or per test) and pass it to
// every heuristic evaluation that shares its abstraction space, so
// tests stay hermetic while still getting the memoization speedup a
// single shared map provides within a run.
type Cache struct {
	m map[string]int
}

// NewCache returns an empty, ready-to-use cache.
func NewCache() *Cache {
	return &Cache{m: make(map[string]int)}
}

func key(abs Abstracted) string {
	return string(abs)
}

// SolutionLength returns the length of the shortest sequence of
// k-window reversals that brings abs to a state satisfying goal, or
// Unreachable if no such sequence exists. Results are memoized by
// normalized abstracted state and shared across every call using this
// Cache.
func (c *Cache) SolutionLength(abs Abstracted, k int, goal GoalFunc) int {
	start := normalize(abs)
	if v, ok := c.m[key(start)]; ok {
		return v
	}

	if goal(start) {
		c.m[key(start)] = 0
		return 0
	}

	type frame struct {
		state Abstracted
		depth int
	}

	visited := map[string]bool{key(start): true}
	queue := []frame{{state: start, depth: 0}}
	n := len(start)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for pos := 0; pos < n; pos++ {
			if !nonZero(cur.state, pos, k) {
				continue
			}
			next := normalize(reverseWindow(cur.state, pos, k))
			nk := key(next)
			if visited[nk] {
				continue
			}
			visited[nk] = true

			if goal(next) {
				depth := cur.depth + 1
				c.m[key(start)] = depth
				return depth
			}
			queue = append(queue, frame{state: next, depth: cur.depth + 1})
		}
	}

	c.m[key(start)] = Unreachable
	return Unreachable
}
