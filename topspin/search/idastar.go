package search

import (
	"sort"

	"github.com/drehermarco/topspin/topspin"
	"github.com/rs/zerolog"
)

// DefaultTranspositionCapacity bounds the per-iteration transposition
// table when a caller does not supply one via IDAStarOptions.
const DefaultTranspositionCapacity = 1 << 16

// IDAStarOptions configures a single IDAStar run.
type IDAStarOptions struct {
	// TranspositionCapacity bounds each iteration's transposition
	// table; 0 selects DefaultTranspositionCapacity.
	TranspositionCapacity int
	Logger                zerolog.Logger
}

type idaSearcher struct {
	space    *topspin.Space
	h        HeuristicFunc
	log      zerolog.Logger
	visited  map[string]bool
	table    *transpositionTable
	expanded int
	solution []Path
	path     []Path
}

// IDAStar runs iterative-deepening A* from space's initial state
// using h. Each iteration is a depth-first search bounded by an
// f-threshold; the minimum over-bound f seen becomes the next
// threshold (RBFS-style bound propagation). A fresh per-path visited
// set prevents cycles within one DFS branch; since the reversal
// operator is an involution, forbidding a revisit to any ancestor
// already forbids undoing the very last move, so no separate
// last-action check is needed. A bounded, LRU-evicted transposition
// table prunes states already reached at no greater cost earlier in
// the same iteration.
func IDAStar(space *topspin.Space, h HeuristicFunc, opts IDAStarOptions) Result {
	capacity := opts.TranspositionCapacity
	if capacity == 0 {
		capacity = DefaultTranspositionCapacity
	}

	initial := topspin.Normalize(space.InitialState())
	threshold := h(initial)
	initialH := threshold
	opts.Logger.Debug().Str("initial", initial.String()).Int("h", threshold).Msg("idastar: initial state")
	if threshold == Prune {
		return Result{Found: false, InitialH: threshold}
	}

	s := &idaSearcher{space: space, h: h, log: opts.Logger}
	iteration := 0
	for {
		s.visited = map[string]bool{initial.Key(): true}
		s.table = newTranspositionTable(capacity)
		s.path = nil
		s.solution = nil

		next := s.search(initial, 0, threshold)
		iteration++
		if next == foundGoal {
			cost := 0
			for range s.solution {
				cost += space.EdgeCost()
			}
			return Result{
				Found:    true,
				InitialH: initialH,
				Path:     s.solution,
				Length:   len(s.solution),
				Cost:     cost,
				Expanded: s.expanded,
			}
		}
		if next == Prune {
			return Result{Found: false, InitialH: initialH, Expanded: s.expanded}
		}
		s.log.Debug().Int("iteration", iteration).Int("threshold", threshold).Int("next", next).Msg("idastar: bound update")
		threshold = next
	}
}

// foundGoal is the sentinel idaSearcher.search returns up the call
// stack to signal that a solution was found. Any non-negative return
// is a candidate next threshold, so -1 is unambiguous.
const foundGoal = -1

func (s *idaSearcher) search(state topspin.State, g, threshold int) int {
	hv := s.h(state)
	if hv == Prune {
		return Prune
	}
	f := g + hv
	if f > threshold {
		return f
	}
	if s.space.IsGoal(state) {
		s.solution = append([]Path(nil), s.path...)
		return foundGoal
	}

	key := state.Key()
	if stored, ok := s.table.lookup(key); ok && g >= stored {
		return Prune
	}
	s.table.record(key, g)

	type candidate struct {
		asp topspin.ActionStatePair
		h   int
	}
	successors := s.space.Successors(state)
	candidates := make([]candidate, 0, len(successors))
	for _, asp := range successors {
		next := topspin.Normalize(asp.State)
		if s.visited[next.Key()] {
			continue
		}
		candidates = append(candidates, candidate{asp: topspin.ActionStatePair{Action: asp.Action, State: next}, h: s.h(next)})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].h < candidates[j].h
	})

	minNext := Prune
	for _, c := range candidates {
		nextState := c.asp.State
		s.path = append(s.path, Path{Rotate: c.asp.Action.Rotate, State: nextState, H: c.h})
		s.visited[nextState.Key()] = true
		s.expanded++

		result := s.search(nextState, g+c.asp.Action.Cost, threshold)
		if result == foundGoal {
			return foundGoal
		}
		if result < minNext {
			minNext = result
		}

		s.path = s.path[:len(s.path)-1]
		delete(s.visited, nextState.Key())
	}
	return minNext
}
