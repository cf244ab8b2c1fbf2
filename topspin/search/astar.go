package search

import (
	"math"

	"github.com/drehermarco/topspin/topspin"
	"github.com/rs/zerolog"
)

// HeuristicFunc evaluates a single state. Callers close over a chosen
// heuristic.Spec and abstraction.Cache so this package never needs to
// import the heuristic library directly.
type HeuristicFunc func(state topspin.State) int

// Prune mirrors heuristic.Prune: a HeuristicFunc returning this value
// tells the search to discard the state as unreachable.
const Prune = math.MaxInt32

// Result is what a search strategy returns: whether a solution was
// found, its path, and the counters the report layer prints.
type Result struct {
	Found    bool
	InitialH int
	Path     []Path
	Length   int
	Cost     int
	Expanded int
	Nodes    int // total nodes generated, expanded or not
}

// AStar runs best-first search from space's initial state using h,
// with an open priority queue ordered by f=g+h (h as tiebreak) and a
// reopening-tolerant closed map from state to best known g. Search
// nodes are allocated from a per-call arena released when AStar
// returns.
func AStar(space *topspin.Space, h HeuristicFunc, log zerolog.Logger) Result {
	n := space.N()
	ar := newArena(n * 4)
	open := newOpenList()
	bestG := make(map[string]int)

	initial := topspin.Normalize(space.InitialState())
	initialH := h(initial)
	log.Debug().Str("initial", initial.String()).Int("h", initialH).Msg("astar: initial state")

	if initialH == Prune {
		return Result{Found: false, InitialH: initialH}
	}

	rootIdx := ar.alloc(node{state: initial, parent: -1, rotate: -1, g: 0, h: initialH})
	open.push(rootIdx, initialH, initialH)
	bestG[stateKey(initial)] = 0

	expanded := 0
	generated := 1

	for {
		idx, ok := open.pop()
		if !ok {
			return Result{Found: false, InitialH: initialH, Expanded: expanded, Nodes: generated}
		}
		cur := *ar.at(idx) // copy: alloc below may grow the arena
		curKey := stateKey(cur.state)
		if known, seen := bestG[curKey]; seen && known < cur.g {
			continue // superseded by a cheaper path already expanded
		}

		if space.IsGoal(cur.state) {
			path := reconstruct(ar, idx)
			cost := 0
			for range path {
				cost += space.EdgeCost()
			}
			return Result{
				Found:    true,
				InitialH: initialH,
				Path:     path,
				Length:   len(path),
				Cost:     cost,
				Expanded: expanded,
				Nodes:    generated,
			}
		}

		expanded++
		if expanded%100000 == 0 {
			log.Debug().Int("expanded", expanded).Int("generated", generated).Int("open", open.len()).Msg("astar: progress")
		}
		for _, asp := range space.Successors(cur.state) {
			next := topspin.Normalize(asp.State)
			g := cur.g + asp.Action.Cost
			nextKey := stateKey(next)
			if known, seen := bestG[nextKey]; seen && known <= g {
				continue
			}
			hv := h(next)
			if hv == Prune {
				continue
			}
			bestG[nextKey] = g
			childIdx := ar.alloc(node{state: next, parent: idx, rotate: asp.Action.Rotate, g: g, h: hv})
			open.push(childIdx, g+hv, hv)
			generated++
		}
	}
}

func stateKey(s topspin.State) string {
	return s.Key()
}
