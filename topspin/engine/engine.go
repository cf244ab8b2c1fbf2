// Package engine resolves a heuristic name to its implementation and
// dispatches a search run against it: the thin layer a CLI driver
// calls into, so cmd/ binaries never touch topspin/heuristic directly
// and use topspin/search only for its option and result types.
package engine

import (
	"fmt"

	"github.com/drehermarco/topspin/topspin"
	"github.com/drehermarco/topspin/topspin/abstraction"
	"github.com/drehermarco/topspin/topspin/heuristic"
	"github.com/drehermarco/topspin/topspin/search"
	"github.com/rs/zerolog"
)

// ErrUnknownHeuristic re-exports heuristic.ErrUnknownHeuristic so callers
// of this package can errors.Is against a single, stable sentinel
// without importing topspin/heuristic themselves.
var ErrUnknownHeuristic = heuristic.ErrUnknownHeuristic

// Names returns the sixteen literal heuristic identifiers the engine
// accepts.
func Names() []string { return heuristic.Names() }

// buildHeuristicFunc resolves name to a search.HeuristicFunc closed
// over a fresh abstraction cache, shared by every evaluation within
// one search so group/mod-distance BFS results are memoized across
// the whole run.
func buildHeuristicFunc(name string, k int) (search.HeuristicFunc, error) {
	spec, err := heuristic.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("engine: %w: %q", err, name)
	}
	cache := abstraction.NewCache()
	return func(s topspin.State) int {
		return heuristic.Evaluate(spec, s.Slice(), k, cache)
	}, nil
}

// RunAStar resolves name and runs A* search over space.
func RunAStar(space *topspin.Space, name string, log zerolog.Logger) (search.Result, error) {
	h, err := buildHeuristicFunc(name, space.K())
	if err != nil {
		return search.Result{}, err
	}
	return search.AStar(space, h, log), nil
}

// RunIDAStar resolves name and runs IDA* search over space.
func RunIDAStar(space *topspin.Space, name string, opts search.IDAStarOptions) (search.Result, error) {
	h, err := buildHeuristicFunc(name, space.K())
	if err != nil {
		return search.Result{}, err
	}
	return search.IDAStar(space, h, opts), nil
}
