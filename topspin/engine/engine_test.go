package engine

import (
	"testing"

	"github.com/drehermarco/topspin/topspin"
	"github.com/drehermarco/topspin/topspin/search"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func mustSpace(t *testing.T, perm []int, k int) *topspin.Space {
	t.Helper()
	s, err := topspin.NewState(perm)
	require.NoError(t, err)
	sp, err := topspin.NewSpace(len(perm), k, s, 0)
	require.NoError(t, err)
	return sp
}

// End-to-end scenarios, literal.
func TestScenario1GapOptimalLengthOne(t *testing.T) {
	sp := mustSpace(t, []int{2, 1, 4, 3}, 4)
	res, err := RunAStar(sp, "gap", zerolog.Nop())
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 1, res.Length)
}

func TestScenario2GapAlreadySolved(t *testing.T) {
	sp := mustSpace(t, []int{1, 2, 3, 4, 5}, 4)
	res, err := RunAStar(sp, "gap", zerolog.Nop())
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 0, res.Length)
}

func TestScenario3GapOptimalLengthFour(t *testing.T) {
	sp := mustSpace(t, []int{1, 3, 2, 4, 5, 6}, 4)
	res, err := RunAStar(sp, "gap", zerolog.Nop())
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 4, res.Length)
}

func TestScenario4BreakpointAStarMatchesIDAStar(t *testing.T) {
	sp := mustSpace(t, []int{6, 5, 4, 3, 2, 1}, 4)
	a, err := RunAStar(sp, "breakpoint", zerolog.Nop())
	require.NoError(t, err)
	i, err := RunIDAStar(sp, "breakpoint", search.IDAStarOptions{Logger: zerolog.Nop()})
	require.NoError(t, err)
	require.True(t, a.Found)
	require.True(t, i.Found)
	require.Equal(t, a.Length, i.Length)
}

func TestScenario5TwoGroupMatchesExhaustiveBFS(t *testing.T) {
	sp := mustSpace(t, []int{3, 1, 4, 2, 5, 7, 6}, 4)
	res, err := RunAStar(sp, "twoGroup", zerolog.Nop())
	require.NoError(t, err)
	require.True(t, res.Found)

	want := exhaustiveOptimalLength(t, sp)
	require.Equal(t, want, res.Length)
}

func TestScenario6GapAStarMatchesIDAStar(t *testing.T) {
	sp := mustSpace(t, []int{7, 1, 4, 9, 3, 6, 2, 5, 10, 8}, 4)
	a, err := RunAStar(sp, "gap", zerolog.Nop())
	require.NoError(t, err)
	i, err := RunIDAStar(sp, "gap", search.IDAStarOptions{Logger: zerolog.Nop()})
	require.NoError(t, err)
	require.True(t, a.Found)
	require.True(t, i.Found)
	require.Equal(t, a.Length, i.Length)
	require.Greater(t, a.Length, 0)
}

func TestUnknownHeuristicIsConfigurationError(t *testing.T) {
	sp := mustSpace(t, []int{1, 2, 3, 4}, 4)
	_, err := RunAStar(sp, "nonsense", zerolog.Nop())
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnknownHeuristic)
}

// exhaustiveOptimalLength runs an unweighted BFS over the true state
// space (not an abstraction) to find the shortest solution length,
// for cross-checking small-N instances against the heuristic
// searches (P5, P6).
func exhaustiveOptimalLength(t *testing.T, sp *topspin.Space) int {
	t.Helper()
	start := topspin.Normalize(sp.InitialState())
	if sp.IsGoal(start) {
		return 0
	}
	type frame struct {
		state topspin.State
		depth int
	}
	visited := map[string]bool{start.Key(): true}
	queue := []frame{{state: start, depth: 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, asp := range sp.Successors(cur.state) {
			next := topspin.Normalize(asp.State)
			if visited[next.Key()] {
				continue
			}
			visited[next.Key()] = true
			if sp.IsGoal(next) {
				return cur.depth + 1
			}
			queue = append(queue, frame{state: next, depth: cur.depth + 1})
		}
	}
	t.Fatal("exhaustiveOptimalLength: goal unreachable")
	return -1
}

func TestExhaustiveBFSAgreesWithAStarAcrossHeuristicFamilies(t *testing.T) {
	sp := mustSpace(t, []int{3, 1, 2, 4, 5, 6, 7}, 4)
	want := exhaustiveOptimalLength(t, sp)

	for _, name := range []string{"gap", "manhattan", "twoGroup", "fiveGroup", "oddEven", "fourDistance", "twoGroupC", "oddEvenC"} {
		res, err := RunAStar(sp, name, zerolog.Nop())
		require.NoError(t, err, "heuristic=%s", name)
		require.True(t, res.Found, "heuristic=%s", name)
		require.Equal(t, want, res.Length, "heuristic=%s", name)
	}
}
