package abstraction

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByPredicateBlanksFilteredTiles(t *testing.T) {
	abs := ByPredicate([]int{1, 2, 3, 4}, func(t int) bool { return t%2 == 0 })
	require.Equal(t, Abstracted{0, 2, 0, 4}, abs)
}

func TestByMappingRelabelsEveryTile(t *testing.T) {
	abs := ByMapping([]int{1, 2, 3, 4}, func(t int) int { return t % 2 })
	require.Equal(t, Abstracted{1, 0, 1, 0}, abs)
}

func TestIsGoalPredicateAcceptsDontCareGaps(t *testing.T) {
	require.True(t, IsGoalPredicate(Abstracted{0, 2, 0, 4}))
	require.True(t, IsGoalPredicate(Abstracted{2, 0, 4, 0}))
	// every rotation of a solved abstraction is solved too
	require.True(t, IsGoalPredicate(Abstracted{0, 4, 0, 2}))
	// kept tiles one slot apart instead of their solved spacing
	require.False(t, IsGoalPredicate(Abstracted{2, 4, 0, 0}))
}

func TestIsGoalPredicateWithoutSmallestTile(t *testing.T) {
	// a group that keeps {3,4} but not tile 1 still has solved
	// placements: 3 and 4 adjacent, in order, anywhere on the circle
	require.True(t, IsGoalPredicate(Abstracted{0, 0, 3, 4, 0, 0, 0}))
	require.True(t, IsGoalPredicate(Abstracted{4, 0, 0, 0, 0, 0, 3}))
	require.False(t, IsGoalPredicate(Abstracted{0, 0, 4, 3, 0, 0, 0}))
	require.False(t, IsGoalPredicate(Abstracted{3, 0, 4, 0, 0, 0, 0}))
}

func TestIsGoalMappingAcceptsAnyRotation(t *testing.T) {
	mapping := func(t int) int { return t % 2 }
	goal := Abstracted{1, 0, 1, 0} // mapping(1),mapping(2),mapping(3),mapping(4)
	require.True(t, IsGoalMapping(goal, mapping))
	rotated := Abstracted{0, 1, 0, 1}
	require.True(t, IsGoalMapping(rotated, mapping))
	require.False(t, IsGoalMapping(Abstracted{1, 1, 0, 0}, mapping))
}

func TestSolutionLengthZeroAtGoal(t *testing.T) {
	c := NewCache()
	abs := Abstracted{1, 2, 0, 0}
	require.Equal(t, 0, c.SolutionLength(abs, 4, IsGoalPredicate))
}

func TestSolutionLengthMemoizesAcrossRotations(t *testing.T) {
	c := NewCache()
	abs := Abstracted{2, 4, 0, 0}
	first := c.SolutionLength(abs, 2, IsGoalPredicate)
	require.Equal(t, 1, first) // one adjacent swap restores the solved spacing
	rotated := Abstracted{0, 2, 4, 0}
	second := c.SolutionLength(rotated, 2, IsGoalPredicate)
	require.Equal(t, first, second)
}

func TestSolutionLengthSkipsAllZeroWindows(t *testing.T) {
	c := NewCache()
	// Entirely don't-care: already a goal (vacuously true).
	require.Equal(t, 0, c.SolutionLength(Abstracted{0, 0, 0, 0}, 4, IsGoalPredicate))
}

func TestSolutionLengthUnreachableForImpossibleMapping(t *testing.T) {
	c := NewCache()
	mapping := func(t int) int { return t }
	goal := func(a Abstracted) bool { return IsGoalMapping(a, mapping) }
	// Force unreachability with an abstraction whose labels the goal
	// row never contains: every slot holds 9, reversals only permute
	// those 9s, and the identity mapping's goal row is 1,2,3.
	abs := Abstracted{9, 9, 9}
	require.Equal(t, Unreachable, c.SolutionLength(abs, 2, goal))
}
