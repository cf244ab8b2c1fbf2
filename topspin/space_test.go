package topspin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustState(t *testing.T, perm []int) State {
	t.Helper()
	s, err := NewState(perm)
	require.NoError(t, err)
	return s
}

func TestSuccessorsCountMatchesN(t *testing.T) {
	s := mustState(t, []int{1, 2, 3, 4, 5, 6})
	sp, err := NewSpace(6, 4, s, 0)
	require.NoError(t, err)
	require.Len(t, sp.Successors(s), 6)
}

func TestReversalIsInvolution(t *testing.T) {
	s := mustState(t, []int{3, 1, 4, 2, 5, 7, 6})
	sp, err := NewSpace(7, 4, s, 0)
	require.NoError(t, err)
	for _, asp := range sp.Successors(s) {
		back := Apply(asp.State, asp.Action.Rotate, sp.K())
		require.True(t, back.Equal(s), "applying action %d twice should return to start", asp.Action.Rotate)
	}
}

func TestIsGoalDetectsRotationsOfIdentity(t *testing.T) {
	sp, err := NewSpace(4, 4, mustState(t, []int{1, 2, 3, 4}), 0)
	require.NoError(t, err)

	cases := []struct {
		perm []int
		goal bool
	}{
		{[]int{1, 2, 3, 4}, true},
		{[]int{3, 4, 1, 2}, true},
		{[]int{2, 1, 4, 3}, false},
	}
	for _, c := range cases {
		require.Equal(t, c.goal, sp.IsGoal(mustState(t, c.perm)), "perm=%v", c.perm)
	}
}

func TestNewSpaceRejectsBadWindow(t *testing.T) {
	_, err := NewSpace(4, 1, mustState(t, []int{1, 2, 3, 4}), 0)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewSpace(4, 5, mustState(t, []int{1, 2, 3, 4}), 0)
	require.ErrorIs(t, err, ErrInvalidWindow)
}

func TestEdgeCostDefaultsToOne(t *testing.T) {
	sp, err := NewSpace(4, 4, mustState(t, []int{1, 2, 3, 4}), 0)
	require.NoError(t, err)
	require.Equal(t, 1, sp.EdgeCost())
}
