package topspin

import "fmt"

// Action is a single reversal of the K-tile window starting at
// position Rotate (wrapping around the circle). Cost is the fixed
// per-move cost charged by the Space that produced the action.
type Action struct {
	Rotate int
	Cost   int
}

// ActionStatePair couples an Action with the State it produces.
type ActionStatePair struct {
	Action Action
	State  State
}

// Space is a TopSpin state space of N tiles with reversal window K.
type Space struct {
	n        int
	k        int
	edgeCost int
	initial  State
}

// NewSpace builds a Space over n tiles with window size k and the
// given initial state. edgeCost is the cost charged per move; pass 0
// to get the default of 1.
func NewSpace(n, k int, initial State, edgeCost int) (*Space, error) {
	if initial.Len() != n {
		return nil, fmt.Errorf("%w: initial state has %d tiles, want %d", ErrInvalidPermutation, initial.Len(), n)
	}
	if k < 2 || k > n {
		return nil, fmt.Errorf("%w: k=%d, n=%d", ErrInvalidWindow, k, n)
	}
	if edgeCost <= 0 {
		edgeCost = 1
	}
	return &Space{n: n, k: k, edgeCost: edgeCost, initial: initial}, nil
}

// N returns the tile count.
func (sp *Space) N() int { return sp.n }

// K returns the reversal window size.
func (sp *Space) K() int { return sp.k }

// EdgeCost returns the fixed cost charged for every move.
func (sp *Space) EdgeCost() int { return sp.edgeCost }

// InitialState returns the space's starting state.
func (sp *Space) InitialState() State { return sp.initial }

// IsGoal reports whether s is a rotation of the ascending identity
// permutation 1..N: tile n must be immediately followed (with
// wraparound) by tile 1, and every other tile by its successor.
func (sp *Space) IsGoal(s State) bool {
	n := sp.n
	for i := 0; i < n; i++ {
		a := s.At(i)
		b := s.At((i + 1) % n)
		if a == n {
			if b != 1 {
				return false
			}
			continue
		}
		if a+1 != b {
			return false
		}
	}
	return true
}

// Successors returns the N action/state pairs reachable from s, one
// per possible window start position, in ascending rotate order.
func (sp *Space) Successors(s State) []ActionStatePair {
	result := make([]ActionStatePair, sp.n)
	for pos := 0; pos < sp.n; pos++ {
		result[pos] = ActionStatePair{
			Action: Action{Rotate: pos, Cost: sp.edgeCost},
			State:  reverseWindow(s, pos, sp.k),
		}
	}
	return result
}

// Apply reverses the k-tile window starting at pos (wrapping around
// the circle) and returns the resulting state. Exported so packages
// outside topspin (the scramble generator, tests) can apply a single
// move directly.
func Apply(s State, pos, k int) State {
	return reverseWindow(s, pos, k)
}

func reverseWindow(s State, pos, k int) State {
	n := len(s.perm)
	out := make([]uint8, n)
	copy(out, s.perm)
	for i := 0; i < k/2; i++ {
		left := (pos + i) % n
		right := (pos + k - 1 - i) % n
		out[left], out[right] = out[right], out[left]
	}
	return State{perm: out}
}
