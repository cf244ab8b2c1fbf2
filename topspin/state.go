// Package topspin models the TopSpin puzzle: a circular permutation of
// tiles 1..N solved by reversing contiguous K-tile windows in place.
package topspin

import (
	"errors"
	"fmt"
)

// ErrInvalidPermutation is returned when a caller supplies a state that
// is not a permutation of 1..N, or whose length disagrees with N.
var ErrInvalidPermutation = errors.New("topspin: not a permutation of 1..n")

// ErrInvalidWindow is returned when K is outside [2, N].
var ErrInvalidWindow = errors.New("topspin: window size out of range")

// State is an immutable circular permutation of 1..N. The zero value is
// not a usable state; construct one with NewState.
type State struct {
	perm []uint8
}

// NewState validates perm as a permutation of 1..len(perm) and returns
// the corresponding State.
func NewState(perm []int) (State, error) {
	n := len(perm)
	seen := make([]bool, n+1)
	tiles := make([]uint8, n)
	for i, v := range perm {
		if v < 1 || v > n || seen[v] {
			return State{}, fmt.Errorf("%w: value %d at index %d", ErrInvalidPermutation, v, i)
		}
		seen[v] = true
		tiles[i] = uint8(v)
	}
	return State{perm: tiles}, nil
}

// Len reports the number of tiles in the state.
func (s State) Len() int { return len(s.perm) }

// At returns the tile at position i (0-indexed).
func (s State) At(i int) int { return int(s.perm[i]) }

// Slice returns a copy of the permutation as plain ints, in tile
// order (position 0 first). Mutating the copy does not affect s.
func (s State) Slice() []int {
	out := make([]int, len(s.perm))
	for i, v := range s.perm {
		out[i] = int(v)
	}
	return out
}

// Equal reports whether two states hold the same permutation.
func (s State) Equal(other State) bool {
	if len(s.perm) != len(other.perm) {
		return false
	}
	for i := range s.perm {
		if s.perm[i] != other.perm[i] {
			return false
		}
	}
	return true
}

// Key returns a comparable, map-safe representation of the state.
// Instances stay well under 256 tiles, so a string built from the
// raw bytes is both a valid map key and cheap to produce.
func (s State) Key() string {
	return string(s.perm)
}

// String renders the state as space-separated tile values.
func (s State) String() string {
	out := make([]byte, 0, len(s.perm)*4)
	for i, v := range s.perm {
		if i > 0 {
			out = append(out, ' ')
		}
		out = appendInt(out, int(v))
	}
	return string(out)
}

func appendInt(dst []byte, v int) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	start := len(dst)
	for v > 0 {
		dst = append(dst, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(dst)-1; i < j; i, j = i+1, j-1 {
		dst[i], dst[j] = dst[j], dst[i]
	}
	return dst
}

// Normalize rotates s so that tile 1 sits at index 0. Every cache key,
// visited set, and transposition key in this module is built from a
// normalized state, so that rotation-equivalent states collapse to a
// single representative.
func Normalize(s State) State {
	n := len(s.perm)
	idx := 0
	for i, v := range s.perm {
		if v == 1 {
			idx = i
			break
		}
	}
	if idx == 0 {
		return s
	}
	rotated := make([]uint8, n)
	for i := 0; i < n; i++ {
		rotated[i] = s.perm[(i+idx)%n]
	}
	return State{perm: rotated}
}
