// Package search implements the two search strategies over a
// topspin.Space: best-first A* with a reopening-tolerant closed list,
// and iterative-deepening A* with a transposition table.
package search

import "github.com/drehermarco/topspin/topspin"

// node is one entry in a search tree rooted at the initial state.
// Parent links are indices into the owning arena, not pointers, so
// the whole tree can be released at once when a search ends.
type node struct {
	state  topspin.State
	parent int // index into arena, -1 for the root
	rotate int // the Action.Rotate that produced this node, -1 for the root
	g      int
	h      int
}

// arena owns every node allocated during one search and is dropped
// (left for GC) when the search returns.
type arena struct {
	nodes []node
}

func newArena(capacityHint int) *arena {
	return &arena{nodes: make([]node, 0, capacityHint)}
}

func (a *arena) alloc(n node) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

func (a *arena) at(i int) *node {
	return &a.nodes[i]
}

// Path is a single step of a reconstructed solution: the rotate
// position applied, the resulting state, and that state's heuristic
// value, which the report layer prints alongside each step.
type Path struct {
	Rotate int
	State  topspin.State
	H      int
}

// reconstruct walks parent back-references from idx to the root and
// returns the path root-exclusive, in forward order.
func reconstruct(a *arena, idx int) []Path {
	var rev []Path
	for idx != -1 {
		n := a.at(idx)
		if n.parent == -1 {
			break
		}
		rev = append(rev, Path{Rotate: n.rotate, State: n.state, H: n.h})
		idx = n.parent
	}
	out := make([]Path, len(rev))
	for i, p := range rev {
		out[len(rev)-1-i] = p
	}
	return out
}
