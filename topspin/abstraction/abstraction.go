// Package abstraction projects a topspin state down to a smaller
// state, either by keeping a subset of tiles and blanking the rest
// (predicate form) or by collapsing every tile to an equivalence
// class (mapping form), and solves the resulting smaller state space
// by breadth-first search. The heuristic library builds its
// pattern-database-style estimators on top of this engine.
package abstraction

// Abstracted is a projected state: predicate-form abstractions use 0
// as the don't-care sentinel (never a genuine tile value, since tiles
// number 1..N); mapping-form abstractions store the mapped class at
// every position.
type Abstracted []uint8

// Predicate decides whether a tile's identity is kept under a
// predicate-form abstraction.
type Predicate func(tile int) bool

// Mapping collapses a tile to an equivalence-class label under a
// mapping-form abstraction.
type Mapping func(tile int) int

// ByPredicate keeps tile s[i] where p(s[i]) holds and blanks it (0)
// otherwise.
func ByPredicate(s []int, p Predicate) Abstracted {
	out := make(Abstracted, len(s))
	for i, v := range s {
		if p(v) {
			out[i] = uint8(v)
		}
	}
	return out
}

// ByMapping relabels every tile s[i] to m(s[i]).
func ByMapping(s []int, m Mapping) Abstracted {
	out := make(Abstracted, len(s))
	for i, v := range s {
		out[i] = uint8(m(v))
	}
	return out
}

// normalize rotates abs so the smallest non-zero value v sits at
// index v-1, its home slot in the solved circle, and lets goal tests
// read "tile at its own index" directly. When v occurs once (always
// the case in predicate form) this gives a canonical representative
// of the rotation class; when v repeats (mapping form), its first
// occurrence is used, so rotations of one state can normalize
// differently. An all-zero abstraction is returned unchanged.
func normalize(abs Abstracted) Abstracted {
	n := len(abs)
	minVal := 0
	minIdx := -1
	for i, v := range abs {
		if v != 0 && (minIdx == -1 || int(v) < minVal) {
			minVal = int(v)
			minIdx = i
		}
	}
	if minIdx == -1 {
		return abs
	}
	shift := ((minIdx-(minVal-1))%n + n) % n
	if shift == 0 {
		return abs
	}
	out := make(Abstracted, n)
	for i := 0; i < n; i++ {
		out[i] = abs[(i+shift)%n]
	}
	return out
}

// IsGoalPredicate reports whether abs, in predicate form, is solved:
// after normalization every non-zero slot i holds i+1.
func IsGoalPredicate(abs Abstracted) bool {
	norm := normalize(abs)
	for i, v := range norm {
		if v == 0 {
			continue
		}
		if int(v) != i+1 {
			return false
		}
	}
	return true
}

// IsGoalMapping reports whether abs, in mapping form, is solved: some
// rotation of abs equals [m(1), m(2), ..., m(n)].
func IsGoalMapping(abs Abstracted, m Mapping) bool {
	n := len(abs)
	for rot := 0; rot < n; rot++ {
		ok := true
		for i := 0; i < n; i++ {
			if abs[(i+rot)%n] != uint8(m(i+1)) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

// nonZero reports whether the k-window starting at pos contains at
// least one non-don't-care slot; windows of pure don't-cares are a
// no-op in the abstraction and must not be treated as edges.
func nonZero(abs Abstracted, pos, k int) bool {
	n := len(abs)
	for i := 0; i < k; i++ {
		if abs[(pos+i)%n] != 0 {
			return true
		}
	}
	return false
}

// reverseWindow reverses the k-tile window starting at pos, wrapping
// around the circle, mirroring topspin.Apply over an abstracted
// vector.
func reverseWindow(abs Abstracted, pos, k int) Abstracted {
	n := len(abs)
	out := make(Abstracted, n)
	copy(out, abs)
	for i := 0; i < k/2; i++ {
		left := (pos + i) % n
		right := (pos + k - 1 - i) % n
		out[left], out[right] = out[right], out[left]
	}
	return out
}
