// Package heuristic implements the distance estimators used by the
// search engines: the gap count, circular Manhattan distance, group
// and mod-distance pattern-database-style abstractions (both
// predicate and mapping form), and the breakpoint-graph bound.
package heuristic

import (
	"errors"
	"math"

	"github.com/drehermarco/topspin/topspin/abstraction"
)

// Prune is the sentinel a heuristic returns to mean "this branch
// cannot reach the goal" (or, for unreachable abstractions, "no
// useful bound is available"). Search drivers must discard any
// successor whose heuristic value is Prune without treating it as a
// candidate expansion.
const Prune = math.MaxInt32

// Kind is a closed tagged variant naming every heuristic this library
// implements. It replaces a name-keyed table of function pointers with
// an exhaustive switch at the single evaluation site in Evaluate.
type Kind int

const (
	KindGap Kind = iota
	KindManhattan
	KindGroup
	KindModDistance
	KindGroupC
	KindModDistanceC
	KindBreakpoint
)

// Spec names a heuristic and, for the group/mod-distance families,
// the group or modulus parameter that several variants share one
// constructor family over.
type Spec struct {
	Kind  Kind
	Param int // group count (Group/GroupC) or modulus (ModDistance/ModDistanceC); unused otherwise
}

// ErrUnknownHeuristic is returned by Lookup for a name outside the
// sixteen literal identifiers this library recognizes.
var ErrUnknownHeuristic = errors.New("heuristic: unknown name")

var names = map[string]Spec{
	"gap":            {Kind: KindGap},
	"manhattan":      {Kind: KindManhattan},
	"twoGroup":       {Kind: KindGroup, Param: 2},
	"threeGroup":     {Kind: KindGroup, Param: 3},
	"fourGroup":      {Kind: KindGroup, Param: 4},
	"fiveGroup":      {Kind: KindGroup, Param: 5},
	"oddEven":        {Kind: KindModDistance, Param: 2},
	"threeDistance":  {Kind: KindModDistance, Param: 3},
	"fourDistance":   {Kind: KindModDistance, Param: 4},
	"twoGroupC":      {Kind: KindGroupC, Param: 2},
	"threeGroupC":    {Kind: KindGroupC, Param: 3},
	"fourGroupC":     {Kind: KindGroupC, Param: 4},
	"oddEvenC":       {Kind: KindModDistanceC, Param: 2},
	"threeDistanceC": {Kind: KindModDistanceC, Param: 3},
	"fourDistanceC":  {Kind: KindModDistanceC, Param: 4},
	"breakpoint":     {Kind: KindBreakpoint},
}

// Lookup resolves one of the sixteen literal heuristic names to its
// Spec.
func Lookup(name string) (Spec, error) {
	spec, ok := names[name]
	if !ok {
		return Spec{}, ErrUnknownHeuristic
	}
	return spec, nil
}

// Names returns the literal heuristic identifiers this library
// recognizes, grouped by family.
func Names() []string {
	return []string{
		"gap", "manhattan",
		"twoGroup", "threeGroup", "fourGroup", "fiveGroup",
		"oddEven", "threeDistance", "fourDistance",
		"twoGroupC", "threeGroupC", "fourGroupC",
		"oddEvenC", "threeDistanceC", "fourDistanceC",
		"breakpoint",
	}
}

// Evaluate computes spec's heuristic value for perm under window size
// k, using cache for every abstraction-backed variant. This is the
// single site that switches over Kind; every heuristic family above
// is a case here, not a separate indirect call.
func Evaluate(spec Spec, perm []int, k int, cache *abstraction.Cache) int {
	switch spec.Kind {
	case KindGap:
		return Gap(perm)
	case KindManhattan:
		return CircularManhattan(perm, k)
	case KindGroup:
		return Group(perm, k, spec.Param, cache)
	case KindModDistance:
		return ModDistance(perm, k, spec.Param, cache)
	case KindGroupC:
		return GroupC(perm, k, spec.Param, cache)
	case KindModDistanceC:
		return ModDistanceC(perm, k, spec.Param, cache)
	case KindBreakpoint:
		return Breakpoint(perm, k)
	default:
		return Prune
	}
}
