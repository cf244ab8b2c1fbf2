package heuristic

import "sort"

// colorEdges holds the black and gray incidence sets for one node of
// the breakpoint graph. The graph is a multigraph over two colours;
// representing each colour as its own adjacency set (rather than a
// single edge-labelled structure) keeps the colour-alternating cycle
// search simple.
type colorEdges struct {
	black map[int]bool
	gray  map[int]bool
}

type breakpointGraph map[int]*colorEdges

func (g breakpointGraph) node(u int) *colorEdges {
	c, ok := g[u]
	if !ok {
		c = &colorEdges{black: map[int]bool{}, gray: map[int]bool{}}
		g[u] = c
	}
	return c
}

// breakpointCalculation builds the breakpoint graph of the padded
// permutation, destructively removes alternating black/gray cycles of
// increasing even length, and returns the number of black edges minus
// the number of cycles removed.
func breakpointCalculation(perm []int, k int) int {
	n := len(perm)
	p := make([]int, n+2)
	p[0] = 0
	copy(p[1:n+1], perm)
	p[n+1] = n + 1
	last := len(p) - 1

	g := breakpointGraph{}
	blackEdges := 0

	for i := 0; i < last; i++ {
		u, v := p[i], p[i+1]
		if abs(u-v) == 1 {
			continue
		}
		g.node(u).black[v] = true
		g.node(v).black[u] = true
		g.node(u).gray[u+1] = true
		if u != 0 {
			g.node(u).gray[u-1] = true
		}
		if v != last {
			g.node(v).gray[v+1] = true
		}
		g.node(v).gray[v-1] = true
		blackEdges++
	}

	for i := 0; i < last; i++ {
		u, v := p[i], p[i+1]
		if abs(u-v) != 1 {
			continue
		}
		if c, ok := g[u]; ok {
			delete(c.gray, v)
		}
		if c, ok := g[v]; ok {
			delete(c.gray, u)
		}
	}

	cycles := 0
	for length := 2; length <= 10; length++ {
		cycles += findKCycles(g, 2*length)
		cleanUpGraph(g)
	}
	return blackEdges - cycles
}

// findKCycles searches for alternating black/gray cycles of exactly k
// edges, one attempt per black edge (u,v) with u<v, visited in a
// fixed ascending order. Each cycle found is removed from g as it is
// found. Edges are visited deterministically (sorted node and
// neighbor order) rather than shuffled, so the heuristic value is a
// pure function of the input permutation.
func findKCycles(g breakpointGraph, k int) int {
	type edge struct{ u, v int }
	var nodes []int
	for u := range g {
		nodes = append(nodes, u)
	}
	sort.Ints(nodes)

	var edges []edge
	for _, u := range nodes {
		var vs []int
		for v := range g[u].black {
			vs = append(vs, v)
		}
		sort.Ints(vs)
		for _, v := range vs {
			if u < v {
				edges = append(edges, edge{u, v})
			}
		}
	}

	found := 0
	for _, e := range edges {
		if _, ok := g[e.u]; !ok {
			continue
		}
		if _, ok := g[e.v]; !ok {
			continue
		}
		path := []int{e.u, e.v}
		if findKCycleFrom(g, path, k, false) {
			found++
		}
	}
	return found
}

// findKCycleFrom extends path (already containing one black edge) by
// alternating gray/black edges, depth-first, in ascending neighbor
// order. On finding a closing edge of the right colour back to
// path[0] it removes every edge of the cycle from g and returns true.
func findKCycleFrom(g breakpointGraph, path []int, k int, useBlack bool) bool {
	current := path[len(path)-1]
	if len(path) == k {
		if useBlack {
			return false
		}
		c, ok := g[current]
		if !ok || !c.gray[path[0]] {
			return false
		}
		for i := 0; i < k; i++ {
			u, v := path[i], path[(i+1)%k]
			if i%2 == 0 {
				delete(g[u].black, v)
				delete(g[v].black, u)
			} else {
				delete(g[u].gray, v)
				delete(g[v].gray, u)
			}
		}
		return true
	}

	c, ok := g[current]
	if !ok {
		return false
	}
	neighbors := c.gray
	if useBlack {
		neighbors = c.black
	}
	var ns []int
	for v := range neighbors {
		ns = append(ns, v)
	}
	sort.Ints(ns)

	for _, next := range ns {
		if pathContains(path, next) {
			continue
		}
		path = append(path, next)
		if findKCycleFrom(g, path, k, !useBlack) {
			return true
		}
		path = path[:len(path)-1]
	}
	return false
}

func pathContains(path []int, v int) bool {
	for _, p := range path {
		if p == v {
			return true
		}
	}
	return false
}

func cleanUpGraph(g breakpointGraph) {
	var remove []int
	for u, c := range g {
		if len(c.black) == 0 || len(c.gray) == 0 {
			remove = append(remove, u)
		}
	}
	for _, u := range remove {
		delete(g, u)
	}
}

// Breakpoint rotates perm so tile 1 sits at index 0 and returns that
// rotation's black-edge count minus its removed-cycle count.
func Breakpoint(perm []int, k int) int {
	n := len(perm)
	idx := -1
	for i, v := range perm {
		if v == 1 {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Prune
	}
	rotated := make([]int, n)
	for i := 0; i < n; i++ {
		rotated[i] = perm[(i+idx)%n]
	}
	return breakpointCalculation(rotated, k)
}
