package blossom

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath/graph"
)

// Matching is the result of a successful Match: every matched pair (u, w)
// appears under both Pairs[u] == w and Pairs[w] == u.
type Matching[V comparable] struct {
	Pairs map[V]V

	// TotalWeight is the sum of the original (pre-negation, pre-shift)
	// weights of every matched edge, in the caller's Objective sense
	// (i.e. already un-negated back from Maximize's internal sign flip).
	TotalWeight float64

	// Stats carries the solve's operation counts and phase timings
	// (spec §6 "Statistics").
	Stats Statistics
}

// DualSolution exposes the solver's final dual variables.
type DualSolution struct {
	// NodeDuals holds the true dual of each original vertex's current
	// representative node (its outermost enclosing blossom, or itself if
	// unblossomed) at the moment Match finished, indexed the same way
	// Match's returned Matching's vertices were enumerated internally.
	NodeDuals []float64

	// BlossomDuals holds the true dual of every blossom node still present
	// when Match reads the duals (creation order). Match reads them after
	// finish has expanded every blossom, so it comes back empty; the
	// blossom duals used during the solve are not reported (spec §4.9).
	BlossomDuals []float64
}

// translated bundles the result of mapping an external graph onto the
// solver's flat internal index space.
type translated[V comparable] struct {
	state *State
	index map[V]int // vertex -> Nodes[] position
	order []V       // position -> vertex, the inverse of index
}

// Initialize builds a ready-to-run State from g's vertices and weights's
// edge weights under opts.Init, plus the index/order slices needed to map
// back to V once Match's main loop finishes. Exported for callers (and
// tests) that want to inspect or drive the solver state directly instead
// of going through Match.
func Initialize[V comparable](g *graph.Graph[V], weights graph.Weighable, opts Options) (*State, map[V]int, []V, error) {
	tr, err := translate(g, weights, opts)
	if err != nil {
		return nil, nil, nil, err
	}

	return tr.state, tr.index, tr.order, nil
}

// translate builds a State from g's vertices and weights's edge weights,
// per spec §4.4's common prelude: allocate one node per vertex plus a
// sentinel, skip self-loops (the graph abstraction already forbids them),
// negate weights under Maximize, and, when the global minimum weight is
// negative, subtract it so every edge starts with a non-negative reduced
// cost (non-negative weights are left as they are).
func translate[V comparable](g *graph.Graph[V], weights graph.Weighable, opts Options) (*translated[V], error) {
	vertices := g.VertexSet()
	n := len(vertices)
	if n%2 != 0 {
		return nil, ErrInvalidInput
	}

	sort.Slice(vertices, func(i, j int) bool {
		return fmt.Sprintf("%v", vertices[i]) < fmt.Sprintf("%v", vertices[j])
	})

	st := newState(n, opts)
	st.maximize = opts.Objective == Maximize

	index := make(map[V]int, n)
	order := make([]V, n)
	for i, v := range vertices {
		index[v] = i
		order[i] = v
	}

	edges := g.EdgeSet()
	raw := make([]float64, len(edges))
	minW := 0.0
	for i, e := range edges {
		w := weights.Weight(e.ID)
		if opts.Objective == Maximize {
			w = -w
		}
		raw[i] = w
		if w < minW {
			minW = w
		}
	}
	st.dualShift = -minW

	for i, e := range edges {
		u := index[g.Source(e)]
		v := index[g.Target(e)]
		if u == v {
			continue
		}
		w := raw[i] - minW

		be := &Edge{
			pos:    len(st.Edges),
			weight: w,
			slack:  w,
		}
		be.head[0] = st.Nodes[u]
		be.head[1] = st.Nodes[v]
		be.headOriginal[0] = st.Nodes[u]
		be.headOriginal[1] = st.Nodes[v]
		st.Edges = append(st.Edges, be)
		st.Nodes[u].addEdge(be, 0)
		st.Nodes[v].addEdge(be, 1)
	}

	switch opts.Init {
	case InitNone:
		initNone(st)
	case InitGreedy:
		initGreedy(st)
	default:
		initFractional(st)
	}

	return &translated[V]{state: st, index: index, order: order}, nil
}

// realNodes returns every original (non-sentinel, non-blossom) node.
func (s *State) realNodes() []*Node {
	return s.Nodes[:s.numReal]
}

// initNone implements InitNone: every node starts outer, "+", with zero
// dual, unmatched, each its own singleton tree (spec §4.4).
func initNone(st *State) {
	for _, n := range st.realNodes() {
		n.isOuter = true
		n.label = LabelPlus
		n.dual = 0
		st.addTreeRoot(n)
	}
	linkBoundaryEdges(st)
}

// initGreedy implements InitGreedy: give every node a dual of half its
// cheapest incident edge's weight, then walk edges by ascending weight,
// matching any still-unmatched zero-slack pair (spec §4.4).
//
// e.slack must read weight-u.dual-v.dual at every instant outside the lazy
// tree.eps window (getTrueSlack only ever subtracts tree.eps, never a node's
// raw dual), so each dual assigned here is immediately folded into every
// incident edge's slack — the same bookkeeping dissolveTree performs when a
// node's dual changes permanently outside of delta-spreading.
func initGreedy(st *State) {
	for _, n := range st.realNodes() {
		min := Infinity
		n.forEachIncident(func(e *Edge, _ int) {
			if e.weight < min {
				min = e.weight
			}
		})
		if min == Infinity {
			min = 0
		}
		n.dual = min / 2
		if n.dual != 0 {
			n.forEachIncidentAll(func(e *Edge) { e.slack -= n.dual })
		}
	}

	sorted := append([]*Edge(nil), st.Edges...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].weight < sorted[j].weight })

	matched := make(map[*Node]bool)
	for _, e := range sorted {
		u, v := e.head[0], e.head[1]
		if matched[u] || matched[v] {
			continue
		}
		if e.weight-u.dual-v.dual > Eps {
			continue
		}
		u.matched = e
		v.matched = e
		matched[u] = true
		matched[v] = true
	}

	for _, n := range st.realNodes() {
		n.isOuter = true
		if n.matched != nil {
			n.label = LabelInfinity
			continue
		}
		n.label = LabelPlus
		st.addTreeRoot(n)
	}
	linkBoundaryEdges(st)
}

// linkBoundaryEdges recomputes every tree's heapPlusInf/heapPlusPlus
// membership and every pair of trees' TreeEdge from the current slacks,
// called once after an initializer has fixed duals and matching (spec
// §4.4's "build auxiliary graph" step). Only edges with a "+" endpoint are
// placed: toward a matched (infinity) node into that tree's heapPlusInf,
// toward another tree's "+" node into their TreeEdge. Edges between two
// matched nodes never enter a heap (spec note: infinity-labelled nodes
// carry no tree membership until Grow reaches them).
func linkBoundaryEdges(st *State) {
	seen := make(map[*Edge]bool)
	for _, n := range st.realNodes() {
		if n.label != LabelPlus {
			continue
		}
		n.forEachIncident(func(e *Edge, _ int) {
			if seen[e] {
				return
			}
			other := e.getOpposite(n)
			switch {
			case other.label == LabelInfinity:
				insertPlusInf(n.tree, e)
				seen[e] = true
			case other.label == LabelPlus && other.tree != n.tree:
				insertTreeEdgePlusPlus(st.regs, n.tree, other.tree, e)
				seen[e] = true
			}
		})
	}
}
