package graph

import "sort"

// edgeBetween returns the existing edge between u and w, if any. Caller
// must hold muEdgeAdj for reading.
func (g *Graph[V]) edgeBetween(u, w V) *Edge[V] {
	for eid := range g.adjacency[u] {
		e := g.edges[eid]
		if (e.U == u && e.W == w) || (e.U == w && e.W == u) {
			return e
		}
	}

	return nil
}

// AddEdge inserts an undirected edge between u and w.
//
// Fails with ErrVertexNotFound if either endpoint is missing, and with
// ErrSelfLoop if u == w. If an edge between u and w already exists, that
// existing edge is returned unchanged (this is a simple graph: AddEdge does
// not create parallel edges; per spec B5, parallel edges reaching the
// solver through other means — e.g. a caller-built adjacency — must not
// corrupt incident-edge traversal, a property the solver's own Node/Edge
// incident lists in package blossom provide independently of this type).
//
// Complexity: O(deg(u)) to check for an existing edge.
func (g *Graph[V]) AddEdge(u, w V) (*Edge[V], error) {
	g.muVert.RLock()
	_, uok := g.vertices[u]
	_, wok := g.vertices[w]
	g.muVert.RUnlock()

	if !uok || !wok {
		return nil, ErrVertexNotFound
	}
	if u == w {
		return nil, ErrSelfLoop
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if existing := g.edgeBetween(u, w); existing != nil {
		return existing, nil
	}

	e := &Edge[V]{ID: g.nextEdgeID, U: u, W: w}
	g.nextEdgeID++
	g.edges[e.ID] = e
	g.adjacency[u][e.ID] = struct{}{}
	g.adjacency[w][e.ID] = struct{}{}

	return e, nil
}

// RemoveEdge deletes the edge with the given ID.
// Returns ErrEdgeNotFound if absent.
// Complexity: O(1).
func (g *Graph[V]) RemoveEdge(id EdgeID) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[e.U], id)
	delete(g.adjacency[e.W], id)
	delete(g.edges, id)

	return nil
}

// EdgesOf returns the edges incident to v. Returns ErrVertexNotFound if v
// is missing. Order is unspecified but stable across calls absent mutation.
// Complexity: O(deg(v)).
func (g *Graph[V]) EdgesOf(v V) ([]*Edge[V], error) {
	g.muVert.RLock()
	_, ok := g.vertices[v]
	g.muVert.RUnlock()

	if !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge[V], 0, len(g.adjacency[v]))
	for eid := range g.adjacency[v] {
		out = append(out, g.edges[eid])
	}

	return out, nil
}

// EdgeSet returns a snapshot slice of all edges, ordered by EdgeID.
// Complexity: O(E).
func (g *Graph[V]) EdgeSet() []*Edge[V] {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge[V], 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	// Insertion order == ID order; sorting keeps EdgeSet deterministic
	// regardless of map iteration order.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph[V]) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Source returns the edge's first endpoint (as originally given to AddEdge).
func (g *Graph[V]) Source(e *Edge[V]) V { return e.U }

// Target returns the edge's second endpoint (as originally given to AddEdge).
func (g *Graph[V]) Target(e *Edge[V]) V { return e.W }

// Weight returns DefaultEdgeWeight for every edge: a base Graph is
// unweighted. Wrap it in a WeightedView to assign real weights.
func (g *Graph[V]) Weight(_ EdgeID) float64 { return DefaultEdgeWeight }

// SetWeight is a no-op on a base Graph (it carries no weight table); it
// exists so Graph satisfies Weighable without forcing every caller through
// a WeightedView.
func (g *Graph[V]) SetWeight(_ EdgeID, _ float64) {}
