// Package graph provides the minimal undirected-simple-graph abstraction
// the blossom matching solver (package blossom) depends on: vertex and edge
// enumeration, incident-edge lookup, endpoint lookup, and edge weight.
//
// What
//
//   - Graph[V] holds vertices of any comparable type V and undirected edges
//     between them, each carrying a stable EdgeID.
//   - WeightedView[V] decorates any Graph[V] (or anything satisfying
//     Weighable) with real-valued weights, supplied either as an
//     explicit EdgeID→float64 table or as a WeightFunc callback, with
//     optional memoization of callback results.
//
// Why
//
//   - package blossom never needs more than: enumerate vertices, enumerate
//     a vertex's incident edges, look up an edge's endpoints, and look up
//     (or assign) an edge's weight. The weight side of that surface is a
//     small interface (Weighable), so the solver can take its weights from
//     any source; the graph it reads vertices and edges from is always a
//     *Graph[V].
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - AddVertex: O(1).
//   - RemoveVertex: O(deg(v)) to unlink incident edges.
//   - AddEdge: O(deg(u)) to check for an existing edge.
//   - RemoveEdge: O(1).
//   - EdgesOf(v): O(deg(v)).
//   - VertexSet, EdgeSet: O(V), O(E).
//
// Errors
//
//   - ErrVertexNotFound  if an operation references a missing vertex.
//   - ErrEdgeNotFound    if an operation references a missing edge.
//   - ErrSelfLoop        if AddEdge is called with u == v (self-loops are
//     rejected by this package; package blossom's initializer additionally
//     ignores any self-loop edge it is handed directly, per spec B4).
package graph
