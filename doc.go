// Package graph (lvlath) is a minimum/maximum weight perfect matching
// solver for general (non-bipartite) undirected weighted graphs, built
// around Kolmogorov's Blossom V algorithm.
//
// 🚀 What is this module?
//
//	A small, thread-safe-where-it-matters, near-zero-dependency library
//	bringing together:
//
//	  • An undirected simple graph with a pluggable weight overlay
//	  • An addressable mergeable pairing heap (decrease-key, delete, meld)
//	  • A Blossom V solver: primal grow/augment/shrink/expand driven by
//	    three interchangeable dual-update strategies
//	  • A Swiss-tournament pairing generator that reduces round pairing —
//	    byes, color balance — to a single maximum-weight matching
//
// ✨ Why choose it?
//
//   - Exact        — computes true minimum/maximum weight perfect matchings,
//     not a heuristic approximation
//   - Inspectable  — exposes the dual solution and an optimality check, so
//     callers can verify results independently of trusting the solver
//   - Deterministic — insertion-order tie-breaks throughout; same input,
//     same options, same output
//   - Pure Go      — no cgo; the only non-stdlib dependency is a disjoint-set
//     implementation backing the heap's meld-identity union-find
//
// Everything is organized under four subpackages:
//
//	graph/   — Graph[V] and WeightedView[V]: vertices, edges, weight sources
//	heap/    — addressable pairing heap used by the solver's tree/blossom state
//	blossom/ — the solver itself: Node/Edge/Tree/TreeEdge, initializers,
//	           primal and dual updaters, the top-level Match driver
//	pairing/ — Round: player records + a weight function in, ordered
//	           (white, black) matchups out
//
// Quick ASCII example — a 4-cycle, minimum weight matching:
//
//	    1───(7)───2
//	    │         │
//	   (4)       (4)
//	    │         │
//	    4───(3)───3
//
//	min weight = 8, via edges {(2,3),(4,1)}; max weight = 10, via {(1,2),(3,4)}.
//
// Dive into blossom/doc.go and pairing/doc.go for the per-package design
// notes, complexity bounds, and error taxonomies.
//
//	go get github.com/katalvlaran/lvlath/blossom
package graph
