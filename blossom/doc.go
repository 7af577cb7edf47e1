// Package blossom implements Kolmogorov's Blossom V algorithm for
// minimum/maximum weight perfect matching on general (non-bipartite)
// undirected weighted graphs, together with its three required
// collaborators: a flat node/edge/tree/tree-edge state model, an
// initializer (none/greedy/fractional warm start), and a primal/dual
// updater pair (grow, augment, shrink, expand; three dual-update
// strategies).
//
// What
//
//   - State holds the solver's entire mutable state as two flat slices
//     (Nodes, Edges) plus tree and tree-edge pools, in a "single owning
//     container, pass indices" style.
//   - Initialize builds a State from a *graph.Graph (via a Weighable view
//     for real-valued weights) under one of three strategies.
//   - The primal updater (grow/augment/shrink/expand) and dual updater
//     (single-tree / multiple-tree fixed-delta / multiple-tree
//     connected-components) alternate inside Match's main loop until no
//     tree remains, at which point Finish resolves nested blossom matching
//     and Match returns a Matching plus a DualSolution.
//
// Why
//
//   - This is the engine behind package pairing's Swiss-tournament round
//     builder (C9 of the design): reduce "pair players respecting byes,
//     color balance, and Swiss rules" to a maximum-weight perfect matching
//     and let Blossom V do the combinatorial heavy lifting.
//
// Concurrency
//
//   - A State is single-threaded cooperative: Match runs a solve to
//     completion (or failure) with no yield points, no cancellation, and no
//     internal goroutines, per the algorithm's inherently sequential
//     primal/dual alternation. Build one *graph.Graph, hand it to
//     Initialize, and call Match once; do not share a State across
//     goroutines.
//
// Errors
//
//   - ErrInvalidInput         odd vertex count (no perfect matching can exist).
//   - ErrNoPerfectMatching    a dual update would exceed NoPerfectMatchingThreshold.
//   - ErrInvalidHandle        declared for heap handle misuse; not returned by this package.
//   - ErrIllegalState         the solve ended with a vertex unmatched or matched to a non-vertex node.
package blossom
