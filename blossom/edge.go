package blossom

import "github.com/katalvlaran/lvlath/heap"

// Edge is a solver edge between two current endpoints, which migrate under
// shrink/expand while headOriginal stays fixed for the edge's lifetime
// (spec §3).
type Edge struct {
	pos int

	// weight is the edge's original (possibly negated, for Maximize)
	// cost, fixed at initialization. Kept alongside the lazy slack
	// (rather than re-derived from it) so Finish's total-weight
	// computation doesn't have to walk blossom-dual chains, mirroring
	// Kolmogorov's reference implementation keeping cost and slack as
	// separate fields.
	weight float64

	// slack is lazy: the true slack is slack − ε0 − ε1, where each εi is
	// +tree.eps for a "+" outer endpoint, −tree.eps for a "−" outer
	// endpoint, 0 otherwise (see getTrueSlack).
	slack float64

	head         [2]*Node
	headOriginal [2]*Node

	// prev[d]/next[d] are sibling links within head[d]'s dir-d incident list.
	prev [2]*Edge
	next [2]*Edge

	handle *heap.Handle[*Edge] // back-reference into whichever heap currently holds this edge; nil if none
}

// getDirFrom returns the direction index (0 or 1) under which e is linked
// at node v, i.e. the index d with e.head[d] == v.
func (e *Edge) getDirFrom(v *Node) int {
	if e.head[0] == v {
		return 0
	}

	return 1
}

// getOpposite returns e's endpoint other than v.
func (e *Edge) getOpposite(v *Node) *Node {
	if e.head[0] == v {
		return e.head[1]
	}

	return e.head[0]
}

// getCurrentOriginal returns e's original (never-migrated) endpoint on v's
// side: headOriginal[d] for the d with head[d] == v. No blossom chain is
// walked.
func (e *Edge) getCurrentOriginal(v *Node) *Node {
	d := e.getDirFrom(v)

	return e.headOriginal[d]
}

// getTrueSlack returns the edge's true slack, undoing both endpoints'
// lazy tree-eps deltas.
func (e *Edge) getTrueSlack() float64 {
	s := e.slack
	for d := 0; d < 2; d++ {
		n := e.head[d]
		if n.isOuter && n.tree != nil {
			switch n.label {
			case LabelPlus:
				s -= n.tree.eps
			case LabelMinus:
				s += n.tree.eps
			}
		}
	}

	return s
}

// moveEdgeTail relinks e so that the endpoint currently equal to from
// becomes to, unlinking e from from's incident list and linking it into
// to's, preserving the dir slot. Used by Shrink when a boundary edge of a
// circuit member now touches the blossom node instead.
func (e *Edge) moveEdgeTail(from, to *Node) {
	d := e.getDirFrom(from)
	from.removeEdge(e, d)
	e.head[d] = to
	to.addEdge(e, d)
}
