package blossom

import "github.com/katalvlaran/lvlath/heap"

// TreeEdge tracks the tight/near-tight edges between two distinct trees
// from and to, direction 0 meaning "points from 'from' towards 'to'"
// (spec §3).
type TreeEdge struct {
	from *Tree
	to   *Tree

	// heapPlusPlus holds (+,+) edges between the two trees, keyed by slack.
	heapPlusPlus *heap.Heap[*Edge]
	// heapPlusMinus[d] holds (+,−) edges where the "+" endpoint sits in
	// the tree on side d (0 = from, 1 = to), keyed by slack.
	heapPlusMinus [2]*heap.Heap[*Edge]

	// idxInFrom/idxInTo are this TreeEdge's index within from.treeEdges
	// and to.treeEdges respectively, for O(1) removeFromTreeEdgeList.
	idxInFrom int
	idxInTo   int
}

// other returns the tree on the opposite side of t from the given tree.
func (te *TreeEdge) other(t *Tree) *Tree {
	if te.from == t {
		return te.to
	}

	return te.from
}

// dirFrom returns the direction (0 or 1) under which t sits on te, i.e.
// 0 if t == te.from, 1 if t == te.to.
func (te *TreeEdge) dirFrom(t *Tree) int {
	if te.from == t {
		return 0
	}

	return 1
}

// removeFromTreeEdgeList unlinks te from both endpoints' treeEdges slices
// in O(1), using a swap-with-last-then-truncate and patching the moved
// element's stored index.
func (te *TreeEdge) removeFromTreeEdgeList() {
	fromEdges := te.from.treeEdges
	lastFrom := len(fromEdges) - 1
	movedFrom := fromEdges[lastFrom]
	fromEdges[te.idxInFrom] = movedFrom
	if movedFrom.from == te.from {
		movedFrom.idxInFrom = te.idxInFrom
	} else {
		movedFrom.idxInTo = te.idxInFrom
	}
	te.from.treeEdges = fromEdges[:lastFrom]

	toEdges := te.to.treeEdges
	lastTo := len(toEdges) - 1
	movedTo := toEdges[lastTo]
	toEdges[te.idxInTo] = movedTo
	if movedTo.from == te.to {
		movedTo.idxInFrom = te.idxInTo
	} else {
		movedTo.idxInTo = te.idxInTo
	}
	te.to.treeEdges = toEdges[:lastTo]
}
