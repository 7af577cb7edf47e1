package blossom

import "github.com/katalvlaran/lvlath/heap"

// Tree is a single alternating tree: one root, a lazy eps, and three heaps
// used to find the next applicable primal operation in O(1)/O(log n)
// (spec §3).
type Tree struct {
	root *Node

	eps            float64
	accumulatedEps float64 // scratch used by the dual updater

	// heapPlusPlus holds this tree's (+,+) in-tree edges, keyed by slack.
	heapPlusPlus *heap.Heap[*Edge]
	// heapPlusInf holds this tree's (+,∞) boundary edges, keyed by slack.
	heapPlusInf *heap.Heap[*Edge]
	// heapMinusBlossoms holds this tree's "−" blossoms, keyed by dual.
	heapMinusBlossoms *heap.Heap[*Node]

	// currentEdge/currentDirection record the TreeEdge shared with a
	// neighbouring tree, as written by setCurrentEdges and cleared by
	// clearCurrentEdges (spec §4.7 "set_current_edges"). Neither the
	// driver nor any dual strategy calls those methods or reads these
	// fields.
	currentEdge     *TreeEdge
	currentDirection int

	// nextTree is a component link for trees; no code sets or reads it
	// (DualConnectedComponents groups trees via groupConnectedTrees).
	nextTree *Tree

	// treeEdges holds every TreeEdge incident to this tree, each knowing
	// its own index here for O(1) removal (see TreeEdge.idxInFrom and
	// TreeEdge.idxInTo).
	treeEdges []*TreeEdge
}

// newTree allocates a Tree rooted at root, with fresh heaps registered in
// the shared registries. The solver never melds these heaps; augment
// empties them entry by entry when the tree dissolves.
func newTree(root *Node, regs *heapRegistries) *Tree {
	t := &Tree{
		root:              root,
		heapPlusPlus:      heap.New[*Edge](heap.MinOrder, regs.plusPlus),
		heapPlusInf:       heap.New[*Edge](heap.MinOrder, regs.plusInf),
		heapMinusBlossoms: heap.New[*Node](heap.MinOrder, regs.minusBlossoms),
	}
	root.tree = t
	root.isTreeRoot = true

	return t
}

// addTreeEdge creates (or reuses) a TreeEdge between from (this tree) and
// to, with dir 0 meaning outgoing from 'from'.
func (t *Tree) addTreeEdge(to *Tree, regs *heapRegistries) *TreeEdge {
	for _, te := range t.treeEdges {
		if te.other(t) == to {
			return te
		}
	}

	te := &TreeEdge{
		from: t,
		to:   to,
		heapPlusPlus: heap.New[*Edge](heap.MinOrder, regs.crossPlusPlus),
	}
	te.heapPlusMinus[0] = heap.New[*Edge](heap.MinOrder, regs.crossPlusMinus)
	te.heapPlusMinus[1] = heap.New[*Edge](heap.MinOrder, regs.crossPlusMinus)

	te.idxInFrom = len(t.treeEdges)
	t.treeEdges = append(t.treeEdges, te)
	te.idxInTo = len(to.treeEdges)
	to.treeEdges = append(to.treeEdges, te)

	return te
}

// setCurrentEdges populates currentEdge/currentDirection on every tree
// adjacent to t via a TreeEdge. It has no caller in this package.
func (t *Tree) setCurrentEdges() {
	for _, te := range t.treeEdges {
		other := te.other(t)
		other.currentEdge = te
		if te.from == t {
			other.currentDirection = 1
		} else {
			other.currentDirection = 0
		}
	}
}

// clearCurrentEdges undoes setCurrentEdges.
func (t *Tree) clearCurrentEdges() {
	for _, te := range t.treeEdges {
		other := te.other(t)
		other.currentEdge = nil
	}
}

// Heap keys store the *raw* (un-shifted) slack/dual rather than the true
// value: every member of a given heap shares the same current tree(s), so
// the true-vs-raw offset is uniform across the heap at any moment, and the
// minimum by raw key is always also the minimum by true value (subtracting
// a constant preserves order). This is what lets dual updates skip
// rekeying every heap entry on every round (spec §3's "lazy delta
// spreading").

// insertPlusPlus inserts e into t's (+,+) heap, keyed by raw slack,
// storing the returned handle on e for later decrease/delete.
func insertPlusPlus(t *Tree, e *Edge) {
	h, err := t.heapPlusPlus.Insert(e.slack, e)
	if err != nil {
		return
	}
	e.handle = h
}

// insertPlusInf inserts e into t's (+,∞) heap, keyed by raw slack.
func insertPlusInf(t *Tree, e *Edge) {
	h, err := t.heapPlusInf.Insert(e.slack, e)
	if err != nil {
		return
	}
	e.handle = h
}

// insertMinusBlossom inserts blossom node b into t's (−)-blossom heap,
// keyed by raw dual.
func insertMinusBlossom(t *Tree, b *Node) {
	h, err := t.heapMinusBlossoms.Insert(b.dual, b)
	if err != nil {
		return
	}
	b.handle = h
}

// removeFromHeap deletes e's entry from whichever heap currently holds it,
// a no-op if e has no live handle.
func removeFromHeap(e *Edge) {
	if e.handle == nil {
		return
	}
	_ = e.handle.Delete()
	e.handle = nil
}

// insertTreeEdgePlusPlus records e, a (+,+) edge between two distinct
// trees, in the TreeEdge's crossPlusPlus heap, creating the TreeEdge if
// this is the first such edge found between the two trees.
func insertTreeEdgePlusPlus(regs *heapRegistries, from, to *Tree, e *Edge) {
	te := from.addTreeEdge(to, regs)
	h, err := te.heapPlusPlus.Insert(e.slack, e)
	if err != nil {
		return
	}
	e.handle = h
}

// insertTreeEdgePlusMinus records e, a (+,−) edge between two distinct
// trees, in the TreeEdge's direction-indexed heapPlusMinus, where dir
// identifies which side (0 = from, 1 = to) carries the "+" endpoint.
func insertTreeEdgePlusMinus(regs *heapRegistries, from, to *Tree, e *Edge, dir int) {
	te := from.addTreeEdge(to, regs)
	if te.from != from {
		// Reused TreeEdge created by 'to': heapPlusMinus is indexed
		// relative to te.from, so flip the caller's direction.
		dir = 1 - dir
	}
	h, err := te.heapPlusMinus[dir].Insert(e.slack, e)
	if err != nil {
		return
	}
	e.handle = h
}

// forEachTreeNode performs a depth-first walk of every node currently in
// this tree (root plus all descendants), per spec's "iterators over tree
// nodes (depth-first)".
func (t *Tree) forEachTreeNode(fn func(n *Node)) {
	var walk func(n *Node)
	walk = func(n *Node) {
		fn(n)
		n.forEachTreeChild(walk)
	}
	walk(t.root)
}
