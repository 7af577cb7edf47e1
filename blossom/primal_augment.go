package blossom

import "github.com/katalvlaran/lvlath/heap"

// augment consumes a tight (+,+) edge e between two distinct trees: it
// flips the matched/unmatched edges along the alternating path from each
// endpoint to its tree's root, matches e itself, and dissolves both trees
// (their members leave tree membership entirely, becoming ordinary matched
// non-tree nodes) (spec §4.5 "augment").
func (s *State) augment(e *Edge) {
	s.Stats.AugmentCount++

	u := e.head[0]
	v := e.head[1]

	tu := u.tree
	tv := v.tree

	s.flipPathToRoot(u)
	s.flipPathToRoot(v)

	u.matched = e
	v.matched = e

	s.dissolveTree(tu)
	s.dissolveTree(tv)
}

// flipPathToRoot walks from "+" node n up to its tree's root two levels at
// a time: at each step, the "−" parent's own (previously unmatched) tree
// edge to its "+" grandparent becomes the new matched edge for both of
// them, shifting "matched" status one pair closer to the root every
// iteration until the root itself ends up matched (spec §4.5 "augment").
// n's own matched edge is left for the caller to set to the augmenting
// edge.
func (s *State) flipPathToRoot(n *Node) {
	cur := n
	for cur.parentEdge != nil {
		minusParent := cur.parentEdge.getOpposite(cur)
		grandEdge := minusParent.parentEdge
		plusGrandparent := grandEdge.getOpposite(minusParent)

		minusParent.matched = grandEdge
		plusGrandparent.matched = grandEdge

		cur = plusGrandparent
	}
}

// dissolveTree removes every node of t from tree membership, clears their
// labels to infinity, reclassifies every edge that referenced t's heaps,
// detaches t's tree-edges, and removes t from the solver's active tree
// list.
//
// Before clearing a member's tree pointer, its current tree.eps
// contribution is folded permanently into its raw dual (and symmetrically
// subtracted from every incident edge's raw slack): getTrueDual/getTrueSlack
// only apply the eps adjustment to nodes that are still outer with a live
// tree, so once n.tree becomes nil that adjustment must already be baked
// in, or the true value as of this instant would be lost.
//
// Every edge with both endpoints ending up outside any tree ((+,+) wholly
// inside t, or (+,∞) against a node that was already infinity) is now
// (∞,∞) and drops out of heap tracking entirely (spec §4.6: infinity pairs
// are never tight-relevant). Every cross-tree TreeEdge collapses: the side
// whose other endpoint keeps a "+" label becomes a (+,∞) edge of that
// surviving tree and is reinserted into its heapPlusInf; the side whose
// other endpoint is "−" becomes (∞,−) and is likewise dropped (spec §4.5
// "augment": "reclassifying every incident edge's heap membership"). The
// heap package only lets a Heap.Meld absorb another heap registered in the
// same Registry (heap/types.go's Registry doc), and heapPlusInf's registry
// differs from the cross-tree heaps' (state.go's heapRegistries), so the
// reclassification is done edge-by-edge via DeleteMin + insertPlusInf
// rather than a single bulk meld.
func (s *State) dissolveTree(t *Tree) {
	var members []*Node
	t.forEachTreeNode(func(n *Node) { members = append(members, n) })

	for _, n := range members {
		var delta float64
		switch n.label {
		case LabelPlus:
			delta = t.eps
		case LabelMinus:
			delta = -t.eps
		}

		n.forEachIncidentAll(func(e *Edge) {
			if delta != 0 {
				e.slack -= delta
			}
			other := e.getOpposite(n)
			if other.tree == t || other.tree == nil {
				// Both endpoints end up outside any tree: (∞,∞),
				// never heap-tracked.
				e.handle = nil
			}
		})
		if delta != 0 {
			n.dual += delta
		}

		if n.isBlossom && n.label == LabelMinus {
			removeNodeFromHeap(n)
		}

		n.label = LabelInfinity
		n.tree = nil
		n.parentEdge = nil
		n.firstTreeChild = nil
		n.isTreeRoot = false
	}

	for len(t.treeEdges) > 0 {
		te := t.treeEdges[0]
		other := te.other(t)

		plusFromT := te.dirFrom(t)
		plusFromOther := 1 - plusFromT

		// other keeps its "+" label on both of these sides: t's
		// former "+" (in the cross (+,+) heap) and t's former "−" (in
		// the heapPlusMinus slot where other carried "+") both become
		// (+,∞) boundary edges of other.
		drainInto := func(h *heap.Heap[*Edge], dest *Tree) {
			for {
				handle, ok := h.DeleteMin()
				if !ok {
					break
				}
				e := handle.Value()
				e.handle = nil
				insertPlusInf(dest, e)
			}
		}
		drainInto(te.heapPlusPlus, other)
		drainInto(te.heapPlusMinus[plusFromOther], other)

		// t carried "+" and other carried "−" here: other's node is
		// still "−", t's side is now infinity, so this becomes
		// (∞,−) and is dropped rather than reclassified.
		for {
			handle, ok := te.heapPlusMinus[plusFromT].DeleteMin()
			if !ok {
				break
			}
			handle.Value().handle = nil
		}

		te.removeFromTreeEdgeList()
	}

	s.removeTreeRoot(t.root)
	s.removeTree(t)
}
