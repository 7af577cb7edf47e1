package blossom

// initFractional implements InitFractional: the fractional matching LP warm
// start (spec §4.4). initGreedy already leaves one tree per still-unmatched
// node with its heapPlusInf/heapPlusPlus/TreeEdge heaps wired by
// linkBoundaryEdges — exactly the "auxiliary graph" the LP's warm start
// grows over — so this walks each of those trees independently, pushing it
// as far as admissible before handing the whole forest to the main loop.
func initFractional(st *State) {
	initGreedy(st)

	// Snapshot before growing: augment below dissolves trees out of
	// st.trees (possibly more than one per iteration, including entries
	// later in this very snapshot), so iteration must tolerate entries
	// that are no longer live by the time their turn comes.
	snapshot := append([]*Tree(nil), st.trees...)
	for _, t := range snapshot {
		if t.root.tree != t {
			continue // already consumed by an earlier tree's augment
		}
		growTreeToCritical(st, t)
	}
}

// growTreeToCritical grows t (spec §4.4's branchEps dial) until the first
// point a primal operation becomes applicable at criticalEps: grow every
// currently tight (+,∞) edge via the existing grow, take a tight cross-tree
// (+,+) edge via augment the moment the LP's relaxation already commits to
// that pair, and otherwise advance t.eps via the same single-tree δ bound
// the main loop itself uses (spec §4.6) — stopping once that bound hits
// zero.
//
// That single-tree bound already halves the smallest in-tree (+,+) slack as
// one of its candidate minima (dual.go's admissibleDelta), which is exactly
// criticalEps for the odd circuit SHRINK would contract — so branchEps stops
// there on its own, without this loop needing to build the blossom and a
// later step needing to expand it back. The circuit is simply left as an
// ordinary, maximally-dualed alternating tree for the main loop to shrink
// for real if it ever becomes relevant; "finish" has nothing to expand.
func growTreeToCritical(s *State, t *Tree) {
	for {
		if h, ok := t.heapPlusInf.FindMin(); ok && h.Value().getTrueSlack() <= Eps {
			s.grow(t, h.Value())
			continue
		}

		augmented := false
		for _, te := range t.treeEdges {
			if h, ok := te.heapPlusPlus.FindMin(); ok && h.Value().getTrueSlack() <= Eps {
				s.augment(h.Value())
				augmented = true
				break
			}
		}
		if augmented {
			return
		}

		if s.updateDualsSingleTree(t) <= 0 {
			return
		}
	}
}
