package blossom

// shrink consumes a tight (+,+) edge e whose endpoints lie in the *same*
// tree: the two endpoints' paths to their common ancestor form an odd
// alternating cycle (a blossom), which is contracted into one new "+"
// blossom node (spec §4.5 "shrink").
//
// The blossom root (the cycle's unique member closest to the tree root) is
// found by marking every node on a's path up to the tree root, then walking
// up from b until the first marked node.
func (s *State) shrink(t *Tree, e *Edge) *Node {
	s.Stats.ShrinkCount++

	a, b := e.head[0], e.head[1]
	root := s.findBlossomRoot(a, b)

	var upFromA, upFromB []*Node
	collectRingHalf(a, root, &upFromA)
	collectRingHalf(b, root, &upFromB)

	ring := make([]*Node, 0, len(upFromA)+len(upFromB)-1)
	for i := len(upFromA) - 1; i >= 0; i-- {
		ring = append(ring, upFromA[i])
	}
	ring = append(ring, upFromB[:len(upFromB)-1]...)

	blossom := &Node{pos: len(s.Nodes)}
	s.Nodes = append(s.Nodes, blossom)
	blossom.isOuter = true
	blossom.isBlossom = true
	blossom.label = LabelPlus
	blossom.tree = t
	blossom.dual = 0
	blossom.parentEdge = root.parentEdge
	blossom.isTreeRoot = root.isTreeRoot
	if root.isTreeRoot {
		t.root = blossom
		s.removeTreeRoot(root)
		s.addTreeRootLinked(blossom)
	} else {
		parent := root.parentEdge.getOpposite(root)
		parent.removeFromChildList()
		parent.addChild(blossom, root.parentEdge, false)
	}

	inRing := make(map[*Node]bool, len(ring))
	for _, m := range ring {
		inRing[m] = true
	}

	blossom.blossomRingStart = ring[0]
	for i, m := range ring {
		next := ring[(i+1)%len(ring)]
		m.blossomSibling = next
		m.blossomParent = blossom
		m.blossomGrandparent = blossom
		m.isOuter = false

		// Re-parent only children outside the ring; a ring member's
		// neighbor-in-the-ring is handled via blossomSibling, not the
		// tree-child list.
		var outside []*Node
		m.forEachTreeChild(func(c *Node) {
			if !inRing[c] {
				outside = append(outside, c)
			}
		})
		for _, c := range outside {
			ringRemove(&m.firstTreeChild, c)
			ringInsert(&blossom.firstTreeChild, c)
		}

		m.forEachIncident(func(ed *Edge, dir int) {
			// m's raw dual is being swapped out for blossom's (fresh,
			// zero) raw dual as this edge's endpoint; add it back so
			// slack stays weight − dualRaw(other) − dualRaw(blossom).
			ed.slack += m.dual
			// m's own classification (or lack of one — a "−" ring
			// member's edge to an infinity node is never heap-tracked)
			// no longer applies once ed's tail becomes blossom;
			// linkNewPlusNode below reclassifies it from scratch.
			removeFromHeap(ed)
			ed.moveEdgeTail(m, blossom)
		})
	}

	blossom.matched = root.matched

	s.linkNewPlusNode(t, blossom)
	removeFromHeap(e)

	return blossom
}

// findBlossomRoot returns the lowest common tree-ancestor of a and b: it
// marks a and every ancestor of a, then walks up from b and returns the
// first marked node (or the tree root, if none is marked). parentEdge
// chains don't carry depth, so no lock-step walk is attempted.
func (s *State) findBlossomRoot(a, b *Node) *Node {
	marked := make(map[*Node]bool)

	cur := a
	for {
		marked[cur] = true
		if cur.parentEdge == nil {
			break
		}
		cur = cur.parentEdge.getOpposite(cur)
	}

	cur = b
	for {
		if marked[cur] {
			return cur
		}
		if cur.parentEdge == nil {
			return cur
		}
		cur = cur.parentEdge.getOpposite(cur)
	}
}

// collectRingHalf appends start itself, then each node above it walking up
// parentEdge links, ending with root (appended last), used to assemble one
// side of the blossom's circuit.
func collectRingHalf(start, root *Node, ring *[]*Node) {
	cur := start
	for {
		*ring = append(*ring, cur)
		if cur == root {
			return
		}
		cur = cur.parentEdge.getOpposite(cur)
	}
}

// addTreeRootLinked re-links a freshly-promoted blossom node into the
// global root ring in place of the root it replaced.
func (s *State) addTreeRootLinked(b *Node) {
	ringInsert(&s.sentinel.firstTreeChild, b)
}
