package blossom

// expand reverses shrink: a "−" blossom node b whose true dual has reached
// zero is dissolved back into its ring members, each resuming outer status
// and an alternating "+"/"−" label around the ring starting from whichever
// member touches b's own parentEdge (the member nearest the tree root
// keeps b's old label; walking the ring from there alternates the rest),
// per spec §4.5 "expand".
func (s *State) expand(b *Node) {
	s.Stats.ExpandCount++

	removeNodeFromHeap(b)

	var ring []*Node
	forEachRingMember(b, func(n *Node) { ring = append(ring, n) })

	base := b
	if b.matched != nil {
		base = b.matched.getOpposite(b)
	}
	baseIdx := 0
	for i, m := range ring {
		if m == base {
			baseIdx = i
			break
		}
	}
	reordered := append(append([]*Node(nil), ring[baseIdx:]...), ring[:baseIdx]...)

	// Every edge shrink moved onto b now needs to go back to whichever ring
	// member actually owns it. b's own incident lists hold all of them
	// (boundary edges once, ring-internal edges twice — once per endpoint),
	// so this must run before the loop below clears blossomParent, which is
	// how ownership is resolved.
	relinkBlossomEdges(b)

	t := b.tree
	for i, m := range reordered {
		m.blossomParent = nil
		m.blossomGrandparent = nil
		m.blossomSibling = nil
		m.isOuter = true

		if i == 0 {
			m.label = b.label
			m.parentEdge = b.parentEdge
			m.tree = t
			m.matched = b.matched
			if t != nil && m.label == LabelMinus && m.isBlossom {
				insertMinusBlossom(t, m)
			}
			continue
		}

		if i%2 == 1 {
			m.label = LabelMinus
			m.tree = t
			prev := reordered[i-1]
			m.parentEdge = findEdgeBetween(prev, m)
			if t != nil && m.isBlossom {
				insertMinusBlossom(t, m)
			}
		} else {
			m.label = LabelPlus
			m.tree = t
			prev := reordered[i-1]
			m.parentEdge = findEdgeBetween(prev, m)
			m.matched = findEdgeBetween(reordered[(i+1)%len(reordered)], m)
		}
	}

	reordered[0].moveChildrenFromBlossom(b)

	// Drop the blossom node: it no longer represents anything.
	removeBlossomNode(s, b)
}

// relinkBlossomEdges moves every edge currently touching b back onto the
// ring member that actually owns it, found by walking that side's original
// (never-migrated) endpoint up its blossomParent chain until it reaches b
// directly — the node one level below b in the nesting, which is exactly
// the ring member shrink moved this edge onto. A ring-internal edge (both
// sides on b) is resolved and relinked on each side independently.
func relinkBlossomEdges(b *Node) {
	var touching []*Edge
	b.forEachIncidentAll(func(e *Edge) { touching = append(touching, e) })

	for _, e := range touching {
		for d := 0; d < 2; d++ {
			if e.head[d] != b {
				continue
			}
			owner := e.headOriginal[d]
			for owner.blossomParent != b {
				owner = owner.blossomParent
			}
			b.removeEdge(e, d)
			e.head[d] = owner
			e.slack -= owner.dual
			owner.addEdge(e, d)
		}
	}
}

// findEdgeBetween returns the (necessarily unique, within a blossom ring)
// tree or matching edge directly linking consecutive ring members a and b.
func findEdgeBetween(a, b *Node) *Edge {
	var found *Edge
	a.forEachIncidentAll(func(e *Edge) {
		if e.getOpposite(a) == b {
			found = e
		}
	})

	return found
}

// removeNodeFromHeap deletes blossom node b's entry from its tree's
// heapMinusBlossoms.
func removeNodeFromHeap(b *Node) {
	if b.handle == nil {
		return
	}
	_ = b.handle.Delete()
	b.handle = nil
}

// removeBlossomNode swap-removes b from s.Nodes. Safe only once nothing
// else references b (expand has already relinked every incident edge and
// ring member away from it).
func removeBlossomNode(s *State, b *Node) {
	last := len(s.Nodes) - 1
	moved := s.Nodes[last]
	s.Nodes[b.pos] = moved
	moved.pos = b.pos
	s.Nodes = s.Nodes[:last]
}
