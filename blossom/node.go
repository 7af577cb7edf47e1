package blossom

import "github.com/katalvlaran/lvlath/heap"

// Node represents a vertex or a blossom (contracted odd cycle) in the
// solver's surface graph, per spec §3.
type Node struct {
	pos int // index into State.Nodes

	label      Label
	isTreeRoot bool
	isBlossom  bool
	isOuter    bool
	isProcessed bool
	isMarked   bool

	// dual is the lazily-updated dual variable; for an outer "+"/"−" node
	// the true value is dual ± tree.eps (see getTrueDual).
	dual float64

	// first[0]/first[1] are the heads of the two circular doubly-linked
	// incident-edge lists: first[0] holds edges where this node sits in
	// Edge.head[0], first[1] where it sits in Edge.head[1].
	first [2]*Edge

	matched *Edge // the matched edge, or nil

	// handle addresses this node's entry in its tree's heapMinusBlossoms,
	// non-nil only while this is a "−"-labelled blossom node.
	handle *heap.Handle[*Node]

	tree *Tree // owning tree; nil if infinity

	parentEdge     *Edge
	firstTreeChild *Node
	// treeSiblingNext/Prev serve two roles depending on context: linking
	// this node among its parent's other children, or — when this node is
	// a tree root — linking it into State's global root ring.
	treeSiblingNext *Node
	treeSiblingPrev *Node

	blossomParent      *Node
	blossomGrandparent *Node
	blossomSibling     *Node // next member in the enclosing blossom's ring

	// blossomRingStart is set only on a blossom node b: an arbitrary
	// member of b's own internal circuit, the entry point for walking
	// the blossomSibling ring that spec §4.5 Shrink builds.
	blossomRingStart *Node
}

// ringInsert inserts n into the circular doubly-linked ring headed at
// *first (via treeSiblingNext/Prev), or starts a new singleton ring if the
// ring was empty.
func ringInsert(first **Node, n *Node) {
	if *first == nil {
		n.treeSiblingNext = n
		n.treeSiblingPrev = n
		*first = n

		return
	}

	head := *first
	tail := head.treeSiblingPrev
	n.treeSiblingNext = head
	n.treeSiblingPrev = tail
	tail.treeSiblingNext = n
	head.treeSiblingPrev = n
	*first = n
}

// ringRemove removes n from the ring headed at *first.
func ringRemove(first **Node, n *Node) {
	if n.treeSiblingNext == n {
		*first = nil
	} else {
		n.treeSiblingPrev.treeSiblingNext = n.treeSiblingNext
		n.treeSiblingNext.treeSiblingPrev = n.treeSiblingPrev
		if *first == n {
			*first = n.treeSiblingNext
		}
	}
	n.treeSiblingNext = nil
	n.treeSiblingPrev = nil
}

// ringForEach walks the ring headed at first, calling fn on each member.
// Safe against fn removing the *current* member (the next pointer and the
// ring's last member are captured before fn runs), per the driver's
// iteration-tolerant-to-mutation requirement (spec §9 design notes).
func ringForEach(first *Node, fn func(n *Node)) {
	if first == nil {
		return
	}

	last := first.treeSiblingPrev
	n := first
	for {
		next := n.treeSiblingNext
		fn(n)
		if n == last || next == nil {
			break
		}
		n = next
	}
}

// addEdge inserts e into this node's dir-indexed incident-edge list.
// Complexity: O(1).
func (n *Node) addEdge(e *Edge, dir int) {
	list := &n.first[dir]
	if *list == nil {
		e.next[dir] = e
		e.prev[dir] = e
		*list = e

		return
	}

	head := *list
	tail := head.prev[dir]
	e.next[dir] = head
	e.prev[dir] = tail
	tail.next[dir] = e
	head.prev[dir] = e
	*list = e
}

// removeEdge unlinks e from this node's dir-indexed incident-edge list.
// Complexity: O(1).
func (n *Node) removeEdge(e *Edge, dir int) {
	list := &n.first[dir]
	if e.next[dir] == e {
		*list = nil
	} else {
		e.prev[dir].next[dir] = e.next[dir]
		e.next[dir].prev[dir] = e.prev[dir]
		if *list == e {
			*list = e.next[dir]
		}
	}
	e.next[dir] = nil
	e.prev[dir] = nil
}

// forEachIncident visits every edge incident to n, direction-0 edges
// before direction-1 edges (per spec §4.3 ordering note), calling fn with
// the edge and the direction under which it's linked to n.
func (n *Node) forEachIncident(fn func(e *Edge, dir int)) {
	for dir := 0; dir < 2; dir++ {
		first := n.first[dir]
		if first == nil {
			continue
		}
		e := first
		for {
			next := e.next[dir]
			fn(e, dir)
			if next == first {
				break
			}
			e = next
		}
	}
}

// forEachIncidentAll visits every edge incident to n regardless of
// direction, a convenience wrapper around forEachIncident for callers that
// don't care which side of the edge n sits on (used by expand, which
// relinks edges after a blossom dissolves).
func (n *Node) forEachIncidentAll(fn func(e *Edge)) {
	n.forEachIncident(func(e *Edge, _ int) { fn(e) })
}

// moveChildrenFromBlossom re-parents the expanded blossom's former
// external tree children (previously re-homed onto the blossom node by
// shrink) onto n, the ring member that inherits the blossom's old position
// in the tree.
func (n *Node) moveChildrenFromBlossom(b *Node) {
	if b.firstTreeChild == nil {
		return
	}
	var children []*Node
	ringForEach(b.firstTreeChild, func(c *Node) { children = append(children, c) })
	b.firstTreeChild = nil
	for _, c := range children {
		c.parentEdge = findEdgeBetween(n, c)
		ringInsert(&n.firstTreeChild, c)
	}
}

// addChild appends c as a tree child of n via parentEdge, propagating n's
// tree onto c. growing is true when called from Grow (kept for callers
// that branch on it; addChild itself performs the same link either way).
func (n *Node) addChild(c *Node, parentEdge *Edge, growing bool) {
	_ = growing
	c.parentEdge = parentEdge
	c.tree = n.tree
	ringInsert(&n.firstTreeChild, c)
}

// removeFromChildList detaches n from its parent's child ring. No-op if n
// has no parent edge (i.e., n is a tree root).
func (n *Node) removeFromChildList() {
	if n.parentEdge == nil {
		return
	}
	parent := n.parentEdge.getOpposite(n)
	ringRemove(&parent.firstTreeChild, n)
}

// moveChildrenTo re-parents every child of n onto b (used by shrink, when
// n becomes a blossom member and b is the new blossom node).
func (n *Node) moveChildrenTo(b *Node) {
	if n.firstTreeChild == nil {
		return
	}
	var children []*Node
	ringForEach(n.firstTreeChild, func(c *Node) { children = append(children, c) })
	n.firstTreeChild = nil
	for _, c := range children {
		ringInsert(&b.firstTreeChild, c)
	}
}

// forEachTreeChild visits each direct child of n.
func (n *Node) forEachTreeChild(fn func(c *Node)) {
	ringForEach(n.firstTreeChild, fn)
}

// treeGrandparent returns parentEdge's opposite's parentEdge's opposite:
// the "deeper" two-hop variant spec §9 names as the one shrink/expand must
// use consistently (resolving the two-implementations ambiguity noted
// there).
func (n *Node) treeGrandparent() *Node {
	if n.parentEdge == nil {
		return nil
	}
	parent := n.parentEdge.getOpposite(n)
	if parent.parentEdge == nil {
		return nil
	}

	return parent.parentEdge.getOpposite(parent)
}

// getPenultimateBlossom walks blossomGrandparent pointers up to the
// outermost ancestor, compressing the path as it goes (union-find by
// pointer-halving), and returns that outermost ancestor.
func (n *Node) getPenultimateBlossom() *Node {
	cur := n
	for cur.blossomGrandparent != nil && cur.blossomGrandparent != cur {
		cur.blossomGrandparent = cur.blossomGrandparent.blossomGrandparent2()
		cur = cur.blossomGrandparent
	}

	return cur
}

func (n *Node) blossomGrandparent2() *Node {
	if n.blossomGrandparent == nil {
		return n
	}

	return n.blossomGrandparent
}

// getPenultimateBlossomBelow is the expand-time variant: it returns the
// node immediately below the penultimate (outermost) blossom, i.e. stops
// one layer short, per spec §4.3's "variant that leaves the grandparent
// pointing to the node below the penultimate".
func (n *Node) getPenultimateBlossomBelow() *Node {
	cur := n
	for cur.blossomGrandparent != nil && cur.blossomGrandparent.blossomGrandparent != nil {
		cur = cur.blossomGrandparent
	}

	return cur
}

// getTrueDual returns the node's true dual: dual ± tree.eps for an outer
// "+"/"−" node, or the raw dual for anything else (infinity nodes,
// unlabeled blossoms).
func (n *Node) getTrueDual() float64 {
	if n.isOuter && n.tree != nil {
		switch n.label {
		case LabelPlus:
			return n.dual + n.tree.eps
		case LabelMinus:
			return n.dual - n.tree.eps
		}
	}

	return n.dual
}

// forEachRingMember visits each direct member of blossom b's own circuit
// (not recursing into nested blossoms), by walking the blossomSibling ring
// starting at b.blossomRingStart.
func forEachRingMember(b *Node, fn func(n *Node)) {
	start := b.blossomRingStart
	if start == nil {
		return
	}

	cur := start
	for {
		next := cur.blossomSibling
		fn(cur)
		if next == start {
			break
		}
		cur = next
	}
}

// forEachBlossomMember visits every original (non-blossom) node nested
// directly or transitively inside blossom b, recursing into any ring
// member that is itself a blossom.
func forEachBlossomMember(b *Node, fn func(n *Node)) {
	if !b.isBlossom {
		fn(b)

		return
	}

	forEachRingMember(b, func(m *Node) {
		if m.isBlossom {
			forEachBlossomMember(m, fn)
		} else {
			fn(m)
		}
	})
}
