package blossom

// grow extends tree t by one (+,∞) edge e whose true slack has reached
// zero: e's infinity endpoint w becomes a "−" child of e's "+" endpoint,
// and w's own matched partner x becomes a "+" grandchild, re-entering the
// tree and contributing its own incident edges to t's heaps (spec §4.5
// "grow").
//
// w and x were unlabeled an instant ago, with getTrueDual/getTrueSlack
// applying no tree.eps adjustment to either; the moment they take on a
// label in t, that formula starts applying t's *current* eps to them, which
// would otherwise be applied retroactively over the node's entire prior
// history. Adding +t.eps to the "−" node w's raw dual and −t.eps to the "+"
// node x's raw dual right here (and the opposite amount to every incident
// edge's raw slack: −t.eps for w's edges, +t.eps for x's, preserving
// slack = weight − dualRaw(u) − dualRaw(w)) keeps their true dual continuous
// across the transition, exactly as dissolveTree does in reverse.
func (s *State) grow(t *Tree, e *Edge) {
	s.Stats.GrowCount++

	u := e.head[0]
	w := e.head[1]
	if u.label != LabelPlus {
		u, w = w, u
	}

	removeFromHeap(e)

	w.label = LabelMinus
	w.isOuter = true
	w.dual += t.eps
	w.forEachIncidentAll(func(ed *Edge) { ed.slack -= t.eps })
	u.addChild(w, e, true)
	if w.isBlossom {
		insertMinusBlossom(t, w)
	}

	x := w.matched.getOpposite(w)
	x.label = LabelPlus
	x.isOuter = true
	x.dual -= t.eps
	x.forEachIncidentAll(func(ed *Edge) { ed.slack += t.eps })
	w.addChild(x, w.matched, true)

	s.linkNewPlusNode(t, x)
	s.linkNewMinusNode(t, w)
}

// linkNewPlusNode wires a freshly-labelled "+" node's incident edges into
// t's heaps (and into whichever TreeEdge/blossom heap each edge's other
// endpoint now calls for).
func (s *State) linkNewPlusNode(t *Tree, n *Node) {
	n.forEachIncident(func(e *Edge, _ int) {
		other := e.getOpposite(n)
		switch {
		case other == n:
			return
		case other.tree == nil && other.label == LabelInfinity:
			insertPlusInf(t, e)
		case other.tree == t && other.label == LabelPlus:
			insertPlusPlus(t, e)
		case other.tree != nil && other.tree != t && other.label == LabelPlus:
			insertTreeEdgePlusPlus(s.regs, t, other.tree, e)
		case other.tree != nil && other.tree != t && other.label == LabelMinus:
			insertTreeEdgePlusMinus(s.regs, t, other.tree, e, 0)
		}
	})
}

// linkNewMinusNode wires a freshly-labelled "−" node's incident edges: a
// "−" node only ever contributes to cross-tree (+,−) heaps (on the side
// where the other tree's endpoint is "+"), since (−,−) and (−,∞) pairs are
// never tight-relevant in Blossom V's dual structure (spec §4.6).
func (s *State) linkNewMinusNode(t *Tree, n *Node) {
	n.forEachIncident(func(e *Edge, _ int) {
		other := e.getOpposite(n)
		if other == n {
			return
		}
		if other.tree != nil && other.tree != t && other.label == LabelPlus {
			insertTreeEdgePlusMinus(s.regs, other.tree, t, e, 0)
		}
	})
}
