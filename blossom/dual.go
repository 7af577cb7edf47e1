package blossom

// updateDualsSingleTree applies the largest admissible δ to t alone: the
// minimum of (a) the smallest slack in t's (+,∞) heap, (b) half the
// smallest slack in t's (+,+) heap, (c) the smallest slack in any
// (+,−) or (+,+) cross-tree heap touching t (on t's "+" side), and (d) the
// smallest dual among t's "−" blossoms (spec §4.6, "single tree").
func (s *State) updateDualsSingleTree(t *Tree) float64 {
	delta := s.admissibleDelta(t)
	if delta >= Infinity || delta <= 0 {
		return 0
	}

	s.applyDelta(t, delta)

	return delta
}

// applyDelta adds delta to t.eps (raising every "+" node's true dual and
// lowering every "−" node's true dual by delta, per the lazy encoding), and
// folds it into t.accumulatedEps for diagnostics.
func (s *State) applyDelta(t *Tree, delta float64) {
	t.eps += delta
	t.accumulatedEps += delta

	if t.eps > NoPerfectMatchingThreshold {
		s.infeasible = true
	}
}

// updateDualsFixedDelta implements DualFixedDelta: every active tree
// receives the same δ, the minimum of all trees' individually admissible
// deltas (spec §4.6), further bounded by half the smallest slack of every
// cross-tree (+,+) heap: both endpoints' trees move, so such an edge loses
// 2δ. A common δ leaves a cross-tree (+,−) edge's slack unchanged (its "+"
// side loses δ, its "−" side gains δ); admissibleDelta still bounds δ by
// those edges, so this strategy is conservative there.
func (s *State) updateDualsFixedDelta() float64 {
	delta := Infinity
	for _, t := range s.trees {
		if d := s.admissibleDelta(t); d < delta {
			delta = d
		}
		for _, te := range t.treeEdges {
			if h, ok := te.heapPlusPlus.FindMin(); ok {
				if v := h.Value().getTrueSlack() / 2; v < delta {
					delta = v
				}
			}
		}
	}
	if delta >= Infinity || delta <= 0 {
		return 0
	}
	for _, t := range s.trees {
		s.applyDelta(t, delta)
	}

	return delta
}

// admissibleDelta computes the largest δ that can be added to t's eps
// without driving any edge's true slack, or any "−" blossom's true dual,
// below zero (read-only bound computation; does not mutate t).
//
// Each heap's FindMin gives the minimum *raw* key, which — since every
// member of one heap shares the same current offset (tree.eps, or the sum
// of the two sides' eps for a cross-tree heap) — is also the minimum by
// *true* value; so it's safe to read the true value straight off the
// value FindMin returns, rather than trusting the (possibly stale) stored
// key itself (spec §3's lazy delta spreading).
func (s *State) admissibleDelta(t *Tree) float64 {
	delta := Infinity
	if h, ok := t.heapPlusInf.FindMin(); ok {
		if v := h.Value().getTrueSlack(); v < delta {
			delta = v
		}
	}
	if h, ok := t.heapPlusPlus.FindMin(); ok {
		if v := h.Value().getTrueSlack() / 2; v < delta {
			delta = v
		}
	}
	if h, ok := t.heapMinusBlossoms.FindMin(); ok {
		if v := h.Value().getTrueDual(); v < delta {
			delta = v
		}
	}
	for _, te := range t.treeEdges {
		if h, ok := te.heapPlusPlus.FindMin(); ok {
			if v := h.Value().getTrueSlack(); v < delta {
				delta = v
			}
		}
		dir := te.dirFrom(t)
		if h, ok := te.heapPlusMinus[dir].FindMin(); ok {
			if v := h.Value().getTrueSlack(); v < delta {
				delta = v
			}
		}
	}

	return delta
}

// tightPlusMinus reports whether te currently carries a near-tight (+,−) or
// (−,+) edge on either side (spec §4.6: components are built from tight
// cross-tree (+,−)/(−,+) edges, not from mere TreeEdge existence).
func tightPlusMinus(te *TreeEdge) bool {
	for dir := 0; dir < 2; dir++ {
		if h, ok := te.heapPlusMinus[dir].FindMin(); ok && h.Value().getTrueSlack() <= Eps {
			return true
		}
	}

	return false
}

// updateDualsConnectedComponents implements DualConnectedComponents: trees
// joined by a tight (+,−)/(−,+) cross-tree edge are grouped, and each group
// receives the minimum admissible δ across its own members, bounded also by
// that group's cross-tree edges to every other group — letting independent
// parts of the forest advance at different rates (spec §4.6).
func (s *State) updateDualsConnectedComponents() float64 {
	groups := s.groupConnectedTrees()

	inGroup := make(map[*Tree]int, len(s.trees))
	for gi, group := range groups {
		for _, t := range group {
			inGroup[t] = gi
		}
	}

	applied := 0.0
	for gi, group := range groups {
		delta := Infinity
		for _, t := range group {
			if d := s.admissibleDeltaComponent(t, gi, inGroup); d < delta {
				delta = d
			}
		}
		if delta >= Infinity || delta <= 0 {
			continue
		}
		for _, t := range group {
			s.applyDelta(t, delta)
		}
		if delta > applied {
			applied = delta
		}
	}

	return applied
}

// admissibleDeltaComponent is admissibleDelta's in-tree bounds (heapPlusInf,
// heapPlusPlus, heapMinusBlossoms — unchanged, since they don't involve any
// other tree) plus component-aware cross-tree bounds for t's TreeEdges:
//
//   - (+,+) cross-tree edge, other tree in the same group: both sides take
//     this round's δ, halved exactly like an in-tree (+,+) edge.
//   - (+,+) cross-tree edge, other tree in a different group: only t's own
//     δ moves this round (every group is applied in its own separate
//     applyDelta pass), so the edge's full current slack bounds it, however
//     that other group's processing order relates to this one — FindMin
//     always reflects whatever delta that other group has already had
//     applied, so this bound self-corrects regardless of order.
//   - (+,−)/(−,+) cross-tree edge, other tree in the same group: a common δ
//     leaves this edge's slack invariant (dual.go's FixedDelta rationale),
//     so it contributes no bound at all — the one behavior that actually
//     distinguishes this strategy from DualFixedDelta.
//   - (+,−)/(−,+) cross-tree edge, other tree in a different group: bounded
//     fully, same reasoning as the (+,+) cross-group case.
func (s *State) admissibleDeltaComponent(t *Tree, group int, inGroup map[*Tree]int) float64 {
	delta := Infinity
	if h, ok := t.heapPlusInf.FindMin(); ok {
		if v := h.Value().getTrueSlack(); v < delta {
			delta = v
		}
	}
	if h, ok := t.heapPlusPlus.FindMin(); ok {
		if v := h.Value().getTrueSlack() / 2; v < delta {
			delta = v
		}
	}
	if h, ok := t.heapMinusBlossoms.FindMin(); ok {
		if v := h.Value().getTrueDual(); v < delta {
			delta = v
		}
	}

	for _, te := range t.treeEdges {
		other := te.other(t)
		sameGroup := inGroup[other] == group

		if h, ok := te.heapPlusPlus.FindMin(); ok {
			v := h.Value().getTrueSlack()
			if sameGroup {
				v /= 2
			}
			if v < delta {
				delta = v
			}
		}

		if sameGroup {
			continue
		}
		dir := te.dirFrom(t)
		if h, ok := te.heapPlusMinus[dir].FindMin(); ok {
			if v := h.Value().getTrueSlack(); v < delta {
				delta = v
			}
		}
	}

	return delta
}

// groupConnectedTrees partitions s.trees into connected components joined
// by a tight (+,−)/(−,+) cross-tree edge (spec §4.6): trees linked only by
// a slack (+,+) edge, or by a TreeEdge with nothing currently tight on it,
// stay in separate components.
func (s *State) groupConnectedTrees() [][]*Tree {
	visited := make(map[*Tree]bool)
	var groups [][]*Tree

	for _, start := range s.trees {
		if visited[start] {
			continue
		}
		var group []*Tree
		queue := []*Tree{start}
		visited[start] = true
		for len(queue) > 0 {
			t := queue[0]
			queue = queue[1:]
			group = append(group, t)
			for _, te := range t.treeEdges {
				if !tightPlusMinus(te) {
					continue
				}
				other := te.other(t)
				if !visited[other] {
					visited[other] = true
					queue = append(queue, other)
				}
			}
		}
		groups = append(groups, group)
	}

	return groups
}
