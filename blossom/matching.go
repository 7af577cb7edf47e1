package blossom

import (
	"time"

	"github.com/katalvlaran/lvlath/graph"
)

// Match computes a minimum (or, under Options.Objective == Maximize,
// maximum) weight perfect matching of g, using weights as the edge-weight
// source (pass g itself for an unweighted graph, or a *graph.WeightedView
// wrapping it for real-valued weights).
//
// Returns ErrInvalidInput if g has an odd number of vertices, and
// ErrNoPerfectMatching if the graph has no perfect matching at all.
func Match[V comparable](g *graph.Graph[V], weights graph.Weighable, opts Options) (Matching[V], DualSolution, error) {
	t0 := time.Now()
	tr, err := translate(g, weights, opts)
	if err != nil {
		return Matching[V]{}, DualSolution{}, err
	}
	st := tr.state
	st.Stats.InitNanos = time.Since(t0).Nanoseconds()

	t1 := time.Now()
	if err := st.run(); err != nil {
		return Matching[V]{}, DualSolution{}, err
	}
	st.Stats.MainNanos = time.Since(t1).Nanoseconds()

	t2 := time.Now()
	st.finish()
	st.Stats.FinishNanos = time.Since(t2).Nanoseconds()

	pairs := make(map[V]V, len(tr.order))
	for i, v := range tr.order {
		n := st.Nodes[i]
		if n.matched == nil {
			return Matching[V]{}, DualSolution{}, ErrIllegalState
		}
		partnerIdx := n.matched.getOpposite(n).pos
		if partnerIdx >= len(tr.order) {
			return Matching[V]{}, DualSolution{}, ErrIllegalState
		}
		pairs[v] = tr.order[partnerIdx]
	}

	dual := DualSolution{NodeDuals: make([]float64, len(tr.order))}
	for i, n := range st.realNodes() {
		dual.NodeDuals[i] = n.representativeDual()
	}
	for _, n := range st.Nodes[st.numReal+1:] {
		dual.BlossomDuals = append(dual.BlossomDuals, n.getTrueDual())
	}

	return Matching[V]{Pairs: pairs, TotalWeight: st.totalWeight(), Stats: st.Stats}, dual, nil
}

// totalWeight sums the original (pre-negation, pre-shift) weight of every
// matched edge, undoing translate's per-edge minimum-weight subtraction
// and (under Maximize) sign flip.
func (s *State) totalWeight() float64 {
	seen := make(map[*Edge]bool)
	sum := 0.0
	pairCount := 0
	for _, n := range s.realNodes() {
		e := n.matched
		if e == nil || seen[e] {
			continue
		}
		seen[e] = true
		pairCount++
		sum += e.weight
	}
	sum += float64(pairCount) * -s.dualShift

	if s.maximize {
		return -sum
	}

	return sum
}

// representativeDual returns the true dual of n's outermost enclosing
// blossom (or n itself, if unblossomed).
func (n *Node) representativeDual() float64 {
	rep := n
	if rep.blossomParent != nil {
		rep = rep.getPenultimateBlossom()
	}

	return rep.getTrueDual()
}

// run executes the main primal/dual loop (spec §4.7): each iteration takes
// s.trees[0], optionally runs a single-tree dual update on it before and
// after processing it per Options, and applies every primal operation its
// heaps show as tight (stepTree). Terminates when no tree remains (every
// node matched).
//
// If that tree makes no primal progress and the configured strategy's dual
// update returns no improvement either, run escalates to
// DualConnectedComponents once before giving up — its component-local
// bounding can unstick a configuration FixedDelta's single global δ cannot.
func (s *State) run() error {
	for len(s.trees) > 0 {
		t := s.trees[0]
		treesBefore := len(s.trees)

		if s.opts.UpdateDualsBefore {
			s.updateDualsSingleTree(t)
		}

		progressed := s.stepTree(t)

		if s.infeasible {
			return ErrNoPerfectMatching
		}

		if s.opts.UpdateDualsAfter {
			s.updateDualsSingleTree(t)
		}

		if !progressed {
			// No primal operation is currently tight for t; a dual
			// update is required to make progress. If neither
			// UpdateDualsBefore nor UpdateDualsAfter is enabled, no
			// dual-update mechanism is configured at all, so there is
			// nothing left to try.
			if !s.opts.UpdateDualsBefore && !s.opts.UpdateDualsAfter {
				return ErrNoPerfectMatching
			}

			d := s.updateDuals(t)
			if s.infeasible {
				return ErrNoPerfectMatching
			}
			if d > 0 {
				continue
			}
			if s.stepTree(t) {
				continue
			}
			if len(s.trees) != treesBefore {
				continue
			}

			// Tree t made no progress under the configured
			// strategy: escalate to the connected-components
			// strategy before declaring infeasibility (spec §4.7).
			if s.opts.Dual != DualConnectedComponents {
				d = s.updateDualsConnectedComponents()
				if s.infeasible {
					return ErrNoPerfectMatching
				}
				if d > 0 || s.stepTree(t) {
					continue
				}
			}

			return ErrNoPerfectMatching
		}
	}

	return nil
}

// updateDuals dispatches to the configured DualStrategy. Single-tree mode
// updates only t; the two multi-tree strategies update every active tree
// at once (t is then just which tree the caller is about to revisit).
func (s *State) updateDuals(t *Tree) float64 {
	switch s.opts.Dual {
	case DualSingleTree:
		return s.updateDualsSingleTree(t)
	case DualConnectedComponents:
		return s.updateDualsConnectedComponents()
	default:
		return s.updateDualsFixedDelta()
	}
}

// stepTree applies primal operations to t until none is tight, checking
// in the order grow, shrink (tight in-tree (+,+) edge), augment (tight
// cross-tree (+,+) edge), expand (spec §4.7): grow is always safe to
// apply first since it never risks missing a cheaper augment/shrink this
// round (a fresh tight (+,+) edge created by growing is picked up the very
// next iteration). Returns true as soon as an augment has run (which
// dissolves t), false once nothing is tight; grows, shrinks and expands
// alone do not make it return true.
func (s *State) stepTree(t *Tree) bool {
	for {
		if h, ok := t.heapPlusInf.FindMin(); ok && h.Value().getTrueSlack() <= Eps {
			s.grow(t, h.Value())
			continue
		}
		if h, ok := t.heapPlusPlus.FindMin(); ok && h.Value().getTrueSlack() <= Eps {
			s.shrink(t, h.Value())
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
			return true
		}
		if h, ok := t.heapMinusBlossoms.FindMin(); ok && h.Value().getTrueDual() <= Eps {
			s.expand(h.Value())
			continue
		}

		return false
	}
}

// finish resolves any remaining nested blossoms once every tree has been
// consumed by augmenting matches, by repeatedly expanding every blossom
// node still present regardless of its dual (spec §4.7 "finish" step: at
// this point the matching is already perfect in the surface graph, but
// original vertices nested inside surviving blossoms still need their
// matched edge resolved down to the original graph).
func (s *State) finish() {
	for {
		var next *Node
		for _, n := range s.Nodes[s.numReal+1:] {
			if n.isBlossom {
				next = n
				break
			}
		}
		if next == nil {
			return
		}
		s.expandUnconditional(next)
	}
}

// expandUnconditional dissolves blossom b regardless of its dual or label,
// used only by finish once the main loop has already found a perfect
// surface matching.
func (s *State) expandUnconditional(b *Node) {
	s.expand(b)
}
