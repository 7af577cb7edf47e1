package blossom

import (
	"github.com/katalvlaran/lvlath/heap"
)

// heapRegistries bundles every heap.Registry the solver needs, one per heap
// family, so that any two heaps of the same family (e.g. two trees'
// heapPlusPlus) can meld into one another (spec §3, "melds happen within a
// family only").
type heapRegistries struct {
	plusPlus      *heap.Registry[*Edge]
	plusInf       *heap.Registry[*Edge]
	minusBlossoms *heap.Registry[*Node]

	crossPlusPlus  *heap.Registry[*Edge]
	crossPlusMinus *heap.Registry[*Edge]
}

func newHeapRegistries() *heapRegistries {
	return &heapRegistries{
		plusPlus:       heap.NewRegistry[*Edge](),
		plusInf:        heap.NewRegistry[*Edge](),
		minusBlossoms:  heap.NewRegistry[*Node](),
		crossPlusPlus:  heap.NewRegistry[*Edge](),
		crossPlusMinus: heap.NewRegistry[*Edge](),
	}
}

// Statistics counts how many times each primal operation ran and how long
// each phase took, for diagnostics (spec §7 "Statistics").
type Statistics struct {
	GrowCount    int
	AugmentCount int
	ShrinkCount  int
	ExpandCount  int

	InitNanos  int64
	MainNanos  int64
	FinishNanos int64
}

// State holds the solver's entire mutable state: two flat slices (Nodes,
// Edges, indexed by Node.pos/Edge.pos) plus the live tree/tree-edge pools,
// in a "single owning container, pass indices" style (spec §3).
type State struct {
	Nodes []*Node
	Edges []*Edge

	// sentinel anchors the global ring of tree roots via its
	// firstTreeChild/treeSiblingNext/Prev fields. It sits at Nodes[numReal],
	// a fixed index: blossom nodes created later are appended *after* it,
	// so "last element of Nodes" is not a safe way to find it (see
	// realNodes).
	sentinel *Node
	numReal  int

	trees []*Tree

	regs *heapRegistries

	opts Options

	// dualShift is the Minimize-space amount the initializer added to every
	// edge's weight: minus the smallest input weight when that weight is
	// negative, else 0 (spec §4.4's common prelude). totalWeight removes it
	// again, once per matched edge, when reporting the matching weight.
	dualShift float64

	// maximize records whether Options.Objective was Maximize, so Match
	// can negate the reported weight back after having negated every
	// input weight during initialization.
	maximize bool

	// infeasible is set once any tree's eps exceeds
	// NoPerfectMatchingThreshold, proving no perfect matching exists.
	infeasible bool

	Stats Statistics
}

// newState allocates n+1 nodes (n real vertices at pos 0..n-1, plus one
// sentinel at pos n used only as the anchor for the tree-root ring) and
// wires their heap registries.
func newState(n int, opts Options) *State {
	s := &State{
		Nodes:   make([]*Node, n+1),
		regs:    newHeapRegistries(),
		opts:    opts,
		numReal: n,
	}
	for i := 0; i <= n; i++ {
		s.Nodes[i] = &Node{pos: i}
	}
	s.sentinel = s.Nodes[n]

	return s
}

// addTreeRoot installs root as a fresh singleton tree and links it into the
// global root ring anchored at the sentinel's firstTreeChild.
func (s *State) addTreeRoot(root *Node) *Tree {
	t := newTree(root, s.regs)
	s.trees = append(s.trees, t)
	ringInsert(&s.sentinel.firstTreeChild, root)

	return t
}

// removeTreeRoot unlinks root from the global root ring. Called when root's
// tree is consumed by an augment.
func (s *State) removeTreeRoot(root *Node) {
	ringRemove(&s.sentinel.firstTreeChild, root)
}

// forEachRoot visits every current tree root via the sentinel-anchored
// ring.
func (s *State) forEachRoot(fn func(r *Node)) {
	ringForEach(s.sentinel.firstTreeChild, fn)
}

// removeTree detaches t from s.trees (order doesn't matter: swap-remove).
func (s *State) removeTree(t *Tree) {
	for i, other := range s.trees {
		if other == t {
			last := len(s.trees) - 1
			s.trees[i] = s.trees[last]
			s.trees = s.trees[:last]

			return
		}
	}
}
