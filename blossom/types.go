// Package blossom: sentinel errors, Options, enums, and numeric constants.
//
// Design follows tsp.Options/tsp.DefaultOptions (functional-options-free,
// struct-literal style: this package's Options is small and flat enough
// that tsp's plain-struct-plus-DefaultOptions idiom fits better than
// dijkstra's With* functional options) and tsp/types.go's sentinel-error
// block layout.
package blossom

import "errors"

// Validation / feasibility errors.
var (
	// ErrInvalidInput indicates the graph has an odd number of vertices,
	// so no perfect matching can exist.
	ErrInvalidInput = errors.New("blossom: odd vertex count, no perfect matching possible")

	// ErrNoPerfectMatching indicates a dual update would need to exceed
	// NoPerfectMatchingThreshold, proving no perfect matching exists.
	ErrNoPerfectMatching = errors.New("blossom: no perfect matching exists")

	// ErrInvalidHandle names a heap handle misuse; no function in this
	// package returns it.
	ErrInvalidHandle = errors.New("blossom: invalid heap handle")

	// ErrIllegalState indicates the solve ended with an original vertex
	// unmatched or matched to a non-vertex node; Match returns it in place
	// of a result.
	ErrIllegalState = errors.New("blossom: illegal solver state")
)

// Numeric constants from spec §6.
const (
	// Eps is the tolerance used for every "is tight" / sign comparison.
	Eps = 1e-9

	// Infinity stands in for "no edge" bounds in dual-update searches.
	Infinity = 1e100

	// NoPerfectMatchingThreshold bounds any admissible dual ε; exceeding
	// it proves infeasibility. Two orders of magnitude above any
	// realistic slack, so accumulated float error never triggers it
	// spuriously.
	NoPerfectMatchingThreshold = 1e10

	// DefaultEdgeWeight is a uniform edge weight of 1; no code in this
	// module reads it.
	DefaultEdgeWeight = 1.0
)

// Objective selects the optimization sense.
type Objective int

const (
	// Minimize finds a minimum weight perfect matching.
	Minimize Objective = iota

	// Maximize finds a maximum weight perfect matching (weights are
	// negated internally and the reported total is negated back).
	Maximize
)

// InitStrategy selects the initializer (§4.4).
type InitStrategy int

const (
	// InitNone marks every node outer with zero dual, no matching.
	InitNone InitStrategy = iota

	// InitGreedy runs the halve-dual-then-match-zero-slack-pairs warm start.
	InitGreedy

	// InitFractional runs InitGreedy then a fractional-matching LP-style
	// warm start pass (see init_fractional.go).
	InitFractional
)

// DualStrategy selects the dual update strategy (§4.6).
type DualStrategy int

const (
	// DualSingleTree updates only the one tree currently being processed.
	DualSingleTree DualStrategy = iota

	// DualFixedDelta applies one common δ to every tree each round.
	DualFixedDelta

	// DualConnectedComponents groups trees joined by tight (+,−)/(−,+)
	// cross-tree edges and assigns one δ per component.
	DualConnectedComponents
)

// Options configures a Match run. Zero value is not meaningful; use
// DefaultOptions and override fields as needed, mirroring tsp.Options.
type Options struct {
	// Objective selects Minimize or Maximize. Default: Minimize.
	Objective Objective

	// Init selects the initializer. Default: InitFractional.
	Init InitStrategy

	// Dual selects the dual-update strategy. Default: DualFixedDelta.
	Dual DualStrategy

	// UpdateDualsBefore runs a single-tree dual update before a tree's
	// primal phase in the main loop. Default: true.
	UpdateDualsBefore bool

	// UpdateDualsAfter runs a single-tree dual update after a tree's
	// primal phase, before advancing to the next root. Default: false.
	UpdateDualsAfter bool
}

// DefaultOptions returns Options with spec's documented defaults.
func DefaultOptions() Options {
	return Options{
		Objective:         Minimize,
		Init:              InitFractional,
		Dual:              DualFixedDelta,
		UpdateDualsBefore: true,
		UpdateDualsAfter:  false,
	}
}

// Label classifies an outer node's role in its alternating tree.
type Label int

const (
	// LabelPlus marks an even-depth ("+") node.
	LabelPlus Label = iota

	// LabelMinus marks an odd-depth ("−") node.
	LabelMinus

	// LabelInfinity marks a node outside any tree.
	LabelInfinity
)

func (l Label) String() string {
	switch l {
	case LabelPlus:
		return "+"
	case LabelMinus:
		return "−"
	default:
		return "∞"
	}
}
