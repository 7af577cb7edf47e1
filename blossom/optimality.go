package blossom

import "math"

// VerifyOptimality computes spec §4.7's optimality error for the solver's
// current state: the sum of every negative dual's magnitude plus, for every
// edge, the magnitude of its true slack when that slack is negative or the
// edge is matched with a non-zero slack. A correct, finished solve has
// error < Eps; OK reports exactly that comparison.
//
// Meant for post-hoc verification (debug checks, spec §7), not for driving
// the solve itself — call it only after Match (or a manual run+finish) has
// produced a perfect matching with every blossom expanded, so every Edge's
// endpoints are original nodes rather than still-contracted blossoms.
func (s *State) VerifyOptimality() (errMag float64, ok bool) {
	for _, n := range s.realNodes() {
		if d := n.representativeDual(); d < 0 {
			errMag += -d
		}
	}
	for _, n := range s.Nodes[s.numReal+1:] {
		if d := n.getTrueDual(); d < 0 {
			errMag += -d
		}
	}

	for _, e := range s.Edges {
		slack := e.getTrueSlack()
		matched := e.head[0].matched == e
		switch {
		case slack < -Eps:
			errMag += math.Abs(slack)
		case matched && math.Abs(slack) > Eps:
			errMag += math.Abs(slack)
		}
	}

	return errMag, errMag < Eps
}
