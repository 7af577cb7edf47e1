package blossom

// -----------------------------------------------------------------------------
// Below are TEST-ONLY hooks exposing internal solver routines for black-box
// tests in package blossom_test. They forward to the unexported routines
// exactly as Match itself would, without altering behavior.
// -----------------------------------------------------------------------------

// TestHookRun drives a State created via Initialize through the main loop
// and the finish pass, exactly as Match does internally.
func TestHookRun(s *State) error {
	if err := s.run(); err != nil {
		return err
	}
	s.finish()

	return nil
}

// TestHookBumpFirstNodeDual adds delta to the first real node's dual and
// lowers the raw slack of each of its incident edges by the same amount
// (keeping slack = weight − duals), for tests that need to perturb an
// otherwise-optimal solution (spec §8 scenario E4) and confirm
// VerifyOptimality then reports a violation.
func TestHookBumpFirstNodeDual(s *State, delta float64) {
	n := s.realNodes()[0]
	n.dual += delta
	n.forEachIncidentAll(func(e *Edge) { e.slack -= delta })
}
