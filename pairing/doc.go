// Package pairing builds one round of Swiss-tournament pairings by reducing
// the problem — byes, color balance, and the Swiss "don't replay the same
// opponent twice" preference — to a single maximum-weight perfect matching
// solved by package blossom (spec §4.8).
//
// # What & Why
//
// A round pairs every player with exactly one opponent (or, on an odd
// headcount, gives exactly one player a bye). Which pairing is "best" for a
// round is itself a caller concern, not this package's: pairing takes a
// caller-supplied WeightFunc scoring any two players' compatibility (higher
// is better — rating proximity, score-group adjacency, not-yet-played, …)
// and leaves that scoring function entirely up to the caller (spec §1
// Non-goals: "the weight-function that scores a potential pairing").
//
// Round's own job is mechanical: add a zero-weight dummy opponent when the
// field is odd, restrict the dummy to players who most need a bye, hand the
// resulting graph to blossom.Match in Maximize mode, and map the returned
// edge set back to (white, black) pairs by resolving each pair's colors
// against the six-level priority of spec §4.8.1.
//
// # Errors
//
//   - ErrOddSolverMismatch if the underlying solver returns an unmatched
//     player despite an even internal vertex count (an invariant violation,
//     never expected in practice).
package pairing
