package pairing

import (
	"sort"

	"github.com/katalvlaran/lvlath/blossom"
	"github.com/katalvlaran/lvlath/graph"
)

// Options configures a Round. Solver is forwarded to blossom.Match verbatim
// except for Objective, which Round always forces to Maximize — a pairing
// round seeks the most-desirable assignment, never the least (spec §4.8).
type Options struct {
	Solver blossom.Options
}

// DefaultOptions mirrors blossom.DefaultOptions for the embedded solver.
func DefaultOptions() Options {
	return Options{Solver: blossom.DefaultOptions()}
}

// Round builds one round of pairings from players, scored pairwise by w,
// per spec §4.8: an odd field gets a zero-weight dummy bye opponent
// restricted to the players who most need a bye, the rest are scored by w,
// the whole graph is solved as a maximum-weight perfect matching, and the
// resulting edges are mapped back to (white, black) pairs via the
// six-level color decision of §4.8.1 — with the dummy's pair reported as a
// bye instead of a game.
//
// An empty players list returns an empty, nil-error result. Complexity is
// whatever blossom.Match costs on |players|+1 vertices.
func Round[P comparable](players []Player[P], w WeightFunc[P], opts Options) ([]Matchup[P], error) {
	if len(players) == 0 {
		return nil, nil
	}

	g := graph.New[int]()
	for i := range players {
		g.AddVertex(i)
	}

	dummy := -1
	odd := len(players)%2 != 0
	if odd {
		dummy = len(players)
		g.AddVertex(dummy)
	}

	table := make(map[graph.EdgeID]float64)
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			e, err := g.AddEdge(i, j)
			if err != nil {
				return nil, err
			}
			table[e.ID] = w(players[i].ID, players[j].ID)
		}
	}

	if odd {
		for _, i := range selectByeCandidates(players) {
			e, err := g.AddEdge(i, dummy)
			if err != nil {
				return nil, err
			}
			table[e.ID] = 0
		}
	}

	view := graph.NewWeightedView[int](g, table)

	solverOpts := opts.Solver
	solverOpts.Objective = blossom.Maximize
	matching, _, err := blossom.Match[int](g, view, solverOpts)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(players))
	var pairs []Matchup[P]
	pairIdx := 0
	for i := 0; i < len(players); i++ {
		if seen[i] {
			continue
		}
		j, ok := matching.Pairs[i]
		if !ok {
			return nil, ErrOddSolverMismatch
		}
		seen[i] = true
		seen[j] = true

		if odd && j == dummy {
			pairs = append(pairs, Matchup[P]{White: players[i].ID, IsBye: true})
			continue
		}

		whiteID, blackID := decideColor(players[i], players[j], pairIdx)
		pairIdx++
		pairs = append(pairs, Matchup[P]{White: whiteID, Black: blackID})
	}

	return pairs, nil
}

// selectByeCandidates returns the indices of players eligible to receive a
// bye, by the rule of spec §4.8: those with the fewest byes so far. As
// documented in spec §9's open questions, the literal predicate is
// `byes < maxByes || byes == 0`, which — when every player shares the same
// nonzero bye count — admits nobody; that degenerate case falls back to
// making every player eligible, preserving the observed (if redundant-
// looking) behavior verbatim rather than silently excluding everyone.
func selectByeCandidates[P comparable](players []Player[P]) []int {
	maxByes := 0
	for _, p := range players {
		if p.Byes > maxByes {
			maxByes = p.Byes
		}
	}

	var eligible []int
	for i, p := range players {
		if p.Byes < maxByes || p.Byes == 0 {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		eligible = make([]int, len(players))
		for i := range players {
			eligible[i] = i
		}
	}

	sort.Ints(eligible)

	return eligible
}
