package pairing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/pairing"
)

func neutral(_, _ int) float64 { return 1 }

func playersOf(n int) []pairing.Player[int] {
	ps := make([]pairing.Player[int], n)
	for i := range ps {
		ps[i] = pairing.Player[int]{ID: i}
	}

	return ps
}

// Scenario E5: pairing round with all-neutral weights.
func TestRound_NeutralWeights_ScenarioE5(t *testing.T) {
	t.Run("four players, complete matching", func(t *testing.T) {
		pairs, err := pairing.Round(playersOf(4), neutral, pairing.DefaultOptions())
		require.NoError(t, err)
		require.Len(t, pairs, 2)
		for _, m := range pairs {
			require.False(t, m.IsBye)
		}
	})

	t.Run("three players, one bye", func(t *testing.T) {
		pairs, err := pairing.Round(playersOf(3), neutral, pairing.DefaultOptions())
		require.NoError(t, err)
		require.Len(t, pairs, 2)

		byes := 0
		for _, m := range pairs {
			if m.IsBye {
				byes++
			}
		}
		require.Equal(t, 1, byes)
	})

	t.Run("one player, a single bye", func(t *testing.T) {
		pairs, err := pairing.Round(playersOf(1), neutral, pairing.DefaultOptions())
		require.NoError(t, err)
		require.Len(t, pairs, 1)
		require.True(t, pairs[0].IsBye)
		require.Equal(t, 0, pairs[0].White)
	})

	t.Run("no players, empty result", func(t *testing.T) {
		pairs, err := pairing.Round(playersOf(0), neutral, pairing.DefaultOptions())
		require.NoError(t, err)
		require.Empty(t, pairs)
	})
}

// Every pairing covers every player exactly once (no duplicates, no drops).
func TestRound_CoversEveryPlayerExactlyOnce(t *testing.T) {
	ps := playersOf(8)
	pairs, err := pairing.Round(ps, neutral, pairing.DefaultOptions())
	require.NoError(t, err)

	seen := make(map[int]int)
	for _, m := range pairs {
		seen[m.White]++
		if !m.IsBye {
			seen[m.Black]++
		}
	}
	require.Len(t, seen, 8)
	for _, p := range ps {
		require.Equal(t, 1, seen[p.ID])
	}
}

// A weight function that strongly favors (0,1) and (2,3) should produce
// exactly those two pairs over any other grouping of four players.
func TestRound_PrefersHigherWeightPairing(t *testing.T) {
	w := func(a, b int) float64 {
		if (a == 0 && b == 1) || (a == 1 && b == 0) {
			return 100
		}
		if (a == 2 && b == 3) || (a == 3 && b == 2) {
			return 100
		}

		return 1
	}

	pairs, err := pairing.Round(playersOf(4), w, pairing.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	got := make(map[[2]int]bool)
	for _, m := range pairs {
		lo, hi := m.White, m.Black
		if lo > hi {
			lo, hi = hi, lo
		}
		got[[2]int{lo, hi}] = true
	}
	require.True(t, got[[2]int{0, 1}])
	require.True(t, got[[2]int{2, 3}])
}

// A player who has never received a bye is always eligible, even when
// everyone else has a higher bye count.
func TestSelectByeCandidates_FewestByesPreferred(t *testing.T) {
	ps := []pairing.Player[int]{
		{ID: 0, Byes: 2},
		{ID: 1, Byes: 0},
		{ID: 2, Byes: 2},
	}
	pairs, err := pairing.Round(ps, neutral, pairing.DefaultOptions())
	require.NoError(t, err)

	for _, m := range pairs {
		if m.IsBye {
			require.Equal(t, 1, m.White)
		}
	}
}

// The documented off-by-one: when every player shares the same nonzero bye
// count, nobody satisfies byes < maxByes and nobody has byes == 0 either —
// the fallback (everybody eligible) must still produce a valid round.
func TestRound_AllEqualByes_DegenerateFallback(t *testing.T) {
	ps := []pairing.Player[int]{
		{ID: 0, Byes: 3},
		{ID: 1, Byes: 3},
		{ID: 2, Byes: 3},
	}
	pairs, err := pairing.Round(ps, neutral, pairing.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, pairs, 2)
}
