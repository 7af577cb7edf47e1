package blossom_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/blossom"
	"github.com/katalvlaran/lvlath/graph"
)

func buildGraph(t *testing.T, n int, edges [][3]float64) (*graph.Graph[int], *graph.WeightedView[int]) {
	t.Helper()

	g := graph.New[int]()
	for i := 0; i < n; i++ {
		g.AddVertex(i)
	}
	table := make(map[graph.EdgeID]float64)
	for _, ed := range edges {
		u, v, w := int(ed[0]), int(ed[1]), ed[2]
		e, err := g.AddEdge(u, v)
		require.NoError(t, err)
		table[e.ID] = w
	}

	return g, graph.NewWeightedView[int](g, table)
}

var fourCycle = [][3]float64{
	{1, 2, 7}, {2, 3, 4}, {3, 4, 3}, {4, 1, 4},
}

// Scenario E1.
func TestMatch_ScenarioE1_FourCycle(t *testing.T) {
	g, view := buildGraph(t, 5, fourCycle) // vertex 0 unused, keep ids 1..4
	g.RemoveVertex(0)

	m, _, err := blossom.Match[int](g, view, blossom.DefaultOptions())
	require.NoError(t, err)
	require.InDelta(t, 8, m.TotalWeight, blossom.Eps)

	opts := blossom.DefaultOptions()
	opts.Objective = blossom.Maximize
	m2, _, err := blossom.Match[int](g, view, opts)
	require.NoError(t, err)
	require.InDelta(t, 10, m2.TotalWeight, blossom.Eps)
}

var triangulation8 = [][3]float64{
	{0, 1, 8}, {0, 2, 10}, {1, 2, 8}, {0, 3, 11}, {1, 3, 5},
	{2, 5, 3}, {1, 5, 6}, {2, 4, 3}, {4, 5, 1}, {1, 6, 5},
	{3, 6, 4}, {3, 7, 5}, {6, 7, 2}, {5, 7, 6}, {4, 7, 7}, {1, 7, 5},
}

// Scenario E2.
func TestMatch_ScenarioE2_Triangulation(t *testing.T) {
	g, view := buildGraph(t, 8, triangulation8)

	m, _, err := blossom.Match[int](g, view, blossom.DefaultOptions())
	require.NoError(t, err)
	require.InDelta(t, 18, m.TotalWeight, blossom.Eps)

	opts := blossom.DefaultOptions()
	opts.Objective = blossom.Maximize
	m2, _, err := blossom.Match[int](g, view, opts)
	require.NoError(t, err)
	require.InDelta(t, 27, m2.TotalWeight, blossom.Eps)
}

// Scenario E3 / B1: empty graph.
func TestMatch_EmptyGraph(t *testing.T) {
	g := graph.New[int]()

	m, _, err := blossom.Match[int](g, g, blossom.DefaultOptions())
	require.NoError(t, err)
	require.Empty(t, m.Pairs)
	require.Zero(t, m.TotalWeight)
}

// B2: odd vertex count.
func TestMatch_OddVertexCount_ErrInvalidInput(t *testing.T) {
	g := graph.New[int]()
	g.AddVertex(1)
	g.AddVertex(2)
	g.AddVertex(3)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	_, _, err := blossom.Match[int](g, g, blossom.DefaultOptions())
	require.ErrorIs(t, err, blossom.ErrInvalidInput)
}

// B3: a disconnected odd-size component makes a perfect matching impossible.
func TestMatch_DisconnectedOddComponent_ErrNoPerfectMatching(t *testing.T) {
	g := graph.New[int]()
	for i := 1; i <= 6; i++ {
		g.AddVertex(i)
	}
	// Even vertex count overall, but components {1,2,3} and {4,5,6} are
	// each odd and isolated from one another.
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(4, 5)
	g.AddEdge(5, 6)

	_, _, err := blossom.Match[int](g, g, blossom.DefaultOptions())
	require.ErrorIs(t, err, blossom.ErrNoPerfectMatching)
}

// B4: self-loops are rejected by the graph itself, never reach the solver.
func TestGraph_SelfLoop_Rejected(t *testing.T) {
	g := graph.New[int]()
	g.AddVertex(1)
	_, err := g.AddEdge(1, 1)
	require.ErrorIs(t, err, graph.ErrSelfLoop)
}

// B5: re-adding an existing edge returns that same edge (the graph stays
// simple), so the later weight replaces the earlier one and the solver's
// lists see a single 1-2 edge.
func TestMatch_ParallelEdges(t *testing.T) {
	g := graph.New[int]()
	for i := 1; i <= 4; i++ {
		g.AddVertex(i)
	}
	table := make(map[graph.EdgeID]float64)
	add := func(u, v int, w float64) {
		e, err := g.AddEdge(u, v)
		require.NoError(t, err)
		table[e.ID] = w
	}
	add(1, 2, 1)
	add(1, 2, 5) // same 1-2 edge returned; its weight becomes 5
	add(3, 4, 2)
	view := graph.NewWeightedView[int](g, table)

	opts := blossom.DefaultOptions()
	opts.Objective = blossom.Maximize
	m, _, err := blossom.Match[int](g, view, opts)
	require.NoError(t, err)
	require.InDelta(t, 7, m.TotalWeight, blossom.Eps) // 5 + 2; the earlier weight 1 on 1-2 was overwritten
}

// R1: dual solution must satisfy the optimality check within tolerance.
func TestVerifyOptimality_ScenarioE1(t *testing.T) {
	g, view := buildGraph(t, 5, fourCycle)
	g.RemoveVertex(0)

	st, _, _, err := blossom.Initialize[int](g, view, blossom.DefaultOptions())
	require.NoError(t, err)

	tErr := runToCompletion(t, st)
	require.NoError(t, tErr)

	errMag, ok := st.VerifyOptimality()
	require.True(t, ok, "optimality error %v exceeds tolerance", errMag)
}

// E4: perturbing a single node's dual after an optimal solve must break
// the optimality check.
func TestVerifyOptimality_PerturbedDual_Fails(t *testing.T) {
	g, view := buildGraph(t, 5, fourCycle)
	g.RemoveVertex(0)

	st, _, _, err := blossom.Initialize[int](g, view, blossom.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, runToCompletion(t, st))

	_, ok := st.VerifyOptimality()
	require.True(t, ok)

	blossom.TestHookBumpFirstNodeDual(st, 1.0)

	_, ok = st.VerifyOptimality()
	require.False(t, ok)
}

// R2: Minimize on w and Maximize on -w agree on edge set and weight magnitude.
func TestMatch_MinimizeMaximizeDuality(t *testing.T) {
	g, view := buildGraph(t, 8, triangulation8)

	mMin, _, err := blossom.Match[int](g, view, blossom.DefaultOptions())
	require.NoError(t, err)

	negated := make([][3]float64, len(triangulation8))
	for i, ed := range triangulation8 {
		negated[i] = [3]float64{ed[0], ed[1], -ed[2]}
	}
	gNeg, viewNeg := buildGraph(t, 8, negated)
	opts := blossom.DefaultOptions()
	opts.Objective = blossom.Maximize
	mMax, _, err := blossom.Match[int](gNeg, viewNeg, opts)
	require.NoError(t, err)

	require.InDelta(t, mMin.TotalWeight, -mMax.TotalWeight, blossom.Eps)
	require.Equal(t, mMin.Pairs, mMax.Pairs)
}

// R3: every init/dual strategy combination reaches the same optimum.
func TestMatch_AllStrategyCombinations_SameWeight(t *testing.T) {
	inits := []blossom.InitStrategy{blossom.InitNone, blossom.InitGreedy, blossom.InitFractional}
	duals := []blossom.DualStrategy{blossom.DualSingleTree, blossom.DualFixedDelta, blossom.DualConnectedComponents}

	for _, initS := range inits {
		for _, dualS := range duals {
			g, view := buildGraph(t, 5, fourCycle)
			g.RemoveVertex(0)

			opts := blossom.DefaultOptions()
			opts.Init = initS
			opts.Dual = dualS
			m, _, err := blossom.Match[int](g, view, opts)
			require.NoError(t, err)
			require.InDelta(t, 8, m.TotalWeight, blossom.Eps)
		}
	}
}

// R4: the matching result round-trips through serialization unchanged.
func TestMatch_SerializationRoundTrip(t *testing.T) {
	g, view := buildGraph(t, 8, triangulation8)
	m, _, err := blossom.Match[int](g, view, blossom.DefaultOptions())
	require.NoError(t, err)

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var reloaded blossom.Matching[int]
	require.NoError(t, json.Unmarshal(data, &reloaded))
	require.Equal(t, m.Pairs, reloaded.Pairs)
	require.InDelta(t, m.TotalWeight, reloaded.TotalWeight, blossom.Eps)
}

// E6: determinism across repeated runs with identical options.
func TestMatch_Determinism(t *testing.T) {
	g, view := buildGraph(t, 8, triangulation8)

	m1, _, err := blossom.Match[int](g, view, blossom.DefaultOptions())
	require.NoError(t, err)
	m2, _, err := blossom.Match[int](g, view, blossom.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, m1.Pairs, m2.Pairs)
	require.InDelta(t, m1.TotalWeight, m2.TotalWeight, blossom.Eps)
}

func runToCompletion(t *testing.T, st *blossom.State) error {
	t.Helper()

	return blossom.TestHookRun(st)
}
