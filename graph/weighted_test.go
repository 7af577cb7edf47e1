package graph_test

import (
	"testing"

	"github.com/katalvlaran/lvlath/graph"
	"github.com/stretchr/testify/require"
)

func TestWeightedViewTable(t *testing.T) {
	g := graph.New[int]()
	g.AddVertex(1)
	g.AddVertex(2)
	e, _ := g.AddEdge(1, 2)

	view := graph.NewWeightedView[int](g, map[graph.EdgeID]float64{e.ID: 7.5})
	require.Equal(t, 7.5, view.Weight(e.ID))

	view.SetWeight(e.ID, 3)
	require.Equal(t, 3.0, view.Weight(e.ID))
	// base is unaffected unless SetWeightPropagate is used.
	require.Equal(t, graph.DefaultEdgeWeight, g.Weight(e.ID))
}

func TestWeightedViewFallsBackToBase(t *testing.T) {
	g := graph.New[int]()
	g.AddVertex(1)
	g.AddVertex(2)
	e, _ := g.AddEdge(1, 2)

	view := graph.NewWeightedView[int](g, nil)
	require.Equal(t, graph.DefaultEdgeWeight, view.Weight(e.ID))
}

func TestWeightedViewFuncAndCache(t *testing.T) {
	g := graph.New[string]()
	g.AddVertex("a")
	g.AddVertex("b")
	e, _ := g.AddEdge("a", "b")

	calls := 0
	fn := func(u, w string) float64 {
		calls++
		return float64(len(u) + len(w))
	}

	view := graph.NewFuncWeightedView[string](g, g, fn, true)
	require.Equal(t, 2.0, view.Weight(e.ID))
	require.Equal(t, 2.0, view.Weight(e.ID))
	require.Equal(t, 1, calls, "cached view should only invoke fn once")
}

func TestWeightedViewSetWeightPropagate(t *testing.T) {
	g := graph.New[int]()
	g.AddVertex(1)
	g.AddVertex(2)
	e, _ := g.AddEdge(1, 2)

	view := graph.NewWeightedView[int](g, nil)
	view.SetWeightPropagate(e.ID, 4)
	require.Equal(t, 4.0, g.Weight(e.ID))
}
