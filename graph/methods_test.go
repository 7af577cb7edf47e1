package graph_test

import (
	"testing"

	"github.com/katalvlaran/lvlath/graph"
	"github.com/stretchr/testify/require"
)

func TestAddVertexAndEdge(t *testing.T) {
	g := graph.New[int]()
	require.True(t, g.AddVertex(1))
	require.True(t, g.AddVertex(2))
	require.False(t, g.AddVertex(1), "re-adding an existing vertex returns false")

	e, err := g.AddEdge(1, 2)
	require.NoError(t, err)
	require.Equal(t, 1, e.U)
	require.Equal(t, 2, e.W)

	// Re-adding the same pair returns the existing edge, not a new one.
	e2, err := g.AddEdge(2, 1)
	require.NoError(t, err)
	require.Equal(t, e.ID, e2.ID)

	require.Equal(t, 1, g.EdgeCount())
}

func TestAddEdgeMissingVertex(t *testing.T) {
	g := graph.New[int]()
	g.AddVertex(1)

	_, err := g.AddEdge(1, 2)
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestAddEdgeSelfLoop(t *testing.T) {
	g := graph.New[int]()
	g.AddVertex(1)

	_, err := g.AddEdge(1, 1)
	require.ErrorIs(t, err, graph.ErrSelfLoop)
}

func TestRemoveVertexUnlinksEdges(t *testing.T) {
	g := graph.New[int]()
	g.AddVertex(1)
	g.AddVertex(2)
	g.AddVertex(3)
	_, err := g.AddEdge(1, 2)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 3)
	require.NoError(t, err)

	require.NoError(t, g.RemoveVertex(1))
	require.Equal(t, 0, g.EdgeCount())

	edges, err := g.EdgesOf(2)
	require.NoError(t, err)
	require.Empty(t, edges)
}

func TestEdgesOfUnknownVertex(t *testing.T) {
	g := graph.New[int]()
	_, err := g.EdgesOf(42)
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestEdgeSetIsIDOrdered(t *testing.T) {
	g := graph.New[string]()
	for _, v := range []string{"a", "b", "c", "d"} {
		g.AddVertex(v)
	}
	_, _ = g.AddEdge("c", "d")
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("a", "c")

	edges := g.EdgeSet()
	require.Len(t, edges, 3)
	for i := 1; i < len(edges); i++ {
		require.Less(t, edges[i-1].ID, edges[i].ID)
	}
}

func TestBaseGraphIsUnweighted(t *testing.T) {
	g := graph.New[int]()
	g.AddVertex(1)
	g.AddVertex(2)
	e, _ := g.AddEdge(1, 2)

	require.Equal(t, graph.DefaultEdgeWeight, g.Weight(e.ID))
	g.SetWeight(e.ID, 99) // no-op
	require.Equal(t, graph.DefaultEdgeWeight, g.Weight(e.ID))
}
