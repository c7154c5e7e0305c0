package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddEdgeAutoAddsVertices(t *testing.T) {
	g := New()
	g.AddEdge("u", "a", "v")

	require.True(t, g.HasVertex("u"))
	require.True(t, g.HasVertex("v"))
	require.True(t, g.HasEdge("u", "a", "v"))
	require.False(t, g.HasEdge("v", "a", "u"))
}

func TestParallelEdgesDistinctLabels(t *testing.T) {
	g := New()
	g.AddEdge("u", "a", "v")
	g.AddEdge("u", "b", "v")

	require.True(t, g.HasEdge("u", "a", "v"))
	require.True(t, g.HasEdge("u", "b", "v"))
	require.Len(t, g.EdgesFrom("u"), 2)
}

func TestSelfLoop(t *testing.T) {
	g := New()
	g.AddEdge("v", "a", "v")
	require.True(t, g.HasEdge("v", "a", "v"))
}

func TestVerticesInsertionOrder(t *testing.T) {
	g := New()
	g.AddVertex("z")
	g.AddVertex("a")
	g.AddEdge("m", "x", "n")

	require.Equal(t, []Vertex{"z", "a", "m", "n"}, g.Vertices())
}

func TestEmptyGraph(t *testing.T) {
	g := New()
	require.Equal(t, 0, g.NumVertices())
	require.Empty(t, g.Edges())
}
