package automaton

import (
	"testing"

	"github.com/katalvlaran/pathql/graph"
	"github.com/stretchr/testify/require"
)

func TestBuilderAndTransitions(t *testing.T) {
	b := NewBuilder([]State{graph.Vertex("u"), graph.Vertex("v"), graph.Vertex("w")})
	b.AddTransition(graph.Vertex("u"), "a", graph.Vertex("v"))
	b.AddTransition(graph.Vertex("v"), "a", graph.Vertex("w"))
	b.SetStart(graph.Vertex("u"))
	b.SetFinal(graph.Vertex("w"))
	a := b.Build()

	require.Equal(t, 3, a.N())
	require.True(t, a.Matrix("a").Get(0, 1))
	require.Equal(t, 0, a.Matrix("missing").NNZ())

	trs := a.Transitions()
	require.Len(t, trs, 2)
	require.Equal(t, []State{graph.Vertex("u")}, a.StartStates())
	require.Equal(t, []State{graph.Vertex("w")}, a.FinalStates())
}

func TestFromGraphRestrictsStartFinal(t *testing.T) {
	g := graph.New()
	g.AddEdge("0", "a", "1")
	g.AddEdge("1", "a", "2")

	a := FromGraph(g, []graph.Vertex{"0"}, []graph.Vertex{"2"})
	require.Equal(t, 3, a.N())
	idx0, _ := a.Index(graph.Vertex("0"))
	idx2, _ := a.Index(graph.Vertex("2"))
	require.True(t, a.IsStart(idx0))
	require.True(t, a.IsFinal(idx2))
	idx1, _ := a.Index(graph.Vertex("1"))
	require.False(t, a.IsStart(idx1))
	require.False(t, a.IsFinal(idx1))
}
