package cfpq

import (
	"context"
	"testing"

	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/graph"
	"github.com/stretchr/testify/require"
)

func dyckGrammar() *grammar.CFG {
	// S -> a S b | S S | ε
	g := grammar.NewCFG("S")
	g.Add("S", grammar.T("a"), grammar.N("S"), grammar.T("b"))
	g.Add("S", grammar.N("S"), grammar.N("S"))
	g.Add("S")
	return g
}

func twoCycleDyckGraph() *graph.Graph {
	return graph.TwoCycles(2, 2, "a", "b")
}

func pairsFor(triples map[Triple]bool, start grammar.Nonterminal) map[[2]graph.Vertex]bool {
	return Select(triples, start, nil, nil)
}

func TestHellingsDyckTwoCycles(t *testing.T) {
	g := twoCycleDyckGraph()
	cfg := dyckGrammar()

	triples := Hellings(cfg, g)
	pairs := pairsFor(triples, "S")
	require.True(t, pairs[[2]graph.Vertex{"0", "0"}], "S derives empty word at every vertex")
	require.NotEmpty(t, pairs)
}

func TestThreeAlgorithmsAgree(t *testing.T) {
	g := twoCycleDyckGraph()
	cfg := dyckGrammar()

	hellingsPairs := pairsFor(Hellings(cfg, g), "S")
	matrixPairs := pairsFor(MatrixIteration(cfg, g), "S")

	tensorTriples, err := Tensor(context.Background(), cfg, g)
	require.NoError(t, err)
	tensorPairs := pairsFor(tensorTriples, "S")

	require.Equal(t, hellingsPairs, matrixPairs)
	require.Equal(t, hellingsPairs, tensorPairs)
}

func TestSelectFiltersByStartAndSets(t *testing.T) {
	cfg := grammar.NewCFG("S")
	cfg.Add("S", grammar.T("a"))
	g := graph.New()
	g.AddEdge("0", "a", "1")
	g.AddEdge("1", "a", "2")

	triples := Hellings(cfg, g)
	all := pairsFor(triples, "S")
	require.True(t, all[[2]graph.Vertex{"0", "1"}])
	require.True(t, all[[2]graph.Vertex{"1", "2"}])

	restricted := Select(triples, "S", VertexSet([]graph.Vertex{"0"}), VertexSet([]graph.Vertex{"1"}))
	require.True(t, restricted[[2]graph.Vertex{"0", "1"}])
	require.False(t, restricted[[2]graph.Vertex{"1", "2"}])
}

func TestHellingsSimpleBinaryGrammar(t *testing.T) {
	// S -> A B, A -> a, B -> b
	cfg := grammar.NewCFG("S")
	cfg.Add("S", grammar.N("A"), grammar.N("B"))
	cfg.Add("A", grammar.T("a"))
	cfg.Add("B", grammar.T("b"))

	g := graph.New()
	g.AddEdge("0", "a", "1")
	g.AddEdge("1", "b", "2")

	pairs := pairsFor(Hellings(cfg, g), "S")
	require.True(t, pairs[[2]graph.Vertex{"0", "2"}])
	require.Len(t, pairs, 1)
}

func TestMatrixIterationSimpleBinaryGrammar(t *testing.T) {
	cfg := grammar.NewCFG("S")
	cfg.Add("S", grammar.N("A"), grammar.N("B"))
	cfg.Add("A", grammar.T("a"))
	cfg.Add("B", grammar.T("b"))

	g := graph.New()
	g.AddEdge("0", "a", "1")
	g.AddEdge("1", "b", "2")

	pairs := pairsFor(MatrixIteration(cfg, g), "S")
	require.True(t, pairs[[2]graph.Vertex{"0", "2"}])
	require.Len(t, pairs, 1)
}
