package cyk

import (
	"testing"

	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/graph"
	"github.com/stretchr/testify/require"
)

func TestContainsNullableDelStep(t *testing.T) {
	// S -> A B, A -> a | ε, B -> b : must still accept "b" alone.
	g := grammar.NewCFG("S")
	g.Add("S", grammar.N("A"), grammar.N("B"))
	g.Add("A", grammar.T("a"))
	g.Add("A")
	g.Add("B", grammar.T("b"))

	require.True(t, Contains(g, []graph.Label{"b"}))
	require.True(t, Contains(g, []graph.Label{"a", "b"}))
	require.False(t, Contains(g, []graph.Label{"a"}))
}

func TestContainsEmptyWord(t *testing.T) {
	g := grammar.NewCFG("S")
	g.Add("S", grammar.T("a"))
	g.Add("S")

	require.True(t, Contains(g, nil))
	require.True(t, Contains(g, []graph.Label{"a"}))
	require.False(t, Contains(g, []graph.Label{"a", "a"}))
}

func TestContainsDyckLanguage(t *testing.T) {
	// S -> a S b | S S | ε : balanced-bracket language.
	g := grammar.NewCFG("S")
	g.Add("S", grammar.T("a"), grammar.N("S"), grammar.T("b"))
	g.Add("S", grammar.N("S"), grammar.N("S"))
	g.Add("S")

	require.True(t, Contains(g, []graph.Label{"a", "b"}))
	require.True(t, Contains(g, []graph.Label{"a", "a", "b", "b"}))
	require.True(t, Contains(g, []graph.Label{"a", "b", "a", "b"}))
	require.False(t, Contains(g, []graph.Label{"a", "a", "b"}))
	require.False(t, Contains(g, []graph.Label{"b", "a"}))
}

func TestContainsRejectsUnrelatedWord(t *testing.T) {
	g := grammar.NewCFG("S")
	g.Add("S", grammar.T("x"), grammar.T("y"))

	require.False(t, Contains(g, []graph.Label{"a", "b"}))
	require.True(t, Contains(g, []graph.Label{"x", "y"}))
}
