package grammar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRSMFromECFGBoxPerVariable(t *testing.T) {
	g := NewCFG("S")
	g.Add("S", T("a"), N("S"), T("b"))
	g.Add("S", T("a"), T("b"))

	rsm := RSMFromECFG(ECFGFromCFG(g))
	require.Len(t, rsm.Boxes, 1)
	require.Contains(t, rsm.Boxes, Nonterminal("S"))
	require.Greater(t, rsm.Boxes["S"].N(), 0)
}

func TestRSMToAutomatonDisjointStates(t *testing.T) {
	g := NewCFG("S")
	g.Add("S", N("A"))
	g.Add("A", T("a"))

	rsm := RSMFromECFG(ECFGFromCFG(g)).Minimize()
	total := 0
	for _, box := range rsm.Boxes {
		total += box.N()
	}

	a := rsm.ToAutomaton()
	require.Equal(t, total, a.N(), "flattened automaton must have exactly the sum of box states")
	require.NotEmpty(t, a.StartStates())
	require.NotEmpty(t, a.FinalStates())
}

func TestRSMBoxStartFinal(t *testing.T) {
	g := NewCFG("S")
	g.Add("S", T("a"))

	rsm := RSMFromECFG(ECFGFromCFG(g))
	box := rsm.Boxes["S"]
	start := box.StartStates()[0]
	isStart, _ := rsm.BoxStartFinal("S", start)
	require.True(t, isStart)

	final := box.FinalStates()[0]
	_, isFinal := rsm.BoxStartFinal("S", final)
	require.True(t, isFinal)
}
