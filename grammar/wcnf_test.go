package grammar

import (
	"testing"

	"github.com/katalvlaran/pathql/graph"
	"github.com/stretchr/testify/require"
)

// wcnfAccepts is a small CYK-shaped membership check used only to
// cross-check ToWeakCNF's output against the grammars these tests build.
func wcnfAccepts(w *WCNF, word []graph.Label) bool {
	n := len(word)
	if n == 0 {
		return w.EpsProds[w.CFG.Start]
	}
	// table[i][j] = set of nonterminals deriving word[i:j+1]
	table := make([][]map[Nonterminal]bool, n)
	for i := range table {
		table[i] = make([]map[Nonterminal]bool, n)
		for j := range table[i] {
			table[i][j] = make(map[Nonterminal]bool)
		}
	}
	for i := 0; i < n; i++ {
		for nt, terms := range w.TermProds {
			if terms[word[i]] {
				table[i][i][nt] = true
			}
		}
	}
	for length := 2; length <= n; length++ {
		for i := 0; i+length-1 < n; i++ {
			j := i + length - 1
			for k := i; k < j; k++ {
				for nt, pairs := range w.BinProds {
					for pair := range pairs {
						if table[i][k][pair[0]] && table[k+1][j][pair[1]] {
							table[i][j][nt] = true
						}
					}
				}
			}
		}
	}
	return table[0][n-1][w.CFG.Start]
}

func TestToWeakCNFAcceptsSameLanguage(t *testing.T) {
	// S -> a S b | a b
	g := NewCFG("S")
	g.Add("S", T("a"), N("S"), T("b"))
	g.Add("S", T("a"), T("b"))

	w := ToWeakCNF(g)
	require.True(t, wcnfAccepts(w, []graph.Label{"a", "b"}))
	require.True(t, wcnfAccepts(w, []graph.Label{"a", "a", "b", "b"}))
	require.False(t, wcnfAccepts(w, []graph.Label{"a", "b", "b"}))
	require.False(t, wcnfAccepts(w, []graph.Label{}))
}

func TestToWeakCNFUnitAndEpsilon(t *testing.T) {
	// S -> A, A -> B, B -> b | ε
	g := NewCFG("S")
	g.Add("S", N("A"))
	g.Add("A", N("B"))
	g.Add("B", T("b"))
	g.Add("B")

	w := ToWeakCNF(g)
	require.True(t, w.EpsProds["S"], "unit closure must propagate ε to S")
	require.True(t, wcnfAccepts(w, []graph.Label{"b"}))
	require.True(t, wcnfAccepts(w, []graph.Label{}))
	require.False(t, wcnfAccepts(w, []graph.Label{"b", "b"}))
}

func TestRemoveUselessDropsUnreachableAndNonGenerating(t *testing.T) {
	g := NewCFG("S")
	g.Add("S", T("a"))
	g.Add("Unreachable", T("x"))
	g.Add("NonGenerating", N("NonGenerating"))

	h := removeUseless(g)
	for _, p := range h.Productions {
		require.NotEqual(t, Nonterminal("Unreachable"), p.Head)
		require.NotEqual(t, Nonterminal("NonGenerating"), p.Head)
	}
	require.True(t, wcnfAccepts(ToWeakCNF(h), []graph.Label{"a"}))
}
