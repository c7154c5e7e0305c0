// Package cyk implements grammar membership: given a CFG and a
// word of graph.Label terminals, decide whether the grammar derives that
// exact word, via the classical Cocke-Younger-Kasami table-filling
// algorithm over strict Chomsky normal form.
//
// This needs full nullable-elimination CNF, distinct from the weak-CNF
// conversion the cfpq engines use, which is why this package calls
// grammar.ToChomskyNF rather than grammar.ToWeakCNF.
package cyk

import (
	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/graph"
)

// Contains reports whether g derives word exactly.
func Contains(g *grammar.CFG, word []graph.Label) bool {
	cnf, startNullable := grammar.ToChomskyNF(g)
	if len(word) == 0 {
		return startNullable
	}

	termOf := make(map[grammar.Nonterminal]map[graph.Label]bool)
	binOf := make(map[grammar.Nonterminal]map[[2]grammar.Nonterminal]bool)
	for _, p := range cnf.Productions {
		switch len(p.Body) {
		case 1:
			if termOf[p.Head] == nil {
				termOf[p.Head] = make(map[graph.Label]bool)
			}
			termOf[p.Head][p.Body[0].T] = true
		case 2:
			if binOf[p.Head] == nil {
				binOf[p.Head] = make(map[[2]grammar.Nonterminal]bool)
			}
			binOf[p.Head][[2]grammar.Nonterminal{p.Body[0].NT, p.Body[1].NT}] = true
		}
	}

	n := len(word)
	table := make([][]map[grammar.Nonterminal]bool, n)
	for i := range table {
		table[i] = make([]map[grammar.Nonterminal]bool, n)
		for j := range table[i] {
			table[i][j] = make(map[grammar.Nonterminal]bool)
		}
	}
	for i := 0; i < n; i++ {
		for nt, terms := range termOf {
			if terms[word[i]] {
				table[i][i][nt] = true
			}
		}
	}
	for length := 2; length <= n; length++ {
		for i := 0; i+length-1 < n; i++ {
			j := i + length - 1
			for k := i; k < j; k++ {
				for nt, pairs := range binOf {
					for pair := range pairs {
						if table[i][k][pair[0]] && table[k+1][j][pair[1]] {
							table[i][j][nt] = true
						}
					}
				}
			}
		}
	}
	return table[0][n-1][cnf.Start]
}
