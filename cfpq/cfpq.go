// Package cfpq implements context-free path
// queries over a graph.Graph via three algorithms that must agree on every
// input — Hellings' worklist, matrix-iteration fixpoint, and RSM-vs-graph
// tensor product — all sharing grammar.ToWeakCNF as their preprocessing
// stage (Hellings and matrix iteration) or grammar.ECFGFromCFG/RSMFromECFG
// (tensor).
package cfpq

import (
	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/graph"
)

// Triple is one derived (source, nonterminal, destination) fact, the unit
// both Hellings and matrix iteration converge on.
type Triple struct {
	U  graph.Vertex
	NT grammar.Nonterminal
	V  graph.Vertex
}

// Select filters a triple set down to the (u, v) pairs a QueryFacade-style
// caller wants: triples headed by start, with u in startSet and v in
// finalSet. Nil start/finalSet mean "every vertex".
func Select(triples map[Triple]bool, start grammar.Nonterminal, startSet, finalSet map[graph.Vertex]bool) map[[2]graph.Vertex]bool {
	out := make(map[[2]graph.Vertex]bool)
	for t := range triples {
		if t.NT != start {
			continue
		}
		if startSet != nil && !startSet[t.U] {
			continue
		}
		if finalSet != nil && !finalSet[t.V] {
			continue
		}
		out[[2]graph.Vertex{t.U, t.V}] = true
	}
	return out
}

// VertexSet builds a membership set from a vertex list, or nil for an
// empty/nil list (meaning "no restriction").
func VertexSet(vs []graph.Vertex) map[graph.Vertex]bool {
	if len(vs) == 0 {
		return nil
	}
	out := make(map[graph.Vertex]bool, len(vs))
	for _, v := range vs {
		out[v] = true
	}
	return out
}

// seed builds the initial triple set shared by Hellings and matrix
// iteration: one triple per matching graph edge plus
// one epsilon-loop triple per vertex per epsilon-producing nonterminal.
func seed(g *graph.Graph, w *grammar.WCNF) map[Triple]bool {
	out := make(map[Triple]bool)
	for _, e := range g.Edges() {
		for nt, terms := range w.TermProds {
			if terms[e.Label] {
				out[Triple{U: e.From, NT: nt, V: e.To}] = true
			}
		}
	}
	for _, v := range g.Vertices() {
		for nt := range w.EpsProds {
			out[Triple{U: v, NT: nt, V: v}] = true
		}
	}
	return out
}
