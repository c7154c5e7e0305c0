package rpq

import (
	"context"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/graph"
)

// Intersect implements Algorithm A: build the graph
// automaton restricted to startVertices/finalVertices, intersect it with
// the (already-compiled, minimal-DFA) query automaton, take the
// transitive closure (no reflexive entries are added), and report the
// graph vertices (from, to) of every closure entry that runs from a start
// state to a final state of the product.
func Intersect(ctx context.Context, g *graph.Graph, queryDFA *automaton.Automaton, startVertices, finalVertices []graph.Vertex) ([]Pair, error) {
	gAut := automaton.FromGraph(g, startVertices, finalVertices)
	inter := automaton.Intersect(queryDFA, gAut)

	t, err := automaton.Closure(ctx, inter)
	if err != nil {
		return nil, err
	}

	startSet := make(map[int]bool)
	for _, i := range inter.StartIndices() {
		startSet[i] = true
	}
	finalSet := make(map[int]bool)
	for _, i := range inter.FinalIndices() {
		finalSet[i] = true
	}

	var out []Pair
	for _, e := range t.Entries() {
		u, v := e[0], e[1]
		if !startSet[u] || !finalSet[v] {
			continue
		}
		uPair := inter.StateAt(u).(automaton.Pair)
		vPair := inter.StateAt(v).(automaton.Pair)
		out = append(out, Pair{From: uPair.B.(graph.Vertex), To: vPair.B.(graph.Vertex)})
	}
	return out, nil
}
