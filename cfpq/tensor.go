package cfpq

import (
	"context"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/boolmatrix"
	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/graph"
)

// Tensor implements the RSM-vs-graph fixpoint: build G_m
// (the graph automaton, with every nullable nonterminal's diagonal preset)
// and R_m (the RSM's flattened automaton); repeatedly intersect R_m with
// G_m, take the closure, and for every closure entry whose endpoints are a
// (start, final) pair of the same box, promote a direct G_m edge labelled
// by that box's nonterminal; stop when the closure's nnz stabilises.
//
// Built directly on top of the automaton package's Intersect/Closure and
// the grammar package's RSM.
func Tensor(ctx context.Context, cfg *grammar.CFG, g *graph.Graph) (map[Triple]bool, error) {
	ecfg := grammar.ECFGFromCFG(cfg)
	rsm := grammar.RSMFromECFG(ecfg).Minimize()
	rAut := rsm.ToAutomaton()

	w := grammar.ToWeakCNF(cfg)
	verts := g.Vertices()
	gi := make(map[graph.Vertex]int, len(verts))
	for i, v := range verts {
		gi[v] = i
	}
	n := len(verts)

	gm := make(map[graph.Label]*boolmatrix.Matrix)
	matrixFor := func(l graph.Label) *boolmatrix.Matrix {
		mat, ok := gm[l]
		if !ok {
			mat = boolmatrix.New(n, n)
			gm[l] = mat
		}
		return mat
	}

	for _, e := range g.Edges() {
		matrixFor(e.Label).Set(gi[e.From], gi[e.To])
	}
	nullable := make(map[grammar.Nonterminal]bool, len(w.EpsProds))
	for nt := range w.EpsProds {
		nullable[nt] = true
	}
	for changed := true; changed; {
		changed = false
		for head, pairs := range w.BinProds {
			for pair := range pairs {
				if !nullable[head] && nullable[pair[0]] && nullable[pair[1]] {
					nullable[head], changed = true, true
				}
			}
		}
	}
	for nt := range nullable {
		mat := matrixFor(graph.Label(nt))
		for i := 0; i < n; i++ {
			mat.Set(i, i)
		}
	}

	prev := -1
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		gAut := automaton.FromTransitions(vertexStates(verts), gmTransitions(gm, verts), nil, nil)
		inter := automaton.Intersect(rAut, gAut)
		t, err := automaton.Closure(ctx, inter)
		if err != nil {
			return nil, err
		}

		for _, e := range t.Entries() {
			uPair := inter.StateAt(e[0]).(automaton.Pair)
			vPair := inter.StateAt(e[1]).(automaton.Pair)
			ntU, boxU, ok := rsm.Decompose(uPair.A)
			if !ok {
				continue
			}
			ntV, boxV, ok := rsm.Decompose(vPair.A)
			if !ok || ntV != ntU {
				continue
			}
			isStart, _ := rsm.BoxStartFinal(ntU, boxU)
			_, isFinal := rsm.BoxStartFinal(ntV, boxV)
			if !isStart || !isFinal {
				continue
			}
			from := uPair.B.(graph.Vertex)
			to := vPair.B.(graph.Vertex)
			matrixFor(graph.Label(ntU)).Set(gi[from], gi[to])
		}

		nnz := t.NNZ()
		if nnz == prev {
			break
		}
		prev = nnz
	}

	nts := make(map[grammar.Nonterminal]bool)
	for _, nt := range cfg.Nonterminals() {
		nts[nt] = true
	}

	out := make(map[Triple]bool)
	for label, mat := range gm {
		nt := grammar.Nonterminal(label)
		if !nts[nt] {
			continue // a terminal edge of the input graph, not a derived nonterminal fact
		}
		for _, e := range mat.Entries() {
			out[Triple{U: verts[e[0]], NT: nt, V: verts[e[1]]}] = true
		}
	}
	return out, nil
}

func vertexStates(verts []graph.Vertex) []automaton.State {
	out := make([]automaton.State, len(verts))
	for i, v := range verts {
		out[i] = v
	}
	return out
}

func gmTransitions(gm map[graph.Label]*boolmatrix.Matrix, verts []graph.Vertex) []automaton.Transition {
	var out []automaton.Transition
	for label, mat := range gm {
		for _, e := range mat.Entries() {
			out = append(out, automaton.Transition{From: verts[e[0]], Label: label, To: verts[e[1]]})
		}
	}
	return out
}
