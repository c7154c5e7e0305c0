package cfpq

import (
	"github.com/katalvlaran/pathql/boolmatrix"
	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/graph"
)

// MatrixIteration implements the matrix-iteration fixpoint:
// one n×n boolean matrix per nonterminal, seeded from terminal/epsilon
// productions, then repeatedly M[A] := M[A] + M[B]@M[C] for every binary
// production A -> B C until no matrix's nnz grows in a full pass.
//
// Reuses grammar.ToWeakCNF and boolmatrix's Sum/Product exactly as
// automaton.Closure does for its own fixpoint loop.
func MatrixIteration(cfg *grammar.CFG, g *graph.Graph) map[Triple]bool {
	w := grammar.ToWeakCNF(cfg)
	verts := g.Vertices()
	gi := make(map[graph.Vertex]int, len(verts))
	for i, v := range verts {
		gi[v] = i
	}
	n := len(verts)

	m := make(map[grammar.Nonterminal]*boolmatrix.Matrix)
	matrixFor := func(nt grammar.Nonterminal) *boolmatrix.Matrix {
		mat, ok := m[nt]
		if !ok {
			mat = boolmatrix.New(n, n)
			m[nt] = mat
		}
		return mat
	}

	for t := range seed(g, w) {
		matrixFor(t.NT).Set(gi[t.U], gi[t.V])
	}
	for head := range w.BinProds {
		matrixFor(head)
	}

	prev := -1
	for {
		total := 0
		for _, mat := range m {
			total += mat.NNZ()
		}
		if total == prev {
			break
		}
		prev = total

		for head, pairs := range w.BinProds {
			for pair := range pairs {
				prod := boolmatrix.Product(matrixFor(pair[0]), matrixFor(pair[1]))
				m[head] = boolmatrix.Sum(matrixFor(head), prod)
			}
		}
	}

	out := make(map[Triple]bool)
	for nt, mat := range m {
		for _, e := range mat.Entries() {
			out[Triple{U: verts[e[0]], NT: nt, V: verts[e[1]]}] = true
		}
	}
	return out
}
