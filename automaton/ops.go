package automaton

import (
	"context"

	"github.com/katalvlaran/pathql/boolmatrix"
	"github.com/katalvlaran/pathql/graph"
)

// FromGraph builds an Automaton from g, with start/final treated as the
// start/final vertex sets: the graph restricted to start vertices as
// start states and final vertices as final states.
// Every graph vertex becomes a state, regardless of start/final.
func FromGraph(g *graph.Graph, start, final []graph.Vertex) *Automaton {
	verts := g.Vertices()
	states := make([]State, len(verts))
	for i, v := range verts {
		states[i] = v
	}
	b := NewBuilder(states)
	for _, e := range g.Edges() {
		b.AddTransition(e.From, e.Label, e.To)
	}
	for _, v := range start {
		b.SetStart(v)
	}
	for _, v := range final {
		b.SetFinal(v)
	}
	return b.Build()
}

// Pair is the tagged state (A, B) produced by Intersect: index(a,b) =
// index(a)*other.n + index(b). Exported so callers (e.g. rpq's
// intersect-and-close algorithm) can decompose an intersection state back
// into its operand states without reconstructing the index arithmetic
// themselves.
type Pair struct {
	A, B State
}

// Intersect computes the Kronecker intersection of a and b: n·m states,
// M_R[l] = kron(M_a[l], M_b[l]) for every label present in either operand
// (absent labels default to all-false), start/final sets are the
// cartesian product of the operands' start/final sets.
func Intersect(a, b *Automaton) *Automaton {
	n := a.n * b.n
	states := make([]State, n)
	for i := 0; i < a.n; i++ {
		for j := 0; j < b.n; j++ {
			states[i*b.n+j] = Pair{A: a.states[i], B: b.states[j]}
		}
	}

	labels := unionLabels(a, b)
	out := &Automaton{
		n:        n,
		index:    make(map[State]int, n),
		states:   states,
		matrices: make(map[graph.Label]*boolmatrix.Matrix, len(labels)),
		start:    make(map[int]struct{}),
		final:    make(map[int]struct{}),
	}
	for i, s := range states {
		out.index[s] = i
	}
	for _, l := range labels {
		out.matrices[l] = boolmatrix.Kron(a.Matrix(l), b.Matrix(l))
	}
	for i := range a.start {
		for j := range b.start {
			out.start[i*b.n+j] = struct{}{}
		}
	}
	for i := range a.final {
		for j := range b.final {
			out.final[i*b.n+j] = struct{}{}
		}
	}
	return out
}

func unionLabels(a, b *Automaton) []graph.Label {
	seen := make(map[graph.Label]struct{}, len(a.matrices)+len(b.matrices))
	for l := range a.matrices {
		seen[l] = struct{}{}
	}
	for l := range b.matrices {
		seen[l] = struct{}{}
	}
	out := make([]graph.Label, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	return out
}

// Closure computes the reflexive-transitive closure of a's label-agnostic
// reachability matrix T = Σ_l M[l]: repeat T := T + T@T until nnz(T)
// stabilises. ctx is checked once per outer iteration for cooperative
// cancellation; on cancellation the last-computed T is returned alongside
// ctx.Err().
//
// Reflexivity is not added implicitly: this is the transitive closure of
// the union of labelled edges, not of the identity.
func Closure(ctx context.Context, a *Automaton) (*boolmatrix.Matrix, error) {
	t := boolmatrix.New(a.n, a.n)
	for _, l := range a.Labels() {
		t = boolmatrix.Sum(t, a.Matrix(l))
	}

	prev := -1
	for {
		nnz := t.NNZ()
		if nnz == prev {
			return t, nil
		}
		prev = nnz
		select {
		case <-ctx.Done():
			return t, ctx.Err()
		default:
		}
		t = boolmatrix.Sum(t, boolmatrix.Product(t, t))
	}
}

// DirectSum builds, for every label shared between the query automaton r
// (size r.n) and the graph automaton g (size g.n), the block matrix
// [[R[l], 0],[0, G[l]]] of size (r.n+g.n)×(r.n+g.n). Labels present in
// only one operand contribute nothing, since no synchronized
// BFS step can advance through them.
func DirectSum(r, g *Automaton) map[graph.Label]*boolmatrix.Matrix {
	out := make(map[graph.Label]*boolmatrix.Matrix)
	for l := range r.matrices {
		if _, ok := g.matrices[l]; !ok {
			continue
		}
		out[l] = boolmatrix.Block(r.Matrix(l), g.Matrix(l))
	}
	return out
}
