package rpq

import (
	"context"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/boolmatrix"
	"github.com/katalvlaran/pathql/graph"
)

// BFS implements Algorithm B: a front-vector matrix
// recurrence over automaton.DirectSum. Run independently per source vertex
// (so that two sources can never have their frontiers conflated into one
// another's result — a correctness requirement the "single shared front"
// reading of the specification's prose cannot guarantee once two sources'
// frontiers converge on a common vertex; see DESIGN.md), each iteration:
//
//	M' := M · D[l], normalised so M's left r×r block is again the
//	identity (by moving each produced row i into row j wherever M'[i,j]
//	was set in the left block, discarding rows whose left block ended up
//	empty); OR every label's M' together and OR that into M.
//
// Each round's right half is added to that source's reachable set; the
// loop stops once a round adds no new entry to M.
func BFS(ctx context.Context, g *graph.Graph, queryDFA *automaton.Automaton, sources []graph.Vertex, finalVertices []graph.Vertex, shape Shape) (interface{}, error) {
	gAut := automaton.FromGraph(g, nil, nil)
	r := queryDFA.N()
	verts := g.Vertices()
	gi := make(map[graph.Vertex]int, len(verts))
	for i, v := range verts {
		gi[v] = i
	}
	gn := len(verts)

	direct := automaton.DirectSum(queryDFA, gAut)
	labels := make([]graph.Label, 0, len(direct))
	for l := range direct {
		labels = append(labels, l)
	}

	var finalFilter map[int]bool
	if finalVertices != nil {
		finalFilter = make(map[int]bool, len(finalVertices))
		for _, v := range finalVertices {
			finalFilter[gi[v]] = true
		}
	}

	reachable := make(map[graph.Vertex]map[graph.Vertex]bool, len(sources))
	for _, src := range sources {
		set, err := bfsOneSource(ctx, queryDFA, direct, labels, r, gn, gi[src])
		if err != nil {
			return nil, err
		}
		out := make(map[graph.Vertex]bool)
		for idx := range set {
			if finalFilter != nil && !finalFilter[idx] {
				continue
			}
			out[verts[idx]] = true
		}
		reachable[src] = out
	}

	if shape == Separated {
		res := make([]SeparatedResult, 0, len(sources))
		for _, src := range sources {
			res = append(res, SeparatedResult{Source: src, Reachable: reachable[src]})
		}
		return res, nil
	}

	srcSet := make(map[graph.Vertex]bool, len(sources))
	union := make(map[graph.Vertex]bool)
	for _, src := range sources {
		srcSet[src] = true
		for v := range reachable[src] {
			union[v] = true
		}
	}
	return MergedResult{Sources: srcSet, Reachable: union}, nil
}

// bfsOneSource runs the front-vector recurrence for a single source vertex
// (by graph-automaton index) and returns the set of graph-vertex indices
// reached across every round.
func bfsOneSource(ctx context.Context, queryDFA *automaton.Automaton, direct map[graph.Label]*boolmatrix.Matrix, labels []graph.Label, r, gn, srcIdx int) (map[int]bool, error) {
	front := boolmatrix.New(r, r+gn)
	for _, i := range queryDFA.StartIndices() {
		front.Set(i, r+srcIdx)
		front.Set(i, i)
	}

	result := make(map[int]bool)
	for {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		next := boolmatrix.New(r, r+gn)
		for _, l := range labels {
			prod := boolmatrix.Product(front, direct[l])
			normalizeInto(next, prod, r)
		}

		for j := r; j < r+gn; j++ {
			for i := 0; i < r; i++ {
				if next.Get(i, j) {
					result[j-r] = true
					break
				}
			}
		}

		merged := boolmatrix.Sum(front, next)
		if merged.NNZ() == front.NNZ() {
			return result, nil
		}
		front = merged
	}
}

// normalizeInto ORs prod into dst after re-establishing the left r×r
// identity invariant: for every non-zero (i,j) with j < r in prod, row i's
// full content is OR'd into dst's row j.
// Rows of prod with an empty left block contribute nothing.
func normalizeInto(dst, prod *boolmatrix.Matrix, r int) {
	for i := 0; i < prod.Rows; i++ {
		row := prod.GetRow(i)
		for j := 0; j < r; j++ {
			if row.Get(0, j) {
				dst.OrRowInto(j, row)
			}
		}
	}
}
