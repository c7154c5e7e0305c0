package rpq

import (
	"context"
	"testing"

	"github.com/katalvlaran/pathql/graph"
	"github.com/katalvlaran/pathql/regexast"
	"github.com/stretchr/testify/require"
)

func TestIntersectTwoCyclesScenario1(t *testing.T) {
	g := graph.TwoCycles(3, 2, "a", "b")
	e, err := regexast.Parse("a* | b")
	require.NoError(t, err)
	dfa := regexast.ToDFA(regexast.Compile(e))

	pairs, err := Intersect(context.Background(), g, dfa,
		[]graph.Vertex{"0"}, []graph.Vertex{"1", "2", "3", "4"})
	require.NoError(t, err)

	got := make(map[Pair]bool)
	for _, p := range pairs {
		got[p] = true
	}
	require.True(t, got[Pair{From: "0", To: "1"}])
	require.True(t, got[Pair{From: "0", To: "2"}])
	require.True(t, got[Pair{From: "0", To: "3"}])
	require.True(t, got[Pair{From: "0", To: "4"}])
}

func TestBFSSingleSourceExcludesZeroLengthSelf(t *testing.T) {
	g := graph.New()
	g.AddEdge("0", "a", "1")
	e, err := regexast.Parse("a*")
	require.NoError(t, err)
	dfa := regexast.ToDFA(regexast.Compile(e))

	res, err := BFS(context.Background(), g, dfa, []graph.Vertex{"0"}, nil, Separated)
	require.NoError(t, err)
	list := res.([]SeparatedResult)
	require.Len(t, list, 1)
	require.Equal(t, graph.Vertex("0"), list[0].Source)
	require.True(t, list[0].Reachable["1"])
	require.False(t, list[0].Reachable["0"])
}

func TestBFSPathGraphSeparatedMultiSource(t *testing.T) {
	g := graph.New()
	g.AddEdge("0", "a", "1")
	g.AddEdge("1", "a", "2")
	e, err := regexast.Parse("a*")
	require.NoError(t, err)
	dfa := regexast.ToDFA(regexast.Compile(e))

	res, err := BFS(context.Background(), g, dfa, []graph.Vertex{"0", "1"}, []graph.Vertex{"2"}, Separated)
	require.NoError(t, err)
	list := res.([]SeparatedResult)
	bySrc := make(map[graph.Vertex]map[graph.Vertex]bool)
	for _, r := range list {
		bySrc[r.Source] = r.Reachable
	}
	require.True(t, bySrc["0"]["2"])
	require.True(t, bySrc["1"]["2"])
	require.False(t, bySrc["0"]["1"])
}

func TestBFSMergedShape(t *testing.T) {
	g := graph.New()
	g.AddEdge("0", "a", "1")
	g.AddEdge("1", "b", "2")
	e, err := regexast.Parse("a b")
	require.NoError(t, err)
	dfa := regexast.ToDFA(regexast.Compile(e))

	res, err := BFS(context.Background(), g, dfa, []graph.Vertex{"0"}, nil, Merged)
	require.NoError(t, err)
	merged := res.(MergedResult)
	require.True(t, merged.Sources["0"])
	require.True(t, merged.Reachable["1"])
	require.True(t, merged.Reachable["2"])
}

func TestIntersectAndBFSAgreeOnFullSourcesFinals(t *testing.T) {
	g := graph.New()
	g.AddEdge("0", "a", "1")
	g.AddEdge("1", "a", "2")
	e, err := regexast.Parse("a*")
	require.NoError(t, err)
	dfa := regexast.ToDFA(regexast.Compile(e))

	all := g.Vertices()
	pairs, err := Intersect(context.Background(), g, dfa, all, all)
	require.NoError(t, err)
	fromIntersect := make(map[Pair]bool)
	for _, p := range pairs {
		fromIntersect[p] = true
	}

	res, err := BFS(context.Background(), g, dfa, all, all, Merged)
	require.NoError(t, err)
	merged := res.(MergedResult)

	// bfs_rpq with full sources/finals must agree with rpq modulo shape and
	// modulo the zero-length (u,u) pairs bfs's step-based accumulation never
	// records (see TestBFSSingleSourceExcludesZeroLengthSelf).
	for p := range fromIntersect {
		if p.From == p.To {
			continue
		}
		require.True(t, merged.Sources[p.From])
		require.True(t, merged.Reachable[p.To], "missing %v", p)
	}
}
