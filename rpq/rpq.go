// Package rpq implements regular-path queries over a graph.Graph via two
// algorithms: Algorithm A (returning []Pair) intersects the query
// DFA with the graph automaton, takes the closure, and filters by
// start/final intersection states; Algorithm B runs a front-vector matrix
// recurrence over automaton.DirectSum and reports in the shape Shape
// selects.
package rpq

import "github.com/katalvlaran/pathql/graph"

// Pair is one discovered (source, destination) reachability result.
type Pair struct {
	From, To graph.Vertex
}

// Shape selects how BFS (Algorithm B) reports its results.
type Shape int

const (
	// Separated emits one (source, set-of-reached) entry per source.
	Separated Shape = iota
	// Merged emits a single (set-of-sources, union-of-reached) entry.
	Merged
)

// SeparatedResult is one source's reachable set under Shape == Separated.
type SeparatedResult struct {
	Source    graph.Vertex
	Reachable map[graph.Vertex]bool
}

// MergedResult is the single aggregate entry under Shape == Merged.
type MergedResult struct {
	Sources   map[graph.Vertex]bool
	Reachable map[graph.Vertex]bool
}
