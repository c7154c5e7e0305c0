package query

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/cfpq"
	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/graph"
	"github.com/katalvlaran/pathql/regexast"
	"github.com/katalvlaran/pathql/rpq"
)

// PairSet is the uniform (u, v) reachability result shape used for
// every engine, CFPQ's own triples reduced down to it via cfpq.Select.
type PairSet map[[2]graph.Vertex]bool

// Algorithm selects which engine Facade.Run dispatches a Request to.
type Algorithm int

const (
	RPQIntersect Algorithm = iota
	RPQBFS
	CFPQHellings
	CFPQMatrixIteration
	CFPQTensor
)

// DefaultStartSymbol is the start nonterminal a Request defaults to
// when it omits one.
const DefaultStartSymbol grammar.Nonterminal = "S"

// Request bundles every input the façade's operations share: a grammar
// (CFPQ) or regex (RPQ), the graph to query, a start symbol, start/final
// vertex sets (nil meaning "every vertex"), and an algorithm selector.
type Request struct {
	CFG         *grammar.CFG
	Regex       string
	Graph       *graph.Graph
	StartSymbol grammar.Nonterminal
	StartSet    []graph.Vertex
	FinalSet    []graph.Vertex
	Algorithm   Algorithm
	BFSShape    rpq.Shape
}

// Facade is the single entrypoint surface: one method per engine plus Run,
// the generic algorithm-id selector.
type Facade struct {
	Registry *Registry
}

// NewFacade returns a Facade backed by reg (may be nil if the caller never
// resolves graphs by name).
func NewFacade(reg *Registry) *Facade {
	return &Facade{Registry: reg}
}

func compileRegex(src string) (*automaton.Automaton, error) {
	expr, err := regexast.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	return regexast.ToDFA(regexast.Compile(expr)), nil
}

// RPQIntersect runs Algorithm A (intersect-and-close) for regex src over g.
func (f *Facade) RPQIntersect(ctx context.Context, g *graph.Graph, src string, start, final []graph.Vertex) ([]rpq.Pair, error) {
	dfa, err := compileRegex(src)
	if err != nil {
		return nil, err
	}
	return rpq.Intersect(ctx, g, dfa, start, final)
}

// RPQBFS runs Algorithm B (front-vector BFS) for regex src over g.
func (f *Facade) RPQBFS(ctx context.Context, g *graph.Graph, src string, sources, final []graph.Vertex, shape rpq.Shape) (interface{}, error) {
	dfa, err := compileRegex(src)
	if err != nil {
		return nil, err
	}
	return rpq.BFS(ctx, g, dfa, sources, final, shape)
}

// CFPQHellings runs the Hellings worklist for cfg over g.
func (f *Facade) CFPQHellings(cfg *grammar.CFG, g *graph.Graph) map[cfpq.Triple]bool {
	return cfpq.Hellings(cfg, g)
}

// CFPQMatrixIteration runs the matrix-iteration fixpoint for cfg over g.
func (f *Facade) CFPQMatrixIteration(cfg *grammar.CFG, g *graph.Graph) map[cfpq.Triple]bool {
	return cfpq.MatrixIteration(cfg, g)
}

// CFPQTensor runs the RSM-tensor fixpoint for cfg over g.
func (f *Facade) CFPQTensor(ctx context.Context, cfg *grammar.CFG, g *graph.Graph) (map[cfpq.Triple]bool, error) {
	return cfpq.Tensor(ctx, cfg, g)
}

// Run dispatches req to the engine req.Algorithm names and reduces its
// result to a uniform PairSet.
func (f *Facade) Run(ctx context.Context, req Request) (PairSet, error) {
	if req.Graph == nil {
		return nil, fmt.Errorf("%w: request has no graph", ErrInvalidInput)
	}
	startSet := cfpq.VertexSet(req.StartSet)
	finalSet := cfpq.VertexSet(req.FinalSet)

	switch req.Algorithm {
	case RPQIntersect:
		pairs, err := f.RPQIntersect(ctx, req.Graph, req.Regex, req.StartSet, req.FinalSet)
		if err != nil {
			return nil, err
		}
		out := make(PairSet, len(pairs))
		for _, p := range pairs {
			out[[2]graph.Vertex{p.From, p.To}] = true
		}
		return out, nil

	case RPQBFS:
		res, err := f.RPQBFS(ctx, req.Graph, req.Regex, req.StartSet, req.FinalSet, rpq.Merged)
		if err != nil {
			return nil, err
		}
		merged := res.(rpq.MergedResult)
		out := make(PairSet)
		for s := range merged.Sources {
			for v := range merged.Reachable {
				out[[2]graph.Vertex{s, v}] = true
			}
		}
		return out, nil

	case CFPQHellings, CFPQMatrixIteration, CFPQTensor:
		if req.CFG == nil {
			return nil, fmt.Errorf("%w: CFPQ request has no grammar", ErrInvalidInput)
		}
		start := req.StartSymbol
		if start == "" {
			start = DefaultStartSymbol
		}

		var triples map[cfpq.Triple]bool
		switch req.Algorithm {
		case CFPQHellings:
			triples = f.CFPQHellings(req.CFG, req.Graph)
		case CFPQMatrixIteration:
			triples = f.CFPQMatrixIteration(req.CFG, req.Graph)
		case CFPQTensor:
			var err error
			triples, err = f.CFPQTensor(ctx, req.CFG, req.Graph)
			if err != nil {
				return nil, err
			}
		}
		return PairSet(cfpq.Select(triples, start, startSet, finalSet)), nil

	default:
		return nil, fmt.Errorf("%w: unknown algorithm id %d", ErrUnsupported, req.Algorithm)
	}
}
