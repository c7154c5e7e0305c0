package query

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/pathql/graph"
)

// GraphResolver resolves a graph by name — the injected "get_graph"
// collaborator the engines assume exists outside the core.
type GraphResolver func(name string) (*graph.Graph, error)

// Registry is a process-wide, name-indexed graph pool with init-on-first-use
// lifecycle: a global graph/NFA pool modelled as an explicit registry
// value, not a module-level singleton. Not imported by
// any engine package: engines receive concrete *graph.Graph values.
type Registry struct {
	mu    sync.RWMutex
	named map[string]*graph.Graph
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{named: make(map[string]*graph.Graph)}
}

// Put registers g under name, overwriting any existing graph of that name.
func (r *Registry) Put(name string, g *graph.Graph) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.named[name] = g
}

// Get resolves name to its graph, or ErrUnknownName if absent.
func (r *Registry) Get(name string) (*graph.Graph, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.named[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownName, name)
	}
	return g, nil
}

// GetOrCreate resolves name, creating and registering an empty graph via
// init-on-first-use if it is not yet present.
func (r *Registry) GetOrCreate(name string) *graph.Graph {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.named[name]
	if !ok {
		g = graph.New()
		r.named[name] = g
	}
	return g
}

// Resolver adapts r to the GraphResolver shape.
func (r *Registry) Resolver() GraphResolver { return r.Get }
