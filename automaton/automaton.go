// Package automaton implements an immutable boolean-matrix representation
// of a finite automaton, plus intersection, reflexive-transitive closure,
// and direct sum.
//
// Grounded on lvlath/graph/matrix's adjacency-matrix construction:
// enumerate vertices to fix indices, then fill a matrix from edges.
package automaton

import (
	"sort"

	"github.com/katalvlaran/pathql/boolmatrix"
	"github.com/katalvlaran/pathql/graph"
)

// State is an opaque, comparable automaton state. Concrete automata key
// it by graph.Vertex (graph automaton), an int (compiled regex DFA), or a
// (Nonterminal, box-state) pair (RSM-derived automaton).
type State interface{}

// Automaton is an immutable set of per-label boolean matrices plus
// start/final state sets and a state<->index bijection.
type Automaton struct {
	n        int
	index    map[State]int
	states   []State // index -> state
	matrices map[graph.Label]*boolmatrix.Matrix
	start    map[int]struct{}
	final    map[int]struct{}
}

// N returns the number of states.
func (a *Automaton) N() int { return a.n }

// Index returns the index assigned to s, or (-1, false) if s is not a
// state of this automaton.
func (a *Automaton) Index(s State) (int, bool) {
	i, ok := a.index[s]
	if !ok {
		return -1, false
	}
	return i, true
}

// StateAt returns the state at index i (the inverse of Index).
func (a *Automaton) StateAt(i int) State { return a.states[i] }

// Labels returns the labels with an allocated (possibly all-false) matrix.
func (a *Automaton) Labels() []graph.Label {
	out := make([]graph.Label, 0, len(a.matrices))
	for l := range a.matrices {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Matrix returns the boolean transition matrix for label l. Missing
// labels are the all-false n×n matrix, lazily allocated on first write;
// the returned matrix must not be mutated by callers.
func (a *Automaton) Matrix(l graph.Label) *boolmatrix.Matrix {
	if m, ok := a.matrices[l]; ok {
		return m
	}
	return boolmatrix.New(a.n, a.n)
}

// IsStart reports whether index i is a start state.
func (a *Automaton) IsStart(i int) bool { _, ok := a.start[i]; return ok }

// IsFinal reports whether index i is a final state.
func (a *Automaton) IsFinal(i int) bool { _, ok := a.final[i]; return ok }

// StartIndices returns the indices of all start states, sorted.
func (a *Automaton) StartIndices() []int { return sortedKeys(a.start) }

// FinalIndices returns the indices of all final states, sorted.
func (a *Automaton) FinalIndices() []int { return sortedKeys(a.final) }

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// Transition is a single (from, label, to) triple in a transition-list
// automaton, named by state rather than index.
type Transition struct {
	From  State
	Label graph.Label
	To    State
}

// Transitions reconstructs the transition list for this automaton,
// re-attached to states through the index<->state bijection.
func (a *Automaton) Transitions() []Transition {
	var out []Transition
	for label, m := range a.matrices {
		for _, e := range m.Entries() {
			out = append(out, Transition{From: a.states[e[0]], Label: label, To: a.states[e[1]]})
		}
	}
	return out
}

// StartStates returns the named start states.
func (a *Automaton) StartStates() []State {
	out := make([]State, 0, len(a.start))
	for _, i := range a.StartIndices() {
		out = append(out, a.states[i])
	}
	return out
}

// FinalStates returns the named final states.
func (a *Automaton) FinalStates() []State {
	out := make([]State, 0, len(a.final))
	for _, i := range a.FinalIndices() {
		out = append(out, a.states[i])
	}
	return out
}

// Builder incrementally constructs an Automaton: enumerate states to fix
// indices, then lazily allocate and set matrix entries per transition.
type Builder struct {
	a *Automaton
}

// NewBuilder fixes the index for every state in states, in the given
// order.
func NewBuilder(states []State) *Builder {
	a := &Automaton{
		n:        len(states),
		index:    make(map[State]int, len(states)),
		states:   append([]State(nil), states...),
		matrices: make(map[graph.Label]*boolmatrix.Matrix),
		start:    make(map[int]struct{}),
		final:    make(map[int]struct{}),
	}
	for i, s := range states {
		a.index[s] = i
	}
	return &Builder{a: a}
}

// AddTransition lazily allocates M[label] on first touch and sets
// M[label][from,to] = true. Panics if from/to are not states of this
// builder.
func (b *Builder) AddTransition(from State, label graph.Label, to State) {
	i, ok := b.a.index[from]
	if !ok {
		panic("automaton: AddTransition: unknown from-state")
	}
	j, ok := b.a.index[to]
	if !ok {
		panic("automaton: AddTransition: unknown to-state")
	}
	m, ok := b.a.matrices[label]
	if !ok {
		m = boolmatrix.New(b.a.n, b.a.n)
		b.a.matrices[label] = m
	}
	m.Set(i, j)
}

// SetStart marks s as a start state.
func (b *Builder) SetStart(s State) {
	i, ok := b.a.index[s]
	if !ok {
		panic("automaton: SetStart: unknown state")
	}
	b.a.start[i] = struct{}{}
}

// SetFinal marks s as a final state.
func (b *Builder) SetFinal(s State) {
	i, ok := b.a.index[s]
	if !ok {
		panic("automaton: SetFinal: unknown state")
	}
	b.a.final[i] = struct{}{}
}

// Build finalises and returns the Automaton.
func (b *Builder) Build() *Automaton { return b.a }

// FromTransitions builds an Automaton directly from a transition list
// plus explicit state/start/final sets: a graph restricted to a
// start/final vertex subset, or a compiled regex NFA, are both expressed
// this way.
func FromTransitions(states []State, transitions []Transition, start, final []State) *Automaton {
	b := NewBuilder(states)
	for _, t := range transitions {
		b.AddTransition(t.From, t.Label, t.To)
	}
	for _, s := range start {
		b.SetStart(s)
	}
	for _, s := range final {
		b.SetFinal(s)
	}
	return b.Build()
}
