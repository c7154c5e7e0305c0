package regexast

import (
	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/graph"
)

// thompsonBuilder incrementally allocates states and transitions for a
// Thompson-construction ε-NFA. automaton.Builder needs the full state set
// up front, so construction happens against this lighter-weight
// accumulator first and is only handed to automaton.NewBuilder once the
// final state count is known.
type thompsonBuilder struct {
	numStates int
	trans     []automaton.Transition
}

func (b *thompsonBuilder) newState() int {
	s := b.numStates
	b.numStates++
	return s
}

func (b *thompsonBuilder) addEdge(from int, label graph.Label, to int) {
	b.trans = append(b.trans, automaton.Transition{From: from, Label: label, To: to})
}

type fragment struct {
	start, end int
}

// Compile performs a Thompson construction of e into an
// automaton.Automaton whose states are ints, mirroring the classic
// fragment-gluing algorithm used by the
// pack's hand-written NFA builders (e.g. the grep-go and nex lexers).
func Compile(e Expr) *automaton.Automaton {
	b := &thompsonBuilder{}
	f := b.compile(e)

	states := make([]automaton.State, b.numStates)
	for i := 0; i < b.numStates; i++ {
		states[i] = i
	}
	ab := automaton.NewBuilder(states)
	for _, t := range b.trans {
		ab.AddTransition(t.From, t.Label, t.To)
	}
	ab.SetStart(f.start)
	ab.SetFinal(f.end)
	return ab.Build()
}

func (b *thompsonBuilder) compile(e Expr) fragment {
	switch v := e.(type) {
	case Eps:
		s, f := b.newState(), b.newState()
		b.addEdge(s, graph.Epsilon, f)
		return fragment{s, f}
	case Lit:
		s, f := b.newState(), b.newState()
		b.addEdge(s, graph.Label(v.Token), f)
		return fragment{s, f}
	case Concat:
		if len(v.Operands) == 0 {
			s := b.newState()
			return fragment{s, s}
		}
		first := b.compile(v.Operands[0])
		cur := first
		for _, op := range v.Operands[1:] {
			next := b.compile(op)
			b.addEdge(cur.end, graph.Epsilon, next.start)
			cur = next
		}
		return fragment{first.start, cur.end}
	case Union:
		s, f := b.newState(), b.newState()
		for _, op := range v.Operands {
			frag := b.compile(op)
			b.addEdge(s, graph.Epsilon, frag.start)
			b.addEdge(frag.end, graph.Epsilon, f)
		}
		return fragment{s, f}
	case Star:
		s, f := b.newState(), b.newState()
		inner := b.compile(v.Operand)
		b.addEdge(s, graph.Epsilon, inner.start)
		b.addEdge(inner.end, graph.Epsilon, f)
		b.addEdge(inner.end, graph.Epsilon, inner.start)
		b.addEdge(s, graph.Epsilon, f)
		return fragment{s, f}
	default:
		panic("regexast: unknown Expr type")
	}
}
