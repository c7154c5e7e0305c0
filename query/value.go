package query

import (
	"fmt"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/grammar"
)

// ValueKind tags what a Value actually holds.
type ValueKind int

const (
	KindAutomaton ValueKind = iota
	KindCFG
)

// Value is the tagged variant of "automaton-like value" used in place of
// the source's dynamic operator overloading: a
// single Intersect with explicit arms per (kind, kind) combination rather
// than runtime type inspection scattered through the engine.
type Value struct {
	Kind      ValueKind
	Automaton *automaton.Automaton
	CFG       *grammar.CFG
}

// AutomatonValue tags a compiled automaton (a regex DFA or a graph
// automaton) as an intersectable Value.
func AutomatonValue(a *automaton.Automaton) Value {
	return Value{Kind: KindAutomaton, Automaton: a}
}

// CFGValue tags a grammar as an intersectable Value.
func CFGValue(c *grammar.CFG) Value {
	return Value{Kind: KindCFG, CFG: c}
}

// Intersect dispatches on the tagged kind of both operands:
//   - automaton × automaton -> the Kronecker-intersected automaton.
//   - CFG × CFG -> ErrTypeMismatch, the canonical example of that error
//     kind ("intersecting a CFG with a CFG").
//   - any automaton × CFG combination -> ErrUnsupported: this engine has no
//     single closed automaton-like result for that pairing; CFPQ against a
//     graph automaton is driven through Facade.CFPQ*, not a generic
//     Intersect.
func Intersect(a, b Value) (Value, error) {
	switch {
	case a.Kind == KindAutomaton && b.Kind == KindAutomaton:
		return AutomatonValue(automaton.Intersect(a.Automaton, b.Automaton)), nil
	case a.Kind == KindCFG && b.Kind == KindCFG:
		return Value{}, fmt.Errorf("%w: cannot intersect two context-free grammars", ErrTypeMismatch)
	default:
		return Value{}, fmt.Errorf("%w: intersect is only defined for automaton-automaton operand pairs", ErrUnsupported)
	}
}
