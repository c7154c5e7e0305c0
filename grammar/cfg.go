// Package grammar implements context-free grammar normalisation: CFG →
// weak Chomsky normal form, CFG → ECFG, and ECFG → RSM.
//
// A small first-class Go CFG type carries productions and the standard
// useless-symbol/unit-production/binarisation algorithm; no third-party
// CFG/grammar-normalisation library fits this shape, so it is a
// from-scratch implementation (see DESIGN.md).
package grammar

import (
	"fmt"

	"github.com/katalvlaran/pathql/graph"
)

// Nonterminal is an opaque grammar variable name.
type Nonterminal string

// Sym is one symbol of a production body: either a terminal (a
// graph.Label, matched against graph edges) or a Nonterminal.
type Sym struct {
	IsTerminal bool
	T          graph.Label
	NT         Nonterminal
}

// T builds a terminal symbol.
func T(l graph.Label) Sym { return Sym{IsTerminal: true, T: l} }

// N builds a nonterminal symbol.
func N(nt Nonterminal) Sym { return Sym{NT: nt} }

func (s Sym) String() string {
	if s.IsTerminal {
		return string(s.T)
	}
	return string(s.NT)
}

// Production is one CFG rule Head -> Body. An empty Body denotes Head -> ε.
type Production struct {
	Head Nonterminal
	Body []Sym
}

// CFG is a context-free grammar: a start symbol and a list of productions
// (normalisation accepts CFGs in this shape before converting them).
type CFG struct {
	Start       Nonterminal
	Productions []Production
}

// NewCFG returns an empty grammar rooted at start.
func NewCFG(start Nonterminal) *CFG {
	return &CFG{Start: start}
}

// Add appends Head -> Body.
func (g *CFG) Add(head Nonterminal, body ...Sym) {
	g.Productions = append(g.Productions, Production{Head: head, Body: body})
}

// Nonterminals returns every nonterminal appearing as a head or in a body,
// including Start, in first-seen order.
func (g *CFG) Nonterminals() []Nonterminal {
	seen := map[Nonterminal]bool{g.Start: true}
	out := []Nonterminal{g.Start}
	add := func(nt Nonterminal) {
		if !seen[nt] {
			seen[nt] = true
			out = append(out, nt)
		}
	}
	for _, p := range g.Productions {
		add(p.Head)
		for _, s := range p.Body {
			if !s.IsTerminal {
				add(s.NT)
			}
		}
	}
	return out
}

// Clone returns a deep copy of g.
func (g *CFG) Clone() *CFG {
	out := &CFG{Start: g.Start, Productions: make([]Production, len(g.Productions))}
	for i, p := range g.Productions {
		out.Productions[i] = Production{Head: p.Head, Body: append([]Sym(nil), p.Body...)}
	}
	return out
}

func (g *CFG) String() string {
	s := ""
	for _, p := range g.Productions {
		s += fmt.Sprintf("%s -> %v\n", p.Head, p.Body)
	}
	return s
}
