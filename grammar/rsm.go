package grammar

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/regexast"
)

// RSM is a recursive state machine: one automaton "box" per nonterminal,
// whose alphabet ranges over both terminals and nonterminals.
type RSM struct {
	Start Nonterminal
	Boxes map[Nonterminal]*automaton.Automaton
}

// RSMFromECFG compiles each ECFG body into a box automaton via Thompson
// construction: each production's regex becomes a box's NFA.
func RSMFromECFG(e *ECFG) *RSM {
	r := &RSM{Start: e.Start, Boxes: make(map[Nonterminal]*automaton.Automaton, len(e.Variables))}
	for _, nt := range e.Variables {
		r.Boxes[nt] = regexast.Compile(e.Productions[nt])
	}
	return r
}

// Minimize replaces every box with its minimal DFA, each box minimized
// independently. Idempotent: minimizing an already minimal RSM returns
// boxes of the same size.
func (r *RSM) Minimize() *RSM {
	out := &RSM{Start: r.Start, Boxes: make(map[Nonterminal]*automaton.Automaton, len(r.Boxes))}
	for nt, box := range r.Boxes {
		out.Boxes[nt] = regexast.ToDFA(box)
	}
	return out
}

// rsmState tags a box-local automaton state with the nonterminal whose box
// it belongs to, so that states from distinct boxes never collide once all
// boxes are merged into one automaton.
type rsmState struct {
	NT  Nonterminal
	Box automaton.State
}

func (s rsmState) String() string { return fmt.Sprintf("%s/%v", s.NT, s.Box) }

// ToAutomaton flattens the RSM into a single automaton.Automaton: the
// disjoint union of every box, labelled identically to its box's
// transitions, with start/final states the union of every box's
// start/final states. This is the automaton the RSM-tensor fixpoint
// intersects against the graph automaton each round.
func (r *RSM) ToAutomaton() *automaton.Automaton {
	nts := make([]Nonterminal, 0, len(r.Boxes))
	for nt := range r.Boxes {
		nts = append(nts, nt)
	}
	sort.Slice(nts, func(i, j int) bool { return nts[i] < nts[j] })

	var states []automaton.State
	for _, nt := range nts {
		box := r.Boxes[nt]
		for i := 0; i < box.N(); i++ {
			states = append(states, rsmState{NT: nt, Box: box.StateAt(i)})
		}
	}

	b := automaton.NewBuilder(states)
	for _, nt := range nts {
		box := r.Boxes[nt]
		for _, tr := range box.Transitions() {
			b.AddTransition(rsmState{NT: nt, Box: tr.From}, tr.Label, rsmState{NT: nt, Box: tr.To})
		}
		for i := 0; i < box.N(); i++ {
			if box.IsStart(i) {
				b.SetStart(rsmState{NT: nt, Box: box.StateAt(i)})
			}
			if box.IsFinal(i) {
				b.SetFinal(rsmState{NT: nt, Box: box.StateAt(i)})
			}
		}
	}
	return b.Build()
}

// Decompose recovers the (nonterminal, box-local state) pair tagged into a
// state of r.ToAutomaton()'s merged automaton, for callers (the RSM-tensor
// fixpoint) that only see the merged automaton.State values and need to
// know which box a reached state belongs to.
func (r *RSM) Decompose(s automaton.State) (nt Nonterminal, boxState automaton.State, ok bool) {
	tagged, ok := s.(rsmState)
	if !ok {
		return "", nil, false
	}
	return tagged.NT, tagged.Box, true
}

// BoxStartFinal reports whether box-local state s is a start/final state
// of nt's box, used by the RSM-tensor fixpoint to detect when an
// intersection path traverses an entire box from its start to one of its
// final states.
func (r *RSM) BoxStartFinal(nt Nonterminal, s automaton.State) (isStart, isFinal bool) {
	box, ok := r.Boxes[nt]
	if !ok {
		return false, false
	}
	idx, ok := box.Index(s)
	if !ok {
		return false, false
	}
	return box.IsStart(idx), box.IsFinal(idx)
}
