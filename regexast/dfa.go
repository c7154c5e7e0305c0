package regexast

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/graph"
)

// ToDFA performs subset construction over nfa's ε-closure followed by
// partition-refinement minimisation, producing the minimal DFA the rpq
// engine's intersect-and-close algorithm needs. The minimiser doubles as
// grammar.RSM.Minimize's box-level implementation: both call Minimize on
// an already-deterministic automaton.Automaton.
func ToDFA(nfa *automaton.Automaton) *automaton.Automaton {
	return Minimize(subsetConstruction(nfa))
}

func epsilonClosure(nfa *automaton.Automaton, seed []int) []int {
	inSet := make(map[int]bool, len(seed))
	stack := append([]int(nil), seed...)
	for _, s := range seed {
		inSet[s] = true
	}
	eps := nfa.Matrix(graph.Epsilon)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for j := 0; j < nfa.N(); j++ {
			if eps.Get(s, j) && !inSet[j] {
				inSet[j] = true
				stack = append(stack, j)
			}
		}
	}
	out := make([]int, 0, len(inSet))
	for s := range inSet {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

func subsetKey(subset []int) string {
	parts := make([]string, len(subset))
	for i, s := range subset {
		parts[i] = fmt.Sprintf("%d", s)
	}
	return strings.Join(parts, ",")
}

func move(nfa *automaton.Automaton, subset []int, label graph.Label) []int {
	if label == graph.Epsilon {
		return nil
	}
	m := nfa.Matrix(label)
	seen := make(map[int]bool)
	for _, s := range subset {
		for j := 0; j < nfa.N(); j++ {
			if m.Get(s, j) {
				seen[j] = true
			}
		}
	}
	out := make([]int, 0, len(seen))
	for j := range seen {
		out = append(out, j)
	}
	sort.Ints(out)
	return out
}

func containsFinal(nfa *automaton.Automaton, subset []int) bool {
	for _, s := range subset {
		if nfa.IsFinal(s) {
			return true
		}
	}
	return false
}

// subsetConstruction converts an ε-NFA into an equivalent DFA, keyed by
// the canonical (sorted, comma-joined) subset of NFA state indices.
func subsetConstruction(nfa *automaton.Automaton) *automaton.Automaton {
	var labels []graph.Label
	for _, l := range nfa.Labels() {
		if l != graph.Epsilon {
			labels = append(labels, l)
		}
	}

	startIdx := nfa.StartIndices()
	startSubset := epsilonClosure(nfa, startIdx)
	startKey := subsetKey(startSubset)

	subsets := map[string][]int{startKey: startSubset}
	order := []string{startKey}
	queue := []string{startKey}

	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		subset := subsets[key]
		for _, l := range labels {
			moved := move(nfa, subset, l)
			if len(moved) == 0 {
				continue
			}
			closed := epsilonClosure(nfa, moved)
			ck := subsetKey(closed)
			if _, ok := subsets[ck]; !ok {
				subsets[ck] = closed
				order = append(order, ck)
				queue = append(queue, ck)
			}
		}
	}

	states := make([]automaton.State, len(order))
	for i, k := range order {
		states[i] = k
	}
	b := automaton.NewBuilder(states)
	for _, key := range order {
		subset := subsets[key]
		for _, l := range labels {
			moved := move(nfa, subset, l)
			if len(moved) == 0 {
				continue
			}
			closed := epsilonClosure(nfa, moved)
			b.AddTransition(key, l, subsetKey(closed))
		}
	}
	b.SetStart(startKey)
	for _, key := range order {
		if containsFinal(nfa, subsets[key]) {
			b.SetFinal(key)
		}
	}
	return b.Build()
}

// Minimize collapses dfa (assumed deterministic and complete-enough: every
// state reachable, no two states needed beyond transition behaviour) into
// its minimal language-equivalent automaton via Moore partition
// refinement. Idempotent: minimising an already-minimal automaton returns
// an isomorphic result.
func Minimize(dfa *automaton.Automaton) *automaton.Automaton {
	n := dfa.N()
	labels := dfa.Labels()

	group := make([]int, n)
	for i := 0; i < n; i++ {
		if dfa.IsFinal(i) {
			group[i] = 1
		}
	}

	for {
		type sig struct {
			g      int
			target string
		}
		sigs := make([]sig, n)
		for i := 0; i < n; i++ {
			var parts []string
			for _, l := range labels {
				tg := -1
				m := dfa.Matrix(l)
				for j := 0; j < n; j++ {
					if m.Get(i, j) {
						tg = group[j]
						break
					}
				}
				parts = append(parts, fmt.Sprintf("%d", tg))
			}
			sigs[i] = sig{g: group[i], target: strings.Join(parts, "|")}
		}

		keyToID := make(map[string]int)
		var order []string
		newGroup := make([]int, n)
		for i, s := range sigs {
			key := fmt.Sprintf("%d#%s", s.g, s.target)
			id, ok := keyToID[key]
			if !ok {
				id = len(order)
				keyToID[key] = id
				order = append(order, key)
			}
			newGroup[i] = id
		}

		if sameGroups(group, newGroup, n) {
			group = newGroup
			break
		}
		group = newGroup
	}

	numGroups := 0
	for _, g := range group {
		if g+1 > numGroups {
			numGroups = g + 1
		}
	}
	repOf := make([]int, numGroups) // representative original index for group g
	for i := range repOf {
		repOf[i] = -1
	}
	for i, g := range group {
		if repOf[g] == -1 {
			repOf[g] = i
		}
	}

	states := make([]automaton.State, numGroups)
	for g := 0; g < numGroups; g++ {
		states[g] = g
	}
	b := automaton.NewBuilder(states)
	for g := 0; g < numGroups; g++ {
		rep := repOf[g]
		for _, l := range labels {
			m := dfa.Matrix(l)
			for j := 0; j < n; j++ {
				if m.Get(rep, j) {
					b.AddTransition(g, l, group[j])
				}
			}
		}
	}
	startGroup := group[dfa.StartIndices()[0]]
	b.SetStart(startGroup)
	seenFinal := make(map[int]bool)
	for i := 0; i < n; i++ {
		if dfa.IsFinal(i) && !seenFinal[group[i]] {
			b.SetFinal(group[i])
			seenFinal[group[i]] = true
		}
	}
	return b.Build()
}

// Accepts runs word against a deterministic automaton.Automaton (as
// produced by ToDFA), returning whether it lands on a final state. Used
// by tests and by callers who want a quick membership check without
// going through a full RPQ.
func Accepts(dfa *automaton.Automaton, word []graph.Label) bool {
	cur := dfa.StartIndices()
	if len(cur) != 1 {
		return false
	}
	state := cur[0]
	for _, l := range word {
		m := dfa.Matrix(l)
		next := -1
		for j := 0; j < dfa.N(); j++ {
			if m.Get(state, j) {
				next = j
				break
			}
		}
		if next == -1 {
			return false
		}
		state = next
	}
	return dfa.IsFinal(state)
}

func sameGroups(a, b []int, n int) bool {
	// "same partition" means same equivalence classes, not identical IDs;
	// comparing counts-per-class alongside the raw IDs suffices here
	// because newGroup is always assigned in first-seen order from the
	// previous iteration's IDs, so a stable partition reproduces identical
	// IDs directly.
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
