package grammar

import (
	"fmt"

	"github.com/katalvlaran/pathql/graph"
)

// WCNF is a CFG already normalised into weak Chomsky normal form, split
// into three production shapes: every production is A -> ε, A -> t, or
// A -> B C. Unlike strict CNF, ε is allowed on any nonterminal, so no
// nullable-elimination step runs — CFPQ engines consume
// EpsProds/TermProds/BinProds directly.
type WCNF struct {
	CFG         *CFG
	EpsProds    map[Nonterminal]bool
	TermProds   map[Nonterminal]map[graph.Label]bool
	BinProds    map[Nonterminal]map[[2]Nonterminal]bool
}

// ToWeakCNF normalises g: remove useless symbols, eliminate unit
// productions, remove useless symbols again, then decompose into the
// three weak-CNF shapes.
func ToWeakCNF(g *CFG) *WCNF {
	h := removeUseless(g)
	h = eliminateUnit(h)
	h = removeUseless(h)
	h = termify(h)
	h = binarize(h)
	return extractWCNF(h)
}

func extractWCNF(g *CFG) *WCNF {
	w := &WCNF{
		CFG:       g,
		EpsProds:  make(map[Nonterminal]bool),
		TermProds: make(map[Nonterminal]map[graph.Label]bool),
		BinProds:  make(map[Nonterminal]map[[2]Nonterminal]bool),
	}
	for _, p := range g.Productions {
		switch len(p.Body) {
		case 0:
			w.EpsProds[p.Head] = true
		case 1:
			if p.Body[0].IsTerminal {
				if w.TermProds[p.Head] == nil {
					w.TermProds[p.Head] = make(map[graph.Label]bool)
				}
				w.TermProds[p.Head][p.Body[0].T] = true
			}
		case 2:
			if !p.Body[0].IsTerminal && !p.Body[1].IsTerminal {
				if w.BinProds[p.Head] == nil {
					w.BinProds[p.Head] = make(map[[2]Nonterminal]bool)
				}
				w.BinProds[p.Head][[2]Nonterminal{p.Body[0].NT, p.Body[1].NT}] = true
			}
		}
	}
	return w
}

// --- shared normalisation steps (also used by ToChomskyNF in cnf.go) ---

func generatingSet(g *CFG) map[Nonterminal]bool {
	gen := make(map[Nonterminal]bool)
	for changed := true; changed; {
		changed = false
		for _, p := range g.Productions {
			if gen[p.Head] {
				continue
			}
			ok := true
			for _, s := range p.Body {
				if !s.IsTerminal && !gen[s.NT] {
					ok = false
					break
				}
			}
			if ok {
				gen[p.Head] = true
				changed = true
			}
		}
	}
	return gen
}

func filterGenerating(g *CFG) *CFG {
	gen := generatingSet(g)
	out := &CFG{Start: g.Start}
	for _, p := range g.Productions {
		if !gen[p.Head] {
			continue
		}
		ok := true
		for _, s := range p.Body {
			if !s.IsTerminal && !gen[s.NT] {
				ok = false
				break
			}
		}
		if ok {
			out.Productions = append(out.Productions, p)
		}
	}
	return out
}

func reachableSet(g *CFG) map[Nonterminal]bool {
	reach := map[Nonterminal]bool{g.Start: true}
	queue := []Nonterminal{g.Start}
	for len(queue) > 0 {
		nt := queue[0]
		queue = queue[1:]
		for _, p := range g.Productions {
			if p.Head != nt {
				continue
			}
			for _, s := range p.Body {
				if !s.IsTerminal && !reach[s.NT] {
					reach[s.NT] = true
					queue = append(queue, s.NT)
				}
			}
		}
	}
	return reach
}

func filterReachable(g *CFG) *CFG {
	reach := reachableSet(g)
	out := &CFG{Start: g.Start}
	for _, p := range g.Productions {
		if reach[p.Head] {
			out.Productions = append(out.Productions, p)
		}
	}
	return out
}

// removeUseless drops symbols that are non-generating or unreachable from
// Start.
func removeUseless(g *CFG) *CFG {
	return filterReachable(filterGenerating(g))
}

// eliminateUnit replaces every unit production A -> B with B's non-unit
// productions, computed via the transitive closure of the unit-production
// graph.
func eliminateUnit(g *CFG) *CFG {
	nts := g.Nonterminals()
	unitEdges := make(map[Nonterminal][]Nonterminal)
	for _, p := range g.Productions {
		if len(p.Body) == 1 && !p.Body[0].IsTerminal {
			unitEdges[p.Head] = append(unitEdges[p.Head], p.Body[0].NT)
		}
	}
	closure := make(map[Nonterminal]map[Nonterminal]bool, len(nts))
	for _, nt := range nts {
		visited := map[Nonterminal]bool{nt: true}
		queue := []Nonterminal{nt}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nxt := range unitEdges[cur] {
				if !visited[nxt] {
					visited[nxt] = true
					queue = append(queue, nxt)
				}
			}
		}
		closure[nt] = visited
	}

	out := &CFG{Start: g.Start}
	seen := make(map[string]bool)
	for _, nt := range nts {
		for b := range closure[nt] {
			for _, p := range g.Productions {
				if p.Head != b {
					continue
				}
				if len(p.Body) == 1 && !p.Body[0].IsTerminal {
					continue // unit production itself, not a target shape
				}
				key := fmt.Sprintf("%s->%v", nt, p.Body)
				if seen[key] {
					continue
				}
				seen[key] = true
				out.Productions = append(out.Productions, Production{Head: nt, Body: p.Body})
			}
		}
	}
	return out
}

// termify wraps every terminal appearing in a body of length >= 2 behind
// a fresh nonterminal, the classical CNF TERM step.
func termify(g *CFG) *CFG {
	out := &CFG{Start: g.Start}
	termNT := make(map[graph.Label]Nonterminal)
	counter := 0
	freshFor := func(t graph.Label) Nonterminal {
		if nt, ok := termNT[t]; ok {
			return nt
		}
		counter++
		nt := Nonterminal(fmt.Sprintf("#T%d", counter))
		termNT[t] = nt
		out.Productions = append(out.Productions, Production{Head: nt, Body: []Sym{T(t)}})
		return nt
	}
	for _, p := range g.Productions {
		if len(p.Body) < 2 {
			out.Productions = append(out.Productions, p)
			continue
		}
		body := make([]Sym, len(p.Body))
		for i, s := range p.Body {
			if s.IsTerminal {
				body[i] = N(freshFor(s.T))
			} else {
				body[i] = s
			}
		}
		out.Productions = append(out.Productions, Production{Head: p.Head, Body: body})
	}
	return out
}

// binarize decomposes productions of length > 2 into a chain of binary
// productions through fresh nonterminals ("BIN" step).
func binarize(g *CFG) *CFG {
	out := &CFG{Start: g.Start}
	counter := 0
	for _, p := range g.Productions {
		if len(p.Body) <= 2 {
			out.Productions = append(out.Productions, p)
			continue
		}
		head := p.Head
		body := p.Body
		for len(body) > 2 {
			counter++
			nt := Nonterminal(fmt.Sprintf("#B%d", counter))
			out.Productions = append(out.Productions, Production{Head: head, Body: []Sym{body[0], N(nt)}})
			head = nt
			body = body[1:]
		}
		out.Productions = append(out.Productions, Production{Head: head, Body: body})
	}
	return out
}
