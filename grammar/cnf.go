package grammar

// ToChomskyNF converts g to strict Chomsky normal form (every production is
// A -> BC or A -> t; ε appears nowhere, not even on Start) for the CYK
// membership oracle, which needs ordinary non-empty-span table filling and
// cannot tolerate weak CNF's "ε anywhere" shape. Returns the CNF grammar
// plus whether Start itself derives the empty word, since the CNF grammar
// by construction cannot express that case.
//
// This is a full nullable-elimination CNF, distinct from the weak-CNF
// conversion the CFPQ engines use — see ToWeakCNF for the latter.
func ToChomskyNF(g *CFG) (cnf *CFG, startNullable bool) {
	h := removeUseless(g)
	startNullable = nullableSet(h)[h.Start]
	h = eliminateEpsilon(h)
	h = eliminateUnit(h)
	h = removeUseless(h)
	h = termify(h)
	h = binarize(h)
	return h, startNullable
}

func nullableSet(g *CFG) map[Nonterminal]bool {
	nullable := make(map[Nonterminal]bool)
	for changed := true; changed; {
		changed = false
		for _, p := range g.Productions {
			if nullable[p.Head] {
				continue
			}
			if len(p.Body) == 0 {
				nullable[p.Head] = true
				changed = true
				continue
			}
			allNullable := true
			for _, s := range p.Body {
				if s.IsTerminal || !nullable[s.NT] {
					allNullable = false
					break
				}
			}
			if allNullable {
				nullable[p.Head] = true
				changed = true
			}
		}
	}
	return nullable
}

// eliminateEpsilon drops every ε-production and, for each surviving
// production, adds every version obtained by independently omitting each
// nullable nonterminal in its body (the standard DEL step), except the
// all-omitted (empty) version.
func eliminateEpsilon(g *CFG) *CFG {
	nullable := nullableSet(g)
	out := &CFG{Start: g.Start}
	seen := make(map[string]bool)

	for _, p := range g.Productions {
		if len(p.Body) == 0 {
			continue
		}
		var walk func(i int, cur []Sym)
		walk = func(i int, cur []Sym) {
			if i == len(p.Body) {
				if len(cur) == 0 {
					return
				}
				key := p.Head.String() + "->" + symsKey(cur)
				if seen[key] {
					return
				}
				seen[key] = true
				out.Productions = append(out.Productions, Production{Head: p.Head, Body: append([]Sym(nil), cur...)})
				return
			}
			s := p.Body[i]
			walk(i+1, append(cur, s))
			if !s.IsTerminal && nullable[s.NT] {
				walk(i+1, cur)
			}
		}
		walk(0, nil)
	}
	return out
}

func (nt Nonterminal) String() string { return string(nt) }

func symsKey(body []Sym) string {
	s := ""
	for _, sym := range body {
		if sym.IsTerminal {
			s += "t:" + string(sym.T) + ","
		} else {
			s += "n:" + string(sym.NT) + ","
		}
	}
	return s
}
