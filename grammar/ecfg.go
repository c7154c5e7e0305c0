package grammar

import "github.com/katalvlaran/pathql/regexast"

// ECFG is an extended CFG: each variable has a single body, a regex over
// terminals and nonterminals, rather than a set of alternative
// productions.
type ECFG struct {
	Start      Nonterminal
	Variables  []Nonterminal
	Productions map[Nonterminal]regexast.Expr
}

// ECFGFromCFG folds every CFG production Head -> Body into a single
// regex per head: the union, over all of Head's productions, of the
// concatenation of Body's symbols (mirroring ecfg.py's ECFG.from_cfg,
// which unions pyformlang CFGObject sequences into one regex per head).
func ECFGFromCFG(g *CFG) *ECFG {
	bodies := make(map[Nonterminal][]regexast.Expr)
	order := []Nonterminal{}
	seen := make(map[Nonterminal]bool)
	for _, p := range g.Productions {
		if !seen[p.Head] {
			seen[p.Head] = true
			order = append(order, p.Head)
		}
		bodies[p.Head] = append(bodies[p.Head], symsToExpr(p.Body))
	}
	// Nonterminals reachable only as heads with zero productions (shouldn't
	// normally arise from a well-formed CFG.Nonterminals() walk, but guard
	// against Start itself never being a head, e.g. an empty grammar).
	if !seen[g.Start] {
		order = append([]Nonterminal{g.Start}, order...)
		bodies[g.Start] = []regexast.Expr{regexast.Eps{}}
	}

	e := &ECFG{Start: g.Start, Variables: order, Productions: make(map[Nonterminal]regexast.Expr, len(order))}
	for _, nt := range order {
		alts := bodies[nt]
		if len(alts) == 1 {
			e.Productions[nt] = alts[0]
		} else {
			e.Productions[nt] = regexast.Union{Operands: alts}
		}
	}
	return e
}

func symsToExpr(body []Sym) regexast.Expr {
	if len(body) == 0 {
		return regexast.Eps{}
	}
	ops := make([]regexast.Expr, len(body))
	for i, s := range body {
		if s.IsTerminal {
			ops[i] = regexast.Lit{Token: string(s.T)}
		} else {
			ops[i] = regexast.Lit{Token: string(s.NT)}
		}
	}
	if len(ops) == 1 {
		return ops[0]
	}
	return regexast.Concat{Operands: ops}
}
