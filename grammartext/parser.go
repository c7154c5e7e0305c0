// Package grammartext parses a textual CFG surface syntax for the
// grammar-loading facility: one production per line, "Head -> body1
// body2 | body3", alternatives separated by "|", tokens separated by
// whitespace, "$" denoting the empty body. A token is a Nonterminal if its
// first rune is uppercase, a terminal graph.Label otherwise.
package grammartext

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/graph"
)

// ErrMalformedGrammar is the sentinel that every error Parse returns for a
// syntactically invalid grammar text wraps, with the line number added.
var ErrMalformedGrammar = errors.New("grammartext: malformed grammar text")

// Parse parses src into a CFG rooted at start.
func Parse(src string, start grammar.Nonterminal) (*grammar.CFG, error) {
	g := grammar.NewCFG(start)
	seenHead := make(map[grammar.Nonterminal]bool)

	lineNo := 0
	sc := bufio.NewScanner(strings.NewReader(src))
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "->", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: line %d: expected \"Head -> body\"", ErrMalformedGrammar, lineNo)
		}
		headTok := strings.TrimSpace(parts[0])
		if headTok == "" || !isNonterminalToken(headTok) {
			return nil, fmt.Errorf("%w: line %d: invalid head %q", ErrMalformedGrammar, lineNo, headTok)
		}
		head := grammar.Nonterminal(headTok)
		if seenHead[head] {
			return nil, fmt.Errorf("%w: line %d: duplicate production head %q", ErrMalformedGrammar, lineNo, head)
		}
		seenHead[head] = true

		for _, alt := range strings.Split(parts[1], "|") {
			body, err := parseBody(alt)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %s", ErrMalformedGrammar, lineNo, err)
			}
			g.Productions = append(g.Productions, grammar.Production{Head: head, Body: body})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

func parseBody(alt string) ([]grammar.Sym, error) {
	fields := strings.Fields(alt)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty alternative")
	}
	if len(fields) == 1 && fields[0] == "$" {
		return nil, nil
	}
	body := make([]grammar.Sym, 0, len(fields))
	for _, f := range fields {
		if f == "$" {
			return nil, fmt.Errorf("%q cannot be mixed with other symbols", "$")
		}
		if isNonterminalToken(f) {
			body = append(body, grammar.N(grammar.Nonterminal(f)))
		} else {
			body = append(body, grammar.T(graph.Label(f)))
		}
	}
	return body, nil
}

func isNonterminalToken(tok string) bool {
	r := []rune(tok)[0]
	return r >= 'A' && r <= 'Z'
}

// ParseFile reads path and parses it as grammar text.
func ParseFile(path string, start grammar.Nonterminal) (*grammar.CFG, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return Parse(string(data), start)
}
