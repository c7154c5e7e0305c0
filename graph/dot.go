package graph

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// WriteDOT serialises g as a DOT digraph, one edge per line, each edge
// carrying a `label` attribute.
//
// No graphviz/DOT library fits this narrow a need (see DESIGN.md), so this
// is a hand-rolled, minimal codec rather than an adaptation of a
// third-party one — it only ever has to round-trip the subset of DOT this
// package itself emits.
func WriteDOT(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "digraph G {"); err != nil {
		return err
	}
	for _, v := range g.Vertices() {
		if len(g.EdgesFrom(v)) == 0 {
			if _, err := fmt.Fprintf(bw, "  %q;\n", string(v)); err != nil {
				return err
			}
		}
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "  %q -> %q [label=%q];\n", string(e.From), string(e.To), string(e.Label)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(bw, "}"); err != nil {
		return err
	}
	return bw.Flush()
}

var (
	dotEdgeLine = regexp.MustCompile(`^"((?:[^"\\]|\\.)*)"\s*->\s*"((?:[^"\\]|\\.)*)"\s*(?:\[\s*label\s*=\s*"((?:[^"\\]|\\.)*)"\s*\])?\s*;?$`)
	dotNodeLine = regexp.MustCompile(`^"((?:[^"\\]|\\.)*)"\s*;?$`)
)

// ReadDOT parses a DOT digraph of the form WriteDOT emits: quoted node
// names, `"u" -> "v" [label="l"];` edges, optional bare `"v";` isolated
// vertex declarations, one statement per line. Blank lines, `//` comment
// lines, a line starting with `digraph`, and lines holding only a brace
// are skipped; any other line matching neither shape is an
// ErrMalformedDOT error.
func ReadDOT(r io.Reader) (*Graph, error) {
	g := New()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "digraph") || line == "{" || line == "}" || strings.HasPrefix(line, "//") {
			continue
		}
		if m := dotEdgeLine.FindStringSubmatch(line); m != nil {
			g.AddEdge(Vertex(unescapeDOT(m[1])), Label(unescapeDOT(m[3])), Vertex(unescapeDOT(m[2])))
			continue
		}
		if m := dotNodeLine.FindStringSubmatch(line); m != nil {
			g.AddVertex(Vertex(unescapeDOT(m[1])))
			continue
		}
		return nil, fmt.Errorf("%w: %q", ErrMalformedDOT, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

func unescapeDOT(s string) string {
	return strings.ReplaceAll(s, `\"`, `"`)
}
