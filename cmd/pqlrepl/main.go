// Command pqlrepl is an interactive front-end over query.Facade: one
// statement per line, dispatched to the RPQ/CFPQ engines, with graphs and
// grammars kept in a session-local query.Registry.
//
// Grounded on npillmayer/gorgo's terex/terexlang/trepl/repl.go: the same
// chzyer/readline prompt loop and pterm.Info/pterm.Error output styling,
// re-themed around graph/grammar statements instead of s-expressions.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/grammartext"
	"github.com/katalvlaran/pathql/graph"
	"github.com/katalvlaran/pathql/query"
	"github.com/katalvlaran/pathql/rpq"
)

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// session holds the REPL's working state: the current graph and grammar,
// and the named registry the load statement populates.
type session struct {
	reg   *query.Registry
	face  *query.Facade
	graph *graph.Graph
	cfg   *grammar.CFG
}

func main() {
	initDisplay()
	pterm.Info.Println("Welcome to pqlrepl")

	reg := query.NewRegistry()
	s := &session{reg: reg, face: query.NewFacade(reg), graph: graph.New()}

	repl, err := readline.New("pql> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	defer repl.Close()

	pterm.Info.Println("Quit with :quit or <ctrl>D")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ":quit" {
			break
		}
		if err := s.eval(line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	pterm.Info.Println("Good bye!")
}

// eval dispatches one REPL statement. Statement forms:
//
//	load <name> <path.dot>       load a DOT file into the registry
//	use <name>                   make a registered graph the current graph
//	grammar <path> [start]       parse a grammartext file as the current grammar
//	rpq <regex> [src... -> fin...]
//	bfs <regex> [src... -> fin...] [separated]
//	cfpq <hellings|matrix|tensor> [src... -> fin...]
func (s *session) eval(line string) error {
	fields := strings.Fields(line)
	cmd, rest := fields[0], fields[1:]

	switch cmd {
	case "load":
		if len(rest) != 2 {
			return fmt.Errorf("usage: load <name> <path.dot>")
		}
		f, err := os.Open(rest[1])
		if err != nil {
			return err
		}
		defer f.Close()
		g, err := graph.ReadDOT(f)
		if err != nil {
			return err
		}
		s.reg.Put(rest[0], g)
		pterm.Info.Printfln("loaded graph %q (%d vertices)", rest[0], g.NumVertices())
		return nil

	case "use":
		if len(rest) != 1 {
			return fmt.Errorf("usage: use <name>")
		}
		g, err := s.reg.Get(rest[0])
		if err != nil {
			return err
		}
		s.graph = g
		return nil

	case "grammar":
		if len(rest) < 1 {
			return fmt.Errorf("usage: grammar <path> [start]")
		}
		start := grammar.Nonterminal("S")
		if len(rest) >= 2 {
			start = grammar.Nonterminal(rest[1])
		}
		cfg, err := grammartext.ParseFile(rest[0], start)
		if err != nil {
			return err
		}
		s.cfg = cfg
		return nil

	case "rpq":
		return s.runRPQ(rest)

	case "bfs":
		return s.runBFS(rest)

	case "cfpq":
		return s.runCFPQ(rest)

	default:
		return fmt.Errorf("unknown statement %q", cmd)
	}
}

// splitSourcesFinals parses the optional "src1,src2 -> fin1,fin2" tail of a
// statement into vertex lists; nil/nil means "every vertex".
func splitSourcesFinals(args []string) ([]graph.Vertex, []graph.Vertex, error) {
	if len(args) == 0 {
		return nil, nil, nil
	}
	joined := strings.Join(args, " ")
	parts := strings.SplitN(joined, "->", 2)
	src := parseVertexList(parts[0])
	var fin []graph.Vertex
	if len(parts) == 2 {
		fin = parseVertexList(parts[1])
	}
	return src, fin, nil
}

func parseVertexList(s string) []graph.Vertex {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var out []graph.Vertex
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, graph.Vertex(tok))
		}
	}
	return out
}

func (s *session) runRPQ(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: rpq <regex> [src,... -> fin,...]")
	}
	src, fin, _ := splitSourcesFinals(args[1:])
	pairs, err := s.face.RPQIntersect(context.Background(), s.graph, args[0], src, fin)
	if err != nil {
		return err
	}
	for _, p := range pairs {
		pterm.Println(fmt.Sprintf("(%s, %s)", p.From, p.To))
	}
	return nil
}

func (s *session) runBFS(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: bfs <regex> [src,... -> fin,...] [separated]")
	}
	shape := rpq.Merged
	if len(args) > 0 && args[len(args)-1] == "separated" {
		shape = rpq.Separated
		args = args[:len(args)-1]
	}
	src, fin, _ := splitSourcesFinals(args[1:])
	res, err := s.face.RPQBFS(context.Background(), s.graph, args[0], src, fin, shape)
	if err != nil {
		return err
	}
	switch r := res.(type) {
	case rpq.MergedResult:
		for v := range r.Reachable {
			pterm.Println(string(v))
		}
	case []rpq.SeparatedResult:
		for _, one := range r {
			pterm.Printfln("%s: %v", one.Source, one.Reachable)
		}
	}
	return nil
}

func (s *session) runCFPQ(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: cfpq <hellings|matrix|tensor> [src,... -> fin,...]")
	}
	if s.cfg == nil {
		return fmt.Errorf("no grammar loaded; run 'grammar <path>' first")
	}
	var alg query.Algorithm
	switch args[0] {
	case "hellings":
		alg = query.CFPQHellings
	case "matrix":
		alg = query.CFPQMatrixIteration
	case "tensor":
		alg = query.CFPQTensor
	default:
		return fmt.Errorf("unknown cfpq algorithm %q", args[0])
	}
	src, fin, _ := splitSourcesFinals(args[1:])
	out, err := s.face.Run(context.Background(), query.Request{
		Graph:     s.graph,
		CFG:       s.cfg,
		StartSet:  src,
		FinalSet:  fin,
		Algorithm: alg,
	})
	if err != nil {
		return err
	}
	for p := range out {
		pterm.Println(fmt.Sprintf("(%s, %s)", p[0], p[1]))
	}
	return nil
}
