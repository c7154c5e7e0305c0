// Package query implements the query facade: one entrypoint per engine
// (RPQ intersect-and-close, RPQ BFS, CFPQ Hellings/matrix/tensor) plus a
// generic algorithm-id selector, a process-wide name-indexed graph
// registry with init-on-first-use lifecycle, and the error-kind sentinel
// set callers distinguish via errors.Is.
//
// Grounded on lvlath's fmt.Errorf("%w: ...", Err, ...) sentinel-wrapping
// idiom for error handling (see bfs/bfs.go, dijkstra/dijkstra.go) and
// lvlath/core.Graph's sync.RWMutex-guarded mutable state for the registry.
//
// Facade is also this module's intended embedded-DSL entrypoint: a future
// query-language parser would compile source text down to a Request (or a
// sequence of Value/Intersect calls) and hand it to Facade.Run, the same
// way a visitor over a parsed AST calls out to an interpreter. No such
// parser exists here — Facade's Go API is the whole surface for now, and
// stays that way until a concrete DSL grammar is designed.
package query
