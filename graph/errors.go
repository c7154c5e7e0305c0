package graph

import "errors"

// ErrMalformedDOT indicates a DOT document could not be parsed into a
// Graph.
var ErrMalformedDOT = errors.New("graph: malformed DOT document")
