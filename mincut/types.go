package mincut

import "errors"

// Sentinel errors for the bipartition oracles.
var (
	// ErrTooSmall indicates the input has fewer than two vertices.
	ErrTooSmall = errors.New("mincut: graph has fewer than two vertices")

	// ErrDisconnected indicates a disconnected input where connectivity is
	// required (StoerWagner).
	ErrDisconnected = errors.New("mincut: graph is disconnected")
)

// Cut is a 2-partition of a graph's vertices. S and T are disjoint, sorted,
// and together cover every vertex; Weight is the total weight of edges with
// one endpoint in each side.
type Cut struct {
	S, T   []string
	Weight int64
}
