package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates a self-loop was attempted; simple graphs forbid them.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNegativeWeight indicates a negative edge weight was attempted.
	ErrNegativeWeight = errors.New("core: negative edge weight not allowed")
)

// Edge is a snapshot of one undirected edge. U and V are canonicalized so
// that U < V; Weight is the non-negative weight stored for the pair.
type Edge struct {
	U, V   string
	Weight int64
}

// Graph is a simple undirected graph: string vertex IDs, unordered edges,
// optional non-negative int64 weights (0 means "unweighted" for algorithms
// that ignore weights).
//
// Storage is a symmetric adjacency map: adj[u][v] == adj[v][u] == weight.
// A vertex is present iff it has an entry in adj, possibly with no
// neighbors (isolated vertices are first-class).
type Graph struct {
	adj map[string]map[string]int64
}

// New creates an empty Graph.
// Complexity: O(1).
func New() *Graph {
	return &Graph{adj: make(map[string]map[string]int64)}
}
