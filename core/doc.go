// Package core defines the central Graph type shared by every algorithm
// package in cogedit: a simple, undirected, in-memory graph with string
// vertex IDs and optional non-negative integer edge weights.
//
// Invariants enforced by construction:
//
//   - no self-loops (ErrSelfLoop),
//   - no duplicate edges (an undirected edge is an unordered pair; re-adding
//     an existing edge only updates its weight),
//   - no negative weights (ErrNegativeWeight).
//
// Graphs are value-like: every operation that needs to shrink or mutate a
// graph it does not own takes an explicit copy first (Clone,
// InducedSubgraph, Complement). No method returns a view into internal
// storage, and all enumeration orders (Vertices, Edges, Neighbors,
// ConnectedComponents) are sorted so results are deterministic.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrSelfLoop       - attempt to add an edge from a vertex to itself.
//	ErrNegativeWeight - attempt to add an edge with negative weight.
package core
