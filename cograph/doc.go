// Package cograph provides the structural side of cograph editing: the
// recognition oracle IsCograph and an explicit cotree type.
//
// A cograph is a graph with no induced path on four vertices (P4).
// Equivalently, and this is the definition the package works with:
//
//   - a single vertex is a cograph,
//   - the disjoint union of cographs is a cograph,
//   - the complete join of cographs is a cograph.
//
// The recursive decomposition is represented explicitly as a cotree: a Node
// is either a leaf carrying a vertex ID, or an internal node tagged Join or
// Union whose children are smaller cotrees. Node.Graph expands a cotree back
// into the cograph it denotes.
//
// IsCograph exploits the complement-closure of the class: a graph on at
// least two vertices is a cograph iff it is disconnected and all components
// are cographs, or its complement is disconnected and the induced subgraphs
// on the co-components are cographs. Worst case O(V²) per recursion level,
// which is adequate for the instance sizes the editing engine targets.
package cograph
