// Package triples derives and manipulates rooted-triple constraints.
//
// A rooted triple xy|z asserts that vertices x and y are more closely
// related to each other than either is to z. Triples are derived from local
// adjacency patterns in a source graph under two independent rules:
//
//   - R1: z adjacent to neither x nor y and {x,y} an edge; or z adjacent to
//     both x and y and {x,y} not an edge.
//   - R2: z adjacent to neither x nor y, {x,y} not an edge, and some
//     neighbor n of x is adjacent to y but not to z; or z adjacent to both,
//     {x,y} an edge, and some neighbor n of z is adjacent to neither x nor y.
//
// A Set stores triples as a map from the canonical unordered pair {x,y} to
// the list of witnesses z. A pair is present only while it has at least one
// witness.
//
// ComparabilityGraph turns a Set restricted to a vertex subset into the
// weighted Aho graph whose connected components drive the BUILD
// reconstruction (package aho) and the min-cut-split pruning
// (package editing).
//
// Errors:
//
//	ErrNoRules - both derivation rules disabled; no triple can ever hold.
package triples
