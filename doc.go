// Package cogedit turns arbitrary undirected graphs into cographs — graphs
// without an induced P4 — using as few edge insertions and deletions as the
// heuristics can manage.
//
// 🚀 What is cogedit?
//
//	A library and experiment harness around cograph editing:
//		• Core primitives: a simple undirected graph with induced subgraphs,
//		  complement, union, join and connected components
//		• Recognition: the recursive complement-decomposition oracle and an
//		  explicit cotree type (union/join nodes over vertex leaves)
//		• Rooted triples: derivation of xy|z constraints from a graph and the
//		  weighted comparability graph they induce
//		• BUILD: the Aho-Sagiv-Szymanski-Ullman reconstruction of a cotree
//		  from a consistent triple set
//		• Minimum cuts: Stoer-Wagner global min cut and Kernighan-Lin
//		  balanced bisection
//		• Editing pipelines: triple pruning (min-cut-split), direct graph
//		  cutting, local-search refiners and a random baseline
//		• Generators: random cotrees, disturbed cographs and G(n,p)
//		  non-cographs for benchmarking
//
// Everything is organized under focused subpackages:
//
//	core/    — the undirected Graph type and its set operations
//	cograph/ — cotree nodes and the recognition oracle
//	triples/ — rooted triple sets, extraction rules, comparability graph
//	aho/     — the BUILD reconstruction
//	mincut/  — Stoer-Wagner and Kernighan-Lin bipartition oracles
//	editing/ — the editing pipelines and the method table
//	gen/     — benchmark instance generators
//	cmd/     — the cogedit experiment harness
//
// Quick ASCII example:
//
//	1───2───3───4        1───2   3───4
//
//	the path on four vertices is the smallest non-cograph; deleting the
//	middle edge (one edit) makes it one.
//
//	go get github.com/cographtools/cogedit
package cogedit
