// Package editing computes small edge-edit sets that turn an arbitrary
// undirected graph into a cograph.
//
// Two heuristic pipelines are provided, both driven by rooted-triple
// constraints (package triples) and recursive bipartitioning (package
// mincut):
//
//   - Direct graph cut (DirectCut, MinimalGraphCut): the input graph itself
//     is cut recursively, guided by triple-derived edge weights, so the
//     edges least supported by triple evidence are severed first. Each split
//     is recombined as whichever of join/union is cheaper against the edge
//     set immediately before that split; the choice is local and greedy.
//   - Min-cut-split (MinCutSplit, MinCutEdit, MinimalMinCutEdit): the triple
//     set is pruned along minimum cuts of its comparability graph until it
//     is guaranteed consistent, then BUILD (package aho) reconstructs an
//     exact cograph, and the cheaper of the reconstruction and its
//     complement is kept (cographs are complement-closed).
//
// MinimalGraphCut and MinimalMinCutEdit wrap the pipelines with stochastic
// hill-climbing over the edit set: candidate mutations are kept only while
// the recognition oracle (cograph.IsCograph) still accepts the graph, and
// the best of Options.Iterations independent trials wins. RandomEditing is
// the naive baseline that toggles random edges until the oracle accepts.
//
// All randomness flows through an explicit seed (Options.Seed, seed 0 maps
// to a fixed default stream), so runs are reproducible. Cut tie-breaks are
// deterministic; only local-search edge orderings are randomized.
//
// Method enumerates the editing strategies the experiment harness compares,
// binding each name to its pipeline and configuration.
package editing
