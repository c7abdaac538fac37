// Package mincut provides the two bipartition oracles of the editing
// engine: a global minimum cut (Stoer–Wagner) and a balanced bisection
// (Kernighan–Lin), both over connected, undirected, non-negatively
// edge-weighted core.Graph values.
//
// Both return a Cut: two disjoint vertex sets covering the whole graph and
// the total weight of the edges crossing between them. Ties are broken
// deterministically (scan order over sorted vertex IDs), so repeated calls
// on the same graph return the same cut.
//
//   - StoerWagner: exact global minimum cut, O(V³). The returned sides may
//     be arbitrarily unbalanced.
//   - KernighanLin: heuristic bisection into halves differing by at most
//     one vertex, iterated pair-swap passes, O(V³) per pass.
//
// Errors:
//
//	ErrTooSmall     - fewer than two vertices; no 2-partition exists.
//	ErrDisconnected - StoerWagner requires a connected input.
package mincut
