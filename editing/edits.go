package editing

import "github.com/cographtools/cogedit/core"

// Edits returns the edge edit distance between g and h over a shared vertex
// set: deletions (edges of g absent from h) plus additions (edges of h
// absent from g). Weights are ignored.
// Complexity: O(E(g) + E(h)).
func Edits(g, h *core.Graph) int {
	return Deletions(g, h) + Deletions(h, g)
}

// Deletions counts the edges of g that h lacks.
// Complexity: O(E(g)).
func Deletions(g, h *core.Graph) int {
	n := 0
	for _, e := range g.Edges() {
		if !h.HasEdge(e.U, e.V) {
			n++
		}
	}
	return n
}

// deletedEdges returns the edges of g absent from h.
func deletedEdges(g, h *core.Graph) []core.Edge {
	var out []core.Edge
	for _, e := range g.Edges() {
		if !h.HasEdge(e.U, e.V) {
			out = append(out, e)
		}
	}
	return out
}

// addedEdges returns the edges of h absent from g.
func addedEdges(g, h *core.Graph) []core.Edge {
	return deletedEdges(h, g)
}

// edgeSetDiff returns the size of the symmetric difference of two edge
// lists, treating each as a set of canonical unordered pairs.
// Complexity: O(len(a) + len(b)).
func edgeSetDiff(a, b []core.Edge) int {
	type key struct{ u, v string }
	inA := make(map[key]struct{}, len(a))
	for _, e := range a {
		inA[key{e.U, e.V}] = struct{}{}
	}
	diff := 0
	for _, e := range b {
		k := key{e.U, e.V}
		if _, ok := inA[k]; ok {
			delete(inA, k)
		} else {
			diff++ // present only in b
		}
	}
	return diff + len(inA) // plus those present only in a
}
