package editing

import (
	"github.com/cographtools/cogedit/cograph"
	"github.com/cographtools/cogedit/core"
)

// RandomEditing is the naive baseline: if g is sparse (not complete),
// random existing edges are removed one at a time until the recognition
// oracle accepts the graph; otherwise random missing edges are added
// instead. Since both the edgeless and the complete graph are cographs,
// termination is guaranteed either way.
//
// The input is never mutated; seed 0 selects the fixed default stream.
func RandomEditing(g *core.Graph, seed int64) *core.Graph {
	rng := rngFromSeed(seed)
	h := g.Clone()
	n := h.VertexCount()

	if h.EdgeCount() < n*(n-1)/2 {
		edges := h.Edges()
		shuffleEdgesInPlace(edges, rng)
		for i := 0; !cograph.IsCograph(h); i++ {
			_ = h.RemoveEdge(edges[i].U, edges[i].V)
		}
		return h
	}

	edges := h.Complement().Edges()
	shuffleEdgesInPlace(edges, rng)
	for i := 0; !cograph.IsCograph(h); i++ {
		_ = h.AddEdge(edges[i].U, edges[i].V, 0)
	}
	return h
}
