package triples

import "github.com/cographtools/cogedit/core"

// ComparabilityGraph builds the weighted Aho graph of the triple set over
// the given vertex subset: every vertex of the subset as a node, and an
// edge {x,y} for every pair of the set whose both endpoints lie in the
// subset, weighted by the pair's full witness count. Witnesses are not
// required to lie inside the subset; their count is kept as-is so cut
// decisions see the pair's total support.
//
// Complexity: O(|V| + P).
func ComparabilityGraph(s Set, vertices []string) *core.Graph {
	g := core.New()
	for _, v := range vertices {
		_ = g.AddVertex(v)
	}
	for p, ws := range s {
		if len(ws) == 0 {
			continue
		}
		if g.HasVertex(p.X) && g.HasVertex(p.Y) {
			_ = g.AddEdge(p.X, p.Y, int64(len(ws)))
		}
	}
	return g
}
