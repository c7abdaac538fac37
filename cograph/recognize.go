package cograph

import "github.com/cographtools/cogedit/core"

// IsCograph reports whether g contains no induced P4.
//
// The check follows the recursive cotree decomposition: any graph on at most
// three vertices is trivially P4-free; a larger graph is a cograph iff it is
// disconnected and every component is a cograph, or its complement is
// disconnected and every induced subgraph of g on a co-component is a
// cograph. A connected graph with a connected complement on four or more
// vertices contains an induced P4.
//
// The input is never mutated. Complexity: O(V²) per level, O(V³) worst case.
func IsCograph(g *core.Graph) bool {
	if g.VertexCount() <= 3 {
		return true
	}
	comps := g.ConnectedComponents()
	if len(comps) > 1 {
		for _, c := range comps {
			if !IsCograph(g.InducedSubgraph(c)) {
				return false
			}
		}
		return true
	}
	coComps := g.Complement().ConnectedComponents()
	if len(coComps) > 1 {
		for _, c := range coComps {
			if !IsCograph(g.InducedSubgraph(c)) {
				return false
			}
		}
		return true
	}
	return false
}
