package triples

import (
	"errors"

	"github.com/cographtools/cogedit/core"
)

// ErrNoRules indicates both derivation rules were disabled; with neither R1
// nor R2 active no triple can ever be produced, so extraction is rejected
// before any work begins.
var ErrNoRules = errors.New("triples: both derivation rules disabled")

// Extract derives every rooted triple xy|z of g under the enabled rules.
// For each unordered pair {x,y} and each third vertex z the triple test of
// IsTriple is evaluated; witnesses accumulate per pair and pairs without
// witnesses are omitted.
//
// Complexity: O(V³) pair-times-witness enumeration, each test O(deg) for
// the R2 neighbor scan.
func Extract(g *core.Graph, useR1, useR2 bool) (Set, error) {
	if !useR1 && !useR2 {
		return nil, ErrNoRules
	}
	vs := g.Vertices()
	out := make(Set)
	for i := 0; i < len(vs)-1; i++ {
		for j := i + 1; j < len(vs); j++ {
			x, y := vs[i], vs[j]
			for _, z := range vs {
				if z == x || z == y {
					continue
				}
				if IsTriple(g, x, y, z, useR1, useR2) {
					out.Add(x, y, z)
				}
			}
		}
	}
	return out, nil
}

// IsTriple reports whether xy|z holds in g under the enabled rules.
//
// The test depends on how z relates to the pair:
//
//   - z adjacent to neither x nor y: R1 fires iff {x,y} is an edge; R2 is
//     only consulted when {x,y} is not an edge and fires iff some neighbor
//     n of x is adjacent to y but not to z.
//   - z adjacent to both x and y: R1 fires iff {x,y} is not an edge; R2 is
//     only consulted when {x,y} is an edge and fires iff some neighbor n of
//     z is adjacent to neither x nor y.
//   - z adjacent to exactly one of x, y: no triple.
//
// Complexity: O(deg) for the R2 scan, O(1) otherwise.
func IsTriple(g *core.Graph, x, y, z string, useR1, useR2 bool) bool {
	xz := g.HasEdge(x, z)
	yz := g.HasEdge(y, z)
	xy := g.HasEdge(x, y)

	switch {
	case !xz && !yz:
		if useR1 && xy {
			return true
		}
		if useR2 && !xy {
			nbrs, err := g.Neighbors(x)
			if err != nil {
				return false
			}
			for _, n := range nbrs {
				if g.HasEdge(y, n) && !g.HasEdge(z, n) {
					return true
				}
			}
		}
		return false

	case xz && yz:
		if useR1 && !xy {
			return true
		}
		if useR2 && xy {
			nbrs, err := g.Neighbors(z)
			if err != nil {
				return false
			}
			for _, n := range nbrs {
				if !g.HasEdge(x, n) && !g.HasEdge(y, n) {
					return true
				}
			}
		}
		return false
	}
	return false
}
