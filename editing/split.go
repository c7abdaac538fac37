package editing

import (
	"github.com/cographtools/cogedit/triples"
)

// MinCutSplit prunes a triple set until it is guaranteed consistent over
// the given leaves, so that a subsequent BUILD (aho.BuildCograph) never
// fails. Wherever the comparability graph of the surviving triples stays in
// one connected piece, it is bipartitioned (global minimum cut, or balanced
// bisection when halfCut is set) and every pair spanning the cut loses the
// witnesses that lie inside the current leaf set, severing the component.
// Both halves are then pruned recursively.
//
// The input set is never mutated; the pruned set is a fresh copy. Leaf sets
// of fewer than three vertices are trivially consistent and returned as-is.
// Complexity: O(V) recursion depth, one O(V³) cut per connected level.
func MinCutSplit(r triples.Set, leaves []string, halfCut bool) (triples.Set, error) {
	owned := r.Clone()
	if err := minCutSplit(owned, leaves, halfCut); err != nil {
		return nil, err
	}
	return owned, nil
}

// minCutSplit prunes the owned set in place over the given leaf subset.
func minCutSplit(r triples.Set, leaves []string, halfCut bool) error {
	if len(leaves) < 3 {
		return nil
	}
	cg := triples.ComparabilityGraph(r, leaves)
	comps := cg.ConnectedComponents()

	if len(comps) > 1 {
		// Already cut by construction: no surviving triple joins two
		// components, so each is pruned independently.
		for _, comp := range comps {
			if err := minCutSplit(r, comp, halfCut); err != nil {
				return err
			}
		}
		return nil
	}

	// Single component: over-constrained for BUILD. Cut it and drop, for
	// every pair spanning the cut, the witnesses inside this leaf set.
	v1, v2, err := bipartition(cg, halfCut)
	if err != nil {
		return err
	}
	inV1 := make(map[string]struct{}, len(v1))
	for _, v := range v1 {
		inV1[v] = struct{}{}
	}
	inL := make(map[string]struct{}, len(leaves))
	for _, v := range leaves {
		inL[v] = struct{}{}
	}
	for _, e := range cg.Edges() {
		_, uIn := inV1[e.U]
		_, vIn := inV1[e.V]
		if uIn == vIn {
			continue // not a crossing edge
		}
		p := triples.NewPair(e.U, e.V)
		var kept []string
		for _, z := range r[p] {
			if _, ok := inL[z]; !ok {
				kept = append(kept, z)
			}
		}
		if len(kept) == 0 {
			delete(r, p)
		} else {
			r[p] = kept
		}
	}

	if len(v1) > 2 {
		if err := minCutSplit(r, v1, halfCut); err != nil {
			return err
		}
	}
	if len(v2) > 2 {
		if err := minCutSplit(r, v2, halfCut); err != nil {
			return err
		}
	}
	return nil
}
