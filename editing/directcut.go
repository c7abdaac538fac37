package editing

import (
	"github.com/cographtools/cogedit/cograph"
	"github.com/cographtools/cogedit/core"
	"github.com/cographtools/cogedit/triples"
)

// DirectCut edits g into a cograph by cutting the graph itself. Every
// existing edge is weighted by the number of witnesses of its endpoint pair
// (0 where no triple supports it), so a minimum cut severs the edges least
// supported by triple evidence, the ones most likely to be edit artifacts.
// The graph is then split recursively; each split's halves are solved
// independently and recombined as join or disjoint union, whichever is
// closer to the edge set as it stood immediately before that split. The
// comparison is local and greedy; it makes no global optimality claim.
//
// A graph that already satisfies the recognition oracle is returned as an
// unchanged copy. The input is never mutated.
func DirectCut(g *core.Graph, opts Options) (*core.Graph, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if cograph.IsCograph(g) {
		return g.Clone(), nil
	}

	// Weighting happens once, here; the recursion owns its working copy
	// outright and the weights travel with the induced subgraphs.
	h := g.Clone()
	r, err := triples.Extract(g, opts.UseR1, opts.UseR2)
	if err != nil {
		return nil, err
	}
	for _, e := range h.Edges() {
		_ = h.SetEdgeWeight(e.U, e.V, int64(len(r.Witnesses(e.U, e.V))))
	}
	return directCut(h, opts.HalfCut)
}

// directCut recursively cuts the owned, weighted graph h until every part
// is a cograph, then recombines.
func directCut(h *core.Graph, halfCut bool) (*core.Graph, error) {
	if cograph.IsCograph(h) {
		return h, nil
	}

	comps := h.ConnectedComponents()
	if len(comps) > 1 {
		// Components never exchange edits; solve each and take the union.
		out := core.New()
		for _, comp := range comps {
			sub, err := directCut(h.InducedSubgraph(comp), halfCut)
			if err != nil {
				return nil, err
			}
			out = core.Union(out, sub)
		}
		return out, nil
	}

	v1, v2, err := bipartition(h, halfCut)
	if err != nil {
		return nil, err
	}
	before := h.Edges()
	g1, err := directCut(h.InducedSubgraph(v1), halfCut)
	if err != nil {
		return nil, err
	}
	g2, err := directCut(h.InducedSubgraph(v2), halfCut)
	if err != nil {
		return nil, err
	}

	// Two recombination candidates: join restores all cross edges, union
	// drops them. Pick the one nearer the pre-split edge set; union wins
	// ties.
	joined := core.Join(g1, g2)
	merged := core.Union(g1, g2)
	if edgeSetDiff(before, joined.Edges()) < edgeSetDiff(before, merged.Edges()) {
		return joined, nil
	}
	return merged, nil
}

// MinimalGraphCut polishes the DirectCut candidate with symmetric local
// search: previously cut and previously added edges are shuffled together,
// and for each the opposite mutation (re-add if cut, re-remove if added) is
// attempted and kept only while the recognition oracle still accepts the
// graph. Best of Options.Iterations trials by total edit count; the
// unpolished candidate is the fallback.
func MinimalGraphCut(g *core.Graph, opts Options) (*core.Graph, error) {
	h, err := DirectCut(g, opts)
	if err != nil {
		return nil, err
	}

	edited := append(deletedEdges(g, h), addedEdges(g, h)...)
	best := h
	bestScore := Edits(g, h)
	rng := rngFromSeed(opts.Seed)

	for trial := 0; trial < opts.Iterations; trial++ {
		tmp := h.Clone()
		shuffleEdgesInPlace(edited, rng)
		for _, e := range edited {
			if tmp.HasEdge(e.U, e.V) {
				_ = tmp.RemoveEdge(e.U, e.V)
				if !cograph.IsCograph(tmp) {
					_ = tmp.AddEdge(e.U, e.V, 0)
				}
			} else {
				_ = tmp.AddEdge(e.U, e.V, 0)
				if !cograph.IsCograph(tmp) {
					_ = tmp.RemoveEdge(e.U, e.V)
				}
			}
		}
		if score := Edits(g, tmp); score < bestScore {
			best, bestScore = tmp, score
		}
	}
	return best, nil
}
