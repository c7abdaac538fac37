package editing

import (
	"fmt"

	"github.com/cographtools/cogedit/aho"
	"github.com/cographtools/cogedit/cograph"
	"github.com/cographtools/cogedit/core"
	"github.com/cographtools/cogedit/triples"
)

// MinCutEdit edits g into a cograph via the triple pipeline: extract triples,
// prune them consistent with MinCutSplit, reconstruct with BUILD, and return
// whichever of the reconstruction and its complement needs fewer edits
// against g (cographs are complement-closed, so both are valid candidates).
//
// BUILD failing on the pruned set would mean a defect in the pruning step;
// it is surfaced as a wrapped aho.ErrInconsistentTriples, never expected on
// this path.
func MinCutEdit(g *core.Graph, opts Options) (*core.Graph, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	r, err := triples.Extract(g, opts.UseR1, opts.UseR2)
	if err != nil {
		return nil, err
	}
	pruned, err := MinCutSplit(r, g.Vertices(), opts.HalfCut)
	if err != nil {
		return nil, err
	}
	h, err := aho.BuildCograph(pruned, g.Vertices())
	if err != nil {
		return nil, fmt.Errorf("editing: pruned triple set rejected by BUILD: %w", err)
	}
	hc := h.Complement()
	if Edits(g, h) < Edits(g, hc) {
		return h, nil
	}
	return hc, nil
}

// MinimalMinCutEdit polishes the MinCutEdit candidate with deletion-repair
// local search: over Options.Iterations independent trials, the edges of g
// that the candidate cut are shuffled and greedily re-added one at a time,
// each addition kept only while the graph remains a cograph. The trial with
// the fewest remaining deletions wins; the unpolished candidate is the
// fallback, so the result never deletes more than MinCutEdit's.
//
// The search is asymmetric: it only re-adds previously cut edges and never
// introduces additions beyond the initial candidate's.
func MinimalMinCutEdit(g *core.Graph, opts Options) (*core.Graph, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	h, err := MinCutEdit(g, opts)
	if err != nil {
		return nil, err
	}

	cut := deletedEdges(g, h)
	best := h
	bestScore := Deletions(g, h)
	rng := rngFromSeed(opts.Seed)

	for trial := 0; trial < opts.Iterations; trial++ {
		tmp := h.Clone()
		shuffleEdgesInPlace(cut, rng)
		for _, e := range cut {
			_ = tmp.AddEdge(e.U, e.V, 0)
			if !cograph.IsCograph(tmp) {
				_ = tmp.RemoveEdge(e.U, e.V)
			}
		}
		if score := Deletions(g, tmp); score < bestScore {
			best, bestScore = tmp, score
		}
	}
	return best, nil
}
