package editing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cographtools/cogedit/aho"
	"github.com/cographtools/cogedit/cograph"
	"github.com/cographtools/cogedit/core"
	"github.com/cographtools/cogedit/editing"
	"github.com/cographtools/cogedit/triples"
)

// p4 builds the path 1-2-3-4, the smallest graph needing any edit at all.
func p4(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New()
	require.NoError(t, g.AddEdge("1", "2", 0))
	require.NoError(t, g.AddEdge("2", "3", 0))
	require.NoError(t, g.AddEdge("3", "4", 0))
	return g
}

// c5 builds the 5-cycle, another minimal-ish non-cograph.
func c5(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New()
	ids := []string{"1", "2", "3", "4", "5"}
	for i := range ids {
		require.NoError(t, g.AddEdge(ids[i], ids[(i+1)%len(ids)], 0))
	}
	return g
}

// TestOptionsValidation verifies the sentinel plumbing of every driver.
func TestOptionsValidation(t *testing.T) {
	g := p4(t)

	opts := editing.DefaultOptions()
	opts.UseR1, opts.UseR2 = false, false
	_, err := editing.MinCutEdit(g, opts)
	assert.ErrorIs(t, err, triples.ErrNoRules)
	_, err = editing.DirectCut(g, opts)
	assert.ErrorIs(t, err, triples.ErrNoRules)

	opts = editing.DefaultOptions()
	opts.Iterations = -1
	_, err = editing.MinimalMinCutEdit(g, opts)
	assert.ErrorIs(t, err, editing.ErrBadIterations)
	_, err = editing.MinCutEdit(g, opts)
	assert.ErrorIs(t, err, editing.ErrBadIterations)
}

// TestEditsAndDeletions verifies the edit-distance accounting.
func TestEditsAndDeletions(t *testing.T) {
	g := p4(t)
	h := g.Clone()
	require.NoError(t, h.RemoveEdge("2", "3"))
	require.NoError(t, h.AddEdge("1", "4", 0))

	assert.Equal(t, 1, editing.Deletions(g, h))
	assert.Equal(t, 1, editing.Deletions(h, g))
	assert.Equal(t, 2, editing.Edits(g, h))
	assert.Equal(t, 0, editing.Edits(g, g))
}

// TestMinCutSplit_MakesBuildSucceed verifies the core pruning guarantee:
// whatever BUILD rejects before the split, it accepts after.
func TestMinCutSplit_MakesBuildSucceed(t *testing.T) {
	for name, g := range map[string]*core.Graph{
		"p4": p4(t),
		"c5": c5(t),
	} {
		for _, halfCut := range []bool{false, true} {
			r, err := triples.Extract(g, true, true)
			require.NoError(t, err)

			// Unpruned triples of a non-cograph are inconsistent.
			_, err = aho.BuildCograph(r, g.Vertices())
			require.ErrorIs(t, err, aho.ErrInconsistentTriples,
				"%s halfCut=%v", name, halfCut)

			pruned, err := editing.MinCutSplit(r, g.Vertices(), halfCut)
			require.NoError(t, err)

			h, err := aho.BuildCograph(pruned, g.Vertices())
			require.NoError(t, err, "%s halfCut=%v", name, halfCut)
			assert.True(t, cograph.IsCograph(h))
			assert.Equal(t, g.Vertices(), h.Vertices())
		}
	}
}

// TestMinCutSplit_DoesNotMutateInput verifies the ownership contract.
func TestMinCutSplit_DoesNotMutateInput(t *testing.T) {
	g := p4(t)
	r, err := triples.Extract(g, true, true)
	require.NoError(t, err)
	before := r.TripleCount()

	_, err = editing.MinCutSplit(r, g.Vertices(), false)
	require.NoError(t, err)
	assert.Equal(t, before, r.TripleCount(), "input set must stay intact")
}

// TestMinCutEdit_P4 verifies the deterministic pipeline output on the path:
// the pruning keeps only 12|4, so BUILD returns the single edge 1-2 at a
// cost of two deletions.
func TestMinCutEdit_P4(t *testing.T) {
	g := p4(t)

	h, err := editing.MinCutEdit(g, editing.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, cograph.IsCograph(h))
	assert.Equal(t, g.Vertices(), h.Vertices())
	assert.Equal(t, 1, h.EdgeCount())
	assert.True(t, h.HasEdge("1", "2"))
	assert.Equal(t, 2, editing.Edits(g, h))
}

// TestMinCutEdit_ComplementChoice verifies the candidate-vs-complement
// selection: under the balanced bisection the pruned triples rebuild to the
// two disjoint edges 1-3 and 2-4, whose complement is the cycle closing the
// path with the single edge 1-4: one addition instead of five edits.
func TestMinCutEdit_ComplementChoice(t *testing.T) {
	g := p4(t)
	opts := editing.DefaultOptions()
	opts.HalfCut = true

	h, err := editing.MinCutEdit(g, opts)
	require.NoError(t, err)
	assert.True(t, cograph.IsCograph(h))
	assert.Equal(t, 1, editing.Edits(g, h))
	assert.True(t, h.HasEdge("1", "4"), "the path should close into C4")
	for _, e := range g.Edges() {
		assert.True(t, h.HasEdge(e.U, e.V), "no original edge is lost")
	}
}

// TestMinimalMinCutEdit_RepairsP4 verifies the deletion-repair search closes
// the gap: re-adding one of the two cut edges keeps the graph a cograph, so
// the polished result costs exactly one edit.
func TestMinimalMinCutEdit_RepairsP4(t *testing.T) {
	g := p4(t)

	h, err := editing.MinimalMinCutEdit(g, editing.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, cograph.IsCograph(h))
	assert.Equal(t, 1, editing.Deletions(g, h))
	assert.Equal(t, 1, editing.Edits(g, h))
}

// TestMinimalMinCutEdit_NeverWorseThanCandidate verifies the fallback: the
// polished result deletes at most as much as the raw pipeline output.
func TestMinimalMinCutEdit_NeverWorseThanCandidate(t *testing.T) {
	for _, g := range []*core.Graph{p4(t), c5(t)} {
		opts := editing.DefaultOptions()

		raw, err := editing.MinCutEdit(g, opts)
		require.NoError(t, err)
		polished, err := editing.MinimalMinCutEdit(g, opts)
		require.NoError(t, err)

		assert.LessOrEqual(t,
			editing.Deletions(g, polished), editing.Deletions(g, raw))
	}
}

// TestMinimalMinCutEdit_ZeroIterations verifies zero trials return the raw
// candidate unchanged.
func TestMinimalMinCutEdit_ZeroIterations(t *testing.T) {
	g := p4(t)
	opts := editing.DefaultOptions()
	opts.Iterations = 0

	raw, err := editing.MinCutEdit(g, opts)
	require.NoError(t, err)
	h, err := editing.MinimalMinCutEdit(g, opts)
	require.NoError(t, err)
	assert.Equal(t, raw.Edges(), h.Edges())
}

// TestDirectCut_CographFixpoint verifies graphs already in the class come
// back untouched (as a copy).
func TestDirectCut_CographFixpoint(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("a", "b", 0))
	require.NoError(t, g.AddEdge("c", "d", 0))

	h, err := editing.DirectCut(g, editing.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, editing.Edits(g, h))

	require.NoError(t, h.RemoveEdge("a", "b"))
	assert.True(t, g.HasEdge("a", "b"), "result must be a copy, not the input")
}

// TestDirectCut_P4 verifies the deterministic graph-cut output on the path:
// the zero-supported edge 2-3 is severed and the halves recombine as a
// disjoint union, one deletion total.
func TestDirectCut_P4(t *testing.T) {
	g := p4(t)

	h, err := editing.DirectCut(g, editing.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, cograph.IsCograph(h))
	assert.Equal(t, 2, h.EdgeCount())
	assert.True(t, h.HasEdge("1", "2"))
	assert.True(t, h.HasEdge("3", "4"))
	assert.Equal(t, 1, editing.Edits(g, h))
}

// TestDirectCut_DoesNotMutateInput verifies the input graph and its weights
// survive the weighting pass.
func TestDirectCut_DoesNotMutateInput(t *testing.T) {
	g := p4(t)
	_, err := editing.DirectCut(g, editing.DefaultOptions())
	require.NoError(t, err)

	for _, e := range g.Edges() {
		assert.Equal(t, int64(0), e.Weight, "input weights must stay zero")
	}
	assert.Equal(t, 3, g.EdgeCount())
}

// TestDirectCut_DisconnectedComponents verifies each component is edited
// independently: two disjoint paths cost one edit each.
func TestDirectCut_DisconnectedComponents(t *testing.T) {
	g := p4(t)
	require.NoError(t, g.AddEdge("a", "b", 0))
	require.NoError(t, g.AddEdge("b", "c", 0))
	require.NoError(t, g.AddEdge("c", "d", 0))

	h, err := editing.DirectCut(g, editing.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, cograph.IsCograph(h))
	assert.Equal(t, g.Vertices(), h.Vertices())
	assert.Equal(t, 2, editing.Edits(g, h))
}

// TestMinimalGraphCut_P4 verifies the symmetric local search lands on the
// single-deletion optimum.
func TestMinimalGraphCut_P4(t *testing.T) {
	g := p4(t)

	h, err := editing.MinimalGraphCut(g, editing.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, cograph.IsCograph(h))
	assert.Equal(t, 1, editing.Edits(g, h))
}

// TestMinimalGraphCut_NeverWorseThanCandidate verifies the fallback against
// the raw graph-cut result.
func TestMinimalGraphCut_NeverWorseThanCandidate(t *testing.T) {
	for _, g := range []*core.Graph{p4(t), c5(t)} {
		opts := editing.DefaultOptions()

		raw, err := editing.DirectCut(g, opts)
		require.NoError(t, err)
		polished, err := editing.MinimalGraphCut(g, opts)
		require.NoError(t, err)

		assert.True(t, cograph.IsCograph(polished))
		assert.LessOrEqual(t, editing.Edits(g, polished), editing.Edits(g, raw))
	}
}

// TestRandomEditing_P4 verifies the baseline: removing any single edge of
// the path yields a cograph, so the cost is always exactly one deletion.
func TestRandomEditing_P4(t *testing.T) {
	g := p4(t)

	for seed := int64(0); seed < 4; seed++ {
		h := editing.RandomEditing(g, seed)
		assert.True(t, cograph.IsCograph(h), "seed %d", seed)
		assert.Equal(t, 1, editing.Deletions(g, h), "seed %d", seed)
		assert.Equal(t, 0, editing.Deletions(h, g), "baseline never adds here")
	}
	assert.Equal(t, 3, g.EdgeCount(), "input must stay intact")
}

// TestRandomEditing_Deterministic verifies same seed, same result.
func TestRandomEditing_Deterministic(t *testing.T) {
	g := c5(t)
	a := editing.RandomEditing(g, 42)
	b := editing.RandomEditing(g, 42)
	assert.Equal(t, a.Edges(), b.Edges())
	assert.True(t, cograph.IsCograph(a))
}

// TestRandomEditing_AlreadyCograph verifies the no-op path.
func TestRandomEditing_AlreadyCograph(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("a", "b", 0))

	h := editing.RandomEditing(g, 0)
	assert.Equal(t, 0, editing.Edits(g, h))
}
