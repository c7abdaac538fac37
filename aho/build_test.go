package aho_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cographtools/cogedit/aho"
	"github.com/cographtools/cogedit/cograph"
	"github.com/cographtools/cogedit/core"
	"github.com/cographtools/cogedit/triples"
)

// TestBuildCotree_BaseCases verifies the one- and two-leaf shortcuts and the
// edgeless fallthrough for an empty triple set.
func TestBuildCotree_BaseCases(t *testing.T) {
	r := make(triples.Set)

	tree, err := aho.BuildCotree(r, []string{"a"})
	require.NoError(t, err)
	assert.True(t, tree.IsLeaf())
	assert.Equal(t, "a", tree.Leaf)

	tree, err = aho.BuildCotree(r, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, cograph.Union, tree.Kind)
	assert.Equal(t, []string{"a", "b"}, tree.Leaves())

	// No triples: every leaf is its own component, the root unions them all.
	g, err := aho.BuildCograph(r, []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, []string{"a", "b", "c"}, g.Vertices())
}

// TestBuildCotree_Inconsistent verifies the failure when the comparability
// graph stays connected: 12|3 and 23|1 over {1,2,3} chain all three leaves
// together.
func TestBuildCotree_Inconsistent(t *testing.T) {
	r := make(triples.Set)
	r.Add("1", "2", "3")
	r.Add("2", "3", "1")

	_, err := aho.BuildCotree(r, []string{"1", "2", "3"})
	assert.ErrorIs(t, err, aho.ErrInconsistentTriples)
}

// TestBuildCograph_RoundTrip verifies that extracting triples from a cograph
// and rebuilding reproduces the graph exactly. The instance is
// union(join(1, union(2,3)), join(4,5)), i.e. edges {12, 13, 45}.
func TestBuildCograph_RoundTrip(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("1", "2", 0))
	require.NoError(t, g.AddEdge("1", "3", 0))
	require.NoError(t, g.AddEdge("4", "5", 0))
	require.True(t, cograph.IsCograph(g))

	r, err := triples.Extract(g, true, true)
	require.NoError(t, err)

	h, err := aho.BuildCograph(r, g.Vertices())
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), h.Vertices())
	assert.Equal(t, 3, h.EdgeCount())
	assert.True(t, h.HasEdge("1", "2"))
	assert.True(t, h.HasEdge("1", "3"))
	assert.True(t, h.HasEdge("4", "5"))
}

// TestBuildCotree_KindAlternation verifies the root is a Union node and the
// next level is Join, matching the cotree canonical form.
func TestBuildCotree_KindAlternation(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("1", "2", 0))
	require.NoError(t, g.AddEdge("1", "3", 0))
	require.NoError(t, g.AddEdge("4", "5", 0))

	r, err := triples.Extract(g, true, true)
	require.NoError(t, err)

	tree, err := aho.BuildCotree(r, g.Vertices())
	require.NoError(t, err)
	assert.Equal(t, cograph.Union, tree.Kind)
	require.Len(t, tree.Children, 2)
	for _, c := range tree.Children {
		if !c.IsLeaf() {
			assert.Equal(t, cograph.Join, c.Kind)
		}
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, tree.Leaves())
}

// TestBuildCograph_CompleteGraph verifies a triangle survives the round trip
// through the join level.
func TestBuildCograph_CompleteGraph(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("1", "2", 0))
	require.NoError(t, g.AddEdge("1", "3", 0))
	require.NoError(t, g.AddEdge("2", "3", 0))
	require.NoError(t, g.AddVertex("4"))

	r, err := triples.Extract(g, true, true)
	require.NoError(t, err)

	h, err := aho.BuildCograph(r, g.Vertices())
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), h.Edges())
}
