package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cographtools/cogedit/core"
)

// path builds the path graph v[0]-v[1]-...-v[n-1].
func path(t *testing.T, ids ...string) *core.Graph {
	t.Helper()
	g := core.New()
	require.NoError(t, g.AddVertex(ids[0]))
	for i := 0; i+1 < len(ids); i++ {
		require.NoError(t, g.AddEdge(ids[i], ids[i+1], 0))
	}
	return g
}

// TestInducedSubgraph verifies vertex filtering, edge filtering and weight
// preservation.
func TestInducedSubgraph(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("a", "b", 4))
	require.NoError(t, g.AddEdge("b", "c", 0))
	require.NoError(t, g.AddEdge("c", "d", 0))

	sub := g.InducedSubgraph([]string{"a", "b", "d", "zz"})
	assert.Equal(t, []string{"a", "b", "d"}, sub.Vertices(), "unknown vertices are ignored")
	assert.True(t, sub.HasEdge("a", "b"))
	assert.False(t, sub.HasEdge("c", "d"), "edges leaving the subset are dropped")
	assert.False(t, sub.HasEdge("b", "c"))

	w, err := sub.EdgeWeight("a", "b")
	require.NoError(t, err)
	assert.Equal(t, int64(4), w, "weights survive the restriction")
}

// TestComplement verifies edge flipping and the double-complement identity.
func TestComplement(t *testing.T) {
	g := path(t, "a", "b", "c")

	c := g.Complement()
	assert.Equal(t, g.Vertices(), c.Vertices())
	assert.False(t, c.HasEdge("a", "b"))
	assert.False(t, c.HasEdge("b", "c"))
	assert.True(t, c.HasEdge("a", "c"))

	cc := c.Complement()
	assert.Equal(t, g.Edges(), cc.Edges(), "complement is an involution on edges")
}

// TestUnionAndJoin verifies the two cotree composition operations.
func TestUnionAndJoin(t *testing.T) {
	a := path(t, "a", "b")
	b := path(t, "c", "d")

	u := core.Union(a, b)
	assert.Equal(t, 4, u.VertexCount())
	assert.Equal(t, 2, u.EdgeCount())
	assert.False(t, u.HasEdge("a", "c"))

	j := core.Join(a, b)
	assert.Equal(t, 4, j.VertexCount())
	// 2 original edges + 4 cross edges.
	assert.Equal(t, 6, j.EdgeCount())
	for _, x := range []string{"a", "b"} {
		for _, y := range []string{"c", "d"} {
			assert.True(t, j.HasEdge(x, y), "join must connect %s-%s", x, y)
		}
	}

	// Inputs stay untouched.
	assert.Equal(t, 1, a.EdgeCount())
	assert.Equal(t, 1, b.EdgeCount())
}

// TestConnectedComponents verifies component discovery and the deterministic
// ordering contract.
func TestConnectedComponents(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("d", "c", 0))
	require.NoError(t, g.AddEdge("a", "b", 0))
	require.NoError(t, g.AddVertex("e"))

	comps := g.ConnectedComponents()
	require.Len(t, comps, 3)
	assert.Equal(t, []string{"a", "b"}, comps[0])
	assert.Equal(t, []string{"c", "d"}, comps[1])
	assert.Equal(t, []string{"e"}, comps[2])
}

// TestConnectedComponents_Single verifies a connected graph yields one
// component covering every vertex.
func TestConnectedComponents_Single(t *testing.T) {
	g := path(t, "1", "2", "3", "4")
	comps := g.ConnectedComponents()
	require.Len(t, comps, 1)
	assert.Equal(t, []string{"1", "2", "3", "4"}, comps[0])
}
