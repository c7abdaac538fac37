package cograph

import (
	"sort"

	"github.com/cographtools/cogedit/core"
)

// Kind labels an internal cotree node: Union denotes disjoint union of the
// children, Join denotes their complete join.
type Kind uint8

const (
	// Union combines children without any edges between them.
	Union Kind = iota

	// Join combines children with every cross edge present.
	Join
)

// Opposite returns the other kind. Cotree levels alternate strictly, so a
// child of a Join node is a Union node and vice versa.
func (k Kind) Opposite() Kind {
	if k == Union {
		return Join
	}
	return Union
}

// String returns "union" or "join".
func (k Kind) String() string {
	if k == Union {
		return "union"
	}
	return "join"
}

// Node is one cotree node: either a leaf carrying a vertex ID, or an
// internal node of the given Kind with at least one child.
type Node struct {
	// Kind is meaningful only for internal nodes.
	Kind Kind

	// Leaf is the vertex ID; non-empty exactly for leaf nodes.
	Leaf string

	// Children is nil for leaves.
	Children []*Node
}

// NewLeaf returns a leaf node for the given vertex ID.
func NewLeaf(id string) *Node {
	return &Node{Leaf: id}
}

// NewInternal returns an internal node of the given kind over children.
func NewInternal(kind Kind, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

// IsLeaf reports whether n is a leaf.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Leaves returns the vertex IDs under n in sorted order.
// Complexity: O(L log L).
func (n *Node) Leaves() []string {
	var out []string
	n.collectLeaves(&out)
	sort.Strings(out)
	return out
}

func (n *Node) collectLeaves(out *[]string) {
	if n.IsLeaf() {
		*out = append(*out, n.Leaf)
		return
	}
	for _, c := range n.Children {
		c.collectLeaves(out)
	}
}

// Graph expands the cotree into the cograph it denotes. Leaves become
// isolated vertices; a Union node takes the disjoint union of its children;
// a Join node additionally connects every pair of vertices from distinct
// children. Leaf IDs are assumed distinct across the tree.
// Complexity: O(V²) for join-heavy trees.
func (n *Node) Graph() *core.Graph {
	if n.IsLeaf() {
		g := core.New()
		_ = g.AddVertex(n.Leaf)
		return g
	}
	g := core.New()
	for _, c := range n.Children {
		child := c.Graph()
		if n.Kind == Join {
			g = core.Join(g, child)
		} else {
			g = core.Union(g, child)
		}
	}
	return g
}
