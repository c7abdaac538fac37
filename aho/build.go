package aho

import (
	"errors"

	"github.com/cographtools/cogedit/cograph"
	"github.com/cographtools/cogedit/core"
	"github.com/cographtools/cogedit/triples"
)

// ErrInconsistentTriples indicates the triple set admits no cograph: at some
// recursion level the comparability graph over three or more leaves is a
// single connected component.
var ErrInconsistentTriples = errors.New("aho: triple set is inconsistent, no cograph exists")

// BuildCotree reconstructs a cotree over the given leaves that satisfies
// every triple of r, or fails with ErrInconsistentTriples. The root level is
// a Union node and kinds alternate strictly with depth, so the reconstructed
// cograph is disconnected at the top whenever the leaves split into several
// components.
//
// Neither r nor leaves is mutated. Complexity: O(V² · T) worst case.
func BuildCotree(r triples.Set, leaves []string) (*cograph.Node, error) {
	return build(r, leaves, cograph.Union)
}

// BuildCograph is BuildCotree followed by cotree expansion.
func BuildCograph(r triples.Set, leaves []string) (*core.Graph, error) {
	t, err := BuildCotree(r, leaves)
	if err != nil {
		return nil, err
	}
	return t.Graph(), nil
}

// build is the recursive worker. kind is the label of the node produced at
// this level; children are built with the opposite kind.
func build(r triples.Set, leaves []string, kind cograph.Kind) (*cograph.Node, error) {
	switch len(leaves) {
	case 0:
		// Callers recurse only into non-empty components; an empty leaf
		// list is a defect, not an input condition.
		panic("aho: empty leaf list in BUILD recursion")
	case 1:
		return cograph.NewLeaf(leaves[0]), nil
	case 2:
		return cograph.NewInternal(kind,
			cograph.NewLeaf(leaves[0]),
			cograph.NewLeaf(leaves[1])), nil
	}

	cg := triples.ComparabilityGraph(r, leaves)
	comps := cg.ConnectedComponents()
	if len(comps) == 1 {
		return nil, ErrInconsistentTriples
	}

	children := make([]*cograph.Node, 0, len(comps))
	for _, comp := range comps {
		child, err := build(r.Restrict(comp), comp, kind.Opposite())
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return cograph.NewInternal(kind, children...), nil
}
