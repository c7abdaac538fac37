package core

import "sort"

// InducedSubgraph returns a fresh graph over the given vertex subset with
// every edge of g whose endpoints both lie in the subset, weights preserved.
// Vertices absent from g are ignored.
// Complexity: O(|V'| · d).
func (g *Graph) InducedSubgraph(vertices []string) *Graph {
	sub := New()
	keep := make(map[string]struct{}, len(vertices))
	for _, v := range vertices {
		if g.HasVertex(v) {
			keep[v] = struct{}{}
			_ = sub.AddVertex(v)
		}
	}
	for u := range keep {
		for v, w := range g.adj[u] {
			if _, ok := keep[v]; ok && u < v {
				_ = sub.AddEdge(u, v, w)
			}
		}
	}
	return sub
}

// Complement returns the complement graph: same vertices, an edge {u,v}
// exactly where g has none. Weights are not carried over (all zero).
// Complexity: O(V²).
func (g *Graph) Complement() *Graph {
	vs := g.Vertices()
	c := New()
	for _, v := range vs {
		_ = c.AddVertex(v)
	}
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			if !g.HasEdge(vs[i], vs[j]) {
				_ = c.AddEdge(vs[i], vs[j], 0)
			}
		}
	}
	return c
}

// Union returns the disjoint union of a and b: all vertices and edges of
// both. Overlapping edges keep b's weight. Neither input is mutated.
// Complexity: O(V + E).
func Union(a, b *Graph) *Graph {
	u := a.Clone()
	for _, v := range b.Vertices() {
		_ = u.AddVertex(v)
	}
	for _, e := range b.Edges() {
		_ = u.AddEdge(e.U, e.V, e.Weight)
	}
	return u
}

// Join returns the complete join of a and b: their union plus every edge
// between a vertex of a and a vertex of b. Neither input is mutated.
// Complexity: O(|V(a)|·|V(b)| + V + E).
func Join(a, b *Graph) *Graph {
	j := Union(a, b)
	for _, x := range a.Vertices() {
		for _, y := range b.Vertices() {
			if x != y && !j.HasEdge(x, y) {
				_ = j.AddEdge(x, y, 0)
			}
		}
	}
	return j
}

// ConnectedComponents returns the vertex sets of the connected components
// of g. Each component is sorted, and components are ordered by their
// smallest vertex, so the result is deterministic.
// Complexity: O(V + E) plus sorting.
func (g *Graph) ConnectedComponents() [][]string {
	seen := make(map[string]struct{}, len(g.adj))
	var comps [][]string
	for _, start := range g.Vertices() {
		if _, ok := seen[start]; ok {
			continue
		}
		// BFS to collect the component containing start.
		queue := []string{start}
		seen[start] = struct{}{}
		var comp []string
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for v := range g.adj[u] {
				if _, ok := seen[v]; !ok {
					seen[v] = struct{}{}
					queue = append(queue, v)
				}
			}
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}
	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })
	return comps
}
