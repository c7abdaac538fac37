package core

import "sort"

// AddVertex inserts a vertex with the given ID. Adding an existing vertex is
// a no-op (idempotent). Returns ErrEmptyVertexID for the empty string.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]int64)
	}
	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adj[id]
	return ok
}

// RemoveVertex deletes the vertex and every incident edge.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(id string) error {
	nbrs, ok := g.adj[id]
	if !ok {
		return ErrVertexNotFound
	}
	for n := range nbrs {
		delete(g.adj[n], id)
	}
	delete(g.adj, id)
	return nil
}

// AddEdge inserts the undirected edge {u,v} with the given weight, creating
// missing endpoints on the fly. Re-adding an existing edge overwrites its
// weight. Returns ErrEmptyVertexID, ErrSelfLoop or ErrNegativeWeight.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v string, weight int64) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return ErrSelfLoop
	}
	if weight < 0 {
		return ErrNegativeWeight
	}
	if err := g.AddVertex(u); err != nil {
		return err
	}
	if err := g.AddVertex(v); err != nil {
		return err
	}
	g.adj[u][v] = weight
	g.adj[v][u] = weight
	return nil
}

// RemoveEdge deletes the undirected edge {u,v}.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v string) error {
	if !g.HasEdge(u, v) {
		return ErrEdgeNotFound
	}
	delete(g.adj[u], v)
	delete(g.adj[v], u)
	return nil
}

// HasEdge reports whether the undirected edge {u,v} exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.adj[u][v]
	return ok
}

// EdgeWeight returns the stored weight of edge {u,v}, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) EdgeWeight(u, v string) (int64, error) {
	w, ok := g.adj[u][v]
	if !ok {
		return 0, ErrEdgeNotFound
	}
	return w, nil
}

// SetEdgeWeight updates the weight of an existing edge {u,v}.
// Returns ErrEdgeNotFound or ErrNegativeWeight.
// Complexity: O(1).
func (g *Graph) SetEdgeWeight(u, v string, weight int64) error {
	if weight < 0 {
		return ErrNegativeWeight
	}
	if !g.HasEdge(u, v) {
		return ErrEdgeNotFound
	}
	g.adj[u][v] = weight
	g.adj[v][u] = weight
	return nil
}

// Neighbors returns the IDs adjacent to id, sorted for determinism.
// Returns ErrVertexNotFound for a missing vertex.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]string, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Strings(out)
	return out, nil
}

// Degree returns the number of edges incident to id.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return 0, ErrVertexNotFound
	}
	return len(nbrs), nil
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	out := make([]string, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Edges returns every edge exactly once as canonical (U < V) snapshots,
// sorted by (U, V).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	var out []Edge
	for u, nbrs := range g.adj {
		for v, w := range nbrs {
			if u < v {
				out = append(out, Edge{U: u, V: v, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})
	return out
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int {
	return len(g.adj)
}

// EdgeCount returns the number of undirected edges. O(V).
func (g *Graph) EdgeCount() int {
	total := 0
	for _, nbrs := range g.adj {
		total += len(nbrs)
	}
	return total / 2
}

// Clone returns a deep copy of the graph.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := New()
	for u, nbrs := range g.adj {
		inner := make(map[string]int64, len(nbrs))
		for v, w := range nbrs {
			inner[v] = w
		}
		c.adj[u] = inner
	}
	return c
}
