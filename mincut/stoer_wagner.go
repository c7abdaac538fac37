package mincut

import (
	"sort"

	"github.com/cographtools/cogedit/core"
)

// StoerWagner computes a global minimum-weight cut of a connected graph by
// the Stoer–Wagner contraction algorithm (Stoer & Wagner, "A simple min-cut
// algorithm", JACM 1997): n-1 maximum-adjacency phases, each yielding a
// cut-of-the-phase, keeping the lightest.
//
// Absent edges count as weight 0, so a graph whose only connecting edges
// have weight 0 legitimately yields a zero-weight cut. Selection ties go to
// the earliest vertex in sorted-ID order, making the result deterministic.
//
// Returns ErrTooSmall for fewer than two vertices and ErrDisconnected when
// the input is not connected.
// Complexity: O(V³) time, O(V²) space.
func StoerWagner(g *core.Graph) (Cut, error) {
	vs := g.Vertices()
	n := len(vs)
	if n < 2 {
		return Cut{}, ErrTooSmall
	}
	if len(g.ConnectedComponents()) > 1 {
		return Cut{}, ErrDisconnected
	}

	// Dense weight matrix over vertex indices (sorted-ID order).
	idx := make(map[string]int, n)
	for i, v := range vs {
		idx[v] = i
	}
	w := make([][]int64, n)
	for i := range w {
		w[i] = make([]int64, n)
	}
	for _, e := range g.Edges() {
		i, j := idx[e.U], idx[e.V]
		w[i][j] = e.Weight
		w[j][i] = e.Weight
	}

	// groups[i] holds the original vertices contracted into node i.
	groups := make([][]string, n)
	for i, v := range vs {
		groups[i] = []string{v}
	}
	active := make([]int, n)
	for i := range active {
		active[i] = i
	}

	best := Cut{Weight: -1}
	inA := make([]bool, n)
	wsum := make([]int64, n)

	for len(active) > 1 {
		// Maximum-adjacency phase starting from the first active node.
		for _, u := range active {
			inA[u] = false
			wsum[u] = 0
		}
		prev, last := -1, active[0]
		inA[last] = true
		for _, u := range active {
			if !inA[u] {
				wsum[u] += w[last][u]
			}
		}
		var cutWeight int64
		for added := 1; added < len(active); added++ {
			// Most tightly connected next; ties to the earliest node.
			next := -1
			for _, u := range active {
				if !inA[u] && (next == -1 || wsum[u] > wsum[next]) {
					next = u
				}
			}
			prev, last = last, next
			cutWeight = wsum[next]
			inA[next] = true
			for _, u := range active {
				if !inA[u] {
					wsum[u] += w[next][u]
				}
			}
		}

		// Cut-of-the-phase: the last-added supernode against the rest.
		if best.Weight < 0 || cutWeight < best.Weight {
			best.S = append([]string(nil), groups[last]...)
			best.Weight = cutWeight
		}

		// Contract last into prev.
		groups[prev] = append(groups[prev], groups[last]...)
		for _, u := range active {
			if u == prev || u == last {
				continue
			}
			w[prev][u] += w[last][u]
			w[u][prev] = w[prev][u]
		}
		keep := active[:0]
		for _, u := range active {
			if u != last {
				keep = append(keep, u)
			}
		}
		active = keep
	}

	sort.Strings(best.S)
	inS := make(map[string]struct{}, len(best.S))
	for _, v := range best.S {
		inS[v] = struct{}{}
	}
	for _, v := range vs {
		if _, ok := inS[v]; !ok {
			best.T = append(best.T, v)
		}
	}
	return best, nil
}
