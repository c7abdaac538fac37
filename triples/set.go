package triples

import "sort"

// Pair is the canonical unordered key {X,Y} of a triple family xy|*.
// Construct it with NewPair so that X < Y always holds.
type Pair struct {
	X, Y string
}

// NewPair canonicalizes the unordered pair {a,b}.
func NewPair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{X: a, Y: b}
}

// Set maps a canonical pair {x,y} to its witnesses z, one entry per triple
// family xy|*. Invariant: every present pair has at least one witness, and
// witnesses are distinct vertices outside {x,y}.
type Set map[Pair][]string

// Add records the triple xy|z.
// Complexity: O(1) amortized.
func (s Set) Add(x, y, z string) {
	p := NewPair(x, y)
	s[p] = append(s[p], z)
}

// Has reports whether any triple xy|* is present.
func (s Set) Has(x, y string) bool {
	_, ok := s[NewPair(x, y)]
	return ok
}

// Witnesses returns the witness list of the pair {x,y} (nil if absent).
// The returned slice is owned by the set; callers must not mutate it.
func (s Set) Witnesses(x, y string) []string {
	return s[NewPair(x, y)]
}

// Pairs returns all present pairs sorted by (X, Y) for deterministic
// iteration.
// Complexity: O(P log P).
func (s Set) Pairs() []Pair {
	out := make([]Pair, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

// Len returns the number of pairs with at least one witness.
func (s Set) Len() int {
	return len(s)
}

// TripleCount returns the total number of stored triples (witnesses summed
// over all pairs).
func (s Set) TripleCount() int {
	total := 0
	for _, ws := range s {
		total += len(ws)
	}
	return total
}

// Clone returns a deep copy: fresh map, fresh witness slices.
// Complexity: O(T).
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for p, ws := range s {
		c[p] = append([]string(nil), ws...)
	}
	return c
}

// Restrict returns a new set containing only pairs whose both endpoints lie
// in the given vertex subset, with witnesses filtered to the subset as well.
// Pairs left without witnesses are dropped.
// Complexity: O(T).
func (s Set) Restrict(vertices []string) Set {
	keep := make(map[string]struct{}, len(vertices))
	for _, v := range vertices {
		keep[v] = struct{}{}
	}
	out := make(Set)
	for p, ws := range s {
		if _, ok := keep[p.X]; !ok {
			continue
		}
		if _, ok := keep[p.Y]; !ok {
			continue
		}
		var kept []string
		for _, z := range ws {
			if _, ok := keep[z]; ok {
				kept = append(kept, z)
			}
		}
		if len(kept) > 0 {
			out[p] = kept
		}
	}
	return out
}
