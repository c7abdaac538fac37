package gen

import (
	"errors"
	"math/rand"
	"strconv"

	"github.com/cographtools/cogedit/cograph"
	"github.com/cographtools/cogedit/core"
)

// Sentinel errors for the generators.
var (
	// ErrTooFewVertices indicates n is below the constructor's minimum.
	ErrTooFewVertices = errors.New("gen: too few vertices")

	// ErrInvalidProbability indicates an edge probability outside [0.1, 0.9];
	// outside that band G(n,p) is almost surely trivial to edit and useless
	// as a benchmark instance.
	ErrInvalidProbability = errors.New("gen: probability out of range [0.1, 0.9]")

	// ErrBadDisturbance indicates a non-positive disturbance count.
	ErrBadDisturbance = errors.New("gen: disturbance count must be positive")
)

// defaultSeed is the fixed stream used when callers pass a nil RNG.
const defaultSeed int64 = 1

func orDefault(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return rand.New(rand.NewSource(defaultSeed))
	}
	return rng
}

func labels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}

// Path returns the path graph on n vertices labeled start, start+1, ...,
// start+n-1, with an edge between consecutive labels. The canonical minimal
// non-cograph is Path(4, ...): an induced P4 whose editing cost is exactly 1.
func Path(n, start int) (*core.Graph, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	g := core.New()
	_ = g.AddVertex(strconv.Itoa(start))
	for i := start; i < start+n-1; i++ {
		_ = g.AddEdge(strconv.Itoa(i), strconv.Itoa(i+1), 0)
	}
	return g, nil
}

// RandomCotree draws a random cotree over n leaves labeled "0".."n-1".
// The root kind is chosen uniformly; every internal node has at least two
// children and kinds alternate strictly with depth, so the tree is in
// canonical cotree form.
func RandomCotree(n int, rng *rand.Rand) (*cograph.Node, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	rng = orDefault(rng)
	kind := cograph.Union
	if rng.Intn(2) == 1 {
		kind = cograph.Join
	}
	return randomCotree(labels(n), kind, rng), nil
}

// randomCotree splits the leaves into 2+ random contiguous groups after a
// shuffle and recurses with the opposite kind.
func randomCotree(leaves []string, kind cograph.Kind, rng *rand.Rand) *cograph.Node {
	if len(leaves) == 1 {
		return cograph.NewLeaf(leaves[0])
	}
	shuffled := append([]string(nil), leaves...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	// Each interior position is a group boundary with probability 1/2;
	// at least one boundary is forced so the node keeps >= 2 children.
	bounds := []int{0}
	for pos := 1; pos < len(shuffled); pos++ {
		if rng.Intn(2) == 1 {
			bounds = append(bounds, pos)
		}
	}
	if len(bounds) == 1 {
		bounds = append(bounds, 1+rng.Intn(len(shuffled)-1))
	}
	bounds = append(bounds, len(shuffled))

	children := make([]*cograph.Node, 0, len(bounds)-1)
	for i := 0; i+1 < len(bounds); i++ {
		group := shuffled[bounds[i]:bounds[i+1]]
		if len(group) == 1 {
			children = append(children, cograph.NewLeaf(group[0]))
		} else {
			children = append(children, randomCotree(group, kind.Opposite(), rng))
		}
	}
	return cograph.NewInternal(kind, children...)
}

// RandomCograph draws a random cograph on n vertices by expanding a random
// cotree.
func RandomCograph(n int, rng *rand.Rand) (*core.Graph, error) {
	t, err := RandomCotree(n, rng)
	if err != nil {
		return nil, err
	}
	return t.Graph(), nil
}

// DisturbedCograph draws a non-cograph on n vertices whose minimum cograph
// editing cost is at most d: a random cograph has up to d distinct edge
// slots toggled, and the sample is redrawn while it still satisfies the
// recognition oracle. n must be at least 4; smaller graphs cannot leave
// the class, so the rejection loop would never terminate.
func DisturbedCograph(n, d int, rng *rand.Rand) (*core.Graph, error) {
	if n < 4 {
		return nil, ErrTooFewVertices
	}
	if d < 1 {
		return nil, ErrBadDisturbance
	}
	rng = orDefault(rng)
	for {
		g, err := RandomCograph(n, rng)
		if err != nil {
			return nil, err
		}
		slots := append(g.Edges(), g.Complement().Edges()...)
		rng.Shuffle(len(slots), func(i, j int) {
			slots[i], slots[j] = slots[j], slots[i]
		})
		if d < len(slots) {
			slots = slots[:d]
		}
		for _, e := range slots {
			if g.HasEdge(e.U, e.V) {
				_ = g.RemoveEdge(e.U, e.V)
			} else {
				_ = g.AddEdge(e.U, e.V, 0)
			}
		}
		if !cograph.IsCograph(g) {
			return g, nil
		}
	}
}

// RandomNonCograph draws G(n,p) samples until one fails the recognition
// oracle. p is restricted to [0.1, 0.9] and n to at least 4 for the same
// termination reason as DisturbedCograph.
func RandomNonCograph(n int, p float64, rng *rand.Rand) (*core.Graph, error) {
	if n < 4 {
		return nil, ErrTooFewVertices
	}
	if p < 0.1 || p > 0.9 {
		return nil, ErrInvalidProbability
	}
	rng = orDefault(rng)
	for {
		g := gnp(n, p, rng)
		if !cograph.IsCograph(g) {
			return g, nil
		}
	}
}

// gnp draws an Erdős–Rényi graph: every unordered pair is an edge
// independently with probability p.
func gnp(n int, p float64, rng *rand.Rand) *core.Graph {
	vs := labels(n)
	g := core.New()
	for _, v := range vs {
		_ = g.AddVertex(v)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				_ = g.AddEdge(vs[i], vs[j], 0)
			}
		}
	}
	return g
}
