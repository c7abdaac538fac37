package mincut

import "github.com/cographtools/cogedit/core"

// klMaxPasses bounds the number of improvement passes; KL converges in a
// handful of passes on the instance sizes this engine targets.
const klMaxPasses = 10

// KernighanLin computes a balanced bisection of low cut weight by the
// classical Kernighan–Lin pair-swap heuristic: starting from a deterministic
// split (sorted vertices alternating between the sides), each pass greedily
// pairs up and tentatively swaps vertices with maximum gain, locking them,
// then commits the best prefix of the swap sequence if it improves the cut.
//
// The sides differ in size by at most one vertex. The input may be
// disconnected; only ErrTooSmall is rejected.
// Complexity: O(V³) per pass, at most klMaxPasses passes.
func KernighanLin(g *core.Graph) (Cut, error) {
	vs := g.Vertices()
	n := len(vs)
	if n < 2 {
		return Cut{}, ErrTooSmall
	}

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

	// side[i] == false places vertex i in S, true in T. Alternating the
	// sorted order gives a deterministic initial bisection.
	side := make([]bool, n)
	for i := range side {
		side[i] = i%2 == 1
	}
	sizeS := (n + 1) / 2

	d := make([]int64, n)
	locked := make([]bool, n)
	type swap struct {
		a, b int
		gain int64
	}

	for pass := 0; pass < klMaxPasses; pass++ {
		// D value: external minus internal connectivity.
		for i := 0; i < n; i++ {
			d[i] = 0
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				if side[i] != side[j] {
					d[i] += w[i][j]
				} else {
					d[i] -= w[i][j]
				}
			}
			locked[i] = false
		}

		steps := sizeS
		if n-sizeS < steps {
			steps = n - sizeS
		}
		swaps := make([]swap, 0, steps)
		for step := 0; step < steps; step++ {
			bestA, bestB := -1, -1
			var bestGain int64
			for a := 0; a < n; a++ {
				if locked[a] || side[a] {
					continue
				}
				for b := 0; b < n; b++ {
					if locked[b] || !side[b] {
						continue
					}
					gain := d[a] + d[b] - 2*w[a][b]
					if bestA == -1 || gain > bestGain {
						bestA, bestB, bestGain = a, b, gain
					}
				}
			}
			if bestA == -1 {
				break
			}
			swaps = append(swaps, swap{a: bestA, b: bestB, gain: bestGain})
			locked[bestA] = true
			locked[bestB] = true
			for u := 0; u < n; u++ {
				if locked[u] {
					continue
				}
				if !side[u] {
					d[u] += 2*w[u][bestA] - 2*w[u][bestB]
				} else {
					d[u] += 2*w[u][bestB] - 2*w[u][bestA]
				}
			}
		}

		// Commit the best prefix of tentative swaps, if any improves.
		var sum, bestSum int64
		bestK := 0
		for k, sw := range swaps {
			sum += sw.gain
			if sum > bestSum {
				bestSum = sum
				bestK = k + 1
			}
		}
		if bestK == 0 {
			break
		}
		for _, sw := range swaps[:bestK] {
			side[sw.a] = true
			side[sw.b] = false
		}
	}

	var cut Cut
	for i, v := range vs {
		if side[i] {
			cut.T = append(cut.T, v)
		} else {
			cut.S = append(cut.S, v)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if side[i] != side[j] {
				cut.Weight += w[i][j]
			}
		}
	}
	return cut, nil
}
