package editing

import (
	"fmt"

	"github.com/cographtools/cogedit/core"
)

// Method is the closed enumeration of editing strategies the experiment
// harness compares. Each value binds a pipeline (direct cut, min-cut-split
// or the random baseline) to a fixed rule/cut configuration; the caller's
// Options only contribute Iterations and Seed.
type Method uint8

const (
	// MethodDirectCut: MinimalGraphCut, both rules, global minimum cut.
	MethodDirectCut Method = iota

	// MethodDirectCutR1: MinimalGraphCut with R2 disabled.
	MethodDirectCutR1

	// MethodDirectHalfCut: MinimalGraphCut with balanced bisection.
	MethodDirectHalfCut

	// MethodDirectHalfCutR1: balanced bisection, R2 disabled.
	MethodDirectHalfCutR1

	// MethodMinCutSplit: MinimalMinCutEdit, both rules, global minimum cut.
	MethodMinCutSplit

	// MethodMinCutSplitR1: MinimalMinCutEdit with R2 disabled.
	MethodMinCutSplitR1

	// MethodHalfCutSplit: MinimalMinCutEdit with balanced bisection.
	MethodHalfCutSplit

	// MethodHalfCutSplitR1: balanced bisection, R2 disabled.
	MethodHalfCutSplitR1

	// MethodRandom: the RandomEditing baseline.
	MethodRandom

	numMethods // sentinel; keep last
)

// methodSpec binds a Method to its name, configuration overrides and runner.
type methodSpec struct {
	name          string
	halfCut       bool
	noR2          bool
	deletionsOnly bool // baseline scores deletions, not total edits
	run           func(g *core.Graph, opts Options) (*core.Graph, error)
}

func runDirect(g *core.Graph, opts Options) (*core.Graph, error) {
	return MinimalGraphCut(g, opts)
}

func runSplit(g *core.Graph, opts Options) (*core.Graph, error) {
	return MinimalMinCutEdit(g, opts)
}

func runRandom(g *core.Graph, opts Options) (*core.Graph, error) {
	return RandomEditing(g, opts.Seed), nil
}

var methodTable = [numMethods]methodSpec{
	MethodDirectCut:       {name: "direct-cut", run: runDirect},
	MethodDirectCutR1:     {name: "direct-cut-r1", noR2: true, run: runDirect},
	MethodDirectHalfCut:   {name: "direct-half-cut", halfCut: true, run: runDirect},
	MethodDirectHalfCutR1: {name: "direct-half-cut-r1", halfCut: true, noR2: true, run: runDirect},
	MethodMinCutSplit:     {name: "min-cut-split", run: runSplit},
	MethodMinCutSplitR1:   {name: "min-cut-split-r1", noR2: true, run: runSplit},
	MethodHalfCutSplit:    {name: "half-cut-split", halfCut: true, run: runSplit},
	MethodHalfCutSplitR1:  {name: "half-cut-split-r1", halfCut: true, noR2: true, run: runSplit},
	MethodRandom:          {name: "random", deletionsOnly: true, run: runRandom},
}

// Methods returns every strategy in declaration order.
func Methods() []Method {
	out := make([]Method, 0, int(numMethods))
	for m := Method(0); m < numMethods; m++ {
		out = append(out, m)
	}
	return out
}

// String returns the canonical method name.
func (m Method) String() string {
	if m >= numMethods {
		return fmt.Sprintf("method(%d)", uint8(m))
	}
	return methodTable[m].name
}

// ParseMethod resolves a canonical name back to its Method.
// Returns ErrUnknownMethod for anything else.
func ParseMethod(name string) (Method, error) {
	for m := Method(0); m < numMethods; m++ {
		if methodTable[m].name == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Edit runs the strategy on g. The method fixes UseR1/UseR2/HalfCut itself;
// Iterations and Seed are taken from opts.
func (m Method) Edit(g *core.Graph, opts Options) (*core.Graph, error) {
	if m >= numMethods {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, uint8(m))
	}
	spec := methodTable[m]
	opts.UseR1 = true
	opts.UseR2 = !spec.noR2
	opts.HalfCut = spec.halfCut
	return spec.run(g, opts)
}

// Score runs the strategy and reports its cost against g: deletions only
// for the random baseline (it never adds in the sparse regime the harness
// exercises), total edit distance for everything else.
func (m Method) Score(g *core.Graph, opts Options) (int, error) {
	h, err := m.Edit(g, opts)
	if err != nil {
		return 0, err
	}
	if methodTable[m].deletionsOnly {
		return Deletions(g, h), nil
	}
	return Edits(g, h), nil
}
