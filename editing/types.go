package editing

import (
	"errors"

	"github.com/cographtools/cogedit/core"
	"github.com/cographtools/cogedit/mincut"
	"github.com/cographtools/cogedit/triples"
)

// Sentinel errors for the editing drivers.
var (
	// ErrBadIterations indicates a negative local-search trial count.
	ErrBadIterations = errors.New("editing: iterations must be non-negative")

	// ErrUnknownMethod indicates a method name that ParseMethod does not know.
	ErrUnknownMethod = errors.New("editing: unknown method")
)

// Options configures the editing pipelines.
//
//   - UseR1, UseR2: triple derivation rules; at least one must be enabled
//     or extraction fails with triples.ErrNoRules.
//   - HalfCut: select the balanced Kernighan–Lin bisection instead of the
//     Stoer–Wagner global minimum cut.
//   - Iterations: local-search trial count (>= 0). Zero trials return the
//     initial pipeline candidate unchanged.
//   - Seed: seeds the local-search edge shuffles; 0 selects a fixed default
//     stream so results are reproducible by default.
type Options struct {
	UseR1      bool
	UseR2      bool
	HalfCut    bool
	Iterations int
	Seed       int64
}

// DefaultOptions returns the standard configuration: both rules enabled,
// global minimum cut, five local-search trials, default seed.
func DefaultOptions() Options {
	return Options{UseR1: true, UseR2: true, Iterations: 5}
}

func (o Options) validate() error {
	if !o.UseR1 && !o.UseR2 {
		return triples.ErrNoRules
	}
	if o.Iterations < 0 {
		return ErrBadIterations
	}
	return nil
}

// bipartition cuts a connected weighted graph in two, by global minimum cut
// or balanced bisection depending on halfCut.
func bipartition(g *core.Graph, halfCut bool) ([]string, []string, error) {
	var (
		cut mincut.Cut
		err error
	)
	if halfCut {
		cut, err = mincut.KernighanLin(g)
	} else {
		cut, err = mincut.StoerWagner(g)
	}
	if err != nil {
		return nil, nil, err
	}
	return cut.S, cut.T, nil
}
