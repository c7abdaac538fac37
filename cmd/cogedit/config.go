package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/cographtools/cogedit/editing"
)

// benchConfig holds the benchmark parameters, loadable from a TOML file and
// overridable by flags.
type benchConfig struct {
	// Vertices is the instance size n.
	Vertices int `toml:"vertices"`

	// Disturbances lists the edge-toggle counts to sweep over; every value
	// yields one batch of instances.
	Disturbances []int `toml:"disturbances"`

	// Times is the number of instances sampled per disturbance level.
	Times int `toml:"times"`

	// Iterations is the local-search trial count handed to each method.
	Iterations int `toml:"iterations"`

	// Seed seeds instance generation and local search; 0 keeps the fixed
	// default stream.
	Seed int64 `toml:"seed"`

	// Methods names the strategies to compare; empty means all of them.
	Methods []string `toml:"methods"`

	// Verbose enables debug logging.
	Verbose bool `toml:"verbose"`
}

func defaultBenchConfig() benchConfig {
	return benchConfig{
		Vertices:     10,
		Disturbances: []int{1, 2, 3, 4, 5},
		Times:        5,
		Iterations:   editing.DefaultOptions().Iterations,
	}
}

func loadBenchConfig(path string) (benchConfig, error) {
	cfg := defaultBenchConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// methods resolves the configured method names, defaulting to all.
func (c benchConfig) methods() ([]editing.Method, error) {
	if len(c.Methods) == 0 {
		return editing.Methods(), nil
	}
	out := make([]editing.Method, 0, len(c.Methods))
	for _, name := range c.Methods {
		m, err := editing.ParseMethod(name)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (c benchConfig) validate() error {
	if c.Vertices < 4 {
		return fmt.Errorf("vertices must be at least 4, got %d", c.Vertices)
	}
	if c.Times < 1 {
		return fmt.Errorf("times must be positive, got %d", c.Times)
	}
	if len(c.Disturbances) == 0 {
		return fmt.Errorf("at least one disturbance level is required")
	}
	for _, d := range c.Disturbances {
		if d < 1 {
			return fmt.Errorf("disturbance levels must be positive, got %d", d)
		}
	}
	if c.Iterations < 0 {
		return fmt.Errorf("iterations must be non-negative, got %d", c.Iterations)
	}
	return nil
}
