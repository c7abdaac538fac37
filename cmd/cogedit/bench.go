package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cographtools/cogedit/editing"
	"github.com/cographtools/cogedit/gen"
)

func benchCommand() *cobra.Command {
	var (
		configPath string
		flagCfg    = defaultBenchConfig()
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "compare editing strategies on disturbed random cographs",
		Long: `Bench samples random cographs, toggles a bounded number of edge slots so
the true editing cost is known to be at most the disturbance count, runs
every selected strategy on each instance and reports per-method mean, min
and max edit counts for every disturbance level.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := flagCfg
			if configPath != "" {
				loaded, err := loadBenchConfig(configPath)
				if err != nil {
					return err
				}
				// Flags set explicitly win over the config file.
				cfg = loaded
				overrideFromFlags(cmd, &cfg, flagCfg)
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			return runBench(cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().IntVarP(&flagCfg.Vertices, "vertices", "n", flagCfg.Vertices, "instance size")
	cmd.Flags().IntVarP(&flagCfg.Times, "times", "t", flagCfg.Times, "instances per disturbance level")
	cmd.Flags().IntSliceVarP(&flagCfg.Disturbances, "disturbances", "d", flagCfg.Disturbances, "disturbance levels to sweep")
	cmd.Flags().StringSliceVarP(&flagCfg.Methods, "methods", "m", nil, "methods to run (default: all)")
	cmd.Flags().IntVarP(&flagCfg.Iterations, "iterations", "i", flagCfg.Iterations, "local-search trials per method")
	cmd.Flags().Int64VarP(&flagCfg.Seed, "seed", "s", 0, "RNG seed (0 = fixed default)")
	cmd.Flags().BoolVarP(&flagCfg.Verbose, "verbose", "v", false, "debug logging")
	return cmd
}

// overrideFromFlags re-applies every flag the user set explicitly on top of
// a file-loaded config.
func overrideFromFlags(cmd *cobra.Command, cfg *benchConfig, flagCfg benchConfig) {
	if cmd.Flags().Changed("vertices") {
		cfg.Vertices = flagCfg.Vertices
	}
	if cmd.Flags().Changed("times") {
		cfg.Times = flagCfg.Times
	}
	if cmd.Flags().Changed("disturbances") {
		cfg.Disturbances = flagCfg.Disturbances
	}
	if cmd.Flags().Changed("methods") {
		cfg.Methods = flagCfg.Methods
	}
	if cmd.Flags().Changed("iterations") {
		cfg.Iterations = flagCfg.Iterations
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagCfg.Seed
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = flagCfg.Verbose
	}
}

func newLogger(verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func runBench(cfg benchConfig) error {
	logger := newLogger(cfg.Verbose)

	methods, err := cfg.methods()
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))

	opts := editing.DefaultOptions()
	opts.Iterations = cfg.Iterations
	opts.Seed = cfg.Seed

	logger.Info("benchmark start",
		"vertices", cfg.Vertices,
		"times", cfg.Times,
		"disturbances", cfg.Disturbances,
		"methods", len(methods),
		"iterations", cfg.Iterations,
		"seed", seed)

	for _, d := range cfg.Disturbances {
		scores := make(map[editing.Method][]float64, len(methods))

		for i := 0; i < cfg.Times; i++ {
			g, err := gen.DisturbedCograph(cfg.Vertices, d, rng)
			if err != nil {
				return err
			}
			logger.Debug("instance",
				"disturbance", d,
				"index", i,
				"edges", g.EdgeCount())

			for _, m := range methods {
				start := time.Now()
				score, err := m.Score(g, opts)
				if err != nil {
					logger.Error("method failed",
						"method", m.String(),
						"disturbance", d,
						"index", i,
						"err", err)
					continue
				}
				logger.Debug("scored",
					"method", m.String(),
					"edits", score,
					"took", time.Since(start))
				scores[m] = append(scores[m], float64(score))
			}
		}

		for _, m := range methods {
			xs := scores[m]
			if len(xs) == 0 {
				logger.Warn("no results", "method", m.String(), "disturbance", d)
				continue
			}
			logger.Info("result",
				"disturbance", d,
				"method", m.String(),
				"mean", stat.Mean(xs, nil),
				"min", floats.Min(xs),
				"max", floats.Max(xs),
				"runs", len(xs))
		}
	}
	return nil
}
