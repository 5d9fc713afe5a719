// Package config holds the BenchmarkDriver's tuning knobs: settings that
// are orthogonal to a single solve request (edge file, s, e, R) and instead
// govern how the driver runs the solvers against it.
package config

import (
	"fmt"
	"time"
)

// Config is the driver's tuning surface. It never configures the
// <binary> <edge_file> <s> <e> <R> command-line contract itself.
type Config struct {
	Log     LogConfig     `koanf:"log"`
	Solver  SolverConfig  `koanf:"solver"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level    string `koanf:"level"`     // debug, info, warn, error
	Format   string `koanf:"format"`    // json, text
	Output   string `koanf:"output"`    // stdout, stderr, file
	FilePath string `koanf:"file_path"` // used when Output == "file"
}

// SolverConfig parameterizes the exact solver and the four heuristics.
type SolverConfig struct {
	// ExactTimeout bounds how long the driver waits for the Pulse solver
	// before abandoning it and skipping the ratio report.
	ExactTimeout time.Duration `koanf:"exact_timeout"`
	// LambdaStep is MultiObjectiveScan's sweep increment over [0, 1].
	LambdaStep float64 `koanf:"lambda_step"`
	// PenaltyGrowth is EdgePenalization's kappa multiplier.
	PenaltyGrowth int64 `koanf:"penalty_growth"`
	// PenaltyCeiling is EdgePenalization's P_MAX.
	PenaltyCeiling int64 `koanf:"penalty_ceiling"`
	// LabelCacheSlots is the Pulse solver's per-vertex label cache capacity.
	LabelCacheSlots int `koanf:"label_cache_slots"`
	// RandomSeed seeds the Pulse solver's slot-2 label replacement RNG.
	RandomSeed int64 `koanf:"random_seed"`
}

// MetricsConfig controls the in-process Prometheus registry.
type MetricsConfig struct {
	Namespace string `koanf:"namespace"`
	Subsystem string `koanf:"subsystem"`
}

// Validate checks the loaded configuration for values the solvers cannot
// tolerate.
func (c *Config) Validate() error {
	var errs []string

	if c.Solver.ExactTimeout <= 0 {
		errs = append(errs, "solver.exact_timeout must be positive")
	}
	if c.Solver.LambdaStep <= 0 || c.Solver.LambdaStep > 1 {
		errs = append(errs, fmt.Sprintf("solver.lambda_step must be in (0, 1], got %v", c.Solver.LambdaStep))
	}
	if c.Solver.PenaltyGrowth <= 1 {
		errs = append(errs, "solver.penalty_growth must be greater than 1")
	}
	if c.Solver.PenaltyCeiling <= 0 {
		errs = append(errs, "solver.penalty_ceiling must be positive")
	}
	if c.Solver.LabelCacheSlots <= 0 {
		errs = append(errs, "solver.label_cache_slots must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if !validLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level must be one of: debug, info, warn, error, got %s", c.Log.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", joinErrs(errs))
	}
	return nil
}

func joinErrs(errs []string) string {
	out := errs[0]
	for _, e := range errs[1:] {
		out += "; " + e
	}
	return out
}
