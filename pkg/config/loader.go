package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "RCSPP_"

// Loader builds a Config from compiled-in defaults overridden by
// RCSPP_-prefixed environment variables. There is deliberately no file
// provider: the driver's tuning surface is small enough that defaults plus
// environment overrides cover it without a configuration file on disk.
type Loader struct {
	k         *koanf.Koanf
	envPrefix string
}

// NewLoader creates a new configuration loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: envPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithEnvPrefix overrides the environment variable prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// Load loads defaults, then environment overrides, then validates.
func (l *Loader) Load() (*Config, error) {
	if err := l.loadDefaults(); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (l *Loader) loadDefaults() error {
	defaults := map[string]any{
		"log.level":  "info",
		"log.format": "json",
		"log.output": "stdout",

		"solver.exact_timeout":     60 * time.Second,
		"solver.lambda_step":       0.1,
		"solver.penalty_growth":    int64(2),
		"solver.penalty_ceiling":   int64(1_000_000),
		"solver.label_cache_slots": 3,
		"solver.random_seed":       int64(1),

		"metrics.namespace": "rcspp",
		"metrics.subsystem": "driver",
	}
	return l.k.Load(confmap.Provider(defaults, "."), nil)
}

func (l *Loader) loadEnv() error {
	return l.k.Load(env.Provider(l.envPrefix, ".", func(s string) string {
		// Only the first underscore separates the section from the key, so
		// RCSPP_SOLVER_EXACT_TIMEOUT maps to solver.exact_timeout.
		return strings.Replace(
			strings.ToLower(strings.TrimPrefix(s, l.envPrefix)),
			"_", ".", 1,
		)
	}), nil)
}

// MustLoad loads the configuration or panics.
func MustLoad(opts ...LoaderOption) *Config {
	cfg, err := NewLoader(opts...).Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// Load loads the configuration with default options.
func Load() (*Config, error) {
	return NewLoader().Load()
}
