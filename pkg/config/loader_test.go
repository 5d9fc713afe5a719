package config

import (
	"os"
	"testing"
	"time"
)

func TestLoader_LoadDefaults(t *testing.T) {
	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Log.Level)
	}
	if cfg.Solver.ExactTimeout != 60*time.Second {
		t.Errorf("expected exact timeout 60s, got %v", cfg.Solver.ExactTimeout)
	}
	if cfg.Solver.LambdaStep != 0.1 {
		t.Errorf("expected lambda step 0.1, got %v", cfg.Solver.LambdaStep)
	}
	if cfg.Solver.PenaltyGrowth != 2 {
		t.Errorf("expected penalty growth 2, got %d", cfg.Solver.PenaltyGrowth)
	}
	if cfg.Solver.PenaltyCeiling != 1_000_000 {
		t.Errorf("expected penalty ceiling 1000000, got %d", cfg.Solver.PenaltyCeiling)
	}
}

func TestLoader_LoadFromEnv(t *testing.T) {
	os.Setenv("RCSPP_LOG.LEVEL", "debug")
	defer os.Unsetenv("RCSPP_LOG.LEVEL")

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Log.Level)
	}
}

func TestLoader_WithEnvPrefix(t *testing.T) {
	os.Setenv("CUSTOM_LOG.LEVEL", "warn")
	defer os.Unsetenv("CUSTOM_LOG.LEVEL")

	cfg, err := NewLoader(WithEnvPrefix("CUSTOM_")).Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected 'warn', got %s", cfg.Log.Level)
	}
}

func TestMustLoad_Success(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("MustLoad should not panic with valid config")
		}
	}()

	cfg := MustLoad()
	if cfg == nil {
		t.Error("expected non-nil config")
	}
}

func TestLoad_Simple(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg == nil {
		t.Error("expected non-nil config")
	}
}
