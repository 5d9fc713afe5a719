package bench

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rcspp/internal/graph"
	"rcspp/pkg/config"
	"rcspp/pkg/logger"
	"rcspp/pkg/metrics"
)

func sampleGraph() *graph.Graph {
	g := graph.New(6)
	g.AddArc(0, graph.Arc{To: 1, Cost: 2, Resource: 3})
	g.AddArc(0, graph.Arc{To: 2, Cost: 3, Resource: 1})
	g.AddArc(1, graph.Arc{To: 3, Cost: 4, Resource: 2})
	g.AddArc(1, graph.Arc{To: 4, Cost: 1, Resource: 5})
	g.AddArc(2, graph.Arc{To: 3, Cost: 1, Resource: 3})
	g.AddArc(2, graph.Arc{To: 4, Cost: 5, Resource: 2})
	g.AddArc(3, graph.Arc{To: 5, Cost: 3, Resource: 2})
	g.AddArc(4, graph.Arc{To: 5, Cost: 2, Resource: 1})
	return g
}

func testConfig() *config.Config {
	return &config.Config{
		Log: config.LogConfig{Level: "info", Format: "json", Output: "stdout"},
		Solver: config.SolverConfig{
			ExactTimeout:    5 * time.Second,
			LambdaStep:      0.1,
			PenaltyGrowth:   2,
			PenaltyCeiling:  1_000_000,
			LabelCacheSlots: 3,
			RandomSeed:      1,
		},
		Metrics: config.MetricsConfig{Namespace: "rcspp_test", Subsystem: "bench"},
	}
}

func init() {
	logger.Init("error")
}

func freshMetrics(t *testing.T) {
	t.Helper()
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	metrics.Init("rcspp_test", "bench")
}

func TestRun_FeasibleInstancePrintsRatios(t *testing.T) {
	freshMetrics(t)
	cfg := testConfig()
	g := sampleGraph()

	var buf bytes.Buffer
	Run(context.Background(), &buf, cfg, g, 0, 5, 6)

	out := buf.String()
	assert.Contains(t, out, "pulse:")
	assert.Contains(t, out, "multi_objective_scan:")
	assert.Contains(t, out, "disjoint_paths:")
	assert.Contains(t, out, "edge_blocking:")
	assert.Contains(t, out, "edge_penalization:")
	assert.Contains(t, out, "summary:")
}

func TestRun_InfeasibleInstanceSkipsRatios(t *testing.T) {
	freshMetrics(t)
	cfg := testConfig()
	g := sampleGraph()

	var buf bytes.Buffer
	Run(context.Background(), &buf, cfg, g, 0, 5, 0)

	out := buf.String()
	require.Contains(t, out, "pulse:")
	assert.Contains(t, out, "infeasible")
	assert.NotContains(t, out, "ratio:")
}

func TestRun_ExactTimeoutSkipsRatioReport(t *testing.T) {
	freshMetrics(t)
	cfg := testConfig()
	cfg.Solver.ExactTimeout = 1 * time.Nanosecond
	g := sampleGraph()

	var buf bytes.Buffer
	Run(context.Background(), &buf, cfg, g, 0, 5, 6)

	out := buf.String()
	lines := strings.Split(out, "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, out, "timed out")
	assert.NotContains(t, out, "ratio:")
}

func TestPrintOutcome_ZeroExactCostReportsUnavailable(t *testing.T) {
	var buf bytes.Buffer
	zero := int64(0)
	printOutcome(&buf, outcome{name: "edge_blocking", feasible: true, duration: time.Millisecond}, &zero)
	assert.Contains(t, buf.String(), "unavailable")
}
