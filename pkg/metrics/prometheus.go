// Package metrics wraps github.com/prometheus/client_golang for the
// BenchmarkDriver. Unlike the teacher's service metrics, this repository
// exposes no network interface, so the registry is populated in-process
// only and is not served over /metrics. The driver's printed summary is
// built from its own per-solver results, not read back from these
// collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is the driver's metric container: one counter for solver calls,
// one for exact-solver timeouts, a duration histogram per solver, and a
// gauge tracking each solver's best-known primal bound.
type Metrics struct {
	SolveCallsTotal    *prometheus.CounterVec
	SolveTimeoutsTotal *prometheus.CounterVec
	SolveDuration      *prometheus.HistogramVec
	BestPrimalBound    *prometheus.GaugeVec
}

var defaultMetrics *Metrics

// Init creates a fresh metric container registered under namespace/subsystem.
func Init(namespace, subsystem string) *Metrics {
	m := &Metrics{
		SolveCallsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "solve_calls_total",
				Help:      "Total number of solver invocations",
			},
			[]string{"algorithm", "outcome"},
		),

		SolveTimeoutsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "solve_timeouts_total",
				Help:      "Total number of solver invocations that hit the wall-clock timeout",
			},
			[]string{"algorithm"},
		),

		SolveDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "solve_duration_seconds",
				Help:      "Duration of solver invocations",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"algorithm"},
		),

		BestPrimalBound: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "best_primal_bound",
				Help:      "Cost of the best feasible path found by the last invocation of each solver",
			},
			[]string{"algorithm"},
		),
	}

	defaultMetrics = m
	return m
}

// Get returns the process-wide metrics, initializing with default names if
// Init was never called.
func Get() *Metrics {
	if defaultMetrics == nil {
		return Init("rcspp", "driver")
	}
	return defaultMetrics
}

// RecordSolve records the outcome and duration of one solver call and, if
// feasible, updates the solver's best-known primal bound.
func (m *Metrics) RecordSolve(algorithm string, feasible bool, duration time.Duration, cost int64) {
	outcome := "infeasible"
	if feasible {
		outcome = "feasible"
		m.BestPrimalBound.WithLabelValues(algorithm).Set(float64(cost))
	}
	m.SolveCallsTotal.WithLabelValues(algorithm, outcome).Inc()
	m.SolveDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
}

// RecordTimeout records that a solver invocation was abandoned after
// exceeding its wall-clock budget.
func (m *Metrics) RecordTimeout(algorithm string) {
	m.SolveTimeoutsTotal.WithLabelValues(algorithm).Inc()
}
