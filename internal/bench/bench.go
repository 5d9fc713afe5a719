// Package bench implements the BenchmarkDriver: it runs the exact solver
// and the four heuristics against one RCSPP instance, times each, applies a
// wall-clock timeout to the exact solver, and reports approximation ratios.
package bench

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"rcspp/internal/graph"
	"rcspp/internal/heuristics"
	"rcspp/internal/pulse"
	"rcspp/pkg/config"
	"rcspp/pkg/logger"
	"rcspp/pkg/metrics"
)

// Solver names, listed in the driver's fixed invocation order.
const (
	namePulse          = "pulse"
	nameMultiObjective = "multi_objective_scan"
	nameDisjointPaths  = "disjoint_paths"
	nameEdgeBlocking   = "edge_blocking"
	nameEdgePenalize   = "edge_penalization"
)

// outcome is one solver's reported result: either a feasible path and its
// duration, or an infeasibility/timeout notice.
type outcome struct {
	name     string
	result   pulse.Result
	feasible bool
	timedOut bool
	duration time.Duration
}

// Run executes the fixed driver sequence (Pulse, MultiObjectiveScan,
// DisjointPaths, EdgeBlocking, EdgePenalization) against g for the (s, e, R)
// instance, printing one block per solver to w. The exact solver is bounded
// by cfg.Solver.ExactTimeout; on timeout the driver notes it and skips the
// ratio report for every heuristic that follows.
func Run(ctx context.Context, w io.Writer, cfg *config.Config, g *graph.Graph, s, e int, limit int64) {
	runID := uuid.NewString()
	log := logger.WithRequestID(runID)
	m := metrics.Get()

	exact := runExact(ctx, cfg, g, s, e, limit, log, m)
	printOutcome(w, exact, nil)

	var exactCost *int64
	if exact.feasible {
		c := exact.result.Cost
		exactCost = &c
	}

	heuristicRuns := []outcome{
		runTimed(nameMultiObjective, log, m, func() (pulse.Result, bool) {
			return heuristics.MultiObjectiveScan(g, s, e, limit, cfg.Solver.LambdaStep)
		}),
		runTimed(nameDisjointPaths, log, m, func() (pulse.Result, bool) {
			return heuristics.DisjointPaths(ctx, g, s, e, limit)
		}),
		runTimed(nameEdgeBlocking, log, m, func() (pulse.Result, bool) {
			return heuristics.EdgeBlocking(ctx, g, s, e, limit)
		}),
		runTimed(nameEdgePenalize, log, m, func() (pulse.Result, bool) {
			return heuristics.EdgePenalization(ctx, g, s, e, limit, cfg.Solver.PenaltyGrowth, cfg.Solver.PenaltyCeiling)
		}),
	}

	for _, h := range heuristicRuns {
		printOutcome(w, h, exactCost)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "summary:")
	if exact.timedOut {
		fmt.Fprintln(w, "  exact solver: timed out, ratios unavailable")
	} else if exact.feasible {
		fmt.Fprintf(w, "  exact solver: cost=%d resource=%d duration=%v\n", exact.result.Cost, exact.result.Resource, exact.duration)
	} else {
		fmt.Fprintln(w, "  exact solver: infeasible")
	}
	for _, h := range heuristicRuns {
		fmt.Fprintf(w, "  %s: feasible=%v duration=%v\n", h.name, h.feasible, h.duration)
	}
}

// runExact runs the Pulse solver on a worker goroutine under cfg's
// wall-clock timeout, per the driver's concurrency model: a single-shot
// buffered channel and a select over the channel and time.After.
func runExact(ctx context.Context, cfg *config.Config, g *graph.Graph, s, e int, limit int64, log interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}, m *metrics.Metrics) outcome {
	type solved struct {
		res pulse.Result
		ok  bool
	}
	resultCh := make(chan solved, 1)

	solveCtx, cancel := context.WithTimeout(ctx, cfg.Solver.ExactTimeout)
	defer cancel()

	rng := rand.New(rand.NewSource(cfg.Solver.RandomSeed))
	start := time.Now()
	go func() {
		res, ok := pulse.Solve(solveCtx, g, s, e, limit, rng, cfg.Solver.LabelCacheSlots)
		resultCh <- solved{res: res, ok: ok}
	}()

	select {
	case got := <-resultCh:
		duration := time.Since(start)
		m.RecordSolve(namePulse, got.ok, duration, got.res.Cost)
		log.Info("solver finished", "algorithm", namePulse, "feasible", got.ok, "duration", duration)
		return outcome{name: namePulse, result: got.res, feasible: got.ok, duration: duration}
	case <-time.After(cfg.Solver.ExactTimeout):
		m.RecordTimeout(namePulse)
		log.Warn("solver timed out", "algorithm", namePulse, "timeout", cfg.Solver.ExactTimeout)
		return outcome{name: namePulse, timedOut: true, duration: cfg.Solver.ExactTimeout}
	}
}

// runTimed runs a heuristic inline (heuristics never need the timeout
// wrapper since each is already polynomial-time) and records its metrics.
func runTimed(name string, log interface {
	Info(msg string, args ...any)
}, m *metrics.Metrics, solve func() (pulse.Result, bool)) outcome {
	start := time.Now()
	res, ok := solve()
	duration := time.Since(start)

	m.RecordSolve(name, ok, duration, res.Cost)
	log.Info("solver finished", "algorithm", name, "feasible", ok, "duration", duration)

	return outcome{name: name, result: res, feasible: ok, duration: duration}
}

func printOutcome(w io.Writer, o outcome, exactCost *int64) {
	fmt.Fprintf(w, "%s:\n", o.name)
	switch {
	case o.timedOut:
		fmt.Fprintf(w, "  timed out after %v; ratio unavailable\n", o.duration)
		return
	case !o.feasible:
		fmt.Fprintf(w, "  infeasible (duration %v)\n", o.duration)
		return
	}

	fmt.Fprintf(w, "  path=%v cost=%d resource=%d duration=%v\n", o.result.Path, o.result.Cost, o.result.Resource, o.duration)
	if exactCost == nil || o.name == namePulse {
		return
	}
	if *exactCost == 0 {
		fmt.Fprintf(w, "  ratio: unavailable (exact cost is zero)\n")
		return
	}
	ratio := float64(o.result.Cost) / float64(*exactCost)
	fmt.Fprintf(w, "  ratio: %.4f\n", ratio)
}
