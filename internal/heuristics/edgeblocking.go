package heuristics

import (
	"context"

	"rcspp/internal/graph"
	"rcspp/internal/pulse"
)

// EdgeBlocking repeatedly finds the cheapest s-e path, hard-blocks its
// heaviest arc, and tries again, keeping the best resource-feasible path
// seen, until no s-e path remains.
func EdgeBlocking(ctx context.Context, g *graph.Graph, s, e int, limit int64) (pulse.Result, bool) {
	m := graph.FromGraph(g)

	var best pulse.Result
	found := false

	for {
		select {
		case <-ctx.Done():
			return best, found
		default:
		}

		path, cost, resource, ok := dijkstraMutable(m, s, e, metricCost)
		if !ok {
			break
		}
		if resource <= limit && (!found || cost < best.Cost) {
			best = pulse.Result{Path: path, Cost: cost, Resource: resource}
			found = true
		}

		u, idx, ok := m.HeaviestOnPath(path)
		if !ok {
			break
		}
		m.BlockArc(u, idx)
	}

	return best, found
}
