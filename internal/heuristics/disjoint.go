package heuristics

import (
	"context"

	"rcspp/internal/graph"
	"rcspp/internal/pulse"
)

// DisjointPaths runs two passes of blocking Dijkstra, one optimizing cost and
// one optimizing resource, alternating objectives to cover both cost-biased
// and resource-biased candidate routes. Each pass blocks the arcs of every
// path it discovers before trying again, so successive paths within a pass
// are arc-disjoint; block flags are reset between passes.
func DisjointPaths(ctx context.Context, g *graph.Graph, s, e int, limit int64) (pulse.Result, bool) {
	m := graph.FromGraph(g)

	var best pulse.Result
	found := false

	consider := func(path []int, cost, resource int64) {
		if resource > limit {
			return
		}
		if !found || cost < best.Cost {
			best = pulse.Result{Path: path, Cost: cost, Resource: resource}
			found = true
		}
	}

	for _, metric := range []func(graph.MutableArc) int64{metricCost, metricResource} {
		for {
			select {
			case <-ctx.Done():
				return best, found
			default:
			}
			path, cost, resource, ok := dijkstraMutable(m, s, e, metric)
			if !ok {
				break
			}
			m.BlockPath(path)
			consider(path, cost, resource)
		}
		m.ResetBlocks()
	}

	return best, found
}
