package algorithms

import "rcspp/internal/graph"

// AttrCost and AttrResource select which arc attribute a bounds computation
// should minimize.
func AttrCost(a graph.Arc) int64     { return a.Cost }
func AttrResource(a graph.Arc) int64 { return a.Resource }

// Bounds implements the LowerBoundOracle: for every vertex v it computes the
// minimum value of attr accumulable along any v->target path, by running
// Dijkstra from target over the reverse graph. Vertices that cannot reach
// target get graph.Infinity.
//
// The result is exact and independent of which other attribute is being
// tracked elsewhere, since attr values are nonnegative. It is used by the
// Pulse solver both as an admissible completion-cost estimate and as an
// admissible completion-resource estimate.
func Bounds(g *graph.Graph, target int, attr func(graph.Arc) int64) []int64 {
	rev := graph.Reversed(g, attr)
	return SingleSourceDistances(rev, target, func(a graph.Arc) int64 { return a.Cost })
}
