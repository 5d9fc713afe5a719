// Package graph provides the adjacency-list data structures shared by the
// RCSPP solvers: an immutable Graph for the exact solver and the
// LowerBoundOracle, and a MutableGraph carrying per-arc block/penalty state
// for the iterated-Dijkstra heuristics.
package graph

import "math"

// Infinity is the sentinel distance for vertices that cannot reach a target.
const Infinity int64 = math.MaxInt64

// Arc is a directed, weighted edge: (destination, cost, resource).
// Both cost and resource are nonnegative.
type Arc struct {
	To       int
	Cost     int64
	Resource int64
}

// Graph is an immutable adjacency-list graph over vertices [0, N).
// Arcs for a given vertex are kept in insertion order; parallel arcs are
// allowed and "the arc u->v" always means the first match in that order.
type Graph struct {
	adj [][]Arc
}

// New returns an empty graph over n vertices.
func New(n int) *Graph {
	return &Graph{adj: make([][]Arc, n)}
}

// N returns the number of vertices.
func (g *Graph) N() int {
	return len(g.adj)
}

// AddArc appends an outgoing arc from u.
func (g *Graph) AddArc(u int, a Arc) {
	g.adj[u] = append(g.adj[u], a)
}

// Neighbors returns u's outgoing arcs in insertion order. The caller must
// not mutate the returned slice.
func (g *Graph) Neighbors(u int) []Arc {
	return g.adj[u]
}

// Arc returns the first arc u->v encountered in adjacency order, if any.
func (g *Graph) Arc(u, v int) (Arc, bool) {
	for _, a := range g.adj[u] {
		if a.To == v {
			return a, true
		}
	}
	return Arc{}, false
}

// Reversed builds a new graph with every arc u->v (weight = attr(arc))
// replaced by v->u of the same weight, stored in the Cost field. It is used
// by the LowerBoundOracle to run a single-source Dijkstra from the target
// vertex over the reverse graph.
func Reversed(g *Graph, attr func(Arc) int64) *Graph {
	rev := New(g.N())
	for u, arcs := range g.adj {
		for _, a := range arcs {
			rev.AddArc(a.To, Arc{To: u, Cost: attr(a)})
		}
	}
	return rev
}

// SaturatingAdd adds two nonnegative int64 values, clamping at Infinity
// instead of wrapping. Both a and b are assumed nonnegative.
func SaturatingAdd(a, b int64) int64 {
	if a >= Infinity || b >= Infinity || a > Infinity-b {
		return Infinity
	}
	return a + b
}

// SaturatingMul multiplies two nonnegative int64 values, clamping at
// Infinity instead of wrapping.
func SaturatingMul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a >= Infinity || b >= Infinity || a > Infinity/b {
		return Infinity
	}
	return a * b
}
