// Package pulse implements the exact branch-and-bound RCSPP solver: a
// depth-first search over simple s-e paths pruned by reverse-graph lower
// bounds and per-vertex label dominance.
package pulse

import (
	"context"
	"math/rand"

	"rcspp/internal/algorithms"
	"rcspp/internal/graph"
)

// Result is a feasible s-e path together with its accumulated cost and
// resource.
type Result struct {
	Path     []int
	Cost     int64
	Resource int64
}

// label is a snapshot of (cost, resource) observed at a vertex during the
// search. Snapshots are stored by value; the search never keeps a pointer
// back into the live recursion state.
type label struct {
	cost, resource int64
}

// DefaultLabelSlots is the canonical three-slot label cache capacity
// described in the design. Once a vertex's cache is full, slot 0 is
// replaced by cheaper arrivals, slot 1 by lower-resource arrivals, and any
// remaining slots by a random sample of the other arrivals.
const DefaultLabelSlots = 3

// Solve runs the Pulse branch-and-bound search for a minimum-cost simple
// path from s to e with total resource at most limit. labelSlots is the
// per-vertex label cache capacity (config.Solver.LabelCacheSlots in the
// driver; DefaultLabelSlots for the canonical three-slot variant). rng
// drives the interior-slot label replacement; pass a seeded *rand.Rand for
// reproducible runs. ctx is checked periodically so a cancelled or
// timed-out context can interrupt a long search.
func Solve(ctx context.Context, g *graph.Graph, s, e int, limit int64, rng *rand.Rand, labelSlots int) (Result, bool) {
	if labelSlots < 1 {
		labelSlots = DefaultLabelSlots
	}
	sv := &searchState{
		g:          g,
		target:     e,
		limit:      limit,
		rng:        rng,
		ctx:        ctx,
		labelSlots: labelSlots,
		labels:     make([][]label, g.N()),
		minCost: algorithms.Bounds(g, e, algorithms.AttrCost),
		minRes:  algorithms.Bounds(g, e, algorithms.AttrResource),
		visited: make([]bool, g.N()),
		primal:  graph.Infinity,
	}

	sv.path = append(sv.path, s)
	sv.visited[s] = true

	if s == e {
		sv.primal = 0
		sv.found = true
		sv.best = Result{Path: []int{s}, Cost: 0, Resource: 0}
	}
	sv.descend(s, 0, 0)

	if !sv.found {
		return Result{}, false
	}
	return sv.best, true
}

type searchState struct {
	g      *graph.Graph
	target int
	limit  int64
	rng    *rand.Rand
	ctx    context.Context

	labelSlots int

	minCost []int64
	minRes  []int64
	labels  [][]label

	path    []int
	visited []bool

	primal int64
	best   Result
	found  bool

	expansions int
}

const ctxCheckInterval = 2048

// descend explores every extension of the current path, which ends at u
// with accumulated (cost, resource). It mutates path/visited in place and
// restores them before returning, per the design's PulseState lifecycle.
func (sv *searchState) descend(u int, cost, resource int64) {
	sv.expansions++
	if sv.expansions%ctxCheckInterval == 0 {
		select {
		case <-sv.ctx.Done():
			return
		default:
		}
	}

	if sv.dominated(u, cost, resource) {
		return
	}
	sv.recordLabel(u, cost, resource)

	if graph.SaturatingAdd(cost, sv.minCost[u]) >= sv.primal {
		return
	}
	if graph.SaturatingAdd(resource, sv.minRes[u]) > sv.limit {
		return
	}

	for _, a := range sv.g.Neighbors(u) {
		if sv.visited[a.To] {
			continue
		}

		nc := graph.SaturatingAdd(cost, a.Cost)
		nr := graph.SaturatingAdd(resource, a.Resource)

		sv.path = append(sv.path, a.To)
		sv.visited[a.To] = true

		if a.To == sv.target {
			if nr <= sv.limit && nc < sv.primal {
				sv.primal = nc
				sv.found = true
				sv.best = Result{
					Path:     append([]int(nil), sv.path...),
					Cost:     nc,
					Resource: nr,
				}
			}
		} else {
			sv.descend(a.To, nc, nr)
		}

		sv.visited[a.To] = false
		sv.path = sv.path[:len(sv.path)-1]
	}
}

// dominated reports whether (cost, resource) at vertex u is dominated by at
// least two of u's previously recorded label slots, or, with a single-slot
// cache, by that one slot. It must run before recordLabel for this arrival,
// since a single slot always trivially dominates its own just-recorded copy.
func (sv *searchState) dominated(u int, cost, resource int64) bool {
	count := 0
	for _, l := range sv.labels[u] {
		if cost >= l.cost && resource >= l.resource {
			count++
		}
	}
	need := 2
	if sv.labelSlots == 1 {
		need = 1
	}
	return count >= need
}

// recordLabel applies the generalized slot-replacement policy. Until u's
// cache is full, each arrival is appended in arrival order. Once it is
// full, slot 0 is replaced by an arrival with strictly lower cost; slot 1
// (when the cache holds at least two slots) by one with strictly lower
// resource; any further slots by a fair-coin sample of the remaining
// arrivals. With a single-slot cache, only the cheapest arrival is kept.
func (sv *searchState) recordLabel(u int, cost, resource int64) {
	slots := sv.labels[u]
	arriving := label{cost: cost, resource: resource}
	capacity := sv.labelSlots

	if len(slots) < capacity {
		sv.labels[u] = append(slots, arriving)
		return
	}

	if arriving.cost < slots[0].cost {
		slots[0] = arriving
		return
	}
	if capacity == 1 {
		return
	}
	if arriving.resource < slots[1].resource {
		slots[1] = arriving
		return
	}
	if capacity == 2 {
		return
	}
	if sv.rng.Intn(2) == 0 {
		idx := 2 + sv.rng.Intn(capacity-2)
		slots[idx] = arriving
	}
}
