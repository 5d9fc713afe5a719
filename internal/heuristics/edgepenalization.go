package heuristics

import (
	"container/heap"
	"context"

	"rcspp/internal/graph"
	"rcspp/internal/pulse"
)

// DefaultKappa and DefaultPenaltyCeiling are EdgePenalization's penalty
// growth factor and ceiling, overridable via driver configuration.
const (
	DefaultKappa          int64 = 2
	DefaultPenaltyCeiling int64 = 1_000_000
)

// penalizedItem is a priority-queue entry for the penalized Dijkstra
// variant. priority is resource-accumulated-so-far times the relaxed arc's
// penalty (the ordering key); resource is the true, unpenalized accumulated
// resource (the settlement label). The two are deliberately different
// metrics: this mirrors the effective-priority design carried over from the
// original heuristic and is not a standard Dijkstra.
type penalizedItem struct {
	node           int
	priority       int64
	cost, resource int64
	index          int
}

type penalizedQueue []*penalizedItem

func (q penalizedQueue) Len() int { return len(q) }
func (q penalizedQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].node < q[j].node
}
func (q penalizedQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index, q[j].index = i, j
}
func (q *penalizedQueue) Push(x any) {
	item := x.(*penalizedItem)
	item.index = len(*q)
	*q = append(*q, item)
}
func (q *penalizedQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// dijkstraPenalized runs the penalized Dijkstra variant from s to e over m,
// skipping blocked arcs and arcs whose penalty has reached pMax (an arc
// penalized up to the ceiling is unusable, per spec). The settlement label
// per vertex is the true accumulated resource; the heap order is the
// resource-times-penalty priority.
func dijkstraPenalized(m *graph.MutableGraph, s, e int, pMax int64) (path []int, cost, resource int64, ok bool) {
	n := m.N()
	rawResource := make([]int64, n)
	for i := range rawResource {
		rawResource[i] = graph.Infinity
	}
	rawResource[s] = 0
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	pq := make(penalizedQueue, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &penalizedItem{node: s, priority: 0})

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*penalizedItem)
		u := cur.node
		if cur.resource > rawResource[u] {
			continue
		}
		if u == e {
			return reconstructPath(parent, s, e), cur.cost, cur.resource, true
		}
		for _, a := range m.Neighbors(u) {
			if a.Blocked || a.Penalty >= pMax {
				continue
			}
			nr := graph.SaturatingAdd(rawResource[u], a.Resource)
			if nr < rawResource[a.To] {
				rawResource[a.To] = nr
				parent[a.To] = u
				heap.Push(&pq, &penalizedItem{
					node:     a.To,
					priority: graph.SaturatingMul(nr, a.Penalty),
					cost:     graph.SaturatingAdd(cur.cost, a.Cost),
					resource: nr,
				})
			}
		}
	}
	return nil, 0, 0, false
}

// EdgePenalization repeatedly runs the penalized Dijkstra, updates the
// incumbent on a resource-feasible cost improvement, and softly penalizes
// the heaviest arc of each returned path by a factor of kappa (capped at
// pMax) instead of hard-blocking it. It stops as soon as a returned path
// exceeds the resource limit, on the assumption that penalization only
// drives resource upward from there, or when Dijkstra finds no path at all.
func EdgePenalization(ctx context.Context, g *graph.Graph, s, e int, limit, kappa, pMax int64) (pulse.Result, bool) {
	m := graph.FromGraph(g)

	var best pulse.Result
	found := false

	for {
		select {
		case <-ctx.Done():
			return best, found
		default:
		}

		path, cost, resource, ok := dijkstraPenalized(m, s, e, pMax)
		if !ok {
			break
		}
		if resource > limit {
			break
		}
		if !found || cost < best.Cost {
			best = pulse.Result{Path: path, Cost: cost, Resource: resource}
			found = true
		}

		u, idx, ok := m.HeaviestOnPath(path)
		if !ok {
			break
		}
		m.PenalizeArc(u, idx, kappa, pMax)
	}

	return best, found
}
