package heuristics

import (
	"container/heap"

	"rcspp/internal/graph"
)

// mutableItem is a priority-queue entry for a Dijkstra pass over a
// MutableGraph: dist is the metric being minimized, with cost/resource
// tracked alongside as the true totals regardless of which metric drives
// ordering.
type mutableItem struct {
	node           int
	dist           int64
	cost, resource int64
	index          int
}

type mutableQueue []*mutableItem

func (q mutableQueue) Len() int { return len(q) }
func (q mutableQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].node < q[j].node
}
func (q mutableQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index, q[j].index = i, j
}
func (q *mutableQueue) Push(x any) {
	item := x.(*mutableItem)
	item.index = len(*q)
	*q = append(*q, item)
}
func (q *mutableQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// dijkstraMutable runs Dijkstra from s to e over m, skipping blocked arcs
// and minimizing metric(arc). It returns the discovered path along with its
// true cost and resource, independent of which one metric selects.
func dijkstraMutable(m *graph.MutableGraph, s, e int, metric func(graph.MutableArc) int64) (path []int, cost, resource int64, ok bool) {
	n := m.N()
	dist := make([]int64, n)
	for i := range dist {
		dist[i] = graph.Infinity
	}
	dist[s] = 0
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	pq := make(mutableQueue, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &mutableItem{node: s, dist: 0})

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*mutableItem)
		u := cur.node
		if cur.dist > dist[u] {
			continue
		}
		if u == e {
			return reconstructPath(parent, s, e), cur.cost, cur.resource, true
		}
		for _, a := range m.Neighbors(u) {
			if a.Blocked {
				continue
			}
			nd := graph.SaturatingAdd(cur.dist, metric(a))
			if nd < dist[a.To] {
				dist[a.To] = nd
				parent[a.To] = u
				heap.Push(&pq, &mutableItem{
					node:     a.To,
					dist:     nd,
					cost:     graph.SaturatingAdd(cur.cost, a.Cost),
					resource: graph.SaturatingAdd(cur.resource, a.Resource),
				})
			}
		}
	}
	return nil, 0, 0, false
}

func metricCost(a graph.MutableArc) int64     { return a.Cost }
func metricResource(a graph.MutableArc) int64 { return a.Resource }
