// Package algorithms holds a plain single-source Dijkstra over an
// immutable graph, parameterized by which arc attribute to minimize, and
// the LowerBoundOracle built on it. The Pulse solver uses it through the
// LowerBoundOracle; the heuristics run their own Dijkstra variants.
package algorithms

import (
	"container/heap"

	"rcspp/internal/graph"
)

// distItem is an element of the Dijkstra priority queue: a candidate
// distance to node, tie-broken by node id for determinism.
type distItem struct {
	node     int
	distance int64
	index    int
}

type distQueue []*distItem

func (q distQueue) Len() int { return len(q) }

func (q distQueue) Less(i, j int) bool {
	if q[i].distance != q[j].distance {
		return q[i].distance < q[j].distance
	}
	return q[i].node < q[j].node
}

func (q distQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *distQueue) Push(x any) {
	item := x.(*distItem)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *distQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

// SingleSourceDistances runs Dijkstra from source over g, minimizing the
// attribute selected by weight. Unreachable vertices are left at
// graph.Infinity. weight must return nonnegative values.
func SingleSourceDistances(g *graph.Graph, source int, weight func(graph.Arc) int64) []int64 {
	dist := make([]int64, g.N())
	for i := range dist {
		dist[i] = graph.Infinity
	}
	dist[source] = 0

	pq := make(distQueue, 0, g.N())
	heap.Init(&pq)
	heap.Push(&pq, &distItem{node: source, distance: 0})

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*distItem)
		u := cur.node
		if cur.distance > dist[u] {
			continue
		}
		for _, a := range g.Neighbors(u) {
			nd := graph.SaturatingAdd(dist[u], weight(a))
			if nd < dist[a.To] {
				dist[a.To] = nd
				heap.Push(&pq, &distItem{node: a.To, distance: nd})
			}
		}
	}
	return dist
}
