// Package heuristics implements the four polynomial-time RCSPP
// approximations: MultiObjectiveScan, DisjointPaths, EdgeBlocking and
// EdgePenalization. Each is an iterated or scalarized Dijkstra variant; none
// carries an optimality guarantee.
package heuristics

import (
	"container/heap"

	"rcspp/internal/graph"
	"rcspp/internal/pulse"
)

// blendedItem is a MultiObjectiveScan priority-queue entry: the blended
// distance used for ordering, alongside the true cost and resource
// accumulated so far (tracked separately per the design note on closures
// over the sweep variable — lambda is captured by value per call, never
// through shared mutable state).
type blendedItem struct {
	node           int
	blended        float64
	cost, resource int64
	index          int
}

type blendedQueue []*blendedItem

func (q blendedQueue) Len() int { return len(q) }
func (q blendedQueue) Less(i, j int) bool {
	if q[i].blended != q[j].blended {
		return q[i].blended < q[j].blended
	}
	return q[i].node < q[j].node
}
func (q blendedQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index, q[j].index = i, j
}
func (q *blendedQueue) Push(x any) {
	item := x.(*blendedItem)
	item.index = len(*q)
	*q = append(*q, item)
}
func (q *blendedQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// dijkstraBlended runs a single Dijkstra pass minimizing
// lambda*cost + (1-lambda)*resource, returning the discovered path along
// with its true (not blended) cost and resource.
func dijkstraBlended(g *graph.Graph, s, e int, lambda float64) (path []int, cost, resource int64, ok bool) {
	n := g.N()
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = posInf
	}
	dist[s] = 0
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	pq := make(blendedQueue, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &blendedItem{node: s, blended: 0})

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*blendedItem)
		u := cur.node
		if cur.blended > dist[u] {
			continue
		}
		if u == e {
			return reconstructPath(parent, s, e), cur.cost, cur.resource, true
		}
		for _, a := range g.Neighbors(u) {
			nc := cur.cost + a.Cost
			nr := cur.resource + a.Resource
			blended := lambda*float64(nc) + (1-lambda)*float64(nr)
			if blended < dist[a.To] {
				dist[a.To] = blended
				parent[a.To] = u
				heap.Push(&pq, &blendedItem{node: a.To, blended: blended, cost: nc, resource: nr})
			}
		}
	}
	return nil, 0, 0, false
}

const posInf = 1e18

func reconstructPath(parent []int, s, e int) []int {
	path := []int{e}
	cur := e
	for cur != s {
		p := parent[cur]
		if p == -1 {
			return nil
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// MultiObjectiveScan sweeps lambda from 0 to 1 in increments of lambdaStep,
// scalarizing cost and resource into a single Dijkstra weight at each step,
// and keeps the best feasible true-cost result seen across the sweep.
func MultiObjectiveScan(g *graph.Graph, s, e int, limit int64, lambdaStep float64) (pulse.Result, bool) {
	var best pulse.Result
	found := false

	for lambda := 0.0; lambda <= 1.0+1e-9; lambda += lambdaStep {
		path, cost, resource, ok := dijkstraBlended(g, s, e, lambda)
		if !ok || resource > limit {
			continue
		}
		if !found || cost < best.Cost || (cost == best.Cost && resource < best.Resource) {
			best = pulse.Result{Path: path, Cost: cost, Resource: resource}
			found = true
		}
	}
	return best, found
}
