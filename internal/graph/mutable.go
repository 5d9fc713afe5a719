package graph

// MutableArc is an Arc enriched with the per-run auxiliary state the
// iterated-Dijkstra heuristics need: a hard block flag (EdgeBlocking,
// DisjointPaths) and a soft penalty multiplier (EdgePenalization). Both
// fields are present on every copy regardless of which heuristic is using
// it, so a single conversion from Graph serves all of them.
type MutableArc struct {
	To       int
	Cost     int64
	Resource int64
	Blocked  bool
	Penalty  int64
}

// MutableGraph is a per-invocation, per-heuristic copy of a Graph. It is
// never shared across solver runs; each heuristic call gets its own copy via
// FromGraph.
type MutableGraph struct {
	adj [][]MutableArc
}

// FromGraph copies g into a fresh MutableGraph with all arcs unblocked and
// penalty multipliers initialized to 1.
func FromGraph(g *Graph) *MutableGraph {
	m := &MutableGraph{adj: make([][]MutableArc, g.N())}
	for u, arcs := range g.adj {
		m.adj[u] = make([]MutableArc, len(arcs))
		for i, a := range arcs {
			m.adj[u][i] = MutableArc{To: a.To, Cost: a.Cost, Resource: a.Resource, Penalty: 1}
		}
	}
	return m
}

// N returns the number of vertices.
func (m *MutableGraph) N() int {
	return len(m.adj)
}

// Neighbors returns u's outgoing arcs, including blocked ones; callers must
// check the Blocked flag themselves.
func (m *MutableGraph) Neighbors(u int) []MutableArc {
	return m.adj[u]
}

// ResetBlocks clears the block flag on every arc, leaving penalties intact.
func (m *MutableGraph) ResetBlocks() {
	for _, arcs := range m.adj {
		for i := range arcs {
			arcs[i].Blocked = false
		}
	}
}

// BlockPath sets the block flag on every arc along path, looking up each
// (u, v) pair by first-match linear scan as described in the design notes on
// multigraph arc lookup. Returns the number of arcs actually found.
func (m *MutableGraph) BlockPath(path []int) int {
	blocked := 0
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		for j := range m.adj[u] {
			if m.adj[u][j].To == v {
				m.adj[u][j].Blocked = true
				blocked++
				break
			}
		}
	}
	return blocked
}

// HeaviestOnPath finds the arc along path with the greatest cost, breaking
// ties by higher resource, as required by EdgeBlocking and EdgePenalization.
// Reports the owning vertex and the index of the arc within its adjacency
// list, or ok=false if path has fewer than two vertices.
func (m *MutableGraph) HeaviestOnPath(path []int) (u, idx int, ok bool) {
	maxCost, maxRes := int64(-1), int64(-1)
	found := false
	for i := 0; i+1 < len(path); i++ {
		from, to := path[i], path[i+1]
		for j := range m.adj[from] {
			a := m.adj[from][j]
			if a.To != to {
				continue
			}
			if a.Cost > maxCost || (a.Cost == maxCost && a.Resource > maxRes) {
				maxCost, maxRes = a.Cost, a.Resource
				u, idx, found = from, j, true
			}
			break
		}
	}
	return u, idx, found
}

// BlockArc sets the block flag on the arc at (u, idx).
func (m *MutableGraph) BlockArc(u, idx int) {
	m.adj[u][idx].Blocked = true
}

// PenalizeArc multiplies the penalty multiplier of the arc at (u, idx) by
// kappa, clamped so it never exceeds pMax.
func (m *MutableGraph) PenalizeArc(u, idx int, kappa, pMax int64) {
	p := SaturatingMul(m.adj[u][idx].Penalty, kappa)
	if p > pMax {
		p = pMax
	}
	m.adj[u][idx].Penalty = p
}
