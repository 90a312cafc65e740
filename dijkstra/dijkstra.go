package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/roundtour/roundtour/core"
)

// Search computes shortest distances from source to every node of g and
// the predecessor links for path reconstruction.
//
// Preconditions, validated in order:
//  1. source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain source (ErrNodeNotFound, wrapped with the ID).
//  4. No edge of g may have negative weight (ErrNegativeWeight).
//
// The search itself has no side effects and no caching across calls; the
// returned Tree is the per-source cache callers may hold for as many
// DistanceTo/PathTo queries as they like.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Search(g *core.Graph, source string) (*Tree, error) {
	// 1) Validate source is provided.
	if source == "" {
		return nil, ErrEmptySource
	}

	// 2) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Validate source exists in the graph.
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, source)
	}

	// 4) Pre-scan all edges to detect negative weights. core.AddEdge
	//    already rejects them; fail fast anyway rather than trust callers.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s–%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 5) Prepare the mutable search state.
	nodes := g.Nodes()
	r := &runner{
		g:       g,
		dist:    make(map[string]float64, len(nodes)),
		prev:    make(map[string]string, len(nodes)),
		visited: make(map[string]bool, len(nodes)),
		pq:      make(nodePQ, 0, len(nodes)),
	}

	// 6) Initialize distances and seed the heap with the source.
	for _, id := range nodes {
		r.dist[id] = math.Inf(1)
		r.prev[id] = ""
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})

	// 7) Run the main extraction/relaxation loop.
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Tree{source: source, dist: r.dist, prev: r.prev}, nil
}

// DistanceTo returns the minimum cumulative edge weight from the tree's
// source to target.
//
// Errors: ErrNodeNotFound if target is not part of the searched graph,
// ErrUnreachable if no path exists.
// Complexity: O(1).
func (t *Tree) DistanceTo(target string) (float64, error) {
	d, ok := t.dist[target]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, target)
	}
	if math.IsInf(d, 1) {
		return 0, fmt.Errorf("%w: %q from %q", ErrUnreachable, target, t.source)
	}

	return d, nil
}

// PathTo reconstructs one minimum-weight path from the tree's source to
// target, inclusive of both endpoints. Summing the edge weights along the
// returned sequence yields exactly DistanceTo(target).
//
// Errors: as DistanceTo.
// Complexity: O(len(path)).
func (t *Tree) PathTo(target string) ([]string, error) {
	if _, err := t.DistanceTo(target); err != nil {
		return nil, err
	}

	// Walk predecessors back to the source, then reverse in place.
	path := []string{target}
	for at := target; at != t.source; {
		at = t.prev[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// ShortestPath answers a single (source, target) query: the minimum
// distance and one minimum-weight path, produced by one shared search.
//
// Errors: ErrEmptySource, ErrNilGraph, ErrNodeNotFound (source or target),
// ErrUnreachable, ErrNegativeWeight.
// Complexity: O((V + E) log V).
func ShortestPath(g *core.Graph, source, target string) (float64, []string, error) {
	t, err := Search(g, source)
	if err != nil {
		return 0, nil, err
	}
	d, err := t.DistanceTo(target)
	if err != nil {
		return 0, nil, err
	}
	p, err := t.PathTo(target)
	if err != nil {
		return 0, nil, err
	}

	return d, p, nil
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	g       *core.Graph        // read-only within the search
	dist    map[string]float64 // node ID → current best distance from source
	prev    map[string]string  // node ID → predecessor on the shortest path
	visited map[string]bool    // node ID → distance finalized
	pq      nodePQ             // lazy min-heap of pending (node, dist) pairs
}

// process repeatedly extracts the minimum-distance node and relaxes its
// neighbours until the heap drains.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Skip stale entries left behind by lazy decrease-key.
		if r.visited[item.id] {
			continue
		}
		r.visited[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the distance of every neighbour of u.
// Assumes dist[u] is final. Neighbours arrive in sorted ID order, so with
// strict improvement the predecessor choice is deterministic.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	var newDist float64
	for _, h := range neighbors {
		// Self-loops never improve a distance (weight >= 0); the strict
		// comparison below discards them without special casing.
		newDist = r.dist[u] + h.Weight
		if newDist >= r.dist[h.To] {
			continue
		}

		r.dist[h.To] = newDist
		r.prev[h.To] = u
		heap.Push(&r.pq, &nodeItem{id: h.To, dist: newDist})
	}

	return nil
}

// nodeItem is one pending (node, distance) heap entry.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by distance, ties broken by
// node ID so extraction order is fully deterministic.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
