package core

import (
	"sort"

	"github.com/paulmach/orb"
)

// AddNode inserts the node id at position loc, or moves an existing node
// to loc. Inserting is idempotent; only the location is overwritten.
//
// Errors: ErrEmptyNodeID.
// Complexity: O(1).
func (g *Graph) AddNode(id string, loc orb.Point) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if n, ok := g.nodes[id]; ok {
		n.Loc = loc

		return nil
	}
	g.nodes[id] = &Node{ID: id, Loc: loc}

	return nil
}

// AddEdge records an undirected edge between from and to with the given
// weight. Both endpoints are created on demand (at the zero location) so
// loaders may emit edges before node attributes. A repeated pair keeps the
// minimum weight seen so far; self-loops are stored as-is.
//
// Errors: ErrEmptyNodeID, ErrNegativeWeight.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight float64) error {
	// 1) Input validation.
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	// 2) Weight invariant: shortest-path search requires weight >= 0.
	if weight < 0 {
		return ErrNegativeWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 3) Ensure both endpoints exist.
	g.ensureNode(from)
	g.ensureNode(to)

	// 4) Insert, collapsing parallel edges to the minimum weight.
	if w, ok := g.adj[from][to]; ok {
		if weight >= w {
			return nil
		}
	} else {
		g.edgeCount++
	}
	g.adj[from][to] = weight
	if from != to {
		g.adj[to][from] = weight
	}

	return nil
}

// ensureNode creates id and its adjacency row if absent. Caller must hold
// the write lock.
func (g *Graph) ensureNode(id string) {
	if _, ok := g.nodes[id]; !ok {
		g.nodes[id] = &Node{ID: id}
	}
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]float64)
	}
}

// HasNode reports whether id exists in the graph.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node id.
//
// Errors: ErrEmptyNodeID, ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph) Node(id string) (Node, error) {
	if id == "" {
		return Node{}, ErrEmptyNodeID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, ErrNodeNotFound
	}

	return *n, nil
}

// Nodes returns all node IDs sorted ascending. The ordering is part of the
// package contract: deterministic traversal depends on it.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Neighbors returns the outgoing half-edges of id, sorted by neighbour ID.
//
// Errors: ErrEmptyNodeID, ErrNodeNotFound.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id string) ([]Halfedge, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}

	out := make([]Halfedge, 0, len(g.adj[id]))
	for to, w := range g.adj[id] {
		out = append(out, Halfedge{To: to, Weight: w})
	}
	// Sort by neighbour ID for reproducible relaxation order.
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// Weight returns the stored weight of the edge between from and to.
//
// Errors: ErrEmptyNodeID, ErrNodeNotFound (either endpoint), ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (float64, error) {
	if from == "" || to == "" {
		return 0, ErrEmptyNodeID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[from]; !ok {
		return 0, ErrNodeNotFound
	}
	if _, ok := g.nodes[to]; !ok {
		return 0, ErrNodeNotFound
	}
	w, ok := g.adj[from][to]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Edges returns every stored edge once, in canonical orientation
// (From <= To, loops as From == To), sorted by (From, To).
// Complexity: O(V + E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for from, tos := range g.adj {
		for to, w := range tos {
			// Emit each unordered pair once.
			if from > to {
				continue
			}
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of distinct unordered pairs, loops included.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
