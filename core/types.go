package core

import (
	"errors"
	"sync"

	"github.com/paulmach/orb"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that an operation received an empty node ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates that no edge connects the requested pair.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates an attempt to add an edge with weight < 0.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Node is a junction of the road network.
//
// ID uniquely identifies the node within its Graph. Loc carries the
// geographic position in orb's (lng, lat) axis order; it is used only by
// downstream rendering, never by the search algorithms.
type Node struct {
	// ID is the unique identifier for this node.
	ID string

	// Loc is the node position, (longitude, latitude).
	Loc orb.Point
}

// Edge is one undirected weighted connection, reported in canonical
// orientation (From <= To) by Graph.Edges.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Halfedge is one outgoing step from a node, as returned by Graph.Neighbors.
type Halfedge struct {
	// To is the neighbour node ID.
	To string

	// Weight is the cost of stepping to that neighbour.
	Weight float64
}

// Graph is the in-memory road network.
//
// Edges are undirected and weighted; parallel edges collapse to the minimum
// weight per pair; self-loops are stored but never improve a path.
// mu guards nodes and adjacency together: mutation takes the write lock,
// every query takes the read lock, so a built graph is safe to share across
// concurrent readers.
type Graph struct {
	mu sync.RWMutex

	// nodes maps node ID → node.
	nodes map[string]*Node

	// adj[u][v] is the minimum weight among edges between u and v.
	// Undirected: adj[u][v] exists iff adj[v][u] exists (loops aside).
	adj map[string]map[string]float64

	// edgeCount is the number of distinct unordered pairs (loops included).
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		adj:   make(map[string]map[string]float64),
	}
}
