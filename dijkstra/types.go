package dijkstra

import "errors"

// Sentinel errors returned by the search and by Tree queries.
var (
	// ErrEmptySource indicates that the provided source node ID is empty.
	ErrEmptySource = errors.New("dijkstra: source node ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Search.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that the source or a queried target node
	// does not exist in the graph the tree was built from.
	ErrNodeNotFound = errors.New("dijkstra: node not found")

	// ErrUnreachable indicates that no path connects the source to the
	// queried target (disconnected components). Callers building tours
	// must treat this as fatal: the heuristic cannot proceed without a
	// distance.
	ErrUnreachable = errors.New("dijkstra: target unreachable from source")

	// ErrNegativeWeight indicates that a negative edge weight was detected
	// in the graph. Dijkstra's correctness requires weights >= 0.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Tree is the result of one single-source search: shortest distances and
// predecessor links from a fixed source to every node of the graph.
//
// A Tree is immutable once returned by Search and may be queried from
// multiple goroutines.
type Tree struct {
	// source is the node the search ran from.
	source string

	// dist maps node ID → minimum cumulative weight from source
	// (+Inf when unreachable).
	dist map[string]float64

	// prev maps node ID → predecessor on one shortest path
	// ("" for the source and for unreachable nodes).
	prev map[string]string
}

// Source returns the node the tree was built from.
func (t *Tree) Source() string { return t.source }
