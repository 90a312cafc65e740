// Package roundtour plans approximate round-trip visiting tours over a
// weighted road network.
//
// Given a road graph, a fixed depot node and a list of required stops,
// roundtour builds a low-cost visiting order with the nearest-neighbour
// heuristic, where the "distance" between two stops is the shortest-path
// distance through the full network rather than a direct edge. Each hop of
// the tour carries its complete road-level path, and consecutive hops are
// stitched into one continuous walk from the depot back to the depot.
//
// The module is organized into small per-concern packages:
//
//	core/     — the in-memory road graph: nodes with coordinates, weighted
//	            undirected edges, deterministic sorted iteration
//	dijkstra/ — single-source shortest-path search and path reconstruction
//	tour/     — the nearest-neighbour tour builder and leg stitching
//	region/   — the stop-table loader and contiguous region partitioner
//	graphml/  — GraphML parsing into a core.Graph
//	render/   — tour rendering onto a reference map image
//	textio/   — the plain-text tour artifacts (stop lists, leg distances)
//
// The cmd/roundtour executable wires the packages into a batch planner: one
// tour per region, text and PNG artifacts per tour, failures isolated per
// region.
//
// Typical library use:
//
//	g, err := graphml.ParseFile("network.graphml")
//	// handle err
//	res, err := tour.NearestNeighbor(g, []string{"Depot", "A", "B", "C"})
//	// handle err
//	fmt.Println(res.Stops, res.Total())
package roundtour
