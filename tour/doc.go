// Package tour builds approximate round-trip visiting tours with the
// nearest-neighbour heuristic.
//
// NearestNeighbor starts at the depot (the first stop of the input list),
// repeatedly hops to the closest pending stop by shortest-path distance
// through the road network, and finally returns to the depot. Every hop
// carries its complete road-level path; consecutive hops share their seam
// node, so the trimmed legs concatenate into one continuous walk.
//
// The heuristic trades optimality for speed: k stops cost k+1 Dijkstra
// searches, each O((V + E) log V), which is comfortable for tens of stops
// over thousands of road nodes. Ties between equally near stops resolve to
// the earliest pending position, keeping results reproducible.
package tour
