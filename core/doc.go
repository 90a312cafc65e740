// Package core defines the in-memory road-network graph consumed by every
// other package in this module: nodes with geographic coordinates and
// weighted undirected edges.
//
// The graph is built once by a loader (see package graphml) and is read-only
// for the rest of a run. Mutation is guarded by an RWMutex, so a fully built
// graph may be shared by any number of concurrent readers — one tour solve
// per region, for example — without further coordination.
//
// Determinism guarantees, relied on by package dijkstra:
//
//   - Nodes() returns IDs sorted ascending.
//   - Neighbors(id) returns half-edges sorted by neighbour ID.
//   - Parallel edges between one pair collapse to the minimum weight, so a
//     pair has exactly one stored weight.
//
// Self-loops are tolerated (stored, never useful to a shortest path).
// Negative weights are rejected at AddEdge; shortest-path correctness
// depends on that invariant.
package core
