// Package dijkstra implements single-source shortest-path search on the
// weighted road network defined by package core.
//
// Search runs Dijkstra's algorithm once from a source node and returns a
// Tree: the minimum cumulative edge weight to every reachable node plus the
// predecessor links needed to reconstruct one minimum-weight path. The tour
// builder issues one Search per hop and answers all of that hop's distance
// queries — and the winning hop's path query — from the same Tree, which is
// the "reuse one search" efficiency note of the engine contract.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is extracted from the heap at most once: V extractions.
//   - Each edge relaxation may push a new entry: up to E pushes.
//   - Heap operations cost O(log N), N ≤ V + E, simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor maps.
//   - O(E) worst case inside the heap under lazy decrease-key.
//
// Determinism: core.Neighbors iterates in sorted neighbour order, relaxation
// improves distances strictly, and the heap breaks equal distances by node
// ID. For a fixed graph the returned tree — distances and reconstructed
// paths — is therefore identical across runs, which keeps tours and their
// tests reproducible even when several equal-weight paths exist.
//
// Notes on implementation choices:
//
//   - All edges are scanned upfront to detect negative weights and fail
//     fast, even though core.AddEdge already rejects them.
//   - Lazy decrease-key: shorter distances push duplicate heap entries and
//     stale entries are skipped on extraction via the visited set.
package dijkstra
