package tour

import (
	"fmt"

	"github.com/roundtour/roundtour/core"
	"github.com/roundtour/roundtour/dijkstra"
)

// NearestNeighbor builds one heuristic tour visiting every stop of stops
// exactly once, starting and ending at the depot stops[0].
//
// Algorithm:
//  1. The depot becomes the current position; the remaining stops form the
//     pending set (order preserved).
//  2. While stops are pending: run one shortest-path search from the
//     current position, pick the pending stop with the minimum distance
//     (ties: earliest pending position), record the leg and advance.
//  3. Close the tour with an explicit final leg back to the depot.
//
// Each iteration issues exactly one dijkstra.Search; the resulting tree
// answers the distance scan over all pending stops and the winning leg's
// path reconstruction.
//
// Contracts:
//   - stops[0] is the depot; no stop may repeat (callers such as
//     region.Partition guarantee this; it is not re-validated here).
//   - All stops must exist in g and be mutually reachable.
//
// Errors: ErrEmptyStopList when len(stops) < 2; dijkstra.ErrNodeNotFound /
// dijkstra.ErrUnreachable propagated with the failing leg's endpoints when
// a stop is missing or disconnected — fatal, since the heuristic cannot
// rank stops without a distance.
//
// Complexity: O(k) searches for k stops, each O((V + E) log V).
func NearestNeighbor(g *core.Graph, stops []string) (Result, error) {
	// 1) A tour needs the depot plus at least one stop.
	if len(stops) < 2 {
		return Result{}, ErrEmptyStopList
	}

	depot := stops[0]
	pending := make([]string, len(stops)-1)
	copy(pending, stops[1:])

	res := Result{
		Stops: make([]string, 0, len(stops)+1),
		Legs:  make([]float64, 0, len(stops)),
		Paths: make([][]string, 0, len(stops)),
	}
	current := depot

	// 2) Greedy main loop: always hop to the nearest pending stop.
	for len(pending) > 0 {
		tree, err := dijkstra.Search(g, current)
		if err != nil {
			return Result{}, fmt.Errorf("tour: leg from %q: %w", current, err)
		}

		// Scan every pending stop; strict < keeps the earliest pending
		// position on ties, so the selection is deterministic.
		best := -1
		var bestDist float64
		for i, s := range pending {
			d, derr := tree.DistanceTo(s)
			if derr != nil {
				return Result{}, fmt.Errorf("tour: leg %q→%q: %w", current, s, derr)
			}
			if best == -1 || d < bestDist {
				best, bestDist = i, d
			}
		}
		selected := pending[best]

		path, err := tree.PathTo(selected)
		if err != nil {
			return Result{}, fmt.Errorf("tour: leg %q→%q: %w", current, selected, err)
		}

		// Record the leg. The path is trimmed of its final node: the next
		// leg (or the closing leg) starts there, and the seam must not
		// duplicate the junction.
		res.Legs = append(res.Legs, bestDist)
		res.Stops = append(res.Stops, current)
		res.Paths = append(res.Paths, path[:len(path)-1])

		current = selected
		pending = append(pending[:best], pending[best+1:]...)
	}

	// 3) Close the tour unconditionally: one explicit return leg from the
	//    last visited stop back to the depot, path kept in full.
	tree, err := dijkstra.Search(g, current)
	if err != nil {
		return Result{}, fmt.Errorf("tour: return leg from %q: %w", current, err)
	}
	dist, err := tree.DistanceTo(depot)
	if err != nil {
		return Result{}, fmt.Errorf("tour: return leg %q→%q: %w", current, depot, err)
	}
	path, err := tree.PathTo(depot)
	if err != nil {
		return Result{}, fmt.Errorf("tour: return leg %q→%q: %w", current, depot, err)
	}

	res.Legs = append(res.Legs, dist)
	res.Stops = append(res.Stops, current)
	res.Paths = append(res.Paths, path)

	// Record tour closure.
	res.Stops = append(res.Stops, depot)

	return res, nil
}
