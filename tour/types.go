package tour

import (
	"errors"
	"math"
)

// ErrEmptyStopList is returned when fewer than two stops are supplied:
// a tour needs the depot plus at least one stop to visit.
var ErrEmptyStopList = errors.New("tour: stop list needs a depot and at least one stop")

// roundScale stabilizes summed distances to 1e-9 absolute precision,
// avoiding cross-platform floating-point drift in totals.
const roundScale = 1e9

// Result holds one constructed tour.
type Result struct {
	// Stops is the visiting order of the required stops, depot at both
	// ends: for k input stops, len(Stops) == k+1.
	Stops []string

	// Legs[i] is the shortest-path distance of the hop from Stops[i]
	// to Stops[i+1]; len(Legs) == len(Stops)-1.
	Legs []float64

	// Paths[i] is the full road-level node sequence of that hop. Every
	// leg except the last is trimmed of its final node (it reappears as
	// the first node of the next leg), so the legs concatenate into one
	// continuous walk from depot back to depot.
	Paths [][]string
}

// Total returns the summed leg distances, rounded to 1e-9.
func (r Result) Total() float64 {
	var sum float64
	for _, d := range r.Legs {
		sum += d
	}

	return math.Round(sum*roundScale) / roundScale
}

// Stitched concatenates the per-leg paths into the tour's single
// continuous walk. Seams carry no duplicated junction nodes because every
// non-final leg is stored trimmed.
func (r Result) Stitched() []string {
	n := 0
	for _, p := range r.Paths {
		n += len(p)
	}
	walk := make([]string, 0, n)
	for _, p := range r.Paths {
		walk = append(walk, p...)
	}

	return walk
}
