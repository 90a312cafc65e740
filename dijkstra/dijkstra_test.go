// Package dijkstra_test validates the shortest-path engine: input
// validation, distance correctness against a brute-force search, path
// reconstruction, determinism, and unreachable/missing-node handling.
package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/roundtour/roundtour/core"
	"github.com/roundtour/roundtour/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation: errors for invalid inputs.
// ------------------------------------------------------------------------

func TestSearch_EmptySource(t *testing.T) {
	g := core.NewGraph()
	if _, err := dijkstra.Search(g, ""); !errors.Is(err, dijkstra.ErrEmptySource) {
		t.Fatalf("expected ErrEmptySource, got %v", err)
	}
}

func TestSearch_NilGraph(t *testing.T) {
	if _, err := dijkstra.Search(nil, "X"); !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestSearch_SourceNotFound(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge("A", "B", 1); err != nil {
		t.Fatal(err)
	}
	_, err := dijkstra.Search(g, "X")
	if !errors.Is(err, dijkstra.ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Distances and paths on small graphs.
// ------------------------------------------------------------------------

func TestSearch_Triangle(t *testing.T) {
	// A–B(1), B–C(2), A–C(5): shortest A→C is A,B,C with cost 3.
	g := core.NewGraph()
	if err := g.AddEdge("A", "B", 1); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge("B", "C", 2); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge("A", "C", 5); err != nil {
		t.Fatal(err)
	}

	tree, err := dijkstra.Search(g, "A")
	if err != nil {
		t.Fatal(err)
	}

	d, err := tree.DistanceTo("C")
	if err != nil {
		t.Fatal(err)
	}
	if d != 3 {
		t.Errorf("DistanceTo(C) = %v; want 3", d)
	}

	p, err := tree.PathTo("C")
	if err != nil {
		t.Fatal(err)
	}
	wantPath(t, p, "A", "B", "C")
}

func TestShortestPath_SharedSearch(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge("A", "B", 1.5); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge("B", "C", 2.5); err != nil {
		t.Fatal(err)
	}

	d, p, err := dijkstra.ShortestPath(g, "A", "C")
	if err != nil {
		t.Fatal(err)
	}
	if d != 4 {
		t.Errorf("distance = %v; want 4", d)
	}
	wantPath(t, p, "A", "B", "C")
}

func TestPathTo_SourceItself(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge("A", "B", 1); err != nil {
		t.Fatal(err)
	}

	tree, err := dijkstra.Search(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	d, err := tree.DistanceTo("A")
	if err != nil {
		t.Fatal(err)
	}
	if d != 0 {
		t.Errorf("DistanceTo(source) = %v; want 0", d)
	}
	p, err := tree.PathTo("A")
	if err != nil {
		t.Fatal(err)
	}
	wantPath(t, p, "A")
}

func TestSearch_SelfLoopHarmless(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge("A", "A", 0); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge("A", "B", 2); err != nil {
		t.Fatal(err)
	}

	d, p, err := dijkstra.ShortestPath(g, "A", "B")
	if err != nil {
		t.Fatal(err)
	}
	if d != 2 {
		t.Errorf("distance = %v; want 2", d)
	}
	wantPath(t, p, "A", "B")
}

// ------------------------------------------------------------------------
// 3. Unreachable / missing targets.
// ------------------------------------------------------------------------

func TestTree_TargetErrors(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge("A", "B", 1); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge("C", "D", 1); err != nil {
		t.Fatal(err)
	}

	tree, err := dijkstra.Search(g, "A")
	if err != nil {
		t.Fatal(err)
	}

	if _, err = tree.DistanceTo("C"); !errors.Is(err, dijkstra.ErrUnreachable) {
		t.Errorf("expected ErrUnreachable for disconnected target, got %v", err)
	}
	if _, err = tree.PathTo("C"); !errors.Is(err, dijkstra.ErrUnreachable) {
		t.Errorf("expected ErrUnreachable from PathTo, got %v", err)
	}
	if _, err = tree.DistanceTo("nope"); !errors.Is(err, dijkstra.ErrNodeNotFound) {
		t.Errorf("expected ErrNodeNotFound for absent target, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 4. Properties: brute-force agreement, path weight re-summing, determinism.
// ------------------------------------------------------------------------

// gridGraph builds a 4x4 grid with deterministic pseudo-random weights.
func gridGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	id := func(r, c int) string { return string(rune('a'+r)) + string(rune('0'+c)) }
	// Fixed weight table keeps the fixture reproducible without an RNG.
	w := []float64{4, 1, 7, 2, 5, 3, 8, 6, 2, 9, 1, 5, 3, 7, 4, 2, 6, 1, 8, 3, 5, 2, 9, 4}
	k := 0
	next := func() float64 { v := w[k%len(w)]; k++; return v }
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if c+1 < 4 {
				if err := g.AddEdge(id(r, c), id(r, c+1), next()); err != nil {
					t.Fatal(err)
				}
			}
			if r+1 < 4 {
				if err := g.AddEdge(id(r, c), id(r+1, c), next()); err != nil {
					t.Fatal(err)
				}
			}
		}
	}

	return g
}

// bruteForce enumerates all simple paths from source to target and returns
// the minimum total weight. Exponential, fine for 16 nodes.
func bruteForce(t *testing.T, g *core.Graph, source, target string) float64 {
	t.Helper()
	best := math.Inf(1)
	seen := map[string]bool{source: true}
	var walk func(at string, total float64)
	walk = func(at string, total float64) {
		if at == target {
			if total < best {
				best = total
			}

			return
		}
		hs, err := g.Neighbors(at)
		if err != nil {
			t.Fatal(err)
		}
		for _, h := range hs {
			if seen[h.To] {
				continue
			}
			seen[h.To] = true
			walk(h.To, total+h.Weight)
			seen[h.To] = false
		}
	}
	walk(source, 0)

	return best
}

func TestSearch_AgreesWithBruteForce(t *testing.T) {
	g := gridGraph(t)
	tree, err := dijkstra.Search(g, "a0")
	if err != nil {
		t.Fatal(err)
	}

	for _, target := range g.Nodes() {
		want := bruteForce(t, g, "a0", target)
		got, derr := tree.DistanceTo(target)
		if derr != nil {
			t.Fatalf("DistanceTo(%s): %v", target, derr)
		}
		if got != want {
			t.Errorf("DistanceTo(%s) = %v; brute force says %v", target, got, want)
		}
	}
}

func TestPathTo_WeightsResumToDistance(t *testing.T) {
	g := gridGraph(t)
	tree, err := dijkstra.Search(g, "a0")
	if err != nil {
		t.Fatal(err)
	}

	for _, target := range g.Nodes() {
		p, perr := tree.PathTo(target)
		if perr != nil {
			t.Fatalf("PathTo(%s): %v", target, perr)
		}
		if p[0] != "a0" || p[len(p)-1] != target {
			t.Fatalf("PathTo(%s) endpoints wrong: %v", target, p)
		}
		var sum float64
		for i := 0; i+1 < len(p); i++ {
			w, werr := g.Weight(p[i], p[i+1])
			if werr != nil {
				t.Fatalf("path %v uses a non-edge %s–%s", p, p[i], p[i+1])
			}
			sum += w
		}
		d, _ := tree.DistanceTo(target)
		if sum != d {
			t.Errorf("path %v sums to %v; DistanceTo says %v", p, sum, d)
		}
	}
}

func TestSearch_DeterministicAcrossRuns(t *testing.T) {
	g := gridGraph(t)
	first, err := dijkstra.Search(g, "b1")
	if err != nil {
		t.Fatal(err)
	}

	for run := 0; run < 5; run++ {
		tree, serr := dijkstra.Search(g, "b1")
		if serr != nil {
			t.Fatal(serr)
		}
		for _, target := range g.Nodes() {
			p1, _ := first.PathTo(target)
			p2, _ := tree.PathTo(target)
			if len(p1) != len(p2) {
				t.Fatalf("path to %s changed between runs: %v vs %v", target, p1, p2)
			}
			for i := range p1 {
				if p1[i] != p2[i] {
					t.Fatalf("path to %s changed between runs: %v vs %v", target, p1, p2)
				}
			}
		}
	}
}

func wantPath(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("path = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("path = %v; want %v", got, want)
		}
	}
}
