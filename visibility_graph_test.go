package main

import (
	"testing"
)

func mustObstacleIndex(t *testing.T, cornerLists ...[]Point) *ObstacleIndex {
	t.Helper()
	obstacles, err := NewObstacles(cornerLists)
	if err != nil {
		t.Fatalf("NewObstacles: %v", err)
	}
	return NewObstacleIndex(obstacles)
}

func edgeWeight(g *WeightedGraph, p, q Point) (float64, bool) {
	for _, n := range g.Neighbors(p) {
		if n.To == q {
			return n.Weight, true
		}
	}
	return 0, false
}

func TestBuildCorridorGraph_ConnectsCollinearPoints(t *testing.T) {
	t.Parallel()
	points := []Point{{0, 0}, {10, 0}, {10, 5}, {3, 7}}
	g, err := BuildCorridorGraph(points, nil)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		p, q   Point
		weight float64
		want   bool
	}{
		{Point{0, 0}, Point{10, 0}, 10, true},
		{Point{10, 0}, Point{10, 5}, 5, true},
		{Point{0, 0}, Point{10, 5}, 0, false},
		{Point{3, 7}, Point{0, 0}, 0, false},
	}
	for _, tt := range tests {
		w, ok := edgeWeight(g, tt.p, tt.q)
		if ok != tt.want {
			t.Errorf("%v-%v: edge present %v, want %v", tt.p, tt.q, ok, tt.want)
			continue
		}
		if ok && w != tt.weight {
			t.Errorf("%v-%v: weight %v, want %v", tt.p, tt.q, w, tt.weight)
		}
	}

	if g.VertexCount() != 4 {
		t.Errorf("VertexCount: got %d, want 4 (isolated points stay vertices)", g.VertexCount())
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount: got %d, want 2", g.EdgeCount())
	}
}

func TestBuildCorridorGraph_ObstaclePrunesEdge(t *testing.T) {
	t.Parallel()
	points := []Point{{0, 5}, {10, 5}, {0, 0}, {10, 0}}
	index := mustObstacleIndex(t, []Point{{4, 4}, {6, 4}, {4, 6}, {6, 6}})

	g, err := BuildCorridorGraph(points, index)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := edgeWeight(g, Point{0, 5}, Point{10, 5}); ok {
		t.Error("edge through obstacle must be pruned")
	}
	if w, ok := edgeWeight(g, Point{0, 0}, Point{10, 0}); !ok || w != 10 {
		t.Errorf("clear edge: got (%v, %v), want (10, true)", w, ok)
	}
	if w, ok := edgeWeight(g, Point{0, 0}, Point{0, 5}); !ok || w != 5 {
		t.Errorf("clear edge: got (%v, %v), want (5, true)", w, ok)
	}
}

func TestBuildCorridorGraph_DuplicatePoints(t *testing.T) {
	t.Parallel()
	points := []Point{{0, 0}, {0, 4}, {0, 0}, {0, 4}}
	g, err := BuildCorridorGraph(points, nil)
	if err != nil {
		t.Fatal(err)
	}
	if g.VertexCount() != 2 || g.EdgeCount() != 1 {
		t.Errorf("got %d vertices %d edges, want 2 and 1", g.VertexCount(), g.EdgeCount())
	}
}

func TestBuildCorridorGraph_OrderIndependentEdgeSet(t *testing.T) {
	t.Parallel()
	index := mustObstacleIndex(t, []Point{{4, 4}, {6, 4}, {4, 6}, {6, 6}})
	forward := []Point{{0, 0}, {10, 0}, {10, 5}, {0, 5}, {5, 0}}
	backward := []Point{{5, 0}, {0, 5}, {10, 5}, {10, 0}, {0, 0}}

	edgeSet := func(points []Point) map[[2]Point]float64 {
		g, err := BuildCorridorGraph(points, index)
		if err != nil {
			t.Fatal(err)
		}
		set := map[[2]Point]float64{}
		for _, e := range g.Edges() {
			w, _ := e.AxisLength()
			set[[2]Point{e.P1, e.P2}] = w
			set[[2]Point{e.P2, e.P1}] = w
		}
		return set
	}

	a, b := edgeSet(forward), edgeSet(backward)
	if len(a) != len(b) {
		t.Fatalf("edge counts differ: %d vs %d", len(a), len(b))
	}
	for k, w := range a {
		if b[k] != w {
			t.Errorf("edge %v: weight %v vs %v", k, w, b[k])
		}
	}
}
