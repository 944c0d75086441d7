package main

import (
	"fmt"
	"log"
)

// ComputeRoute returns the waypoints of the shortest obstacle-free
// orthogonal route from start to end over the corridor skeleton. Each
// obstacle is given as the four corners of an axis-aligned rectangle.
//
// The first waypoint is start and the last is end. Every consecutive pair
// shares an axis and the segment between them crosses no obstacle. The
// skeleton slice is not modified.
func ComputeRoute(start, end Point, skeleton []Point, obstacles [][]Point) ([]Point, error) {
	if len(skeleton) < 2 {
		return nil, fmt.Errorf("got %d points: %w", len(skeleton), ErrInvalidSkeleton)
	}
	for _, p := range append([]Point{start, end}, skeleton...) {
		if !p.finite() {
			return nil, fmt.Errorf("%v: %w", p, ErrInvalidPoint)
		}
	}

	blockers, err := NewObstacles(obstacles)
	if err != nil {
		return nil, err
	}
	index := NewObstacleIndex(blockers)

	base, err := BuildCorridorGraph(skeleton, index)
	if err != nil {
		return nil, fmt.Errorf("corridor graph: %w", err)
	}

	startInjection, err := SnapToCorridor(start, skeleton, base, index)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	endInjection, err := SnapToCorridor(end, skeleton, base, index)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}

	augmented := injectPoints(skeleton, startInjection, start, endInjection, end)
	graph, err := BuildCorridorGraph(augmented, index)
	if err != nil {
		return nil, fmt.Errorf("augmented graph: %w", err)
	}

	route, length, err := ShortestPath(graph, start, end)
	if err != nil {
		return nil, err
	}

	log.Printf("   Route %v -> %v: %d waypoints, length %.2f (%d vertices, %d edges, %d obstacles)\n",
		start, end, len(route), length, graph.VertexCount(), graph.EdgeCount(), index.Len())
	return route, nil
}

// injectPoints returns a copy of skeleton with the extra points appended,
// skipping any point already present.
func injectPoints(skeleton []Point, extra ...Point) []Point {
	seen := make(map[Point]bool, len(skeleton)+len(extra))
	for _, p := range skeleton {
		seen[p] = true
	}

	augmented := append(make([]Point, 0, len(skeleton)+len(extra)), skeleton...)
	for _, p := range extra {
		if seen[p] {
			continue
		}
		seen[p] = true
		augmented = append(augmented, p)
	}
	return augmented
}

// RouteLength sums the segment lengths of a route
func RouteLength(route []Point) float64 {
	var length float64
	for i := 0; i < len(route)-1; i++ {
		length += route[i].Distance(route[i+1])
	}
	return length
}
