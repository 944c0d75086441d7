package main

import "fmt"

// BuildCorridorGraph connects every pair of skeleton points that lie on a
// common horizontal or vertical line, unless the straight segment between
// them crosses an obstacle boundary. Edge weight is the axis length.
func BuildCorridorGraph(points []Point, index *ObstacleIndex) (*WeightedGraph, error) {
	return buildGraph(points, index.Blocks)
}

// buildGraph is shared by corridor and obstacle boundary graphs. A nil
// blocked func connects every collinear pair unconditionally.
func buildGraph(points []Point, blocked func(LineSegment) bool) (*WeightedGraph, error) {
	graph := NewWeightedGraph()

	for i, p := range points {
		graph.AddVertex(p)

		// Pairs are symmetric, so only later points need checking
		for _, q := range points[i+1:] {
			if !p.sharesAxis(q) {
				continue
			}
			graph.AddVertex(q)

			seg := LineSegment{P1: p, P2: q}
			if blocked != nil && blocked(seg) {
				continue
			}

			weight, err := seg.AxisLength()
			if err != nil {
				return nil, err
			}
			if err := graph.AddEdge(p, q, weight); err != nil {
				return nil, fmt.Errorf("build graph: %w", err)
			}
		}
	}

	return graph, nil
}
