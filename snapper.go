package main

import (
	"fmt"
)

// rayLength approximates a semi-infinite ray. Floor plans are bounded, so
// any value well beyond their extent works.
const rayLength = 10000000.0

// castRays returns the four axis-aligned rays from p: up, down, right, left.
func castRays(p Point) []LineSegment {
	return []LineSegment{
		{P1: p, P2: Point{X: p.X, Y: p.Y + rayLength}},
		{P1: p, P2: Point{X: p.X, Y: p.Y - rayLength}},
		{P1: p, P2: Point{X: p.X + rayLength, Y: p.Y}},
		{P1: p, P2: Point{X: p.X - rayLength, Y: p.Y}},
	}
}

// SnapToCorridor finds where p joins the corridor network. The result is p
// itself when p is already a vertex or directly visible from one along an
// axis; otherwise it is the nearest point where an axis-aligned ray from p
// meets a corridor edge without crossing an obstacle.
func SnapToCorridor(p Point, skeleton []Point, graph *WeightedGraph, index *ObstacleIndex) (Point, error) {
	if graph.HasVertex(p) {
		return p, nil
	}

	candidates := rayIntersections(p, graph, index)
	if len(candidates) > 0 {
		return nearestPoint(candidates, p), nil
	}

	for _, q := range skeleton {
		if p.sharesAxis(q) && !index.Blocks(LineSegment{P1: p, P2: q}) {
			return p, nil
		}
	}

	return Point{}, fmt.Errorf("snap %v: %w", p, ErrDegenerateSnap)
}

// rayIntersections collects every unobstructed hit of the four rays from p
// on the edges of graph.
func rayIntersections(p Point, graph *WeightedGraph, index *ObstacleIndex) []Point {
	rays := castRays(p)
	var hits []Point

	for _, edge := range graph.Edges() {
		for _, ray := range rays {
			hit, ok := SegmentIntersection(ray, edge)
			if !ok {
				continue
			}
			if index.Blocks(LineSegment{P1: p, P2: hit}) {
				continue
			}
			hits = append(hits, hit)
		}
	}

	return hits
}

// nearestPoint returns the candidate closest to p. The first one wins ties.
func nearestPoint(candidates []Point, p Point) Point {
	nearest := candidates[0]
	nearestDistance := p.Distance(nearest)

	for _, c := range candidates[1:] {
		if d := p.Distance(c); d < nearestDistance {
			nearestDistance = d
			nearest = c
		}
	}

	return nearest
}
