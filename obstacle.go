package main

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Obstacle is an axis-aligned rectangle the route may not cross. Its
// boundary is kept as a graph of four edges and is never traversed.
type Obstacle struct {
	Corners  []Point
	Boundary *WeightedGraph
	Bound    orb.Bound
}

// NewObstacle validates four rectangle corners, given in any order, and
// builds the boundary graph.
func NewObstacle(corners []Point) (*Obstacle, error) {
	if len(corners) != 4 {
		return nil, fmt.Errorf("got %d corners, want 4: %w", len(corners), ErrInvalidObstacle)
	}

	mp := make(orb.MultiPoint, 0, len(corners))
	for _, c := range corners {
		if !c.finite() {
			return nil, fmt.Errorf("corner %v: %w", c, ErrInvalidObstacle)
		}
		mp = append(mp, orb.Point{c.X, c.Y})
	}
	bound := mp.Bound()

	if bound.Min.X() >= bound.Max.X() || bound.Min.Y() >= bound.Max.Y() {
		return nil, fmt.Errorf("corners %v have zero area: %w", corners, ErrInvalidObstacle)
	}

	seen := make(map[Point]bool, 4)
	for _, c := range corners {
		onX := c.X == bound.Min.X() || c.X == bound.Max.X()
		onY := c.Y == bound.Min.Y() || c.Y == bound.Max.Y()
		if !onX || !onY {
			return nil, fmt.Errorf("corner %v is not on an axis-aligned rectangle: %w", c, ErrInvalidObstacle)
		}
		if seen[c] {
			return nil, fmt.Errorf("duplicate corner %v: %w", c, ErrInvalidObstacle)
		}
		seen[c] = true
	}

	boundary, err := buildGraph(corners, nil)
	if err != nil {
		return nil, fmt.Errorf("obstacle boundary: %w", err)
	}

	return &Obstacle{
		Corners:  append([]Point(nil), corners...),
		Boundary: boundary,
		Bound:    bound,
	}, nil
}

// NewObstacles validates every corner list.
func NewObstacles(cornerLists [][]Point) ([]*Obstacle, error) {
	obstacles := make([]*Obstacle, 0, len(cornerLists))
	for i, corners := range cornerLists {
		obstacle, err := NewObstacle(corners)
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
		obstacles = append(obstacles, obstacle)
	}
	return obstacles, nil
}

// Blocks reports whether seg intersects any boundary edge, touching included.
func (o *Obstacle) Blocks(seg LineSegment) bool {
	for _, edge := range o.Boundary.Edges() {
		if _, ok := SegmentIntersection(seg, edge); ok {
			return true
		}
	}
	return false
}
