package main

import (
	"fmt"
	"math"
)

// Point is a floor-plan coordinate. Two points with equal coordinates are
// the same graph vertex.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Distance calculates Euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// sharesAxis reports whether q lies on the same horizontal or vertical line
// as p without coinciding with it.
func (p Point) sharesAxis(q Point) bool {
	return (p.X == q.X) != (p.Y == q.Y)
}

// LineSegment represents a line segment between two points
type LineSegment struct {
	P1, P2 Point
}

func (s LineSegment) String() string {
	return fmt.Sprintf("%v-%v", s.P1, s.P2)
}

// IsHorizontal reports whether both endpoints share Y.
func (s LineSegment) IsHorizontal() bool {
	return s.P1.Y == s.P2.Y
}

// IsVertical reports whether both endpoints share X.
func (s LineSegment) IsVertical() bool {
	return s.P1.X == s.P2.X
}

// AxisLength is the edge weight of an axis-aligned segment.
func (s LineSegment) AxisLength() (float64, error) {
	switch {
	case s.IsHorizontal():
		return math.Abs(s.P2.X - s.P1.X), nil
	case s.IsVertical():
		return math.Abs(s.P2.Y - s.P1.Y), nil
	}
	return 0, fmt.Errorf("%v: %w", s, ErrDiagonalEdge)
}

// SegmentIntersection returns the point where two segments cross. Touching
// at an endpoint counts as crossing; parallel and collinear segments never
// intersect.
func SegmentIntersection(seg1, seg2 LineSegment) (Point, bool) {
	p1, p2 := seg1.P1, seg1.P2
	p3, p4 := seg2.P1, seg2.P2

	denom := (p4.Y-p3.Y)*(p2.X-p1.X) - (p4.X-p3.X)*(p2.Y-p1.Y)
	if denom == 0 {
		return Point{}, false
	}

	ua := ((p4.X-p3.X)*(p1.Y-p3.Y) - (p4.Y-p3.Y)*(p1.X-p3.X)) / denom
	ub := ((p2.X-p1.X)*(p1.Y-p3.Y) - (p2.Y-p1.Y)*(p1.X-p3.X)) / denom
	if ua < 0 || ua > 1 || ub < 0 || ub > 1 {
		return Point{}, false
	}

	hit := Point{
		X: p1.X + ua*(p2.X-p1.X),
		Y: p1.Y + ua*(p2.Y-p1.Y),
	}

	// Keep the result exactly on axis-aligned operands so it can later be
	// matched against their endpoints by coordinate equality.
	for _, s := range []LineSegment{seg1, seg2} {
		if s.IsHorizontal() {
			hit.Y = s.P1.Y
		}
		if s.IsVertical() {
			hit.X = s.P1.X
		}
	}
	return hit, true
}
