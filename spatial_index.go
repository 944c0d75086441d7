package main

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// boundsPadding widens every rectangle handed to the R-tree. rtreego rejects
// zero-length sides (axis-aligned segments have one) and treats touching
// rectangles as disjoint, while a touch still blocks a segment.
const boundsPadding = 1e-6

// ObstacleEntry wraps an obstacle for R-tree storage
type ObstacleEntry struct {
	Obstacle *Obstacle
	BBox     rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *ObstacleEntry) Bounds() rtreego.Rect {
	return e.BBox
}

// ObstacleIndex answers "does this segment cross an obstacle" queries
type ObstacleIndex struct {
	tree *rtreego.Rtree
	size int
}

// NewObstacleIndex creates a new spatial index
func NewObstacleIndex(obstacles []*Obstacle) *ObstacleIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	size := 0
	for _, obstacle := range obstacles {
		bbox, err := paddedRect(obstacle.Bound)
		if err != nil {
			continue
		}
		tree.Insert(&ObstacleEntry{Obstacle: obstacle, BBox: bbox})
		size++
	}

	return &ObstacleIndex{tree: tree, size: size}
}

// Len is the number of indexed obstacles.
func (si *ObstacleIndex) Len() int {
	if si == nil {
		return 0
	}
	return si.size
}

// Blocks reports whether seg crosses the boundary of any indexed obstacle.
// A nil index blocks nothing.
func (si *ObstacleIndex) Blocks(seg LineSegment) bool {
	if si.Len() == 0 {
		return false
	}

	for _, obstacle := range si.QuerySegment(seg) {
		if obstacle.Blocks(seg) {
			return true
		}
	}
	return false
}

// QuerySegment returns obstacles whose bounds overlap the bounds of seg.
func (si *ObstacleIndex) QuerySegment(seg LineSegment) []*Obstacle {
	bound := orb.MultiPoint{
		{seg.P1.X, seg.P1.Y},
		{seg.P2.X, seg.P2.Y},
	}.Bound()

	bbox, err := paddedRect(bound)
	if err != nil {
		return []*Obstacle{}
	}

	results := si.tree.SearchIntersect(bbox)
	obstacles := make([]*Obstacle, 0, len(results))
	for _, item := range results {
		obstacles = append(obstacles, item.(*ObstacleEntry).Obstacle)
	}
	return obstacles
}

// paddedRect converts an orb bound to an R-tree rectangle grown by
// boundsPadding on every side.
func paddedRect(b orb.Bound) (rtreego.Rect, error) {
	minX, minY := b.Min.X()-boundsPadding, b.Min.Y()-boundsPadding
	width := math.Max(b.Max.X()-b.Min.X(), 0) + 2*boundsPadding
	height := math.Max(b.Max.Y()-b.Min.Y(), 0) + 2*boundsPadding

	return rtreego.NewRect(
		rtreego.Point{minX, minY},
		[]float64{width, height},
	)
}
