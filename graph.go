package main

import "fmt"

// Neighbor is one adjacency entry of a vertex.
type Neighbor struct {
	To     Point   // Adjacent vertex
	Weight float64 // Axis length of the edge
}

// WeightedGraph is an undirected graph keyed by point identity. Adjacency is
// kept symmetric and every iteration follows vertex insertion order, so
// routes are reproducible for identical inputs.
type WeightedGraph struct {
	adjacency map[Point][]Neighbor
	order     []Point
	edges     int
}

// NewWeightedGraph creates an empty graph
func NewWeightedGraph() *WeightedGraph {
	return &WeightedGraph{
		adjacency: make(map[Point][]Neighbor),
	}
}

// AddVertex registers p. Adding an existing vertex is a no-op.
func (g *WeightedGraph) AddVertex(p Point) {
	if _, exists := g.adjacency[p]; exists {
		return
	}
	g.adjacency[p] = []Neighbor{}
	g.order = append(g.order, p)
}

// HasVertex reports whether p was registered.
func (g *WeightedGraph) HasVertex(p Point) bool {
	_, exists := g.adjacency[p]
	return exists
}

// AddEdge connects p and q in both directions. Both vertices must already be
// registered. Adding the same pair again, in either order, is a no-op.
func (g *WeightedGraph) AddEdge(p, q Point, weight float64) error {
	if !g.HasVertex(p) {
		return fmt.Errorf("add edge %v-%v: %v: %w", p, q, p, ErrDisconnectedGraph)
	}
	if !g.HasVertex(q) {
		return fmt.Errorf("add edge %v-%v: %v: %w", p, q, q, ErrDisconnectedGraph)
	}
	if p == q || g.connected(p, q) {
		return nil
	}

	g.adjacency[p] = append(g.adjacency[p], Neighbor{To: q, Weight: weight})
	g.adjacency[q] = append(g.adjacency[q], Neighbor{To: p, Weight: weight})
	g.edges++
	return nil
}

func (g *WeightedGraph) connected(p, q Point) bool {
	for _, n := range g.adjacency[p] {
		if n.To == q {
			return true
		}
	}
	return false
}

// Neighbors returns the adjacency list of p. The slice must not be modified.
func (g *WeightedGraph) Neighbors(p Point) []Neighbor {
	return g.adjacency[p]
}

// Vertices returns the registered vertices in insertion order.
func (g *WeightedGraph) Vertices() []Point {
	return append([]Point(nil), g.order...)
}

func (g *WeightedGraph) VertexCount() int {
	return len(g.order)
}

func (g *WeightedGraph) EdgeCount() int {
	return g.edges
}

// Edges reports every undirected edge exactly once, oriented from the
// endpoint that was registered first.
func (g *WeightedGraph) Edges() []LineSegment {
	edges := make([]LineSegment, 0, g.edges)
	seen := make(map[LineSegment]bool, g.edges)

	for _, p := range g.order {
		for _, n := range g.adjacency[p] {
			if seen[LineSegment{P1: n.To, P2: p}] {
				continue
			}
			seen[LineSegment{P1: p, P2: n.To}] = true
			edges = append(edges, LineSegment{P1: p, P2: n.To})
		}
	}

	return edges
}
