package main

import (
	"fmt"
	"math"
)

// ShortestPath computes the minimum-weight route from start to end with
// Dijkstra's algorithm. It stops as soon as end is settled.
func ShortestPath(graph *WeightedGraph, start, end Point) ([]Point, float64, error) {
	if !graph.HasVertex(start) {
		return nil, 0, fmt.Errorf("search start %v: %w", start, ErrDisconnectedGraph)
	}
	if !graph.HasVertex(end) {
		return nil, 0, fmt.Errorf("search end %v: %w", end, ErrDisconnectedGraph)
	}

	distances := make(map[Point]float64, graph.VertexCount())
	previous := make(map[Point]Point, graph.VertexCount())
	settled := make(map[Point]bool, graph.VertexCount())
	for _, v := range graph.order {
		distances[v] = math.Inf(1)
	}
	distances[start] = 0

	queue := &PriorityQueue{}
	queue.Insert(start, 0)

	for queue.Len() > 0 {
		current, _, _ := queue.ExtractMin()

		// Stale entry from an earlier, longer relaxation
		if settled[current] {
			continue
		}
		settled[current] = true

		if current == end {
			return buildPath(previous, start, end), distances[end], nil
		}

		for _, edge := range graph.Neighbors(current) {
			if settled[edge.To] {
				continue
			}
			candidate := distances[current] + edge.Weight
			if candidate < distances[edge.To] {
				distances[edge.To] = candidate
				previous[edge.To] = current
				queue.Insert(edge.To, candidate)
			}
		}
	}

	return nil, 0, fmt.Errorf("route %v to %v: %w", start, end, ErrUnreachableDestination)
}

// buildPath follows predecessor links back from end and reverses them.
func buildPath(previous map[Point]Point, start, end Point) []Point {
	path := []Point{end}
	for node := end; node != start; {
		node = previous[node]
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
