package main

import "errors"

// Route failure kinds. Call sites wrap these with the offending points,
// callers match them with errors.Is.
var (
	ErrInvalidObstacle        = errors.New("invalid obstacle")
	ErrDisconnectedGraph      = errors.New("vertex not registered in graph")
	ErrUnreachableDestination = errors.New("destination unreachable")
	ErrDegenerateSnap         = errors.New("point cannot be connected to the corridor network")
	ErrDiagonalEdge           = errors.New("edge is not axis-aligned")
	ErrInvalidSkeleton        = errors.New("corridor skeleton needs at least 2 points")
	ErrInvalidPoint           = errors.New("point has non-finite coordinates")
)

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrInvalidObstacle, "invalid_obstacle"},
	{ErrDisconnectedGraph, "disconnected_graph"},
	{ErrUnreachableDestination, "unreachable_destination"},
	{ErrDegenerateSnap, "degenerate_snap"},
	{ErrDiagonalEdge, "diagonal_edge"},
	{ErrInvalidSkeleton, "invalid_skeleton"},
	{ErrInvalidPoint, "invalid_point"},
}

// ErrorKind returns a stable label for err, used in responses and metrics.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return "internal"
}
