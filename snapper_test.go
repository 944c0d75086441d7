package main

import (
	"errors"
	"testing"
)

func TestSnapToCorridor(t *testing.T) {
	t.Parallel()
	skeleton := []Point{{0, 0}, {10, 0}, {10, 10}}
	box := []Point{{3, 3}, {7, 3}, {3, 7}, {7, 7}}

	tests := []struct {
		name      string
		p         Point
		obstacles [][]Point
		want      Point
		wantErr   error
	}{
		{
			name: "already a vertex",
			p:    Point{10, 0},
			want: Point{10, 0},
		},
		{
			name: "above an edge",
			p:    Point{5, 3},
			want: Point{5, 0},
		},
		{
			name: "above a vertex",
			p:    Point{0, 5},
			want: Point{0, 0},
		},
		{
			name: "on an edge",
			p:    Point{4, 0},
			want: Point{4, 0},
		},
		{
			name:      "nearest ray blocked",
			p:         Point{5, 8},
			obstacles: [][]Point{box},
			want:      Point{10, 8},
		},
		{
			name:      "enclosed by obstacle",
			p:         Point{5, 5},
			obstacles: [][]Point{box},
			wantErr:   ErrDegenerateSnap,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			index := mustObstacleIndex(t, tt.obstacles...)
			graph, err := BuildCorridorGraph(skeleton, index)
			if err != nil {
				t.Fatal(err)
			}

			got, err := SnapToCorridor(tt.p, skeleton, graph, index)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err: got %v, want %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSnapToCorridor_AlignedWithDeadEnd(t *testing.T) {
	t.Parallel()
	// No ray hits an edge transversally, but p sees (10, 0) along the x axis.
	skeleton := []Point{{0, 0}, {10, 0}}
	graph, err := BuildCorridorGraph(skeleton, nil)
	if err != nil {
		t.Fatal(err)
	}

	got, err := SnapToCorridor(Point{20, 0}, skeleton, graph, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != (Point{20, 0}) {
		t.Errorf("got %v, want the point itself", got)
	}

	if _, err := SnapToCorridor(Point{20, 5}, skeleton, graph, nil); !errors.Is(err, ErrDegenerateSnap) {
		t.Errorf("unaligned point: got %v, want ErrDegenerateSnap", err)
	}
}
