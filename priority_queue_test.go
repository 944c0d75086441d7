package main

import (
	"math/rand"
	"testing"
)

func TestPriorityQueue_ExtractsInOrder(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(7))
	pq := &PriorityQueue{}

	last := -1.0
	for round := 0; round < 20; round++ {
		for i := 0; i < 25; i++ {
			pq.Insert(Point{X: float64(i)}, last+rng.Float64()*100)
		}
		// Interleave extracts so sift-down runs on partially drained heaps.
		for i := 0; i < 20; i++ {
			_, priority, ok := pq.ExtractMin()
			if !ok {
				t.Fatal("queue unexpectedly empty")
			}
			if priority < last {
				t.Fatalf("round %d: priority %v after %v", round, priority, last)
			}
			last = priority
		}
	}

	for pq.Len() > 0 {
		_, priority, _ := pq.ExtractMin()
		if priority < last {
			t.Fatalf("drain: priority %v after %v", priority, last)
		}
		last = priority
	}
}

func TestPriorityQueue_TiesInInsertionOrder(t *testing.T) {
	t.Parallel()
	pq := &PriorityQueue{}
	pq.Insert(Point{9, 9}, 5)
	for i := 0; i < 6; i++ {
		pq.Insert(Point{X: float64(i)}, 1)
	}

	for i := 0; i < 6; i++ {
		got, priority, _ := pq.ExtractMin()
		if got.X != float64(i) || priority != 1 {
			t.Errorf("extract %d: got %v at %v, want (%d, 0) at 1", i, got, priority, i)
		}
	}
	if got, _, _ := pq.ExtractMin(); got != (Point{9, 9}) {
		t.Errorf("last: got %v, want (9, 9)", got)
	}
}

func TestPriorityQueue_Empty(t *testing.T) {
	t.Parallel()
	pq := &PriorityQueue{}
	if _, _, ok := pq.ExtractMin(); ok {
		t.Error("ExtractMin on empty queue: want ok=false")
	}
	pq.Insert(Point{1, 1}, 3)
	pq.ExtractMin()
	if _, _, ok := pq.ExtractMin(); ok {
		t.Error("ExtractMin after drain: want ok=false")
	}
}
