// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff_test

import (
	"testing"

	"code.hybscloud.com/handoff"
)

// TestHeapAllocator covers the default backend's edge cases.
func TestHeapAllocator(t *testing.T) {
	var a handoff.HeapAllocator[handoff.Node[int]]

	if p := a.Allocate(0); p != nil {
		t.Fatal("Allocate(0): got non-nil, want nil")
	}
	if p := a.Allocate(-1); p != nil {
		t.Fatal("Allocate(-1): got non-nil, want nil")
	}
	if p := a.Allocate(1); p == nil {
		t.Fatal("Allocate(1): got nil")
	}
	p := a.Allocate(4)
	if p == nil {
		t.Fatal("Allocate(4): got nil")
	}
	a.Deallocate(p, 4) // no-op
	a.Deallocate(nil, 1)
}

// TestPoolAllocatorRecycles verifies that freed nodes are reused and that
// recycled nodes do not poison a queue built on top of the pool.
func TestPoolAllocatorRecycles(t *testing.T) {
	alloc := handoff.NewPoolAllocator[handoff.Node[int]]()
	q := handoff.NewMPSCWithAllocator[int](alloc)
	defer q.Close()

	// Churn the same queue to force node recycling through the pool.
	for round := range 10 {
		for i := range 100 {
			v := round*100 + i
			if err := q.Enqueue(&v); err != nil {
				t.Fatalf("Enqueue: %v", err)
			}
		}
		for i := range 100 {
			val, err := q.Dequeue()
			if err != nil {
				t.Fatalf("Dequeue: %v", err)
			}
			if val != round*100+i {
				t.Fatalf("round %d: got %d, want %d", round, val, round*100+i)
			}
		}
	}
}

// TestPoolAllocatorEdges covers out-of-range and multi-object requests.
func TestPoolAllocatorEdges(t *testing.T) {
	alloc := handoff.NewPoolAllocator[handoff.Node[int]]()

	if p := alloc.Allocate(0); p != nil {
		t.Fatal("Allocate(0): got non-nil, want nil")
	}
	if p := alloc.Allocate(3); p == nil {
		t.Fatal("Allocate(3): got nil, want heap fallback")
	}
	alloc.Deallocate(nil, 1)
}

// TestCountingAllocator verifies accounting and nil handling.
func TestCountingAllocator(t *testing.T) {
	alloc := handoff.NewCountingAllocator(handoff.HeapAllocator[handoff.Node[int]]{})

	p := alloc.Allocate(1)
	if p == nil {
		t.Fatal("Allocate(1): got nil")
	}
	if alloc.Allocs() != 1 || alloc.Deallocs() != 0 || alloc.Live() != 1 {
		t.Fatalf("counters after alloc: allocs=%d deallocs=%d live=%d",
			alloc.Allocs(), alloc.Deallocs(), alloc.Live())
	}

	// Failed allocations do not count.
	if alloc.Allocate(-1) != nil {
		t.Fatal("Allocate(-1): got non-nil")
	}
	if alloc.Allocs() != 1 {
		t.Fatalf("failed allocation counted: allocs=%d", alloc.Allocs())
	}

	// Nil deallocations do not count.
	alloc.Deallocate(nil, 1)
	if alloc.Deallocs() != 0 {
		t.Fatalf("nil deallocation counted: deallocs=%d", alloc.Deallocs())
	}

	alloc.Deallocate(p, 1)
	if alloc.Live() != 0 {
		t.Fatalf("Live after full cycle: got %d, want 0", alloc.Live())
	}
}

// TestCountingAllocatorNilInnerPanics verifies the construction contract.
func TestCountingAllocatorNilInnerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewCountingAllocator(nil) did not panic")
		}
	}()
	handoff.NewCountingAllocator[handoff.Node[int]](nil)
}
