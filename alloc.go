// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

import (
	"sync"

	"code.hybscloud.com/atomix"
)

// Allocator is the minimal allocation capability consumed by MPSC.
//
// The contract is two calls wide and structural: any provider with matching
// methods plugs in. Allocate returns a pointer to n contiguous zero-usable
// objects, or nil when it cannot serve the request; it must not panic on
// exhaustion. Deallocate returns n objects starting at p; p may be nil, in
// which case the call is a no-op.
//
// With MPSC, Allocate is invoked by producer goroutines and Deallocate by
// the single consumer goroutine. A stateful allocator must be safe for that
// access pattern; the queue adds no locking around allocator calls.
type Allocator[N any] interface {
	// Allocate returns a pointer to n objects, or nil on failure.
	Allocate(n int) *N

	// Deallocate returns n objects starting at p to the allocator.
	Deallocate(p *N, n int)
}

// HeapAllocator allocates from the garbage-collected heap. It is the default
// backend for NewMPSC and safe for any access pattern.
//
// Deallocate is a no-op: retired objects become unreachable and the GC
// reclaims them.
type HeapAllocator[N any] struct{}

// Allocate returns a pointer to n zeroed objects, or nil if n < 1.
func (HeapAllocator[N]) Allocate(n int) *N {
	switch {
	case n < 1:
		return nil
	case n == 1:
		return new(N)
	default:
		s := make([]N, n)
		return &s[0]
	}
}

// Deallocate does nothing; the GC reclaims unreachable objects.
func (HeapAllocator[N]) Deallocate(*N, int) {}

// PoolAllocator recycles single objects through a sync.Pool, reducing GC
// pressure under sustained enqueue/dequeue traffic. Multi-object requests
// fall through to the heap and are not recycled.
//
// sync.Pool is goroutine-safe, so PoolAllocator supports the queue's
// producers-allocate/consumer-frees pattern.
type PoolAllocator[N any] struct {
	pool sync.Pool
}

// NewPoolAllocator creates a PoolAllocator.
func NewPoolAllocator[N any]() *PoolAllocator[N] {
	return &PoolAllocator[N]{pool: sync.Pool{New: func() any {
		return new(N)
	}}}
}

// Allocate returns a pooled object for n == 1, a heap allocation for n > 1,
// and nil if n < 1.
func (a *PoolAllocator[N]) Allocate(n int) *N {
	switch {
	case n < 1:
		return nil
	case n == 1:
		return a.pool.Get().(*N)
	default:
		s := make([]N, n)
		return &s[0]
	}
}

// Deallocate returns a single object to the pool. The caller must not touch
// the object afterwards: a concurrent Allocate may already own it.
func (a *PoolAllocator[N]) Deallocate(p *N, n int) {
	if p == nil || n != 1 {
		return
	}
	a.pool.Put(p)
}

// CountingAllocator wraps another Allocator with allocation accounting.
// Counters are atomic and may be read from any goroutine, so the wrapper
// preserves the inner allocator's safety for the producers-allocate/
// consumer-frees pattern.
//
// Useful for leak detection: after a full drain and Close, Live reports 0
// when every node (sentinels included) has been returned.
type CountingAllocator[N any] struct {
	inner    Allocator[N]
	allocs   atomix.Int64
	deallocs atomix.Int64
}

// NewCountingAllocator wraps inner with accounting. Panics if inner is nil.
func NewCountingAllocator[N any](inner Allocator[N]) *CountingAllocator[N] {
	if inner == nil {
		panic("handoff: nil inner allocator")
	}
	return &CountingAllocator[N]{inner: inner}
}

// Allocate delegates to the inner allocator, counting successful requests.
func (a *CountingAllocator[N]) Allocate(n int) *N {
	p := a.inner.Allocate(n)
	if p != nil {
		a.allocs.Add(int64(n))
	}
	return p
}

// Deallocate delegates to the inner allocator, counting returned objects.
func (a *CountingAllocator[N]) Deallocate(p *N, n int) {
	if p == nil {
		return
	}
	a.inner.Deallocate(p, n)
	a.deallocs.Add(int64(n))
}

// Allocs returns the total number of objects allocated so far.
func (a *CountingAllocator[N]) Allocs() int64 { return a.allocs.Load() }

// Deallocs returns the total number of objects deallocated so far.
func (a *CountingAllocator[N]) Deallocs() int64 { return a.deallocs.Load() }

// Live returns the number of objects allocated but not yet deallocated.
func (a *CountingAllocator[N]) Live() int64 { return a.allocs.Load() - a.deallocs.Load() }
