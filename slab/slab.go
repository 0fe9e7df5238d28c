// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package slab provides an experimental fixed-block allocator.
//
// The allocator carves objects out of grow-only pools and recycles freed
// blocks through a LIFO free list. It satisfies the handoff.Allocator
// capability shape and can back a queue whose producers and consumer run on
// the same goroutine (or are externally synchronized).
//
// EXPERIMENTAL: the allocator is NOT goroutine-safe. Backing a concurrently
// used queue with it is a race. It also never returns pool memory while
// alive. Prefer handoff.HeapAllocator or handoff.PoolAllocator for anything
// load-bearing.
package slab

import "unsafe"

// DefaultBlocksPerPool is the pool granularity used by New when the caller
// passes a non-positive value.
const DefaultBlocksPerPool = 64

// Allocator is a fixed-block allocator over objects of type N.
//
// Pools of blocksPerPool objects are appended as needed and never released.
// Single-block requests are served from the free list first.
type Allocator[N any] struct {
	pools         [][]N
	free          []*N
	blockIdx      int
	blocksPerPool int
}

// New creates a slab allocator growing in pools of blocksPerPool objects.
// Non-positive values select DefaultBlocksPerPool.
func New[N any](blocksPerPool int) *Allocator[N] {
	if blocksPerPool <= 0 {
		blocksPerPool = DefaultBlocksPerPool
	}
	return &Allocator[N]{blocksPerPool: blocksPerPool}
}

// Allocate returns a pointer to n contiguous objects, or nil when n is out
// of range. Requests larger than one pool cannot be served contiguously and
// fail. Recycled blocks keep their previous contents; the caller initializes
// every field it reads, like the queue does with its node links.
func (a *Allocator[N]) Allocate(n int) *N {
	if n < 1 || n > a.blocksPerPool {
		return nil
	}
	if n == 1 && len(a.free) > 0 {
		p := a.free[len(a.free)-1]
		a.free = a.free[:len(a.free)-1]
		return p
	}
	if len(a.pools) == 0 || a.blockIdx+n > a.blocksPerPool {
		a.pools = append(a.pools, make([]N, a.blocksPerPool))
		a.blockIdx = 0
	}
	pool := a.pools[len(a.pools)-1]
	p := &pool[a.blockIdx]
	a.blockIdx += n
	return p
}

// Deallocate pushes the n blocks starting at p onto the free list.
// p must have been returned by Allocate of this allocator; nil or
// non-positive n is a no-op.
func (a *Allocator[N]) Deallocate(p *N, n int) {
	if p == nil || n < 1 {
		return
	}
	// Blocks of a multi-object allocation are contiguous within one pool,
	// so each can rejoin the free list individually.
	size := unsafe.Sizeof(*p)
	for i := range n {
		a.free = append(a.free, (*N)(unsafe.Add(unsafe.Pointer(p), uintptr(i)*size)))
	}
}

// Live returns the number of blocks handed out and not yet freed.
func (a *Allocator[N]) Live() int {
	total := 0
	if n := len(a.pools); n > 0 {
		total = (n-1)*a.blocksPerPool + a.blockIdx
	}
	return total - len(a.free)
}
