// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

import "sync/atomic"

// Node is one link in the queue's intrusive chain: the element plus its
// successor pointer. The type is exported so that custom allocators can be
// written against the queue's node representation, but its fields are opaque.
//
// Lifecycle: a producer allocates and fills a Node during Enqueue; the single
// consumer retires it back to the allocator after the element has been
// consumed (or during Clear/Close). Producers never read or free nodes.
type Node[T any] struct {
	data T
	next atomic.Pointer[Node[T]]
}

// MPSC is an unbounded multi-producer single-consumer intrusive queue.
//
// Producers publish with a single unconditional swap on head (XCHG-based,
// wait-free: one atomic RMW per Enqueue, no retry loop), then link the
// previous head. The consumer owns tail, which always points at a retired
// sentinel node; the first consumable element is tail.next.
//
// Between a producer's head swap and its next-link store there is a short
// window in which the new node is reachable from head but not yet traversable
// from tail. A concurrent Dequeue observing that window reports empty. The
// window is bounded by the producer's own instruction sequence and resolves
// without waiting on any other goroutine.
//
// Memory: one node per element plus one sentinel, allocator-owned.
type MPSC[T any] struct {
	_     pad
	head  atomic.Pointer[Node[T]] // Newest linked node (producers swap)
	_     pad
	tail  atomic.Pointer[Node[T]] // Retired sentinel (consumer only)
	_     pad
	alloc Allocator[Node[T]]
	_     pad
}

// NewMPSC creates an unbounded MPSC queue backed by the built-in heap
// allocator.
func NewMPSC[T any]() *MPSC[T] {
	return NewMPSCWithAllocator[T](HeapAllocator[Node[T]]{})
}

// NewMPSCWithAllocator creates an unbounded MPSC queue backed by the given
// node allocator.
//
// The allocator is called by producer goroutines (Allocate) and by the
// consumer goroutine (Deallocate) and must be safe for that access pattern.
// Panics if alloc is nil or if the sentinel allocation fails.
func NewMPSCWithAllocator[T any](alloc Allocator[Node[T]]) *MPSC[T] {
	if alloc == nil {
		panic("handoff: nil allocator")
	}

	// The initial sentinel carries no element; it is the retired node the
	// chain is never without. Nobody can observe the queue yet, so plain
	// stores suffice.
	sentinel := alloc.Allocate(1)
	if sentinel == nil {
		panic("handoff: sentinel allocation failed")
	}
	sentinel.next.Store(nil)

	q := &MPSC[T]{alloc: alloc}
	q.head.Store(sentinel)
	q.tail.Store(sentinel)
	return q
}

// Enqueue adds an element to the queue (multiple producers safe).
// The element is copied into a freshly allocated node.
//
// Enqueue never blocks and never waits on another producer's progress.
// Returns ErrAllocFailed if the allocator is exhausted; the queue state is
// untouched in that case.
func (q *MPSC[T]) Enqueue(elem *T) error {
	n := q.alloc.Allocate(1)
	if n == nil {
		return ErrAllocFailed
	}
	n.data = *elem
	n.next.Store(nil) // recycled nodes may carry a stale link

	// Publication point: the swap makes n the newest node in the chain.
	// It cannot fail and is independent of other producers.
	prev := q.head.Swap(n)

	// Traversability point: until this store completes, the consumer sees
	// prev as the end of the chain and reports empty past it.
	prev.next.Store(n)
	return nil
}

// Dequeue removes and returns the oldest element (single consumer only).
// Returns (zero-value, ErrWouldBlock) if no element is consumable right now,
// covering both a truly empty queue and an in-flight Enqueue that has swapped
// head but not yet linked.
//
// The node that held the returned element becomes the new sentinel; the old
// sentinel is retired to the allocator. A node is therefore freed exactly
// once, and only after tail has advanced past it.
func (q *MPSC[T]) Dequeue() (T, error) {
	tail := q.tail.Load()
	next := tail.next.Load()
	if next == nil {
		var zero T
		return zero, ErrWouldBlock
	}

	elem := next.data
	var zero T
	next.data = zero // next is the new sentinel; drop its payload for GC
	q.tail.Store(next)

	tail.next.Store(nil)
	q.alloc.Deallocate(tail, 1)
	return elem, nil
}

// Clear drains the queue without materializing elements (single consumer
// only), retiring every drained node to the allocator. After Clear the queue
// is observably identical to a freshly constructed one.
func (q *MPSC[T]) Clear() {
	tail := q.tail.Load()
	for {
		next := tail.next.Load()
		if next == nil {
			return
		}
		var zero T
		next.data = zero
		q.tail.Store(next)

		tail.next.Store(nil)
		q.alloc.Deallocate(tail, 1)
		tail = next
	}
}

// Close drains the queue and retires the final sentinel, returning all nodes
// to the allocator.
//
// Precondition: all producers have quiesced and none will enqueue again; the
// queue must not be used after Close. This is documented, not enforced;
// violating it is a use-after-free on the retired sentinel. An Enqueue still
// inside its publication window when Close runs leaves that node unlinked
// and never freed.
func (q *MPSC[T]) Close() {
	q.Clear()
	q.alloc.Deallocate(q.tail.Load(), 1)
}
