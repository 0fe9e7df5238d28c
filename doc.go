// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package handoff provides an unbounded multi-producer single-consumer
// FIFO queue built on atomic pointer operations.
//
// The queue solves the "many writers feed one reader" hand-off problem of
// event pipelines, logging fan-in, and work-distribution front-ends without
// serializing producers against each other. Elements live in an intrusive
// singly-linked chain of allocator-owned nodes; producers publish with a
// single unconditional atomic swap (wait-free, no CAS retry loop) and the
// lone consumer advances a sentinel cursor along the chain.
//
// # Quick Start
//
//	q := handoff.NewMPSC[Event]()
//
//	// Producers (any number of goroutines)
//	ev := Event{...}
//	if err := q.Enqueue(&ev); err != nil {
//	    // allocator exhausted; with the default heap allocator this
//	    // never happens
//	}
//
//	// Consumer (exactly one goroutine)
//	ev, err := q.Dequeue()
//	if handoff.IsWouldBlock(err) {
//	    // nothing consumable right now
//	}
//
// # Common Patterns
//
// Event Aggregation (many sources, one processor):
//
//	q := handoff.NewMPSC[Event]()
//
//	for sensor := range slices.Values(sensors) {
//	    go func(s Sensor) {
//	        for ev := range s.Events() {
//	            q.Enqueue(&ev)
//	        }
//	    }(sensor)
//	}
//
//	go func() {
//	    backoff := iox.Backoff{}
//	    for {
//	        ev, err := q.Dequeue()
//	        if err != nil {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        aggregate(ev)
//	    }
//	}()
//
// Stoppable consumer loop with shutdown drain:
//
//	var stop atomix.Bool
//
//	go func() {
//	    backoff := iox.Backoff{}
//	    for !stop.Load() {
//	        elem, err := q.Dequeue()
//	        if err != nil {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        process(elem)
//	    }
//	    // Producers are stopped by now; drain the remainder.
//	    for {
//	        elem, err := q.Dequeue()
//	        if err != nil {
//	            break
//	        }
//	        process(elem)
//	    }
//	    q.Close()
//	}()
//
// # Ordering Guarantees
//
// Within one producer goroutine, successive Enqueues are observed by the
// consumer in the order issued. Across different producers no relative
// ordering is defined; the interleaving of concurrent Enqueues is arbitrary.
// Every linked element is observed exactly once: only the consumer advances
// tail, and only forward.
//
// # The Publication Window
//
// Enqueue publishes in two steps: an atomic swap of head (the node now
// exists in the chain) followed by a store into the previous head's next
// link (the node is now traversable from the consumer side). Between the
// two steps a concurrent Dequeue sees the chain end early and returns
// ErrWouldBlock even though an Enqueue is in flight. The window is bounded
// by the producer's own instruction sequence, not by any other goroutine's
// progress, and the element becomes consumable as soon as the link lands.
//
// Callers that require an Enqueue to be immediately visible to the consumer
// once it returns need a CAS-linking queue instead; this package keeps the
// faster swap-then-link behavior.
//
// # Node Allocation
//
// The queue consumes a minimal [Allocator] capability: Allocate(n) returning
// a pointer (nil on failure) and Deallocate(p, n). Producers only allocate;
// the consumer only frees. Node lifetime is therefore statically disciplined
// with no reference counting: a producer owns its node until the link store,
// the consumer owns every node from link until retirement.
//
// Backends provided here:
//
//	HeapAllocator     - GC heap, Deallocate is a no-op (default, safe)
//	PoolAllocator     - sync.Pool node recycling, safe for MPSC traffic
//	CountingAllocator - accounting middleware for leak detection
//
// The companion package [code.hybscloud.com/handoff/slab] holds an
// experimental fixed-block allocator. It is not goroutine-safe and must not
// back a concurrently used queue; prefer HeapAllocator or PoolAllocator.
//
// # Error Handling
//
// Dequeue signals emptiness with [ErrWouldBlock], sourced from
// [code.hybscloud.com/iox] for ecosystem consistency. Emptiness is a normal
// result, not a failure; pair it with iox.Backoff in poll loops. Enqueue
// fails only when the allocator does, reported as [ErrAllocFailed] and never
// retried internally.
//
//	handoff.IsWouldBlock(err)  // true if nothing was consumable
//	handoff.IsSemantic(err)    // true if control flow signal
//	handoff.IsNonFailure(err)  // true for nil or ErrWouldBlock
//
// # Thread Safety
//
// Enqueue is safe from any number of goroutines. Dequeue, Clear and Close
// belong to exactly one consumer goroutine; there is no internal guard, and
// concurrent consumer calls are a race. Close additionally requires all
// producers to have quiesced. These contracts are documented rather than
// enforced to keep the hot path free of extra synchronization.
//
// # Memory Ordering
//
// Go's sync/atomic operations are sequentially consistent, which subsumes
// the acquire/release pairing this algorithm needs: a consumer that observes
// a producer's link store also observes the producer's prior write of the
// node's data. Because synchronization runs entirely through sync/atomic,
// the race detector tracks it correctly and concurrent tests run clean
// under -race (they only shrink their workloads, see RaceEnabled).
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// [code.hybscloud.com/atomix] for atomic counters with explicit ordering;
// tests additionally use [code.hybscloud.com/spin] for CPU pause
// instructions in poll loops.
package handoff
