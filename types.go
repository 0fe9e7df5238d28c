// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

// Queue is the combined producer-consumer interface for the hand-off queue.
//
// The interface intentionally excludes length and capacity: the queue is
// unbounded, and accurate counts in lock-free structures require expensive
// cross-core synchronization. Track counts in application logic when needed.
//
// Example:
//
//	var q handoff.Queue[Event] = handoff.NewMPSC[Event]()
//
//	// Any producer goroutine
//	ev := Event{...}
//	_ = q.Enqueue(&ev)
//
//	// The single consumer goroutine
//	ev, err := q.Dequeue()
//	if err == nil {
//	    handle(ev)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]

	// Close drains the queue and retires the final sentinel.
	// Consumer-side; all producers must have quiesced first, and the
	// queue must not be used afterwards.
	Close()
}

// Producer is the interface handed to enqueueing goroutines.
//
// The element is passed by pointer to avoid copying large structs at the
// call boundary; the queue copies the pointed-to value into its own node,
// so the original can be reused after Enqueue returns. Any number of
// goroutines may call Enqueue concurrently.
type Producer[T any] interface {
	// Enqueue adds an element to the queue (non-blocking, wait-free).
	// Returns nil on success, ErrAllocFailed if the node allocator is
	// exhausted. An unbounded queue never reports full.
	Enqueue(elem *T) error
}

// Consumer is the interface for the single designated consumer goroutine.
//
// All Consumer operations must be called from one goroutine at a time;
// concurrent calls are a race. This is a contract, not an enforced check:
// the hot path carries no guard against misuse.
type Consumer[T any] interface {
	// Dequeue removes and returns the oldest element (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if nothing is consumable.
	Dequeue() (T, error)

	// Clear drains the queue without returning elements, freeing every
	// drained node. Used during shutdown.
	Clear()
}
