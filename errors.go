// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates that Dequeue found nothing consumable.
//
// This covers both a truly empty queue and the publication window of an
// in-flight Enqueue that has swapped head but not yet linked its node.
// It is a control flow signal, not a failure: the consumer retries later
// (with backoff or yield) or moves on.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for running {
//	    elem, err := q.Dequeue()
//	    if handoff.IsWouldBlock(err) {
//	        backoff.Wait()
//	        continue
//	    }
//	    backoff.Reset()
//	    process(elem)
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// ErrAllocFailed indicates that the node allocator could not serve an
// Enqueue. Unlike ErrWouldBlock it is a genuine failure: the element was not
// enqueued and will not appear later. The queue state is unchanged; no
// partial node is ever visible to the consumer.
//
// The error is not retried internally. With the default HeapAllocator it
// never occurs.
var ErrAllocFailed = errors.New("handoff: node allocation failed")

// IsWouldBlock reports whether err indicates that nothing was consumable.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic]. ErrAllocFailed is not semantic.
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil or ErrWouldBlock. Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
