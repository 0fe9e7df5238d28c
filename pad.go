// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

// pad is cache line padding to prevent false sharing. The head cursor
// (producer-side), tail cursor (consumer-side) and allocator state live on
// separate cache lines so producer traffic does not invalidate the
// consumer's line and vice versa.
type pad [64]byte
