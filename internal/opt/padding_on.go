//go:build !lockbench_disable_padding

package opt

import (
	"sync/atomic"
	"unsafe"
)

// Padded64 is an atomic 64-bit counter padded out to its own cache line.
//
// It backs the per-worker result slots in the harness (TicketLock's
// counters and the MCS queue nodes pad themselves inline with
// CacheLineSize_ instead): two of these living in the same slice or struct
// must never share a cache line, or the workers writing them serialize on
// the cache coherency protocol instead of running in parallel.
//
// Padding is enabled by default and can be turned off with the
// lockbench_disable_padding build tag to reproduce false-sharing for
// comparison.
type Padded64 struct {
	V atomic.Uint64
	_ [(CacheLineSize_ - unsafe.Sizeof(atomic.Uint64{})%CacheLineSize_) % CacheLineSize_]byte
}
