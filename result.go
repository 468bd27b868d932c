package lockbench

import "github.com/mprilop/lockbench/internal/opt"

// PerWorkerResult is a single worker's completed-round count. Each slot in
// a Run's result slice is written exactly once, by its owning worker, when
// that worker exits its measurement loop, and read only after that worker
// has been joined, so there is never a concurrent reader and writer. The
// count is nonetheless kept atomic (opt.Padded64 wraps an atomic.Uint64),
// and the slots are cache-line padded regardless: N adjacent slots being
// written by N different cores at once is exactly the false-sharing case
// padding exists to prevent. Nothing checks the single-writer invariant at
// run time, and because the accesses are atomic the race detector does
// not report a second writer either.
type PerWorkerResult struct {
	opt.Padded64
}

func (r *PerWorkerResult) set(count uint64) {
	r.V.Store(count)
}

// Count returns the worker's completed-round total. Only valid after the
// owning worker has been joined.
func (r *PerWorkerResult) Count() uint64 {
	return r.V.Load()
}
