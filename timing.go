package lockbench

import "sync/atomic"

// sharedTiming is the control block every worker of a single Run shares:
// a ready count so the main goroutine knows every worker has reached the
// start line, a start flag to release them all at once, and a stop flag to
// end the run. duration is published once, before start is set, and is
// read-only for the remainder of the run. Go's memory model gives that
// plain write a happens-before edge into every worker that observes start
// become true, because the store to start and the loads that see it are
// both atomic.
type sharedTiming struct {
	_        noCopy
	ready    atomic.Int32
	start    atomic.Bool
	stop     atomic.Bool
	duration int64 // nanoseconds; written once before start is set
}
