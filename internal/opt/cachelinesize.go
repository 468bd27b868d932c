//go:build !lockbench_linesize_32 && !lockbench_linesize_64 && !lockbench_linesize_128 && !lockbench_linesize_256

package opt

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize_ is the assumed cache line width, used to pad hot atomics
// apart so two of them never share a line. Derived from golang.org/x/sys/cpu
// rather than hardcoded, since the padded types sized from it (TicketLock's
// counters, MCS queue nodes, per-worker result slots) run on whatever
// architecture the benchmark is built for.
const CacheLineSize_ = unsafe.Sizeof(cpu.CacheLinePad{})
