//go:build linux

package lockbench

import (
	"runtime"

	"golang.org/x/sys/unix"

	"github.com/mprilop/lockbench/internal/xlog"
)

// pinToCPU best-effort pins the calling goroutine to a single CPU, by
// locking it to its current OS thread and then setting that thread's
// affinity mask. Failure is non-fatal: it is logged and ignored, since a
// pin refusal should never abort a run.
func pinToCPU(cpu int) {
	runtime.LockOSThread()

	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)

	if err := unix.SchedSetaffinity(0, &set); err != nil {
		xlog.Default().Warn("cpu pin refused", "cpu", cpu, "error", err)
	}
}
