package lockbench

import "time"

// now returns a monotonic timestamp. Go's time.Now() already carries a
// monotonic reading (since Go 1.9) that time.Since subtracts correctly
// even across wall-clock adjustments, so there is no need for the
// platform-specific tick sources (rdtsc, QueryPerformanceCounter,
// mach_absolute_time) a lower-level implementation would reach for.
func now() time.Time {
	return time.Now()
}
