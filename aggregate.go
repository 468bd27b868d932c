package lockbench

import "time"

// Aggregate computes the arithmetic mean of a cell's repeated Run totals
// and the derived ops/second. No median, no variance: statistical
// analysis beyond a plain mean is out of scope here.
func Aggregate(totals []uint64, duration time.Duration) (avgOps, opsPerSec float64) {
	if len(totals) == 0 {
		return 0, 0
	}
	var sum uint64
	for _, t := range totals {
		sum += t
	}
	avgOps = float64(sum) / float64(len(totals))
	opsPerSec = avgOps / duration.Seconds()
	return avgOps, opsPerSec
}
