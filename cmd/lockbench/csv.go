package main

import (
	"encoding/csv"
	"fmt"
	"time"
)

// csvHeader is the fixed column order a downstream plotting script
// expects.
var csvHeader = []string{
	"task", "lock", "threads", "duration", "repeats",
	"cpu_parallel_iters", "cpu_locked_iters", "avg_ops", "ops_s",
}

// cellRow is one sweep cell's aggregated result, ready to format as a CSV
// row.
type cellRow struct {
	task          string
	lock          string
	threads       int
	duration      time.Duration
	repeats       int
	parallelIters int
	lockedIters   int
	avgOps        float64
	opsPerSec     float64
}

func (r cellRow) record() []string {
	return []string{
		r.task,
		r.lock,
		fmt.Sprintf("%d", r.threads),
		fmt.Sprintf("%g", r.duration.Seconds()),
		fmt.Sprintf("%d", r.repeats),
		fmt.Sprintf("%d", r.parallelIters),
		fmt.Sprintf("%d", r.lockedIters),
		fmt.Sprintf("%.2f", r.avgOps),
		fmt.Sprintf("%.2f", r.opsPerSec),
	}
}

func writeRow(w *csv.Writer, row cellRow) error {
	return w.Write(row.record())
}
