// Command lockbench sweeps a Cartesian product of lock kinds and thread
// counts against the lockbench measurement core, repeats each cell, and
// emits a CSV row per cell. CLI parsing, the sweep loop and CSV formatting
// live here, outside the measurement core; no plotting is done here.
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mprilop/lockbench"
	"github.com/mprilop/lockbench/internal/xlog"
)

// Exit codes:
//
//	0 success
//	1 argument parse error
//	2 unknown lock kind
//	3 unknown task
//	4 empty thread set
//	5 failed to open CSV file
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("lockbench", flag.ContinueOnError)
	fs.SetOutput(stderr)

	locksFlag := fs.String("locks", "mutex,tas,tas_preload,ticket,ticket_preload,mcs,mcs_preload",
		"comma-separated lock kinds to sweep")
	taskFlag := fs.String("task", "do_nothing", "task kind: do_nothing or cpu_burn")
	parallelItersFlag := fs.Int("parallel-iters", 256, "cpu_burn parallel-phase xorshift iterations")
	lockedItersFlag := fs.Int("locked-iters", 32, "cpu_burn locked-phase xorshift iterations")
	threadSpecFlag := fs.String("B", "1-4:1", "thread set, e.g. 1-4:1,8-16:8")
	durationFlag := fs.Float64("duration", 1.0, "seconds per run")
	repeatsFlag := fs.Int("repeats", 5, "repeats per (lock,threads) cell")
	outFlag := fs.String("out", "", "CSV output path (default stdout)")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *durationFlag <= 0 {
		fmt.Fprintln(stderr, lockbench.ErrInvalidDuration)
		return 1
	}

	threads, err := parseThreadSet(*threadSpecFlag)
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, ErrEmptyThreadSet) {
			return 4
		}
		return 1
	}

	var kinds []lockbench.LockKind
	for _, name := range strings.Split(*locksFlag, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		k, err := lockbench.ParseLockKind(name)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		kinds = append(kinds, k)
	}

	task, parallelIters, lockedIters, err := buildTask(*taskFlag, *parallelItersFlag, *lockedItersFlag)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}

	out := stdout
	if *outFlag != "" {
		f, err := os.Create(*outFlag)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 5
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write(csvHeader); err != nil {
		fmt.Fprintln(stderr, err)
		return 5
	}

	duration := time.Duration(*durationFlag * float64(time.Second))

	for _, kind := range kinds {
		for _, n := range threads {
			totals := make([]uint64, *repeatsFlag)
			for i := range totals {
				total, err := lockbench.Run(kind, task, n, duration)
				if err != nil {
					xlog.Default().Error("run failed", "lock", kind.String(), "threads", n, "error", err)
					return 1
				}
				totals[i] = total
			}
			avg, opsPerSec := lockbench.Aggregate(totals, duration)
			row := cellRow{
				task:          task.Name(),
				lock:          kind.String(),
				threads:       n,
				duration:      duration,
				repeats:       *repeatsFlag,
				parallelIters: parallelIters,
				lockedIters:   lockedIters,
				avgOps:        avg,
				opsPerSec:     opsPerSec,
			}
			if err := writeRow(w, row); err != nil {
				fmt.Fprintln(stderr, err)
				return 5
			}
			xlog.Default().Info("cell complete",
				"lock", kind.String(), "threads", n, "avg_ops", avg, "ops_s", opsPerSec)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Fprintln(stderr, err)
		return 5
	}
	return 0
}

// buildTask constructs the Task named by taskName, returning the
// cpu_parallel_iters/cpu_locked_iters CSV columns alongside it (0, 0 for
// do_nothing, which carries no iteration counts).
func buildTask(taskName string, parallelIters, lockedIters int) (lockbench.Task, int, int, error) {
	switch taskName {
	case "do_nothing":
		return lockbench.DoNothingTask{}, 0, 0, nil
	case "cpu_burn":
		return lockbench.CpuBurnTask{ParallelIters: parallelIters, LockedIters: lockedIters}, parallelIters, lockedIters, nil
	default:
		return nil, 0, 0, fmt.Errorf("%w: %q", lockbench.ErrUnknownTask, taskName)
	}
}
