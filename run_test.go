package lockbench

import (
	"testing"
	"time"
)

// TestRunS1 is scenario S1: a single mutex worker running do_nothing for
// half a second completes at least one round.
func TestRunS1(t *testing.T) {
	total, err := Run(Mutex, DoNothingTask{}, 1, 500*time.Millisecond)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if total == 0 {
		t.Fatal("total_ops = 0, want > 0")
	}
}

// TestRunS3 is scenario S3: MCS and the mutex baseline each run under 32
// threads and both totals are logged side by side. Only the MCS total is
// asserted (nonzero); no throughput inequality between the two is checked.
// The mutual-exclusion half of S3 is covered at n=32 by the counter-based
// check from property 1.
func TestRunS3(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping throughput comparison in -short mode")
	}
	const threads = 32
	const duration = 300 * time.Millisecond

	mutexTotal, err := Run(Mutex, DoNothingTask{}, threads, duration)
	if err != nil {
		t.Fatalf("Run(mutex): %v", err)
	}
	mcsTotal, err := Run(Mcs, DoNothingTask{}, threads, duration)
	if err != nil {
		t.Fatalf("Run(mcs): %v", err)
	}
	t.Logf("mutex=%d mcs=%d", mutexTotal, mcsTotal)
	// This is a smoke comparison, not a strict inequality: on a
	// low-core-count CI runner MCS's queueing overhead can outweigh its
	// scalability benefit relative to the (already quite fast) runtime
	// mutex. We only assert both completed meaningful work.
	if mcsTotal == 0 {
		t.Fatal("mcs total_ops = 0, want > 0")
	}
}

// TestRunS4 is scenario S4: 64 TAS-spinlock workers run for a full window
// and none of them starves for the whole window (every per-worker slot is
// nonzero).
func TestRunS4(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 64-worker run in -short mode")
	}
	perWorker, total, err := RunDetail(Tas, DoNothingTask{}, 64, 300*time.Millisecond)
	if err != nil {
		t.Fatalf("RunDetail: %v", err)
	}
	if total == 0 {
		t.Fatal("total_ops = 0, want > 0")
	}
	for i, c := range perWorker {
		if c == 0 {
			t.Errorf("worker %d completed 0 rounds (starved)", i)
		}
	}
}

// TestRunNoOvershoot is testable property 3: elapsed wall time for a Run
// call lands in [D, D+epsilon], where epsilon is generous enough to absorb
// goroutine scheduling jitter plus the bounded per-worker overshoot
// (up to 64 rounds, each a parallel phase plus one critical section).
func TestRunNoOvershoot(t *testing.T) {
	const duration = 200 * time.Millisecond
	start := now()
	_, err := Run(Ticket, DoNothingTask{}, 4, duration)
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if elapsed < duration {
		t.Fatalf("elapsed %v < duration %v", elapsed, duration)
	}
	const epsilon = 150 * time.Millisecond
	if elapsed > duration+epsilon {
		t.Fatalf("elapsed %v exceeds duration+epsilon (%v)", elapsed, duration+epsilon)
	}
}

// TestRunSingleWriterPerSlot is testable property 4: each result slot is
// written exactly once, only by its owner. PerWorkerResult.set is an
// atomic store, which the race detector does not report, so a second write
// to a slot is not observable here; the test checks the straightforward
// invariant that slot count matches worker count and every slot was
// touched (nonzero after a run long enough to guarantee progress).
func TestRunSingleWriterPerSlot(t *testing.T) {
	perWorker, _, err := RunDetail(Mutex, DoNothingTask{}, 8, 200*time.Millisecond)
	if err != nil {
		t.Fatalf("RunDetail: %v", err)
	}
	if len(perWorker) != 8 {
		t.Fatalf("len(perWorker) = %d, want 8", len(perWorker))
	}
	for i, c := range perWorker {
		if c == 0 {
			t.Errorf("worker %d slot never written", i)
		}
	}
}

// TestRunIdempotentCpuBurn is testable property 6: two back-to-back Run
// calls with the same cpu_burn configuration produce totals within a
// small factor of each other on an otherwise-quiescent test machine.
func TestRunIdempotentCpuBurn(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping repeat-run comparison in -short mode")
	}
	task := CpuBurnTask{ParallelIters: 512, LockedIters: 16}
	const duration = 200 * time.Millisecond

	first, err := Run(Ticket, task, 4, duration)
	if err != nil {
		t.Fatalf("Run (first): %v", err)
	}
	second, err := Run(Ticket, task, 4, duration)
	if err != nil {
		t.Fatalf("Run (second): %v", err)
	}
	if first == 0 || second == 0 {
		t.Fatalf("totals must be nonzero: first=%d second=%d", first, second)
	}
	ratio := float64(second) / float64(first)
	if ratio < 0.5 || ratio > 2.0 {
		t.Fatalf("totals differ by more than 2x: first=%d second=%d ratio=%.2f", first, second, ratio)
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	if _, err := Run(Mutex, DoNothingTask{}, 0, time.Second); err != ErrInvalidThreads {
		t.Fatalf("threads=0: err = %v, want ErrInvalidThreads", err)
	}
	if _, err := Run(Mutex, DoNothingTask{}, 1, 0); err != ErrInvalidDuration {
		t.Fatalf("duration=0: err = %v, want ErrInvalidDuration", err)
	}
	if _, err := Run(LockKind(99), DoNothingTask{}, 1, time.Second); err == nil {
		t.Fatal("unknown lock kind: want error")
	}
}
