package lockbench

import "sync"

// StdMutexLock delegates to the platform's blocking mutex (sync.Mutex,
// itself backed by the Go runtime's futex-based implementation). It exists
// as a baseline: "hand it to the OS/runtime scheduler" rather than spin in
// user space. Fairness is whatever sync.Mutex provides: it starts unfair
// (a newcomer may barge ahead of a woken waiter) and switches to a strict
// FIFO handoff once a waiter has been starved past a threshold.
//
// No spinning is required of callers; a blocked goroutine is descheduled.
type StdMutexLock struct {
	_  noCopy
	mu sync.Mutex
}

func (l *StdMutexLock) Lock(_ *Node) {
	l.mu.Lock()
}

func (l *StdMutexLock) Unlock(_ *Node) {
	l.mu.Unlock()
}
