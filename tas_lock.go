package lockbench

import (
	"sync/atomic"

	"github.com/mprilop/lockbench/internal/opt"
)

// TasSpinlock is a test-and-set spinlock: a single atomic word, 0 for free
// and 1 for held. Lock performs an atomic compare-and-swap that succeeds
// iff the previous value was 0; on failure it backs off and retries.
// Unlock stores 0.
//
// Fairness: none. A goroutine that just released the lock competes on
// equal footing with a fresh arriver for the next acquisition, so a waiter
// can in principle be starved indefinitely. This is a documented
// non-guarantee (see the ticket lock and MCS lock for FIFO alternatives),
// not a bug. It is lock-free (some goroutine always makes progress) but not
// starvation-free.
type TasSpinlock struct {
	_     noCopy
	state atomic.Uint32
}

func (l *TasSpinlock) Lock(_ *Node) {
	if l.state.CompareAndSwap(0, 1) {
		return
	}
	var spins int
	for !l.state.CompareAndSwap(0, 1) {
		opt.Delay(&spins)
	}
}

func (l *TasSpinlock) Unlock(_ *Node) {
	l.state.Store(0)
}

// TasSpinlockPreLoad is the same test-and-set spinlock, but it first reads
// the state word with a plain load and only attempts the compare-and-swap
// once that read comes back free. Under contention this avoids issuing a
// read-modify-write against a cache line every other core is also trying
// to invalidate, at no cost to correctness. It is still test-and-set, it
// just tests before it sets.
type TasSpinlockPreLoad struct {
	_     noCopy
	state atomic.Uint32
}

func (l *TasSpinlockPreLoad) Lock(_ *Node) {
	var spins int
	for {
		if l.state.Load() == 0 && l.state.CompareAndSwap(0, 1) {
			return
		}
		opt.Delay(&spins)
	}
}

func (l *TasSpinlockPreLoad) Unlock(_ *Node) {
	l.state.Store(0)
}
