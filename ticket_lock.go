package lockbench

import (
	"sync/atomic"
	"unsafe"

	"github.com/mprilop/lockbench/internal/opt"
)

// TicketLock is a fair, FIFO spin-lock: the classic ticket algorithm.
//
// Lock() takes a ticket number and spins until `serving` reaches it;
// Unlock() advances `serving`, letting the next ticket holder proceed.
// Unlike TasSpinlock, a goroutine can never be passed over by a later
// arriver: acquisition order is exactly ticket order.
//
// next and serving each get their own cache line: they are the two hottest
// words in the lock (every Lock touches next, every Unlock touches
// serving) and a waiter spinning on serving must never see it invalidated
// by an unrelated write to next landing on the same line.
type TicketLock struct {
	_       noCopy
	next    atomic.Uint32
	_       [(opt.CacheLineSize_ - unsafe.Sizeof(atomic.Uint32{})%opt.CacheLineSize_) % opt.CacheLineSize_]byte
	serving atomic.Uint32
	_       [(opt.CacheLineSize_ - unsafe.Sizeof(atomic.Uint32{})%opt.CacheLineSize_) % opt.CacheLineSize_]byte
}

// backoffDistance is the queue-distance threshold past which Lock backs off
// instead of spinning tight: a waiter more than this many tickets behind
// the holder is unlikely to be served soon enough for tight spinning to
// pay for the cache traffic it generates.
const backoffDistance = 20

func (l *TicketLock) Lock(_ *Node) {
	my := l.next.Add(1) - 1
	var spins int
	for {
		serving := l.serving.Load()
		if serving == my {
			return
		}
		if my-serving > backoffDistance {
			opt.Delay(&spins)
		}
	}
}

func (l *TicketLock) Unlock(_ *Node) {
	l.serving.Add(1)
}

// TicketLockPreLoad trades strict FIFO for less write traffic on the held
// path: instead of unconditionally incrementing next (and thereby forcing
// every other spinning waiter to reload it), it first observes serving ==
// next (the lock looks free) and only then attempts to claim a ticket
// with a compare-and-swap. If the CAS loses the race, or the lock did not
// look free, it retries without ever touching next.
//
// The tradeoff: a goroutine that arrives while the lock is contended never
// gets a ticket at all until it observes serving == next, so two waiters
// racing to claim the same apparent opening are no longer served in the
// order they arrived. A fairness-for-contention-traffic tradeoff, not a
// bug.
type TicketLockPreLoad struct {
	_       noCopy
	next    atomic.Uint32
	_       [(opt.CacheLineSize_ - unsafe.Sizeof(atomic.Uint32{})%opt.CacheLineSize_) % opt.CacheLineSize_]byte
	serving atomic.Uint32
	_       [(opt.CacheLineSize_ - unsafe.Sizeof(atomic.Uint32{})%opt.CacheLineSize_) % opt.CacheLineSize_]byte
}

func (l *TicketLockPreLoad) Lock(_ *Node) {
	var spins int
	for {
		s := l.serving.Load()
		n := l.next.Load()
		if s == n && l.next.CompareAndSwap(n, n+1) {
			for l.serving.Load() != n {
				opt.Delay(&spins)
			}
			return
		}
		opt.Delay(&spins)
	}
}

func (l *TicketLockPreLoad) Unlock(_ *Node) {
	l.serving.Add(1)
}
