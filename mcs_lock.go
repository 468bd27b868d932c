package lockbench

import (
	"sync/atomic"
	"unsafe"

	"github.com/mprilop/lockbench/internal/opt"
)

// mcsNode is one waiter's queue entry. Each waiter spins on its own node's
// locked field rather than on shared lock state, so a release only ever
// invalidates the successor's cache line, not every waiter's.
//
// One node per (lock, goroutine): the caller supplies it via *Node rather
// than this package keeping a thread-local map, so its lifetime is exactly
// the caller's, and there is nothing to prune when a lock is discarded.
type mcsNode struct {
	next   atomic.Pointer[mcsNode]
	locked atomic.Bool
	_      [(opt.CacheLineSize_ - unsafe.Sizeof(struct {
		p unsafe.Pointer
		b bool
	}{})%opt.CacheLineSize_) % opt.CacheLineSize_]byte
}

// McsLock is a scalable, strictly FIFO queue lock.
//
// Lock swaps itself onto the tail of the queue; if the queue was empty it
// holds the lock immediately, otherwise it links itself after the previous
// tail and spins on its own node until that predecessor clears it. Unlock
// hands off to the linked successor, or fully releases the lock if none has
// appeared yet.
type McsLock struct {
	_    noCopy
	tail atomic.Pointer[mcsNode]
}

func (l *McsLock) Lock(h *Node) {
	me := &h.mcs
	me.next.Store(nil)
	me.locked.Store(true)

	prev := l.tail.Swap(me)
	if prev == nil {
		// Queue was empty: we hold the lock immediately.
		me.locked.Store(false)
		return
	}

	prev.next.Store(me)
	var spins int
	for me.locked.Load() {
		opt.Delay(&spins)
	}
}

func (l *McsLock) Unlock(h *Node) {
	me := &h.mcs
	if succ := me.next.Load(); succ != nil {
		succ.locked.Store(false)
		return
	}
	if l.tail.CompareAndSwap(me, nil) {
		// No successor linked, and none arrived while we checked: fully
		// released.
		return
	}
	// A successor is mid-link (it has swapped itself onto tail but hasn't
	// stored into our next yet). Spin until that store lands.
	var spins int
	var succ *mcsNode
	for {
		succ = me.next.Load()
		if succ != nil {
			break
		}
		opt.Delay(&spins)
	}
	succ.locked.Store(false)
}

// McsLockPreLoad observes the tail before attempting to enqueue, and skips
// enqueueing entirely: it only compare-and-swaps the tail from nil to
// itself, i.e. it only ever succeeds when the lock looks completely free.
// It never links behind an existing holder and never waits in a queue,
// so it provides no fairness whatsoever and is not, despite the name, an
// MCS lock. It exists purely for differential measurement against the
// real McsLock: what does avoiding any write under contention cost us in
// fairness. Keep the two under separate names so a reader never mistakes
// one for the other.
type McsLockPreLoad struct {
	_    noCopy
	tail atomic.Pointer[mcsNode]
}

func (l *McsLockPreLoad) Lock(h *Node) {
	me := &h.mcs
	me.next.Store(nil)
	me.locked.Store(true)

	var spins int
	for {
		if l.tail.Load() != nil {
			opt.Delay(&spins)
			continue
		}
		if l.tail.CompareAndSwap(nil, me) {
			me.locked.Store(false)
			return
		}
	}
}

func (l *McsLockPreLoad) Unlock(h *Node) {
	me := &h.mcs
	l.tail.CompareAndSwap(me, nil)
	me.next.Store(nil)
}
