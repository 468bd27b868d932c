// Package lockbench compares the throughput of mutual-exclusion primitives
// under contention. Workers repeatedly run a two-phase workload, an
// unsynchronized phase followed by a critical section, for a fixed
// wall-clock window, and Run reports the total number of completed rounds
// across all workers.
package lockbench

import "sync"

// Lock is the contract every mutual-exclusion primitive in this package
// implements. Lock blocks the calling worker until it becomes the sole
// holder; Unlock hands the lock to a successor or the next arriver.
// Re-entry is not supported.
//
// Every Lock method takes a *Node: per-worker scratch storage owned by the
// caller. McsLock uses it to store its queue node (one node per (lock,
// goroutine) pair, per the classic MCS design), and McsLockPreLoad uses the
// same node as the value it installs in its tail; the other lock kinds
// ignore it. This keeps a single uniform signature the harness can drive without a
// type switch, favoring explicit caller-owned storage over a hidden
// thread-local map: the caller owns the node's storage and lifetime.
//
// Memory ordering: Lock synchronizes-with the previous Unlock on the same
// Lock, so writes made in one critical section are visible to the next.
// Go's sync/atomic operations are all sequentially consistent, stronger
// than the acquire/release pairing a lock algorithm strictly needs, so none
// of the implementations below need to (or can) ask for a weaker ordering
// than that.
type Lock interface {
	Lock(node *Node)
	Unlock(node *Node)
}

// Node is per-worker scratch state passed into every Lock/Unlock call. A
// worker allocates exactly one Node with NewNode and reuses it for every
// round of the benchmark loop.
type Node struct {
	_   noCopy
	mcs mcsNode
}

// NewNode allocates a Node ready for use.
func NewNode() *Node {
	return &Node{}
}

// noCopy may be embedded in structs that must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

var _ sync.Locker = (*noCopy)(nil)
