//go:build lockbench_disable_padding

package opt

import "sync/atomic"

// Padded64 with padding force-disabled via the lockbench_disable_padding
// build tag. Use: go build -tags=lockbench_disable_padding
//
// The tag affects Padded64 only, i.e. the per-worker result slots, which
// each worker writes once when it leaves its measurement loop. TicketLock's
// counters and the MCS queue nodes keep their inline padding either way.
type Padded64 struct {
	V atomic.Uint64
}
