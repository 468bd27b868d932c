package lockbench

import "errors"

// Configuration errors. Run returns one of these (optionally wrapped with
// additional context via fmt.Errorf's %w) before spawning any worker. A
// misconfigured run fails fast rather than starting threads it will have
// to tear down.
var (
	ErrUnknownLock     = errors.New("lockbench: unknown lock kind")
	ErrUnknownTask     = errors.New("lockbench: unknown task kind")
	ErrInvalidThreads  = errors.New("lockbench: thread count must be positive")
	ErrInvalidDuration = errors.New("lockbench: duration must be positive")
)
