//go:build !linux

package lockbench

// pinToCPU is a no-op on platforms without a cheap affinity syscall
// wired up (everything but Linux, here). Absence of pinning must degrade
// gracefully: it only affects cycle-counter stability and migration noise,
// never correctness.
func pinToCPU(_ int) {}
