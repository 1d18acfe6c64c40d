// Package diag is the shared diagnostic channel for contract violations and
// structural guards inside the reactive kernel (lifecycle registration
// outside a factory, the owner self-rerun clamp, the wire run-count
// threshold, and isolated panics from effects, cleanups, lifecycle
// callbacks, disposers and frame callbacks). A signal read outside a
// tracking scope is not reported. Diagnostics are reported, never thrown:
// the core must never terminate the host program on its own.
package diag

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/pulsarjs/pulsar/logutil"
)

// Subsystem tags a diagnostic line with the component that emitted it, so a
// host console can filter by subsystem.
type Subsystem string

const (
	Signal   Subsystem = "signal"
	Owner    Subsystem = "owner"
	Memo     Subsystem = "memo"
	Batch    Subsystem = "batch"
	Frame    Subsystem = "frame"
	Wire     Subsystem = "wire"
	Lifecycle Subsystem = "lifecycle"
	Registry Subsystem = "registry"
)

var (
	mu      sync.RWMutex
	enabled = true
	count   atomic.Int64
)

// Enable toggles whether diagnostics are printed. Counting always happens;
// enableDebug/disableDebug (spec.md §4.9) only gate the printed channel.
func Enable(v bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = v
}

// Count returns the number of diagnostics emitted since the process started
// or since the last Reset, regardless of whether printing is enabled.
func Count() int64 { return count.Load() }

// Reset zeroes the diagnostic counter; used by registry.Reset for tests.
func Reset() { count.Store(0) }

// Warnf reports a structured diagnostic. It never panics and never blocks
// the caller beyond a formatted print.
func Warnf(sub Subsystem, format string, args ...any) {
	count.Add(1)
	mu.RLock()
	on := enabled
	mu.RUnlock()
	if !on {
		return
	}
	logutil.Logf("[pulsar:%s] %s\n", sub, fmt.Sprintf(format, args...))
}
