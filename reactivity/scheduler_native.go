//go:build !js || !wasm

package reactivity

import (
	"sync"
	"time"
)

// nativeFrameMode selects how ScheduleFrame drives FlushFrames when no
// requestAnimationFrame primitive exists (spec.md §4.6's two sanctioned
// fallbacks): "sync" flushes inline, synchronously, on the same goroutine
// that called ScheduleFrame; "microtask" defers the flush onto a
// dedicated background ticker so everything ScheduleFrame queues during
// the rest of the current synchronous call stack still coalesces into
// the same flush. Go has no literal microtask queue, so this is grounded
// on JoaoHenriqueBarbosa-maya's internal/reactive/batcher.go
// (UpdateBatcher: a ticker-driven goroutine that drains whatever
// accumulated since the previous tick) rather than invented from nothing.
// registry.Configure sets this from Options.FrameFallback; default is
// "microtask".
var nativeFrameMode = "microtask"

// SetNativeFrameMode overrides the fallback mode. An unrecognized value
// is ignored, so a typo in an Option can't silently leave ScheduleFrame
// with no driver at all.
func SetNativeFrameMode(mode string) {
	switch mode {
	case "sync":
		nativeFrameMode = mode
		scheduleFrameHook = FlushFrames
	case "microtask":
		nativeFrameMode = mode
		scheduleFrameHook = armMicrotaskTicker
	}
}

func init() {
	SetNativeFrameMode(nativeFrameMode)
}

// microtaskTickInterval is short enough that ordinary caller code (a
// handler, a batch body) finishes well before the next tick, so the
// ticker still behaves like "flush once the current synchronous work is
// done" rather than a 60fps frame cadence.
const microtaskTickInterval = time.Millisecond

var (
	microtaskOnce sync.Once
	microtaskMu   sync.Mutex
	microtaskDue  bool
)

// armMicrotaskTicker starts the background ticker on first use and marks
// a flush as due; the ticker goroutine clears the flag and calls
// FlushFrames on its next tick. Multiple calls before that tick fires all
// collapse into the single pending flag, the same coalescing
// UpdateBatcher.Add/processBatches gets from its pending slice.
func armMicrotaskTicker() {
	microtaskOnce.Do(startMicrotaskTicker)

	microtaskMu.Lock()
	microtaskDue = true
	microtaskMu.Unlock()
}

func startMicrotaskTicker() {
	ticker := time.NewTicker(microtaskTickInterval)
	go func() {
		for range ticker.C {
			microtaskMu.Lock()
			due := microtaskDue
			microtaskDue = false
			microtaskMu.Unlock()
			if due {
				FlushFrames()
			}
		}
	}()
}
