//go:build js && wasm

package reactivity

import "syscall/js"

// On js/wasm, the host's own requestAnimationFrame drives the frame
// boundary: ScheduleFrame requests one rAF callback (if none is already
// pending) that flushes whatever accumulated by the time the browser
// actually paints. This is option (a)/(b) from spec.md §4.6's "no
// animation-frame primitive" note turned around: when the primitive IS
// available, use it instead of a synchronous or microtask fallback.
var rafPending bool

func init() {
	scheduleFrameHook = requestAnimationFrame
}

func requestAnimationFrame() {
	if rafPending {
		return
	}
	rafPending = true
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		rafPending = false
		cb.Release()
		FlushFrames()
		return nil
	})
	js.Global().Call("requestAnimationFrame", cb)
}

// SetNativeFrameMode is a no-op on js/wasm: the real requestAnimationFrame
// primitive is always used here, so Options.FrameFallback (which only
// chooses between the two no-rAF fallbacks) has nothing to select between
// on this build. Defined here purely so registry.Configure can call it
// unconditionally regardless of build target.
func SetNativeFrameMode(mode string) {}
