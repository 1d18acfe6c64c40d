package registry

import (
	"time"

	"github.com/pulsarjs/pulsar/dom"
	"github.com/pulsarjs/pulsar/reactivity"
)

// Options configures process-wide behavior at Boot time (grounded on the
// teacher's wasm.InitConfig/DefaultConfig/QuickConfig trio in
// wasm/init.go, reshaped into Go's functional-options idiom since Pulsar's
// registry has no single natural "config struct" call site the way a
// one-shot wasm bootstrap does).
type Options struct {
	// WireRunClamp bounds how many times a single wire's run may
	// re-trigger itself within one write chain before a diagnostic fires
	// (spec.md §4.3, default 100).
	WireRunClamp int
	// SchedulerIterationClamp is stored but read by nothing: Configure does
	// not pass it on, and FlushFrames runs one snapshot per call with no
	// iteration loop for it to bound (the value echoes
	// AnatoleLucet-sig/internal/scheduler.go's `count > 1e5` guard).
	SchedulerIterationClamp int
	// FrameFallback selects how scheduleFrame behaves when no
	// requestAnimationFrame primitive is available (spec.md §4.6): either
	// "sync" (flush inline, immediately) or "microtask" (coalesce onto a
	// background ticker, see reactivity.SetNativeFrameMode). Has no effect
	// on a js/wasm build, which always rides the real rAF primitive.
	FrameFallback string
	// DebugEnabled controls whether diagnostics print at boot (spec.md
	// §4.9's enableDebug/disableDebug).
	DebugEnabled bool
	// BootTimeout is an optional wall-clock budget for a full mount pass,
	// echoing the teacher's InitConfig.Timeout without the core ever
	// enforcing it itself (spec.md §5: "this does not interrupt any core
	// operation already in flight").
	BootTimeout time.Duration
}

// Option mutates an Options being built.
type Option func(*Options)

// WithWireRunClamp overrides the default wire self-rerun clamp.
func WithWireRunClamp(n int) Option {
	return func(o *Options) { o.WireRunClamp = n }
}

// WithSchedulerIterationClamp overrides the default scheduler iteration
// clamp.
func WithSchedulerIterationClamp(n int) Option {
	return func(o *Options) { o.SchedulerIterationClamp = n }
}

// WithFrameFallback selects "sync" or "microtask" frame-fallback behavior.
func WithFrameFallback(mode string) Option {
	return func(o *Options) { o.FrameFallback = mode }
}

// WithDebug toggles whether diagnostics print at boot.
func WithDebug(enabled bool) Option {
	return func(o *Options) { o.DebugEnabled = enabled }
}

// WithBootTimeout sets an advisory wall-clock budget for a mount pass.
func WithBootTimeout(d time.Duration) Option {
	return func(o *Options) { o.BootTimeout = d }
}

// DefaultOptions mirrors the teacher's DefaultConfig: conservative clamps
// suitable for a long-running page.
func DefaultOptions() Options {
	return Options{
		WireRunClamp:            100,
		SchedulerIterationClamp: 100000,
		FrameFallback:           "microtask",
		DebugEnabled:            false,
		BootTimeout:             30 * time.Second,
	}
}

// QuickOptions mirrors the teacher's QuickConfig: tighter bounds for
// short-lived demos/tests where a runaway loop should surface fast.
func QuickOptions() Options {
	return Options{
		WireRunClamp:            20,
		SchedulerIterationClamp: 1000,
		FrameFallback:           "microtask",
		DebugEnabled:            true,
		BootTimeout:             5 * time.Second,
	}
}

// Configure applies opts over DefaultOptions and wires the resulting
// debug flag into internal/diag immediately. It does not call Boot — SSR
// state hydration (Boot(State)) is a distinct concern kept in state.go,
// per SPEC_FULL.md's B.3 note that configuration and hydration must not
// be conflated.
func Configure(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.DebugEnabled {
		EnableDebug()
	} else {
		DisableDebug()
	}
	reactivity.SetMaxSelfRerun(cfg.WireRunClamp)
	dom.SetWireRunThreshold(cfg.WireRunClamp)
	reactivity.SetNativeFrameMode(cfg.FrameFallback)
	return cfg
}
