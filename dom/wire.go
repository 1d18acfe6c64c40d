package dom

import (
	"github.com/pulsarjs/pulsar/bridge"
	"github.com/pulsarjs/pulsar/internal/diag"
	"github.com/pulsarjs/pulsar/reactivity"
)

// Source classifies what a Wire reads from on each run (spec.md §4.8).
// Go's static typing collapses the three JS-side cases (signal, getter,
// static value) into two observable behaviors: a tracked read (FromSignal,
// FromGetter — both end up as a func() string invoked inside the wire's
// owner, so either registers dependencies the same way) and a static value
// that never changes and therefore never needs re-subscription.
type Source struct {
	read   func() string
	static bool
}

// FromSignal builds a Source that reads sig.Get() on every run, tracking
// it as a dependency the way any other signal read inside an owner does.
func FromSignal(sig reactivity.Signal[string]) Source {
	return Source{read: sig.Get}
}

// FromGetter builds a Source from an arbitrary tracked read, e.g. a Memo's
// Get or a closure composed from several signals.
func FromGetter(fn func() string) Source {
	return Source{read: fn}
}

// FromValue builds a Source that never changes: the wire writes it once
// and never subscribes to anything, matching spec.md's "static value"
// case (§4.8).
func FromValue(v string) Source {
	return Source{read: func() string { return v }, static: true}
}

// Disposer detaches a Wire: it disposes the owner backing the wire's
// tracked run, which in turn unsubscribes from every signal it read.
type Disposer interface {
	Dispose()
}

type wireHandle struct {
	owner *reactivity.Owner
}

func (w *wireHandle) Dispose() { w.owner.Dispose() }

// noopDisposer is returned for a static Source (spec.md §4.8: "navigate
// path ... set the leaf once, return a no-op disposer"), which never
// allocates an Owner, so there is nothing to dispose.
type noopDisposer struct{}

func (noopDisposer) Dispose() {}

// wireRunWarnThreshold matches reactivity's own self-rerun clamp so a wire
// that keeps re-triggering itself (writing a signal it also reads) reports
// at the same cadence the owner machinery already bounds reruns to. A
// variable rather than a const so registry.Configure can tune both clamps
// together via Options.WireRunClamp.
var wireRunWarnThreshold = 100

// SetWireRunThreshold overrides the wire run-count diagnostic threshold.
// Intended for registry.Configure; not meant to be called mid-run.
func SetWireRunThreshold(n int) {
	if n > 0 {
		wireRunWarnThreshold = n
	}
}

// Wire binds src to the leaf property named by path on el (spec.md C10,
// §4.8): "textContent", "innerHTML", "value", "className", "style.<prop>",
// or an attribute name. A static src (FromValue) never tracks: it
// navigates path, writes once, and returns immediately with a no-op
// disposer, skipping the owner/tracking-stack machinery entirely since it
// has nothing to ever re-subscribe to. A tracked src's first write is
// unconditional; subsequent writes are skipped when the resolved value is
// unchanged, so an unrelated dependency touched by src's closure doesn't
// force a write the DOM already reflects. The wire's owner is created
// with reactivity.NewOwner, which already parents it to the current
// tracking-stack owner, so tree disposal cascades into it per §4.8.
func Wire(el bridge.Element, path string, src Source) Disposer {
	_, set := resolveLeaf(el, path)

	if src.static {
		set(src.read())
		return noopDisposer{}
	}

	wrote := false
	var last string

	var owner *reactivity.Owner
	owner = reactivity.NewOwner(func() {
		if !el.Connected() {
			return
		}
		// owner.RunAttempts() counts reruns within the current write
		// chain only (reset on every fresh external trigger), so a
		// long-lived wire ticking on ordinary, separate updates never
		// accumulates toward this threshold — only a single burst where
		// the write below re-triggers this same run synchronously does.
		if owner.RunAttempts() >= wireRunWarnThreshold {
			diag.Warnf(diag.Wire, "wire on <%s> path=%q reached %d runs in one write chain (runCount=%d)",
				el.TagName(), path, wireRunWarnThreshold, owner.RunAttempts())
		}

		next := src.read()
		if wrote && next == last {
			return
		}
		set(next)
		last = next
		wrote = true
	})

	owner.Run()
	return &wireHandle{owner: owner}
}
