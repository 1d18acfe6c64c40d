// Package registry implements the CoreRegistry facade (spec.md C11): a
// process-wide singleton that owns the per-element disposer mapping and
// re-exposes execute/wire/runInScope/getCurrentOwner behind one surface,
// so external collaborators never need the tracking stack, component
// stack, or wire internals' representations directly. It is grounded on
// the teacher's componentRegistry/registryMutex pair in comps/comps.go,
// generalized from "one map of component instances" to the full set of
// process-global state spec.md §5 calls out.
package registry

import (
	"sync/atomic"

	"github.com/pulsarjs/pulsar/bridge"
	"github.com/pulsarjs/pulsar/comps"
	"github.com/pulsarjs/pulsar/dom"
	"github.com/pulsarjs/pulsar/internal/diag"
	"github.com/pulsarjs/pulsar/reactivity"
)

func init() {
	comps.RegisterDisposer = registerDisposer
}

var (
	disposers = make(map[bridge.Element][]func())
	hidSeq    atomic.Int64
)

// Execute re-exports comps.Execute (C8) behind the registry facade.
func Execute[T any](id, parentID string, factory func() T) T {
	return comps.Execute(id, parentID, factory)
}

// Wire re-exports dom.Wire (C10), additionally recording the returned
// disposer in the registry's per-element disposer set so disposeElement
// and disposeTree can reach it.
func Wire(el bridge.Element, path string, src dom.Source) dom.Disposer {
	d := dom.Wire(el, path, src)
	registerDisposer(el, d.Dispose)
	return d
}

// registerDisposer is the hook comps.Execute uses to attach onCleanup
// callbacks to an element's disposer set, and is also how Wire attaches
// its own disposer — both funnel through the same per-element mapping.
func registerDisposer(el bridge.Element, disposer func()) {
	disposers[el] = append(disposers[el], disposer)
}

// DisposeElement invokes and clears el's disposer set (spec.md §4.9).
// Idempotent: a second call finds an empty or absent set and no-ops.
func DisposeElement(el bridge.Element) {
	list, ok := disposers[el]
	if !ok {
		return
	}
	delete(disposers, el)
	for _, d := range list {
		runDisposer(d)
	}
}

func runDisposer(d func()) {
	defer func() {
		if r := recover(); r != nil {
			diag.Warnf(diag.Registry, "disposer panicked: %v", r)
		}
	}()
	d()
}

// DisposeTree applies DisposeElement depth-first across root and every
// descendant (spec.md §4.9), delegating the tree walk itself to
// dom.DisposeTree so the traversal order lives in exactly one place. A
// no-op on an element with no children and no disposers.
func DisposeTree(root bridge.Element) {
	dom.DisposeTree(root, DisposeElement)
}

// RunInScope re-exports reactivity.RunInScope.
func RunInScope(o *reactivity.Owner, fn func()) {
	reactivity.RunInScope(o, fn)
}

// GetCurrentOwner re-exports reactivity.CurrentOwner.
func GetCurrentOwner() *reactivity.Owner {
	return reactivity.CurrentOwner()
}

// NextHid returns a monotonically increasing integer, used to assign
// SSR-stable ids (spec.md §4.9, §6).
func NextHid() int64 {
	return hidSeq.Add(1)
}

// Reset clears all process-global registry state: the disposer map, the
// signal registry, the hid counter, and the diagnostics counter. Intended
// for tests that boot and tear down the registry repeatedly within one
// process.
func Reset() {
	disposers = make(map[bridge.Element][]func())
	signalRegistry = make(map[string]signalEntry)
	hidSeq.Store(0)
	diag.Reset()
}
