// Package comps implements the component-execution context (spec.md C8)
// and the lifecycle bus (C9): the stack that scopes onMount/onCleanup/
// onUpdate registrations and effect ownership to the element a component
// factory returns. It is the Go analogue of the teacher's
// ComponentInstance/ComponentFactory pair (comps/comps.go, comps/page.go),
// generalized from a gomponents-only shape to any factory returning a
// bridge.Element.
package comps

import (
	"sort"

	"github.com/pulsarjs/pulsar/bridge"
	"github.com/pulsarjs/pulsar/internal/diag"
)

// ComponentContext is the per-execution scope pushed by Execute (spec.md
// §3: "ComponentContext — id, parentId, provides").
type ComponentContext struct {
	ID       string
	ParentID string
}

var contextStack []*ComponentContext

// CurrentContext returns the innermost in-flight factory's context, or nil
// outside any Execute call.
func CurrentContext() *ComponentContext {
	if len(contextStack) == 0 {
		return nil
	}
	return contextStack[len(contextStack)-1]
}

func pushContext(c *ComponentContext) {
	contextStack = append(contextStack, c)
}

func popContext() {
	contextStack = contextStack[:len(contextStack)-1]
}

// RegisterDisposer is set by package registry at boot to attach a disposer
// to an element's wire disposer set (C11 owns that mapping, spec.md §4.9).
// comps stays decoupled from registry so C8/C9 have no import-time
// dependency on C11 — the "zero-dependency slot stack" framing in spec.md
// §2 — wiring instead through this package-level hook.
var RegisterDisposer func(el bridge.Element, disposer func())

// componentState remembers the update callbacks and element from a
// component id's previous execution, so a later re-execution can fire
// them (decided Open Question §9a, option (i): invoked on every
// subsequent execute that reuses the same id).
type componentState struct {
	element bridge.Element
	updates []func()
}

var componentStates = make(map[string]*componentState)

// ComponentIDs returns every component id whose factory has returned a
// bridge.Element at least once (ids whose factories returned anything else
// are not recorded), sorted for deterministic output — the "components"
// array of spec.md §6's dump() shape.
func ComponentIDs() []string {
	ids := make([]string, 0, len(componentStates))
	for id := range componentStates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Execute runs factory under a fresh ComponentContext and lifecycle slot
// (spec.md §4.7). If factory returns a bridge.Element, registered mount
// callbacks run inline in registration order, registered cleanup
// callbacks are attached to the element's disposer set via
// RegisterDisposer, and the previous execution's update callbacks (if id
// was executed before) fire immediately after the new factory returns.
//
// A panic from factory is NOT recovered here: it is spec.md §7's
// "propagation boundary" — the deferred pop of the lifecycle slot and the
// component stack still runs (Go's defer semantics guarantee that), and
// the panic continues upward to Execute's caller afterward.
func Execute[T any](id, parentID string, factory func() T) T {
	pushContext(&ComponentContext{ID: id, ParentID: parentID})
	slot := pushSlot()
	defer func() {
		popSlot()
		popContext()
	}()

	result := factory()

	el, ok := any(result).(bridge.Element)
	if !ok {
		return result
	}

	if prev := componentStates[id]; prev != nil {
		runUpdateCallbacks(prev.updates)
	}

	for _, fn := range slot.mount {
		runLifecycleCallback(diag.Lifecycle, "onMount callback panicked", fn)
	}

	if RegisterDisposer != nil {
		for _, fn := range slot.cleanup {
			cleanup := fn
			RegisterDisposer(el, func() {
				runLifecycleCallback(diag.Lifecycle, "onCleanup callback panicked", cleanup)
			})
		}
	}

	componentStates[id] = &componentState{element: el, updates: slot.update}

	return result
}

func runUpdateCallbacks(updates []func()) {
	for _, fn := range updates {
		runLifecycleCallback(diag.Lifecycle, "onUpdate callback panicked", fn)
	}
}

// runLifecycleCallback isolates a single lifecycle callback's panic, per
// spec.md §7's user-code-failure policy: reported, never propagated, and
// never prevents the remaining callbacks from running.
func runLifecycleCallback(sub diag.Subsystem, msg string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			diag.Warnf(sub, "%s: %v", msg, r)
		}
	}()
	fn()
}
