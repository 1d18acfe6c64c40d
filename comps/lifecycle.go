package comps

import "github.com/pulsarjs/pulsar/internal/diag"

// lifecycleSlot is spec.md's PendingLifecycleSlot (§3): three ordered
// callback lists, pushed on entry to a component factory and popped on
// exit.
type lifecycleSlot struct {
	mount   []func()
	cleanup []func()
	update  []func()
}

var slotStack []*lifecycleSlot

func pushSlot() *lifecycleSlot {
	s := &lifecycleSlot{}
	slotStack = append(slotStack, s)
	return s
}

func popSlot() {
	slotStack = slotStack[:len(slotStack)-1]
}

func currentSlot() *lifecycleSlot {
	if len(slotStack) == 0 {
		return nil
	}
	return slotStack[len(slotStack)-1]
}

// OnMount registers fn to run once, inline, right after the enclosing
// factory returns an element (spec.md §4.7). Outside any open Execute
// call it is a no-op that emits a diagnostic (§7's contract-violation
// policy).
func OnMount(fn func()) {
	s := currentSlot()
	if s == nil {
		diag.Warnf(diag.Lifecycle, "onMount called outside an execute factory; ignored")
		return
	}
	s.mount = append(s.mount, fn)
}

// OnCleanup registers fn to be attached to the enclosing factory's
// element as a disposer, so it runs when that element (or an ancestor)
// is disposed via disposeElement/disposeTree.
func OnCleanup(fn func()) {
	s := currentSlot()
	if s == nil {
		diag.Warnf(diag.Lifecycle, "onCleanup called outside an execute factory; ignored")
		return
	}
	s.cleanup = append(s.cleanup, fn)
}

// OnUpdate registers fn to be invoked the next time a component with the
// same id re-executes (decided Open Question §9a, option (i)).
func OnUpdate(fn func()) {
	s := currentSlot()
	if s == nil {
		diag.Warnf(diag.Lifecycle, "onUpdate called outside an execute factory; ignored")
		return
	}
	s.update = append(s.update, fn)
}
