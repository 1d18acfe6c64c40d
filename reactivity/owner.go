package reactivity

import (
	"fmt"

	"github.com/pulsarjs/pulsar/internal/diag"
)

// maxSelfRerun bounds an owner's self-triggered reruns within one Run call
// (spec.md §4.3's cycle/termination policy: a run that re-enters itself
// synchronously, e.g. a wire writing a signal it reads, must be clamped).
// A fixed small constant is explicitly acceptable per the spec; it is a
// package variable rather than a const so registry.Configure can tune it
// via Options.WireRunClamp.
var maxSelfRerun = 100

// SetMaxSelfRerun overrides the self-rerun clamp. Intended for
// registry.Configure; not meant to be called mid-run.
func SetMaxSelfRerun(n int) {
	if n > 0 {
		maxSelfRerun = n
	}
}

type ownerState int

const (
	stateIdle ownerState = iota
	stateRunning
	stateWaiting
	stateDisposed
)

// dependency is implemented by any publisher an owner can subscribe to.
// It lets an Owner hold a single ordered set of heterogeneous subscriptions
// (signals of different element types) the way the teacher's depNode
// interface lets one effect depend on many baseSignal[T] instantiations
// (reactivity/effect.go in the teacher repo).
type dependency interface {
	unsubscribe(o *Owner)
	subscribe(o *Owner)
}

// Owner is the exported handle to an EffectOwner node (spec.md C3): it
// aggregates the subscriptions created by one dynamic execution, owns
// child owners created during that execution, and supports disposal.
// Effects, Memo's internal tracker, and Wire are all built on top of Owner.
type Owner struct {
	parent      *Owner
	children    []*Owner
	subs        *orderedSet[dependency]
	cleanups    []func()
	catchers    []func(error)
	fn          func()
	state       ownerState
	running     bool
	rerun       bool
	runAttempts int
}

// NewOwner creates an Owner whose fn will run under tracking. Its parent is
// the innermost currently-active owner, per the ownership rule in spec.md
// §3 ("An EffectOwner is owned by the nearest enclosing EffectOwner on the
// stack at creation time; top-level effects are roots"). Passing a fn of
// nil is valid for owners that only ever run via RunInScope (e.g. a
// ComponentContext's root scope).
func NewOwner(fn func()) *Owner {
	return newOwnerWithParent(CurrentOwner(), fn)
}

// newOwnerWithParent creates an Owner with an explicit parent (or none).
// Memo uses this with a nil parent: a memo's internal tracker must outlive
// and stay independent of whichever outer owner happens to trigger its
// first recompute (spec.md §4.4 gives the memoEffect its own disposal
// lifecycle, not one tied to a caller).
func newOwnerWithParent(parent *Owner, fn func()) *Owner {
	o := &Owner{
		parent: parent,
		subs:   newOrderedSet[dependency](),
		fn:     fn,
	}
	if parent != nil {
		parent.children = append(parent.children, o)
	}
	return o
}

// CurrentOwner returns the innermost active owner, or nil outside any
// tracking scope.
func CurrentOwner() *Owner {
	if len(trackingStack) == 0 {
		return nil
	}
	return trackingStack[len(trackingStack)-1]
}

// RunInScope executes fn with o pushed as the current owner, without
// running o's own rerun/dependency-reset machinery. This is the primitive
// CoreRegistry.runInScope exposes, and is also how a Memo's tracker
// attributes the signal reads of its compute function to itself.
func RunInScope(o *Owner, fn func()) {
	pushOwner(o)
	defer popOwner()
	fn()
}

// OnError registers a handler invoked when a dispatch-boundary panic
// occurs in this owner or any of its descendants with no closer handler
// (spec.md §7's user-code-failure isolation, adapted from
// AnatoleLucet-sig's Owner.Run/OnError catcher chain). The handler never
// re-raises past the dispatch boundary; it is purely an observation hook.
func (o *Owner) OnError(fn func(error)) {
	o.catchers = append(o.catchers, fn)
}

// OnCleanup registers fn to run before this owner's next rerun and at
// disposal, in reverse registration order relative to other cleanups
// within the same run (mirrors the teacher's effect.cleanups in
// reactivity/effect.go).
func (o *Owner) OnCleanup(fn func()) {
	o.cleanups = append(o.cleanups, fn)
}

// Run executes fn (idle->running), or reruns it when already waiting. A
// write arriving mid-run sets rerun and is absorbed into a bounded loop
// rather than recursing, satisfying the single-entrant requirement in
// spec.md §4.8.
func (o *Owner) Run() {
	if o.state == stateDisposed {
		return
	}
	if o.running {
		o.rerun = true
		return
	}

	o.runAttempts = 0
	for {
		o.runAttempts++
		if o.runAttempts > maxSelfRerun {
			diag.Warnf(diag.Owner, "owner exceeded %d self-triggered reruns in one write chain; aborting", maxSelfRerun)
			return
		}
		o.rerun = false
		o.runOnce()
		if o.state == stateDisposed || !o.rerun {
			return
		}
	}
}

// RunAttempts returns how many times fn has run consecutively within the
// current write chain (the outermost call to Run and every reentrant
// rerun triggered synchronously from inside it). It resets to 1 on every
// fresh, externally-triggered call to Run, so a caller like Wire can
// distinguish one long-lived effect ticking many times over its lifetime
// (each tick a separate chain) from a single burst where fn keeps
// re-triggering itself synchronously (one chain, attempts climbing).
func (o *Owner) RunAttempts() int {
	return o.runAttempts
}

func (o *Owner) runOnce() {
	o.detachAndClear()

	o.running = true
	o.state = stateRunning
	pushOwner(o)
	defer func() {
		popOwner()
		o.running = false
		if o.state != stateDisposed {
			o.state = stateWaiting
		}
		if r := recover(); r != nil {
			o.reportPanic(r)
		}
	}()

	if o.fn != nil {
		o.fn()
	}
}

// detachAndClear removes this owner from every signal it previously
// subscribed to and disposes its children, so the upcoming run rebuilds
// subscriptions from scratch (spec.md §4.3: "subscriptions are rebuilt
// from scratch" on every run).
func (o *Owner) detachAndClear() {
	for _, dep := range o.subs.Snapshot() {
		dep.unsubscribe(o)
	}
	o.subs.Clear()

	children := o.children
	o.children = nil
	for _, c := range children {
		c.Dispose()
	}

	cleanups := o.cleanups
	o.cleanups = nil
	runCleanups(cleanups)
}

// Dispose permanently detaches this owner from every publisher, disposes
// its children (before running its own cleanups, grounded on
// edgarvarela24-signals-go's Scope.Dispose reverse-order teardown), and
// marks it so a stale subscriber reference can never invoke Run again.
// Idempotent.
func (o *Owner) Dispose() {
	if o.state == stateDisposed {
		return
	}
	o.state = stateDisposed

	children := o.children
	o.children = nil
	for _, c := range children {
		c.Dispose()
	}

	for _, dep := range o.subs.Snapshot() {
		dep.unsubscribe(o)
	}
	o.subs.Clear()

	cleanups := o.cleanups
	o.cleanups = nil
	runCleanups(cleanups)
}

func runCleanups(cleanups []func()) {
	for i := len(cleanups) - 1; i >= 0; i-- {
		func() {
			defer func() {
				if r := recover(); r != nil {
					diag.Warnf(diag.Owner, "cleanup panicked: %v", r)
				}
			}()
			cleanups[i]()
		}()
	}
}

// reportPanic isolates a dispatch-boundary panic per spec.md §7: it is
// always reported, never re-raised past this point. A registered OnError
// handler anywhere up the owner chain additionally observes the error.
func (o *Owner) reportPanic(r any) {
	err := toError(r)
	diag.Warnf(diag.Owner, "owner run panicked: %v", err)
	for cur := o; cur != nil; cur = cur.parent {
		if len(cur.catchers) == 0 {
			continue
		}
		for _, c := range cur.catchers {
			c(err)
		}
		break
	}
	if panicSink != nil {
		panicSink(err)
	}
}

// Height returns the number of ancestors between o and its root owner
// (0 for a root). It is a debug helper only (registry.GetStats does not
// report it): a deep owner tree is a cheap signal that something is
// nesting effects unboundedly, echoing the height concept
// AnatoleLucet-sig's scheduler uses for topological ordering, repurposed
// here as a diagnostic rather than a scheduling input.
func (o *Owner) Height() int {
	h := 0
	for cur := o.parent; cur != nil; cur = cur.parent {
		h++
	}
	return h
}

func toError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}
