package reactivity

import "reflect"

// Signal is the basic reactive primitive (spec.md C1): a mutable cell that
// notifies its subscribers on write, skipping the notification when the
// new value is equal to the prior one under the signal's equals predicate.
// The getter/setter split mirrors spec.md §6's `createSignal(initial) ->
// [get, set]`, expressed as methods rather than a closure pair per the
// teacher's own interface-returning style (reactivity/signal.go).
type Signal[T any] interface {
	// Get returns the current value, subscribing the active owner (if any)
	// as a dependent of this signal.
	Get() T
	// Set stores next directly. A no-op when Equals(current, next).
	Set(next T)
	// Update derives the next value from the current one via fn, then
	// applies it exactly like Set. This is Go's expression of spec.md's
	// `write(next | updater(prev))` overload.
	Update(fn func(prev T) T)
}

// SignalOption configures a Signal at creation time.
type SignalOption[T any] func(*signalImpl[T])

// WithEquals overrides the default comparison, which is reflect.DeepEqual
// (structural equality, see defaultEquals), not pointer or reference
// identity.
func WithEquals[T any](equals func(a, b T) bool) SignalOption[T] {
	return func(s *signalImpl[T]) { s.equals = equals }
}

type signalImpl[T any] struct {
	value       T
	subscribers *orderedSet[*Owner]
	equals      func(a, b T) bool
	disposed    bool
}

// CreateSignal creates a new Signal holding initial, per spec.md §4.1.
func CreateSignal[T any](initial T, opts ...SignalOption[T]) Signal[T] {
	s := &signalImpl[T]{
		value:       initial,
		subscribers: newOrderedSet[*Owner](),
		equals:      defaultEquals[T],
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *signalImpl[T]) Get() T {
	if s.disposed {
		return s.value
	}
	if o := CurrentOwner(); o != nil {
		s.subscribe(o)
		o.subs.Add(s)
	}
	return s.value
}

func (s *signalImpl[T]) Set(next T) {
	if s.disposed {
		return
	}
	if s.equals(s.value, next) {
		return
	}
	s.value = next
	s.notify()
}

func (s *signalImpl[T]) Update(fn func(prev T) T) {
	s.Set(fn(s.value))
}

// notify snapshots subscribers before invoking, so a subscriber that
// subscribes/unsubscribes during notification does not corrupt the pass in
// progress (spec.md §4.1: "notify: snapshot subscribers, then invoke
// each"). A batch in progress defers the snapshot into the batch's pending
// set instead of running subscribers inline.
func (s *signalImpl[T]) notify() {
	if currentBatch != nil {
		for _, o := range s.subscribers.Snapshot() {
			currentBatch.enqueue(o)
		}
		return
	}
	for _, o := range s.subscribers.Snapshot() {
		if !s.subscribers.Contains(o) {
			continue
		}
		o.Run()
	}
}

// subscribe and unsubscribe satisfy the dependency interface used by
// Owner.subs; Memo.Get calls subscribe directly to mirror a memo's
// dependencies onto an outer owner without misattributing the read to the
// memo's own internal tracker (spec.md §4.4).
func (s *signalImpl[T]) subscribe(o *Owner) {
	s.subscribers.Add(o)
}

func (s *signalImpl[T]) unsubscribe(o *Owner) {
	s.subscribers.Remove(o)
}

// Dispose clears all subscribers, per spec.md §4.1. Further reads still
// return the last stored value but no longer track.
func (s *signalImpl[T]) Dispose() {
	s.disposed = true
	s.subscribers.Clear()
}

// RestoreSignal sets sig's value directly, bypassing equals and notify
// (spec.md §6: "boot(state) ... must NOT trigger subscribers during
// replay; set private value directly"). It is the SSR-hydration
// counterpart to Set, used only by registry.Boot.
func RestoreSignal[T any](sig Signal[T], next T) {
	if s, ok := sig.(*signalImpl[T]); ok {
		s.value = next
	}
}

// defaultEquals uses reflect.DeepEqual rather than Go's native ==, so a
// Signal[T] instantiated over a slice, map, or struct containing either
// does not panic on Set; this mirrors the teacher's baseSignal.Set
// (reactivity/signal.go), which makes the same choice over strict `==`.
func defaultEquals[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}
