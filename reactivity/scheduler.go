package reactivity

import "github.com/pulsarjs/pulsar/internal/diag"

// keyedQueue is a last-writer-wins map from key to callback that still
// iterates in first-insertion order, so scheduleFrame's keyed dedup
// (spec.md §4.6, testable property #5) is reproducible across runs instead
// of depending on Go's randomized map iteration.
type keyedQueue struct {
	order []string
	fns   map[string]func()
}

func newKeyedQueue() *keyedQueue {
	return &keyedQueue{fns: make(map[string]func())}
}

func (q *keyedQueue) set(key string, fn func()) {
	if _, ok := q.fns[key]; !ok {
		q.order = append(q.order, key)
	}
	q.fns[key] = fn
}

func (q *keyedQueue) cancel(key string) {
	if _, ok := q.fns[key]; !ok {
		return
	}
	delete(q.fns, key)
	for i, k := range q.order {
		if k == key {
			q.order = append(q.order[:i], q.order[i+1:]...)
			break
		}
	}
}

// frameQueues holds the two queues for one frame window (spec.md §4.6).
type frameQueues struct {
	keyed     *keyedQueue
	anonymous []func()
}

func newFrameQueues() *frameQueues {
	return &frameQueues{keyed: newKeyedQueue()}
}

// scheduler is the process-wide FrameScheduler singleton (C7).
type scheduler struct {
	pending *frameQueues
}

var sharedScheduler = &scheduler{pending: newFrameQueues()}

// scheduleFrameHook, when non-nil, is invoked after each ScheduleFrame
// call so a platform that has a real frame primitive (js/wasm's
// requestAnimationFrame) can arrange for FlushFrames to fire at the next
// actual frame boundary. Native builds leave this nil (see
// scheduler_native.go).
var scheduleFrameHook func()

// ScheduleFrame enqueues fn to run at the next frame boundary. With a
// non-empty key, a later call with the same key before that boundary
// replaces fn (last-writer-wins) rather than adding a second callback.
// Without a key, fn is appended to the anonymous queue and always runs.
func ScheduleFrame(fn func(), key ...string) {
	if len(key) > 0 && key[0] != "" {
		sharedScheduler.pending.keyed.set(key[0], fn)
	} else {
		sharedScheduler.pending.anonymous = append(sharedScheduler.pending.anonymous, fn)
	}
	if scheduleFrameHook != nil {
		scheduleFrameHook()
	}
}

// CancelFrame removes a previously scheduled keyed callback. A no-op if
// the key was never scheduled or already flushed.
func CancelFrame(key string) {
	sharedScheduler.pending.keyed.cancel(key)
}

// FlushFrames snapshots the current queues, clears them (so callbacks that
// reschedule land in the *next* frame, never this one), then runs keyed
// callbacks in first-insertion order followed by anonymous callbacks in
// registration order. A panicking callback is isolated and does not
// prevent the rest from running.
func FlushFrames() {
	window := sharedScheduler.pending
	sharedScheduler.pending = newFrameQueues()

	for _, key := range window.keyed.order {
		runGuarded(window.keyed.fns[key])
	}
	for _, fn := range window.anonymous {
		runGuarded(fn)
	}
}

// ClearFrames discards every pending callback without running any of them.
func ClearFrames() {
	sharedScheduler.pending = newFrameQueues()
}

func runGuarded(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			diag.Warnf(diag.Frame, "scheduled frame callback panicked: %v", r)
		}
	}()
	fn()
}
