package reactivity

// batchWindow is the pending-subscriber collector for one (possibly
// nested) batch window (spec.md C6 / §4.5): nested batches merge into the
// outermost window's set rather than creating independent windows.
type batchWindow struct {
	depth   int
	pending *orderedSet[*Owner]
}

func (b *batchWindow) enqueue(o *Owner) {
	b.pending.Add(o)
}

// currentBatch is the process-wide open batch window, or nil when no
// batch is active (spec.md §5: the batch-depth counter is a process-global
// mutable singleton, safe under the single-threaded cooperative model).
var currentBatch *batchWindow

// panicSink, while non-nil, additionally observes every dispatch-boundary
// panic reported by Owner.reportPanic. drain uses it to implement §4.5's
// "the first error is re-raised after draining" without weakening §7's
// ordinary isolation of a bare (non-batched) write's subscribers.
var panicSink func(error)

// Batch groups every signal write performed inside fn into one
// notification pass: each unique subscriber runs at most once, in the
// order it was first inserted into the pending set during the window
// (spec.md §4.5, testable property #4). If fn itself panics, the deferred
// unwind below still drains whatever was enqueued before propagating that
// panic — draining is not skipped just because the batch body failed.
func Batch[T any](fn func() T) T {
	opened := currentBatch == nil
	if opened {
		currentBatch = &batchWindow{pending: newOrderedSet[*Owner]()}
	}
	currentBatch.depth++

	var result T
	func() {
		defer func() {
			currentBatch.depth--
			if currentBatch.depth > 0 {
				return
			}
			window := currentBatch
			currentBatch = nil
			drain(window)
		}()
		result = fn()
	}()
	return result
}

// drain runs every subscriber enqueued during the window exactly once, in
// insertion order, then re-raises the first subscriber panic observed (if
// any) to the Batch caller — each subscriber still runs regardless of an
// earlier one's failure, since Owner.Run isolates panics internally.
func drain(w *batchWindow) {
	var firstErr error
	prevSink := panicSink
	panicSink = func(err error) {
		if firstErr == nil {
			firstErr = err
		}
		if prevSink != nil {
			prevSink(err)
		}
	}
	defer func() { panicSink = prevSink }()

	for _, o := range w.pending.Snapshot() {
		o.Run()
	}
	if firstErr != nil {
		panic(firstErr)
	}
}
