package reactivity

// Memo is a lazy, cached derived value (spec.md C5): it recomputes only
// when a dependency has invalidated it since the last read, and behaves as
// both a subscriber (to its own dependencies) and, transitively, a
// publisher (outer readers end up subscribed directly to the memo's
// underlying signals — the "memoEffect path" of spec.md §4.4, which §9
// marks authoritative over the legacy signalUnsubscribes alternative; that
// alternative is not implemented at all).
type Memo[T any] interface {
	Get() T
}

type memoImpl[T any] struct {
	compute      func() T
	cached       T
	hasCached    bool
	dirty        bool
	dependencies *orderedSet[dependency]
	memoEffect   *Owner
}

// CreateMemo creates a Memo whose computation is deferred until first read
// (spec.md §4.4: "Else: dispose the previous memoEffect; install a fresh
// one... execute computeFn").
func CreateMemo[T any](compute func() T) Memo[T] {
	return &memoImpl[T]{compute: compute, dirty: true, dependencies: newOrderedSet[dependency]()}
}

func (m *memoImpl[T]) Get() T {
	if m.dirty || !m.hasCached {
		m.recompute()
	}
	m.mirrorToOuterOwner()
	return m.cached
}

// mirrorToOuterOwner attaches every signal this memo currently depends on
// directly to the active outer owner, so a write to any of them re-runs
// that outer owner — without this, only the memo's own (disposable,
// replaced-on-recompute) memoEffect would ever see the write.
func (m *memoImpl[T]) mirrorToOuterOwner() {
	o := CurrentOwner()
	if o == nil || o == m.memoEffect {
		return
	}
	for _, dep := range m.dependencies.Snapshot() {
		dep.subscribe(o)
		o.subs.Add(dep)
	}
}

// recompute installs a fresh memoEffect whose sole job, once a dependency
// changes, is to mark this memo dirty (invalidation only — no recompute
// happens until the next Get), then runs compute() under that owner so its
// signal reads populate dependencies for this cycle.
func (m *memoImpl[T]) recompute() {
	if m.memoEffect != nil {
		m.memoEffect.Dispose()
	}
	owner := newOwnerWithParent(nil, func() {
		m.dirty = true
	})
	m.memoEffect = owner

	var result T
	RunInScope(owner, func() {
		result = m.compute()
	})

	deps := newOrderedSet[dependency]()
	for _, dep := range owner.subs.Snapshot() {
		deps.Add(dep)
	}
	m.dependencies = deps
	m.cached = result
	m.hasCached = true
	m.dirty = false
}
