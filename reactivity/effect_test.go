package reactivity

import "testing"

func TestEffectRunsEagerlyOnCreation(t *testing.T) {
	ran := false
	CreateEffect(func() { ran = true })
	if !ran {
		t.Fatalf("effect did not run eagerly")
	}
}

func TestEffectDisposeIsIdempotent(t *testing.T) {
	s := CreateSignal(0)
	runs := 0
	eff := CreateEffect(func() {
		s.Get()
		runs++
	})
	eff.Dispose()
	eff.Dispose() // must not panic
	s.Set(1)
	if runs != 1 {
		t.Fatalf("runs = %d, want 1", runs)
	}
}

func TestEffectSelfReentrantWriteIsClampedNotRecursive(t *testing.T) {
	s := CreateSignal(0)
	runs := 0
	CreateEffect(func() {
		runs++
		v := s.Get()
		if v < 3 {
			s.Set(v + 1)
		}
	})
	if runs != 4 {
		t.Fatalf("runs = %d, want 4 (initial run + 3 self-triggered reruns)", runs)
	}
	if got := s.Get(); got != 3 {
		t.Fatalf("s() = %d, want 3", got)
	}
}

func TestEffectPanicIsIsolatedAndDoesNotBreakOtherSubscribers(t *testing.T) {
	s := CreateSignal(0)
	otherRan := 0
	CreateEffect(func() {
		s.Get()
		panic("boom")
	})
	CreateEffect(func() {
		s.Get()
		otherRan++
	})

	s.Set(1) // must not panic out of Set
	if otherRan != 2 {
		t.Fatalf("otherRan = %d, want 2", otherRan)
	}
}

func TestEffectOnErrorObservesPanic(t *testing.T) {
	s := CreateSignal(0)
	var seen error
	eff := CreateEffect(func() {
		if s.Get() > 0 {
			panic("kaboom")
		}
	})
	eff.OnError(func(err error) { seen = err })

	s.Set(1)
	if seen == nil {
		t.Fatalf("OnError handler did not observe the panic")
	}
}

func TestEffectNestedOwnerDisposedWithParent(t *testing.T) {
	s := CreateSignal(0)
	innerRuns := 0
	var outerRuns int
	outer := CreateEffect(func() {
		outerRuns++
		CreateEffect(func() {
			s.Get()
			innerRuns++
		})
	})
	s.Set(1)
	// The inner effect created during the outer's single run is a child;
	// while the outer effect is alive and does not re-run, the inner keeps
	// tracking s independently.
	if innerRuns != 2 {
		t.Fatalf("innerRuns = %d, want 2", innerRuns)
	}
	// Disposing the outer effect disposes the inner one with it.
	outer.Dispose()
	s.Set(2)
	if innerRuns != 2 {
		t.Fatalf("innerRuns after disposing parent = %d, want 2", innerRuns)
	}
	_ = outerRuns
}
