package reactivity

import "testing"

func TestSignalGetSet(t *testing.T) {
	s := CreateSignal(1)
	if got := s.Get(); got != 1 {
		t.Fatalf("initial value = %d, want 1", got)
	}

	runs := 0
	_ = CreateEffect(func() {
		_ = s.Get()
		runs++
	})
	if runs != 1 {
		t.Fatalf("effect initial runs = %d, want 1", runs)
	}

	s.Set(2)
	if got := s.Get(); got != 2 {
		t.Fatalf("after set value = %d, want 2", got)
	}
	if runs != 2 {
		t.Fatalf("effect runs after set = %d, want 2", runs)
	}
}

func TestSignalNoTriggerOnEqualValue(t *testing.T) {
	s := CreateSignal(0)
	runs := 0
	_ = CreateEffect(func() {
		_ = s.Get()
		runs++
	})
	s.Set(0)
	if runs != 1 {
		t.Fatalf("runs after setting the same value = %d, want 1", runs)
	}
}

func TestSignalUnrelatedWriteDoesNotTrigger(t *testing.T) {
	s1 := CreateSignal(1)
	s2 := CreateSignal(10)
	runs := 0
	_ = CreateEffect(func() {
		_ = s1.Get()
		runs++
	})
	s2.Set(20)
	if runs != 1 {
		t.Fatalf("runs after unrelated signal write = %d, want 1", runs)
	}
}

func TestSignalUpdate(t *testing.T) {
	s := CreateSignal(5)
	s.Update(func(prev int) int { return prev + 1 })
	if got := s.Get(); got != 6 {
		t.Fatalf("value after Update = %d, want 6", got)
	}
}

func TestSignalCounterEndToEnd(t *testing.T) {
	c := CreateSignal(0)
	runs := 0
	CreateEffect(func() {
		c.Get()
		runs++
	})
	c.Set(1)
	c.Set(2)
	c.Set(2)
	if runs != 3 {
		t.Fatalf("runs = %d, want 3 (initial + two distinct writes)", runs)
	}
}

func TestSignalDependencyDrop(t *testing.T) {
	a := CreateSignal("A")
	b := CreateSignal("B")
	runs := 0
	CreateEffect(func() {
		runs++
		if a.Get() == "A" {
			b.Get()
		}
	})

	a.Set("A") // filtered by equality, no run
	if runs != 1 {
		t.Fatalf("runs after redundant write = %d, want 1", runs)
	}

	b.Set("X") // effect still reads b
	if runs != 2 {
		t.Fatalf("runs after b write = %d, want 2", runs)
	}

	a.Set("Z") // effect no longer reads b on this run
	if runs != 3 {
		t.Fatalf("runs after a write = %d, want 3", runs)
	}

	b.Set("Y") // dropped dependency: must not trigger
	if runs != 3 {
		t.Fatalf("runs after dropped-dependency write = %d, want 3", runs)
	}
}

func TestSignalDisposeStopsNotifications(t *testing.T) {
	s := CreateSignal(0)
	runs := 0
	eff := CreateEffect(func() {
		s.Get()
		runs++
	})
	eff.Dispose()
	s.Set(1)
	if runs != 1 {
		t.Fatalf("runs after disposing the effect = %d, want 1", runs)
	}
}
