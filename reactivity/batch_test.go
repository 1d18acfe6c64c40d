package reactivity

import "testing"

func TestBatchCoalescesToOneRunPerSubscriber(t *testing.T) {
	c := CreateSignal(0)
	runs := 0
	CreateEffect(func() {
		c.Get()
		runs++
	})

	Batch(func() any {
		c.Set(10)
		c.Set(20)
		c.Set(30)
		return nil
	})

	if runs != 2 {
		t.Fatalf("runs = %d, want 2 (initial + one batched pass)", runs)
	}
	if got := c.Get(); got != 30 {
		t.Fatalf("c() = %d, want 30", got)
	}
}

func TestBatchDedupsSharedSubscriberAcrossSignals(t *testing.T) {
	a := CreateSignal(1)
	b := CreateSignal(2)
	runs := 0
	CreateEffect(func() {
		a.Get()
		b.Get()
		runs++
	})

	Batch(func() any {
		a.Set(10)
		b.Set(20)
		return nil
	})

	if runs != 2 {
		t.Fatalf("runs = %d, want 2 (initial + one batched pass shared by both writes)", runs)
	}
}

func TestNestedBatchesMergeIntoOuterWindow(t *testing.T) {
	c := CreateSignal(0)
	runs := 0
	CreateEffect(func() {
		c.Get()
		runs++
	})

	Batch(func() any {
		c.Set(1)
		Batch(func() any {
			c.Set(2)
			return nil
		})
		c.Set(3)
		return nil
	})

	if runs != 2 {
		t.Fatalf("runs = %d, want 2 (initial + one merged pass)", runs)
	}
}

func TestBatchReturnsResult(t *testing.T) {
	got := Batch(func() string { return "ok" })
	if got != "ok" {
		t.Fatalf("Batch result = %q, want %q", got, "ok")
	}
}
