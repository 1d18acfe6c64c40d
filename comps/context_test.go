package comps_test

import (
	"testing"

	"github.com/pulsarjs/pulsar/bridge"
	"github.com/pulsarjs/pulsar/comps"
	"github.com/pulsarjs/pulsar/mockdom"
)

func TestExecuteRunsMountCallbacksInline(t *testing.T) {
	doc := mockdom.NewMockDocument()
	var order []string

	comps.Execute("c1", "", func() bridge.Element {
		comps.OnMount(func() { order = append(order, "a") })
		comps.OnMount(func() { order = append(order, "b") })
		return doc.CreateElement("div")
	})

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("order = %v, want [a b]", order)
	}
}

func TestExecuteAttachesCleanupToDisposerSet(t *testing.T) {
	var attachedEl bridge.Element
	var cleaned bool
	comps.RegisterDisposer = func(el bridge.Element, d func()) {
		attachedEl = el
		d()
	}
	defer func() { comps.RegisterDisposer = nil }()

	doc := mockdom.NewMockDocument()
	el := comps.Execute("c2", "", func() bridge.Element {
		comps.OnCleanup(func() { cleaned = true })
		return doc.CreateElement("div")
	})

	if attachedEl != el {
		t.Fatalf("disposer was not attached to the returned element")
	}
	if !cleaned {
		t.Fatalf("cleanup callback never ran")
	}
}

func TestExecuteFiresPreviousUpdateCallbacksOnReExecution(t *testing.T) {
	doc := mockdom.NewMockDocument()
	updateRuns := 0

	comps.Execute("c3", "", func() bridge.Element {
		comps.OnUpdate(func() { updateRuns++ })
		return doc.CreateElement("div")
	})
	if updateRuns != 0 {
		t.Fatalf("updateRuns = %d, want 0 before any re-execution", updateRuns)
	}

	comps.Execute("c3", "", func() bridge.Element {
		return doc.CreateElement("div")
	})
	if updateRuns != 1 {
		t.Fatalf("updateRuns = %d, want 1 after one re-execution", updateRuns)
	}
}

func TestExecutePopsContextAndSlotOnFactoryPanic(t *testing.T) {
	doc := mockdom.NewMockDocument()

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected Execute to propagate the factory panic")
			}
		}()
		comps.Execute("c4", "", func() bridge.Element {
			panic("factory exploded")
		})
	}()

	if comps.CurrentContext() != nil {
		t.Fatalf("component context leaked after a factory panic")
	}

	// the stack must be usable afterward
	el := comps.Execute("c5", "", func() bridge.Element {
		return doc.CreateElement("span")
	})
	if el == nil {
		t.Fatalf("Execute after a panicking sibling returned nil")
	}
}

func TestOnMountOutsideExecuteIsNoop(t *testing.T) {
	comps.OnMount(func() { t.Fatalf("should never run") })
}
