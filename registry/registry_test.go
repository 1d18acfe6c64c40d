package registry_test

import (
	"encoding/json"
	"testing"

	"github.com/pulsarjs/pulsar/bridge"
	"github.com/pulsarjs/pulsar/dom"
	"github.com/pulsarjs/pulsar/mockdom"
	"github.com/pulsarjs/pulsar/reactivity"
	"github.com/pulsarjs/pulsar/registry"
)

func TestWireAttachesDisposerReachableFromDisposeTree(t *testing.T) {
	registry.Reset()
	doc := mockdom.NewMockDocument()
	root := doc.CreateElement("div")
	doc.Body().AppendChild(root)

	count := reactivity.CreateSignal("0")
	registry.Wire(root, "textContent", dom.FromSignal(count))

	if root.TextContent() != "0" {
		t.Fatalf("wire did not write initial value")
	}

	registry.DisposeTree(root)
	count.Set("1")

	if got := root.TextContent(); got != "0" {
		t.Fatalf("TextContent() = %q, want %q (disposed wire must not rerun)", got, "0")
	}
}

func TestDisposeElementIsIdempotent(t *testing.T) {
	registry.Reset()
	doc := mockdom.NewMockDocument()
	el := doc.CreateElement("span")
	doc.Body().AppendChild(el)

	registry.Wire(el, "textContent", dom.FromValue("x"))

	registry.DisposeElement(el)
	registry.DisposeElement(el) // must not panic
}

func TestExecuteAndWireCompose(t *testing.T) {
	registry.Reset()
	doc := mockdom.NewMockDocument()

	label := reactivity.CreateSignal("hi")
	el := registry.Execute("greeting", "", func() bridge.Element {
		div := doc.CreateElement("div")
		doc.Body().AppendChild(div)
		registry.Wire(div, "textContent", dom.FromSignal(label))
		return div
	})

	if got := el.TextContent(); got != "hi" {
		t.Fatalf("TextContent() = %q, want %q", got, "hi")
	}

	registry.DisposeTree(el)
	label.Set("bye")
	if got := el.TextContent(); got != "hi" {
		t.Fatalf("TextContent() = %q, want %q (must not write after disposeTree)", got, "hi")
	}
}

func TestNextHidIsMonotonic(t *testing.T) {
	registry.Reset()
	a := registry.NextHid()
	b := registry.NextHid()
	if b <= a {
		t.Fatalf("NextHid() not monotonic: %d then %d", a, b)
	}
}

func TestDumpAndBootRoundTripWithoutNotifying(t *testing.T) {
	registry.Reset()
	s := reactivity.CreateSignal("alice")
	registry.RegisterSignal("user.name", s)

	runs := 0
	reactivity.CreateEffect(func() {
		s.Get()
		runs++
	})

	state := registry.Dump()
	s.Set("bob")
	if runs != 2 {
		t.Fatalf("runs = %d, want 2 after a real write", runs)
	}

	registry.Boot(state)
	if got := s.Get(); got != "alice" {
		t.Fatalf("s.Get() = %q, want %q after boot", got, "alice")
	}
	if runs != 2 {
		t.Fatalf("runs = %d, want 2 (boot must not notify subscribers)", runs)
	}
}

func TestDumpAndBootSurvivesRealJSONRoundTrip(t *testing.T) {
	registry.Reset()
	count := reactivity.CreateSignal(7)
	registry.RegisterSignal("counter", count)

	state := registry.Dump()
	raw, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}

	count.Set(99)

	var decoded registry.State
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}

	// decoded.Signals["counter"] is a float64 at this point (encoding/json
	// decodes every JSON number into interface{} as float64), not the int
	// count.Get() originally produced. Boot must still restore it.
	registry.Boot(decoded)
	if got := count.Get(); got != 7 {
		t.Fatalf("count.Get() = %d, want 7 after booting from a JSON round trip", got)
	}
}

func TestGetStatsReflectsRegisteredSignals(t *testing.T) {
	registry.Reset()
	s := reactivity.CreateSignal(1)
	registry.RegisterSignal("n", s)

	stats := registry.GetStats()
	if stats.RegisteredSignals != 1 {
		t.Fatalf("RegisteredSignals = %d, want 1", stats.RegisteredSignals)
	}
}
