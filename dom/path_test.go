package dom

import (
	"testing"

	"github.com/pulsarjs/pulsar/mockdom"
)

func TestResolveLeafTextContent(t *testing.T) {
	el := mockdom.NewMockElement("span")
	get, set := resolveLeaf(el, "textContent")
	set("hi")
	if got := get(); got != "hi" {
		t.Fatalf("get() = %q, want %q", got, "hi")
	}
	if got := el.TextContent(); got != "hi" {
		t.Fatalf("TextContent() = %q, want %q", got, "hi")
	}
}

func TestResolveLeafStyleProperty(t *testing.T) {
	el := mockdom.NewMockElement("div")
	get, set := resolveLeaf(el, "style.color")
	set("green")
	if got := get(); got != "green" {
		t.Fatalf("get() = %q, want %q", got, "green")
	}
}

func TestResolveLeafAttributeFallback(t *testing.T) {
	el := mockdom.NewMockElement("input")
	get, set := resolveLeaf(el, "data-id")
	set("42")
	if got := get(); got != "42" {
		t.Fatalf("get() = %q, want %q", got, "42")
	}
	if got := el.GetAttribute("data-id"); got != "42" {
		t.Fatalf("GetAttribute = %q, want %q", got, "42")
	}
}
