package dom_test

import (
	"testing"

	"github.com/pulsarjs/pulsar/bridge"
	"github.com/pulsarjs/pulsar/dom"
	"github.com/pulsarjs/pulsar/mockdom"
)

func TestIsDetached(t *testing.T) {
	doc := mockdom.NewMockDocument()
	el := connectedElement(doc, "div")

	if dom.IsDetached(el) {
		t.Fatalf("freshly appended element reported detached")
	}

	doc.Body().RemoveChild(el)
	if !dom.IsDetached(el) {
		t.Fatalf("removed element reported connected")
	}
}

func TestDisposeTreeWalksDeepestFirst(t *testing.T) {
	doc := mockdom.NewMockDocument()
	root := connectedElement(doc, "ul")
	child := doc.CreateElement("li")
	root.AppendChild(child)

	var order []string
	dom.DisposeTree(root, func(el bridge.Element) {
		order = append(order, el.TagName())
	})

	if len(order) != 2 || order[0] != "li" || order[1] != "ul" {
		t.Fatalf("order = %v, want [li ul]", order)
	}
}
