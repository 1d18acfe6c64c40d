package comps

import (
	"bytes"

	"github.com/pulsarjs/pulsar/bridge"
	g "maragu.dev/gomponents"
)

// RenderInto creates a tag element under doc, renders node's static markup
// into it via gomponents, and returns the element so the caller can wire
// reactive leaves onto it with dom.Wire. This mirrors the teacher's Mount
// (comps/mount.go: `container.Set("innerHTML", buf.String())`), just
// generalized to any bridge.Document instead of only the real browser
// document — the browser/mock DOM is responsible for whatever structural
// parsing "innerHTML" implies on that target, the same division of labor
// the teacher relies on.
func RenderInto(doc bridge.Document, tag string, node g.Node) bridge.Element {
	el := doc.CreateElement(tag)
	var buf bytes.Buffer
	_ = node.Render(&buf)
	el.SetInnerHTML(buf.String())
	return el
}
