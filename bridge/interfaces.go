// Package bridge abstracts the handful of DOM operations the reactive
// kernel's wire needs to navigate and mutate a node's leaf properties,
// so the kernel can be exercised under plain `go test` (mockdom) as well
// as compiled to js/wasm against a real document (honnef.co/go/js/dom/v2).
package bridge

// Note: Element is implemented by:
//   - real_bridge.go for js && wasm builds (wraps honnef.co/go/js/dom/v2)
//   - github.com/pulsarjs/pulsar/mockdom for !js || !wasm builds (tests)

// Style represents the inline style bag of an Element.
type Style interface {
	Get(property string) string
	Set(property, value string)
	Remove(property string)
}

// Element is the minimal navigable-property surface a Wire needs: leaf
// property access plus enough tree structure for disposeTree to walk a
// subtree and for a wire's run to detect that its target was detached.
type Element interface {
	TagName() string

	GetAttribute(name string) string
	SetAttribute(name, value string)
	RemoveAttribute(name string)

	ClassName() string
	SetClassName(className string)

	TextContent() string
	SetTextContent(text string)

	InnerHTML() string
	SetInnerHTML(html string)

	Value() string
	SetValue(value string)

	Style() Style

	Parent() Element
	Children() []Element
	AppendChild(child Element)
	RemoveChild(child Element)

	// Connected reports whether the element is still attached to a
	// document root. A wire's run short-circuits once this is false
	// (spec.md §4.8, §9).
	Connected() bool

	// Raw returns the underlying platform value (js.Value on wasm,
	// the mock node itself off-wasm) for advanced interop.
	Raw() any
}

// Document creates elements and locates the document root used by
// Connected() to decide whether a node is still live.
type Document interface {
	CreateElement(tagName string) Element
	GetElementByID(id string) Element
	Body() Element
}
