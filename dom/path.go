// Package dom implements Wire (spec.md C10): the bridge that drives a DOM
// property from a reactive source and tracks per-node disposers. It sits
// on top of bridge.Element so the same wiring logic runs against a real
// browser node (js/wasm) or the mock DOM used by native tests.
package dom

import (
	"strings"

	"github.com/pulsarjs/pulsar/bridge"
)

// resolveLeaf navigates a dot-split property path from el (spec.md §4.8)
// and returns get/set closures for the leaf. The recognized leaves mirror
// the bridge.Element surface: textContent, innerHTML, value, className,
// style.<property>; any other single segment is treated as an element
// attribute, matching how the teacher's RealDOMElement exposes attributes
// as the catch-all case (bridge/real_bridge.go).
func resolveLeaf(el bridge.Element, path string) (get func() string, set func(string)) {
	segments := strings.Split(path, ".")

	if len(segments) == 2 && segments[0] == "style" {
		prop := segments[1]
		return func() string { return el.Style().Get(prop) },
			func(v string) { el.Style().Set(prop, v) }
	}

	switch path {
	case "textContent":
		return el.TextContent, el.SetTextContent
	case "innerHTML":
		return el.InnerHTML, el.SetInnerHTML
	case "value":
		return el.Value, el.SetValue
	case "className":
		return el.ClassName, el.SetClassName
	}

	name := segments[len(segments)-1]
	return func() string { return el.GetAttribute(name) },
		func(v string) { el.SetAttribute(name, v) }
}
