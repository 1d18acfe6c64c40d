package dom

import "github.com/pulsarjs/pulsar/bridge"

// IsDetached reports whether el has left its document root, the condition
// under which a wire's run short-circuits without writing (spec.md §4.8,
// §9: "skip the write ... if the element is no longer connected"). It is a
// thin, named wrapper over Element.Connected so call sites read as intent
// ("is this node gone?") rather than a bare boolean negation.
func IsDetached(el bridge.Element) bool {
	return !el.Connected()
}

// DisposeTree walks root's bridge.Element subtree depth-first, invoking
// disposeOne on every descendant before root itself (spec.md §4.9).
// Callers own the per-element disposer bookkeeping (registry.DisposeTree
// passes its own DisposeElement as disposeOne); this helper only owns the
// tree-walk order.
func DisposeTree(root bridge.Element, disposeOne func(bridge.Element)) {
	for _, child := range root.Children() {
		DisposeTree(child, disposeOne)
	}
	disposeOne(root)
}
