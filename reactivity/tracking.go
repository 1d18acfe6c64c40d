package reactivity

// trackingStack is the process-wide current-owner stack (spec.md C2): a
// read performed while it is non-empty attributes to its innermost entry
// only. Nested reads never attribute transitively; a Memo does that
// explicitly by copying its own dependencies onto the outer owner (see
// memo.go).
var trackingStack []*Owner

func pushOwner(o *Owner) {
	trackingStack = append(trackingStack, o)
}

// popOwner must be called exactly once for every pushOwner, in LIFO order;
// owner.runOnce enforces this with a defer so a panicking fn still balances
// the stack.
func popOwner() {
	if len(trackingStack) == 0 {
		return
	}
	trackingStack = trackingStack[:len(trackingStack)-1]
}
