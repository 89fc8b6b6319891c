package value

// ReplaceContent overwrites dst's content with src's, preserving dst's
// node identity (and therefore dst's own parent back-reference) so every
// existing handle to dst observes the new content. src is consumed: its
// node is torn down into dst rather than copied, so src must not be used
// afterward. This is how the pointer/patch engine implements "replace
// the root's content" while callers keep their root reference valid, in
// a language without a swap-a-pointer-in-place trick: a Value here is a
// handle to a node, not the node itself, so replacing what a handle
// points at must mutate the node in place.
//
// ReplaceContent does nothing if dst is the "none" sentinel.
func ReplaceContent(dst, src Value) {
	if dst.n == nil {
		return
	}
	parent := dst.n.parent
	*dst.n = node{parent: parent}
	if src.n == nil {
		return
	}
	n := dst.n
	n.kind = src.n.kind
	n.magnitude = src.n.magnitude
	n.bytes = append([]byte(nil), src.n.bytes...)
	n.tagItem = src.n.tagItem
	n.sctrl = src.n.sctrl
	n.sreal = src.n.sreal
	n.extension = src.n.extension

	n.items = src.n.items
	for _, it := range n.items {
		it.parent = n
	}
	if src.n.tagContent != nil {
		n.tagContent = src.n.tagContent
		n.tagContent.parent = n
	}
	if src.n.pairKey != nil {
		n.pairKey = src.n.pairKey
		n.pairKey.parent = n
	}
	if src.n.pairVal != nil {
		n.pairVal = src.n.pairVal
		n.pairVal.parent = n
	}
}
