package value

// Item returns a Tag's numeric tag item, or 0 if v is not a Tag.
func (v Value) Item() uint64 {
	if v.n == nil || v.n.kind != KindTag {
		return 0
	}
	return v.n.tagItem
}

// SetItem changes a Tag's numeric item in place.
func (v Value) SetItem(item uint64) {
	if v.n == nil || v.n.kind != KindTag {
		return
	}
	v.n.tagItem = item
}

// Content returns a Tag's wrapped content, or None if v is not a Tag or
// carries no content.
func (v Value) Content() Value {
	if v.n == nil || v.n.kind != KindTag || v.n.tagContent == nil {
		return Value{}
	}
	return Value{n: v.n.tagContent}
}

// UnsetContent detaches and returns a Tag's content, leaving the Tag
// empty.
func (v Value) UnsetContent() Value {
	if v.n == nil || v.n.kind != KindTag || v.n.tagContent == nil {
		return Value{}
	}
	c := v.n.tagContent
	c.parent = nil
	v.n.tagContent = nil
	return Value{n: c}
}

// SetContent replaces a Tag's content with a free value, returning the
// previous content (or None). It panics with ErrPreconditionViolated if
// newContent is already owned.
func (v Value) SetContent(newContent Value) Value {
	if v.n == nil || v.n.kind != KindTag {
		return Value{}
	}
	if newContent.n != nil && newContent.n.parent != nil {
		panic(ErrPreconditionViolated)
	}
	old := v.UnsetContent()
	if newContent.n != nil {
		newContent.n.parent = v.n
		v.n.tagContent = newContent.n
	}
	return old
}
