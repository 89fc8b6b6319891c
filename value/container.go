package value

// Size returns the number of elements in an Array or Map, or 0 for
// anything else.
func (v Value) Size() int {
	if v.n == nil || (v.n.kind != KindArray && v.n.kind != KindMap) {
		return 0
	}
	return len(v.n.items)
}

// Empty reports whether an Array or Map has no elements. Non-containers
// and "none" report true.
func (v Value) Empty() bool {
	return v.Size() == 0
}

// First returns the first element of an Array or Map, or None if empty
// or not a container.
func (v Value) First() Value {
	if v.n == nil || len(v.n.items) == 0 {
		return Value{}
	}
	return Value{n: v.n.items[0]}
}

// Last returns the last element of an Array or Map, or None if empty or
// not a container.
func (v Value) Last() Value {
	if v.n == nil || len(v.n.items) == 0 {
		return Value{}
	}
	return Value{n: v.n.items[len(v.n.items)-1]}
}

// indexOf returns the slice position of elm within container's items, or
// -1 if elm is not a direct member.
func indexOf(container *node, elm *node) int {
	for i, it := range container.items {
		if it == elm {
			return i
		}
	}
	return -1
}

// Next returns the element following elm within v (an Array or Map), or
// None if elm is the last element, is not a member of v, or v is not a
// container.
func (v Value) Next(elm Value) Value {
	if v.n == nil || elm.n == nil {
		return Value{}
	}
	i := indexOf(v.n, elm.n)
	if i < 0 || i+1 >= len(v.n.items) {
		return Value{}
	}
	return Value{n: v.n.items[i+1]}
}

// Prev returns the element preceding elm within v, or None if elm is the
// first element, is not a member of v, or v is not a container.
func (v Value) Prev(elm Value) Value {
	if v.n == nil || elm.n == nil {
		return Value{}
	}
	i := indexOf(v.n, elm.n)
	if i <= 0 {
		return Value{}
	}
	return Value{n: v.n.items[i-1]}
}

// checkInsertable validates the shared insert precondition: the
// container must be an Array or Map, the inserted value must be free,
// and if the container is a Map the value must be a Pair.
func checkInsertable(container *node, val *node) error {
	if container == nil || (container.kind != KindArray && container.kind != KindMap) {
		return ErrNotContainer
	}
	if val == nil {
		return nil
	}
	if val.parent != nil {
		return ErrNotFree
	}
	if container.kind == KindMap && val.kind != KindPair {
		return ErrWrongContainerKind
	}
	return nil
}

// InsertHead inserts val at the front of v (an Array or Map). val must
// be free, and for a Map must be a Pair.
func (v Value) InsertHead(val Value) error {
	if err := checkInsertable(v.n, val.n); err != nil {
		return err
	}
	if val.n == nil {
		return nil
	}
	val.n.parent = v.n
	v.n.items = append(v.n.items, nil)
	copy(v.n.items[1:], v.n.items)
	v.n.items[0] = val.n
	return nil
}

// InsertTail inserts val at the back of v (an Array or Map). val must be
// free, and for a Map must be a Pair.
func (v Value) InsertTail(val Value) error {
	if err := checkInsertable(v.n, val.n); err != nil {
		return err
	}
	if val.n == nil {
		return nil
	}
	val.n.parent = v.n
	v.n.items = append(v.n.items, val.n)
	return nil
}

// InsertBefore inserts val immediately before pivot, which must be a
// current member of v.
func (v Value) InsertBefore(pivot, val Value) error {
	if err := checkInsertable(v.n, val.n); err != nil {
		return err
	}
	i := indexOf(v.n, pivot.n)
	if i < 0 {
		return ErrNotOwned
	}
	if val.n == nil {
		return nil
	}
	val.n.parent = v.n
	v.n.items = append(v.n.items, nil)
	copy(v.n.items[i+1:], v.n.items[i:])
	v.n.items[i] = val.n
	return nil
}

// InsertAfter inserts val immediately after pivot, which must be a
// current member of v.
func (v Value) InsertAfter(pivot, val Value) error {
	if err := checkInsertable(v.n, val.n); err != nil {
		return err
	}
	i := indexOf(v.n, pivot.n)
	if i < 0 {
		return ErrNotOwned
	}
	if val.n == nil {
		return nil
	}
	val.n.parent = v.n
	v.n.items = append(v.n.items, nil)
	copy(v.n.items[i+2:], v.n.items[i+1:])
	v.n.items[i+1] = val.n
	return nil
}

// Remove detaches elm from v, clearing elm's parent back-reference, and
// returns it as a newly-free value. elm must be a current member of v.
func (v Value) Remove(elm Value) (Value, error) {
	if v.n == nil || (v.n.kind != KindArray && v.n.kind != KindMap) {
		return Value{}, ErrNotContainer
	}
	i := indexOf(v.n, elm.n)
	if i < 0 {
		return Value{}, ErrNotOwned
	}
	v.n.items = append(v.n.items[:i], v.n.items[i+1:]...)
	elm.n.parent = nil
	return elm, nil
}

// Clear detaches and discards every element of v, leaving it empty.
func (v Value) Clear() error {
	if v.n == nil || (v.n.kind != KindArray && v.n.kind != KindMap) {
		return ErrNotContainer
	}
	for _, it := range v.n.items {
		it.parent = nil
	}
	v.n.items = nil
	return nil
}

// Swap exchanges the contents of two containers of the same kind
// (Array<->Array or Map<->Map), re-parenting every child of both so the
// parent invariant holds for their new owner.
func Swap(a, b Value) error {
	if a.n == nil || b.n == nil {
		return ErrNotContainer
	}
	if a.n.kind != b.n.kind || (a.n.kind != KindArray && a.n.kind != KindMap) {
		return ErrNotContainer
	}
	a.n.items, b.n.items = b.n.items, a.n.items
	for _, it := range a.n.items {
		it.parent = a.n
	}
	for _, it := range b.n.items {
		it.parent = b.n
	}
	return nil
}

// Concat moves every element of src to the tail of dst, re-parenting
// them, and leaves src empty. dst and src must be containers of the same
// kind.
func Concat(dst, src Value) error {
	if dst.n == nil || src.n == nil {
		return ErrNotContainer
	}
	if dst.n.kind != src.n.kind || (dst.n.kind != KindArray && dst.n.kind != KindMap) {
		return ErrNotContainer
	}
	for _, it := range src.n.items {
		it.parent = dst.n
	}
	dst.n.items = append(dst.n.items, src.n.items...)
	src.n.items = nil
	return nil
}
