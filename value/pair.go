package value

// Key returns a Pair's key, or None if v is not a Pair or has no key.
func (v Value) Key() Value {
	if v.n == nil || v.n.kind != KindPair || v.n.pairKey == nil {
		return Value{}
	}
	return Value{n: v.n.pairKey}
}

// Val returns a Pair's value, or None if v is not a Pair or has no
// value. Named Val rather than Value to avoid colliding with the
// package's own type name at call sites.
func (v Value) Val() Value {
	if v.n == nil || v.n.kind != KindPair || v.n.pairVal == nil {
		return Value{}
	}
	return Value{n: v.n.pairVal}
}

// UnsetKey detaches and returns a Pair's key, leaving the Pair keyless.
func (v Value) UnsetKey() Value {
	if v.n == nil || v.n.kind != KindPair || v.n.pairKey == nil {
		return Value{}
	}
	k := v.n.pairKey
	k.parent = nil
	v.n.pairKey = nil
	return Value{n: k}
}

// UnsetVal detaches and returns a Pair's value, leaving the Pair
// valueless.
func (v Value) UnsetVal() Value {
	if v.n == nil || v.n.kind != KindPair || v.n.pairVal == nil {
		return Value{}
	}
	val := v.n.pairVal
	val.parent = nil
	v.n.pairVal = nil
	return Value{n: val}
}

// SetKey replaces a Pair's key with a free value, returning the
// previous key (or None). It panics with ErrPreconditionViolated if
// newKey is already owned.
func (v Value) SetKey(newKey Value) Value {
	if v.n == nil || v.n.kind != KindPair {
		return Value{}
	}
	if newKey.n != nil && newKey.n.parent != nil {
		panic(ErrPreconditionViolated)
	}
	old := v.UnsetKey()
	if newKey.n != nil {
		newKey.n.parent = v.n
		v.n.pairKey = newKey.n
	}
	return old
}

// SetVal replaces a Pair's value with a free value, returning the
// previous value (or None). It panics with ErrPreconditionViolated if
// newVal is already owned.
func (v Value) SetVal(newVal Value) Value {
	if v.n == nil || v.n.kind != KindPair {
		return Value{}
	}
	if newVal.n != nil && newVal.n.parent != nil {
		panic(ErrPreconditionViolated)
	}
	old := v.UnsetVal()
	if newVal.n != nil {
		newVal.n.parent = v.n
		v.n.pairVal = newVal.n
	}
	return old
}
