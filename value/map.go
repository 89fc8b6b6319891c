package value

// Find returns the Pair entry whose key is a Text value equal to key, or
// None if v is not a Map or no such entry exists. Mirrors the reference
// cbor_map_find.
func (v Value) Find(key string) Value {
	if v.n == nil || v.n.kind != KindMap {
		return Value{}
	}
	for _, it := range v.n.items {
		if it.pairKey != nil && it.pairKey.kind == KindText && string(it.pairKey.bytes) == key {
			return Value{n: it}
		}
	}
	return Value{}
}

// Get returns the value associated with key in Map v, or None if absent.
// It is Find(key).Val() with the None-safety already applied.
func (v Value) Get(key string) Value {
	return v.Find(key).Val()
}

// SetValue upserts key -> val in Map v: if key is present its Pair's
// value is replaced (the previous value is detached and discarded);
// otherwise a new Pair is appended at the tail. val must be free.
// Mirrors the reference cbor_map_set_value.
func (v Value) SetValue(key string, val Value) error {
	if v.n == nil || v.n.kind != KindMap {
		return ErrNotContainer
	}
	if val.n != nil && val.n.parent != nil {
		return ErrNotFree
	}
	if existing := v.Find(key); existing.Valid() {
		existing.SetVal(val)
		return nil
	}
	pair := PairOf(Text(key), val)
	return v.InsertTail(pair)
}

// SetInteger upserts key -> Integer(i) in Map v.
func (v Value) SetInteger(key string, i int64) error { return v.SetValue(key, Integer(i)) }

// SetReal upserts key -> Real(f) in Map v.
func (v Value) SetReal(key string, f float64) error { return v.SetValue(key, Real(f)) }

// SetBoolean upserts key -> Boolean(b) in Map v.
func (v Value) SetBoolean(key string, b bool) error { return v.SetValue(key, Boolean(b)) }

// SetText upserts key -> Text(s) in Map v.
func (v Value) SetText(key string, s string) error { return v.SetValue(key, Text(s)) }

// SetNull upserts key -> Null() in Map v.
func (v Value) SetNull(key string) error { return v.SetValue(key, Null()) }

// RemoveKey removes the entry for key from Map v and returns its
// detached value, or returns ErrNotOwned if no entry has that key.
// Mirrors the reference cbor_map_remove.
func (v Value) RemoveKey(key string) (Value, error) {
	if v.n == nil || v.n.kind != KindMap {
		return Value{}, ErrNotContainer
	}
	pair := v.Find(key)
	if !pair.Valid() {
		return Value{}, ErrNotOwned
	}
	if _, err := v.Remove(pair); err != nil {
		return Value{}, err
	}
	return pair.UnsetVal(), nil
}
