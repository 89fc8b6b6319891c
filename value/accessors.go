package value

// AsInteger coerces v to an int64. It accepts KindUint and KindNegInt
// (the two integer variants) and returns 0 for anything else, including
// the "none" sentinel. Magnitudes outside the int64 range wrap using
// Go's normal uint64->int64 conversion, matching the reference's use of
// a signed long long accumulator.
func (v Value) AsInteger() int64 {
	if v.n == nil {
		return 0
	}
	switch v.n.kind {
	case KindUint:
		return int64(v.n.magnitude)
	case KindNegInt:
		return -1 - int64(v.n.magnitude)
	default:
		return 0
	}
}

// AsUint returns the raw magnitude for KindUint, or 0 otherwise. Unlike
// AsInteger this exposes values beyond math.MaxInt64 without wrapping.
func (v Value) AsUint() uint64 {
	if v.n == nil || v.n.kind != KindUint {
		return 0
	}
	return v.n.magnitude
}

// NegMagnitude returns the raw encoded magnitude for KindNegInt (the
// value -1-m), or 0 otherwise.
func (v Value) NegMagnitude() uint64 {
	if v.n == nil || v.n.kind != KindNegInt {
		return 0
	}
	return v.n.magnitude
}

// AsReal coerces v to a float64. It accepts KindSimple with SimpleReal,
// and defensively also accepts KindUint/KindNegInt (mirroring the
// reference's cbor_real, which coerces integers too). Anything else
// yields 0.
func (v Value) AsReal() float64 {
	if v.n == nil {
		return 0
	}
	switch v.n.kind {
	case KindSimple:
		if v.n.sctrl == SimpleReal {
			return v.n.sreal
		}
		return 0
	case KindUint:
		return float64(v.n.magnitude)
	case KindNegInt:
		return float64(-1 - int64(v.n.magnitude))
	default:
		return 0
	}
}

// AsText returns v's UTF-8 text, or "" if v is not KindText.
func (v Value) AsText() string {
	if v.n == nil || v.n.kind != KindText {
		return ""
	}
	return string(v.n.bytes)
}

// AsTextBytes returns v's raw text octets without a copy, or nil if v is
// not KindText. Callers must not mutate the returned slice.
func (v Value) AsTextBytes() []byte {
	if v.n == nil || v.n.kind != KindText {
		return nil
	}
	return v.n.bytes
}

// AsBytes returns a copy of v's byte-string payload, or nil if v is not
// KindBytes.
func (v Value) AsBytes() []byte {
	if v.n == nil || v.n.kind != KindBytes {
		return nil
	}
	return append([]byte(nil), v.n.bytes...)
}

// AsBoolean coerces v to a bool. Only KindSimple with SimpleTrue/False
// answer true/false respectively; everything else, including "none",
// answers false.
func (v Value) AsBoolean() bool {
	if v.n == nil || v.n.kind != KindSimple {
		return false
	}
	return v.n.sctrl == SimpleTrue
}

// IsBoolean reports whether v is Simple(True) or Simple(False).
func (v Value) IsBoolean() bool {
	return v.n != nil && v.n.kind == KindSimple && (v.n.sctrl == SimpleTrue || v.n.sctrl == SimpleFalse)
}

// IsInteger reports whether v is KindUint or KindNegInt.
func (v Value) IsInteger() bool {
	return v.n != nil && (v.n.kind == KindUint || v.n.kind == KindNegInt)
}

// IsReal reports whether v strictly carries a Simple/Real payload: "is
// real" means "has a real payload", not "is numeric" — AsReal is the
// coercive accessor for the latter sense.
func (v Value) IsReal() bool {
	return v.n != nil && v.n.kind == KindSimple && v.n.sctrl == SimpleReal
}

// IsNumber reports whether v is an integer or a real, i.e. whether
// AsReal returns a meaningful coerced value. AsInteger returns 0 for a
// real.
func (v Value) IsNumber() bool {
	return v.IsInteger() || v.IsReal()
}

// IsBytes reports whether v is KindBytes.
func (v Value) IsBytes() bool { return v.n != nil && v.n.kind == KindBytes }

// IsText reports whether v is KindText.
func (v Value) IsText() bool { return v.n != nil && v.n.kind == KindText }

// IsMap reports whether v is KindMap.
func (v Value) IsMap() bool { return v.n != nil && v.n.kind == KindMap }

// IsArray reports whether v is KindArray.
func (v Value) IsArray() bool { return v.n != nil && v.n.kind == KindArray }

// IsContainer reports whether v is an Array or a Map.
func (v Value) IsContainer() bool { return v.IsArray() || v.IsMap() }

// IsTag reports whether v is KindTag.
func (v Value) IsTag() bool { return v.n != nil && v.n.kind == KindTag }

// IsPair reports whether v is the internal KindPair variant.
func (v Value) IsPair() bool { return v.n != nil && v.n.kind == KindPair }

// IsNull reports whether v is Simple(Null).
func (v Value) IsNull() bool {
	return v.n != nil && v.n.kind == KindSimple && v.n.sctrl == SimpleNull
}

// IsUndefined reports whether v is Simple(Undefined).
func (v Value) IsUndefined() bool {
	return v.n != nil && v.n.kind == KindSimple && v.n.sctrl == SimpleUndef
}

// SimpleCtrl returns v's Simple sub-case, or SimpleNone if v is not
// KindSimple.
func (v Value) SimpleCtrl() SimpleCtrl {
	if v.n == nil || v.n.kind != KindSimple {
		return SimpleNone
	}
	return v.n.sctrl
}

// ExtensionCode returns the raw simple-value code for a
// SimpleExtension value, or 0 otherwise.
func (v Value) ExtensionCode() uint8 {
	if v.n == nil || v.n.kind != KindSimple || v.n.sctrl != SimpleExtension {
		return 0
	}
	return v.n.extension
}
