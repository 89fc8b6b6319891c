package cbor

import (
	"encoding/binary"
	"fmt"

	"github.com/agentflare-ai/tagtree/value"
)

// Dump encodes v as a single CBOR item. Width selection for lengths,
// unsigned magnitudes, and tag numbers always picks the narrowest
// encoding that fits, matching the reference encoder's five-way
// threshold (direct/uint8/uint16/uint32/uint64). It never emits
// indefinite-length items, so decoding the output and re-encoding it
// is idempotent even when the input was originally indefinite-length.
func Dump(v value.Value) ([]byte, error) {
	var buf []byte
	buf, err := appendValue(buf, v)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func appendValue(buf []byte, v value.Value) ([]byte, error) {
	if !v.Valid() {
		return nil, ErrUnsupportedValue
	}
	switch v.Kind() {
	case value.KindUint:
		return appendHeaderAndMagnitude(buf, majorUint, v.AsUint()), nil
	case value.KindNegInt:
		return appendHeaderAndMagnitude(buf, majorNegInt, v.NegMagnitude()), nil
	case value.KindBytes:
		b := v.AsBytes()
		buf = appendHeaderAndMagnitude(buf, majorBytes, uint64(len(b)))
		return append(buf, b...), nil
	case value.KindText:
		b := v.AsTextBytes()
		buf = appendHeaderAndMagnitude(buf, majorText, uint64(len(b)))
		return append(buf, b...), nil
	case value.KindArray:
		buf = appendHeaderAndMagnitude(buf, majorArray, uint64(v.Size()))
		var err error
		for e := v.First(); e.Valid(); e = v.Next(e) {
			buf, err = appendValue(buf, e)
			if err != nil {
				return nil, err
			}
		}
		return buf, nil
	case value.KindMap:
		buf = appendHeaderAndMagnitude(buf, majorMap, uint64(v.Size()))
		var err error
		for p := v.First(); p.Valid(); p = v.Next(p) {
			buf, err = appendValue(buf, p.Key())
			if err != nil {
				return nil, err
			}
			buf, err = appendValue(buf, p.Val())
			if err != nil {
				return nil, err
			}
		}
		return buf, nil
	case value.KindTag:
		buf = appendHeaderAndMagnitude(buf, majorTag, v.Item())
		return appendValue(buf, v.Content())
	case value.KindSimple:
		return appendSimple(buf, v)
	default:
		return nil, fmt.Errorf("cbor: %w: kind %v", ErrUnsupportedValue, v.Kind())
	}
}

// appendHeaderAndMagnitude writes an initial byte for major type with an
// unsigned magnitude n, choosing the narrowest additional-info width.
func appendHeaderAndMagnitude(buf []byte, major uint8, n uint64) []byte {
	switch {
	case n < 24:
		return append(buf, makeInitialByte(major, uint8(n)))
	case n <= 0xFF:
		buf = append(buf, makeInitialByte(major, addInfoUint8))
		return append(buf, byte(n))
	case n <= 0xFFFF:
		buf = append(buf, makeInitialByte(major, addInfoUint16))
		return binary.BigEndian.AppendUint16(buf, uint16(n))
	case n <= 0xFFFFFFFF:
		buf = append(buf, makeInitialByte(major, addInfoUint32))
		return binary.BigEndian.AppendUint32(buf, uint32(n))
	default:
		buf = append(buf, makeInitialByte(major, addInfoUint64))
		return binary.BigEndian.AppendUint64(buf, n)
	}
}

func appendSimple(buf []byte, v value.Value) ([]byte, error) {
	switch {
	case v.IsBoolean():
		if v.AsBoolean() {
			return append(buf, makeInitialByte(majorSimple, simpleTrue)), nil
		}
		return append(buf, makeInitialByte(majorSimple, simpleFalse)), nil
	case v.IsNull():
		return append(buf, makeInitialByte(majorSimple, simpleNull)), nil
	case v.IsUndefined():
		return append(buf, makeInitialByte(majorSimple, simpleUndefined)), nil
	case v.IsReal():
		width, bits := narrowReal(v.AsReal())
		switch width {
		case 16:
			buf = append(buf, makeInitialByte(majorSimple, simpleFloat16))
			return binary.BigEndian.AppendUint16(buf, uint16(bits)), nil
		case 32:
			buf = append(buf, makeInitialByte(majorSimple, simpleFloat32))
			return binary.BigEndian.AppendUint32(buf, uint32(bits)), nil
		default:
			buf = append(buf, makeInitialByte(majorSimple, simpleFloat64))
			return binary.BigEndian.AppendUint64(buf, bits), nil
		}
	case v.SimpleCtrl() == value.SimpleExtension:
		ctrl := v.ExtensionCode()
		if ctrl < simpleFalse {
			return append(buf, makeInitialByte(majorSimple, ctrl)), nil
		}
		buf = append(buf, makeInitialByte(majorSimple, simpleExt1Byte))
		return append(buf, ctrl), nil
	default:
		return nil, fmt.Errorf("cbor: %w: simple control %v", ErrUnsupportedValue, v.Kind())
	}
}
