package cbor

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/agentflare-ai/tagtree/value"
)

// DefaultMaxDepth bounds recursive descent through nested
// arrays/maps/tags against adversarially-deep input.
const DefaultMaxDepth = 256

// DecodeOptions configures Load.
type DecodeOptions struct {
	// MaxDepth bounds container/tag nesting. Zero means DefaultMaxDepth.
	MaxDepth int
}

func (o DecodeOptions) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// header is the parsed form of a CBOR initial byte plus any following
// length/value bytes.
type header struct {
	major      uint8
	addInfo    uint8
	n          uint64
	length     int // total bytes consumed by the header itself
	indefinite bool
}

// readHeader parses the item header at the front of data. It performs
// every width's bounds check against the remaining input: truncation at
// any point is reported as ErrTruncated.
func readHeader(data []byte) (header, error) {
	if len(data) < 1 {
		return header{}, ErrTruncated
	}
	major, addInfo := splitInitialByte(data[0])
	h := header{major: major, addInfo: addInfo}
	switch {
	case addInfo <= addInfoDirectMax:
		h.n = uint64(addInfo)
		h.length = 1
	case addInfo == addInfoUint8:
		if len(data) < 2 {
			return header{}, ErrTruncated
		}
		h.n = uint64(data[1])
		h.length = 2
	case addInfo == addInfoUint16:
		if len(data) < 3 {
			return header{}, ErrTruncated
		}
		h.n = uint64(binary.BigEndian.Uint16(data[1:3]))
		h.length = 3
	case addInfo == addInfoUint32:
		if len(data) < 5 {
			return header{}, ErrTruncated
		}
		h.n = uint64(binary.BigEndian.Uint32(data[1:5]))
		h.length = 5
	case addInfo == addInfoUint64:
		if len(data) < 9 {
			return header{}, ErrTruncated
		}
		h.n = binary.BigEndian.Uint64(data[1:9])
		h.length = 9
	case addInfo == addInfoIndefinite:
		h.indefinite = true
		h.length = 1
	default: // 28, 29, 30: reserved
		return header{}, ErrReservedAdditionalInfo
	}
	return h, nil
}

// Load decodes exactly one top-level CBOR item from data and returns it
// together with the number of bytes consumed. On failure it returns the
// "none" Value and a consumed count of 0.
func Load(data []byte) (value.Value, int, error) {
	return LoadWithOptions(data, DecodeOptions{})
}

// LoadWithOptions is Load with an explicit DecodeOptions, primarily to
// set a non-default recursion depth limit.
func LoadWithOptions(data []byte, opts DecodeOptions) (value.Value, int, error) {
	v, n, err := decodeItem(data, 0, opts)
	if err != nil {
		return value.Value{}, 0, err
	}
	return v, n, nil
}

func decodeItem(data []byte, depth int, opts DecodeOptions) (value.Value, int, error) {
	if depth > opts.maxDepth() {
		return value.Value{}, 0, ErrDepthExceeded
	}
	h, err := readHeader(data)
	if err != nil {
		return value.Value{}, 0, err
	}
	switch h.major {
	case majorUint:
		if h.indefinite {
			return value.Value{}, 0, ErrMalformedIndefinite
		}
		return value.Uint(h.n), h.length, nil
	case majorNegInt:
		if h.indefinite {
			return value.Value{}, 0, ErrMalformedIndefinite
		}
		return value.NegInt(h.n), h.length, nil
	case majorBytes, majorText:
		return decodeStringLike(data, h, depth, opts)
	case majorArray:
		return decodeArray(data, h, depth, opts)
	case majorMap:
		return decodeMap(data, h, depth, opts)
	case majorTag:
		return decodeTag(data, h, depth, opts)
	case majorSimple:
		return decodeSimple(data, h)
	default:
		return value.Value{}, 0, fmt.Errorf("cbor: unreachable major type %d", h.major)
	}
}

func decodeStringLike(data []byte, h header, depth int, opts DecodeOptions) (value.Value, int, error) {
	if !h.indefinite {
		length := int(h.n)
		if length < 0 || h.length+length > len(data) {
			return value.Value{}, 0, ErrTruncated
		}
		body := data[h.length : h.length+length]
		if h.major == majorBytes {
			return value.Bytes(body), h.length + length, nil
		}
		return value.TextBytes(body), h.length + length, nil
	}

	pos := h.length
	var buf []byte
	for {
		if pos >= len(data) {
			return value.Value{}, 0, ErrTruncated
		}
		if data[pos] == breakByte {
			pos++
			break
		}
		sub, err := readHeader(data[pos:])
		if err != nil {
			return value.Value{}, 0, err
		}
		if sub.major != h.major || sub.indefinite {
			return value.Value{}, 0, ErrMalformedIndefinite
		}
		start := pos + sub.length
		end := start + int(sub.n)
		if end < start || end > len(data) {
			return value.Value{}, 0, ErrTruncated
		}
		buf = append(buf, data[start:end]...)
		pos = end
	}
	if h.major == majorBytes {
		return value.Bytes(buf), pos, nil
	}
	return value.TextBytes(buf), pos, nil
}

func decodeArray(data []byte, h header, depth int, opts DecodeOptions) (value.Value, int, error) {
	arr := value.Array()
	pos := h.length
	if h.indefinite {
		for {
			if pos >= len(data) {
				return value.Value{}, 0, ErrTruncated
			}
			if data[pos] == breakByte {
				pos++
				break
			}
			child, n, err := decodeItem(data[pos:], depth+1, opts)
			if err != nil {
				return value.Value{}, 0, err
			}
			if err := arr.InsertTail(child); err != nil {
				return value.Value{}, 0, err
			}
			pos += n
		}
		return arr, pos, nil
	}
	for i := uint64(0); i < h.n; i++ {
		if pos >= len(data) {
			return value.Value{}, 0, ErrTruncated
		}
		child, n, err := decodeItem(data[pos:], depth+1, opts)
		if err != nil {
			return value.Value{}, 0, err
		}
		if err := arr.InsertTail(child); err != nil {
			return value.Value{}, 0, err
		}
		pos += n
	}
	return arr, pos, nil
}

func decodeMap(data []byte, h header, depth int, opts DecodeOptions) (value.Value, int, error) {
	m := value.Map()
	pos := h.length
	decodePair := func() (int, error) {
		key, kn, err := decodeItem(data[pos:], depth+1, opts)
		if err != nil {
			return 0, err
		}
		val, vn, err := decodeItem(data[pos+kn:], depth+1, opts)
		if err != nil {
			return 0, err
		}
		if err := m.InsertTail(value.PairOf(key, val)); err != nil {
			return 0, err
		}
		return kn + vn, nil
	}
	if h.indefinite {
		for {
			if pos >= len(data) {
				return value.Value{}, 0, ErrTruncated
			}
			if data[pos] == breakByte {
				pos++
				break
			}
			n, err := decodePair()
			if err != nil {
				return value.Value{}, 0, err
			}
			pos += n
		}
		return m, pos, nil
	}
	for i := uint64(0); i < h.n; i++ {
		if pos >= len(data) {
			return value.Value{}, 0, ErrTruncated
		}
		n, err := decodePair()
		if err != nil {
			return value.Value{}, 0, err
		}
		pos += n
	}
	return m, pos, nil
}

func decodeTag(data []byte, h header, depth int, opts DecodeOptions) (value.Value, int, error) {
	if h.indefinite {
		return value.Value{}, 0, ErrMalformedIndefinite
	}
	content, n, err := decodeItem(data[h.length:], depth+1, opts)
	if err != nil {
		return value.Value{}, 0, err
	}
	return value.Tag(h.n, content), h.length + n, nil
}

func decodeSimple(data []byte, h header) (value.Value, int, error) {
	if h.indefinite {
		// The break byte is handled by container/string loops; seeing
		// one here means a bare top-level break, which is malformed.
		return value.Value{}, 0, ErrUnsupportedSimple
	}
	switch h.addInfo {
	case simpleFalse:
		return value.Boolean(false), h.length, nil
	case simpleTrue:
		return value.Boolean(true), h.length, nil
	case simpleNull:
		return value.Null(), h.length, nil
	case simpleUndefined:
		return value.Undefined(), h.length, nil
	case simpleFloat16:
		const n = 3
		if n > len(data) {
			return value.Value{}, 0, ErrTruncated
		}
		f := widenFloat16(binary.BigEndian.Uint16(data[1:3]))
		return value.Real(f), n, nil
	case simpleFloat32:
		const n = 5
		if n > len(data) {
			return value.Value{}, 0, ErrTruncated
		}
		f := widenFloat32(binary.BigEndian.Uint32(data[1:5]))
		return value.Real(f), n, nil
	case simpleFloat64:
		const n = 9
		if n > len(data) {
			return value.Value{}, 0, ErrTruncated
		}
		bits := binary.BigEndian.Uint64(data[1:9])
		return value.Real(math.Float64frombits(bits)), n, nil
	default:
		if h.addInfo < simpleFalse {
			return value.Extension(h.addInfo), h.length, nil
		}
		if h.addInfo == simpleExt1Byte {
			return value.Extension(data[1]), h.length, nil
		}
		return value.Value{}, 0, ErrUnsupportedSimple
	}
}
