package json

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/agentflare-ai/tagtree/value"
)

// EncodeOptions configures Dump's output shape.
type EncodeOptions struct {
	// Pretty indents nested containers using Indent (default "  ") and
	// places one member per line, instead of the default compact form.
	Pretty bool
	// Indent is the per-level indentation unit used when Pretty is set.
	// Defaults to two spaces.
	Indent string
	// Logger receives a warning every time a CBOR-only construct (Bytes,
	// Tag, Undefined, or a reserved Simple extension) is encountered; the
	// value is serialized as null in its place. It is also warned of each
	// invalid UTF-8 byte in a string, which is skipped. Defaults to a no-op.
	Logger Logger
}

type encoder struct {
	buf    []byte
	pretty bool
	indent string
	logger Logger
}

// Dump serializes v as JSON text according to opts.
func Dump(v value.Value, opts EncodeOptions) ([]byte, error) {
	e := &encoder{
		pretty: opts.Pretty,
		indent: opts.Indent,
		logger: opts.Logger,
	}
	if e.indent == "" {
		e.indent = "  "
	}
	if e.logger == nil {
		e.logger = nopLogger{}
	}
	if err := e.appendValue(v, 0); err != nil {
		return nil, err
	}
	return e.buf, nil
}

func (e *encoder) newline(depth int) {
	if !e.pretty {
		return
	}
	e.buf = append(e.buf, '\n')
	for i := 0; i < depth; i++ {
		e.buf = append(e.buf, e.indent...)
	}
}

func (e *encoder) appendValue(v value.Value, depth int) error {
	switch v.Kind() {
	case value.KindUint:
		e.buf = strconv.AppendUint(e.buf, v.AsUint(), 10)
	case value.KindNegInt:
		e.buf = strconv.AppendInt(e.buf, v.AsInteger(), 10)
	case value.KindText:
		e.appendString(v.AsText())
	case value.KindArray:
		return e.appendArray(v, depth)
	case value.KindMap:
		return e.appendMap(v, depth)
	case value.KindSimple:
		e.appendSimple(v)
	default:
		e.logger.Warn("json: unsupported value kind serialized as null", "kind", v.Kind().String())
		e.buf = append(e.buf, "null"...)
	}
	return nil
}

func (e *encoder) appendSimple(v value.Value) {
	switch v.SimpleCtrl() {
	case value.SimpleTrue:
		e.buf = append(e.buf, "true"...)
	case value.SimpleFalse:
		e.buf = append(e.buf, "false"...)
	case value.SimpleNull:
		e.buf = append(e.buf, "null"...)
	case value.SimpleReal:
		e.appendReal(v.AsReal())
	default:
		e.logger.Warn("json: unsupported simple value serialized as null", "ctrl", v.SimpleCtrl())
		e.buf = append(e.buf, "null"...)
	}
}

func (e *encoder) appendArray(v value.Value, depth int) error {
	e.buf = append(e.buf, '[')
	if v.Empty() {
		e.buf = append(e.buf, ']')
		return nil
	}
	first := true
	for item := v.First(); item.Valid(); item = v.Next(item) {
		if !first {
			e.buf = append(e.buf, ',')
		}
		first = false
		e.newline(depth + 1)
		if err := e.appendValue(item, depth+1); err != nil {
			return err
		}
	}
	e.newline(depth)
	e.buf = append(e.buf, ']')
	return nil
}

func (e *encoder) appendMap(v value.Value, depth int) error {
	e.buf = append(e.buf, '{')
	if v.Empty() {
		e.buf = append(e.buf, '}')
		return nil
	}
	first := true
	for pair := v.First(); pair.Valid(); pair = v.Next(pair) {
		if !first {
			e.buf = append(e.buf, ',')
		}
		first = false
		e.newline(depth + 1)
		key := pair.Key()
		if !key.IsText() {
			return fmt.Errorf("%w: map key of kind %s", ErrUnsupportedType, key.Kind())
		}
		e.appendString(key.AsText())
		e.buf = append(e.buf, ':')
		if e.pretty {
			e.buf = append(e.buf, ' ')
		}
		if err := e.appendValue(pair.Val(), depth+1); err != nil {
			return err
		}
	}
	e.newline(depth)
	e.buf = append(e.buf, '}')
	return nil
}

// appendReal emits a finite real in the shortest round-tripping decimal
// form. Strict JSON has no token for Inf/NaN, so non-finite values are
// emitted as 0.0 rather than the tolerant Infinity/-Infinity/NaN bare
// literals the decoder accepts under AllowInf/AllowNaN.
func (e *encoder) appendReal(f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		e.buf = append(e.buf, "0.0"...)
		return
	}
	e.buf = strconv.AppendFloat(e.buf, f, 'g', -1, 64)
}

const hexDigits = "0123456789abcdef"

func (e *encoder) appendString(s string) {
	e.buf = append(e.buf, '"')
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				e.logger.Warn("json: invalid UTF-8 byte skipped", "offset", i)
				continue
			}
		}
		switch {
		case r == '"':
			e.buf = append(e.buf, '\\', '"')
		case r == '\\':
			e.buf = append(e.buf, '\\', '\\')
		case r == '\n':
			e.buf = append(e.buf, '\\', 'n')
		case r == '\r':
			e.buf = append(e.buf, '\\', 'r')
		case r == '\t':
			e.buf = append(e.buf, '\\', 't')
		case r < 0x20:
			e.appendEscape(uint16(r))
		case r <= 0xFFFF:
			e.buf = utf8.AppendRune(e.buf, r)
		default:
			hi, lo := utf16EncodeSurrogate(r)
			e.appendEscape(hi)
			e.appendEscape(lo)
		}
	}
	e.buf = append(e.buf, '"')
}

func (e *encoder) appendEscape(u uint16) {
	e.buf = append(e.buf, '\\', 'u',
		hexDigits[(u>>12)&0xF], hexDigits[(u>>8)&0xF], hexDigits[(u>>4)&0xF], hexDigits[u&0xF])
}

func utf16EncodeSurrogate(r rune) (hi, lo uint16) {
	r -= 0x10000
	return uint16(0xD800 + (r >> 10)), uint16(0xDC00 + (r & 0x3FF))
}
