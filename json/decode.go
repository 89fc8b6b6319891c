package json

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/agentflare-ai/tagtree/value"
)

// DefaultMaxDepth bounds recursive descent through nested arrays/objects
// against adversarially-deep input, mirroring cbor.DefaultMaxDepth.
const DefaultMaxDepth = 256

// DecodeOptions configures LoadWithOptions and UnmarshalWithOptions.
type DecodeOptions struct {
	// MaxDepth bounds array/object nesting. Zero means DefaultMaxDepth.
	MaxDepth int
}

func (o DecodeOptions) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// decoder is a cursor-based scanner over UTF-8 input, carrying the same
// state the reference lexer_t tracks: source, cursor, EOF, and
// line/column for diagnostics.
type decoder struct {
	src       []byte
	pos       int
	flags     Flags
	line      int
	lineStart int
	depth     int
	maxDepth  int
}

// Load parses exactly one JSON value from data, returning the value and
// the number of bytes consumed. Trailing content after the value is
// permitted; use Unmarshal to require the whole input be one value.
func Load(data []byte, flags Flags) (value.Value, int, error) {
	return LoadWithOptions(data, flags, DecodeOptions{})
}

// LoadWithOptions is Load with an explicit DecodeOptions, primarily to
// set a non-default recursion depth limit.
func LoadWithOptions(data []byte, flags Flags, opts DecodeOptions) (value.Value, int, error) {
	d := &decoder{src: data, flags: flags, maxDepth: opts.maxDepth()}
	d.skipSpace()
	v, err := d.parseValue()
	if err != nil {
		return value.Value{}, 0, err
	}
	return v, d.pos, nil
}

func (d *decoder) eof() bool { return d.pos >= len(d.src) }

func (d *decoder) peek() byte {
	if d.eof() {
		return 0
	}
	return d.src[d.pos]
}

func (d *decoder) advance() byte {
	c := d.src[d.pos]
	d.pos++
	if c == '\n' {
		d.line++
		d.lineStart = d.pos
	}
	return c
}

func (d *decoder) skipSpace() {
	for !d.eof() {
		c := d.peek()
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			d.advance()
		case c == '#' && d.flags&AllowComment != 0:
			d.skipLineComment()
		case c == '/' && d.flags&AllowComment != 0 && d.pos+1 < len(d.src) && d.src[d.pos+1] == '/':
			d.pos += 2
			d.skipLineComment()
		case c == '/' && d.flags&AllowComment != 0 && d.pos+1 < len(d.src) && d.src[d.pos+1] == '*':
			d.pos += 2
			d.skipBlockComment()
		default:
			return
		}
	}
}

func (d *decoder) skipLineComment() {
	for !d.eof() && d.peek() != '\n' && d.peek() != '\r' {
		d.advance()
	}
}

func (d *decoder) skipBlockComment() {
	depth := 1
	for !d.eof() && depth > 0 {
		if d.peek() == '/' && d.pos+1 < len(d.src) && d.src[d.pos+1] == '*' {
			d.pos += 2
			depth++
			continue
		}
		if d.peek() == '*' && d.pos+1 < len(d.src) && d.src[d.pos+1] == '/' {
			d.pos += 2
			depth--
			continue
		}
		d.advance()
	}
}

func isIdentChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func (d *decoder) parseValue() (value.Value, error) {
	d.skipSpace()
	if d.eof() {
		return value.Value{}, fmt.Errorf("%w: unexpected end of input", ErrUnexpectedChar)
	}
	switch c := d.peek(); {
	case c == '{':
		return d.parseObject()
	case c == '[':
		return d.parseArray()
	case c == '"':
		return d.parseString()
	case c == 't':
		return d.parseLiteral("true", value.Boolean(true))
	case c == 'f':
		return d.parseLiteral("false", value.Boolean(false))
	case c == 'n' && !(d.flags&AllowNaN != 0 && matchFold(d.src[d.pos:], "nan")):
		return d.parseLiteral("null", value.Null())
	case c == '-' || (c >= '0' && c <= '9'):
		return d.parseNumber()
	case (c == 'i' || c == 'I') && d.flags&AllowInf != 0:
		return d.parseInf(1)
	case (c == 'n' || c == 'N') && d.flags&AllowNaN != 0:
		return d.parseNaN()
	default:
		return value.Value{}, fmt.Errorf("%w: %q", ErrUnexpectedChar, c)
	}
}

func (d *decoder) parseLiteral(lit string, v value.Value) (value.Value, error) {
	if d.pos+len(lit) > len(d.src) || string(d.src[d.pos:d.pos+len(lit)]) != lit {
		return value.Value{}, fmt.Errorf("%w: expected %q", ErrCharacterSequence, lit)
	}
	d.pos += len(lit)
	if !d.eof() && isIdentChar(d.peek()) {
		return value.Value{}, fmt.Errorf("%w: after literal %q", ErrUnexpectedChar, lit)
	}
	return v, nil
}

func matchFold(src []byte, lit string) bool {
	if len(src) < len(lit) {
		return false
	}
	for i := 0; i < len(lit); i++ {
		a, b := src[i], lit[i]
		if a >= 'A' && a <= 'Z' {
			a += 'a' - 'A'
		}
		if a != b {
			return false
		}
	}
	return true
}

func (d *decoder) parseInf(sign float64) (value.Value, error) {
	rest := d.src[d.pos:]
	switch {
	case matchFold(rest, "infinity"):
		d.pos += len("infinity")
	case matchFold(rest, "inf"):
		d.pos += len("inf")
	default:
		return value.Value{}, fmt.Errorf("%w: expected inf/infinity", ErrCharacterSequence)
	}
	if !d.eof() && isIdentChar(d.peek()) {
		return value.Value{}, fmt.Errorf("%w: after inf literal", ErrUnexpectedChar)
	}
	return value.Real(math.Inf(int(sign))), nil
}

func (d *decoder) parseNaN() (value.Value, error) {
	if !matchFold(d.src[d.pos:], "nan") {
		return value.Value{}, fmt.Errorf("%w: expected nan", ErrCharacterSequence)
	}
	d.pos += len("nan")
	if !d.eof() && isIdentChar(d.peek()) {
		return value.Value{}, fmt.Errorf("%w: after nan literal", ErrUnexpectedChar)
	}
	return value.Real(math.NaN()), nil
}

func (d *decoder) parseNumber() (value.Value, error) {
	start := d.pos
	isReal := false

	if d.peek() == '-' {
		d.advance()
		if d.flags&AllowInf != 0 && !d.eof() && (d.peek() == 'i' || d.peek() == 'I') {
			v, err := d.parseInf(-1)
			return v, err
		}
	}

	if d.eof() || d.peek() < '0' || d.peek() > '9' {
		return value.Value{}, fmt.Errorf("%w: expected digit", ErrUnexpectedChar)
	}
	if d.peek() == '0' {
		d.advance()
	} else {
		for !d.eof() && d.peek() >= '0' && d.peek() <= '9' {
			d.advance()
		}
	}

	if !d.eof() && d.peek() == '.' {
		isReal = true
		d.advance()
		if d.eof() || d.peek() < '0' || d.peek() > '9' {
			return value.Value{}, fmt.Errorf("%w: digit expected after decimal point", ErrUnexpectedChar)
		}
		for !d.eof() && d.peek() >= '0' && d.peek() <= '9' {
			d.advance()
		}
	}

	if !d.eof() && (d.peek() == 'e' || d.peek() == 'E') {
		isReal = true
		d.advance()
		if !d.eof() && (d.peek() == '+' || d.peek() == '-') {
			d.advance()
		}
		if d.eof() || d.peek() < '0' || d.peek() > '9' {
			return value.Value{}, fmt.Errorf("%w: digit expected in exponent", ErrUnexpectedChar)
		}
		for !d.eof() && d.peek() >= '0' && d.peek() <= '9' {
			d.advance()
		}
	}

	if !d.eof() && isIdentChar(d.peek()) {
		return value.Value{}, fmt.Errorf("%w: trailing characters after number", ErrUnexpectedChar)
	}

	text := string(d.src[start:d.pos])
	if isReal {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return value.Value{}, fmt.Errorf("%w: %v", ErrConvertNumber, err)
		}
		return value.Real(f), nil
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(text, 64)
		if ferr != nil {
			return value.Value{}, fmt.Errorf("%w: %v", ErrConvertNumber, err)
		}
		return value.Real(f), nil
	}
	return value.Integer(i), nil
}

func (d *decoder) parseString() (value.Value, error) {
	s, err := d.scanStringBytes()
	if err != nil {
		return value.Value{}, err
	}
	if !utf8.Valid(s) {
		return value.Value{}, ErrStringCodepoint
	}
	return value.TextBytes(s), nil
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}

func (d *decoder) readHex4() (rune, error) {
	if d.pos+4 > len(d.src) {
		return 0, fmt.Errorf("%w: truncated \\u escape", ErrHexValue)
	}
	var r rune
	for i := 0; i < 4; i++ {
		c := d.src[d.pos+i]
		if !isHex(c) {
			return 0, fmt.Errorf("%w: %q", ErrHexValue, c)
		}
		r = r<<4 | rune(hexVal(c))
	}
	d.pos += 4
	return r, nil
}

// scanStringBytes consumes the opening quote, the body, and the closing
// quote, returning the decoded UTF-8 body.
func (d *decoder) scanStringBytes() ([]byte, error) {
	d.advance() // opening quote
	var buf []byte
	for {
		if d.eof() {
			return nil, ErrStringInfinity
		}
		c := d.advance()
		switch c {
		case '"':
			return buf, nil
		case '\r', '\n':
			return nil, ErrStringBreakline
		case '\\':
			if d.eof() {
				return nil, ErrStringInfinity
			}
			esc := d.advance()
			switch esc {
			case 'n':
				buf = append(buf, '\n')
			case 'r':
				buf = append(buf, '\r')
			case 't':
				buf = append(buf, '\t')
			case 'f':
				buf = append(buf, '\f')
			case 'b':
				buf = append(buf, '\b')
			case '\\':
				buf = append(buf, '\\')
			case '/':
				buf = append(buf, '/')
			case '"':
				buf = append(buf, '"')
			case 'u':
				r, err := d.readHex4()
				if err != nil {
					return nil, err
				}
				if utf16IsHighSurrogate(r) {
					if d.pos+1 >= len(d.src) || d.src[d.pos] != '\\' || d.src[d.pos+1] != 'u' {
						return nil, ErrUTF16
					}
					d.pos += 2
					lo, err := d.readHex4()
					if err != nil {
						return nil, err
					}
					if !utf16IsLowSurrogate(lo) {
						return nil, ErrUTF16
					}
					r = utf16Combine(r, lo)
				} else if utf16IsLowSurrogate(r) {
					return nil, ErrUTF16
				}
				buf = utf8.AppendRune(buf, r)
			default:
				return nil, fmt.Errorf("%w: \\%c", ErrUnexpectedChar, esc)
			}
		default:
			buf = append(buf, c)
		}
	}
}

func utf16IsHighSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDBFF }
func utf16IsLowSurrogate(r rune) bool  { return r >= 0xDC00 && r <= 0xDFFF }

func utf16Combine(hi, lo rune) rune {
	return 0x10000 + (hi-0xD800)<<10 + (lo - 0xDC00)
}

func (d *decoder) parseObject() (value.Value, error) {
	d.depth++
	defer func() { d.depth-- }()
	if d.depth > d.maxDepth {
		return value.Value{}, ErrDepthExceeded
	}
	d.advance() // '{'
	m := value.Map()
	d.skipSpace()
	if !d.eof() && d.peek() == '}' {
		d.advance()
		return m, nil
	}
	for {
		d.skipSpace()
		if d.eof() || d.peek() != '"' {
			return value.Value{}, fmt.Errorf("%w: expected string key", ErrUnexpectedChar)
		}
		key, err := d.parseString()
		if err != nil {
			return value.Value{}, err
		}
		d.skipSpace()
		if d.eof() || d.peek() != ':' {
			return value.Value{}, fmt.Errorf("%w: expected ':'", ErrUnexpectedChar)
		}
		d.advance()
		val, err := d.parseValue()
		if err != nil {
			return value.Value{}, err
		}
		if err := m.SetValue(key.AsText(), val); err != nil {
			return value.Value{}, err
		}
		d.skipSpace()
		if d.eof() {
			return value.Value{}, fmt.Errorf("%w: unterminated object", ErrUnexpectedChar)
		}
		switch d.peek() {
		case ',':
			d.advance()
		case '}':
			d.advance()
			return m, nil
		default:
			return value.Value{}, fmt.Errorf("%w: expected ',' or '}'", ErrUnexpectedChar)
		}
	}
}

func (d *decoder) parseArray() (value.Value, error) {
	d.depth++
	defer func() { d.depth-- }()
	if d.depth > d.maxDepth {
		return value.Value{}, ErrDepthExceeded
	}
	d.advance() // '['
	arr := value.Array()
	d.skipSpace()
	if !d.eof() && d.peek() == ']' {
		d.advance()
		return arr, nil
	}
	for {
		val, err := d.parseValue()
		if err != nil {
			return value.Value{}, err
		}
		if err := arr.InsertTail(val); err != nil {
			return value.Value{}, err
		}
		d.skipSpace()
		if d.eof() {
			return value.Value{}, fmt.Errorf("%w: unterminated array", ErrUnexpectedChar)
		}
		switch d.peek() {
		case ',':
			d.advance()
			d.skipSpace()
		case ']':
			d.advance()
			return arr, nil
		default:
			return value.Value{}, fmt.Errorf("%w: expected ',' or ']'", ErrUnexpectedChar)
		}
	}
}
