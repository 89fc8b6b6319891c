package json

import (
	"bytes"
	"fmt"

	"github.com/agentflare-ai/tagtree/value"
)

// ErrorFormatter renders a caret-line diagnostic for a parse error at a
// given byte offset into src. The ReportError path of
// UnmarshalWithOptions always uses DefaultErrorFormatter; no decoder
// option selects another implementation.
type ErrorFormatter interface {
	Format(src []byte, offset int, err error) string
}

// DefaultErrorFormatter points at the offending byte with a caret under
// the enclosing line.
type DefaultErrorFormatter struct{}

func (DefaultErrorFormatter) Format(src []byte, offset int, err error) string {
	if offset < 0 {
		offset = 0
	}
	if offset > len(src) {
		offset = len(src)
	}
	lineStart := bytes.LastIndexByte(src[:offset], '\n') + 1
	lineEnd := len(src)
	if i := bytes.IndexByte(src[offset:], '\n'); i >= 0 {
		lineEnd = offset + i
	}
	line := src[lineStart:lineEnd]
	col := offset - lineStart
	caret := make([]byte, col)
	for i := range caret {
		if line[i] == '\t' {
			caret[i] = '\t'
		} else {
			caret[i] = ' '
		}
	}
	return fmt.Sprintf("%s\n%s^\n%v", line, caret, err)
}

// Unmarshal parses exactly one JSON value from data and requires that
// only trailing whitespace and comments (per flags) remain afterward.
func Unmarshal(data []byte, flags Flags) (value.Value, error) {
	return UnmarshalWithOptions(data, flags, DecodeOptions{})
}

// UnmarshalWithOptions is Unmarshal with an explicit DecodeOptions,
// primarily to set a non-default recursion depth limit.
func UnmarshalWithOptions(data []byte, flags Flags, opts DecodeOptions) (value.Value, error) {
	d := &decoder{src: data, flags: flags, maxDepth: opts.maxDepth()}
	d.skipSpace()
	v, err := d.parseValue()
	if err != nil {
		if flags&ReportError != 0 {
			return value.Value{}, fmt.Errorf("%s\n%w", DefaultErrorFormatter{}.Format(data, d.pos, err), err)
		}
		return value.Value{}, err
	}
	d.skipSpace()
	if !d.eof() {
		return value.Value{}, fmt.Errorf("%w at offset %d", ErrTrailingData, d.pos)
	}
	return v, nil
}

// Marshal serializes v as compact JSON text.
func Marshal(v value.Value) ([]byte, error) {
	return Dump(v, EncodeOptions{})
}

// MarshalIndent serializes v as pretty-printed JSON text using indent
// as the per-level indentation unit.
func MarshalIndent(v value.Value, indent string) ([]byte, error) {
	return Dump(v, EncodeOptions{Pretty: true, Indent: indent})
}
