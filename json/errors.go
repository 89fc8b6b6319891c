package json

import "errors"

// ErrUnexpectedChar is returned when the lexer sees a character that is
// disallowed in its current context.
var ErrUnexpectedChar = errors.New("json: unexpected character")

// ErrConvertNumber is returned when a number's grammar matched but its
// numeric conversion failed (e.g. an exponent overflow).
var ErrConvertNumber = errors.New("json: number conversion failed")

// ErrCharacterSequence is returned when the lexer expected a literal
// (true/false/null/inf/nan) but the input diverged partway through it.
var ErrCharacterSequence = errors.New("json: expected literal sequence")

// ErrHexValue is returned when a \uXXXX escape contains a non-hex
// digit.
var ErrHexValue = errors.New("json: invalid hex digit in \\u escape")

// ErrUTF16 is returned when a UTF-16 surrogate pair is malformed: a
// high surrogate not followed by a low surrogate, or a bare low
// surrogate.
var ErrUTF16 = errors.New("json: malformed UTF-16 surrogate pair")

// ErrStringBreakline is returned when a bare, unescaped CR or LF
// appears inside a string literal.
var ErrStringBreakline = errors.New("json: unescaped line break in string")

// ErrStringInfinity is returned when a string literal is never
// terminated before the input ends.
var ErrStringInfinity = errors.New("json: unterminated string")

// ErrStringCodepoint is returned when a string's raw UTF-8 bytes are
// not a valid Unicode scalar sequence.
var ErrStringCodepoint = errors.New("json: invalid UTF-8 in string")

// ErrUnsupportedType is returned by the serializer when asked to emit a
// map keyed by a non-Text value; JSON object keys have no other
// textual form to fall back on.
var ErrUnsupportedType = errors.New("json: unsupported value for JSON")

// ErrTrailingData is returned by Unmarshal when non-whitespace input
// remains after a complete value.
var ErrTrailingData = errors.New("json: trailing data after value")

// ErrDepthExceeded is returned when parsing would recurse past the
// configured maximum array/object nesting depth.
var ErrDepthExceeded = errors.New("json: maximum nesting depth exceeded")
