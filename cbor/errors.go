package cbor

import "errors"

// ErrTruncated is returned when the input ends before a complete item
// (header, length-prefixed body, or indefinite-length terminator) can be
// read.
var ErrTruncated = errors.New("cbor: truncated input")

// ErrMalformedIndefinite is returned when a chunk inside an
// indefinite-length string does not match the enclosing major type, or
// is itself indefinite.
var ErrMalformedIndefinite = errors.New("cbor: malformed indefinite-length item")

// ErrUnsupportedSimple is returned when major type 7's additional info
// names a reserved, unassigned encoding this decoder does not accept.
var ErrUnsupportedSimple = errors.New("cbor: unsupported simple value")

// ErrReservedAdditionalInfo is returned when a header's additional info
// is one of the three reserved codes (28, 29, 30).
var ErrReservedAdditionalInfo = errors.New("cbor: reserved additional info")

// ErrDepthExceeded is returned when decoding would recurse past the
// configured maximum nesting depth.
var ErrDepthExceeded = errors.New("cbor: maximum nesting depth exceeded")

// ErrUnsupportedValue is returned by the encoder when asked to dump a
// Value that is not a valid node (the "none" sentinel, or an internal
// Pair encountered outside of a Map).
var ErrUnsupportedValue = errors.New("cbor: unsupported value for encoding")

// ErrTrailingData is returned by Unmarshal when data carries extra
// bytes after the single decoded item.
var ErrTrailingData = errors.New("cbor: trailing data after item")
