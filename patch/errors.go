// Package patch implements structural document mutation over value.Value
// trees: RFC 7396 JSON Merge Patch (the primitive the pointer/patch layer
// is built around) and an RFC 6902 operation-list patch engine, built on
// the pointer package.
package patch

import "errors"

// ErrUnsupportedOp is returned when an Operation names an Op outside the
// RFC 6902 vocabulary.
var ErrUnsupportedOp = errors.New("patch: unsupported operation")

// ErrTestFailed is returned by a "test" operation whose target does not
// structurally equal its expected value.
var ErrTestFailed = errors.New("patch: test operation failed")

// ErrInvalidOperation is returned when decoding an operation list from a
// value.Value tree that is not shaped like one (array of op-maps).
var ErrInvalidOperation = errors.New("patch: invalid operation")

// ErrRootAddUnsupported is returned by ExtractAdded when the patch
// contains a root-level add, which has no parent container to extract
// from.
var ErrRootAddUnsupported = errors.New("patch: root-level add is not supported by ExtractAdded")
