// Package pointer implements JSON Pointer (RFC 6901) evaluation and the
// structural mutation primitives (get/insert/set/replace/remove/move/
// copy/test) that the patch package builds on. It walks a value.Value
// tree using the same map/array addressing rules the reference
// cbor_pointer_* family uses: string-keyed map lookup, decimal array
// indices, and the "-" append sentinel.
package pointer

import "errors"

// ErrInvalidPointer is returned for a pointer string that is neither
// empty nor starts with "/", or whose array-index token is not a
// non-negative decimal integer where one is required.
var ErrInvalidPointer = errors.New("pointer: malformed pointer string")

// ErrNotFound is returned when a path cannot be walked to completion:
// an intermediate token is missing from a map, out of range in an
// array, or addresses through a non-container.
var ErrNotFound = errors.New("pointer: path does not resolve")

// ErrNotContainer is returned when a path addresses through a value
// that is neither a Map nor an Array.
var ErrNotContainer = errors.New("pointer: path segment is not a map or array")

// ErrIndexOutOfRange is returned when an array index token names a
// position that insert/set/replace/remove cannot reach.
var ErrIndexOutOfRange = errors.New("pointer: array index out of range")

// ErrAlreadyExists is returned by Insert when the target map key is
// already present, or the target path is the root (which always
// exists).
var ErrAlreadyExists = errors.New("pointer: target already exists")

// ErrCannotRemoveRoot is returned by Remove (and by Move with an empty
// "from") because the root has no parent to detach it from.
var ErrCannotRemoveRoot = errors.New("pointer: cannot remove the root value")

// ErrDescendant is returned by Move when the destination path is a
// descendant of the source path.
var ErrDescendant = errors.New("pointer: destination is a descendant of source")
