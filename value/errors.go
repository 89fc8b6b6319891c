package value

import "errors"

// ErrPreconditionViolated is the value Tag, PairOf, SetKey, SetVal and
// SetContent panic with when handed a value that already has a parent;
// nothing in this module recovers that panic into an error. Container
// operations do not use it: they return ErrNotContainer, ErrNotOwned,
// ErrNotFree or ErrWrongContainerKind, none of which wraps it.
var ErrPreconditionViolated = errors.New("value: precondition violated")

// ErrNotContainer is returned by container operations invoked on a Value
// that is not an Array or Map, and by Swap and Concat when their two
// operands are not containers of the same kind.
var ErrNotContainer = errors.New("value: not a container")

// ErrNotOwned is returned by Remove when the element is not a current
// member of the container it is removed from.
var ErrNotOwned = errors.New("value: element not owned by container")

// ErrNotFree is returned when an insert is attempted with a value that
// already has a parent.
var ErrNotFree = errors.New("value: value is not free")

// ErrWrongContainerKind is returned when a non-Pair value is inserted
// into a Map.
var ErrWrongContainerKind = errors.New("value: wrong container kind for operand")
