package patch

import (
	"errors"
	"fmt"

	"github.com/agentflare-ai/tagtree/pointer"
	"github.com/agentflare-ai/tagtree/value"
)

// Apply applies patch to a duplicate of document and returns the result,
// leaving document untouched.
func Apply(document value.Value, p Patch) (value.Value, error) {
	dup := value.Duplicate(document)
	if err := ApplyInPlace(dup, p); err != nil {
		return value.Value{}, err
	}
	return dup, nil
}

// ApplyInPlace applies patch to document, mutating it directly.
func ApplyInPlace(document value.Value, p Patch) error {
	for _, op := range p {
		var err error
		switch op.Op {
		case Add:
			err = addAt(document, op.Path, value.Duplicate(op.Value))
		case Remove:
			_, err = pointer.Remove(document, op.Path)
		case Replace:
			_, err = pointer.Replace(document, op.Path, value.Duplicate(op.Value))
		case Move:
			err = moveAt(document, op.From, op.Path)
		case Copy:
			err = copyAt(document, op.From, op.Path)
		case Test:
			if !pointer.Test(document, op.Path, op.Value) {
				err = fmt.Errorf("%w: at %s", ErrTestFailed, op.Path)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedOp, op.Op)
		}
		if err != nil {
			return fmt.Errorf("patch operation %s failed: %w", op.Op, err)
		}
	}
	return nil
}

// addAt implements RFC 6902 "add" semantics, which differ from the
// pointer package's Insert/Set primitives: an array target shifts
// (insert), exactly like pointer.Insert, but an existing map member is
// overwritten rather than rejected.
func addAt(document value.Value, path string, v value.Value) error {
	_, err := pointer.Insert(document, path, v)
	if errors.Is(err, pointer.ErrAlreadyExists) {
		_, err = pointer.Set(document, path, v)
	}
	return err
}

func pathTokens(path string) []string {
	toks, err := pointer.Tokens(path)
	if err != nil {
		return nil
	}
	return toks
}

func isDescendantPath(fromToks, toToks []string) bool {
	if len(toToks) <= len(fromToks) {
		return false
	}
	for i, t := range fromToks {
		if toToks[i] != t {
			return false
		}
	}
	return true
}

// moveAt detaches the value at from and re-inserts it at to using "add"
// (insert-shift) semantics, per RFC 6902's move definition.
func moveAt(document value.Value, from, to string) error {
	if from == "" {
		return pointer.ErrCannotRemoveRoot
	}
	if isDescendantPath(pathTokens(from), pathTokens(to)) {
		return pointer.ErrDescendant
	}
	v, err := pointer.Remove(document, from)
	if err != nil {
		return err
	}
	return addAt(document, to, v)
}

// copyAt duplicates the value at from and inserts the duplicate at to
// using "add" semantics.
func copyAt(document value.Value, from, to string) error {
	src := pointer.Get(document, from)
	if !src.Valid() {
		return pointer.ErrNotFound
	}
	return addAt(document, to, value.Duplicate(src))
}
