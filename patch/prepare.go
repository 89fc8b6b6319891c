package patch

import (
	"fmt"
	"strconv"

	"github.com/agentflare-ai/tagtree/pointer"
	"github.com/agentflare-ai/tagtree/value"
)

// Delta captures one materialized change within a Prepare'd patch: a
// concrete path (with any "-" array-append resolved to its final
// index), the op that produced it, and the before/after snapshots
// needed to replay or revert it.
type Delta struct {
	Path          string
	Op            Op
	Before        value.Value
	After         value.Value
	ExistedBefore bool
	ExistedAfter  bool
}

// Diff holds the ordered deltas from a Prepare call along with
// precompiled forward and reverse patches.
type Diff struct {
	Deltas  []Delta
	forward Patch
	reverse Patch
}

// Apply reproduces the prepared patch's effect on document.
func (d Diff) Apply(document value.Value) (value.Value, error) {
	return Apply(document, d.forward)
}

// Revert undoes the prepared patch's effect on document.
func (d Diff) Revert(document value.Value) (value.Value, error) {
	return Apply(document, d.reverse)
}

func isRootPath(path string) bool { return path == "" }

// resolveConcreteAddPath rewrites a trailing "-" array-append token into
// the concrete index it will occupy, so later delta replay/revert does
// not depend on the live size of the target array.
func resolveConcreteAddPath(doc value.Value, path string) (string, error) {
	toks, err := pointer.Tokens(path)
	if err != nil {
		return "", err
	}
	if len(toks) == 0 {
		return path, nil
	}
	last := toks[len(toks)-1]
	if last != "-" {
		return path, nil
	}
	parentToks := toks[:len(toks)-1]
	parentPath := pointer.Join(parentToks...)
	var parent value.Value
	if len(parentToks) == 0 {
		parent = doc
	} else {
		parent = pointer.Get(doc, parentPath)
	}
	if !parent.Valid() {
		return "", fmt.Errorf("parent path %q not found for '-': %w", parentPath, pointer.ErrNotFound)
	}
	if !parent.IsArray() {
		return "", fmt.Errorf("path %q with '-' is not an array parent", parentPath)
	}
	return pointer.Join(append(append([]string{}, parentToks...), strconv.Itoa(parent.Size()))...), nil
}

func tryGetDup(doc value.Value, path string) (bool, value.Value) {
	v := pointer.Get(doc, path)
	if !v.Valid() {
		return false, value.Value{}
	}
	return true, value.Duplicate(v)
}

// Prepare simulates applying patch to a duplicate of original, capturing
// concrete, reproducible deltas (including resolved "-" array paths)
// without mutating original.
func Prepare(original value.Value, p Patch) (Diff, error) {
	docCopy := value.Duplicate(original)
	var deltas []Delta

	for _, op := range p {
		switch op.Op {
		case Add:
			resolvedPath, err := resolveConcreteAddPath(docCopy, op.Path)
			if err != nil {
				return Diff{}, fmt.Errorf("add resolve path failed: %w", err)
			}
			existedBefore, beforeVal := tryGetDup(docCopy, resolvedPath)
			afterVal := value.Duplicate(op.Value)
			deltas = append(deltas, Delta{
				Path: resolvedPath, Op: Add,
				Before: beforeVal, After: afterVal,
				ExistedBefore: existedBefore, ExistedAfter: true,
			})
			if err := addAt(docCopy, op.Path, value.Duplicate(op.Value)); err != nil {
				return Diff{}, fmt.Errorf("apply add failed: %w", err)
			}

		case Remove:
			beforeRaw := pointer.Get(docCopy, op.Path)
			if !beforeRaw.Valid() {
				return Diff{}, fmt.Errorf("remove get before failed: %w", pointer.ErrNotFound)
			}
			beforeVal := value.Duplicate(beforeRaw)
			deltas = append(deltas, Delta{Path: op.Path, Op: Remove, Before: beforeVal, ExistedBefore: true, ExistedAfter: false})
			if _, err := pointer.Remove(docCopy, op.Path); err != nil {
				return Diff{}, fmt.Errorf("apply remove failed: %w", err)
			}

		case Replace:
			beforeRaw := pointer.Get(docCopy, op.Path)
			if !beforeRaw.Valid() {
				return Diff{}, fmt.Errorf("replace get before failed: %w", pointer.ErrNotFound)
			}
			beforeVal := value.Duplicate(beforeRaw)
			afterVal := value.Duplicate(op.Value)
			deltas = append(deltas, Delta{Path: op.Path, Op: Replace, Before: beforeVal, After: afterVal, ExistedBefore: true, ExistedAfter: true})
			if _, err := pointer.Replace(docCopy, op.Path, value.Duplicate(op.Value)); err != nil {
				return Diff{}, fmt.Errorf("apply replace failed: %w", err)
			}

		case Move:
			valRaw := pointer.Get(docCopy, op.From)
			if !valRaw.Valid() {
				return Diff{}, fmt.Errorf("move get source failed: %w", pointer.ErrNotFound)
			}
			valCopy := value.Duplicate(valRaw)
			resolvedDest, err := resolveConcreteAddPath(docCopy, op.Path)
			if err != nil {
				return Diff{}, fmt.Errorf("move resolve dest failed: %w", err)
			}
			destExisted, destBefore := tryGetDup(docCopy, resolvedDest)
			deltas = append(deltas, Delta{Path: resolvedDest, Op: Add, Before: destBefore, After: valCopy, ExistedBefore: destExisted, ExistedAfter: true})
			deltas = append(deltas, Delta{Path: op.From, Op: Remove, Before: valCopy, ExistedBefore: true, ExistedAfter: false})
			if err := moveAt(docCopy, op.From, op.Path); err != nil {
				return Diff{}, fmt.Errorf("apply move failed: %w", err)
			}

		case Copy:
			valRaw := pointer.Get(docCopy, op.From)
			if !valRaw.Valid() {
				return Diff{}, fmt.Errorf("copy get source failed: %w", pointer.ErrNotFound)
			}
			valCopy := value.Duplicate(valRaw)
			resolvedDest, err := resolveConcreteAddPath(docCopy, op.Path)
			if err != nil {
				return Diff{}, fmt.Errorf("copy resolve dest failed: %w", err)
			}
			destExisted, destBefore := tryGetDup(docCopy, resolvedDest)
			deltas = append(deltas, Delta{Path: resolvedDest, Op: Add, Before: destBefore, After: valCopy, ExistedBefore: destExisted, ExistedAfter: true})
			if err := copyAt(docCopy, op.From, op.Path); err != nil {
				return Diff{}, fmt.Errorf("apply copy failed: %w", err)
			}

		case Test:
			if !pointer.Test(docCopy, op.Path, op.Value) {
				return Diff{}, fmt.Errorf("test failed: %w", ErrTestFailed)
			}

		default:
			return Diff{}, fmt.Errorf("unsupported patch operation in prepare: %s", op.Op)
		}
	}

	var forward Patch
	for _, d := range deltas {
		switch d.Op {
		case Add:
			forward = append(forward, Operation{Op: Add, Path: d.Path, Value: d.After})
		case Remove:
			forward = append(forward, Operation{Op: Remove, Path: d.Path})
		case Replace:
			forward = append(forward, Operation{Op: Replace, Path: d.Path, Value: d.After})
		default:
			return Diff{}, fmt.Errorf("unsupported delta op in forward compile: %s", d.Op)
		}
	}
	var reverse Patch
	for i := len(deltas) - 1; i >= 0; i-- {
		d := deltas[i]
		if isRootPath(d.Path) {
			reverse = append(reverse, Operation{Op: Replace, Path: "", Value: d.Before})
			continue
		}
		switch d.Op {
		case Add:
			if d.ExistedBefore {
				reverse = append(reverse, Operation{Op: Replace, Path: d.Path, Value: d.Before})
			} else {
				reverse = append(reverse, Operation{Op: Remove, Path: d.Path})
			}
		case Remove:
			reverse = append(reverse, Operation{Op: Add, Path: d.Path, Value: d.Before})
		case Replace:
			reverse = append(reverse, Operation{Op: Replace, Path: d.Path, Value: d.Before})
		default:
			return Diff{}, fmt.Errorf("unsupported delta op in reverse compile: %s", d.Op)
		}
	}

	return Diff{Deltas: deltas, forward: forward, reverse: reverse}, nil
}
