package pointer

import (
	"strconv"
	"strings"

	"github.com/agentflare-ai/tagtree/value"
)

// Tokens splits a JSON Pointer string into its unescaped reference
// tokens. The empty pointer names the root and yields a nil slice.
// Decoding unescapes "~1" to "/" before "~0" to "~", per RFC 6901.
func Tokens(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	if !strings.HasPrefix(path, "/") {
		return nil, ErrInvalidPointer
	}
	raw := strings.Split(path[1:], "/")
	toks := make([]string, len(raw))
	for i, t := range raw {
		t = strings.ReplaceAll(t, "~1", "/")
		t = strings.ReplaceAll(t, "~0", "~")
		toks[i] = t
	}
	return toks, nil
}

// Join builds a pointer string from unescaped path components,
// escaping "~" to "~0" and "/" to "~1" in each one.
func Join(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteByte('/')
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(p, "~", "~0"), "/", "~1"))
	}
	return b.String()
}

func parseIndex(tok string) (int, error) {
	if tok == "" {
		return 0, ErrInvalidPointer
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return 0, ErrInvalidPointer
	}
	return n, nil
}

// elementAt returns arr's element at idx, or None if out of range.
func elementAt(arr value.Value, idx int) value.Value {
	if idx < 0 || idx >= arr.Size() {
		return value.Value{}
	}
	e := arr.First()
	for i := 0; i < idx; i++ {
		e = arr.Next(e)
	}
	return e
}

// step advances cur by one reference token, for reading. "-" inside an
// array resolves to the last element, per spec's read-time addressing
// rule; it is a write-time append sentinel only at the final token of
// insert/set, handled separately by those operations.
func step(cur value.Value, tok string) value.Value {
	switch {
	case cur.IsMap():
		return cur.Get(tok)
	case cur.IsArray():
		if tok == "-" {
			return cur.Last()
		}
		idx, err := parseIndex(tok)
		if err != nil {
			return value.Value{}
		}
		return elementAt(cur, idx)
	default:
		return value.Value{}
	}
}

// Get walks path from root and returns the target value, or None if
// any segment is missing or addresses through a non-container.
func Get(root value.Value, path string) value.Value {
	toks, err := Tokens(path)
	if err != nil {
		return value.Value{}
	}
	cur := root
	for _, tok := range toks {
		cur = step(cur, tok)
		if !cur.Valid() {
			return value.Value{}
		}
	}
	return cur
}

// navigate walks every token but the last, returning the resulting
// container and the final token. ok is false if any intermediate
// segment fails to resolve, or if toks is empty (the caller must
// handle the root path itself).
func navigate(root value.Value, toks []string) (parent value.Value, last string, ok bool) {
	if len(toks) == 0 {
		return value.Value{}, "", false
	}
	cur := root
	for _, tok := range toks[:len(toks)-1] {
		cur = step(cur, tok)
		if !cur.Valid() {
			return value.Value{}, "", false
		}
	}
	return cur, toks[len(toks)-1], true
}

// Insert adds v at path only if that location is currently empty: a
// missing map key, or any array position up to and including one past
// the last element. It fails if the location is already occupied (a
// present map key) or if path names the root, which always exists.
func Insert(root value.Value, path string, v value.Value) (value.Value, error) {
	toks, err := Tokens(path)
	if err != nil {
		return value.Value{}, err
	}
	if len(toks) == 0 {
		return value.Value{}, ErrAlreadyExists
	}
	parent, last, ok := navigate(root, toks)
	if !ok {
		return value.Value{}, ErrNotFound
	}
	switch {
	case parent.IsMap():
		if parent.Find(last).Valid() {
			return value.Value{}, ErrAlreadyExists
		}
		if err := parent.SetValue(last, v); err != nil {
			return value.Value{}, err
		}
		return parent, nil
	case parent.IsArray():
		return parent, insertIntoArray(parent, last, v)
	default:
		return value.Value{}, ErrNotContainer
	}
}

func insertIntoArray(arr value.Value, tok string, v value.Value) error {
	if tok == "-" {
		return arr.InsertTail(v)
	}
	idx, err := parseIndex(tok)
	if err != nil {
		return err
	}
	switch {
	case idx == arr.Size():
		return arr.InsertTail(v)
	case idx < arr.Size():
		return arr.InsertBefore(elementAt(arr, idx), v)
	default:
		return ErrIndexOutOfRange
	}
}

// arrayIndexForReplace resolves a final-token array index for
// Replace/Remove, where "-" names the last element rather than the
// append position.
func arrayIndexForReplace(arr value.Value, tok string) (int, error) {
	if tok == "-" {
		if arr.Size() == 0 {
			return 0, ErrIndexOutOfRange
		}
		return arr.Size() - 1, nil
	}
	idx, err := parseIndex(tok)
	if err != nil {
		return 0, err
	}
	if idx < 0 || idx >= arr.Size() {
		return 0, ErrIndexOutOfRange
	}
	return idx, nil
}

// replaceArrayElement swaps out the element at idx for v, preserving
// its position.
func replaceArrayElement(arr value.Value, idx int, v value.Value) error {
	old := elementAt(arr, idx)
	if !old.Valid() {
		return ErrIndexOutOfRange
	}
	next := arr.Next(old)
	if _, err := arr.Remove(old); err != nil {
		return err
	}
	if next.Valid() {
		return arr.InsertBefore(next, v)
	}
	return arr.InsertTail(v)
}

// Replace overwrites the value at path only if it is already present.
// Replacing the root overwrites root's content in place (see
// value.ReplaceContent) rather than the root handle's identity, so
// callers keep their existing root reference.
func Replace(root value.Value, path string, v value.Value) (value.Value, error) {
	toks, err := Tokens(path)
	if err != nil {
		return value.Value{}, err
	}
	if len(toks) == 0 {
		value.ReplaceContent(root, v)
		return root, nil
	}
	parent, last, ok := navigate(root, toks)
	if !ok {
		return value.Value{}, ErrNotFound
	}
	switch {
	case parent.IsMap():
		pair := parent.Find(last)
		if !pair.Valid() {
			return value.Value{}, ErrNotFound
		}
		pair.SetVal(v)
		return parent, nil
	case parent.IsArray():
		idx, err := arrayIndexForReplace(parent, last)
		if err != nil {
			return value.Value{}, err
		}
		if err := replaceArrayElement(parent, idx, v); err != nil {
			return value.Value{}, err
		}
		return parent, nil
	default:
		return value.Value{}, ErrNotContainer
	}
}

// Set upserts v at path: it replaces an existing occupant of the final
// token or creates a new one. It fails with ErrNotFound if an earlier
// token does not resolve, and with ErrIndexOutOfRange if an array index
// lies past the end.
// Setting the root replaces root's content in place.
func Set(root value.Value, path string, v value.Value) (value.Value, error) {
	toks, err := Tokens(path)
	if err != nil {
		return value.Value{}, err
	}
	if len(toks) == 0 {
		value.ReplaceContent(root, v)
		return root, nil
	}
	parent, last, ok := navigate(root, toks)
	if !ok {
		return value.Value{}, ErrNotFound
	}
	switch {
	case parent.IsMap():
		if err := parent.SetValue(last, v); err != nil {
			return value.Value{}, err
		}
		return parent, nil
	case parent.IsArray():
		if last == "-" {
			return parent, parent.InsertTail(v)
		}
		idx, err := parseIndex(last)
		if err != nil {
			return value.Value{}, err
		}
		switch {
		case idx == parent.Size():
			return parent, parent.InsertTail(v)
		case idx < parent.Size():
			return parent, replaceArrayElement(parent, idx, v)
		default:
			return value.Value{}, ErrIndexOutOfRange
		}
	default:
		return value.Value{}, ErrNotContainer
	}
}

// Remove detaches and returns the value at path. The root cannot be
// removed, since it has no parent to detach it from.
func Remove(root value.Value, path string) (value.Value, error) {
	toks, err := Tokens(path)
	if err != nil {
		return value.Value{}, err
	}
	if len(toks) == 0 {
		return value.Value{}, ErrCannotRemoveRoot
	}
	parent, last, ok := navigate(root, toks)
	if !ok {
		return value.Value{}, ErrNotFound
	}
	switch {
	case parent.IsMap():
		return parent.RemoveKey(last)
	case parent.IsArray():
		idx, err := arrayIndexForReplace(parent, last)
		if err != nil {
			return value.Value{}, err
		}
		return parent.Remove(elementAt(parent, idx))
	default:
		return value.Value{}, ErrNotContainer
	}
}

func isDescendant(fromToks, toToks []string) bool {
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

// Move detaches the value at from and sets it at to, returning to's
// parent. It fails if to is a descendant of from (which would detach
// the subtree out from under its own destination) or if from is the
// root.
func Move(root value.Value, from, to string) (value.Value, error) {
	if from == "" {
		return value.Value{}, ErrCannotRemoveRoot
	}
	fromToks, err := Tokens(from)
	if err != nil {
		return value.Value{}, err
	}
	toToks, err := Tokens(to)
	if err != nil {
		return value.Value{}, err
	}
	if isDescendant(fromToks, toToks) {
		return value.Value{}, ErrDescendant
	}
	if !Get(root, from).Valid() {
		return value.Value{}, ErrNotFound
	}
	detached, err := Remove(root, from)
	if err != nil {
		return value.Value{}, err
	}
	return Set(root, to, detached)
}

// Copy deep-duplicates the value at from and sets the duplicate at to,
// returning the duplicate.
func Copy(root value.Value, from, to string) (value.Value, error) {
	src := Get(root, from)
	if !src.Valid() {
		return value.Value{}, ErrNotFound
	}
	dup := value.Duplicate(src)
	if _, err := Set(root, to, dup); err != nil {
		return value.Value{}, err
	}
	return dup, nil
}

// Test reports whether the value at path is structurally equal to v.
// A missing path reports false rather than an error.
func Test(root value.Value, path string, v value.Value) bool {
	cur := Get(root, path)
	if !cur.Valid() {
		return false
	}
	return value.Equal(cur, v)
}
