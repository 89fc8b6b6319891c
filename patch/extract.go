package patch

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/agentflare-ai/tagtree/pointer"
	"github.com/agentflare-ai/tagtree/value"
)

type addEntry struct {
	parentToks []string
	child      string
}

// ExtractAdded splits after using only the Add ops in p:
//   - remaining: after with the added elements/keys removed
//   - addedOnly: a partial tree holding only the added content
//
// This duplicates subtrees at each container boundary instead of
// sharing structure copy-on-write, since value.Value nodes are
// single-owner and cannot alias between two trees the way a Go map or
// slice header can.
func ExtractAdded(after value.Value, p Patch) (remaining value.Value, addedOnly value.Value, err error) {
	remaining = value.Duplicate(after)

	groups := map[string][]addEntry{}
	var order []string
	for _, op := range p {
		if op.Op != Add {
			continue
		}
		if op.Path == "" {
			return value.Value{}, value.Value{}, ErrRootAddUnsupported
		}
		toks, terr := pointer.Tokens(op.Path)
		if terr != nil {
			return value.Value{}, value.Value{}, terr
		}
		if len(toks) == 0 {
			return value.Value{}, value.Value{}, ErrRootAddUnsupported
		}
		parentToks := toks[:len(toks)-1]
		child := toks[len(toks)-1]
		key := pointer.Join(parentToks...)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], addEntry{parentToks: parentToks, child: child})
	}
	if len(groups) == 0 {
		return remaining, value.Value{}, nil
	}

	sort.Slice(order, func(i, j int) bool {
		return len(groups[order[i]][0].parentToks) < len(groups[order[j]][0].parentToks)
	})

	var addedRoot value.Value
	for _, key := range order {
		entries := groups[key]
		parentToks := entries[0].parentToks

		parentAfter := after
		if len(parentToks) > 0 {
			parentAfter = pointer.Get(after, key)
		}
		if !parentAfter.Valid() {
			return value.Value{}, value.Value{}, fmt.Errorf("parent %q not found in after", key)
		}

		switch {
		case parentAfter.IsMap():
			if err := extractMapGroup(after, parentAfter, remaining, &addedRoot, key, parentToks, entries); err != nil {
				return value.Value{}, value.Value{}, err
			}
		case parentAfter.IsArray():
			if err := extractArrayGroup(parentAfter, remaining, &addedRoot, key, parentToks, entries); err != nil {
				return value.Value{}, value.Value{}, err
			}
		default:
			return value.Value{}, value.Value{}, fmt.Errorf("parent %q must be object or array", key)
		}
	}

	return remaining, addedRoot, nil
}

func extractMapGroup(after, parentAfter, remaining value.Value, addedRoot *value.Value, key string, parentToks []string, entries []addEntry) error {
	parentRemaining := remaining
	if len(parentToks) > 0 {
		parentRemaining = pointer.Get(remaining, key)
	}
	if !parentRemaining.IsMap() {
		return fmt.Errorf("parent %q expected object in remaining", key)
	}
	aoParent, err := ensureMapPath(addedRoot, parentToks)
	if err != nil {
		return err
	}
	seen := map[string]bool{}
	for _, e := range entries {
		if e.child == "-" {
			return fmt.Errorf("object parent %q received array-style add at child %q", key, e.child)
		}
		seen[e.child] = true
	}
	for child := range seen {
		if pair := parentRemaining.Find(child); pair.Valid() {
			if _, err := parentRemaining.RemoveKey(child); err != nil {
				return err
			}
		}
		v := parentAfter.Get(child)
		if v.Valid() {
			if err := aoParent.SetValue(child, value.Duplicate(v)); err != nil {
				return err
			}
		}
	}
	return nil
}

func extractArrayGroup(parentAfter, remaining value.Value, addedRoot *value.Value, key string, parentToks []string, entries []addEntry) error {
	lAfter := parentAfter.Size()
	numAdds := len(entries)
	baseLen := lAfter - numAdds
	if baseLen < 0 {
		return fmt.Errorf("invalid baseLen for parent %q", key)
	}

	idxSet := map[int]bool{}
	appendCount := 0
	for _, e := range entries {
		var idx int
		if e.child == "-" {
			idx = baseLen + appendCount
			appendCount++
		} else {
			n, perr := strconv.Atoi(e.child)
			if perr != nil {
				return fmt.Errorf("array parent %q child %q is not numeric nor '-'", key, e.child)
			}
			idx = n
		}
		idxSet[idx] = true
	}

	parentRemaining := remaining
	if len(parentToks) > 0 {
		parentRemaining = pointer.Get(remaining, key)
	}
	if !parentRemaining.IsArray() {
		return fmt.Errorf("parent %q expected array in remaining", key)
	}

	descIdxs := make([]int, 0, len(idxSet))
	for i := range idxSet {
		descIdxs = append(descIdxs, i)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(descIdxs)))
	for _, idx := range descIdxs {
		e := elementAt(parentRemaining, idx)
		if e.Valid() {
			if _, err := parentRemaining.Remove(e); err != nil {
				return err
			}
		}
	}

	ascIdxs := make([]int, len(descIdxs))
	copy(ascIdxs, descIdxs)
	sort.Ints(ascIdxs)

	aoArr, err := ensureArrayPath(addedRoot, parentToks)
	if err != nil {
		return err
	}
	for _, idx := range ascIdxs {
		e := elementAt(parentAfter, idx)
		if !e.Valid() {
			return fmt.Errorf("after array index %d out of bounds for parent %q", idx, key)
		}
		if err := aoArr.InsertTail(value.Duplicate(e)); err != nil {
			return err
		}
	}
	return nil
}

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

// ensureMapPath walks tokens from *root (creating it as an empty Map if
// unset), creating intermediate Map containers as needed, and returns
// the leaf container.
func ensureMapPath(root *value.Value, tokens []string) (value.Value, error) {
	if !root.Valid() {
		*root = value.Map()
	}
	if !root.IsMap() {
		return value.Value{}, fmt.Errorf("addedOnly root must be object")
	}
	cur := *root
	for _, tok := range tokens {
		if pair := cur.Find(tok); pair.Valid() {
			cv := pair.Val()
			if !cv.IsMap() {
				return value.Value{}, fmt.Errorf("addedOnly path %q is not an object", tok)
			}
			cur = cv
			continue
		}
		child := value.Map()
		if err := cur.SetValue(tok, child); err != nil {
			return value.Value{}, err
		}
		cur = child
	}
	return cur, nil
}

// ensureArrayPath walks all but the last token as Map containers, then
// ensures the leaf is an Array.
func ensureArrayPath(root *value.Value, tokens []string) (value.Value, error) {
	if len(tokens) == 0 {
		if !root.Valid() {
			*root = value.Array()
		}
		if !root.IsArray() {
			return value.Value{}, fmt.Errorf("addedOnly root must be array")
		}
		return *root, nil
	}
	parent, err := ensureMapPath(root, tokens[:len(tokens)-1])
	if err != nil {
		return value.Value{}, err
	}
	last := tokens[len(tokens)-1]
	if pair := parent.Find(last); pair.Valid() {
		cv := pair.Val()
		if !cv.IsArray() {
			return value.Value{}, fmt.Errorf("addedOnly path %q is not an array", last)
		}
		return cv, nil
	}
	arr := value.Array()
	if err := parent.SetValue(last, arr); err != nil {
		return value.Value{}, err
	}
	return arr, nil
}
