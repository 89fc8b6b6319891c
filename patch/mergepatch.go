package patch

import "github.com/agentflare-ai/tagtree/value"

// MergePatch applies an RFC 7396 merge patch to a duplicate of target
// and returns the result, leaving target untouched.
func MergePatch(target, mergePatch value.Value) (value.Value, error) {
	dup := value.Duplicate(target)
	if err := MergePatchInPlace(dup, mergePatch); err != nil {
		return value.Value{}, err
	}
	return dup, nil
}

// MergePatchInPlace applies an RFC 7396 merge patch to target, mutating
// its content in place. The root handle's identity is preserved: callers
// keep using the same Value they passed in.
func MergePatchInPlace(target, mergePatch value.Value) error {
	return mergeInto(target, mergePatch)
}

// mergeInto implements RFC 7396's merge(target, patch) recursively,
// mutating target's content (never its identity) to become the merge
// result:
//
//	merge(target, patch):
//	  if patch is Map:
//	    if target is not Map: replace target's content with empty Map
//	    for (k, v) in patch:
//	      if v is Null: remove k from target (if present)
//	      else:          target[k] = merge(target[k] or Null, v)
//	    return target
//	  else:
//	    return copy of patch
func mergeInto(target, mergePatch value.Value) error {
	if !mergePatch.IsMap() {
		value.ReplaceContent(target, value.Duplicate(mergePatch))
		return nil
	}
	if !target.IsMap() {
		value.ReplaceContent(target, value.Map())
	}
	for pair := mergePatch.First(); pair.Valid(); pair = mergePatch.Next(pair) {
		key := pair.Key().AsText()
		v := pair.Val()
		if v.IsNull() {
			if existing := target.Find(key); existing.Valid() {
				if _, err := target.RemoveKey(key); err != nil {
					return err
				}
			}
			continue
		}
		existing := target.Get(key)
		if !existing.Valid() {
			if err := target.SetValue(key, value.Null()); err != nil {
				return err
			}
			existing = target.Get(key)
		}
		if err := mergeInto(existing, v); err != nil {
			return err
		}
	}
	return nil
}
