package patch

import (
	"strconv"

	"github.com/agentflare-ai/tagtree/cbor"
	"github.com/agentflare-ai/tagtree/pointer"
	"github.com/agentflare-ai/tagtree/value"
)

// New computes an RFC 6902 patch that transforms a into b.
func New(a, b value.Value) (Patch, error) {
	return diffValue(nil, a, b)
}

func diffValue(tokens []string, a, b value.Value) (Patch, error) {
	if value.Equal(a, b) {
		return nil, nil
	}
	if a.IsMap() && b.IsMap() {
		return diffObject(tokens, a, b)
	}
	if a.IsArray() && b.IsArray() {
		return diffArray(tokens, a, b)
	}
	return Patch{{Op: Replace, Path: pointer.Join(tokens...), Value: value.Duplicate(b)}}, nil
}

func withToken(tokens []string, tok string) []string {
	out := make([]string, len(tokens)+1)
	copy(out, tokens)
	out[len(tokens)] = tok
	return out
}

func diffObject(tokens []string, a, b value.Value) (Patch, error) {
	var out Patch
	for pair := a.First(); pair.Valid(); pair = a.Next(pair) {
		key := pair.Key().AsText()
		if !b.Find(key).Valid() {
			out = append(out, Operation{Op: Remove, Path: pointer.Join(withToken(tokens, key)...)})
		}
	}
	for pair := b.First(); pair.Valid(); pair = b.Next(pair) {
		key := pair.Key().AsText()
		childTokens := withToken(tokens, key)
		if aPair := a.Find(key); aPair.Valid() {
			child, err := diffValue(childTokens, aPair.Val(), pair.Val())
			if err != nil {
				return nil, err
			}
			out = append(out, child...)
			continue
		}
		out = append(out, Operation{Op: Add, Path: pointer.Join(childTokens...), Value: value.Duplicate(pair.Val())})
	}
	return out, nil
}

func valueSlice(arr value.Value) []value.Value {
	out := make([]value.Value, 0, arr.Size())
	for e := arr.First(); e.Valid(); e = arr.Next(e) {
		out = append(out, e)
	}
	return out
}

func tokenizeArray(elems []value.Value) ([]string, error) {
	out := make([]string, len(elems))
	for i, e := range elems {
		b, err := cbor.Dump(e)
		if err != nil {
			return nil, err
		}
		out[i] = string(b)
	}
	return out, nil
}

// diffArray produces an edit script transforming a into b using an
// LCS-based alignment over tokenized (CBOR-encoded) element identity,
// emitting removes in descending index order followed by adds in
// ascending index order, so earlier removals never invalidate later
// indices within the same edit.
func diffArray(tokens []string, a, b value.Value) (Patch, error) {
	aElems := valueSlice(a)
	bElems := valueSlice(b)
	atoks, err := tokenizeArray(aElems)
	if err != nil {
		return nil, err
	}
	btoks, err := tokenizeArray(bElems)
	if err != nil {
		return nil, err
	}
	n, m := len(atoks), len(btoks)

	posMap := make(map[string][]int, n)
	for i, t := range atoks {
		posMap[t] = append(posMap[t], i)
	}
	type pr struct{ ai, bj int }
	var pairs []pr
	var seq []int
	for j, t := range btoks {
		q := posMap[t]
		if len(q) == 0 {
			continue
		}
		ai := q[0]
		posMap[t] = q[1:]
		pairs = append(pairs, pr{ai: ai, bj: j})
		seq = append(seq, ai)
	}

	k := len(seq)
	tails := make([]int, 0, k)
	prev := make([]int, k)
	for i := range prev {
		prev[i] = -1
	}
	for i, v := range seq {
		lo, hi := 0, len(tails)
		for lo < hi {
			mid := (lo + hi) / 2
			if seq[tails[mid]] < v {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		if lo > 0 {
			prev[i] = tails[lo-1]
		}
		if lo == len(tails) {
			tails = append(tails, i)
		} else {
			tails[lo] = i
		}
	}
	lisLen := len(tails)
	lisIdx := make([]int, lisLen)
	if lisLen > 0 {
		p := tails[lisLen-1]
		for x := lisLen - 1; x >= 0; x-- {
			lisIdx[x] = p
			p = prev[p]
		}
	}

	keepA := make([]bool, n)
	keepB := make([]bool, m)
	for _, idx := range lisIdx {
		keepA[pairs[idx].ai] = true
		keepB[pairs[idx].bj] = true
	}

	var out Patch
	for i := n - 1; i >= 0; i-- {
		if !keepA[i] {
			out = append(out, Operation{Op: Remove, Path: pointer.Join(withToken(tokens, strconv.Itoa(i))...)})
		}
	}
	for j := 0; j < m; j++ {
		if !keepB[j] {
			out = append(out, Operation{Op: Add, Path: pointer.Join(withToken(tokens, strconv.Itoa(j))...), Value: value.Duplicate(bElems[j])})
		}
	}
	return out, nil
}
