package value_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentflare-ai/tagtree/value"
)

func TestIntegerRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 23, 24, -24, -25, math.MaxInt64, math.MinInt64}
	for _, c := range cases {
		v := value.Integer(c)
		assert.Equal(t, c, v.AsInteger(), "integer %d", c)
	}
}

func TestUintBeyondInt64(t *testing.T) {
	v := value.Uint(math.MaxUint64)
	assert.Equal(t, uint64(math.MaxUint64), v.AsUint())
	assert.True(t, v.IsInteger())
}

func TestNegIntRepresentsMinusOneMinusMagnitude(t *testing.T) {
	v := value.NegInt(math.MaxUint64)
	// -1 - MaxUint64 wraps in int64 space, but NegMagnitude stays exact.
	assert.Equal(t, uint64(math.MaxUint64), v.NegMagnitude())
}

func TestAccessorsZeroOnMismatch(t *testing.T) {
	b := value.Bytes([]byte("hi"))
	assert.Equal(t, int64(0), b.AsInteger())
	assert.Equal(t, float64(0), b.AsReal())
	assert.Equal(t, "", b.AsText())
	assert.False(t, b.AsBoolean())
	assert.Equal(t, int64(0), value.None.AsInteger())
}

func TestAsRealCoercesIntegers(t *testing.T) {
	assert.Equal(t, float64(5), value.Integer(5).AsReal())
	assert.Equal(t, float64(-3), value.Integer(-3).AsReal())
	assert.Equal(t, 1.5, value.Real(1.5).AsReal())
}

func TestIsRealVsIsNumber(t *testing.T) {
	i := value.Integer(5)
	r := value.Real(5)
	assert.False(t, i.IsReal())
	assert.True(t, i.IsNumber())
	assert.True(t, r.IsReal())
	assert.True(t, r.IsNumber())
	assert.False(t, value.Text("x").IsNumber())
}

func TestBytesIsCopiedOnConstruction(t *testing.T) {
	src := []byte("abc")
	v := value.Bytes(src)
	src[0] = 'z'
	assert.Equal(t, []byte("abc"), v.AsBytes())
}

func TestArrayContainerOps(t *testing.T) {
	arr := value.Array()
	require.NoError(t, arr.InsertTail(value.Integer(1)))
	require.NoError(t, arr.InsertTail(value.Integer(3)))
	mid := value.Integer(2)
	require.NoError(t, arr.InsertBefore(arr.Last(), mid))
	assert.Equal(t, 3, arr.Size())

	var got []int64
	for e := arr.First(); e.Valid(); e = arr.Next(e) {
		got = append(got, e.AsInteger())
	}
	assert.Equal(t, []int64{1, 2, 3}, got)

	// Parent invariant.
	assert.True(t, value.Equal(arr, mid.Parent()))

	removed, err := arr.Remove(mid)
	require.NoError(t, err)
	assert.False(t, removed.Parent().Valid())
	assert.Equal(t, 2, arr.Size())
}

func TestInsertIntoMapRequiresPair(t *testing.T) {
	m := value.Map()
	err := m.InsertTail(value.Integer(1))
	assert.ErrorIs(t, err, value.ErrWrongContainerKind)
}

func TestInsertAlreadyOwnedFails(t *testing.T) {
	arr := value.Array()
	v := value.Integer(1)
	require.NoError(t, arr.InsertTail(v))
	err := arr.InsertTail(v)
	assert.ErrorIs(t, err, value.ErrNotFree)
}

func TestMapOrderedMultimap(t *testing.T) {
	m := value.Map()
	require.NoError(t, m.SetInteger("a", 1))
	require.NoError(t, m.SetInteger("b", 2))
	require.NoError(t, m.SetInteger("a", 9)) // upsert keeps position

	var keys []string
	var vals []int64
	for p := m.First(); p.Valid(); p = m.Next(p) {
		keys = append(keys, p.Key().AsText())
		vals = append(vals, p.Val().AsInteger())
	}
	assert.Equal(t, []string{"a", "b"}, keys)
	assert.Equal(t, []int64{9, 2}, vals)
}

func TestMapFindAndRemoveKey(t *testing.T) {
	m := value.Map()
	require.NoError(t, m.SetText("name", "ada"))
	got, err := m.RemoveKey("name")
	require.NoError(t, err)
	assert.Equal(t, "ada", got.AsText())
	assert.False(t, m.Find("name").Valid())
}

func TestSwapReparents(t *testing.T) {
	a := value.Array()
	b := value.Array()
	require.NoError(t, a.InsertTail(value.Integer(1)))
	require.NoError(t, b.InsertTail(value.Integer(2)))
	require.NoError(t, value.Swap(a, b))
	assert.Equal(t, int64(2), a.First().AsInteger())
	assert.Equal(t, int64(1), b.First().AsInteger())
	assert.True(t, value.Equal(a, a.First().Parent()))
}

func TestConcatMovesAndReparents(t *testing.T) {
	dst := value.Array()
	src := value.Array()
	require.NoError(t, dst.InsertTail(value.Integer(1)))
	require.NoError(t, src.InsertTail(value.Integer(2)))
	require.NoError(t, src.InsertTail(value.Integer(3)))
	require.NoError(t, value.Concat(dst, src))
	assert.Equal(t, 3, dst.Size())
	assert.Equal(t, 0, src.Size())
	assert.True(t, value.Equal(dst, dst.Last().Parent()))
}

func TestTagOwnership(t *testing.T) {
	tag := value.Tag(1, value.Integer(1363896240))
	assert.Equal(t, uint64(1), tag.Item())
	assert.Equal(t, int64(1363896240), tag.Content().AsInteger())
	assert.True(t, value.Equal(tag, tag.Content().Parent()))
}

func TestDuplicateIsDeepAndDetached(t *testing.T) {
	arr := value.Array()
	require.NoError(t, arr.InsertTail(value.Text("x")))
	dup := value.Duplicate(arr)
	assert.True(t, value.Equal(arr, dup))
	assert.False(t, dup.Parent().Valid())

	// Mutating the duplicate must not affect the original.
	_, err := dup.Remove(dup.First())
	require.NoError(t, err)
	assert.Equal(t, 1, arr.Size())
	assert.Equal(t, 0, dup.Size())
}

func TestEqualIntegerVariantsDoNotCross(t *testing.T) {
	assert.False(t, value.Equal(value.Uint(0), value.NegInt(0)))
	assert.True(t, value.Equal(value.Integer(5), value.Uint(5)))
}

func TestEqualMapIsOrderIndependentMultiset(t *testing.T) {
	a := value.Map()
	require.NoError(t, a.SetInteger("x", 1))
	require.NoError(t, a.SetInteger("y", 2))
	b := value.Map()
	require.NoError(t, b.SetInteger("y", 2))
	require.NoError(t, b.SetInteger("x", 1))
	assert.True(t, value.Equal(a, b))
}

func TestEqualRealBitwise(t *testing.T) {
	nan := value.Real(math.NaN())
	assert.True(t, value.Equal(nan, nan))
	assert.False(t, value.Equal(value.Real(0), value.Real(math.Copysign(0, -1))))
}

func TestNoneSentinel(t *testing.T) {
	assert.False(t, value.None.Valid())
	assert.Equal(t, value.KindInvalid, value.None.Kind())
	assert.True(t, value.Equal(value.None, value.Value{}))
}
