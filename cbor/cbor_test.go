package cbor_test

import (
	"encoding/hex"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentflare-ai/tagtree/cbor"
	"github.com/agentflare-ai/tagtree/value"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestDecodeUint(t *testing.T) {
	data := mustHex(t, "1864")
	v, n, err := cbor.Load(data)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.Equal(t, uint64(100), v.AsUint())

	out, err := cbor.Dump(v)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestDecodeNegIntMax(t *testing.T) {
	data := mustHex(t, "3bffffffffffffffff")
	v, n, err := cbor.Load(data)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.Equal(t, uint64(math.MaxUint64), v.NegMagnitude())

	out, err := cbor.Dump(v)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestDecodeHalfFloat(t *testing.T) {
	data := mustHex(t, "f93e00")
	v, n, err := cbor.Load(data)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.Equal(t, 1.5, v.AsReal())

	out, err := cbor.Dump(v)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestDoubleThatCannotNarrow(t *testing.T) {
	data := mustHex(t, "fb3ff199999999999a")
	v, n, err := cbor.Load(data)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.InDelta(t, 1.1, v.AsReal(), 1e-15)

	out, err := cbor.Dump(v)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestNestedArray(t *testing.T) {
	data := mustHex(t, "8301820203820405")
	v, n, err := cbor.Load(data)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.Equal(t, 3, v.Size())
	assert.Equal(t, int64(1), v.First().AsInteger())

	out, err := cbor.Dump(v)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestIndefiniteArrayReencodesDefinite(t *testing.T) {
	// 9f 01 82 02 03 9f 04 05 ff ff decodes to [1,[2,3],[4,5]].
	indef := mustHex(t, "9f01820203"+"9f0405ff"+"ff")
	v, n, err := cbor.Load(indef)
	require.NoError(t, err)
	assert.Equal(t, len(indef), n)
	assert.Equal(t, 3, v.Size())

	want := mustHex(t, "8301820203820405")
	out, err := cbor.Dump(v)
	require.NoError(t, err)
	assert.Equal(t, want, out)
}

func TestMapScenario(t *testing.T) {
	// {"a":1,"b":[2,3]}
	data := mustHex(t, "a2"+"6161"+"01"+"6162"+"820203")
	v, n, err := cbor.Load(data)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.True(t, v.IsMap())
	assert.Equal(t, int64(1), v.Get("a").AsInteger())
	assert.Equal(t, 2, v.Get("b").Size())

	out, err := cbor.Dump(v)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestTagScenario(t *testing.T) {
	data := mustHex(t, "c11a514b67b0")
	v, n, err := cbor.Load(data)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.Equal(t, uint64(1), v.Item())
	assert.Equal(t, int64(1363896240), v.Content().AsInteger())

	out, err := cbor.Dump(v)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestTruncatedInputFails(t *testing.T) {
	_, n, err := cbor.Load([]byte{0x18})
	assert.ErrorIs(t, err, cbor.ErrTruncated)
	assert.Equal(t, 0, n)
}

func TestMalformedIndefiniteChunk(t *testing.T) {
	// Indefinite text string with a byte-string chunk inside it.
	data := []byte{0x7f, 0x41, 'x', 0xff}
	_, _, err := cbor.Load(data)
	assert.ErrorIs(t, err, cbor.ErrMalformedIndefinite)
}

func TestDepthExceeded(t *testing.T) {
	// 200 nested one-element arrays, built programmatically, decoded with
	// a depth limit lower than the nesting.
	var data []byte
	for i := 0; i < 200; i++ {
		data = append(data, 0x81) // array of 1
	}
	data = append(data, 0x00) // innermost: Uint(0)
	_, _, err := cbor.LoadWithOptions(data, cbor.DecodeOptions{MaxDepth: 10})
	assert.ErrorIs(t, err, cbor.ErrDepthExceeded)
}

func TestFloatNarrowingRoundTripsThroughValueReal(t *testing.T) {
	for _, f := range []float64{0, 1, -1, 1.5, 65504, 1e300, math.Inf(1), math.Inf(-1)} {
		v := value.Real(f)
		out, err := cbor.Dump(v)
		require.NoError(t, err)
		back, n, err := cbor.Load(out)
		require.NoError(t, err)
		assert.Equal(t, len(out), n)
		if math.IsInf(f, 0) {
			assert.True(t, math.IsInf(back.AsReal(), int(math.Copysign(1, f))))
			continue
		}
		assert.Equal(t, f, back.AsReal())
	}
}

func TestNaNNarrowsAndSurvivesAsNaN(t *testing.T) {
	v := value.Real(math.NaN())
	out, err := cbor.Dump(v)
	require.NoError(t, err)
	back, _, err := cbor.Load(out)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(back.AsReal()))
}

func TestUnmarshalRejectsTrailingData(t *testing.T) {
	data := append(mustHex(t, "1864"), 0x00)
	_, err := cbor.Unmarshal(data)
	assert.ErrorIs(t, err, cbor.ErrTrailingData)
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	m := value.Map()
	require.NoError(t, m.SetInteger("a", 1))
	require.NoError(t, m.SetText("b", "hi"))
	out, err := cbor.Marshal(m)
	require.NoError(t, err)
	back, err := cbor.Unmarshal(out)
	require.NoError(t, err)
	assert.True(t, value.Equal(m, back))
}
