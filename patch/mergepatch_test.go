package patch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentflare-ai/tagtree/patch"
	"github.com/agentflare-ai/tagtree/value"
)

func TestMergePatchUpsertsAndLeavesTargetUntouched(t *testing.T) {
	target := value.Map()
	require.NoError(t, target.SetText("a", "1"))
	require.NoError(t, target.SetText("b", "2"))

	mp := value.Map()
	require.NoError(t, mp.SetText("b", "3"))
	require.NoError(t, mp.SetText("c", "4"))

	out, err := patch.MergePatch(target, mp)
	require.NoError(t, err)

	assert.Equal(t, "1", out.Get("a").AsText())
	assert.Equal(t, "3", out.Get("b").AsText())
	assert.Equal(t, "4", out.Get("c").AsText())

	// target untouched
	assert.Equal(t, "2", target.Get("b").AsText())
	assert.False(t, target.Get("c").Valid())
}

func TestMergePatchNullRemovesKey(t *testing.T) {
	target := value.Map()
	require.NoError(t, target.SetText("a", "1"))
	require.NoError(t, target.SetText("b", "2"))

	mp := value.Map()
	require.NoError(t, mp.SetNull("b"))

	out, err := patch.MergePatch(target, mp)
	require.NoError(t, err)
	assert.False(t, out.Get("b").Valid())
	assert.Equal(t, "1", out.Get("a").AsText())
}

func TestMergePatchRecursesNestedObjects(t *testing.T) {
	inner := value.Map()
	require.NoError(t, inner.SetInteger("x", 1))
	require.NoError(t, inner.SetInteger("y", 2))
	target := value.Map()
	require.NoError(t, target.SetValue("nested", inner))

	innerPatch := value.Map()
	require.NoError(t, innerPatch.SetInteger("y", 99))
	mp := value.Map()
	require.NoError(t, mp.SetValue("nested", innerPatch))

	out, err := patch.MergePatch(target, mp)
	require.NoError(t, err)
	nested := out.Get("nested")
	assert.Equal(t, int64(1), nested.Get("x").AsInteger())
	assert.Equal(t, int64(99), nested.Get("y").AsInteger())
}

func TestMergePatchNonObjectPatchReplacesWholesale(t *testing.T) {
	target := value.Map()
	require.NoError(t, target.SetInteger("a", 1))

	out, err := patch.MergePatch(target, value.Text("replaced"))
	require.NoError(t, err)
	assert.Equal(t, "replaced", out.AsText())
}

func TestMergePatchNonObjectTargetBecomesObject(t *testing.T) {
	target := value.Text("scalar")

	mp := value.Map()
	require.NoError(t, mp.SetInteger("a", 1))

	out, err := patch.MergePatch(target, mp)
	require.NoError(t, err)
	assert.True(t, out.IsMap())
	assert.Equal(t, int64(1), out.Get("a").AsInteger())
}

func TestMergePatchIsIdempotent(t *testing.T) {
	target := value.Map()
	require.NoError(t, target.SetText("a", "1"))

	mp := value.Map()
	require.NoError(t, mp.SetText("b", "2"))

	once, err := patch.MergePatch(target, mp)
	require.NoError(t, err)
	twice, err := patch.MergePatch(once, mp)
	require.NoError(t, err)

	assert.True(t, value.Equal(once, twice))
}

func TestMergePatchInPlacePreservesIdentity(t *testing.T) {
	target := value.Map()
	require.NoError(t, target.SetInteger("a", 1))

	mp := value.Map()
	require.NoError(t, mp.SetInteger("b", 2))

	err := patch.MergePatchInPlace(target, mp)
	require.NoError(t, err)
	assert.Equal(t, int64(1), target.Get("a").AsInteger())
	assert.Equal(t, int64(2), target.Get("b").AsInteger())
}
