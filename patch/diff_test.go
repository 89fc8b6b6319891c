package patch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentflare-ai/tagtree/patch"
	"github.com/agentflare-ai/tagtree/value"
)

func arrOf(vals ...int64) value.Value {
	a := value.Array()
	for _, v := range vals {
		_ = a.InsertTail(value.Integer(v))
	}
	return a
}

func TestNewDiffObjectAddsRemovesReplaces(t *testing.T) {
	a := value.Map()
	require.NoError(t, a.SetInteger("keep", 1))
	require.NoError(t, a.SetInteger("remove", 2))
	require.NoError(t, a.SetInteger("change", 3))

	b := value.Map()
	require.NoError(t, b.SetInteger("keep", 1))
	require.NoError(t, b.SetInteger("change", 4))
	require.NoError(t, b.SetInteger("added", 5))

	p, err := patch.New(a, b)
	require.NoError(t, err)

	out, err := patch.Apply(a, p)
	require.NoError(t, err)
	assert.True(t, value.Equal(out, b))
}

func TestNewDiffArrayInsertAndRemove(t *testing.T) {
	a := arrOf(1, 2, 3)
	b := arrOf(1, 9, 2, 3)

	p, err := patch.New(a, b)
	require.NoError(t, err)

	out, err := patch.Apply(a, p)
	require.NoError(t, err)
	assert.True(t, value.Equal(out, b))
}

func TestNewDiffArrayReorderAndTruncate(t *testing.T) {
	a := arrOf(1, 2, 3, 4)
	b := arrOf(4, 2)

	p, err := patch.New(a, b)
	require.NoError(t, err)

	out, err := patch.Apply(a, p)
	require.NoError(t, err)
	assert.True(t, value.Equal(out, b))
}

func TestNewDiffNoChangesIsEmpty(t *testing.T) {
	a := arrOf(1, 2, 3)
	b := arrOf(1, 2, 3)
	p, err := patch.New(a, b)
	require.NoError(t, err)
	assert.Empty(t, p)
}

func TestNewDiffReplacesMismatchedContainerKinds(t *testing.T) {
	a := arrOf(1, 2)
	b := value.Map()
	require.NoError(t, b.SetInteger("x", 1))
	p, err := patch.New(a, b)
	require.NoError(t, err)
	require.Len(t, p, 1)
	assert.Equal(t, patch.Replace, p[0].Op)
	assert.Equal(t, "", p[0].Path)
}
