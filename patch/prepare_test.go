package patch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentflare-ai/tagtree/patch"
	"github.com/agentflare-ai/tagtree/value"
)

func TestPrepareApplyMatchesDirectApply(t *testing.T) {
	doc := sampleDoc(t)
	p := patch.Patch{
		{Op: patch.Add, Path: "/tags/-", Value: value.Integer(42)},
		{Op: patch.Replace, Path: "/name", Value: value.Text("carol")},
	}

	diff, err := patch.Prepare(doc, p)
	require.NoError(t, err)

	out, err := diff.Apply(doc)
	require.NoError(t, err)

	direct, err := patch.Apply(doc, p)
	require.NoError(t, err)

	assert.True(t, value.Equal(out, direct))
}

func TestPrepareRevertRestoresOriginal(t *testing.T) {
	doc := sampleDoc(t)
	p := patch.Patch{
		{Op: patch.Add, Path: "/age", Value: value.Integer(21)},
		{Op: patch.Remove, Path: "/name"},
	}

	diff, err := patch.Prepare(doc, p)
	require.NoError(t, err)

	applied, err := diff.Apply(doc)
	require.NoError(t, err)

	reverted, err := diff.Revert(applied)
	require.NoError(t, err)

	assert.True(t, value.Equal(reverted, doc))
}

func TestPrepareResolvesDashToConcreteIndex(t *testing.T) {
	doc := sampleDoc(t)
	p := patch.Patch{{Op: patch.Add, Path: "/tags/-", Value: value.Integer(7)}}

	diff, err := patch.Prepare(doc, p)
	require.NoError(t, err)
	require.Len(t, diff.Deltas, 1)
	assert.Equal(t, "/tags/2", diff.Deltas[0].Path)
}

func TestPrepareFailsOnMissingRemove(t *testing.T) {
	doc := sampleDoc(t)
	_, err := patch.Prepare(doc, patch.Patch{{Op: patch.Remove, Path: "/missing"}})
	assert.Error(t, err)
}

func TestPrepareFailsOnFailedTest(t *testing.T) {
	doc := sampleDoc(t)
	_, err := patch.Prepare(doc, patch.Patch{{Op: patch.Test, Path: "/name", Value: value.Text("nope")}})
	assert.ErrorIs(t, err, patch.ErrTestFailed)
}
