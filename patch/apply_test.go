package patch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentflare-ai/tagtree/patch"
	"github.com/agentflare-ai/tagtree/value"
)

func sampleDoc(t *testing.T) value.Value {
	t.Helper()
	m := value.Map()
	require.NoError(t, m.SetText("name", "alice"))
	arr := value.Array()
	require.NoError(t, arr.InsertTail(value.Integer(1)))
	require.NoError(t, arr.InsertTail(value.Integer(2)))
	require.NoError(t, m.SetValue("tags", arr))
	return m
}

func TestApplyAddToObjectUpserts(t *testing.T) {
	doc := sampleDoc(t)
	out, err := patch.Apply(doc, patch.Patch{{Op: patch.Add, Path: "/age", Value: value.Integer(30)}})
	require.NoError(t, err)
	assert.Equal(t, int64(30), out.Get("age").AsInteger())
	// original untouched
	assert.False(t, doc.Get("age").Valid())
}

func TestApplyAddToArrayShifts(t *testing.T) {
	doc := sampleDoc(t)
	out, err := patch.Apply(doc, patch.Patch{{Op: patch.Add, Path: "/tags/0", Value: value.Integer(99)}})
	require.NoError(t, err)
	tags := out.Get("tags")
	assert.Equal(t, int64(99), tags.First().AsInteger())
	assert.Equal(t, 3, tags.Size())
}

func TestApplyAddAppendsWithDash(t *testing.T) {
	doc := sampleDoc(t)
	out, err := patch.Apply(doc, patch.Patch{{Op: patch.Add, Path: "/tags/-", Value: value.Integer(3)}})
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.Get("tags").Last().AsInteger())
}

func TestApplyAddOnExistingObjectKeyOverwrites(t *testing.T) {
	doc := sampleDoc(t)
	out, err := patch.Apply(doc, patch.Patch{{Op: patch.Add, Path: "/name", Value: value.Text("bob")}})
	require.NoError(t, err)
	assert.Equal(t, "bob", out.Get("name").AsText())
}

func TestApplyRemove(t *testing.T) {
	doc := sampleDoc(t)
	out, err := patch.Apply(doc, patch.Patch{{Op: patch.Remove, Path: "/name"}})
	require.NoError(t, err)
	assert.False(t, out.Get("name").Valid())
}

func TestApplyReplaceFailsIfMissing(t *testing.T) {
	doc := sampleDoc(t)
	_, err := patch.Apply(doc, patch.Patch{{Op: patch.Replace, Path: "/missing", Value: value.Integer(1)}})
	assert.Error(t, err)
}

func TestApplyMoveRejectsDescendant(t *testing.T) {
	doc := sampleDoc(t)
	_, err := patch.Apply(doc, patch.Patch{{Op: patch.Move, From: "/tags", Path: "/tags/0"}})
	assert.Error(t, err)
}

func TestApplyMoveRelocates(t *testing.T) {
	doc := sampleDoc(t)
	out, err := patch.Apply(doc, patch.Patch{{Op: patch.Move, From: "/name", Path: "/owner"}})
	require.NoError(t, err)
	assert.False(t, out.Get("name").Valid())
	assert.Equal(t, "alice", out.Get("owner").AsText())
}

func TestApplyCopyDuplicates(t *testing.T) {
	doc := sampleDoc(t)
	out, err := patch.Apply(doc, patch.Patch{{Op: patch.Copy, From: "/name", Path: "/owner"}})
	require.NoError(t, err)
	assert.Equal(t, "alice", out.Get("name").AsText())
	assert.Equal(t, "alice", out.Get("owner").AsText())
}

func TestApplyTestPasses(t *testing.T) {
	doc := sampleDoc(t)
	_, err := patch.Apply(doc, patch.Patch{{Op: patch.Test, Path: "/name", Value: value.Text("alice")}})
	require.NoError(t, err)
}

func TestApplyTestFails(t *testing.T) {
	doc := sampleDoc(t)
	_, err := patch.Apply(doc, patch.Patch{{Op: patch.Test, Path: "/name", Value: value.Text("bob")}})
	assert.ErrorIs(t, err, patch.ErrTestFailed)
}

func TestApplyRootReplace(t *testing.T) {
	doc := sampleDoc(t)
	replacement := value.Map()
	require.NoError(t, replacement.SetInteger("only", 1))
	out, err := patch.Apply(doc, patch.Patch{{Op: patch.Replace, Path: "", Value: replacement}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Get("only").AsInteger())
	assert.True(t, out.IsMap())
}

func TestOperationRoundTripsThroughValue(t *testing.T) {
	op := patch.Operation{Op: patch.Add, Path: "/a/b", Value: value.Integer(7)}
	back, err := patch.OperationFromValue(op.ToValue())
	require.NoError(t, err)
	assert.Equal(t, patch.Add, back.Op)
	assert.Equal(t, "/a/b", back.Path)
	assert.Equal(t, int64(7), back.Value.AsInteger())
}

func TestPatchMarshalUnmarshalRoundTrip(t *testing.T) {
	p := patch.Patch{
		{Op: patch.Add, Path: "/x", Value: value.Integer(1)},
		{Op: patch.Remove, Path: "/y"},
	}
	data, err := patch.Marshal(p)
	require.NoError(t, err)
	back, err := patch.Unmarshal(data)
	require.NoError(t, err)
	require.Len(t, back, 2)
	assert.Equal(t, patch.Add, back[0].Op)
	assert.Equal(t, "/x", back[0].Path)
	assert.Equal(t, int64(1), back[0].Value.AsInteger())
	assert.Equal(t, patch.Remove, back[1].Op)
}
