package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squared-lang/squared/objects"
)

func TestScope_DeclareAndLookup(t *testing.T) {
	global := New(nil)
	global.Declare("x", objects.Int(10))

	v, ok := global.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, int64(10), v.(*objects.Primitive).IntVal())

	_, ok = global.Lookup("y")
	assert.False(t, ok)
}

func TestScope_LookupFallsThroughToParent(t *testing.T) {
	global := New(nil)
	global.Declare("g", objects.Int(1))
	child := New(global)

	v, ok := child.Lookup("g")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.(*objects.Primitive).IntVal())
}

func TestScope_DeclareShadowsParent(t *testing.T) {
	global := New(nil)
	global.Declare("x", objects.Int(1))
	child := New(global)
	child.Declare("x", objects.Int(2))

	v, _ := child.Lookup("x")
	assert.Equal(t, int64(2), v.(*objects.Primitive).IntVal())

	gv, _ := global.Lookup("x")
	assert.Equal(t, int64(1), gv.(*objects.Primitive).IntVal())
}

func TestScope_AssignWriteThroughToDefiningScope(t *testing.T) {
	global := New(nil)
	global.Declare("x", objects.Int(1))
	child := New(global)

	ok := child.Assign("x", objects.Int(99))
	require.True(t, ok)

	gv, _ := global.Lookup("x")
	assert.Equal(t, int64(99), gv.(*objects.Primitive).IntVal())
}

func TestScope_AssignUndeclaredFails(t *testing.T) {
	global := New(nil)
	ok := global.Assign("missing", objects.Int(1))
	assert.False(t, ok)
}

func TestScope_SnapshotIsIndependentOfLaterMutation(t *testing.T) {
	global := New(nil)
	global.Declare("g", objects.Int(10))

	snap := global.Snapshot()
	global.Declare("g", objects.Int(999)) // mutate original after snapshot

	v, ok := snap.Lookup("g")
	require.True(t, ok)
	assert.Equal(t, int64(10), v.(*objects.Primitive).IntVal(), "snapshot must not observe later mutation")
}

func TestScope_SnapshotFlattensAncestorChain(t *testing.T) {
	global := New(nil)
	global.Declare("g", objects.Int(1))
	mid := New(global)
	mid.Declare("m", objects.Int(2))

	snap := mid.Snapshot()
	_, ok := snap.Lookup("g")
	assert.True(t, ok)
	_, ok = snap.Lookup("m")
	assert.True(t, ok)
	assert.Nil(t, snap.Parent)
}
