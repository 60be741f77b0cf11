package eytzinger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeMut_Navigation(t *testing.T) {
	t.Parallel()

	tree := sampleTree()
	node, ok := tree.RootMut()
	require.True(t, ok)

	node, ok = node.ToChild(0)
	require.True(t, ok)
	assert.Equal(t, 2, node.Value())

	node, ok = node.ToChild(1)
	require.True(t, ok)
	assert.Equal(t, 4, node.Value())

	node, ok = node.ToParent()
	require.True(t, ok)
	assert.Equal(t, 2, node.Value())

	node, ok = node.ToParent()
	require.True(t, ok)
	assert.Equal(t, 5, node.Value())
	assert.Equal(t, 0, node.Index())
}

func TestNodeMut_ToChildVacant(t *testing.T) {
	t.Parallel()

	tree := sampleTree()
	node, _ := tree.RootMut()
	node, ok := node.ToChild(1) // value 7

	require.True(t, ok)

	// child slot 0 of 7 is vacant: the original handle comes back
	same, ok := node.ToChild(0)

	assert.False(t, ok)
	assert.Equal(t, node.Index(), same.Index())

	assert.Panics(t, func() { node.ToChild(2) })
}

func TestNodeMut_AscentStopsAtSessionStart(t *testing.T) {
	t.Parallel()

	tree := sampleTree()

	// a session started at the root cannot ascend at all
	root, _ := tree.RootMut()
	same, ok := root.ToParent()
	assert.False(t, ok)
	assert.Equal(t, 0, same.Index())

	// a handle descended from the root can come back up to it
	node, _ := root.ToChild(0)
	node, ok = node.ToParent()
	assert.True(t, ok)
	assert.Equal(t, 0, node.Index())
}

func TestNodeMut_SetValue(t *testing.T) {
	t.Parallel()

	tree := sampleTree()
	node, _ := tree.RootMut()
	node, _ = node.ToChild(0)

	prev := node.SetValue(20)

	assert.Equal(t, 2, prev)
	assert.Equal(t, 20, node.Value())
	assert.Equal(t, 7, tree.Len())
}

func TestNodeMut_SetChildValueCounts(t *testing.T) {
	t.Parallel()

	tree := New[int](2)
	root := tree.SetRootValue(1)

	// writing a vacant slot adds a node
	child := root.SetChildValue(0, 2)
	assert.Equal(t, 2, tree.Len())

	// overwriting keeps the count
	back, ok := child.ToParent()
	require.True(t, ok)
	back.SetChildValue(0, 3)
	assert.Equal(t, 2, tree.Len())

	node, ok := tree.Root()
	require.True(t, ok)
	got, ok := node.Child(0)
	require.True(t, ok)
	assert.Equal(t, 3, got.Value())
}

func TestEntry_Shared(t *testing.T) {
	t.Parallel()

	tree := sampleTree()
	root, _ := tree.Root()

	// node 7 has a vacant child 0 and an occupied child 1
	seven := root.ChildEntry(1)
	require.True(t, seven.Occupied())

	vacant, ok := seven.ChildEntry(0)
	require.True(t, ok)
	assert.False(t, vacant.Occupied())

	_, ok = vacant.Value()
	assert.False(t, ok)
	_, ok = vacant.Node()
	assert.False(t, ok)

	// a vacant entry cannot resolve children, but knows its parent
	_, ok = vacant.ChildEntry(0)
	assert.False(t, ok)

	parent, ok := vacant.Parent()
	require.True(t, ok)
	assert.True(t, parent.Occupied())
	assert.Equal(t, seven.Index(), parent.Index())

	// the root entry has no parent
	_, ok = tree.RootEntry().Parent()
	assert.False(t, ok)
}

func TestEntryMut_InsertRemove(t *testing.T) {
	t.Parallel()

	tree := New[int](2)

	entry := tree.RootEntryMut()
	assert.False(t, entry.Occupied())

	node := entry.Insert(10)
	assert.True(t, entry.Occupied())
	assert.Equal(t, 1, tree.Len())

	node.SetChildValue(0, 11).SetChildValue(1, 12)
	assert.Equal(t, 3, tree.Len())

	removed, ok := entry.Remove()
	require.True(t, ok)
	assert.Equal(t, 10, removed)
	assert.True(t, tree.Empty())
	assert.False(t, entry.Occupied())
}

func TestChildIterator(t *testing.T) {
	t.Parallel()

	tree := sampleTree()
	root, _ := tree.Root()

	assert.Equal(t, []int{2, 7}, drainValues[int](root.Children()))

	// node 7 only has a child in slot 1
	seven, _ := root.Child(1)
	assert.Equal(t, []int{8}, drainValues[int](seven.Children()))

	// node 8 is a leaf
	eight, _ := seven.Child(1)
	assert.Nil(t, drainValues[int](eight.Children()))
}
