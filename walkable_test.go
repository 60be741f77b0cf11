package eytzinger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countDescents walks anything navigable, descending child slot 0
// until it runs out of occupied nodes.
func countDescents(w Walkable[int]) (visited int) {
	w.Walk(func(e Entry[int]) WalkAction {
		if !e.Occupied() {
			return Stop
		}
		visited++
		return Child(0)
	})
	return
}

func TestWalkable(t *testing.T) {
	t.Parallel()

	tree := sampleTree()
	root, ok := tree.Root()
	require.True(t, ok)

	// left spine of the sample tree is 5 -> 2 -> 1
	assert.Equal(t, 3, countDescents(tree))
	assert.Equal(t, 3, countDescents(root))
	assert.Equal(t, 3, countDescents(root.Entry()))

	right, ok := root.Child(1)
	require.True(t, ok)
	assert.Equal(t, 1, countDescents(right))
}
