package eytzinger

// sampleTree builds the K=2 reference tree used across the tests:
//
//	        5
//	    2       7
//	  1   4   .   8
//	 . . 3 . . . . .
func sampleTree() *Tree[int] {
	tree := New[int](2)

	root := tree.SetRootValue(5)
	{
		left := root.SetChildValue(0, 2)
		left.SetChildValue(0, 1)
		leftRight := left.SetChildValue(1, 4)
		leftRight.SetChildValue(0, 3)
	}
	{
		right := root.SetChildValue(1, 7)
		right.SetChildValue(1, 8)
	}

	return tree
}

type nodeIter[V any] interface {
	Next() (Node[V], bool)
}

func drainValues[V any](it nodeIter[V]) (vals []V) {
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		vals = append(vals, n.Value())
	}
	return
}

func drainIndices[V any](it nodeIter[V]) (idx []int) {
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		idx = append(idx, n.Index())
	}
	return
}

// pathTo returns the child slots leading from the root to pos.
func pathTo(pos, k int) (path []int) {
	for pos != 0 {
		path = append(path, childSlot(pos, k))
		pos, _ = ParentIndex(pos, k)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return
}
