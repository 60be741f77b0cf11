package eytzinger

// BreadthFirstIterator is a single-pass level-order iterator over the
// occupied nodes of a tree: all nodes of one depth are yielded before
// any node of the next, siblings in increasing child-slot order.
type BreadthFirstIterator[V any] struct {
	tree  *Tree[V]
	queue []int
}

func newBreadthFirst[V any](t *Tree[V], start int) *BreadthFirstIterator[V] {
	it := &BreadthFirstIterator[V]{tree: t}
	if t.slots.has(start) {
		it.queue = append(it.queue, start)
	}
	return it
}

// Next returns the next node, false when the iteration is done.
func (it *BreadthFirstIterator[V]) Next() (Node[V], bool) {
	if len(it.queue) == 0 {
		return Node[V]{}, false
	}
	pos := it.queue[0]
	it.queue = it.queue[1:]

	t := it.tree
	for c := 0; c < t.k; c++ {
		if i := t.childIndex(pos, c); t.slots.has(i) {
			it.queue = append(it.queue, i)
		}
	}
	return Node[V]{tree: t, pos: pos}, true
}
