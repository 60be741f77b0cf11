package eytzinger

// DepthFirstOrder selects when a node is yielded relative to its
// children.
type DepthFirstOrder int

const (
	// PreOrder yields a node before any of its children.
	PreOrder DepthFirstOrder = iota
	// PostOrder yields a node after all of its children.
	PostOrder
)

// DepthFirstIterator is a single-pass depth-first iterator over the
// occupied nodes of a tree. Children are visited in increasing
// child-slot order, each child's whole subtree before the next
// sibling.
type DepthFirstIterator[V any] struct {
	tree  *Tree[V]
	order DepthFirstOrder
	stack []dfsFrame
}

type dfsFrame struct {
	pos      int
	expanded bool
}

func newDepthFirst[V any](t *Tree[V], start int, order DepthFirstOrder) *DepthFirstIterator[V] {
	it := &DepthFirstIterator[V]{tree: t, order: order}
	if t.slots.has(start) {
		it.stack = append(it.stack, dfsFrame{pos: start})
	}
	return it
}

// Next returns the next node, false when the iteration is done.
func (it *DepthFirstIterator[V]) Next() (Node[V], bool) {
	for len(it.stack) > 0 {
		top := len(it.stack) - 1
		fr := it.stack[top]
		it.stack = it.stack[:top]

		if it.order == PreOrder {
			it.pushChildren(fr.pos)
			return Node[V]{tree: it.tree, pos: fr.pos}, true
		}

		if fr.expanded {
			return Node[V]{tree: it.tree, pos: fr.pos}, true
		}
		it.stack = append(it.stack, dfsFrame{pos: fr.pos, expanded: true})
		it.pushChildren(fr.pos)
	}
	return Node[V]{}, false
}

// pushChildren stacks the occupied children of pos in reverse slot
// order so the lowest slot pops first. Vacant slots are pruned: no
// occupied node can hang below one.
func (it *DepthFirstIterator[V]) pushChildren(pos int) {
	t := it.tree
	for c := t.k - 1; c >= 0; c-- {
		if i := t.childIndex(pos, c); t.slots.has(i) {
			it.stack = append(it.stack, dfsFrame{pos: i})
		}
	}
}
