package eytzinger

// Node is a shared, read-only view of an occupied slot. Any number of
// Node values may coexist over the same tree; none of them may be used
// to mutate it.
type Node[V any] struct {
	tree *Tree[V]
	pos  int
}

// Index returns the slot number of the node.
func (n Node[V]) Index() int {
	return n.pos
}

// Value returns the value held by the node.
func (n Node[V]) Value() V {
	v, _ := n.tree.slots.get(n.pos)
	return v
}

// Parent returns the parent node. The second result is false for the
// root, which has no parent.
func (n Node[V]) Parent() (Node[V], bool) {
	p, ok := ParentIndex(n.pos, n.tree.k)
	if !ok {
		return Node[V]{}, false
	}
	return n.tree.node(p)
}

// Child returns the node in child slot c, if that slot is occupied.
// It panics if c is not in [0, MaxChildren).
func (n Node[V]) Child(c int) (Node[V], bool) {
	return n.tree.node(n.tree.childIndex(n.pos, c))
}

// ChildEntry returns child slot c as an entry, occupied or vacant.
// It panics if c is not in [0, MaxChildren).
func (n Node[V]) ChildEntry(c int) Entry[V] {
	return n.tree.entry(n.tree.childIndex(n.pos, c))
}

// Entry returns the node as an occupied entry.
func (n Node[V]) Entry() Entry[V] {
	return Entry[V]{tree: n.tree, pos: n.pos, occupied: true}
}

// Children returns an iterator over the occupied children of the node
// in increasing child-slot order.
func (n Node[V]) Children() *ChildIterator[V] {
	return &ChildIterator[V]{parent: n}
}

// Walk runs a handler-driven walk starting at the node.
func (n Node[V]) Walk(h WalkHandler[V]) {
	n.Entry().Walk(h)
}

// ChildIterator yields the occupied children of a single node,
// skipping vacant child slots.
type ChildIterator[V any] struct {
	parent Node[V]
	slot   int
}

// Next returns the next occupied child, false when no children remain.
func (it *ChildIterator[V]) Next() (Node[V], bool) {
	t := it.parent.tree
	for it.slot < t.k {
		c := it.slot
		it.slot++
		if child, ok := t.node(t.childIndex(it.parent.pos, c)); ok {
			return child, true
		}
	}
	return Node[V]{}, false
}
