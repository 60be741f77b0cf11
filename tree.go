package eytzinger

// Tree is a generic N-ary tree stored in a flat array. The branching
// factor is fixed at construction; shape is entirely caller-driven.
//
// Any number of shared views (Node, Entry, the iterators) may coexist
// over a Tree, but none of them may coexist with an exclusive view
// (NodeMut, EntryMut) over the same Tree.
type Tree[V any] struct {
	slots slots[V]
	k     int
}

// New creates an empty tree with the given branching factor.
// It panics if maxChildren is less than 1: a tree that can never hold
// a child is considered a construction error, not a degenerate shape.
func New[V any](maxChildren int) *Tree[V] {
	if maxChildren < 1 {
		panic("eytzinger: max children per node must be at least 1")
	}
	return &Tree[V]{
		slots: newSlots[V](),
		k:     maxChildren,
	}
}

// MaxChildren returns the branching factor.
func (t *Tree[V]) MaxChildren() int {
	return t.k
}

// Len returns the number of occupied nodes.
func (t *Tree[V]) Len() int {
	return t.slots.count()
}

// Empty reports whether the tree holds no nodes.
func (t *Tree[V]) Empty() bool {
	return t.Len() == 0
}

// Clear removes all nodes and truncates the backing array back to a
// single vacant root slot. This is the only operation that shrinks the
// array; individual removals only mark slots vacant.
func (t *Tree[V]) Clear() {
	t.slots.reset()
}

// Root returns the root node, if there is one.
// The root value may be set with SetRootValue.
func (t *Tree[V]) Root() (Node[V], bool) {
	return t.node(0)
}

// RootMut returns an exclusive handle on the root node, if there is
// one. The returned handle cannot ascend: its session starts at the
// root.
func (t *Tree[V]) RootMut() (NodeMut[V], bool) {
	if !t.slots.has(0) {
		return NodeMut[V]{}, false
	}
	return NodeMut[V]{tree: t, pos: 0}, true
}

// RootEntry returns the root slot as an entry, occupied or vacant.
func (t *Tree[V]) RootEntry() Entry[V] {
	return t.entry(0)
}

// RootEntryMut returns the root slot as a mutable entry, occupied or
// vacant. Inserting into it on an empty tree sets the root value.
func (t *Tree[V]) RootEntryMut() EntryMut[V] {
	return EntryMut[V]{tree: t, pos: 0}
}

// SetRootValue writes the root value and returns an exclusive handle
// on the root. Overwriting an existing root value does not disturb the
// rest of the tree.
func (t *Tree[V]) SetRootValue(v V) NodeMut[V] {
	t.slots.put(0, v)
	return NodeMut[V]{tree: t, pos: 0}
}

// RemoveRoot removes the root value, clearing the entire tree, and
// returns the removed value if there was one.
func (t *Tree[V]) RemoveRoot() (V, bool) {
	return t.remove(0)
}

// DepthFirst returns a depth-first iterator over all nodes in the
// given order.
func (t *Tree[V]) DepthFirst(order DepthFirstOrder) *DepthFirstIterator[V] {
	return newDepthFirst(t, 0, order)
}

// BreadthFirst returns a breadth-first iterator over all nodes.
func (t *Tree[V]) BreadthFirst() *BreadthFirstIterator[V] {
	return newBreadthFirst(t, 0)
}

// Walk runs a handler-driven walk starting at the root entry.
func (t *Tree[V]) Walk(h WalkHandler[V]) {
	t.RootEntry().Walk(h)
}

// WalkMut runs a handler-driven mutable walk starting at the root
// entry. Returns itself.
func (t *Tree[V]) WalkMut(h WalkMutHandler[V]) *Tree[V] {
	t.RootEntryMut().WalkMut(h)
	return t
}

func (t *Tree[V]) childIndex(parent, c int) int {
	return ChildIndex(parent, c, t.k)
}

func (t *Tree[V]) node(i int) (Node[V], bool) {
	if !t.slots.has(i) {
		return Node[V]{}, false
	}
	return Node[V]{tree: t, pos: i}, true
}

func (t *Tree[V]) entry(i int) Entry[V] {
	return Entry[V]{tree: t, pos: i, occupied: t.slots.has(i)}
}

// remove vacates slot i together with its whole occupied subtree, so
// that no occupied slot is ever left hanging under a vacant one.
// Returns the value removed from slot i, if any.
func (t *Tree[V]) remove(i int) (V, bool) {
	prev, ok := t.slots.get(i)
	if !ok {
		return prev, false
	}

	// collect the subtree post-order before vacating anything: the
	// iterator prunes at vacant slots and must still see an intact
	// structure while it runs
	var doomed []int
	it := newDepthFirst(t, i, PostOrder)
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		doomed = append(doomed, n.pos)
	}

	for _, pos := range doomed {
		t.slots.unset(pos)
	}
	return prev, true
}
