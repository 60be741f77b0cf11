package eytzinger

// NodeMut is an exclusive view of an occupied slot. Navigation takes
// the handle by value and returns a new one positioned at the target;
// the old handle is consumed and must not be used again. At most one
// live chain of NodeMut-derived handles may exist per tree, and it
// must not coexist with shared views.
//
// A NodeMut remembers the slot its exclusive session began at and
// refuses to ascend above it: the caller was only loaned authority
// over that subtree.
type NodeMut[V any] struct {
	tree  *Tree[V]
	pos   int
	start int
}

// Index returns the slot number of the node.
func (n NodeMut[V]) Index() int {
	return n.pos
}

// Value returns the value held by the node.
func (n NodeMut[V]) Value() V {
	v, _ := n.tree.slots.get(n.pos)
	return v
}

// SetValue replaces the value held by the node and returns the
// previous value. The rest of the tree is untouched.
func (n NodeMut[V]) SetValue(v V) V {
	prev := *n.tree.slots.ref(n.pos)
	*n.tree.slots.ref(n.pos) = v
	return prev
}

// Node converts the handle into a shared view. The exclusive handle
// is consumed.
func (n NodeMut[V]) Node() Node[V] {
	return Node[V]{tree: n.tree, pos: n.pos}
}

// Entry converts the handle into an occupied mutable entry.
func (n NodeMut[V]) Entry() EntryMut[V] {
	return EntryMut[V]{tree: n.tree, pos: n.pos, start: n.start}
}

// ToParent consumes the handle and returns one positioned at the
// parent. It fails, handing back the original handle unchanged, when
// the node is the slot the exclusive session began at - ascending
// above the session's starting slot is not allowed even if a real
// parent exists.
func (n NodeMut[V]) ToParent() (NodeMut[V], bool) {
	if n.pos == n.start {
		return n, false
	}
	p, _ := ParentIndex(n.pos, n.tree.k)
	return NodeMut[V]{tree: n.tree, pos: p, start: n.start}, true
}

// ToChild consumes the handle and returns one positioned at child
// slot c. It fails, handing back the original handle unchanged, when
// that slot is vacant. It panics if c is not in [0, MaxChildren).
func (n NodeMut[V]) ToChild(c int) (NodeMut[V], bool) {
	i := n.tree.childIndex(n.pos, c)
	if !n.tree.slots.has(i) {
		return n, false
	}
	return NodeMut[V]{tree: n.tree, pos: i, start: n.start}, true
}

// ToChildEntry consumes the handle and returns child slot c as a
// mutable entry, occupied or vacant. It panics if c is not in
// [0, MaxChildren).
func (n NodeMut[V]) ToChildEntry(c int) EntryMut[V] {
	return EntryMut[V]{tree: n.tree, pos: n.tree.childIndex(n.pos, c), start: n.start}
}

// SetChildValue writes a value into child slot c and returns a handle
// positioned at that child. The parent handle is consumed; the child
// handle can ascend back to it. It panics if c is not in
// [0, MaxChildren).
func (n NodeMut[V]) SetChildValue(c int, v V) NodeMut[V] {
	i := n.tree.childIndex(n.pos, c)
	n.tree.slots.put(i, v)
	return NodeMut[V]{tree: n.tree, pos: i, start: n.start}
}

// RemoveChild removes the value in child slot c, clearing that child's
// whole subtree, and returns the removed value if there was one. The
// handle remains valid at its own slot. It panics if c is not in
// [0, MaxChildren).
func (n NodeMut[V]) RemoveChild(c int) (V, bool) {
	return n.tree.remove(n.tree.childIndex(n.pos, c))
}

// Walk runs a read-only handler-driven walk starting at the node.
func (n NodeMut[V]) Walk(h WalkHandler[V]) {
	n.Node().Walk(h)
}

// WalkMut runs a handler-driven mutable walk starting at the node and
// returns the handle restored to the starting slot, regardless of how
// the handler navigated.
func (n NodeMut[V]) WalkMut(h WalkMutHandler[V]) NodeMut[V] {
	e := n.Entry().WalkMut(h)
	return NodeMut[V]{tree: e.tree, pos: e.pos, start: e.start}
}
