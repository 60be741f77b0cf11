package eytzinger

// Entry is a shared view of a slot that may or may not hold a value.
// A vacant entry still knows its slot, so callers can reason about
// where a value would go. Entries are the vocabulary the walk protocol
// navigates over; Node is the occupied-only special case.
type Entry[V any] struct {
	tree     *Tree[V]
	pos      int
	occupied bool
}

// Index returns the slot number of the entry.
func (e Entry[V]) Index() int {
	return e.pos
}

// Occupied reports whether the entry holds a value.
func (e Entry[V]) Occupied() bool {
	return e.occupied
}

// Node returns the entry as a node if it is occupied.
func (e Entry[V]) Node() (Node[V], bool) {
	if !e.occupied {
		return Node[V]{}, false
	}
	return Node[V]{tree: e.tree, pos: e.pos}, true
}

// Value returns the value held by the entry, if it is occupied.
func (e Entry[V]) Value() (V, bool) {
	if !e.occupied {
		var zero V
		return zero, false
	}
	return e.tree.slots.get(e.pos)
}

// Parent returns the parent entry. The second result is false for the
// root slot, which has no parent. A vacant entry's parent is always
// occupied: vacant entries are only ever produced as children of
// occupied nodes.
func (e Entry[V]) Parent() (Entry[V], bool) {
	p, ok := ParentIndex(e.pos, e.tree.k)
	if !ok {
		return Entry[V]{}, false
	}
	return e.tree.entry(p), true
}

// ChildEntry returns child slot c as an entry. It fails when the
// entry itself is vacant: a child slot can only be addressed from a
// concrete occupied node. It panics if c is not in [0, MaxChildren).
func (e Entry[V]) ChildEntry(c int) (Entry[V], bool) {
	if !e.occupied {
		return e, false
	}
	return e.tree.entry(e.tree.childIndex(e.pos, c)), true
}

// Walk runs a handler-driven walk starting at the entry.
func (e Entry[V]) Walk(h WalkHandler[V]) {
	walk(e, h)
}

// EntryMut is an exclusive view of a slot that may or may not hold a
// value. Unlike Entry its occupancy is live: inserting or removing
// through the entry flips it. Navigation consumes the handle the same
// way NodeMut navigation does, and the same session-start ascent rule
// applies.
type EntryMut[V any] struct {
	tree  *Tree[V]
	pos   int
	start int
}

// Index returns the slot number of the entry.
func (e EntryMut[V]) Index() int {
	return e.pos
}

// Occupied reports whether the entry currently holds a value.
func (e EntryMut[V]) Occupied() bool {
	return e.tree.slots.has(e.pos)
}

// Node converts the entry into an exclusive node handle if it is
// occupied. The entry is consumed.
func (e EntryMut[V]) Node() (NodeMut[V], bool) {
	if !e.Occupied() {
		return NodeMut[V]{}, false
	}
	return NodeMut[V]{tree: e.tree, pos: e.pos, start: e.start}, true
}

// Value returns the value held by the entry, if it is occupied.
func (e EntryMut[V]) Value() (V, bool) {
	return e.tree.slots.get(e.pos)
}

// Insert writes a value into the entry's slot and returns an
// exclusive handle on the now-occupied node. Inserting over an
// existing value replaces it without disturbing the subtree.
func (e EntryMut[V]) Insert(v V) NodeMut[V] {
	e.tree.slots.put(e.pos, v)
	return NodeMut[V]{tree: e.tree, pos: e.pos, start: e.start}
}

// Remove removes the entry's value, clearing its whole subtree, and
// returns the removed value if there was one. The entry remains valid
// at its slot, now vacant.
func (e EntryMut[V]) Remove() (V, bool) {
	return e.tree.remove(e.pos)
}

// ToParent consumes the entry and returns one positioned at the
// parent slot. It fails, handing back the original entry unchanged,
// at the slot the exclusive session began at.
func (e EntryMut[V]) ToParent() (EntryMut[V], bool) {
	if e.pos == e.start {
		return e, false
	}
	p, _ := ParentIndex(e.pos, e.tree.k)
	return EntryMut[V]{tree: e.tree, pos: p, start: e.start}, true
}

// ToChildEntry consumes the entry and returns one positioned at child
// slot c. It fails when the entry itself is vacant. It panics if c is
// not in [0, MaxChildren).
func (e EntryMut[V]) ToChildEntry(c int) (EntryMut[V], bool) {
	if !e.Occupied() {
		return e, false
	}
	return EntryMut[V]{tree: e.tree, pos: e.tree.childIndex(e.pos, c), start: e.start}, true
}

// WalkMut runs a handler-driven mutable walk starting at the entry
// and returns the entry restored to the starting slot, regardless of
// how the handler navigated.
func (e EntryMut[V]) WalkMut(h WalkMutHandler[V]) EntryMut[V] {
	return walkMut(e, h)
}
