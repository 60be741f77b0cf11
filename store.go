package eytzinger

import "github.com/hideo55/go-popcount"

// slots is the flat backing store: a growable value array plus an
// occupancy bitmap. The bitmap is the source of truth for which slots
// hold a value; vacant slots keep the zero value of V. The occupied
// count is derived from the bitmap with popcount, so it can never
// drift from the actual occupancy.
type slots[V any] struct {
	vals []V
	bits []uint64
}

func newSlots[V any]() slots[V] {
	return slots[V]{
		vals: make([]V, 1),
		bits: make([]uint64, 1),
	}
}

// size is the number of addressable slots.
func (s *slots[V]) size() int {
	return len(s.vals)
}

func (s *slots[V]) has(i int) bool {
	if i < 0 || i >= len(s.vals) {
		return false
	}
	return s.bits[i>>6]&(1<<(uint(i)&63)) != 0
}

func (s *slots[V]) get(i int) (V, bool) {
	if !s.has(i) {
		var zero V
		return zero, false
	}
	return s.vals[i], true
}

func (s *slots[V]) ref(i int) *V {
	return &s.vals[i]
}

// grow extends the store with vacant slots until slot i is addressable.
func (s *slots[V]) grow(i int) {
	for len(s.vals) <= i {
		var zero V
		s.vals = append(s.vals, zero)
	}
	for len(s.bits)<<6 < len(s.vals) {
		s.bits = append(s.bits, 0)
	}
}

// put writes a value into slot i, growing the store as needed, and
// reports whether the slot was occupied before.
func (s *slots[V]) put(i int, v V) bool {
	s.grow(i)
	prev := s.has(i)
	s.vals[i] = v
	s.bits[i>>6] |= 1 << (uint(i) & 63)
	return prev
}

// unset vacates slot i and returns the previous value, if any. It is
// idempotent: unsetting a vacant slot reports false and changes
// nothing.
func (s *slots[V]) unset(i int) (V, bool) {
	var zero V
	if !s.has(i) {
		return zero, false
	}
	prev := s.vals[i]
	s.vals[i] = zero
	s.bits[i>>6] &^= 1 << (uint(i) & 63)
	return prev, true
}

// count is the number of occupied slots.
func (s *slots[V]) count() int {
	return int(popcount.CountSlice(s.bits))
}

// reset truncates the store back to a single vacant root slot.
func (s *slots[V]) reset() {
	var zero V
	s.vals = s.vals[:1]
	s.vals[0] = zero
	s.bits = s.bits[:1]
	s.bits[0] = 0
}
