package eytzinger

import "fmt"

// ChildIndex returns the slot of child c under the node at slot parent
// for branching factor k. It panics if c is not in [0, k).
func ChildIndex(parent, c, k int) int {
	if c < 0 || c >= k {
		panic(fmt.Sprintf("eytzinger: child slot %d out of range [0, %d)", c, k))
	}
	return parent*k + c + 1
}

// ParentIndex returns the slot of the parent of the node at slot i for
// branching factor k. The second result is false for the root (i = 0),
// which has no parent.
func ParentIndex(i, k int) (int, bool) {
	if i == 0 {
		return 0, false
	}
	return (i - 1) / k, true
}

// childSlot recovers the child-slot number c such that
// ChildIndex(ParentIndex(i), c, k) == i.
func childSlot(i, k int) int {
	return (i - 1) % k
}
