// Package eytzinger implements a generic N-ary tree stored in a flat,
// implicitly-indexed array (an Eytzinger layout - the binary-heap array
// layout generalized to branching factor K).
//
// Layout:
// ------
//
// Child c of the node at slot p lives at slot p*K + c + 1, so no child
// or parent links are stored - both directions are recomputed from the
// slot number alone:
//
//	ChildIndex(p, c, k)  = p*k + c + 1       for 0 <= c < k
//	ParentIndex(i, k)    = (i-1) / k         for i > 0
//
// Slot 0 is the root. For K=2 the first slots map out as:
//
//	                  [0]
//	          ,--------+--------.
//	        [1]                [2]
//	     ,---+---.          ,---+---.
//	   [3]      [4]       [5]      [6]
//
// A slot is either occupied (holds a value) or vacant. A non-root slot
// may only be occupied while its parent is occupied; removing a value
// therefore clears the whole subtree underneath it.
//
// Handles:
// -------
//
//   - Node is a shared, read-only view of an occupied slot. Any number
//     of them may coexist.
//   - NodeMut is an exclusive view. Every navigation consumes the
//     handle and returns a new one; at most one NodeMut-derived handle
//     must be live per tree at a time, and it must not coexist with
//     shared views. A NodeMut cannot ascend above the slot where its
//     exclusive session began.
//   - Entry and EntryMut name a slot that may or may not hold a value;
//     a vacant EntryMut can have a value inserted into it.
//
// Traversal is available as pull iterators (depth-first pre/post order
// and breadth-first) and as a handler-driven walk in which the handler
// decides at every step whether to stop, ascend or descend.
package eytzinger
