package eytzinger

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump renders the occupied structure of the tree as indented text,
// one line per node, children labelled with their child slot.
func (t *Tree[V]) Dump() string {
	root, ok := t.Root()
	if !ok {
		return treeprint.NewWithRoot("(empty)").String()
	}
	tp := treeprint.NewWithRoot(fmt.Sprintf("%v", root.Value()))
	dumpChildren(root, tp)
	return tp.String()
}

func dumpChildren[V any](n Node[V], tp treeprint.Tree) {
	it := n.Children()
	for child, ok := it.Next(); ok; child, ok = it.Next() {
		label := fmt.Sprintf("[%d] %v", childSlot(child.pos, n.tree.k), child.Value())
		if hasChildren(child) {
			dumpChildren(child, tp.AddBranch(label))
		} else {
			tp.AddNode(label)
		}
	}
}

func hasChildren[V any](n Node[V]) bool {
	_, ok := n.Children().Next()
	return ok
}
