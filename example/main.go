package main

import (
	"fmt"

	"github.com/aglyzov/eytzinger"
)

func main() {
	tree := eytzinger.New[int](2)

	root := tree.SetRootValue(5)
	{
		left := root.SetChildValue(0, 2)
		left.SetChildValue(0, 1)
		leftRight := left.SetChildValue(1, 4)
		leftRight.SetChildValue(0, 3)
	}
	{
		right := root.SetChildValue(1, 7)
		right.SetChildValue(1, 8)
	}

	fmt.Printf("len=%v max-children=%v\n", tree.Len(), tree.MaxChildren())
	fmt.Print(tree.Dump())

	fmt.Print("pre-order: ")
	for it := tree.DepthFirst(eytzinger.PreOrder); ; {
		n, ok := it.Next()
		if !ok {
			break
		}
		fmt.Printf("%v ", n.Value())
	}
	fmt.Println()

	fmt.Print("post-order: ")
	for it := tree.DepthFirst(eytzinger.PostOrder); ; {
		n, ok := it.Next()
		if !ok {
			break
		}
		fmt.Printf("%v ", n.Value())
	}
	fmt.Println()

	fmt.Print("breadth-first: ")
	for it := tree.BreadthFirst(); ; {
		n, ok := it.Next()
		if !ok {
			break
		}
		fmt.Printf("%v ", n.Value())
	}
	fmt.Println()

	// walk down the left spine, doubling values as we go
	tree.WalkMut(func(e eytzinger.EntryMut[int]) eytzinger.WalkAction {
		node, ok := e.Node()
		if !ok {
			return eytzinger.Stop
		}
		node.SetValue(node.Value() * 2)
		return eytzinger.Child(0)
	})

	fmt.Print("after doubling the left spine:\n")
	fmt.Print(tree.Dump())
}
