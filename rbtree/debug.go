package rbtree

import (
	"fmt"

	"github.com/amp-labs/sortedcol/sortable"
	"github.com/xlab/treeprint"
)

// Dump renders the tree's shape — keys and colors — as an ASCII tree, for
// use in debug output and in invariant-test failure messages. It does not
// attempt to depict black-height; pair it with CheckInvariants for that.
func (t *Tree[K, V]) Dump() string {
	root := treeprint.New()

	if t.root == nil {
		root.SetValue("(empty)")

		return root.String()
	}

	root.SetValue(describeNode[K, V](t.root))
	dumpChildren(root, t.root)

	return root.String()
}

func dumpChildren[K sortable.Sortable[K], V any](branch treeprint.Tree, n *node[K, V]) {
	if n.left != nil {
		child := branch.AddBranch(describeNode[K, V](n.left))
		dumpChildren(child, n.left)
	}

	if n.right != nil {
		child := branch.AddBranch(describeNode[K, V](n.right))
		dumpChildren(child, n.right)
	}
}

func describeNode[K sortable.Sortable[K], V any](n *node[K, V]) string {
	c := "black"
	if n.color == red {
		c = "red"
	}

	return fmt.Sprintf("%v (%s)", n.key, c)
}
