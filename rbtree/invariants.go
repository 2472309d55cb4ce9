package rbtree

import (
	"fmt"

	"github.com/amp-labs/sortedcol/sortable"
)

// CheckInvariants walks the whole tree and reports the first violation of
// any of the five red-black invariants it finds, or nil if the tree is
// consistent:
//
//   - BST property: every node's key is greater than everything in its left
//     subtree and less than everything in its right subtree.
//   - Back-pointer consistency: n.left.parent == n and n.right.parent == n
//     whenever those children exist.
//   - Root marker: the root's parent is nil, and only the root's parent is
//     nil.
//   - Red-child property: a red node has no red child.
//   - Black-height property: every root-to-nil path passes through the same
//     number of black nodes.
//
// This is a debugging and testing aid, not something the tree calls on its
// own critical path.
func (t *Tree[K, V]) CheckInvariants() error {
	if t.root == nil {
		if t.len != 0 {
			return fmt.Errorf("%w: empty root but len = %d", errInvariant, t.len)
		}

		return nil
	}

	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a non-nil parent", errInvariant)
	}

	if t.root.color != black {
		return fmt.Errorf("%w: root is not black", errInvariant)
	}

	count := 0

	if _, err := checkSubtree[K, V](t.root, nil, nil, &count); err != nil {
		return err
	}

	if count != t.len {
		return fmt.Errorf("%w: counted %d nodes but len = %d", errInvariant, count, t.len)
	}

	return nil
}

//nolint:gochecknoglobals
var errInvariant = fmt.Errorf("rbtree invariant violated")

// checkSubtree validates n's subtree and returns its black-height (the
// number of black nodes on any path from n down to nil, n itself included).
// min and max bound every key in n's subtree, not just n's immediate
// children: a nil bound means unbounded on that side. This catches keys
// that violate the BST property against a distant ancestor rather than
// just their direct parent — e.g. 10 -> left 5 -> right 12, where 12 is a
// valid right child of 5 but still must not exceed 10.
func checkSubtree[K sortable.Sortable[K], V any](n *node[K, V], minKey, maxKey *K, count *int) (int, error) {
	*count++

	if minKey != nil && !(*minKey).LessThan(n.key) {
		return 0, fmt.Errorf("%w: %v is not greater than ancestor bound %v", errInvariant, n.key, *minKey)
	}

	if maxKey != nil && !n.key.LessThan(*maxKey) {
		return 0, fmt.Errorf("%w: %v is not less than ancestor bound %v", errInvariant, n.key, *maxKey)
	}

	if n.left != nil {
		if n.left.parent != n {
			return 0, fmt.Errorf("%w: %v's left child has the wrong parent pointer", errInvariant, n.key)
		}

		if n.color == red && n.left.color == red {
			return 0, fmt.Errorf("%w: red node %v has a red left child", errInvariant, n.key)
		}
	}

	if n.right != nil {
		if n.right.parent != n {
			return 0, fmt.Errorf("%w: %v's right child has the wrong parent pointer", errInvariant, n.key)
		}

		if n.color == red && n.right.color == red {
			return 0, fmt.Errorf("%w: red node %v has a red right child", errInvariant, n.key)
		}
	}

	leftHeight := 0

	if n.left != nil {
		h, err := checkSubtree[K, V](n.left, minKey, &n.key, count)
		if err != nil {
			return 0, err
		}

		leftHeight = h
	}

	rightHeight := 0

	if n.right != nil {
		h, err := checkSubtree[K, V](n.right, &n.key, maxKey, count)
		if err != nil {
			return 0, err
		}

		rightHeight = h
	}

	if leftHeight != rightHeight {
		return 0, fmt.Errorf(
			"%w: %v's subtrees have different black heights (%d vs %d)",
			errInvariant, n.key, leftHeight, rightHeight)
	}

	height := leftHeight
	if n.color == black {
		height++
	}

	return height, nil
}
