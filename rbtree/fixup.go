package rbtree

import "github.com/amp-labs/sortedcol/sortable"

// insertFixup restores the red-black invariants after z has been attached
// to the tree as a red leaf. It walks up towards the root, recoloring and
// rotating as needed, and finishes by forcing the root black.
func insertFixup[K sortable.Sortable[K], V any](t *Tree[K, V], z *node[K, V]) {
	for z.parent != nil && z.parent.color == red {
		parent := z.parent
		grandparent := parent.parent

		parentSide, ok := parent.indexOnParent()
		if !ok {
			break // parent is root, and root is never red; defensive only
		}

		uncle := grandparent.child(opposite(parentSide))

		if isRed[K, V](uncle) {
			parent.color = black
			uncle.color = black
			grandparent.color = red
			z = grandparent

			continue
		}

		if zSide, _ := z.indexOnParent(); zSide != parentSide {
			rotate(t, parent, zSide)
			z = parent
			parent = z.parent
		}

		parent.color = black
		grandparent.color = red
		rotate(t, grandparent, parentSide)

		break
	}

	t.root.color = black
}

// deleteFixup restores the red-black invariants before n, a black node with
// no children other than possibly being the tree's single remaining node,
// is unlinked from its parent. n is still attached to the tree when this is
// called; the caller detaches it only after this returns. Sibling, close
// nephew and distant nephew are recomputed fresh at the top of every loop
// iteration so a rotation earlier in the same case never leaves a stale
// reference behind.
func deleteFixup[K sortable.Sortable[K], V any](t *Tree[K, V], n *node[K, V]) {
	for {
		s, ok := n.indexOnParent()
		if !ok {
			return // n is the root; nothing above it to fix
		}

		parent := n.parent
		sibling := parent.child(opposite(s))
		closeNephew := sibling.child(s)
		distantNephew := sibling.child(opposite(s))

		switch {
		case isRed[K, V](sibling):
			rotate(t, parent, opposite(s))
			parent.color = red
			sibling.color = black

			continue

		case isRed[K, V](distantNephew):
			rotate(t, parent, opposite(s))
			sibling.color = parent.color
			parent.color = black
			distantNephew.color = black

			return

		case isRed[K, V](closeNephew):
			rotate(t, sibling, s)
			sibling.color = red
			closeNephew.color = black

			continue

		case parent.color == red:
			sibling.color = red
			parent.color = black

			return

		default:
			sibling.color = red
			n = parent

			if n.parent == nil {
				return
			}
		}
	}
}
