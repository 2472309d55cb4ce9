package rbtree

import "github.com/amp-labs/sortedcol/sortable"

// rotate promotes target's pivotSide child to target's former position,
// with target demoted to that pivot's opposite-side child. A single
// generalized rotation replaces the usual pair of mirror-image
// rotateLeft/rotateRight functions found in most textbook implementations:
// callers pass whichever side actually holds the child they want promoted.
func rotate[K sortable.Sortable[K], V any](t *Tree[K, V], target *node[K, V], pivotSide side) *node[K, V] {
	pivot := target.child(pivotSide)
	if pivot == nil {
		return target
	}

	if t.stats != nil {
		t.stats.recordRotation()
	}

	beMoved := pivot.child(opposite(pivotSide))
	target.setChild(pivotSide, beMoved)

	if beMoved != nil {
		beMoved.parent = target
	}

	pivot.parent = target.parent

	switch {
	case target.parent == nil:
		t.root = pivot
	case target.parent.left == target:
		target.parent.left = pivot
	default:
		target.parent.right = pivot
	}

	pivot.setChild(opposite(pivotSide), target)
	target.parent = pivot

	return pivot
}
