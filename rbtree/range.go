package rbtree

import "github.com/amp-labs/sortedcol/sortable"

// boundKind classifies one end of a range query.
type boundKind int8

const (
	unbounded boundKind = iota
	included
	excluded
)

// Bound describes one endpoint of a Range query.
type Bound[K sortable.Sortable[K]] struct {
	kind boundKind
	key  K
}

// Included returns a bound that includes key itself.
func Included[K sortable.Sortable[K]](key K) Bound[K] {
	return Bound[K]{kind: included, key: key}
}

// Excluded returns a bound that stops just short of key.
func Excluded[K sortable.Sortable[K]](key K) Bound[K] {
	return Bound[K]{kind: excluded, key: key}
}

// Unbounded returns a bound with no limit on this side.
func Unbounded[K sortable.Sortable[K]]() Bound[K] {
	return Bound[K]{kind: unbounded}
}

// lowerBound returns the leftmost node satisfying lo, or nil if none does.
func lowerBound[K sortable.Sortable[K], V any](root *node[K, V], lo Bound[K]) *node[K, V] {
	if lo.kind == unbounded {
		if root == nil {
			return nil
		}

		return minimum[K, V](root)
	}

	var candidate *node[K, V]

	cur := root

	for cur != nil {
		include := (lo.kind == included && !cur.key.LessThan(lo.key)) ||
			(lo.kind == excluded && lo.key.LessThan(cur.key))

		if include {
			candidate = cur
			cur = cur.left
		} else {
			cur = cur.right
		}
	}

	return candidate
}

// upperBound returns the rightmost node satisfying hi, or nil if none does.
func upperBound[K sortable.Sortable[K], V any](root *node[K, V], hi Bound[K]) *node[K, V] {
	if hi.kind == unbounded {
		if root == nil {
			return nil
		}

		return maximum[K, V](root)
	}

	var candidate *node[K, V]

	cur := root

	for cur != nil {
		include := (hi.kind == included && !hi.key.LessThan(cur.key)) ||
			(hi.kind == excluded && cur.key.LessThan(hi.key))

		if include {
			candidate = cur
			cur = cur.right
		} else {
			cur = cur.left
		}
	}

	return candidate
}

// Range returns an Iter over the entries whose keys fall between lo and hi.
// It reuses the same forward-cursor state machine as Iter; only the
// starting and ending nodes, and the count between them, differ.
func (t *Tree[K, V]) Range(lo, hi Bound[K]) *Iter[K, V] {
	low := lowerBound[K, V](t.root, lo)
	high := upperBound[K, V](t.root, hi)

	empty := &Iter[K, V]{}

	if low == nil || high == nil || high.key.LessThan(low.key) {
		return empty
	}

	count := countBetween[K, V](low, high)

	return &Iter[K, V]{
		fwd:       lowCursor[K, V](low),
		bwd:       highCursor[K, V](high),
		remaining: count,
	}
}

// countBetween counts the nodes from low to high inclusive, walking forward
// with the same advance step Range's resulting Iter will use.
func countBetween[K sortable.Sortable[K], V any](low, high *node[K, V]) int {
	c := lowCursor[K, V](low)
	n := 0

	for {
		yielded := c.advance()
		if yielded == nil {
			return n
		}

		n++

		if yielded == high {
			return n
		}
	}
}
