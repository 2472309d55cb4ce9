package rbtree

import "github.com/amp-labs/sortedcol/sortable"

// DrainFilter walks every entry of a tree once, removing the ones a
// predicate matches. It detaches the tree's root for its own lifetime:
// nothing else can observe a partially-filtered tree, and a panic anywhere
// in the walk — including inside the predicate — damages, at worst, the
// still-detached subtree rather than the caller's tree.
//
// Go has no destructor to run automatically when a caller abandons a
// DrainFilter without finishing it, so callers that stop calling Next
// before it returns false must call Close (typically via defer) to get the
// documented behavior: every remaining entry is still offered to the
// predicate, any matches among them are still removed, and the owning tree
// is restored, shrunk accordingly. A DrainFilter that is both abandoned and
// never closed leaks its detached subtree: the owning tree is simply left
// permanently empty, which is a surprising but fully consistent state, not
// memory unsafety.
type DrainFilter[K sortable.Sortable[K], V any] struct {
	owner       *Tree[K, V]
	root        *node[K, V]
	originalLen int
	seen        int
	cur         cursor[K, V]
	pred        func(K, *V) bool
	pending     []K
	done        bool
}

// DrainFilter detaches the tree and returns a walker that removes every
// entry for which pred returns true. The tree is empty from this call until
// the DrainFilter is closed (explicitly, or by Next running to completion).
func (t *Tree[K, V]) DrainFilter(pred func(K, *V) bool) *DrainFilter[K, V] {
	root, n := t.detach()

	df := &DrainFilter[K, V]{
		owner:       t,
		root:        root,
		originalLen: n,
		pred:        pred,
	}

	if root != nil {
		df.cur = lowCursor[K, V](minimum[K, V](root))
	}

	return df
}

// Next advances past non-matching entries and returns the next matching
// (key, value) pair, or ok == false once every entry has been visited — at
// which point the owning tree has already been reattached.
func (d *DrainFilter[K, V]) Next() (K, V, bool) {
	for !d.done && d.seen < d.originalLen {
		n := d.cur.advance()
		if n == nil {
			break
		}

		d.seen++

		if d.applyPredicate(n) {
			d.pending = append(d.pending, n.key)

			return n.key, n.value, true
		}
	}

	d.Close()

	var zk K

	var zv V

	return zk, zv, false
}

// applyPredicate invokes the predicate, treating a panic inside it as a
// non-match rather than letting it escape: the entry that panicked is left
// in the map, and the walk continues.
func (d *DrainFilter[K, V]) applyPredicate(n *node[K, V]) (matched bool) {
	defer func() {
		if recover() != nil {
			matched = false
		}
	}()

	return d.pred(n.key, &n.value)
}

// Close finishes the walk — subjecting every entry Next has not yet
// reached to the predicate — applies every pending removal to the
// still-detached root, and reattaches the (possibly shrunk) result to the
// owning tree. Calling Close more than once, or after Next has already run
// to completion, is a no-op.
func (d *DrainFilter[K, V]) Close() {
	if d.done {
		return
	}

	d.done = true

	for d.seen < d.originalLen {
		n := d.cur.advance()
		if n == nil {
			break
		}

		d.seen++

		if d.applyPredicate(n) {
			d.pending = append(d.pending, n.key)
		}
	}

	shrink := &Tree[K, V]{root: d.root, len: d.originalLen, stats: d.owner.stats}

	for _, k := range d.pending {
		shrink.Remove(k)
	}

	d.owner.reattach(shrink.root, shrink.len)
}
