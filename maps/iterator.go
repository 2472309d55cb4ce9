package maps

import (
	"iter"

	"github.com/amp-labs/sortedcol/rbtree"
	"github.com/amp-labs/sortedcol/sortable"
)

// Iter ranges over every entry in ascending key order.
func (m *Map[K, V]) Iter() iter.Seq2[K, V] {
	return seqFromRBIter(m.tree.Iter())
}

// IterMut ranges over every entry in ascending key order, yielding a
// pointer to each value so it can be mutated in place.
func (m *Map[K, V]) IterMut() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		it := m.tree.Iter()

		for {
			k, v, ok := it.NextMut()
			if !ok {
				return
			}

			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys ranges over every key in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.Iter() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values ranges over every value, in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.Iter() {
			if !yield(v) {
				return
			}
		}
	}
}

// ValuesMut ranges over a pointer to every value, in ascending key order.
func (m *Map[K, V]) ValuesMut() iter.Seq[*V] {
	return func(yield func(*V) bool) {
		for _, v := range m.IterMut() {
			if !yield(v) {
				return
			}
		}
	}
}

// Range ranges over the entries whose keys fall between lo and hi, in
// ascending order.
func (m *Map[K, V]) Range(lo, hi rbtree.Bound[K]) iter.Seq2[K, V] {
	return seqFromRBIter(m.tree.Range(lo, hi))
}

// RangeMut ranges over the entries whose keys fall between lo and hi,
// yielding a pointer to each value so it can be mutated in place.
func (m *Map[K, V]) RangeMut(lo, hi rbtree.Bound[K]) iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		it := m.tree.Range(lo, hi)

		for {
			k, v, ok := it.NextMut()
			if !ok {
				return
			}

			if !yield(k, v) {
				return
			}
		}
	}
}

// DrainFilter removes every entry for which pred returns true, yielding
// each removed (key, value) pair. Ranging over the result to completion is
// the common case; if the caller's range loop breaks early, every entry
// DrainFilter has not yet reached is still subjected to pred and any
// matches among them are still removed — see rbtree.DrainFilter.
func (m *Map[K, V]) DrainFilter(pred func(K, *V) bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		df := m.tree.DrainFilter(pred)
		defer df.Close()

		for {
			k, v, ok := df.Next()
			if !ok {
				return
			}

			if !yield(k, v) {
				return
			}
		}
	}
}

func seqFromRBIter[K sortable.Sortable[K], V any](it *rbtree.Iter[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for {
			k, v, ok := it.Next()
			if !ok {
				return
			}

			if !yield(k, v) {
				return
			}
		}
	}
}
