// Package maps provides Map, a sorted associative container keyed by any
// totally-ordered type, backed by the red-black tree in package rbtree.
package maps

import (
	"github.com/amp-labs/sortedcol/optional"
	"github.com/amp-labs/sortedcol/rbtree"
	"github.com/amp-labs/sortedcol/sortable"
	"github.com/amp-labs/sortedcol/tuple"
)

// Map is a sorted map from K to V. Iteration, First/Last, and Range all
// visit entries in ascending key order. The zero value is not usable; build
// one with New.
type Map[K sortable.Sortable[K], V any] struct {
	tree *rbtree.Tree[K, V]
}

// New returns an empty Map.
func New[K sortable.Sortable[K], V any]() *Map[K, V] {
	return &Map[K, V]{tree: rbtree.New[K, V]()}
}

// Instrument attaches operation counters to the map's underlying tree. See
// rbtree.Stats.
func (m *Map[K, V]) Instrument(stats *rbtree.Stats) {
	m.tree.Instrument(stats)
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// Clear removes every entry from the map.
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// Insert inserts key/value, returning the key and value it replaced, if any.
// The returned key is the one already stored in the map, which is useful
// when K carries information Equals ignores.
func (m *Map[K, V]) Insert(key K, value V) optional.Value[tuple.Tuple2[K, V]] {
	oldKey, oldValue, replaced := m.tree.Insert(key, value)
	if replaced {
		return optional.Some(tuple.NewTuple2(oldKey, oldValue))
	}

	return optional.None[tuple.Tuple2[K, V]]()
}

// Get returns the value stored under key, if present.
func (m *Map[K, V]) Get(key K) optional.Value[V] {
	v, ok := m.tree.Get(key)
	if !ok {
		return optional.None[V]()
	}

	return optional.Some(v)
}

// GetMut returns a pointer to the stored value under key, for in-place
// mutation, if present.
func (m *Map[K, V]) GetMut(key K) (*V, bool) {
	return m.tree.GetMut(key)
}

// GetKeyValue returns the stored key and value for key, if present. The
// returned key is the one already stored in the map, which is useful when K
// carries information Equals ignores.
func (m *Map[K, V]) GetKeyValue(key K) optional.Value[tuple.Tuple2[K, V]] {
	k, v, ok := m.tree.Range(rbtree.Included(key), rbtree.Included(key)).Next()
	if !ok {
		return optional.None[tuple.Tuple2[K, V]]()
	}

	return optional.Some(tuple.NewTuple2(k, v))
}

// Contains reports whether key is present in the map.
func (m *Map[K, V]) Contains(key K) bool {
	return m.tree.Contains(key)
}

// Remove removes key from the map, returning its value, if present.
func (m *Map[K, V]) Remove(key K) optional.Value[V] {
	v, ok := m.tree.Remove(key)
	if !ok {
		return optional.None[V]()
	}

	return optional.Some(v)
}

// RemoveEntry removes key from the map, returning the removed (key, value)
// pair, if present.
func (m *Map[K, V]) RemoveEntry(key K) optional.Value[tuple.Tuple2[K, V]] {
	v, ok := m.tree.Remove(key)
	if !ok {
		return optional.None[tuple.Tuple2[K, V]]()
	}

	return optional.Some(tuple.NewTuple2(key, v))
}

// First returns the entry with the smallest key.
func (m *Map[K, V]) First() optional.Value[tuple.Tuple2[K, V]] {
	k, v, ok := m.tree.First()
	if !ok {
		return optional.None[tuple.Tuple2[K, V]]()
	}

	return optional.Some(tuple.NewTuple2(k, v))
}

// Last returns the entry with the largest key.
func (m *Map[K, V]) Last() optional.Value[tuple.Tuple2[K, V]] {
	k, v, ok := m.tree.Last()
	if !ok {
		return optional.None[tuple.Tuple2[K, V]]()
	}

	return optional.Some(tuple.NewTuple2(k, v))
}

// FirstMut returns a pointer to the smallest key's value, for mutation.
func (m *Map[K, V]) FirstMut() (*V, bool) {
	k, _, ok := m.tree.First()
	if !ok {
		return nil, false
	}

	return m.tree.GetMut(k)
}

// LastMut returns a pointer to the largest key's value, for mutation.
func (m *Map[K, V]) LastMut() (*V, bool) {
	k, _, ok := m.tree.Last()
	if !ok {
		return nil, false
	}

	return m.tree.GetMut(k)
}

// PopFirst removes and returns the entry with the smallest key.
func (m *Map[K, V]) PopFirst() optional.Value[tuple.Tuple2[K, V]] {
	k, v, ok := m.tree.PopFirst()
	if !ok {
		return optional.None[tuple.Tuple2[K, V]]()
	}

	return optional.Some(tuple.NewTuple2(k, v))
}

// PopLast removes and returns the entry with the largest key.
func (m *Map[K, V]) PopLast() optional.Value[tuple.Tuple2[K, V]] {
	k, v, ok := m.tree.PopLast()
	if !ok {
		return optional.None[tuple.Tuple2[K, V]]()
	}

	return optional.Some(tuple.NewTuple2(k, v))
}

// Append moves every entry of other into m, leaving other empty. Keys
// already in m are overwritten.
func (m *Map[K, V]) Append(other *Map[K, V]) {
	if other == m {
		return
	}

	for {
		k, v, ok := other.tree.PopFirst()
		if !ok {
			break
		}

		m.tree.Insert(k, v)
	}
}
