package maps

import (
	"github.com/amp-labs/sortedcol/sortable"
	"github.com/amp-labs/sortedcol/zero"
)

// Entry is a handle into a single map slot, obtained via Map.Entry, letting
// the caller inspect or fill it. The handle holds only the key, so each
// method looks the key up in the map again when it runs.
type Entry[K sortable.Sortable[K], V any] struct {
	key K
	m   *Map[K, V]
}

// Entry returns a handle for in-place manipulation of key's slot.
func (m *Map[K, V]) Entry(key K) Entry[K, V] {
	return Entry[K, V]{key: key, m: m}
}

// Key returns the entry's key.
func (e Entry[K, V]) Key() K {
	return e.key
}

// OrInsert ensures the entry holds a value, inserting def if it was empty,
// and returns a pointer to the stored value either way.
func (e Entry[K, V]) OrInsert(def V) *V {
	if v, ok := e.m.tree.GetMut(e.key); ok {
		return v
	}

	e.m.tree.Insert(e.key, def)
	v, _ := e.m.tree.GetMut(e.key)

	return v
}

// OrInsertWith is like OrInsert, but only calls def when the entry was
// empty, for when computing the default value is not free.
func (e Entry[K, V]) OrInsertWith(def func() V) *V {
	return e.OrInsertWithKey(func(K) V { return def() })
}

// OrInsertWithKey is like OrInsertWith, but passes the entry's key to def,
// so a key-derived default does not need the key cloned separately.
func (e Entry[K, V]) OrInsertWithKey(def func(K) V) *V {
	if v, ok := e.m.tree.GetMut(e.key); ok {
		return v
	}

	e.m.tree.Insert(e.key, def(e.key))
	v, _ := e.m.tree.GetMut(e.key)

	return v
}

// OrDefault is OrInsertWith using V's zero value as the default.
func (e Entry[K, V]) OrDefault() *V {
	return e.OrInsertWith(zero.Value[V])
}

// AndModify calls f on the entry's value if it is already present, and
// returns the same entry so calls can be chained into an OrInsert.
func (e Entry[K, V]) AndModify(f func(*V)) Entry[K, V] {
	if v, ok := e.m.tree.GetMut(e.key); ok {
		f(v)
	}

	return e
}
