// Package set provides Set, a sorted collection of unique elements, backed
// by the red-black tree in package rbtree (by way of package maps).
package set

import (
	"iter"

	"github.com/amp-labs/sortedcol/maps"
	"github.com/amp-labs/sortedcol/rbtree"
	"github.com/amp-labs/sortedcol/sortable"
)

// Set is a sorted set of unique values of type T. Iteration, First/Last, and
// Range all visit elements in ascending order. The zero value is not
// usable; build one with New.
type Set[T sortable.Sortable[T]] struct {
	m *maps.Map[T, struct{}]
}

// New returns an empty Set.
func New[T sortable.Sortable[T]]() *Set[T] {
	return &Set[T]{m: maps.New[T, struct{}]()}
}

// Of returns a new Set containing the given values.
func Of[T sortable.Sortable[T]](values ...T) *Set[T] {
	s := New[T]()
	for _, v := range values {
		s.Add(v)
	}

	return s
}

// Instrument attaches operation counters to the set's underlying tree. See
// rbtree.Stats.
func (s *Set[T]) Instrument(stats *rbtree.Stats) {
	s.m.Instrument(stats)
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return s.m.Len()
}

// IsEmpty reports whether the set holds no elements.
func (s *Set[T]) IsEmpty() bool {
	return s.m.IsEmpty()
}

// Clear removes every element from the set.
func (s *Set[T]) Clear() {
	s.m.Clear()
}

// Add adds value to the set. It reports true if the set did not already
// contain value.
func (s *Set[T]) Add(value T) bool {
	return s.m.Insert(value, struct{}{}).Empty()
}

// Replace adds value to the set, replacing the existing element, if any,
// that is equal to it. Returns the replaced element.
func (s *Set[T]) Replace(value T) (T, bool) {
	old := s.m.GetKeyValue(value)
	if old.NonEmpty() {
		s.m.Remove(value)
	}

	s.m.Insert(value, struct{}{})

	if old.Empty() {
		var zero T

		return zero, false
	}

	return old.GetOrPanic().First(), true
}

// Contains reports whether value is a member of the set.
func (s *Set[T]) Contains(value T) bool {
	return s.m.Contains(value)
}

// Get returns the element in the set equal to value, if any. This is useful
// when T carries information LessThan/Equals ignore.
func (s *Set[T]) Get(value T) (T, bool) {
	kv := s.m.GetKeyValue(value)
	if kv.Empty() {
		var zero T

		return zero, false
	}

	return kv.GetOrPanic().First(), true
}

// Remove removes value from the set. It reports whether the value had been
// present.
func (s *Set[T]) Remove(value T) bool {
	return s.m.Remove(value).NonEmpty()
}

// Take removes and returns the element equal to value, if present.
func (s *Set[T]) Take(value T) (T, bool) {
	kv := s.m.RemoveEntry(value)
	if kv.Empty() {
		var zero T

		return zero, false
	}

	return kv.GetOrPanic().First(), true
}

// First returns the smallest element in the set.
func (s *Set[T]) First() (T, bool) {
	kv := s.m.First()
	if kv.Empty() {
		var zero T

		return zero, false
	}

	return kv.GetOrPanic().First(), true
}

// Last returns the largest element in the set.
func (s *Set[T]) Last() (T, bool) {
	kv := s.m.Last()
	if kv.Empty() {
		var zero T

		return zero, false
	}

	return kv.GetOrPanic().First(), true
}

// PopFirst removes and returns the smallest element in the set.
func (s *Set[T]) PopFirst() (T, bool) {
	kv := s.m.PopFirst()
	if kv.Empty() {
		var zero T

		return zero, false
	}

	return kv.GetOrPanic().First(), true
}

// PopLast removes and returns the largest element in the set.
func (s *Set[T]) PopLast() (T, bool) {
	kv := s.m.PopLast()
	if kv.Empty() {
		var zero T

		return zero, false
	}

	return kv.GetOrPanic().First(), true
}

// Iter ranges over every element in ascending order.
func (s *Set[T]) Iter() iter.Seq[T] {
	return s.m.Keys()
}

// Range ranges over the elements falling between lo and hi, in ascending
// order.
func (s *Set[T]) Range(lo, hi rbtree.Bound[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := range s.m.Range(lo, hi) {
			if !yield(k) {
				return
			}
		}
	}
}

// DrainFilter removes every element for which pred returns true, yielding
// each removed element. See maps.Map.DrainFilter for the early-break and
// panicking-predicate guarantees this inherits.
func (s *Set[T]) DrainFilter(pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := range s.m.DrainFilter(func(k T, _ *struct{}) bool { return pred(k) }) {
			if !yield(k) {
				return
			}
		}
	}
}

// Append adds every element of other to s, leaving other empty.
func (s *Set[T]) Append(other *Set[T]) {
	if other == s {
		return
	}

	s.m.Append(other.m)
}

// Extend adds every value from values to the set.
func (s *Set[T]) Extend(values iter.Seq[T]) {
	for v := range values {
		s.Add(v)
	}
}
