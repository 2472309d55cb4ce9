package set

import (
	"iter"

	"github.com/amp-labs/sortedcol/sortable"
)

// sizeRatioTippingPoint is the size ratio past which a binary Contains
// lookup into the larger set beats merging two sorted iterators. Chosen to
// match the point past which O(k log n) search overtakes O(n+k) merge.
const sizeRatioTippingPoint = 16

// Difference returns a lazy iterator over the elements in a but not in b, in
// ascending order. Neither set is copied up front: a is walked once, and
// whichever of the merge-stitch or binary-search strategy fits the sets'
// relative sizes is chosen when the returned sequence is first ranged over.
func Difference[T sortable.Sortable[T]](a, b *Set[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if a.Len() <= b.Len()/sizeRatioTippingPoint {
			searchDifference(a, b, yield)
		} else {
			stitchDifference(a, b, yield)
		}
	}
}

// searchDifference is the right strategy when a is much smaller than b: for
// each of a's (few) elements, a single O(log n) Contains lookup into b beats
// paying to walk all of b.
func searchDifference[T sortable.Sortable[T]](a, b *Set[T], yield func(T) bool) {
	for v := range a.Iter() {
		if !b.Contains(v) && !yield(v) {
			return
		}
	}
}

// stitchDifference merges a's and b's ascending iterators in lockstep,
// yielding an a element whenever it sorts strictly before b's current
// element.
func stitchDifference[T sortable.Sortable[T]](a, b *Set[T], yield func(T) bool) {
	next, stop := iter.Pull(a.Iter())
	defer stop()

	otherNext, otherStop := iter.Pull(b.Iter())
	defer otherStop()

	av, aok := next()
	bv, bok := otherNext()

	for aok {
		switch {
		case !bok || av.LessThan(bv):
			if !yield(av) {
				return
			}

			av, aok = next()
		case bv.LessThan(av):
			bv, bok = otherNext()
		default:
			av, aok = next()
			bv, bok = otherNext()
		}
	}
}

// Union returns a lazy iterator over every element present in a or b, in
// ascending order, with duplicates (elements in both) yielded once. Every
// element of both sets appears in the output, so there is no smaller side
// to skip walking; past the size-ratio tipping point the smaller set is
// still cheaper to test with Contains than to keep an iterator live for,
// so it probes instead of merging.
func Union[T sortable.Sortable[T]](a, b *Set[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if a.Len() <= b.Len()/sizeRatioTippingPoint {
			probeUnion(a, b, yield)
		} else if b.Len() <= a.Len()/sizeRatioTippingPoint {
			probeUnion(b, a, yield)
		} else {
			stitchUnion(a, b, yield)
		}
	}
}

// probeUnion is the right strategy when small is much smaller than large:
// probe small's (few) elements against large with Contains to find the
// ones large doesn't already have, then merge that short, already-sorted
// list into large's live iterator in a single linear pass.
func probeUnion[T sortable.Sortable[T]](small, large *Set[T], yield func(T) bool) {
	extras := elementsNotIn(small, large)

	mergeSortedWithSeq(extras, large.Iter(), yield)
}

// elementsNotIn returns, in ascending order, the elements of s that other
// does not contain.
func elementsNotIn[T sortable.Sortable[T]](s, other *Set[T]) []T {
	out := make([]T, 0, s.Len())

	for v := range s.Iter() {
		if !other.Contains(v) {
			out = append(out, v)
		}
	}

	return out
}

// mergeSortedWithSeq merges an ascending slice with an ascending sequence
// known to share no elements with it, yielding the combined ascending
// result.
func mergeSortedWithSeq[T sortable.Sortable[T]](sorted []T, seq iter.Seq[T], yield func(T) bool) {
	next, stop := iter.Pull(seq)
	defer stop()

	i := 0
	v, ok := next()

	for ok && i < len(sorted) {
		if v.LessThan(sorted[i]) {
			if !yield(v) {
				return
			}

			v, ok = next()
		} else {
			if !yield(sorted[i]) {
				return
			}

			i++
		}
	}

	for ok {
		if !yield(v) {
			return
		}

		v, ok = next()
	}

	for i < len(sorted) {
		if !yield(sorted[i]) {
			return
		}

		i++
	}
}

// stitchUnion merges a's and b's ascending iterators in lockstep.
func stitchUnion[T sortable.Sortable[T]](a, b *Set[T], yield func(T) bool) {
	next, stop := iter.Pull(a.Iter())
	defer stop()

	otherNext, otherStop := iter.Pull(b.Iter())
	defer otherStop()

	av, aok := next()
	bv, bok := otherNext()

	for aok && bok {
		switch {
		case av.LessThan(bv):
			if !yield(av) {
				return
			}

			av, aok = next()
		case bv.LessThan(av):
			if !yield(bv) {
				return
			}

			bv, bok = otherNext()
		default:
			if !yield(av) {
				return
			}

			av, aok = next()
			bv, bok = otherNext()
		}
	}

	for aok {
		if !yield(av) {
			return
		}

		av, aok = next()
	}

	for bok {
		if !yield(bv) {
			return
		}

		bv, bok = otherNext()
	}
}

// Intersection returns a lazy iterator over every element present in both a
// and b, in ascending order. Past the size-ratio tipping point the smaller
// set drives a binary-search probe into the larger one; for comparably
// sized sets a joint merge walk avoids paying an O(log n) Contains lookup
// per element.
func Intersection[T sortable.Sortable[T]](a, b *Set[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		small, large := a, b
		if large.Len() < small.Len() {
			small, large = large, small
		}

		if small.Len() <= large.Len()/sizeRatioTippingPoint {
			probeIntersection(small, large, yield)
		} else {
			stitchIntersection(a, b, yield)
		}
	}
}

// probeIntersection walks small once, checking each element against large
// with Contains.
func probeIntersection[T sortable.Sortable[T]](small, large *Set[T], yield func(T) bool) {
	for v := range small.Iter() {
		if large.Contains(v) && !yield(v) {
			return
		}
	}
}

// stitchIntersection merges a's and b's ascending iterators in lockstep,
// yielding only the elements present in both.
func stitchIntersection[T sortable.Sortable[T]](a, b *Set[T], yield func(T) bool) {
	next, stop := iter.Pull(a.Iter())
	defer stop()

	otherNext, otherStop := iter.Pull(b.Iter())
	defer otherStop()

	av, aok := next()
	bv, bok := otherNext()

	for aok && bok {
		switch {
		case av.LessThan(bv):
			av, aok = next()
		case bv.LessThan(av):
			bv, bok = otherNext()
		default:
			if !yield(av) {
				return
			}

			av, aok = next()
			bv, bok = otherNext()
		}
	}
}

// SymmetricDifference returns a lazy iterator over every element present in
// exactly one of a or b, in ascending order. As with Union, every element
// of both sets can appear in the output, so past the size-ratio tipping
// point the smaller set probes the larger instead of merging.
func SymmetricDifference[T sortable.Sortable[T]](a, b *Set[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if a.Len() <= b.Len()/sizeRatioTippingPoint {
			probeSymmetricDifference(a, b, yield)
		} else if b.Len() <= a.Len()/sizeRatioTippingPoint {
			probeSymmetricDifference(b, a, yield)
		} else {
			stitchSymmetricDifference(a, b, yield)
		}
	}
}

// probeSymmetricDifference probes small's (few) elements against large to
// partition them into shared (present in both) and extras (present only in
// small) — O(n log m) total rather than walking all of large with Contains.
// It then filters large's live iterator against the short, already-sorted
// shared slice, and merges what's left with extras.
func probeSymmetricDifference[T sortable.Sortable[T]](small, large *Set[T], yield func(T) bool) {
	shared := make([]T, 0, small.Len())
	extras := make([]T, 0, small.Len())

	for v := range small.Iter() {
		if large.Contains(v) {
			shared = append(shared, v)
		} else {
			extras = append(extras, v)
		}
	}

	mergeSortedWithSeq(extras, filterOutSorted(large.Iter(), shared), yield)
}

// filterOutSorted returns a lazy sequence over seq that skips every element
// also present in the ascending, duplicate-free slice exclude.
func filterOutSorted[T sortable.Sortable[T]](seq iter.Seq[T], exclude []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		i := 0

		for v := range seq {
			for i < len(exclude) && exclude[i].LessThan(v) {
				i++
			}

			if i < len(exclude) && !v.LessThan(exclude[i]) {
				i++

				continue
			}

			if !yield(v) {
				return
			}
		}
	}
}

// stitchSymmetricDifference merges a's and b's ascending iterators in
// lockstep, yielding only the elements present in exactly one.
func stitchSymmetricDifference[T sortable.Sortable[T]](a, b *Set[T], yield func(T) bool) {
	next, stop := iter.Pull(a.Iter())
	defer stop()

	otherNext, otherStop := iter.Pull(b.Iter())
	defer otherStop()

	av, aok := next()
	bv, bok := otherNext()

	for aok && bok {
		switch {
		case av.LessThan(bv):
			if !yield(av) {
				return
			}

			av, aok = next()
		case bv.LessThan(av):
			if !yield(bv) {
				return
			}

			bv, bok = otherNext()
		default:
			av, aok = next()
			bv, bok = otherNext()
		}
	}

	for aok {
		if !yield(av) {
			return
		}

		av, aok = next()
	}

	for bok {
		if !yield(bv) {
			return
		}

		bv, bok = otherNext()
	}
}

// IsSubset reports whether every element of a is also in b.
func IsSubset[T sortable.Sortable[T]](a, b *Set[T]) bool {
	if a.Len() > b.Len() {
		return false
	}

	for v := range a.Iter() {
		if !b.Contains(v) {
			return false
		}
	}

	return true
}

// IsSuperset reports whether every element of b is also in a.
func IsSuperset[T sortable.Sortable[T]](a, b *Set[T]) bool {
	return IsSubset(b, a)
}

// IsDisjoint reports whether a and b share no elements.
func IsDisjoint[T sortable.Sortable[T]](a, b *Set[T]) bool {
	small, large := a, b
	if large.Len() < small.Len() {
		small, large = large, small
	}

	for v := range small.Iter() {
		if large.Contains(v) {
			return false
		}
	}

	return true
}
