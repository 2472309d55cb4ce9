package rbtree_test

import (
	"testing"

	"github.com/amp-labs/sortedcol/rbtree"
	"github.com/amp-labs/sortedcol/sortable"
	"github.com/stretchr/testify/assert"
)

func rangeKeys(it *rbtree.Iter[sortable.Int, int]) []int {
	var out []int

	for {
		k, _, ok := it.Next()
		if !ok {
			return out
		}

		out = append(out, int(k))
	}
}

func TestRangeInclusiveBothEnds(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	it := tree.Range(rbtree.Included(sortable.Int(3)), rbtree.Included(sortable.Int(7)))
	assert.Equal(t, []int{3, 4, 5, 6, 7}, rangeKeys(it))
}

func TestRangeExclusiveBothEnds(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	it := tree.Range(rbtree.Excluded(sortable.Int(3)), rbtree.Excluded(sortable.Int(7)))
	assert.Equal(t, []int{4, 5, 6}, rangeKeys(it))
}

func TestRangeUnboundedLow(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, 1, 2, 3, 4, 5)

	it := tree.Range(rbtree.Unbounded[sortable.Int](), rbtree.Included(sortable.Int(3)))
	assert.Equal(t, []int{1, 2, 3}, rangeKeys(it))
}

func TestRangeUnboundedHigh(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, 1, 2, 3, 4, 5)

	it := tree.Range(rbtree.Included(sortable.Int(3)), rbtree.Unbounded[sortable.Int]())
	assert.Equal(t, []int{3, 4, 5}, rangeKeys(it))
}

func TestRangeEmptyWhenBoundsDontMatchAnything(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, 1, 2, 3)

	it := tree.Range(rbtree.Included(sortable.Int(10)), rbtree.Included(sortable.Int(20)))
	assert.Empty(t, rangeKeys(it))
}

func TestRangeEmptyWhenLowExceedsHigh(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, 1, 2, 3, 4, 5)

	it := tree.Range(rbtree.Included(sortable.Int(4)), rbtree.Included(sortable.Int(2)))
	assert.Empty(t, rangeKeys(it))
}

func TestRangeSingletonInclusive(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, 1, 2, 3, 4, 5)

	it := tree.Range(rbtree.Included(sortable.Int(3)), rbtree.Included(sortable.Int(3)))
	assert.Equal(t, []int{3}, rangeKeys(it))
}

func TestRangeExclusiveSingletonIsEmpty(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, 1, 2, 3, 4, 5)

	it := tree.Range(rbtree.Excluded(sortable.Int(3)), rbtree.Excluded(sortable.Int(3)))
	assert.Empty(t, rangeKeys(it))
}

func TestRangeOnEmptyTree(t *testing.T) {
	t.Parallel()

	tree := rbtree.New[sortable.Int, int]()

	it := tree.Range(rbtree.Unbounded[sortable.Int](), rbtree.Unbounded[sortable.Int]())
	assert.Empty(t, rangeKeys(it))
}
