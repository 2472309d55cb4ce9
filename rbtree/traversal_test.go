package rbtree_test

import (
	"testing"

	"github.com/amp-labs/sortedcol/rbtree"
	"github.com/amp-labs/sortedcol/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestTree(t *testing.T, keys ...int) *rbtree.Tree[sortable.Int, int] {
	t.Helper()

	tree := rbtree.New[sortable.Int, int]()
	for _, k := range keys {
		tree.Insert(sortable.Int(k), k)
	}

	require.NoError(t, tree.CheckInvariants())

	return tree
}

func drainToSlice(it *rbtree.Iter[sortable.Int, int]) []int {
	var out []int

	for {
		_, v, ok := it.Next()
		if !ok {
			return out
		}

		out = append(out, v)
	}
}

func TestIterAscendingOrder(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, 5, 1, 9, 3, 7, 2, 8, 4, 6)

	got := drainToSlice(tree.Iter())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestIterEmptyTree(t *testing.T) {
	t.Parallel()

	tree := rbtree.New[sortable.Int, int]()

	_, _, ok := tree.Iter().Next()
	assert.False(t, ok)
}

func TestIterDescendingViaNextBack(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, 1, 2, 3, 4, 5)

	it := tree.Iter()

	var got []int

	for {
		_, v, ok := it.NextBack()
		if !ok {
			break
		}

		got = append(got, v)
	}

	assert.Equal(t, []int{5, 4, 3, 2, 1}, got)
}

func TestIterAlternatingDirectionsMeetsInTheMiddleExactlyOnce(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, 1, 2, 3, 4, 5, 6, 7)

	it := tree.Iter()

	var got []int

	for i := 0; i < 7; i++ {
		if i%2 == 0 {
			_, v, ok := it.Next()
			require.True(t, ok)
			got = append(got, v)
		} else {
			_, v, ok := it.NextBack()
			require.True(t, ok)
			got = append(got, v)
		}
	}

	_, _, ok := it.Next()
	assert.False(t, ok, "iterator must be exhausted after yielding every element exactly once")

	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7}, got)
	assert.Len(t, got, 7)
}

func TestIterSingleElementTree(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, 42)

	it := tree.Iter()

	_, v, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 42, v)

	_, _, ok = it.Next()
	assert.False(t, ok)
}
