package sortedset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/persist_ive_go/ordering"
	"github.com/on-the-ground/persist_ive_go/sortedset"
)

var intCmp = ordering.Natural[int]()

func TestSet_ElemsAscend(t *testing.T) {
	s := sortedset.Of(intCmp, 3, 1, 2, 1)
	assert.Equal(t, []int{1, 2, 3}, s.Elems())
	assert.Equal(t, 3, s.Len())
}

func TestSet_AddRemovePersistence(t *testing.T) {
	s1 := sortedset.Of(intCmp, 1, 2)
	s2 := s1.Add(3)
	s3 := s2.Remove(1)

	assert.Equal(t, []int{1, 2}, s1.Elems())
	assert.Equal(t, []int{1, 2, 3}, s2.Elems())
	assert.Equal(t, []int{2, 3}, s3.Elems())
}

func TestSet_Mem(t *testing.T) {
	s := sortedset.Of(intCmp, 1, 3)
	assert.True(t, s.Mem(1))
	assert.False(t, s.Mem(2))
	assert.False(t, sortedset.New(intCmp).Mem(1))
}

func TestSet_Algebra(t *testing.T) {
	a := sortedset.Of(intCmp, 1, 2, 3)
	b := sortedset.Of(intCmp, 2, 3, 4)

	assert.Equal(t, []int{1, 2, 3, 4}, a.Union(b).Elems())
	assert.Equal(t, []int{2, 3}, a.Inter(b).Elems())
	assert.Equal(t, []int{1}, a.Diff(b).Elems())
	assert.Equal(t, []int{4}, b.Diff(a).Elems())
	assert.Equal(t, []int{1, 4}, a.SymDiff(b).Elems())
}

func TestSet_SubsetAndEqual(t *testing.T) {
	a := sortedset.Of(intCmp, 1, 2)
	b := sortedset.Of(intCmp, 2, 1)
	c := sortedset.Of(intCmp, 1, 2, 3)

	assert.True(t, a.Equal(b))
	assert.True(t, a.Subset(c))
	assert.False(t, c.Subset(a))
	assert.False(t, a.Equal(c))
}

func TestSet_MinMax(t *testing.T) {
	s := sortedset.Of(intCmp, 5, 1, 9)
	lo, ok := s.Min()
	require.True(t, ok)
	assert.Equal(t, 1, lo)
	hi, ok := s.Max()
	require.True(t, ok)
	assert.Equal(t, 9, hi)

	_, ok = sortedset.New(intCmp).Min()
	assert.False(t, ok)
}

func TestSet_Fold(t *testing.T) {
	s := sortedset.Of(intCmp, 3, 1, 2)
	visited := sortedset.Fold(s, []int(nil), func(k int, acc []int) []int {
		return append(acc, k)
	})
	assert.Equal(t, []int{1, 2, 3}, visited)
}

func TestSet_Compare(t *testing.T) {
	empty := sortedset.New(intCmp)
	a := sortedset.Of(intCmp, 1)
	b := sortedset.Of(intCmp, 2)
	ab := sortedset.Of(intCmp, 1, 2)

	assert.Negative(t, empty.Compare(a))
	assert.Negative(t, a.Compare(b))
	assert.Negative(t, a.Compare(ab), "prefix orders first")
	assert.Zero(t, a.Compare(sortedset.Of(intCmp, 1)))
}

func TestSet_SetsAsElements(t *testing.T) {
	outer := sortedset.New(sortedset.Ordering[int]())
	outer = outer.Add(sortedset.Of(intCmp, 2))
	outer = outer.Add(sortedset.Of(intCmp, 1))
	outer = outer.Add(sortedset.Of(intCmp, 2, 1))
	outer = outer.Add(sortedset.Of(intCmp, 1, 2)) // same content as the previous, replaces it

	assert.Equal(t, 3, outer.Len())
	assert.True(t, outer.Mem(sortedset.Of(intCmp, 2, 1)))
}
