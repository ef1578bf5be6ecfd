package sortedmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/persist_ive_go/sortedmap"
	"github.com/on-the-ground/persist_ive_go/shared/optional"
)

func TestMerge_LeftBiasedUnionScenario(t *testing.T) {
	m0 := sortedmap.New[int, string](intCmp)
	m1 := m0.Add(2, "b").Add(1, "a").Add(3, "c")
	mB := m0.Add(2, "B").Add(4, "d")

	union := sortedmap.Merge(func(a, b optional.Value[string]) optional.Value[string] {
		return a.Or(b)
	}, m1, mB)

	assert.Equal(t, []sortedmap.Entry[int, string]{
		{Key: 1, Value: "a"},
		{Key: 2, Value: "b"},
		{Key: 3, Value: "c"},
		{Key: 4, Value: "d"},
	}, union.Entries())
	require.NoError(t, union.Validate())
}

func TestMerge_IntersectionScenario(t *testing.T) {
	m1 := sortedmap.New[int, string](intCmp).Add(1, "a").Add(2, "b").Add(3, "c")
	mB := sortedmap.New[int, string](intCmp).Add(2, "B").Add(4, "d")

	inter := sortedmap.Merge(func(a, b optional.Value[string]) optional.Value[string] {
		if a.IsSome() && b.IsSome() {
			return a
		}
		return optional.None[string]()
	}, m1, mB)

	assert.Equal(t, []sortedmap.Entry[int, string]{
		{Key: 2, Value: "b"},
	}, inter.Entries())
}

func TestUnionInterDiff(t *testing.T) {
	a := sortedmap.New[int, string](intCmp).Add(1, "a").Add(2, "b")
	b := sortedmap.New[int, string](intCmp).Add(2, "B").Add(3, "C")

	union := sortedmap.Union(a, b)
	assert.Equal(t, 3, union.Len())
	v, _ := union.Find(2)
	assert.Equal(t, "b", v)

	inter := sortedmap.Inter(a, b)
	require.Equal(t, 1, inter.Len())
	v, _ = inter.Find(2)
	assert.Equal(t, "b", v)

	diff := sortedmap.Diff(a, b)
	require.Equal(t, 1, diff.Len())
	assert.True(t, diff.Mem(1))
	assert.False(t, diff.Mem(2))
}

func TestCombine_PairsDifferentValueTypes(t *testing.T) {
	names := sortedmap.New[int, string](intCmp).Add(1, "one").Add(2, "two")
	squares := sortedmap.New[int, int](intCmp).Add(2, 4).Add(3, 9)

	paired := sortedmap.Combine(names, squares)
	require.Equal(t, 3, paired.Len())
	require.NoError(t, paired.Validate())

	p, ok := paired.Find(2)
	require.True(t, ok)
	name, _ := p.Left.Get()
	square, _ := p.Right.Get()
	assert.Equal(t, "two", name)
	assert.Equal(t, 4, square)

	p, _ = paired.Find(1)
	assert.True(t, p.Left.IsSome())
	assert.False(t, p.Right.IsSome())

	p, _ = paired.Find(3)
	assert.False(t, p.Left.IsSome())
	assert.True(t, p.Right.IsSome())
}

func TestMerge_ChangesValueType(t *testing.T) {
	words := sortedmap.New[int, string](intCmp).Add(1, "a").Add(2, "bb")
	counts := sortedmap.New[int, int](intCmp).Add(2, 10)

	merged := sortedmap.Merge(func(w optional.Value[string], c optional.Value[int]) optional.Value[float64] {
		if s, ok := w.Get(); ok {
			return optional.Some(float64(len(s) + c.OrElse(0)))
		}
		return optional.None[float64]()
	}, words, counts)

	require.Equal(t, 2, merged.Len())
	v, _ := merged.Find(2)
	assert.Equal(t, 12.0, v)
}

func TestMerge_WithEmptyMaps(t *testing.T) {
	empty := sortedmap.New[int, string](intCmp)
	a := empty.Add(1, "a")

	assert.Equal(t, a.Entries(), sortedmap.Union(a, empty).Entries())
	assert.Equal(t, a.Entries(), sortedmap.Union(empty, a).Entries())
	assert.True(t, sortedmap.Inter(a, empty).IsEmpty())
	assert.True(t, sortedmap.Diff(empty, a).IsEmpty())
}
