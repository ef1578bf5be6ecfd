package optional_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/persist_ive_go/shared/optional"
)

func TestValue_ZeroIsNone(t *testing.T) {
	var v optional.Value[int]
	assert.False(t, v.IsSome())
	assert.Equal(t, 7, v.OrElse(7))
}

func TestSomeAndNone(t *testing.T) {
	s := optional.Some("x")
	got, ok := s.Get()
	assert.True(t, ok)
	assert.Equal(t, "x", got)

	n := optional.None[string]()
	_, ok = n.Get()
	assert.False(t, ok)
}

func TestFromOk(t *testing.T) {
	assert.True(t, optional.FromOk(1, true).IsSome())
	assert.False(t, optional.FromOk(1, false).IsSome())
}

func TestOr_LeftBiased(t *testing.T) {
	a := optional.Some(1)
	b := optional.Some(2)
	assert.Equal(t, a, a.Or(b))
	assert.Equal(t, b, optional.None[int]().Or(b))
	assert.False(t, optional.None[int]().Or(optional.None[int]()).IsSome())
}

func TestMap(t *testing.T) {
	doubled := optional.Map(optional.Some(3), func(n int) int { return n * 2 })
	got, ok := doubled.Get()
	assert.True(t, ok)
	assert.Equal(t, 6, got)

	assert.False(t, optional.Map(optional.None[int](), func(n int) int { return n }).IsSome())
}
