// Package sortedset provides a persistent sorted set: the degenerate form
// of sortedmap.Map with unit values. Every guarantee of sortedmap
// (canonical order, full persistence, linear merge-joins) carries over;
// the set type only renames the operations into set vocabulary.
package sortedset

import (
	"iter"

	"github.com/on-the-ground/persist_ive_go/ordering"
	"github.com/on-the-ground/persist_ive_go/sortedmap"
	"github.com/on-the-ground/persist_ive_go/shared/optional"
)

// Set is a persistent sorted set of K. The zero Set is not usable;
// construct with New or Of. All methods leave their receiver unchanged.
type Set[K any] struct {
	m sortedmap.Map[K, struct{}]
}

// New returns the empty set over the given element ordering.
func New[K any](cmp ordering.Func[K]) Set[K] {
	return Set[K]{m: sortedmap.New[K, struct{}](cmp)}
}

// Of builds a set from the given elements.
func Of[K any](cmp ordering.Func[K], elems ...K) Set[K] {
	s := New(cmp)
	for _, e := range elems {
		s = s.Add(e)
	}
	return s
}

// Len returns the number of elements.
func (s Set[K]) Len() int {
	return s.m.Len()
}

// IsEmpty reports whether the set has no elements.
func (s Set[K]) IsEmpty() bool {
	return s.m.IsEmpty()
}

// Mem reports whether an element equivalent to k is present.
func (s Set[K]) Mem(k K) bool {
	return s.m.Mem(k)
}

// Add returns a set containing k. Adding an equivalent element replaces
// the stored representative with the newly supplied one.
func (s Set[K]) Add(k K) Set[K] {
	return Set[K]{m: s.m.Add(k, struct{}{})}
}

// Remove returns a set without any element equivalent to k.
func (s Set[K]) Remove(k K) Set[K] {
	return Set[K]{m: s.m.Remove(k)}
}

// Elems returns the elements in ascending order.
func (s Set[K]) Elems() []K {
	out := make([]K, 0, s.m.Len())
	for k := range s.m.Keys() {
		out = append(out, k)
	}
	return out
}

// All iterates the elements in ascending order.
func (s Set[K]) All() iter.Seq[K] {
	return s.m.Keys()
}

// Min returns the least element.
func (s Set[K]) Min() (K, bool) {
	e, ok := s.m.Min()
	return e.Key, ok
}

// Max returns the greatest element.
func (s Set[K]) Max() (K, bool) {
	e, ok := s.m.Max()
	return e.Key, ok
}

// Union returns the elements present in either set. On equivalent
// elements the left representative is kept.
func (s Set[K]) Union(other Set[K]) Set[K] {
	return Set[K]{m: sortedmap.Union(s.m, other.m)}
}

// Inter returns the elements present in both sets, left representatives.
func (s Set[K]) Inter(other Set[K]) Set[K] {
	return Set[K]{m: sortedmap.Inter(s.m, other.m)}
}

// Diff returns the elements of s absent from other.
func (s Set[K]) Diff(other Set[K]) Set[K] {
	return Set[K]{m: sortedmap.Diff(s.m, other.m)}
}

// SymDiff returns the elements present in exactly one of the two sets.
func (s Set[K]) SymDiff(other Set[K]) Set[K] {
	merged := sortedmap.Merge(func(l, r optional.Value[struct{}]) optional.Value[struct{}] {
		if l.IsSome() != r.IsSome() {
			return l.Or(r)
		}
		return optional.None[struct{}]()
	}, s.m, other.m)
	return Set[K]{m: merged}
}

// Subset reports whether every element of s is in other.
func (s Set[K]) Subset(other Set[K]) bool {
	return s.Diff(other).IsEmpty()
}

// Equal reports whether both sets hold the same elements.
func (s Set[K]) Equal(other Set[K]) bool {
	return s.m.Equal(other.m, func(_, _ struct{}) bool { return true })
}

// Compare is the lexicographic total order over sets: the empty set
// orders first, then the first differing element decides. It makes sets
// usable as keys of further containers.
func (s Set[K]) Compare(other Set[K]) int {
	return s.m.Compare(other.m, func(_, _ struct{}) int { return 0 })
}

// Fold reduces the set in ascending element order.
func Fold[K, A any](s Set[K], init A, f func(k K, acc A) A) A {
	return sortedmap.Fold(s.m, init, func(k K, _ struct{}, acc A) A {
		return f(k, acc)
	})
}

// Ordering lifts Compare into an ordering.Func over sets.
func Ordering[K any]() ordering.Func[Set[K]] {
	return func(a, b Set[K]) int {
		return a.Compare(b)
	}
}
