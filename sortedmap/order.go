package sortedmap

import (
	"github.com/on-the-ground/persist_ive_go/ordering"
	"github.com/on-the-ground/persist_ive_go/sortedmap/internal/seq"
)

// Equal reports whether both maps bind the same keys to values eq
// accepts. Thanks to the canonical representation this is one linear
// pairwise walk; the first divergence settles the answer.
func (m Map[K, V]) Equal(other Map[K, V], eq func(a, b V) bool) bool {
	return seq.Equal(m.cmp, eq, m.entries, other.entries)
}

// Compare is the lexicographic total order over maps whose values carry
// an ordering of their own: the empty map orders first, then the first
// differing key decides, then the first differing value.
func (m Map[K, V]) Compare(other Map[K, V], valCmp ordering.Func[V]) int {
	return seq.Compare(m.cmp, valCmp, m.entries, other.entries)
}

// Ordering lifts Compare into an ordering.Func over maps, so maps can be
// the keys of further maps (or the elements of a sortedset.Set).
func Ordering[K, V any](valCmp ordering.Func[V]) ordering.Func[Map[K, V]] {
	return func(a, b Map[K, V]) int {
		cmp := a.cmp
		if cmp == nil {
			cmp = b.cmp
		}
		return seq.Compare(cmp, valCmp, a.entries, b.entries)
	}
}
