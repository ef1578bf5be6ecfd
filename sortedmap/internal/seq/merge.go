package seq

import (
	"github.com/on-the-ground/persist_ive_go/ordering"
	"github.com/on-the-ground/persist_ive_go/shared/optional"
)

// Pair is one slot of the total pairing produced by Combine: the values
// both inputs associate with one key, either side possibly absent but
// never both.
type Pair[A, B any] struct {
	Left  optional.Value[A]
	Right optional.Value[B]
}

// Combine is the sorted merge-join of two sequences: one output entry per
// key present in either input, carrying that key's value from each side.
// Two cursors walk the inputs; each step emits the lesser of the two
// current keys (or the shared key, consuming both), so the emitted key
// stream is strictly increasing whenever both inputs are.
// Runs in O(len(a)+len(b)).
func Combine[K, A, B any](cmp ordering.Func[K], a []Entry[K, A], b []Entry[K, B]) []Entry[K, Pair[A, B]] {
	out := make([]Entry[K, Pair[A, B]], 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := cmp(a[i].Key, b[j].Key); {
		case c < 0:
			out = append(out, Entry[K, Pair[A, B]]{
				Key:   a[i].Key,
				Value: Pair[A, B]{Left: optional.Some(a[i].Value), Right: optional.None[B]()},
			})
			i++
		case c > 0:
			out = append(out, Entry[K, Pair[A, B]]{
				Key:   b[j].Key,
				Value: Pair[A, B]{Left: optional.None[A](), Right: optional.Some(b[j].Value)},
			})
			j++
		default:
			out = append(out, Entry[K, Pair[A, B]]{
				Key:   a[i].Key,
				Value: Pair[A, B]{Left: optional.Some(a[i].Value), Right: optional.Some(b[j].Value)},
			})
			i++
			j++
		}
	}
	for ; i < len(a); i++ {
		out = append(out, Entry[K, Pair[A, B]]{
			Key:   a[i].Key,
			Value: Pair[A, B]{Left: optional.Some(a[i].Value), Right: optional.None[B]()},
		})
	}
	for ; j < len(b); j++ {
		out = append(out, Entry[K, Pair[A, B]]{
			Key:   b[j].Key,
			Value: Pair[A, B]{Left: optional.None[A](), Right: optional.Some(b[j].Value)},
		})
	}
	return out
}

// Merge is the sparse filtering variant of Combine, fused into one pass:
// for every key present in either input, f receives that key's value from
// each side and decides the output binding; keys where f answers absence
// are dropped. The contract tying the two together:
//
//	Find(k, Merge(f, a, b)) == f(Find(k, a), Find(k, b))
//
// for every key k present in either input. Same complexity as Combine,
// without materializing the paired sequence.
func Merge[K, A, B, C any](
	cmp ordering.Func[K],
	f func(optional.Value[A], optional.Value[B]) optional.Value[C],
	a []Entry[K, A],
	b []Entry[K, B],
) []Entry[K, C] {
	out := make([]Entry[K, C], 0, len(a)+len(b))
	emit := func(k K, l optional.Value[A], r optional.Value[B]) {
		if v, ok := f(l, r).Get(); ok {
			out = append(out, Entry[K, C]{Key: k, Value: v})
		}
	}
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := cmp(a[i].Key, b[j].Key); {
		case c < 0:
			emit(a[i].Key, optional.Some(a[i].Value), optional.None[B]())
			i++
		case c > 0:
			emit(b[j].Key, optional.None[A](), optional.Some(b[j].Value))
			j++
		default:
			emit(a[i].Key, optional.Some(a[i].Value), optional.Some(b[j].Value))
			i++
			j++
		}
	}
	for ; i < len(a); i++ {
		emit(a[i].Key, optional.Some(a[i].Value), optional.None[B]())
	}
	for ; j < len(b); j++ {
		emit(b[j].Key, optional.None[A](), optional.Some(b[j].Value))
	}
	return out
}
