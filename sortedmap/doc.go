// Package sortedmap provides a persistent key/value map over any key type
// with a total order.
//
// A Map is a value, not a place. Add and Remove never touch the map they
// are called on; they hand back a new Map and leave every older version
// intact. That is not an implementation detail, it is the contract:
//
//	→ share a Map across goroutines without locks,
//	→ keep old snapshots around for free,
//	→ reason about code as if maps were numbers.
//
// The representation is a canonical sorted sequence of entries: strictly
// increasing by key, never two equivalent keys. Every operation both relies
// on and re-establishes that invariant, which is what makes lookup
// deterministic, equality structural, and the two-map Merge a single
// linear merge-join instead of anything quadratic.
//
// The order itself is injected: a Map is constructed around an
// ordering.Func for its key type and consults nothing else to compare
// keys. Point operations cost O(n), the price of a representation whose
// updates are simple enough to trust completely. For large hot maps reach
// for a balanced structure; for the configuration-sized maps this package
// is written for, canonical order and persistence are worth far more than
// a logarithm.
package sortedmap
