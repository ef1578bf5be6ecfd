// Package ordering defines the comparison capability every container in this
// module is parameterized by.
//
// A container never compares keys on its own: it is handed a Func at
// construction time and consults it for every decision. This is not a
// compile-time module parameter but an injected comparator, and it stays
// attached to the container value for its whole lifetime.
//
// A Func must be a law-abiding total order:
//   - Func(a, a) == 0 for every a,
//   - sign(Func(a, b)) == -sign(Func(b, a)),
//   - Func(a, b) <= 0 && Func(b, c) <= 0 implies Func(a, c) <= 0.
//
// Violating these laws is a caller bug, not a recoverable condition: the
// containers built on top produce unspecified results. During development,
// wrap a suspect comparator with Checked to surface violations loudly.
package ordering
