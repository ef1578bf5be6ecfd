package ordering

import (
	"cmp"
	"strings"

	"github.com/govalues/decimal"
	"github.com/rickb777/date/v2"
)

// Func is a three-outcome comparator: negative means a orders before b,
// zero means a and b are equivalent, positive means a orders after b.
// It is the same shape the standard library uses for slices.SortFunc,
// so any comparator written for sorting works here unchanged.
type Func[T any] func(a, b T) int

// Natural compares any ordered primitive with its built-in order.
func Natural[T cmp.Ordered]() Func[T] {
	return cmp.Compare[T]
}

// Reverse flips every outcome of f.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}

// By lifts a comparator over a projection: keys are compared by what
// proj extracts from them. Useful for struct keys ordered by one field.
func By[T, U any](proj func(T) U, f Func[U]) Func[T] {
	return func(a, b T) int {
		return f(proj(a), proj(b))
	}
}

// Then breaks ties of primary with secondary.
func Then[T any](primary, secondary Func[T]) Func[T] {
	return func(a, b T) int {
		if c := primary(a, b); c != 0 {
			return c
		}
		return secondary(a, b)
	}
}

// Fold is case-insensitive string ordering.
func Fold() Func[string] {
	return func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}
}

// Date orders calendar dates chronologically.
func Date() Func[date.Date] {
	return func(a, b date.Date) int {
		switch {
		case a < b:
			return -1
		case b < a:
			return 1
		default:
			return 0
		}
	}
}

// Decimal orders decimals numerically, so 1.0 and 1.00 are equivalent
// keys even though they are distinct representations.
func Decimal() Func[decimal.Decimal] {
	return decimal.Decimal.Cmp
}
