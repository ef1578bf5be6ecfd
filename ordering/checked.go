package ordering

import (
	"fmt"

	"go.uber.org/zap"
)

// Checked wraps f with per-call law assertions: reflexivity of equivalence
// and antisymmetry of the outcome. Transitivity cannot be observed from a
// single call, so it is left to property tests.
//
// Every violation is logged through the supplied zap logger and then turns
// into a panic, because a lawless comparator makes every container built on
// it meaningless. Intended for development and test builds; production code
// should hand the raw comparator to containers directly, since Checked
// doubles the cost of every comparison.
func Checked[T any](f Func[T], logger *zap.Logger) Func[T] {
	return func(a, b T) int {
		got := f(a, b)
		if mirror := f(b, a); sign(got) != -sign(mirror) {
			logger.Error("comparator violates antisymmetry",
				zap.String("a", fmt.Sprintf("%v", a)),
				zap.String("b", fmt.Sprintf("%v", b)),
				zap.Int("forward", got),
				zap.Int("backward", mirror),
			)
			panic("ordering: comparator violates antisymmetry")
		}
		if got == 0 {
			if self := f(a, a); self != 0 {
				logger.Error("comparator violates reflexivity",
					zap.String("a", fmt.Sprintf("%v", a)),
					zap.Int("self", self),
				)
				panic("ordering: comparator violates reflexivity")
			}
		}
		return got
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
