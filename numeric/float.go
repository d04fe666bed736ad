// SPDX-License-Identifier: MIT

package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the IEEE-754 backend for float32, float64 and named types over them.
// The zero value is ready to use.
//
// Behavior highlights:
//   - Quo never fails: x/0 yields ±Inf and 0/0 yields NaN, as the hardware does.
//   - Cmp orders an unordered pair (either side NaN) as +1, so a NaN is never
//     "less than or equal" to anything. Solvers therefore keep iterating on a
//     NaN deviation and report non-convergence instead of a bogus root.
type Float[T constraints.Float] struct{}

// Add returns a + b.
func (Float[T]) Add(a, b T) T { return a + b }

// Sub returns a - b.
func (Float[T]) Sub(a, b T) T { return a - b }

// Mul returns a * b.
func (Float[T]) Mul(a, b T) T { return a * b }

// Quo returns a / b. The error is always nil.
func (Float[T]) Quo(a, b T) (T, error) { return a / b, nil }

// Abs returns |a|.
func (Float[T]) Abs(a T) T { return T(math.Abs(float64(a))) }

// Cmp compares a and b; see the type documentation for NaN handling.
func (Float[T]) Cmp(a, b T) int {
	switch {
	case a < b:
		return -1
	case a == b:
		return 0
	default:
		// a > b, or unordered.
		return 1
	}
}
