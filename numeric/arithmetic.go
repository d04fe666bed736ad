// SPDX-License-Identifier: MIT

package numeric

import (
	"errors"
	"math/big"

	"github.com/shopspring/decimal"
)

// Compile-time checks that every backend satisfies the contract.
var (
	_ Arithmetic[float64]         = Float[float64]{}
	_ Arithmetic[float32]         = Float[float32]{}
	_ Arithmetic[*big.Rat]        = Rat{}
	_ Arithmetic[*big.Float]      = BigFloat{}
	_ Arithmetic[decimal.Decimal] = Decimal{}
)

// ErrDivisionByZero is returned by Quo of the exact backends when the divisor is zero.
// Callers match it with errors.Is; solvers wrap it with their own context.
var ErrDivisionByZero = errors.New("numeric: division by zero")

// Arithmetic performs the operations a real-number-like type T must support.
//
// Implementations:
//   - must not mutate a or b;
//   - must return a value that does not alias a or b when T is a pointer type;
//   - must be safe for concurrent use.
//
// Cmp returns -1, 0 or +1 as a is less than, equal to, or greater than b.
// Equality is Cmp(a, b) == 0.
type Arithmetic[T any] interface {
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Quo(a, b T) (T, error)
	Abs(a T) T
	Cmp(a, b T) int
}

// IsNegative reports whether a < 0 without requiring a zero constant of T:
// a value is negative exactly when its absolute value differs from it.
//
// Complexity: one Abs and one Cmp.
func IsNegative[T any](ar Arithmetic[T], a T) bool {
	return ar.Cmp(ar.Abs(a), a) != 0
}

// Within reports whether |a| ≤ limit. An unordered comparison (NaN) is never within.
func Within[T any](ar Arithmetic[T], a, limit T) bool {
	return ar.Cmp(ar.Abs(a), limit) <= 0
}
