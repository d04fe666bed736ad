// SPDX-License-Identifier: MIT

package numeric

import "math/big"

// Rat is the exact rational backend over *big.Rat. The zero value is ready to use.
//
// Every operation allocates its result, so operands keep value semantics even
// though *big.Rat is a mutable pointer type. Operands must be non-nil.
//
// Notes:
//   - Newton iterates on rationals square the size of numerator and denominator
//     roughly every step (cube it for cubics). Keep budgets small or converge early.
type Rat struct{}

// Add returns a + b.
func (Rat) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

// Sub returns a - b.
func (Rat) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }

// Mul returns a * b.
func (Rat) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// Quo returns a / b, or ErrDivisionByZero when b == 0.
func (Rat) Quo(a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	return new(big.Rat).Quo(a, b), nil
}

// Abs returns |a|.
func (Rat) Abs(a *big.Rat) *big.Rat { return new(big.Rat).Abs(a) }

// Cmp compares a and b.
func (Rat) Cmp(a, b *big.Rat) int { return a.Cmp(b) }
