// SPDX-License-Identifier: MIT

package numeric

import "math/big"

// DefaultPrec is the mantissa precision, in bits, used by BigFloat when Prec is 0.
const DefaultPrec uint = 256

// BigFloat is the arbitrary-precision binary float backend over *big.Float.
//
// Fields:
//   - Prec: mantissa precision of every result in bits; 0 means DefaultPrec.
//   - Mode: rounding mode of every result; the zero value is big.ToNearestEven.
//
// Operands must be non-nil and finite. Quo refuses a zero divisor with
// ErrDivisionByZero, so no operation ever produces an infinity (big.Float
// panics with big.ErrNaN on Inf-Inf and 0/0).
type BigFloat struct {
	Prec uint
	Mode big.RoundingMode
}

// newResult allocates a result carrying the configured precision and rounding mode.
func (b BigFloat) newResult() *big.Float {
	prec := b.Prec
	if prec == 0 {
		prec = DefaultPrec
	}

	return new(big.Float).SetPrec(prec).SetMode(b.Mode)
}

// Add returns x + y rounded to the configured precision.
func (b BigFloat) Add(x, y *big.Float) *big.Float { return b.newResult().Add(x, y) }

// Sub returns x - y rounded to the configured precision.
func (b BigFloat) Sub(x, y *big.Float) *big.Float { return b.newResult().Sub(x, y) }

// Mul returns x * y rounded to the configured precision.
func (b BigFloat) Mul(x, y *big.Float) *big.Float { return b.newResult().Mul(x, y) }

// Quo returns x / y rounded to the configured precision, or ErrDivisionByZero when y == 0.
func (b BigFloat) Quo(x, y *big.Float) (*big.Float, error) {
	if y.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	return b.newResult().Quo(x, y), nil
}

// Abs returns |x| rounded to the configured precision.
func (b BigFloat) Abs(x *big.Float) *big.Float { return b.newResult().Abs(x) }

// Cmp compares x and y.
func (BigFloat) Cmp(x, y *big.Float) int { return x.Cmp(y) }
