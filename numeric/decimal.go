// SPDX-License-Identifier: MIT

package numeric

import "github.com/shopspring/decimal"

// Decimal is the decimal backend over github.com/shopspring/decimal.
//
// Addition, subtraction and multiplication are exact. Quotients are rounded
// half-up to Places digits after the decimal point; Places == 0 means
// decimal.DivisionPrecision (16 unless the program changed it).
type Decimal struct {
	Places int32
}

// Add returns a + b.
func (Decimal) Add(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }

// Sub returns a - b.
func (Decimal) Sub(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b) }

// Mul returns a * b.
func (Decimal) Mul(a, b decimal.Decimal) decimal.Decimal { return a.Mul(b) }

// Quo returns a / b rounded to Places, or ErrDivisionByZero when b == 0.
func (d Decimal) Quo(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Decimal{}, ErrDivisionByZero
	}
	places := d.Places
	if places == 0 {
		places = int32(decimal.DivisionPrecision)
	}

	return a.DivRound(b, places), nil
}

// Abs returns |a|.
func (Decimal) Abs(a decimal.Decimal) decimal.Decimal { return a.Abs() }

// Cmp compares a and b.
func (Decimal) Cmp(a, b decimal.Decimal) int { return a.Cmp(b) }
