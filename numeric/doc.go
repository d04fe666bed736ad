// SPDX-License-Identifier: MIT

// Package numeric defines the arithmetic contract the nrfind solvers are
// generic over, together with ready-made backends for the number types Go
// programs actually use.
//
// 🚀 Why a separate contract?
//
//	Go operators only work on built-in types. *big.Rat, *big.Float and
//	decimal.Decimal expose their arithmetic as methods with differing
//	shapes, so the solvers take an Arithmetic[T] value that performs the
//	operations on their behalf. The number type T stays a plain value.
//
// ✨ Backends:
//   - Float[T] : float32 / float64 (and named types over them), IEEE-754 semantics
//   - Rat      : exact rationals over *big.Rat
//   - BigFloat : arbitrary-precision binary floats over *big.Float
//   - Decimal  : decimal fixed point over github.com/shopspring/decimal
//
// ⚙️ Usage:
//
//	var ar numeric.Rat
//	half, err := ar.Quo(big.NewRat(1, 1), big.NewRat(2, 1))
//	if err != nil {
//	  // numeric.ErrDivisionByZero
//	}
//
// Contract:
//   - Backends never mutate their operands; every result is a fresh value.
//   - Backends hold configuration only, so one value may be shared across goroutines.
//   - Quo is the only fallible operation. Exact backends report a zero divisor
//     with ErrDivisionByZero instead of panicking; Float follows the hardware
//     and yields ±Inf or NaN.
package numeric
