// Package sqrt computes square roots with the Newton-Raphson solver of
// package newton, so callers need not write f(x) = x² − radicand and its
// derivative themselves.
//
// ⚙️ Usage:
//
//	root, err := sqrt.FindSqrt(25.6, 5.0, 0.1, 20)
//
//	// exact arithmetic
//	var ar numeric.Rat
//	root, err := sqrt.FindSqrtIn[*big.Rat](ar, big.NewRat(2, 1), big.NewRat(1, 1), big.NewRat(1, 1_000_000), 20)
//
// Negative radicands are not rejected up front. No real root exists, the
// iteration wanders, and the call ends in newton.ErrNoConvergence with the
// last candidate attached, exactly as for any other function without a root
// near the guess.
package sqrt
