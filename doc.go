// Package nrfind finds roots of functions whose derivatives are known, with
// the Newton-Raphson method, over whatever number type the caller works in.
//
// 🚀 What is nrfind?
//
//	A small, pure-Go, side-effect-free numeric library:
//		• Newton-Raphson root finding for any f with a known f'
//		• Square roots built on the same solver
//		• One generic engine for float32/float64, exact rationals (*big.Rat),
//		  arbitrary-precision floats (*big.Float) and decimals (shopspring)
//		• Non-convergence reported with the best candidate reached
//
// ✨ Why choose nrfind?
//
//   - Minimal API: FindRoot(f, fd, x0, tol, maxIter) and FindSqrt(r, x0, tol, maxIter)
//   - Honest failures: ErrNoConvergence carries the last estimate, never a silent default
//   - Bounded work: the iteration budget is the only stopping rule besides convergence
//   - Safe for concurrent use: no shared state between calls
//
// Under the hood, everything is organized under three subpackages:
//
//	numeric/: the Arithmetic[T] contract and its Float, Rat, BigFloat and Decimal backends
//	newton/ : the Newton-Raphson engine (FindRoot, FindRootIn, Solve) and its options
//	sqrt/   : square roots via f(x) = x² − r, f'(x) = x + x
//
// Quick example:
//
//	root, err := newton.FindRoot(
//		func(x float64) float64 { return x*x*x + x*x + 1 },
//		func(x float64) float64 { return 3*x*x + 2*x },
//		100.0, // starting guess
//		0.1,   // precision
//		18,    // iterations
//	)
//
// The method is purely local: no bracketing, no damping, no global
// convergence guarantee. Runnable drivers live under examples/.
//
//	go get github.com/katalvlaran/nrfind
package nrfind
