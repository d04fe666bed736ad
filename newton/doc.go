// SPDX-License-Identifier: MIT

// Package newton finds roots of caller-supplied functions with the
// Newton-Raphson method, generically over the number type.
//
// 🚀 What is Newton-Raphson?
//
//	Given f and its first derivative f', each step replaces the current
//	candidate x with the root of the tangent line at x:
//
//	  x ← x − f(x)/f'(x)
//
//	The correction f(x)/f'(x) is called the deviation. Once its magnitude
//	drops to the acceptable error, the corrected candidate is returned.
//
// ✨ Key features:
//   - FindRoot for float32/float64 with plain Go functions
//   - FindRootIn / Solve over any numeric.Arithmetic backend
//     (exact *big.Rat, arbitrary-precision *big.Float, shopspring decimals)
//   - non-convergence keeps the best candidate reached (ConvergenceError.Last)
//   - optional per-iteration tracing through log/slog (WithLogger)
//
// ⚙️ Usage:
//
//	f := func(x float64) float64 { return x*x*x + x*x + 1 }
//	fd := func(x float64) float64 { return 3*x*x + 2*x }
//
//	root, err := newton.FindRoot(f, fd, 100.0, 0.1, 18)
//	if errors.Is(err, newton.ErrNoConvergence) {
//	  // root still holds the last candidate reached
//	}
//
// What it does not do:
//
//	No bracketing or bisection fallback, no damping or step-size control,
//	no automatic differentiation. The method is local: a poor initial guess
//	may diverge, and that is reported as ErrNoConvergence once the
//	iteration budget runs out.
//
// Performance:
//
//   - Time:   O(maxIterations) evaluations of f and f', one of each per step
//   - Memory: O(1) beyond what the backend allocates per operation
//
// Concurrency:
//
//	Calls share no state; any number of goroutines may solve at once.
package newton
