// SPDX-License-Identifier: MIT

package newton

import (
	"fmt"

	"github.com/katalvlaran/nrfind/numeric"
	"golang.org/x/exp/constraints"
)

// FindRoot finds x with function(x) ≈ 0 for built-in float types, given the
// first derivative of function.
//
// Returns:
//   - (root, nil) once |function(x)/derivative(x)| ≤ acceptableError.
//   - (last, *ConvergenceError[T]) when maxIterations steps did not converge;
//     last is the best candidate reached and errors.Is(err, ErrNoConvergence) holds.
//   - (0, error) wrapping ErrNilFunc or ErrBadInput for invalid arguments.
//
// A vanishing derivative is not special-cased: the division yields ±Inf or
// NaN, which never satisfies the threshold, and the call ends in ErrNoConvergence.
//
// Example:
//
//	root, err := FindRoot(f, fd, 100.0, 0.1, 18)
func FindRoot[T constraints.Float](
	function, derivative Func[T],
	initialGuess, acceptableError T,
	maxIterations int,
	opts ...Option,
) (T, error) {
	return FindRootIn[T](numeric.Float[T]{}, function, derivative, initialGuess, acceptableError, maxIterations, opts...)
}

// FindRootIn is FindRoot over an arbitrary numeric backend ar.
// Result and error semantics are those of FindRoot; in addition an exact
// backend that refuses the division (f'(x) == 0) stops the solve with an
// error wrapping both ErrZeroDerivative and the backend's error, and the
// candidate at which it happened is returned.
func FindRootIn[T any](
	ar numeric.Arithmetic[T],
	function, derivative Func[T],
	initialGuess, acceptableError T,
	maxIterations int,
	opts ...Option,
) (T, error) {
	res, err := Solve(ar, function, derivative, initialGuess, acceptableError, maxIterations, opts...)

	return res.Root, err
}

// Solve runs the Newton-Raphson iteration and reports the full Result.
//
// Algorithm Outline:
//  1. current = initialGuess.
//  2. Repeat at most maxIterations times:
//     deviation = function(current) / derivative(current)
//     next      = current − deviation
//     if |deviation| ≤ acceptableError → converged, Root = next
//     current   = next
//  3. Budget exhausted → Root = current, ErrNoConvergence.
//
// Inputs:
//   - ar: numeric backend; must be non-nil.
//   - function, derivative: pure functions; must be non-nil.
//   - acceptableError: ≥ 0. Zero demands an exactly vanishing deviation.
//   - maxIterations: ≥ 0. Zero performs no step and fails with Root = initialGuess.
//
// Errors:
//   - ErrNilArithmetic, ErrNilFunc, ErrBadInput: before any step; Result is zero.
//   - ErrZeroDerivative: backend division failed; Root is the candidate it failed at.
//   - *ConvergenceError[T] (ErrNoConvergence): budget exhausted; Root is the last candidate.
//
// Complexity:
//   - Time O(maxIterations) backend operations plus evaluations of f and f'.
func Solve[T any](
	ar numeric.Arithmetic[T],
	function, derivative Func[T],
	initialGuess, acceptableError T,
	maxIterations int,
	opts ...Option,
) (Result[T], error) {
	// Stage 1: Validate input
	if ar == nil {
		return Result[T]{}, fmt.Errorf("Solve: %w", ErrNilArithmetic)
	}
	if function == nil || derivative == nil {
		return Result[T]{}, fmt.Errorf("Solve: %w", ErrNilFunc)
	}
	if maxIterations < 0 {
		return Result[T]{}, fmt.Errorf("Solve: maxIterations %d < 0: %w", maxIterations, ErrBadInput)
	}
	if numeric.IsNegative(ar, acceptableError) {
		return Result[T]{}, fmt.Errorf("Solve: acceptable error %v is negative: %w", acceptableError, ErrBadInput)
	}

	o := gatherOptions(opts)
	trace := o.tracing()

	// Stage 2: Iterate
	var (
		res     = Result[T]{Root: initialGuess}
		current = initialGuess
		next    T
		dev     T
		err     error
	)
	for res.Iterations < maxIterations {
		res.Iterations++
		dev, err = ar.Quo(function(current), derivative(current))
		if err != nil {
			res.Root = current

			return res, fmt.Errorf("Solve: iteration %d: %w: %w", res.Iterations, ErrZeroDerivative, err)
		}
		res.Deviation = dev
		next = ar.Sub(current, dev)
		if trace {
			o.logStep(res.Iterations, current, dev)
		}

		if numeric.Within(ar, dev, acceptableError) {
			res.Root, res.Converged = next, true
			if trace {
				o.logOutcome(true, res.Iterations, next)
			}

			return res, nil
		}
		current = next
	}

	// Stage 3: Budget exhausted
	res.Root = current
	if trace {
		o.logOutcome(false, res.Iterations, current)
	}

	return res, &ConvergenceError[T]{Last: current, Iterations: res.Iterations}
}
