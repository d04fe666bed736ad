// SPDX-License-Identifier: MIT

package newton

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every message is prefixed with "newton: ".
// Call sites add context with fmt.Errorf("Ctx: %w", ErrX); match with errors.Is.
var (
	// ErrNoConvergence indicates the iteration budget ran out before the deviation
	// fell within the acceptable error. It is an expected outcome, not a fault.
	ErrNoConvergence = errors.New("newton: no convergence")

	// ErrZeroDerivative indicates the backend refused f(x)/f'(x), which for the
	// exact backends means f'(x) == 0. Float backends never report it.
	ErrZeroDerivative = errors.New("newton: derivative division failed")

	// ErrBadInput indicates a negative acceptable error or iteration budget.
	ErrBadInput = errors.New("newton: invalid input")

	// ErrNilFunc indicates a nil function or derivative.
	ErrNilFunc = errors.New("newton: nil function")

	// ErrNilArithmetic indicates a nil numeric.Arithmetic backend.
	ErrNilArithmetic = errors.New("newton: nil arithmetic")
)

// Func is a pure unary function over the number type T.
// The solver calls it exactly once per iteration and never concurrently within one solve.
type Func[T any] func(x T) T

// Result is the outcome of Solve.
//
// Fields:
//   - Root      : the converged value when Converged, otherwise the last candidate reached.
//   - Converged : true when |deviation| ≤ acceptable error at some iteration.
//   - Iterations: Newton steps performed; equals the number of calls to f and to f'.
//   - Deviation : the last deviation f(x)/f'(x) computed; zero value when no step ran.
type Result[T any] struct {
	Root       T
	Converged  bool
	Iterations int
	Deviation  T
}

// ConvergenceError reports that the budget was exhausted and carries the
// best estimate so callers can tell "no answer" from "closest guess found".
//
// errors.Is(err, ErrNoConvergence) holds for it. Retrieve the estimate with:
//
//	var ce *newton.ConvergenceError[float64]
//	if errors.As(err, &ce) {
//	  fmt.Println(ce.Last)
//	}
type ConvergenceError[T any] struct {
	Last       T
	Iterations int
}

// Error implements error.
func (e *ConvergenceError[T]) Error() string {
	return fmt.Sprintf("%v after %d iterations (last candidate %v)", ErrNoConvergence, e.Iterations, e.Last)
}

// Unwrap exposes ErrNoConvergence to errors.Is.
func (e *ConvergenceError[T]) Unwrap() error { return ErrNoConvergence }
