package sqrt

import (
	"github.com/katalvlaran/nrfind/newton"
	"github.com/katalvlaran/nrfind/numeric"
	"golang.org/x/exp/constraints"
)

// Square returns f(x) = x·x − radicand and its derivative f'(x) = x + x.
// The derivative is written as a sum so no constant 2 of type T is needed.
func Square[T any](ar numeric.Arithmetic[T], radicand T) (function, derivative newton.Func[T]) {
	function = func(x T) T { return ar.Sub(ar.Mul(x, x), radicand) }
	derivative = func(x T) T { return ar.Add(x, x) }

	return function, derivative
}

// FindSqrt approximates √radicand for built-in float types, starting from
// initialGuess and stopping once the Newton correction is within acceptableError.
// Results and errors follow newton.FindRoot: on newton.ErrNoConvergence the
// returned value is the last candidate reached.
func FindSqrt[T constraints.Float](radicand, initialGuess, acceptableError T, maxIterations int, opts ...newton.Option) (T, error) {
	return FindSqrtIn[T](numeric.Float[T]{}, radicand, initialGuess, acceptableError, maxIterations, opts...)
}

// FindSqrtIn is FindSqrt over an arbitrary numeric backend ar.
// An initial guess of exactly zero makes the first derivative vanish: float
// backends then fail to converge, exact backends report newton.ErrZeroDerivative.
func FindSqrtIn[T any](ar numeric.Arithmetic[T], radicand, initialGuess, acceptableError T, maxIterations int, opts ...newton.Option) (T, error) {
	f, fd := Square(ar, radicand)

	return newton.FindRootIn(ar, f, fd, initialGuess, acceptableError, maxIterations, opts...)
}
