// SPDX-License-Identifier: MIT
package newton_test

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/nrfind/newton"
	"github.com/katalvlaran/nrfind/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// f is x³ + x² + 1, with a single real root near -1.4656.
func f(x float64) float64 { return x*x*x + x*x + 1 }

// fd is the derivative of f: 3x² + 2x.
func fd(x float64) float64 { return 3*x*x + 2*x }

const polyRoot = -1.4656

// TestFindRoot_FindsResultToPrecision verifies convergence from a far guess within 18 steps.
func TestFindRoot_FindsResultToPrecision(t *testing.T) {
	const precision = 0.1

	root, err := newton.FindRoot(f, fd, 100.0, precision, 18)
	require.NoError(t, err, "18 iterations from 100 must converge at precision 0.1")
	assert.LessOrEqual(t, math.Abs(root-polyRoot), precision)
}

// TestFindRoot_FailsWithPrecision verifies that a tight threshold and a short budget fail.
func TestFindRoot_FailsWithPrecision(t *testing.T) {
	root, err := newton.FindRoot(f, fd, 100.0, 0.001, 10)
	require.ErrorIs(t, err, newton.ErrNoConvergence)

	var ce *newton.ConvergenceError[float64]
	require.True(t, errors.As(err, &ce), "failure must carry the last candidate")
	assert.Equal(t, root, ce.Last, "returned value and carried candidate agree")
	assert.Equal(t, 10, ce.Iterations)
	assert.InDelta(t, 1.3826, ce.Last, 1e-4, "candidate after ten steps from 100")
}

// TestSolve_BudgetRelaxation checks that failing with N steps and succeeding with M > N is consistent.
func TestSolve_BudgetRelaxation(t *testing.T) {
	var ar numeric.Float[float64]

	short, err := newton.Solve[float64](ar, f, fd, 100.0, 0.1, 17)
	require.ErrorIs(t, err, newton.ErrNoConvergence)
	assert.False(t, short.Converged)
	assert.Equal(t, 17, short.Iterations)

	long, err := newton.Solve[float64](ar, f, fd, 100.0, 0.1, 18)
	require.NoError(t, err)
	assert.True(t, long.Converged)
	assert.Equal(t, 18, long.Iterations, "converges exactly on the 18th step")
	assert.LessOrEqual(t, math.Abs(long.Deviation), 0.1)

	// One more step from where the short run stopped lands on the same root.
	resumed, err := newton.Solve[float64](ar, f, fd, short.Root, 0.1, 1)
	require.NoError(t, err)
	assert.Equal(t, long.Root, resumed.Root)

	// Any larger budget gives the same answer.
	larger, err := newton.Solve[float64](ar, f, fd, 100.0, 0.1, 100)
	require.NoError(t, err)
	assert.Equal(t, long, larger)
}

// TestSolve_ZeroIterations ensures an empty budget fails immediately with the initial guess.
func TestSolve_ZeroIterations(t *testing.T) {
	calls := 0
	count := func(x float64) float64 { calls++; return x }

	res, err := newton.Solve[float64](numeric.Float[float64]{}, count, count, 42.0, 1.0, 0)
	require.ErrorIs(t, err, newton.ErrNoConvergence)
	assert.Equal(t, 42.0, res.Root)
	assert.Equal(t, 0, res.Iterations)
	assert.Zero(t, calls, "no evaluation without budget")
}

// TestSolve_CallsPerIteration verifies f and f' are each evaluated once per step.
func TestSolve_CallsPerIteration(t *testing.T) {
	var fCalls, dCalls int
	cf := func(x float64) float64 { fCalls++; return f(x) }
	cd := func(x float64) float64 { dCalls++; return fd(x) }

	res, err := newton.Solve[float64](numeric.Float[float64]{}, cf, cd, 100.0, 0.1, 18)
	require.NoError(t, err)
	assert.Equal(t, res.Iterations, fCalls)
	assert.Equal(t, res.Iterations, dCalls)

	fCalls, dCalls = 0, 0
	res, err = newton.Solve[float64](numeric.Float[float64]{}, cf, cd, 100.0, 0.001, 7)
	require.Error(t, err)
	assert.Equal(t, 7, fCalls)
	assert.Equal(t, 7, dCalls)
	assert.Equal(t, 7, res.Iterations)
}

// TestSolve_ZeroThresholdExactRoot shows a zero threshold succeeds when the deviation vanishes exactly.
func TestSolve_ZeroThresholdExactRoot(t *testing.T) {
	line := func(x float64) float64 { return x - 3 }
	one := func(float64) float64 { return 1 }

	res, err := newton.Solve[float64](numeric.Float[float64]{}, line, one, 0.0, 0.0, 5)
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Root)
	assert.Equal(t, 2, res.Iterations, "first step lands on 3, second confirms a zero deviation")
}

// TestFindRoot_BadInput covers every validation guard.
func TestFindRoot_BadInput(t *testing.T) {
	_, err := newton.FindRoot(f, fd, 1.0, -0.1, 10)
	assert.ErrorIs(t, err, newton.ErrBadInput, "negative threshold")

	_, err = newton.FindRoot(f, fd, 1.0, math.NaN(), 10)
	assert.ErrorIs(t, err, newton.ErrBadInput, "NaN threshold")

	_, err = newton.FindRoot(f, fd, 1.0, 0.1, -1)
	assert.ErrorIs(t, err, newton.ErrBadInput, "negative budget")

	_, err = newton.FindRoot(nil, fd, 1.0, 0.1, 10)
	assert.ErrorIs(t, err, newton.ErrNilFunc)

	_, err = newton.FindRoot(f, nil, 1.0, 0.1, 10)
	assert.ErrorIs(t, err, newton.ErrNilFunc)

	root, err := newton.FindRootIn[float64](nil, f, fd, 1.0, 0.1, 10)
	assert.ErrorIs(t, err, newton.ErrNilArithmetic)
	assert.Zero(t, root)

	assert.False(t, errors.Is(err, newton.ErrNoConvergence), "invalid input is not a convergence failure")
}

// TestFindRoot_FloatZeroDerivative ensures a vanishing float derivative ends in non-convergence, not a panic.
func TestFindRoot_FloatZeroDerivative(t *testing.T) {
	g := func(x float64) float64 { return x*x + 1 }
	gd := func(x float64) float64 { return x + x }

	assert.NotPanics(t, func() {
		_, err := newton.FindRoot(g, gd, 0.0, 0.1, 10)
		assert.ErrorIs(t, err, newton.ErrNoConvergence)
	})
}

// TestFindRoot_Float32 runs the polynomial case in single precision.
func TestFindRoot_Float32(t *testing.T) {
	g := func(x float32) float32 { return x*x*x + x*x + 1 }
	gd := func(x float32) float32 { return 3*x*x + 2*x }

	root, err := newton.FindRoot(g, gd, float32(-2), float32(0.001), 10)
	require.NoError(t, err)
	assert.InDelta(t, polyRoot, float64(root), 0.001)
}

// TestFindRootIn_Rat solves the polynomial exactly over big.Rat from a nearby guess.
func TestFindRootIn_Rat(t *testing.T) {
	var ar numeric.Rat
	one := big.NewRat(1, 1)
	three := big.NewRat(3, 1)
	two := big.NewRat(2, 1)
	g := func(x *big.Rat) *big.Rat { return ar.Add(ar.Add(ar.Mul(ar.Mul(x, x), x), ar.Mul(x, x)), one) }
	gd := func(x *big.Rat) *big.Rat { return ar.Add(ar.Mul(three, ar.Mul(x, x)), ar.Mul(two, x)) }

	res, err := newton.Solve[*big.Rat](ar, g, gd, big.NewRat(-2, 1), big.NewRat(1, 1000), 10)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Iterations)

	got, _ := res.Root.Float64()
	assert.InDelta(t, polyRoot, got, 0.001)
}

// TestFindRootIn_RatZeroDerivative verifies exact backends report a vanishing derivative.
func TestFindRootIn_RatZeroDerivative(t *testing.T) {
	var ar numeric.Rat
	four := big.NewRat(4, 1)
	g := func(x *big.Rat) *big.Rat { return ar.Sub(ar.Mul(x, x), four) }
	gd := func(x *big.Rat) *big.Rat { return ar.Add(x, x) }

	res, err := newton.Solve[*big.Rat](ar, g, gd, new(big.Rat), big.NewRat(1, 10), 10)
	require.ErrorIs(t, err, newton.ErrZeroDerivative)
	assert.ErrorIs(t, err, numeric.ErrDivisionByZero, "backend cause stays matchable")
	assert.False(t, errors.Is(err, newton.ErrNoConvergence))
	assert.Equal(t, 0, res.Root.Sign(), "the candidate it failed at is reported")
	assert.Equal(t, 1, res.Iterations)
	assert.False(t, res.Converged)
}

// TestFindRootIn_BigFloat reaches 30 correct digits at 256 bits of precision.
func TestFindRootIn_BigFloat(t *testing.T) {
	ar := numeric.BigFloat{Prec: 256}
	two := big.NewFloat(2)
	g := func(x *big.Float) *big.Float { return ar.Sub(ar.Mul(x, x), two) }
	gd := func(x *big.Float) *big.Float { return ar.Add(x, x) }
	tol, _, err := big.ParseFloat("1e-30", 10, 256, big.ToNearestEven)
	require.NoError(t, err)

	root, err := newton.FindRootIn[*big.Float](ar, g, gd, big.NewFloat(1), tol, 20)
	require.NoError(t, err)

	want := new(big.Float).SetPrec(256).Sqrt(two)
	diff := ar.Abs(ar.Sub(root, want))
	assert.LessOrEqual(t, diff.Cmp(tol), 0, "√2 accurate to 1e-30")
}

// TestConvergenceError_Message checks the message and the carried candidate for an exact backend.
func TestConvergenceError_Message(t *testing.T) {
	var ar numeric.Rat
	two := big.NewRat(2, 1)
	g := func(x *big.Rat) *big.Rat { return ar.Sub(ar.Mul(x, x), two) }
	gd := func(x *big.Rat) *big.Rat { return ar.Add(x, x) }

	// √2 is irrational: an exact zero threshold can never be met.
	root, err := newton.FindRootIn[*big.Rat](ar, g, gd, big.NewRat(1, 1), new(big.Rat), 3)
	require.ErrorIs(t, err, newton.ErrNoConvergence)
	assert.Equal(t, "577/408", root.RatString())
	assert.EqualError(t, err, "newton: no convergence after 3 iterations (last candidate 577/408)")
}
