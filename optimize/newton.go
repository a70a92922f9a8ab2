package optimize

import (
	"fmt"
	"math"
)

// curvatureFloor guards the Newton update against division by a
// numerically zero second derivative.
const curvatureFloor = 1e-300

// Newton minimizes f over one real variable with Newton descent on the
// gradient:
//
//	xₖ₊₁ = xₖ − f'(xₖ)/f''(xₖ)
//
// grad and hess supply the first and second derivatives; either may be
// nil, in which case the central finite-difference stencils with step
// opts.Step are used instead. A nil opts uses DefaultOptions.
//
// The run is converged once |f'(x)| ≤ opts.Tolerance. If the iteration
// budget runs out first, the last iterate is still returned in Result
// alongside ErrNoConvergence.
//
// Errors: ErrNilObjective, ErrInvalidTolerance, ErrZeroCurvature,
// ErrNoConvergence.
//
// Complexity: O(MaxIterations) derivative evaluations; each
// finite-difference derivative costs 2–3 calls to f.
func Newton(f, grad, hess Objective, x0 float64, opts *Options) (Result, error) {
	if f == nil {
		return Result{}, ErrNilObjective
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}

	evals := 0
	counted := func(x float64) float64 { evals++; return f(x) }

	gradAt := func(x float64) float64 {
		if grad != nil {
			return grad(x)
		}

		return centralDiff(counted, x, o.Step)
	}
	hessAt := func(x float64) float64 {
		if hess != nil {
			return hess(x)
		}

		return secondDiff(counted, x, o.Step)
	}

	x := x0
	for iter := 1; iter <= o.MaxIterations; iter++ {
		g := gradAt(x)
		if math.Abs(g) <= o.Tolerance {
			return Result{
				X:           []float64{x},
				Value:       f(x),
				Iterations:  iter - 1,
				Evaluations: evals + 1,
				Converged:   true,
			}, nil
		}

		h := hessAt(x)
		if math.Abs(h) < curvatureFloor {
			return Result{X: []float64{x}, Value: f(x), Iterations: iter - 1, Evaluations: evals + 1},
				fmt.Errorf("%w at x=%g", ErrZeroCurvature, x)
		}

		x -= g / h
	}

	return Result{X: []float64{x}, Value: f(x), Iterations: o.MaxIterations, Evaluations: evals + 1},
		fmt.Errorf("%w after %d iterations", ErrNoConvergence, o.MaxIterations)
}
