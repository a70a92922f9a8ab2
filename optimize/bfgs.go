package optimize

import (
	"fmt"

	gopt "gonum.org/v1/gonum/optimize"
)

// BFGS minimizes f over ℝⁿ starting from x0, delegating the quasi-Newton
// iteration to gonum.org/v1/gonum/optimize with the BFGS method and a
// gradient-magnitude stopping rule of opts.Tolerance.
//
// grad, when non-nil, must return ∂f/∂x at its argument (a fresh slice of
// len(x0)); when nil, a central finite-difference gradient with step
// opts.Step is used. A nil opts uses DefaultOptions.
//
// On a hit iteration limit the last iterate is returned in Result
// together with ErrNoConvergence, mirroring Newton. Failures inside the
// gonum machinery (line-search breakdowns and the like) are wrapped into
// ErrNoConvergence as well - the caller's remedy is the same: a better
// start or a looser tolerance.
//
// Errors: ErrNilObjective, ErrEmptyStart, ErrInvalidTolerance,
// ErrNoConvergence.
func BFGS(f VectorObjective, grad func(x []float64) []float64, x0 []float64, opts *Options) (Result, error) {
	if f == nil {
		return Result{}, ErrNilObjective
	}
	if len(x0) == 0 {
		return Result{}, ErrEmptyStart
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}

	problem := gopt.Problem{
		Func: func(x []float64) float64 { return f(x) },
	}
	if grad != nil {
		problem.Grad = func(dst, x []float64) { copy(dst, grad(x)) }
	} else {
		problem.Grad = func(dst, x []float64) { gradCentral(f, x, o.Step, dst) }
	}

	settings := &gopt.Settings{
		GradientThreshold: o.Tolerance,
		MajorIterations:   o.MaxIterations,
	}

	start := append([]float64(nil), x0...)
	sol, solveErr := gopt.Minimize(problem, start, settings, &gopt.BFGS{})
	if sol == nil {
		return Result{}, fmt.Errorf("%w: %v", ErrNoConvergence, solveErr)
	}

	res := Result{
		X:           append([]float64(nil), sol.X...),
		Value:       sol.F,
		Iterations:  sol.Stats.MajorIterations,
		Evaluations: sol.Stats.FuncEvaluations,
	}

	switch {
	case solveErr != nil:
		return res, fmt.Errorf("%w: %v", ErrNoConvergence, solveErr)
	case sol.Status == gopt.IterationLimit || sol.Status == gopt.NotTerminated:
		return res, fmt.Errorf("%w after %d iterations", ErrNoConvergence, res.Iterations)
	}

	res.Converged = true

	return res, nil
}
