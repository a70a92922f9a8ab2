// Package optimize minimizes smooth real-valued functions with damped
// Newton descent (one variable) and BFGS (several variables).
//
// 🚀 What is in the box?
//
//	Two classic descent methods behind one small, deterministic API:
//	  • Newton — second-order 1-D descent: xₖ₊₁ = xₖ - f'(xₖ)/f''(xₖ),
//	    with optional analytic derivatives and central finite-difference
//	    fallbacks when they are not supplied
//	  • BFGS — quasi-Newton minimization over ℝⁿ, delegated to
//	    gonum.org/v1/gonum/optimize and adapted into this package's
//	    Result and sentinel errors
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlnum/optimize"
//
//	opts := optimize.DefaultOptions()
//	res, err := optimize.Newton(math.Cos, nil, nil, 3, &opts)
//	// res.X[0] ≈ π
//
// Convergence is declared when the gradient magnitude drops to
// Options.Tolerance; exceeding Options.MaxIterations returns the last
// iterate together with ErrNoConvergence so callers can inspect how far
// the run got.
//
// Errors (sentinel): ErrNilObjective, ErrEmptyStart, ErrInvalidTolerance,
// ErrZeroCurvature, ErrNoConvergence. All matched via errors.Is.
package optimize
