// Package optimize - shared types, options, and sentinel errors.
package optimize

import "errors"

// Objective is a scalar function of one real variable.
type Objective func(x float64) float64

// VectorObjective is a scalar function of several real variables.
// Implementations must not retain or mutate the argument slice.
type VectorObjective func(x []float64) float64

var (
	// ErrNilObjective indicates a nil objective function.
	ErrNilObjective = errors.New("optimize: nil objective")

	// ErrEmptyStart indicates an empty starting point for a vector problem.
	ErrEmptyStart = errors.New("optimize: empty starting point")

	// ErrInvalidTolerance indicates a non-positive tolerance or
	// finite-difference step in Options.
	ErrInvalidTolerance = errors.New("optimize: tolerance and step must be positive")

	// ErrZeroCurvature indicates the second derivative vanished at an
	// iterate, so the Newton update is undefined there.
	ErrZeroCurvature = errors.New("optimize: vanishing second derivative")

	// ErrNoConvergence indicates the iteration budget was exhausted before
	// the gradient dropped below tolerance. The accompanying Result still
	// carries the last iterate.
	ErrNoConvergence = errors.New("optimize: did not converge")
)

// Default option values.
const (
	// DefaultTolerance is the gradient magnitude below which a run is
	// declared converged.
	DefaultTolerance = 1e-8

	// DefaultMaxIterations caps the number of descent steps.
	DefaultMaxIterations = 100

	// DefaultStep is the central finite-difference step used when
	// analytic derivatives are not supplied.
	DefaultStep = 1e-6
)

// Options configures the minimizers.
//
//   - Tolerance     — stop once the gradient magnitude is ≤ Tolerance.
//   - MaxIterations — hard cap on descent steps; exceeding it yields
//     ErrNoConvergence together with the last iterate.
//   - Step          — finite-difference step for derivative fallbacks.
type Options struct {
	Tolerance     float64
	MaxIterations int
	Step          float64
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Step:          DefaultStep,
	}
}

// validate checks Options consistency; nil receivers fall back to defaults
// at the call sites, so only populated structs arrive here.
func (o Options) validate() error {
	if o.Tolerance <= 0 || o.Step <= 0 || o.MaxIterations < 1 {
		return ErrInvalidTolerance
	}

	return nil
}

// Result reports the outcome of a minimization run.
type Result struct {
	// X is the final iterate; length 1 for scalar problems.
	X []float64

	// Value is the objective evaluated at X.
	Value float64

	// Iterations is the number of descent steps taken.
	Iterations int

	// Evaluations counts objective calls, including any finite-difference
	// probes made on the caller's behalf.
	Evaluations int

	// Converged reports whether the gradient criterion was met.
	Converged bool
}
