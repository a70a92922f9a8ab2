package quadrature

import "errors"

var (
	// ErrInvalidArgument indicates a malformed request: a reversed or
	// non-finite interval, a subinterval count m < 1, or a nil integrand.
	// The call is rejected before the integrand is evaluated.
	ErrInvalidArgument = errors.New("quadrature: invalid argument")

	// ErrUnsupportedRule indicates a Rule outside the fixed catalog:
	// a Newton–Cotes (k, closed) pair other than the four supported ones,
	// or a Gauss–Legendre order outside 1..5. The rule set is deliberately
	// finite; no fallback rule is ever substituted.
	ErrUnsupportedRule = errors.New("quadrature: unsupported rule")
)
