// Package quadrature - rule catalog types.
//
// A Rule is an explicit value, not an opaque handle: callers either use
// one of the predefined rules (Rectangular, Midpoint, Trapezoid, Simpson,
// GL1..GL5) or build one with the NewtonCotes / GaussLegendre
// constructors. Validation is total - every (family, k, closed)
// combination is either in the fixed catalog or rejected with
// ErrUnsupportedRule; there is no order-dependent fallthrough.
package quadrature

import "fmt"

// Func is a caller-supplied real-valued integrand f: ℝ → ℝ.
// The engine only ever invokes it at requested points; it assumes each
// call is pure and reasonably cheap, and never guards against a
// non-terminating f.
type Func func(x float64) float64

// Family enumerates the supported quadrature rule families.
type Family int

const (
	// FamilyNewtonCotes covers the interpolatory rules with equally
	// spaced nodes: rectangular, midpoint, trapezoid, Simpson.
	FamilyNewtonCotes Family = iota

	// FamilyGaussLegendre covers the Gaussian rules on [-1,1] with
	// fixed node/weight tables for orders 1..5.
	FamilyGaussLegendre
)

// Rule identifies one single-interval quadrature rule.
//
// For FamilyNewtonCotes, K is the number of nodes and Closed selects
// whether the endpoints are included; only four combinations are valid
// (see NewtonCotes). For FamilyGaussLegendre, K is the order (1..5) and
// Closed is ignored.
type Rule struct {
	Family Family
	K      int
	Closed bool
}

// Predefined Newton–Cotes rules.
var (
	// Rectangular is the 1-point closed rule (b-a)·f(a). Exact for constants.
	Rectangular = NewtonCotes(1, true)
	// Midpoint is the 1-point open rule (b-a)·f((a+b)/2). Exact for linears.
	Midpoint = NewtonCotes(1, false)
	// Trapezoid is the 2-point closed rule (b-a)/2·(f(a)+f(b)).
	Trapezoid = NewtonCotes(2, true)
	// Simpson is the 3-point closed rule (b-a)/6·(f(a)+4f((a+b)/2)+f(b)).
	Simpson = NewtonCotes(3, true)
)

// Predefined Gauss–Legendre rules, by order.
var (
	GL1 = GaussLegendre(1)
	GL2 = GaussLegendre(2)
	GL3 = GaussLegendre(3)
	GL4 = GaussLegendre(4)
	GL5 = GaussLegendre(5)
)

// NewtonCotes returns the Newton–Cotes rule with k nodes.
// Valid combinations: (1,false)=midpoint, (1,true)=rectangular,
// (2,true)=trapezoid, (3,true)=Simpson. Any other pair is rejected with
// ErrUnsupportedRule by the evaluators.
func NewtonCotes(k int, closed bool) Rule {
	return Rule{Family: FamilyNewtonCotes, K: k, Closed: closed}
}

// GaussLegendre returns the Gauss–Legendre rule of order k (valid for
// k in 1..5; anything else is rejected with ErrUnsupportedRule).
func GaussLegendre(k int) Rule {
	return Rule{Family: FamilyGaussLegendre, K: k}
}

// String renders the rule for error messages and logs.
func (r Rule) String() string {
	switch r.Family {
	case FamilyNewtonCotes:
		mode := "open"
		if r.Closed {
			mode = "closed"
		}

		return fmt.Sprintf("NewtonCotes(k=%d,%s)", r.K, mode)
	case FamilyGaussLegendre:
		return fmt.Sprintf("GaussLegendre(k=%d)", r.K)
	default:
		return fmt.Sprintf("Rule(family=%d,k=%d)", r.Family, r.K)
	}
}

// validate reports whether r belongs to the fixed rule catalog.
// Returns a wrapped ErrUnsupportedRule otherwise.
func (r Rule) validate() error {
	switch r.Family {
	case FamilyNewtonCotes:
		switch {
		case r.K == 1: // both open (midpoint) and closed (rectangular)
			return nil
		case (r.K == 2 || r.K == 3) && r.Closed:
			return nil
		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedRule, r)
		}
	case FamilyGaussLegendre:
		if r.K >= glMinOrder && r.K <= glMaxOrder {
			return nil
		}

		return fmt.Errorf("%w: %s", ErrUnsupportedRule, r)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedRule, r)
	}
}
