package quadrature_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlnum/quadrature"
)

// exactTol is the tolerance for "exact" integration of polynomials.
const exactTol = 1e-10

// monomial returns x ↦ xᵈ.
func monomial(d int) quadrature.Func {
	return func(x float64) float64 { return math.Pow(x, float64(d)) }
}

// monomialIntegral returns ∫ab xᵈdx = (b^{d+1} - a^{d+1}) / (d+1).
func monomialIntegral(a, b float64, d int) float64 {
	p := float64(d + 1)

	return (math.Pow(b, p) - math.Pow(a, p)) / p
}

// TestSingleIntervalRule_PolynomialExactness drives every catalog rule
// over monomials up to its exactness degree (exact) and one degree past
// it (must miss). The interval is asymmetric so odd monomials cannot be
// integrated exactly by accident of symmetry.
func TestSingleIntervalRule_PolynomialExactness(t *testing.T) {
	const a, b = 0.5, 2.0

	cases := []struct {
		name     string
		rule     quadrature.Rule
		exactDeg int // highest degree integrated exactly
	}{
		{"rectangular", quadrature.Rectangular, 0},
		{"midpoint", quadrature.Midpoint, 1},
		{"trapezoid", quadrature.Trapezoid, 1},
		{"simpson", quadrature.Simpson, 3},
		{"gauss-legendre-1", quadrature.GL1, 1},
		{"gauss-legendre-2", quadrature.GL2, 3},
		{"gauss-legendre-3", quadrature.GL3, 5},
		{"gauss-legendre-4", quadrature.GL4, 7},
		{"gauss-legendre-5", quadrature.GL5, 9},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for d := 0; d <= tc.exactDeg; d++ {
				got, err := quadrature.SingleIntervalRule(monomial(d), a, b, tc.rule)
				require.NoError(t, err)
				assert.InDelta(t, monomialIntegral(a, b, d), got, exactTol,
					"x^%d must integrate exactly", d)
			}

			// One degree past the bound the rule must miss.
			beyond := tc.exactDeg + 1
			got, err := quadrature.SingleIntervalRule(monomial(beyond), a, b, tc.rule)
			require.NoError(t, err)
			assert.Greater(t, math.Abs(got-monomialIntegral(a, b, beyond)), exactTol,
				"x^%d must not integrate exactly", beyond)
		})
	}
}

// TestSingleIntervalRule_ClosedForms pins the four Newton–Cotes formulas
// to hand-computed values on a fixed panel.
func TestSingleIntervalRule_ClosedForms(t *testing.T) {
	f := func(x float64) float64 { return 3*x + 1 }
	const a, b = 1.0, 3.0 // f(1)=4, f(2)=7, f(3)=10; ∫ = 14

	got, err := quadrature.SingleIntervalRule(f, a, b, quadrature.Rectangular)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, got, exactTol, "rectangular = (b-a)·f(a)")

	got, err = quadrature.SingleIntervalRule(f, a, b, quadrature.Midpoint)
	require.NoError(t, err)
	assert.InDelta(t, 14.0, got, exactTol, "midpoint = (b-a)·f((a+b)/2)")

	got, err = quadrature.SingleIntervalRule(f, a, b, quadrature.Trapezoid)
	require.NoError(t, err)
	assert.InDelta(t, 14.0, got, exactTol, "trapezoid = (b-a)/2·(f(a)+f(b))")

	got, err = quadrature.SingleIntervalRule(f, a, b, quadrature.Simpson)
	require.NoError(t, err)
	assert.InDelta(t, 14.0, got, exactTol, "simpson = (b-a)/6·(f(a)+4f(mid)+f(b))")
}

// TestSingleIntervalRule_UnsupportedRule checks the catalog boundary:
// every (k, closed) pair and Gauss order outside the fixed tables.
func TestSingleIntervalRule_UnsupportedRule(t *testing.T) {
	f := monomial(1)

	invalid := []quadrature.Rule{
		quadrature.NewtonCotes(2, false), // open 2-point is not in the catalog
		quadrature.NewtonCotes(3, false),
		quadrature.NewtonCotes(4, true),
		quadrature.NewtonCotes(5, true),
		quadrature.NewtonCotes(0, true),
		quadrature.GaussLegendre(0),
		quadrature.GaussLegendre(6),
		{Family: quadrature.Family(42), K: 1},
	}

	for _, rule := range invalid {
		_, err := quadrature.SingleIntervalRule(f, 0, 1, rule)
		assert.ErrorIs(t, err, quadrature.ErrUnsupportedRule, "rule %v must be rejected", rule)
	}
}

// TestSingleIntervalRule_InvalidInput checks argument validation and
// that no rule evaluation touches the integrand on a rejected call.
func TestSingleIntervalRule_InvalidInput(t *testing.T) {
	calls := 0
	counting := func(x float64) float64 { calls++; return x }

	_, err := quadrature.SingleIntervalRule(nil, 0, 1, quadrature.Simpson)
	assert.ErrorIs(t, err, quadrature.ErrInvalidArgument, "nil integrand must error")

	_, err = quadrature.SingleIntervalRule(counting, 1, 0, quadrature.Simpson)
	assert.ErrorIs(t, err, quadrature.ErrInvalidArgument, "reversed interval must error")

	_, err = quadrature.SingleIntervalRule(counting, 0, 1, quadrature.NewtonCotes(5, true))
	assert.ErrorIs(t, err, quadrature.ErrUnsupportedRule)

	assert.Zero(t, calls, "integrand must not be evaluated on any error path")
}
