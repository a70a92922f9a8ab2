package quadrature

import "fmt"

// SingleIntervalRule returns one scalar estimate of ∫ab f(x)dx using the
// given rule on the whole interval (a single panel).
//
// Newton–Cotes rules use their closed forms directly:
//
//	midpoint     (b-a)·f((a+b)/2)
//	rectangular  (b-a)·f(a)
//	trapezoid    (b-a)/2·(f(a)+f(b))
//	Simpson      (b-a)/6·(f(a)+4·f((a+b)/2)+f(b))
//
// Gauss–Legendre rules remap f from [a,b] onto the canonical [-1,1] via
// ChangeOfInterval (which carries the Jacobian factor) and accumulate
// Σ wᵢ·g(xᵢ) over the fixed order-k table.
//
// Errors: ErrInvalidArgument (nil f, bad interval) or ErrUnsupportedRule;
// both are detected before f is evaluated.
//
// Complexity: O(k) evaluations of f.
func SingleIntervalRule(f Func, a, b float64, rule Rule) (float64, error) {
	if f == nil {
		return 0, fmt.Errorf("%w: nil integrand", ErrInvalidArgument)
	}
	if err := validateInterval(a, b); err != nil {
		return 0, err
	}
	if err := rule.validate(); err != nil {
		return 0, err
	}

	if rule.Family == FamilyGaussLegendre {
		return gaussPanel(f, a, b, rule.K), nil
	}

	return newtonCotesPanel(f, a, b, rule), nil
}

// newtonCotesPanel evaluates one validated Newton–Cotes rule on [a,b].
func newtonCotesPanel(f Func, a, b float64, rule Rule) float64 {
	width := b - a
	switch {
	case rule.K == 1 && !rule.Closed: // midpoint
		return width * f((a+b)/2)
	case rule.K == 1: // rectangular
		return width * f(a)
	case rule.K == 2: // trapezoid
		return width / 2 * (f(a) + f(b))
	default: // Simpson, rule.K == 3
		return width / 6 * (f(a) + 4*f((a+b)/2) + f(b))
	}
}

// gaussPanel evaluates the validated order-k Gauss–Legendre rule on [a,b].
// The Jacobian of the interval change is inside g, so the weighted sum is
// already the estimate of ∫ab f.
func gaussPanel(f Func, a, b float64, k int) float64 {
	g := ChangeOfInterval(f, a, b, glCanonicalLo, glCanonicalHi)

	var sum float64
	nodes, weights := glNodes[k], glWeights[k]
	for i := range nodes {
		sum += weights[i] * g(nodes[i])
	}

	return sum
}
