package quadrature

import "fmt"

// CompositeIntegral approximates ∫ab f(x)dx by splitting [a,b] into m
// equal subintervals, applying the rule to each, and summing the m panel
// estimates left to right with plain accumulation.
//
// The driver adds no failure modes of its own: ErrInvalidArgument from
// the partition (m < 1, a >= b, nil f) and ErrUnsupportedRule from the
// rule catalog propagate unchanged, and all validation happens before
// the first evaluation of f.
//
// Complexity: O(m) evaluations of f for Newton–Cotes, O(m·k) for
// Gauss–Legendre of order k.
func CompositeIntegral(f Func, a, b float64, m int, rule Rule) (float64, error) {
	if f == nil {
		return 0, fmt.Errorf("%w: nil integrand", ErrInvalidArgument)
	}
	if err := rule.validate(); err != nil {
		return 0, err
	}

	points, err := SubintervalPoints(a, b, m)
	if err != nil {
		return 0, err
	}

	var total float64
	for i := 1; i <= m; i++ {
		panel, err := SingleIntervalRule(f, points[i-1], points[i], rule)
		if err != nil {
			return 0, err
		}
		total += panel
	}

	return total, nil
}
