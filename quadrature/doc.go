// Package quadrature approximates definite integrals ∫ab f(x)dx with
// composite Newton–Cotes and Gauss–Legendre rules over equal partitions.
//
// 🚀 What is composite quadrature?
//
//	Split [a,b] into m equal panels, estimate the integral on each panel
//	with a fixed low-order rule, and sum the estimates.  The workhorse of:
//	  • Numerical analysis coursework & prototyping
//	  • Expected-value and normalization computations
//	  • Anywhere an antiderivative is unavailable in closed form
//
// ✨ Key features:
//   - Newton–Cotes panels: rectangular, midpoint, trapezoid, Simpson
//   - Gauss–Legendre panels of order 1–5 (fixed closed-form tables)
//   - Affine ChangeOfInterval utility to remap any integrand's domain
//   - Subinterval helpers: partition points and panel lookup
//   - Explicit, finite rule catalog — unsupported combinations are a
//     sentinel error, never a silent fallback
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlnum/quadrature"
//
//	val, err := quadrature.CompositeIntegral(math.Sin, 0, 10, 200, quadrature.Simpson)
//	if err != nil {
//	  // ErrInvalidArgument or ErrUnsupportedRule
//	}
//
// Accuracy (single panel of width h):
//
//   - Newton–Cotes with k points integrates degree ≤ k-1 exactly
//   - Gauss–Legendre of order k integrates degree ≤ 2k-1 exactly
//
// Every operation is pure and deterministic: no state survives a call,
// and concurrent calls are safe as long as the integrand itself is.
// Panel estimates are summed left-to-right with plain accumulation; no
// compensated summation is performed.
package quadrature
