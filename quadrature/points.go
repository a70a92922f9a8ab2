// Package quadrature - node generation and partition helpers.
//
// This file contains the point-generator layer: partitioning [a,b] into
// equal subintervals, locating the panel a point falls in, enumerating
// equally spaced nodes inside one panel, and the affine change of
// interval used to map canonical rules onto arbitrary intervals.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - Fail-fast validation with sentinel errors; no panics on user input.
//   - O(m) / O(k) time, output slice is the only allocation.
package quadrature

import (
	"fmt"
	"math"
)

// validateInterval rejects reversed, degenerate, or non-finite intervals.
func validateInterval(a, b float64) error {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return fmt.Errorf("%w: interval bounds must be finite, got [%g,%g]", ErrInvalidArgument, a, b)
	}
	if a >= b {
		return fmt.Errorf("%w: interval requires a < b, got [%g,%g]", ErrInvalidArgument, a, b)
	}

	return nil
}

// SubintervalPoints partitions [a,b] into m equal subintervals and
// returns the m+1 boundary points in increasing order: points[0]==a,
// points[m]==b, uniform spacing h=(b-a)/m.
//
// Errors: ErrInvalidArgument if m < 1 or the interval is invalid.
//
// Complexity: O(m) time, O(m) space.
func SubintervalPoints(a, b float64, m int) ([]float64, error) {
	if err := validateInterval(a, b); err != nil {
		return nil, err
	}
	if m < 1 {
		return nil, fmt.Errorf("%w: subinterval count must be >= 1, got %d", ErrInvalidArgument, m)
	}

	h := (b - a) / float64(m)
	points := make([]float64, m+1)
	for i := 0; i <= m; i++ {
		points[i] = a + float64(i)*h
	}
	// Pin the last point to b exactly so the partition closure is [a,b]
	// regardless of rounding in a + m*h.
	points[m] = b

	return points, nil
}

// SubintervalIndex returns the 1-based index (in 1..m) of the subinterval
// of the m-way equal partition of [a,b] that contains x.
//
// Boundary convention: a point sitting exactly on the shared boundary of
// panels i and i+1 belongs to panel i (right boundaries are inclusive).
// Points below a or above b clamp to panel 1 or m respectively rather
// than erroring - floating-point noise at the interval ends must not
// break panel lookup.
//
// Errors: ErrInvalidArgument if m < 1 or the interval is invalid.
func SubintervalIndex(x, a, b float64, m int) (int, error) {
	if err := validateInterval(a, b); err != nil {
		return 0, err
	}
	if m < 1 {
		return 0, fmt.Errorf("%w: subinterval count must be >= 1, got %d", ErrInvalidArgument, m)
	}

	h := (b - a) / float64(m)
	i := int(math.Ceil((x - a) / h))
	if i < 1 {
		i = 1
	}
	if i > m {
		i = m
	}

	return i, nil
}

// WithinSubintervalPoints returns k equally spaced points inside [a,b].
//
// closed=true: the k points include both endpoints, spaced at
// h=(b-a)/(k-1); requires k >= 2 (a closed single node is ambiguous -
// callers wanting one interior node use the open branch).
// closed=false: the k points exclude both endpoints, spaced at
// h=(b-a)/(k+1) starting from a+h; k=1 yields the midpoint.
//
// Errors: ErrInvalidArgument on an invalid interval, k < 1, or a closed
// request with k == 1.
func WithinSubintervalPoints(a, b float64, k int, closed bool) ([]float64, error) {
	if err := validateInterval(a, b); err != nil {
		return nil, err
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: point count must be >= 1, got %d", ErrInvalidArgument, k)
	}

	points := make([]float64, k)
	if closed {
		if k < 2 {
			return nil, fmt.Errorf("%w: closed node set requires k >= 2, got %d", ErrInvalidArgument, k)
		}
		h := (b - a) / float64(k-1)
		for i := 0; i < k; i++ {
			points[i] = a + float64(i)*h
		}
		points[k-1] = b

		return points, nil
	}

	h := (b - a) / float64(k+1)
	for i := 0; i < k; i++ {
		points[i] = a + float64(i+1)*h
	}

	return points, nil
}

// ChangeOfInterval remaps f's domain from [a,b] onto [c,d] with the
// affine substitution x = a + (b-a)/(d-c)·(y-c), returning
//
//	g(y) = (b-a)/(d-c) · f(a + (b-a)/(d-c)·(y-c))
//
// so that ∫ab f(x)dx == ∫cd g(y)dy exactly (the Jacobian factor is part
// of g). The rule evaluators use it to carry the canonical [-1,1]
// Gauss–Legendre tables onto arbitrary panels; it is exported because it
// is independently useful to any caller wanting to remap a function's
// domain.
func ChangeOfInterval(f Func, a, b, c, d float64) Func {
	scale := (b - a) / (d - c)

	return func(y float64) float64 {
		return scale * f(a+scale*(y-c))
	}
}
