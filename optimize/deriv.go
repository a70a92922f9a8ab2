// Package optimize - finite-difference stencils.
//
// Central differences only: the symmetric stencils are exact for
// quadratics, which keeps the fallback Newton iteration honest near a
// minimum where the objective is locally quadratic anyway.
package optimize

// centralDiff approximates f'(x) with the two-point symmetric stencil
// (f(x+h) - f(x-h)) / 2h. Error O(h²).
func centralDiff(f Objective, x, h float64) float64 {
	return (f(x+h) - f(x-h)) / (2 * h)
}

// secondDiff approximates f''(x) with the three-point stencil
// (f(x+h) - 2f(x) + f(x-h)) / h². Error O(h²).
func secondDiff(f Objective, x, h float64) float64 {
	return (f(x+h) - 2*f(x) + f(x-h)) / (h * h)
}

// gradCentral fills dst with the central-difference gradient of f at x,
// probing one coordinate at a time. len(dst) == len(x).
func gradCentral(f VectorObjective, x []float64, h float64, dst []float64) {
	probe := append([]float64(nil), x...)
	for i := range x {
		probe[i] = x[i] + h
		fPlus := f(probe)
		probe[i] = x[i] - h
		fMinus := f(probe)
		probe[i] = x[i]
		dst[i] = (fPlus - fMinus) / (2 * h)
	}
}
