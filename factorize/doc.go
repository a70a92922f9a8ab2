// Package factorize decomposes integers into prime factors by recursive
// smallest-divisor stripping, with a trial-division primality check.
//
// The routines are deterministic and allocation-light: Factors performs
// O(√n) divisions in the worst case (n prime), IsPrime the same. Inputs
// below 2 have no prime factorization and are rejected with ErrOutOfDomain.
//
//	factors, err := factorize.Factors(360)
//	// [2 2 2 3 3 5]
package factorize
