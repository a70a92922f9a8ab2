package factorize

import (
	"errors"
	"fmt"
)

// ErrOutOfDomain is returned for arguments below 2, which have no prime
// factorization.
var ErrOutOfDomain = errors.New("factorize: argument must be >= 2")

// Factors returns the prime factorization of n in ascending order, with
// repeated primes listed once per multiplicity: Factors(360) yields
// [2 2 2 3 3 5], and the product of the result is always n.
//
// Errors: ErrOutOfDomain if n < 2.
//
// Complexity: O(√n) divisions in the worst case.
func Factors(n uint64) ([]uint64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrOutOfDomain, n)
	}

	return appendFactors(nil, n), nil
}

// IsPrime reports whether n is prime, by trial division.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}

	return smallestDivisor(n) == n
}

// appendFactors strips the smallest prime divisor of n onto acc and
// recurses on the quotient until the quotient itself is prime.
func appendFactors(acc []uint64, n uint64) []uint64 {
	d := smallestDivisor(n)
	acc = append(acc, d)
	if d == n {
		return acc
	}

	return appendFactors(acc, n/d)
}

// smallestDivisor returns the least divisor of n greater than 1, which
// is necessarily prime. n must be >= 2.
func smallestDivisor(n uint64) uint64 {
	if n%2 == 0 {
		return 2
	}
	for d := uint64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return d
		}
	}

	return n
}
