package factorize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlnum/factorize"
)

// TestFactors_KnownDecompositions pins factorizations of assorted
// composites and primes.
func TestFactors_KnownDecompositions(t *testing.T) {
	cases := []struct {
		n    uint64
		want []uint64
	}{
		{2, []uint64{2}},
		{3, []uint64{3}},
		{4, []uint64{2, 2}},
		{12, []uint64{2, 2, 3}},
		{97, []uint64{97}},
		{360, []uint64{2, 2, 2, 3, 3, 5}},
		{1 << 20, repeat(2, 20)},
		{600851475143, []uint64{71, 839, 1471, 6857}},
	}

	for _, tc := range cases {
		got, err := factorize.Factors(tc.n)
		require.NoError(t, err, "n=%d", tc.n)
		assert.Equal(t, tc.want, got, "factors of %d", tc.n)
	}
}

// TestFactors_ProductInvariant checks that the factors multiply back to
// n and arrive in ascending prime order.
func TestFactors_ProductInvariant(t *testing.T) {
	for n := uint64(2); n <= 2000; n++ {
		factors, err := factorize.Factors(n)
		require.NoError(t, err, "n=%d", n)

		product := uint64(1)
		for i, f := range factors {
			assert.True(t, factorize.IsPrime(f), "factor %d of %d must be prime", f, n)
			if i > 0 {
				assert.GreaterOrEqual(t, f, factors[i-1], "factors of %d must ascend", n)
			}
			product *= f
		}
		assert.Equal(t, n, product, "factors of %d must multiply back", n)
	}
}

// TestFactors_OutOfDomain rejects 0 and 1.
func TestFactors_OutOfDomain(t *testing.T) {
	_, err := factorize.Factors(0)
	assert.ErrorIs(t, err, factorize.ErrOutOfDomain)

	_, err = factorize.Factors(1)
	assert.ErrorIs(t, err, factorize.ErrOutOfDomain)
}

// TestIsPrime_SmallRange cross-checks primality over a small range
// against a sieve.
func TestIsPrime_SmallRange(t *testing.T) {
	const limit = 500
	sieve := make([]bool, limit+1) // true = composite
	for p := 2; p*p <= limit; p++ {
		if sieve[p] {
			continue
		}
		for q := p * p; q <= limit; q += p {
			sieve[q] = true
		}
	}

	assert.False(t, factorize.IsPrime(0))
	assert.False(t, factorize.IsPrime(1))
	for n := 2; n <= limit; n++ {
		assert.Equal(t, !sieve[n], factorize.IsPrime(uint64(n)), "primality of %d", n)
	}
}

// repeat builds a slice of count copies of v.
func repeat(v uint64, count int) []uint64 {
	out := make([]uint64, count)
	for i := range out {
		out[i] = v
	}

	return out
}
