package factorize_test

import (
	"fmt"

	"github.com/katalvlaran/lvlnum/factorize"
)

// ExampleFactors decomposes 360 into its prime factors.
func ExampleFactors() {
	factors, err := factorize.Factors(360)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(factors)
	// Output:
	// [2 2 2 3 3 5]
}

// ExampleIsPrime checks a Mersenne prime and its neighbor.
func ExampleIsPrime() {
	fmt.Println(factorize.IsPrime(8191), factorize.IsPrime(8193))
	// Output:
	// true false
}
