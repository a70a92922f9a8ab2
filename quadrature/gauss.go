// Package quadrature - fixed Gauss–Legendre tables.
//
// Nodes and weights for orders 1..5 on the canonical interval [-1,1],
// written out from their closed forms. Only these five orders exist;
// nothing is computed by root-finding at runtime, and extending the
// catalog means extending these tables.
package quadrature

import (
	"fmt"
	"math"
)

// Canonical Gauss–Legendre interval and supported order range.
const (
	glCanonicalLo = -1.0
	glCanonicalHi = 1.0
	glMinOrder    = 1
	glMaxOrder    = 5
)

// Closed-form node/weight constants. Each order's weights sum to 2, the
// measure of [-1,1].
var (
	gl2Node = 1.0 / math.Sqrt(3)

	gl3Node = math.Sqrt(3.0 / 5.0)

	gl4NodeInner   = math.Sqrt(3.0/7.0 - (2.0/7.0)*math.Sqrt(6.0/5.0))
	gl4NodeOuter   = math.Sqrt(3.0/7.0 + (2.0/7.0)*math.Sqrt(6.0/5.0))
	gl4WeightInner = (18.0 + math.Sqrt(30.0)) / 36.0
	gl4WeightOuter = (18.0 - math.Sqrt(30.0)) / 36.0

	gl5NodeInner   = math.Sqrt(5.0-2.0*math.Sqrt(10.0/7.0)) / 3.0
	gl5NodeOuter   = math.Sqrt(5.0+2.0*math.Sqrt(10.0/7.0)) / 3.0
	gl5WeightInner = (322.0 + 13.0*math.Sqrt(70.0)) / 900.0
	gl5WeightOuter = (322.0 - 13.0*math.Sqrt(70.0)) / 900.0
)

// glNodes[k] holds the order-k nodes in increasing order; glWeights[k]
// holds the matching weights. Index 0 is unused.
var glNodes = [glMaxOrder + 1][]float64{
	1: {0},
	2: {-gl2Node, gl2Node},
	3: {-gl3Node, 0, gl3Node},
	4: {-gl4NodeOuter, -gl4NodeInner, gl4NodeInner, gl4NodeOuter},
	5: {-gl5NodeOuter, -gl5NodeInner, 0, gl5NodeInner, gl5NodeOuter},
}

var glWeights = [glMaxOrder + 1][]float64{
	1: {2},
	2: {1, 1},
	3: {5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0},
	4: {gl4WeightOuter, gl4WeightInner, gl4WeightInner, gl4WeightOuter},
	5: {gl5WeightOuter, gl5WeightInner, 128.0 / 225.0, gl5WeightInner, gl5WeightOuter},
}

// GaussLegendreTable returns copies of the order-k nodes and weights on
// the canonical interval [-1,1], nodes in increasing order.
//
// Errors: ErrUnsupportedRule if k is outside 1..5.
func GaussLegendreTable(k int) (nodes, weights []float64, err error) {
	if k < glMinOrder || k > glMaxOrder {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedRule, GaussLegendre(k))
	}

	nodes = append([]float64(nil), glNodes[k]...)
	weights = append([]float64(nil), glWeights[k]...)

	return nodes, weights, nil
}
