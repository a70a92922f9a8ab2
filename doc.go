// Package lvlnum is your in-memory toolbox for classic numerical
// methods — composite quadrature, 1-D and n-D minimization, and small
// number-theory utilities — with hardened, deterministic APIs.
//
// 🚀 What is lvlnum?
//
//	A modern, dependency-light library that brings together:
//		• Quadrature: Newton–Cotes (rectangular, midpoint, trapezoid,
//		  Simpson) and Gauss–Legendre rules up to order 5, composed over
//		  equal partitions of any finite interval
//		• Optimization: damped 1-D Newton descent, plus BFGS through the
//		  gonum optimize machinery
//		• Factorization: recursive prime factorization and trial-division
//		  primality testing
//
// ✨ Why choose lvlnum?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Deterministic – pure functions, no global state, no hidden randomness
//   - Extensible – rules are explicit values, integrands are plain funcs
//
// Everything is organized under three subpackages:
//
//	quadrature/ — node generation, single-interval rules, composite driver
//	optimize/   — Newton descent & BFGS minimization
//	factorize/  — prime factorization helpers
//
// Quick sketch:
//
//	    a ──┬──┬──┬──┬── b        ∫ab f ≈ Σi rule(f, [xi-1, xi])
//	        equal panels
//
// Dive into the per-package doc.go files for formulas, error contracts,
// and worked examples.
//
//	go get github.com/katalvlaran/lvlnum/quadrature
package lvlnum
