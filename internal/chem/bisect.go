package chem

import "math"

// Numeric constants shared by the regime algorithms.
const (
	// Kw is the water autoionization constant at 25 degrees C.
	Kw = 1e-14

	// bisectIters fixes the bisection depth. Halving the [1e-14, 1]
	// bracket geometrically 150 times narrows it far below double
	// precision, so the loop needs no convergence test.
	bisectIters = 150

	// hMin and hMax bracket every physical [H+] the solver handles.
	hMin = 1e-14
	hMax = 1.0

	// neutralPH is the fallback for degenerate input.
	neutralPH = 7.0

	// eqZone is the half-width of the equivalence-zone band as a
	// fraction of total analyte moles.
	eqZone = 0.005

	// strongTol is the absolute mole tolerance inside which a
	// strong/strong titration counts as exactly neutralized.
	strongTol = 1e-10

	// epsMoles floors species amounts before they are used as
	// denominators or passed to equilibrium formulas.
	epsMoles = 1e-12

	// tinyConc floors concentrations before taking log10.
	tinyConc = 1e-15
)

// bisectLog finds the [H+] root of a monotonically increasing score
// function over [hMin, hMax] by log-space bisection. The midpoint is the
// geometric mean, so each step halves the bracket in decades rather than
// absolute terms.
//
// The score must be negative below the root and positive above it. If
// the root lies outside the bracket the result saturates at a bracket
// edge, which clampPH then maps to a boundary pH.
func bisectLog(score func(h float64) float64) float64 {
	lo, hi := hMin, hMax
	for i := 0; i < bisectIters; i++ {
		mid := math.Sqrt(lo * hi)
		if score(mid) > 0 {
			hi = mid
		} else {
			lo = mid
		}
	}
	return math.Sqrt(lo * hi)
}

// posQuadRoot returns the non-negative root of ax^2 + bx + c = 0.
// A negative discriminant or a negative root yields 0 rather than NaN;
// neither occurs for physical equilibrium inputs.
func posQuadRoot(a, b, c float64) float64 {
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0
	}
	root := (-b + math.Sqrt(disc)) / (2 * a)
	if root < 0 {
		return 0
	}
	return root
}

// clampPH saturates a pH reading to [0, 14]. NaN (possible only from
// pathological caller input) maps to neutral.
func clampPH(ph float64) float64 {
	if math.IsNaN(ph) {
		return neutralPH
	}
	if ph < 0 {
		return 0
	}
	if ph > 14 {
		return 14
	}
	return ph
}

// pKtoK converts a pK exponent to its equilibrium constant.
func pKtoK(pk float64) float64 {
	return math.Pow(10, -pk)
}

// phFromH converts [H+] to pH with a floor against log of zero.
func phFromH(h float64) float64 {
	return clampPH(-math.Log10(math.Max(h, tinyConc)))
}

// phFromOH converts [OH-] to pH with the same floor.
func phFromOH(oh float64) float64 {
	return clampPH(14 + math.Log10(math.Max(oh, tinyConc)))
}
