// Package bucket implements the Bucket-Level Aggregator (spec.md §4.3): the
// shared K = √(Σ WSᵢ² + Σᵢ≠ⱼ ρᵢⱼφᵢⱼfᵢⱼWSᵢWSⱼ) quadratic reduction that every
// risk-class path in internal/riskclass funnels its weighted sensitivities
// through. The per-path correlation selection (rates tenor-tenor, credit
// same/different-name, FX high-vol tables, ...) lives in internal/riskclass,
// which knows about the parameter provider; this package only knows the
// algebra.
package bucket

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Element is one weighted sensitivity contributing to a bucket's K. WS holds
// the weighted delta/vega sensitivity, or the CVR value for the curvature
// kernel. Idx1/Idx2/SubCurve are opaque labels the caller's PairCorr callback
// interprets; CR is the element's concentration factor (1 when not
// applicable).
type Element struct {
	WS       float64
	Idx1     string
	Idx2     string
	SubCurve string
	CR       float64
}

// PairCorr returns the correlation ρ, sub-curve/category factor φ, and
// concentration factor f for an ordered pair of elements. Called once per
// unordered pair; callers need not handle i==j.
type PairCorr func(a, b Element) (rho, phi, f float64)

// reduce computes the generic quadratic form over els using gonum's
// symmetric matrix type to hold the pairwise coefficients (grounded on the
// teacher's covariance-matrix construction in its portfolio-risk code),
// squaring rho (and, for curvature, leaving phi unsquared) per the caller's
// squareRho flag. Edge policies: empty input returns 0; a single element
// returns its absolute WS without consulting pair at all.
func reduce(els []Element, pair PairCorr, squareRho bool) float64 {
	n := len(els)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return absFloat(els[0].WS)
	}

	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		m.SetSym(i, i, els[i].WS*els[i].WS)
		for j := i + 1; j < n; j++ {
			rho, phi, f := pair(els[i], els[j])
			if squareRho {
				rho = rho * rho
			}
			cross := rho * phi * f * els[i].WS * els[j].WS
			// SymDense stores one triangle; off-diagonal entries are shared
			// by both (i,j) and (j,i), so the cross term is written once
			// and implicitly doubled when the full sum is taken below.
			m.SetSym(i, j, cross)
		}
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += m.At(i, i)
		for j := i + 1; j < n; j++ {
			sum += 2 * m.At(i, j)
		}
	}
	if sum < 0 {
		// Guards against a pathological negative quadratic form from
		// out-of-range correlation input (spec.md §4.3: "all ρ assumed in
		// [-1,1], not re-validated") rather than returning NaN from Sqrt.
		sum = 0
	}
	return math.Sqrt(sum)
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
