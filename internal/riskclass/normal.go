package riskclass

import "gonum.org/v1/gonum/stat/distuv"

var standardNormal = distuv.Normal{Mu: 0, Sigma: 1}

// normalQuantile returns Φ⁻¹(p) via gonum's standard-normal quantile
// function (curvature.go, fxvega paths), the idiomatic gonum way to get the
// inverse normal CDF rather than hand-rolling a rational approximation.
func normalQuantile(p float64) float64 {
	return standardNormal.Quantile(p)
}
