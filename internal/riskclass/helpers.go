// Package riskclass implements the Risk-Class Aggregator (spec.md §4.4):
// one specialised path per risk-class/measure combination, each building
// weighted sensitivities from raw CRIF amounts and version-specific
// parameters, then delegating the quadratic reduction to internal/bucket.
package riskclass

import (
	"math"

	"github.com/suhasg-simmrs/simm-rs/internal/crif"
	"github.com/suhasg-simmrs/simm-rs/internal/utils"
)

// ClassMeasure keys the aggregator's output map.
type ClassMeasure struct {
	Class   crif.RiskClass
	Measure crif.Measure
}

// concentrationFactor implements CR = max(1, sqrt(|sum|/threshold)).
// threshold <= 0 is treated as "no concentration effect" (CR=1), guarding
// against a misconfigured or absent locus-specific threshold.
func concentrationFactor(sum, threshold float64) float64 {
	if threshold <= 0 {
		return 1
	}
	ratio := math.Sqrt(math.Abs(sum) / threshold)
	if ratio < 1 {
		return 1
	}
	return ratio
}

// crossConcentration implements g = min(a,b)/max(a,b), per spec.md §4.3/4.4.
// Two zero factors (never produced by concentrationFactor, which floors at
// 1) would divide by zero; guarded defensively.
func crossConcentration(a, b float64) float64 {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi == 0 {
		return 1
	}
	return lo / hi
}

// orderedQualifiers returns the distinct Qualifier values of rows, in
// first-appearance order (spec.md §9's determinism Design Note).
func orderedQualifiers(rows []crif.Row) []string {
	values := make([]string, 0, len(rows))
	for _, r := range rows {
		values = append(values, r.Qualifier)
	}
	return utils.OrderedUnique(values)
}

// invNormal returns Φ⁻¹(p), the standard normal quantile function, used by
// the FX/equity/commodity vega sigma formula and the curvature λ formula.
func invNormal(p float64) float64 {
	return normalQuantile(p)
}

// sigmaFromRW implements σ = rw · √(365/14) / Φ⁻¹(0.99), the volatility
// input shared by the FX, equity and commodity vega paths (spec.md §4.4).
func sigmaFromRW(rw float64) float64 {
	return rw * math.Sqrt(365.0/14.0) / invNormal(0.99)
}

// curvatureScale implements spec.md §4.4's scaling_func(t): 0.5 for the "2w"
// tenor, otherwise 0.5 · min(1, 14/days(t)).
func curvatureScale(t crif.Tenor) float64 {
	if t == "2w" {
		return 0.5
	}
	d, ok := tenorDays[t]
	if !ok || d <= 0 {
		return 0.5
	}
	ratio := 14.0 / d
	if ratio > 1 {
		ratio = 1
	}
	return 0.5 * ratio
}

// tenorDays maps each canonical tenor (plus the Inf/XCcy pseudo-tenors) to a
// calendar-day count, used only by curvatureScale.
var tenorDays = map[crif.Tenor]float64{
	"2w": 14, "1m": 365.0 / 12, "3m": 365.0 / 4, "6m": 365.0 / 2,
	"1y": 365, "2y": 730, "3y": 1095, "5y": 1825, "10y": 3650,
	"15y": 5475, "20y": 7300, "30y": 10950,
	crif.InfTenor: 365, crif.XCcyTenor: 365,
}
