package portfolio

import (
	"math"

	"github.com/suhasg-simmrs/simm-rs/internal/crif"
	"github.com/suhasg-simmrs/simm-rs/internal/riskclass"
	"github.com/suhasg-simmrs/simm-rs/internal/simmparams"
)

// Aggregate is the Portfolio Aggregator's single entry point (spec.md
// §4.5): for each product class independently, it runs the Risk-Class
// Aggregator, applies the exchange-rate multiplier, combines the six
// risk-class charges via the cross-class ψ matrix, sums over products, and
// adds the add-on term.
func Aggregate(table crif.Table, p simmparams.Provider, ccy string, exchangeRate float64) Result {
	products := table.View().ProductList()

	simmByProduct := make(map[string]float64, len(products))
	var rows []BreakdownRow

	for _, product := range products {
		view := table.ByProductClass(product)
		charges := riskclass.Aggregate(view, p, ccy)

		imByClass := make(map[crif.RiskClass]float64)
		for _, rc := range crif.AllRiskClasses() {
			for _, m := range []crif.Measure{crif.Delta, crif.Vega, crif.Curvature, crif.BaseCorr} {
				v, ok := charges[riskclass.ClassMeasure{Class: rc, Measure: m}]
				if !ok || v == 0 {
					continue
				}
				scaled := v * exchangeRate
				imByClass[rc] += scaled
				rows = append(rows, BreakdownRow{
					ProductClass:    product,
					RiskClass:       rc.String(),
					RiskMeasure:     m.String(),
					SIMMRiskMeasure: scaled,
				})
			}
		}

		simmP := combineCrossClass(imByClass, p)
		simmByProduct[product] = simmP

		for i := range rows {
			if rows[i].ProductClass == product {
				rows[i].SIMMProductClass = simmP
				rows[i].SIMMRiskClass = imByClass[riskClassFromString(rows[i].RiskClass)]
			}
		}
	}

	var simmTotal float64
	for _, v := range simmByProduct {
		simmTotal += v
	}

	addOnValue := addOn(table.View(), simmByProduct)
	total := simmTotal + addOnValue

	finalRow := BreakdownRow{SIMMTotal: &total}
	if addOnValue != 0 {
		finalRow.AddOn = &addOnValue
	}
	rows = append(rows, finalRow)

	return Result{Total: total, Breakdown: rows}
}

// combineCrossClass implements spec.md §4.5's
// SIMM_P = √(Σ_{i,j} ψ(rc_i,rc_j)·IM_P(rc_i)·IM_P(rc_j)), iterating the six
// risk classes in the fixed order crif.AllRiskClasses returns (Design Note
// in spec.md §9: fixed ordering keeps summation deterministic).
func combineCrossClass(im map[crif.RiskClass]float64, p simmparams.Provider) float64 {
	classes := crif.AllRiskClasses()
	var sum float64
	for _, a := range classes {
		for _, b := range classes {
			sum += p.Psi(a, b) * im[a] * im[b]
		}
	}
	if sum < 0 {
		sum = 0
	}
	return math.Sqrt(sum)
}

func riskClassFromString(s string) crif.RiskClass {
	for _, rc := range crif.AllRiskClasses() {
		if rc.String() == s {
			return rc
		}
	}
	return 0
}
