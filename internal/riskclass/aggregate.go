package riskclass

import (
	"github.com/suhasg-simmrs/simm-rs/internal/crif"
	"github.com/suhasg-simmrs/simm-rs/internal/simmparams"
)

// Aggregate runs every specialised risk-class path over view and returns
// the non-zero (risk class, measure) charges (spec.md §4.4). view is
// expected to already be scoped to one product class; the caller
// (internal/portfolio) calls Aggregate once per product class.
func Aggregate(view crif.View, p simmparams.Provider, ccy string) map[ClassMeasure]float64 {
	out := make(map[ClassMeasure]float64)
	set := func(rc crif.RiskClass, m crif.Measure, v float64) {
		if v != 0 {
			out[ClassMeasure{Class: rc, Measure: m}] = v
		}
	}

	set(crif.Rates, crif.Delta, irDelta(view, p, ccy))
	set(crif.FX, crif.Delta, fxDelta(view, p, ccy))
	set(crif.CreditQ, crif.Delta, creditDelta(view, crif.CreditQ, crif.RiskCreditQ, p))
	set(crif.CreditNonQ, crif.Delta, creditDelta(view, crif.CreditNonQ, crif.RiskCreditNonQ, p))
	set(crif.Equity, crif.Delta, equityDelta(view, p))
	set(crif.Commodity, crif.Delta, commodityDelta(view, p))

	set(crif.Rates, crif.Vega, irVega(view, p, ccy))
	set(crif.FX, crif.Vega, fxVega(view, p))
	set(crif.CreditQ, crif.Vega, creditVega(view, p))
	set(crif.CreditNonQ, crif.Vega, creditVegaNonQ(view, p))
	set(crif.Equity, crif.Vega, equityVega(view, p))
	set(crif.Commodity, crif.Vega, commodityVega(view, p))

	set(crif.Rates, crif.Curvature, irCurvature(view, p, ccy))
	set(crif.FX, crif.Curvature, fxCurvature(view, p))
	set(crif.CreditQ, crif.Curvature, creditCurvature(view, p))
	set(crif.CreditNonQ, crif.Curvature, creditCurvatureNonQ(view, p))
	set(crif.Equity, crif.Curvature, equityCurvature(view, p))
	set(crif.Commodity, crif.Curvature, commodityCurvature(view, p))

	set(crif.CreditQ, crif.BaseCorr, baseCorr(view, p))

	return out
}
