package riskclass

import (
	"github.com/suhasg-simmrs/simm-rs/internal/bucket"
	"github.com/suhasg-simmrs/simm-rs/internal/crif"
	"github.com/suhasg-simmrs/simm-rs/internal/simmparams"
)

// irVega computes the Rates/Vega charge (spec.md §4.4 "IR-Vega"). Shape
// matches irDelta's cross-currency combine exactly; only the per-element
// weighting (VCR instead of CR, IR_VRW instead of per-tenor RW) and the
// per-pair correlation table (RateVegaTenorCorr) differ.
func irVega(view crif.View, p simmparams.Provider, ccy string) float64 {
	rows := view.Filter(crif.ColumnIn(func(r crif.Row) string { return string(r.RiskType) },
		string(crif.RiskIRVol), string(crif.RiskInflationVol))).Rows()
	if len(rows) == 0 {
		return 0
	}

	currencies := orderedQualifiers(rows)
	results := make([]irCurrency, 0, len(currencies))
	for _, q := range currencies {
		qRows := filterByQualifier(rows, q)
		vcr := concentrationFactor(sumAmounts(qRows), p.T(crif.Rates, crif.Vega, q))

		els := buildIRVolElements(qRows, p, vcr)
		k := bucket.Vega(els, irVegaPair(p))
		s := clampToK(sumWS(els), k)
		results = append(results, irCurrency{k: k, s: s, cr: vcr})
	}

	return combineCrossCurrency(results, p.IRGammaDiffCcy())
}

// buildIRVolElements groups Risk_IRVol rows by tenor and Risk_InflationVol
// rows under the Inf pseudo-tenor, scaling each by the scalar IR vega risk
// weight and the currency's vega concentration factor.
func buildIRVolElements(rows []crif.Row, p simmparams.Provider, vcr float64) []bucket.Element {
	sums := make(map[crif.Tenor]float64)
	var order []crif.Tenor
	for _, r := range rows {
		if r.RiskType != crif.RiskIRVol {
			continue
		}
		t := r.Tenor()
		if _, seen := sums[t]; !seen {
			order = append(order, t)
		}
		if r.HasAmount {
			sums[t] += r.AmountUSD
		}
	}

	vrw := p.RatesVegaRW()
	els := make([]bucket.Element, 0, len(order)+1)
	for _, t := range order {
		els = append(els, bucket.Element{WS: vrw * sums[t] * vcr, Idx1: string(t), CR: vcr})
	}
	if infl := buildScalarRowElement(rows, crif.RiskInflationVol, crif.InfTenor, vrw, vcr); infl != nil {
		els = append(els, infl...)
	}
	return els
}

// irVegaPair implements IR-Vega's per-pair correlation: the Risk_IRVol
// tenor table, with the inflation pseudo-tenor correlated at 1 (scaled by
// the inflation sub-curve factor), matching the rates delta path's
// treatment of Inf in spec.md §4.3.
func irVegaPair(p simmparams.Provider) bucket.PairCorr {
	return func(a, b bucket.Element) (rho, phi, f float64) {
		if a.Idx1 == string(crif.InfTenor) || b.Idx1 == string(crif.InfTenor) {
			return 1, p.InflationCorr(), 1
		}
		return p.RateVegaTenorCorr(crif.Tenor(a.Idx1), crif.Tenor(b.Idx1)), 1, 1
	}
}
