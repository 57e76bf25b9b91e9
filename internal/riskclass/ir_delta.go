package riskclass

import (
	"math"

	"github.com/suhasg-simmrs/simm-rs/internal/bucket"
	"github.com/suhasg-simmrs/simm-rs/internal/crif"
	"github.com/suhasg-simmrs/simm-rs/internal/simmparams"
	"github.com/suhasg-simmrs/simm-rs/internal/utils"
)

// irCurrency holds the per-currency intermediate results the cross-currency
// combine in irDelta needs.
type irCurrency struct {
	k  float64
	s  float64
	cr float64
}

// irDelta computes the Rates/Delta charge (spec.md §4.4 "IR-Delta").
func irDelta(view crif.View, p simmparams.Provider, ccy string) float64 {
	rows := view.Filter(crif.ColumnIn(func(r crif.Row) string { return string(r.RiskType) },
		string(crif.RiskIRCurve), string(crif.RiskInflation), string(crif.RiskXCcyBasis))).Rows()
	if len(rows) == 0 {
		return 0
	}

	currencies := orderedQualifiers(rows)
	results := make([]irCurrency, 0, len(currencies))

	for _, q := range currencies {
		qRows := filterByQualifier(rows, q)
		cr := concentrationFactor(sumExcluding(qRows, crif.RiskXCcyBasis), p.T(crif.Rates, crif.Delta, q))

		els := buildIRCurveElements(qRows, p, cr)
		els = append(els, buildScalarRowElement(qRows, crif.RiskInflation, crif.InfTenor, p.InflationRW(), cr)...)
		els = append(els, buildScalarRowElement(qRows, crif.RiskXCcyBasis, crif.XCcyTenor, p.CCyBasisSwapSpreadRW(), cr)...)

		k := bucket.Delta(els, ratesDeltaPair(p))
		s := clampToK(sumWS(els), k)
		results = append(results, irCurrency{k: k, s: s, cr: cr})
	}

	return combineCrossCurrency(results, p.IRGammaDiffCcy())
}

// buildIRCurveElements groups Risk_IRCurve rows by (sub-curve, tenor) and
// converts each group's summed amount into a weighted sensitivity.
func buildIRCurveElements(rows []crif.Row, p simmparams.Provider, cr float64) []bucket.Element {
	type key struct{ subCurve string; tenor crif.Tenor }
	sums := make(map[key]float64)
	var order []key
	for _, r := range rows {
		if r.RiskType != crif.RiskIRCurve {
			continue
		}
		k := key{subCurve: r.Label2, tenor: r.Tenor()}
		if _, seen := sums[k]; !seen {
			order = append(order, k)
		}
		if r.HasAmount {
			sums[k] += r.AmountUSD
		}
	}

	group := ClassifyGroup(rows)
	els := make([]bucket.Element, 0, len(order))
	for _, k := range order {
		rw, err := p.RatesRW(group, k.tenor)
		if err != nil {
			continue
		}
		s := sums[k]
		els = append(els, bucket.Element{WS: rw * s * cr, Idx1: string(k.tenor), SubCurve: k.subCurve, CR: cr})
	}
	return els
}

// buildScalarRowElement sums every row of the given risk type into a single
// weighted-sensitivity element tagged with the pseudo-tenor label.
func buildScalarRowElement(rows []crif.Row, rt crif.RiskType, label crif.Tenor, rw, cr float64) []bucket.Element {
	var sum float64
	var found bool
	for _, r := range rows {
		if r.RiskType != rt {
			continue
		}
		found = true
		if r.HasAmount {
			sum += r.AmountUSD
		}
	}
	if !found {
		return nil
	}
	return []bucket.Element{{WS: rw * sum * cr, Idx1: string(label), CR: cr}}
}

// ClassifyGroup classifies a currency's volatility group from its rows'
// shared Qualifier.
func ClassifyGroup(rows []crif.Row) simmparams.CurrencyVolGroup {
	if len(rows) == 0 {
		return simmparams.RegularVol
	}
	return simmparams.ClassifyCurrency(rows[0].Qualifier)
}

// ratesDeltaPair implements the Rates path of the delta kernel's per-pair
// correlation (spec.md §4.3).
func ratesDeltaPair(p simmparams.Provider) bucket.PairCorr {
	return func(a, b bucket.Element) (rho, phi, f float64) {
		switch {
		case a.Idx1 == string(crif.XCcyTenor) || b.Idx1 == string(crif.XCcyTenor):
			rho = 1
			phi = p.CCyBasisSpreadCorr()
		case a.Idx1 == string(crif.InfTenor) || b.Idx1 == string(crif.InfTenor):
			rho = 1
			phi = p.InflationCorr()
		default:
			rho = p.RateTenorCorr(crif.Tenor(a.Idx1), crif.Tenor(b.Idx1))
			if a.SubCurve == b.SubCurve {
				phi = 1
			} else {
				phi = p.SubCurvesCorr()
			}
		}
		return rho, phi, 1
	}
}

func filterByQualifier(rows []crif.Row, q string) []crif.Row {
	out := make([]crif.Row, 0, len(rows))
	for _, r := range rows {
		if r.Qualifier == q {
			out = append(out, r)
		}
	}
	return out
}

// sumExcluding sums HasAmount rows whose RiskType is not excl.
func sumExcluding(rows []crif.Row, excl crif.RiskType) float64 {
	var sum float64
	for _, r := range rows {
		if r.RiskType == excl || !r.HasAmount {
			continue
		}
		sum += r.AmountUSD
	}
	return sum
}

func sumWS(els []bucket.Element) float64 {
	var sum float64
	for _, e := range els {
		sum += e.WS
	}
	return sum
}

func clampToK(s, k float64) float64 {
	return utils.Clamp(s, -k, k)
}

// combineCrossCurrency implements spec.md §4.4's
// K = √(Σ K_b² + Σ_{b≠c} γ·g_bc·S_b·S_c), where γ is gammaDiffCcy when more
// than one currency is present and 1 otherwise.
func combineCrossCurrency(results []irCurrency, gammaDiffCcy float64) float64 {
	if len(results) == 0 {
		return 0
	}
	if len(results) == 1 {
		return results[0].k
	}
	gamma := gammaDiffCcy

	var sum float64
	for i, a := range results {
		sum += a.k * a.k
		for j := i + 1; j < len(results); j++ {
			b := results[j]
			g := crossConcentration(a.cr, b.cr)
			sum += 2 * gamma * g * a.s * b.s
		}
	}
	if sum < 0 {
		sum = 0
	}
	return math.Sqrt(sum)
}
