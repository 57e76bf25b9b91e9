package riskclass

import (
	"strings"

	"github.com/suhasg-simmrs/simm-rs/internal/bucket"
	"github.com/suhasg-simmrs/simm-rs/internal/crif"
	"github.com/suhasg-simmrs/simm-rs/internal/simmparams"
)

// fxVega computes the FX/Vega charge (spec.md §4.4 "Non-rates Vega", FX-Vol
// branch): one element per currency pair, weighted by FX_HVR·σ·VCR, where σ
// is derived from the pair's high-volatility categorisation.
func fxVega(view crif.View, p simmparams.Provider) float64 {
	volView := view.Filter(crif.ColumnIn(func(r crif.Row) string { return string(r.RiskType) }, string(crif.RiskFXVol)))
	rows := volView.Rows()
	pairs := volView.CurrencyPairList()
	if len(pairs) == 0 {
		return 0
	}

	els := make([]bucket.Element, 0, len(pairs))
	for _, pair := range pairs {
		pRows := filterByCurrencyPair(rows, pair)
		s := sumAmounts(pRows)
		vcr := concentrationFactor(s, p.T(crif.FX, crif.Vega, pair))
		sigma := sigmaFromRW(p.FXVolRW(fxPairVolGroup(pair)))
		els = append(els, bucket.Element{WS: p.FXHVR() * sigma * s * vcr, Idx1: pair, CR: vcr})
	}

	return bucket.Vega(els, func(a, b bucket.Element) (float64, float64, float64) {
		return p.FXVegaCorr(), 1, 1
	})
}

// fxPairVolGroup classifies a six-letter currency pair by the more volatile
// of its two three-letter halves (spec.md §4.4: "rw selected by the pair's
// high-volatility categorisation"). Ranking HighVol above RegularVol above
// LowVol matches the ordering the rates/FX risk-weight tables already
// impose (High > Regular > Low weight).
func fxPairVolGroup(pair string) simmparams.CurrencyVolGroup {
	if len(pair) != 6 {
		return simmparams.RegularVol
	}
	g1 := simmparams.ClassifyCurrency(pair[0:3])
	g2 := simmparams.ClassifyCurrency(pair[3:6])
	return maxVolGroup(g1, g2)
}

func maxVolGroup(a, b simmparams.CurrencyVolGroup) simmparams.CurrencyVolGroup {
	rank := func(g simmparams.CurrencyVolGroup) int {
		switch g {
		case simmparams.HighVol:
			return 2
		case simmparams.RegularVol:
			return 1
		default:
			return 0
		}
	}
	if rank(a) >= rank(b) {
		return a
	}
	return b
}

func filterByCurrencyPair(rows []crif.Row, pair string) []crif.Row {
	swapped := pair[3:6] + pair[0:3]
	out := make([]crif.Row, 0, len(rows))
	for _, r := range rows {
		q := strings.ToUpper(strings.TrimSpace(r.Qualifier))
		if q == pair || q == swapped {
			out = append(out, r)
		}
	}
	return out
}

// equityVega and commodityVega compute the Equity/Vega and Commodity/Vega
// charges (spec.md §4.4 "Non-rates Vega", Equity/Commodity-Vol branch):
// per bucket, per qualifier, VR = HVR·σ·s, scaled by VCR and the class's
// vega risk-weight multiplier; buckets combined via γ.
func equityVega(view crif.View, p simmparams.Provider) float64 {
	return bucketedNameVega(view, crif.RiskEquityVol, crif.Equity, p,
		p.EquityVegaRW, p.EquityIntraBucketCorr, p.EquityGamma,
		func(bucketNum int) float64 { return p.EquityVRW(bucketNum) }, p.EquityHVR())
}

func commodityVega(view crif.View, p simmparams.Provider) float64 {
	return bucketedNameVega(view, crif.RiskCommodityVol, crif.Commodity, p,
		p.CommodityVegaRW, p.CommodityIntraBucketCorr, p.CommodityGamma,
		func(int) float64 { return p.CommodityVRW() }, p.CommodityHVR())
}

func bucketedNameVega(
	view crif.View, rt crif.RiskType, rc crif.RiskClass, p simmparams.Provider,
	vegaRWFor func(int) (float64, bool),
	intraCorrFor func(int) (float64, bool),
	gammaFor func(int, int) (float64, bool),
	vrwFor func(int) float64,
	hvr float64,
) float64 {
	rows := view.Filter(crif.ColumnIn(func(r crif.Row) string { return string(r.RiskType) }, string(rt))).Rows()
	if len(rows) == 0 {
		return 0
	}
	numeric, order, residual := bucketsByNumber(rows)

	build := func(bucketRows []crif.Row) []bucket.Element {
		if len(bucketRows) == 0 {
			return nil
		}
		bucketNum := bucketRows[0].Bucket.Num()
		rw, ok := vegaRWFor(bucketNum)
		if !ok {
			return nil
		}
		sigma := sigmaFromRW(rw)
		vrw := vrwFor(bucketNum)
		crByQualifier := qualifierConcentration(bucketRows, rc, crif.Vega, p)
		qualifiers := orderedQualifiers(bucketRows)
		els := make([]bucket.Element, 0, len(qualifiers))
		for _, q := range qualifiers {
			s := sumAmounts(filterByQualifier(bucketRows, q))
			vcr := crByQualifier[q]
			vr := hvr * sigma * s * vcr * vrw
			els = append(els, bucket.Element{WS: vr, Idx1: q, CR: vcr})
		}
		return els
	}

	var groups []bucketGroup
	for _, n := range order {
		els := build(numeric[n])
		rho, _ := intraCorrFor(n)
		k := bucket.Vega(els, func(a, b bucket.Element) (float64, float64, float64) {
			return rho, 1, crossConcentration(a.CR, b.CR)
		})
		groups = append(groups, bucketGroup{num: n, k: k, s: clampToK(sumWS(els), k)})
	}

	resEls := build(residual)
	rhoRes, _ := intraCorrFor(0)
	kRes := bucket.Vega(resEls, func(a, b bucket.Element) (float64, float64, float64) {
		return rhoRes, 1, crossConcentration(a.CR, b.CR)
	})
	return combineBuckets(groups, kRes, gammaFor)
}

// creditVega and creditVegaNonQ compute Credit-Vol / Credit-Vol-NonQ (spec.md
// §4.4): per bucket, per (qualifier, sub-curve, tenor), VR = VRW·s·VCR.
func creditVega(view crif.View, p simmparams.Provider) float64 {
	return creditVegaFor(view, crif.CreditQ, crif.RiskCreditVol, p)
}

func creditVegaNonQ(view crif.View, p simmparams.Provider) float64 {
	return creditVegaFor(view, crif.CreditNonQ, crif.RiskCreditVolNonQ, p)
}

func creditVegaFor(view crif.View, rc crif.RiskClass, rt crif.RiskType, p simmparams.Provider) float64 {
	rows := view.Filter(crif.ColumnIn(func(r crif.Row) string { return string(r.RiskType) }, string(rt))).Rows()
	if len(rows) == 0 {
		return 0
	}
	numeric, order, residual := bucketsByNumber(rows)
	vrw := p.CreditVegaRW(rc)

	build := func(bucketRows []crif.Row) []bucket.Element {
		if len(bucketRows) == 0 {
			return nil
		}
		residual := bucketRows[0].Bucket.IsResidual()
		type key struct {
			qualifier string
			subCurve  string
			tenor     crif.Tenor
		}
		sums := make(map[key]float64)
		var order []key
		for _, r := range bucketRows {
			k := key{qualifier: r.Qualifier, subCurve: r.Label2, tenor: r.Tenor()}
			if _, seen := sums[k]; !seen {
				order = append(order, k)
			}
			if r.HasAmount {
				sums[k] += r.AmountUSD
			}
		}
		crByQualifier := qualifierConcentration(bucketRows, rc, crif.Vega, p)
		els := make([]bucket.Element, 0, len(order))
		for _, k := range order {
			idx1 := k.qualifier
			if residual {
				idx1 = "Res"
			}
			vcr := crByQualifier[k.qualifier]
			els = append(els, bucket.Element{WS: vrw * sums[k] * vcr, Idx1: idx1, CR: vcr})
		}
		return els
	}

	var groups []bucketGroup
	for _, n := range order {
		els := build(numeric[n])
		k := bucket.Vega(els, creditPair(rc, p))
		groups = append(groups, bucketGroup{num: n, k: k, s: clampToK(sumWS(els), k)})
	}
	resEls := build(residual)
	kRes := bucket.Vega(resEls, creditPair(rc, p))
	return combineBuckets(groups, kRes, func(b1, b2 int) (float64, bool) { return p.CreditGamma(rc, b1, b2) })
}
