package riskclass

import (
	"math"

	"github.com/suhasg-simmrs/simm-rs/internal/bucket"
	"github.com/suhasg-simmrs/simm-rs/internal/crif"
	"github.com/suhasg-simmrs/simm-rs/internal/simmparams"
)

// curvatureGroup is one bucket's (or, for Rates, one currency's) curvature
// intermediate result: K from the curvature kernel (ρ² already applied)
// plus the clamped signed sum S used by the cross-group combine.
type curvatureGroup struct {
	id int
	k  float64
	s  float64
}

// curvatureCrossTerm implements the √(Σ K² + Σ_{b≠c} γ²·S_b·S_c) term
// spec.md §4.4 describes for the curvature measure: identical in shape to
// combineBuckets, but gamma is squared at the combine step rather than
// inside the per-bucket kernel (the kernel only squares the intra-bucket
// ρ).
func curvatureCrossTerm(groups []curvatureGroup, gamma func(a, b int) (float64, bool)) float64 {
	if len(groups) == 0 {
		return 0
	}
	if len(groups) == 1 {
		return groups[0].k
	}
	var sum float64
	for i, a := range groups {
		sum += a.k * a.k
		for j := i + 1; j < len(groups); j++ {
			b := groups[j]
			g, ok := gamma(a.id, b.id)
			if !ok {
				continue
			}
			sum += 2 * g * g * a.s * b.s
		}
	}
	if sum < 0 {
		sum = 0
	}
	return math.Sqrt(sum)
}

// curvatureLambdaCharge applies spec.md §4.4's curvature formula to one
// θ/λ subset (numeric buckets, or Residual, computed separately per the
// spec's "Separate θ and λ for residual vs non-residual subsets when both
// are present"):
//
//	λ = (Φ⁻¹(0.995)² − 1)·(1+θ) − θ,   θ = min(0, ΣCVR/Σ|CVR|)
//	charge = max(0, ΣCVR + λ·crossTerm)
func curvatureLambdaCharge(cvrs []float64, crossTerm float64) float64 {
	if len(cvrs) == 0 {
		return 0
	}
	var sumCVR, sumAbs float64
	for _, c := range cvrs {
		sumCVR += c
		sumAbs += math.Abs(c)
	}
	theta := 0.0
	if sumAbs != 0 {
		theta = math.Min(0, sumCVR/sumAbs)
	}
	z := invNormal(0.995)
	lambda := (z*z-1)*(1+theta) - theta

	charge := sumCVR + lambda*crossTerm
	if charge < 0 {
		charge = 0
	}
	return charge
}

// irCurvature computes the Rates/Curvature charge (spec.md §4.4
// "Curvature"): per currency, CVR = scaling_func(tenor)·s over IR-vol and
// inflation-vol rows, combined cross-currency with γ² = IR_GAMMA_DIFF_CCY²,
// the result divided by IR_HVR². A currency whose only vol risk is
// inflation-vol, summing to zero, and matching the calculation currency
// contributes nothing at all (spec.md §4.4's special case).
func irCurvature(view crif.View, p simmparams.Provider, ccy string) float64 {
	rows := view.Filter(crif.ColumnIn(func(r crif.Row) string { return string(r.RiskType) },
		string(crif.RiskIRVol), string(crif.RiskInflationVol))).Rows()
	if len(rows) == 0 {
		return 0
	}

	pair := ratesDeltaPair(p) // rho/phi shape unchanged; the kernel squares rho, f stays 1

	var groups []curvatureGroup
	var allCVR []float64
	for i, q := range orderedQualifiers(rows) {
		qRows := filterByQualifier(rows, q)
		els := buildIRCurvatureElements(qRows)
		if isInflationOnlyZeroSum(qRows, els) && q == ccy {
			continue
		}
		k := bucket.Curvature(els, pair)
		s := clampToK(sumWS(els), k)
		groups = append(groups, curvatureGroup{id: i, k: k, s: s})
		allCVR = append(allCVR, cvrValues(els)...)
	}

	crossTerm := irCurvatureCrossTerm(groups, p.IRGammaDiffCcy())
	charge := curvatureLambdaCharge(allCVR, crossTerm)
	hvr := p.IRHVR()
	if hvr == 0 {
		return 0
	}
	return charge / (hvr * hvr)
}

// irCurvatureCrossTerm is curvatureCrossTerm specialised for a constant
// cross-currency gamma (spec.md §4.4 doesn't condition IR curvature's γ on
// currency count the way IR-Delta does; it is always IR_GAMMA_DIFF_CCY²).
func irCurvatureCrossTerm(groups []curvatureGroup, gammaDiffCcy float64) float64 {
	return curvatureCrossTerm(groups, func(int, int) (float64, bool) { return gammaDiffCcy, true })
}

func buildIRCurvatureElements(rows []crif.Row) []bucket.Element {
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

	els := make([]bucket.Element, 0, len(order)+1)
	for _, t := range order {
		els = append(els, bucket.Element{WS: curvatureScale(t) * sums[t], Idx1: string(t), CR: 1})
	}

	var inflSum float64
	var hasInfl bool
	for _, r := range rows {
		if r.RiskType != crif.RiskInflationVol {
			continue
		}
		hasInfl = true
		if r.HasAmount {
			inflSum += r.AmountUSD
		}
	}
	if hasInfl {
		els = append(els, bucket.Element{WS: curvatureScale(crif.InfTenor) * inflSum, Idx1: string(crif.InfTenor), CR: 1})
	}
	return els
}

// isInflationOnlyZeroSum reports whether rows' only vol risk type is
// inflation-vol and the built elements' total CVR is zero.
func isInflationOnlyZeroSum(rows []crif.Row, els []bucket.Element) bool {
	for _, r := range rows {
		if r.RiskType == crif.RiskIRVol {
			return false
		}
	}
	return sumWS(els) == 0
}

func cvrValues(els []bucket.Element) []float64 {
	out := make([]float64, len(els))
	for i, e := range els {
		out[i] = e.WS
	}
	return out
}

// equityCurvature and commodityCurvature compute the Equity/Curvature and
// Commodity/Curvature charges. Bucket 12's equity curvature is forced to
// zero (σ forced to zero, per spec.md §4.4).
func equityCurvature(view crif.View, p simmparams.Provider) float64 {
	return bucketedNameCurvature(view, crif.RiskEquityVol, p.EquityVegaRW, p.EquityIntraBucketCorr, p.EquityGamma, true)
}

func commodityCurvature(view crif.View, p simmparams.Provider) float64 {
	return bucketedNameCurvature(view, crif.RiskCommodityVol, p.CommodityVegaRW, p.CommodityIntraBucketCorr, p.CommodityGamma, false)
}

func bucketedNameCurvature(
	view crif.View, rt crif.RiskType,
	vegaRWFor func(int) (float64, bool),
	intraCorrFor func(int) (float64, bool),
	gammaFor func(int, int) (float64, bool),
	zeroBucket12 bool,
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
		if zeroBucket12 && bucketNum == 12 {
			sigma = 0
		}
		qualifiers := orderedQualifiers(bucketRows)
		els := make([]bucket.Element, 0, len(qualifiers))
		for _, q := range qualifiers {
			qRows := filterByQualifier(bucketRows, q)
			// CVR nets per tenor (scaling_func(Label1)) before summing across
			// a qualifier's rows, same as the IR/Credit curvature build.
			var s float64
			for _, r := range qRows {
				if r.HasAmount {
					s += curvatureScale(r.Tenor()) * r.AmountUSD
				}
			}
			els = append(els, bucket.Element{WS: sigma * s, Idx1: q, CR: 1})
		}
		return els
	}

	var groups []curvatureGroup
	var allCVR []float64
	for _, n := range order {
		els := build(numeric[n])
		rho, _ := intraCorrFor(n)
		k := bucket.Curvature(els, func(a, b bucket.Element) (float64, float64, float64) { return rho, 1, 1 })
		groups = append(groups, curvatureGroup{id: n, k: k, s: clampToK(sumWS(els), k)})
		allCVR = append(allCVR, cvrValues(els)...)
	}
	numericCharge := curvatureLambdaCharge(allCVR, curvatureCrossTerm(groups, gammaFor))

	resEls := build(residual)
	rhoRes, _ := intraCorrFor(0)
	kRes := bucket.Curvature(resEls, func(a, b bucket.Element) (float64, float64, float64) { return rhoRes, 1, 1 })
	residualCharge := curvatureLambdaCharge(cvrValues(resEls), kRes)

	return numericCharge + residualCharge
}

// creditCurvature and creditCurvatureNonQ compute the Credit-Vol /
// Credit-Vol-NonQ curvature charges: per bucket, per (qualifier, tenor),
// CVR = scaling_func(tenor)·s, combined with the same-name/different-name
// correlation.
func creditCurvature(view crif.View, p simmparams.Provider) float64 {
	return creditCurvatureFor(view, crif.CreditQ, crif.RiskCreditVol, p)
}

func creditCurvatureNonQ(view crif.View, p simmparams.Provider) float64 {
	return creditCurvatureFor(view, crif.CreditNonQ, crif.RiskCreditVolNonQ, p)
}

func creditCurvatureFor(view crif.View, rc crif.RiskClass, rt crif.RiskType, p simmparams.Provider) float64 {
	rows := view.Filter(crif.ColumnIn(func(r crif.Row) string { return string(r.RiskType) }, string(rt))).Rows()
	if len(rows) == 0 {
		return 0
	}
	numeric, order, residual := bucketsByNumber(rows)
	rho := p.CreditRho(rc)
	pair := func(a, b bucket.Element) (float64, float64, float64) {
		var r float64
		switch {
		case a.Idx1 == "Res" || b.Idx1 == "Res":
			r = rho.ResidualInvolved
		case a.Idx1 == b.Idx1:
			r = rho.SameName
		default:
			r = rho.DifferentName
		}
		return r, 1, 1
	}

	build := func(bucketRows []crif.Row) []bucket.Element {
		if len(bucketRows) == 0 {
			return nil
		}
		residual := bucketRows[0].Bucket.IsResidual()
		type key struct {
			qualifier string
			tenor     crif.Tenor
		}
		sums := make(map[key]float64)
		var order []key
		for _, r := range bucketRows {
			k := key{qualifier: r.Qualifier, tenor: r.Tenor()}
			if _, seen := sums[k]; !seen {
				order = append(order, k)
			}
			if r.HasAmount {
				sums[k] += r.AmountUSD
			}
		}
		els := make([]bucket.Element, 0, len(order))
		for _, k := range order {
			idx1 := k.qualifier
			if residual {
				idx1 = "Res"
			}
			els = append(els, bucket.Element{WS: curvatureScale(k.tenor) * sums[k], Idx1: idx1, CR: 1})
		}
		return els
	}

	var groups []curvatureGroup
	var allCVR []float64
	for _, n := range order {
		els := build(numeric[n])
		k := bucket.Curvature(els, pair)
		groups = append(groups, curvatureGroup{id: n, k: k, s: clampToK(sumWS(els), k)})
		allCVR = append(allCVR, cvrValues(els)...)
	}
	numericCharge := curvatureLambdaCharge(allCVR, curvatureCrossTerm(groups, func(b1, b2 int) (float64, bool) { return p.CreditGamma(rc, b1, b2) }))

	resEls := build(residual)
	kRes := bucket.Curvature(resEls, pair)
	residualCharge := curvatureLambdaCharge(cvrValues(resEls), kRes)

	return numericCharge + residualCharge
}

// fxCurvature computes the FX/Curvature charge: FX has no bucket
// structure, so the whole currency-pair set reduces through a single
// curvature kernel call (spec.md §4.4, mirroring fxVega's flat shape).
func fxCurvature(view crif.View, p simmparams.Provider) float64 {
	volView := view.Filter(crif.ColumnIn(func(r crif.Row) string { return string(r.RiskType) }, string(crif.RiskFXVol)))
	rows := volView.Rows()
	pairs := volView.CurrencyPairList()
	if len(pairs) == 0 {
		return 0
	}

	els := make([]bucket.Element, 0, len(pairs))
	for _, pair := range pairs {
		pRows := filterByCurrencyPair(rows, pair)
		sigma := sigmaFromRW(p.FXVolRW(fxPairVolGroup(pair)))
		var s float64
		for _, r := range pRows {
			if r.HasAmount {
				s += curvatureScale(r.Tenor()) * r.AmountUSD
			}
		}
		els = append(els, bucket.Element{WS: sigma * s, Idx1: pair, CR: 1})
	}

	fxVegaCorr := p.FXVegaCorr()
	k := bucket.Curvature(els, func(a, b bucket.Element) (float64, float64, float64) { return fxVegaCorr, 1, 1 })
	return curvatureLambdaCharge(cvrValues(els), k)
}
