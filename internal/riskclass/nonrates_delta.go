package riskclass

import (
	"math"
	"sort"

	"github.com/suhasg-simmrs/simm-rs/internal/bucket"
	"github.com/suhasg-simmrs/simm-rs/internal/crif"
	"github.com/suhasg-simmrs/simm-rs/internal/simmparams"
)

// fxDelta computes the FX/Delta charge (spec.md §4.4 "Non-rates Delta", FX
// branch). FX delta has no bucket structure: every qualifier currency feeds
// one flat kernel call.
func fxDelta(view crif.View, p simmparams.Provider, ccy string) float64 {
	rows := view.Filter(crif.ColumnIn(func(r crif.Row) string { return string(r.RiskType) }, string(crif.RiskFX))).Rows()
	if len(rows) == 0 {
		return 0
	}

	currencies := orderedQualifiers(rows)
	els := make([]bucket.Element, 0, len(currencies))
	for _, q := range currencies {
		qRows := filterByQualifier(rows, q)
		s := sumAmounts(qRows)
		cr := concentrationFactor(s, p.T(crif.FX, crif.Delta, q))

		var rw float64
		if q != ccy {
			rw = p.FXDeltaRW(simmparams.ClassifyCurrency(q))
		}
		els = append(els, bucket.Element{WS: rw * s * cr, Idx1: q, CR: cr})
	}

	calcHighVol := simmparams.ClassifyCurrency(ccy) == simmparams.HighVol
	return bucket.Delta(els, func(a, b bucket.Element) (rho, phi, f float64) {
		q1High := simmparams.ClassifyCurrency(a.Idx1) == simmparams.HighVol
		q2High := simmparams.ClassifyCurrency(b.Idx1) == simmparams.HighVol
		return p.FXDeltaCorr(calcHighVol, q1High, q2High), 1, 1
	})
}

// bucketGroup is one numeric bucket's intermediate aggregation result, used
// by every bucketed (Credit/Equity/Commodity) measure's cross-bucket
// combine.
type bucketGroup struct {
	num int
	k   float64
	s   float64
	cr  float64 // representative concentration factor, for the cross-bucket g() factor
}

// combineBuckets implements the shared "Σ K_b² + Σ_{b≠c} γ_bc·S_b·S_c,
// Residual additive" combine spec.md §4.4 describes for Credit, Equity and
// Commodity delta (and reused, unchanged in shape, by the vega paths).
// gamma returning !ok (no defined cross-bucket link) contributes zero,
// per spec.md §7's "unknown risk class at lookup time... treat as zero for
// correlations across risk classes with no defined cross-class link" —
// applied here at the bucket-pair granularity.
func combineBuckets(groups []bucketGroup, kResidual float64, gamma func(b1, b2 int) (float64, bool)) float64 {
	if len(groups) == 0 {
		return kResidual
	}
	if len(groups) == 1 {
		return groups[0].k + kResidual
	}

	var sum float64
	for i, a := range groups {
		sum += a.k * a.k
		for j := i + 1; j < len(groups); j++ {
			b := groups[j]
			g, ok := gamma(a.num, b.num)
			if !ok {
				continue
			}
			sum += 2 * g * a.s * b.s
		}
	}
	if sum < 0 {
		sum = 0
	}
	return math.Sqrt(sum) + kResidual
}

// bucketsByNumber partitions rows by their numeric Bucket, returning the
// buckets in ascending order (Design Note in spec.md §9: "iterate buckets
// in ascending integer order with Residual last") plus the Residual rows
// separately.
func bucketsByNumber(rows []crif.Row) (numeric map[int][]crif.Row, order []int, residual []crif.Row) {
	numeric = make(map[int][]crif.Row)
	seen := make(map[int]bool)
	for _, r := range rows {
		if r.Bucket.IsResidual() {
			residual = append(residual, r)
			continue
		}
		n := r.Bucket.Num()
		numeric[n] = append(numeric[n], r)
		if !seen[n] {
			seen[n] = true
			order = append(order, n)
		}
	}
	sort.Ints(order)
	return numeric, order, residual
}

// creditDelta computes the Delta charge for CreditQ or CreditNonQ (spec.md
// §4.4, Credit branch of Non-rates Delta): per bucket, elements indexed by
// (qualifier, tenor), combined with the risk class's same/different-name
// correlation; buckets combined via γ; Residual additive.
func creditDelta(view crif.View, rc crif.RiskClass, rt crif.RiskType, p simmparams.Provider) float64 {
	rows := view.Filter(crif.ColumnIn(func(r crif.Row) string { return string(r.RiskType) }, string(rt))).Rows()
	if len(rows) == 0 {
		return 0
	}
	numeric, order, residual := bucketsByNumber(rows)

	var groups []bucketGroup
	for _, n := range order {
		els := creditElements(numeric[n], rc, p)
		k := bucket.Delta(els, creditPair(rc, p))
		groups = append(groups, bucketGroup{num: n, k: k, s: clampToK(sumWS(els), k)})
	}

	resEls := creditElements(residual, rc, p)
	kRes := bucket.Delta(resEls, creditPair(rc, p))
	return combineBuckets(groups, kRes, func(b1, b2 int) (float64, bool) { return p.CreditGamma(rc, b1, b2) })
}

// creditElements builds one weighted-sensitivity element per (qualifier,
// tenor) group within a single bucket's rows. Residual rows all collapse
// onto the shared index "Res" (mirroring the original's residual tagging),
// so creditPair's residual branch fires for every pair built from them.
func creditElements(rows []crif.Row, rc crif.RiskClass, p simmparams.Provider) []bucket.Element {
	if len(rows) == 0 {
		return nil
	}
	residual := rows[0].Bucket.IsResidual()
	rw, err := p.CreditRW(rc, rows[0].Bucket.Num())
	if err != nil {
		return nil
	}

	type key struct {
		qualifier string
		tenor     crif.Tenor
	}
	sums := make(map[key]float64)
	var order []key
	for _, r := range rows {
		k := key{qualifier: r.Qualifier, tenor: r.Tenor()}
		if _, seen := sums[k]; !seen {
			order = append(order, k)
		}
		if r.HasAmount {
			sums[k] += r.AmountUSD
		}
	}

	crByQualifier := qualifierConcentration(rows, rc, crif.Delta, p)
	els := make([]bucket.Element, 0, len(order))
	for _, k := range order {
		idx1 := k.qualifier
		if residual {
			idx1 = "Res"
		}
		cr := crByQualifier[k.qualifier]
		els = append(els, bucket.Element{WS: rw * sums[k] * cr, Idx1: idx1, CR: cr})
	}
	return els
}

// creditPair implements the Credit path of the delta kernel's per-pair
// correlation (spec.md §4.3): residual-index pairs use the dedicated
// ResidualInvolved scalar (checked first, since it overrides same/different-
// name regardless of which side is residual), same-qualifier pairs the
// SameName scalar, different-qualifier pairs the DifferentName scalar.
func creditPair(rc crif.RiskClass, p simmparams.Provider) bucket.PairCorr {
	rho := p.CreditRho(rc)
	return func(a, b bucket.Element) (float64, float64, float64) {
		var r float64
		switch {
		case a.Idx1 == "Res" || b.Idx1 == "Res":
			r = rho.ResidualInvolved
		case a.Idx1 == b.Idx1:
			r = rho.SameName
		default:
			r = rho.DifferentName
		}
		return r, 1, crossConcentration(a.CR, b.CR)
	}
}

// equityDelta computes the Equity/Delta charge (spec.md §4.4, Equity branch
// of Non-rates Delta): one element per qualifier per bucket, intra-bucket
// correlation is a single scalar per bucket.
func equityDelta(view crif.View, p simmparams.Provider) float64 {
	return bucketedNameDelta(view, crif.RiskEquity, crif.Equity, p,
		p.EquityRW, p.EquityIntraBucketCorr, p.EquityGamma)
}

// commodityDelta computes the Commodity/Delta charge, identical in shape to
// equityDelta but over the commodity bucket tables; spec.md §4.4 notes
// Commodity's Residual bucket is zero in practice, which the shared
// combineBuckets helper already handles (an empty residual slice sums to 0).
func commodityDelta(view crif.View, p simmparams.Provider) float64 {
	return bucketedNameDelta(view, crif.RiskCommodity, crif.Commodity, p,
		p.CommodityRW, p.CommodityIntraBucketCorr, p.CommodityGamma)
}

// bucketedNameDelta is the shared Equity/Commodity delta shape: per bucket,
// one element per qualifier, a single intra-bucket correlation scalar, f
// from the qualifiers' concentration factors, buckets combined via γ.
func bucketedNameDelta(
	view crif.View, rt crif.RiskType, rc crif.RiskClass, p simmparams.Provider,
	rwFor func(int) (float64, error),
	intraCorrFor func(int) (float64, bool),
	gammaFor func(int, int) (float64, bool),
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
		rw, err := rwFor(bucketNum)
		if err != nil {
			return nil
		}
		crByQualifier := qualifierConcentration(bucketRows, rc, crif.Delta, p)
		qualifiers := orderedQualifiers(bucketRows)
		els := make([]bucket.Element, 0, len(qualifiers))
		for _, q := range qualifiers {
			s := sumAmounts(filterByQualifier(bucketRows, q))
			cr := crByQualifier[q]
			els = append(els, bucket.Element{WS: rw * s * cr, Idx1: q, CR: cr})
		}
		return els
	}

	var groups []bucketGroup
	for _, n := range order {
		els := build(numeric[n])
		rho, _ := intraCorrFor(n)
		k := bucket.Delta(els, func(a, b bucket.Element) (float64, float64, float64) {
			return rho, 1, crossConcentration(a.CR, b.CR)
		})
		groups = append(groups, bucketGroup{num: n, k: k, s: clampToK(sumWS(els), k)})
	}

	resEls := build(residual)
	rhoRes, _ := intraCorrFor(0)
	kRes := bucket.Delta(resEls, func(a, b bucket.Element) (float64, float64, float64) {
		return rhoRes, 1, crossConcentration(a.CR, b.CR)
	})
	return combineBuckets(groups, kRes, gammaFor)
}

// qualifierConcentration computes each qualifier's concentration factor
// CR = max(1, √(|Σ amounts|/T)) over rows, keyed by qualifier.
func qualifierConcentration(rows []crif.Row, rc crif.RiskClass, measure crif.Measure, p simmparams.Provider) map[string]float64 {
	out := make(map[string]float64)
	for _, q := range orderedQualifiers(rows) {
		qRows := filterByQualifier(rows, q)
		out[q] = concentrationFactor(sumAmounts(qRows), p.T(rc, measure, q))
	}
	return out
}

func sumAmounts(rows []crif.Row) float64 {
	var sum float64
	for _, r := range rows {
		if r.HasAmount {
			sum += r.AmountUSD
		}
	}
	return sum
}
