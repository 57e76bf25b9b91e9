package riskclass

import (
	"github.com/suhasg-simmrs/simm-rs/internal/bucket"
	"github.com/suhasg-simmrs/simm-rs/internal/crif"
	"github.com/suhasg-simmrs/simm-rs/internal/simmparams"
)

// baseCorr computes CreditQ's BaseCorr measure (spec.md §4.4 "Base
// Correlation"): K = √(Σᵢ Σⱼ ρᵢⱼ·WSᵢ·WSⱼ) over Risk_BaseCorr rows, with
// ρ=1 for same-qualifier pairs and the base-correlation scalar otherwise.
// Defined only for CreditQ; every other risk class's BaseCorr is zero (the
// top-level Aggregate simply never calls this for other classes).
func baseCorr(view crif.View, p simmparams.Provider) float64 {
	rows := view.Filter(crif.ColumnIn(func(r crif.Row) string { return string(r.RiskType) }, string(crif.RiskBaseCorr))).Rows()
	if len(rows) == 0 {
		return 0
	}

	w := p.CreditQBaseCorrWeight()
	qualifiers := orderedQualifiers(rows)
	els := make([]bucket.Element, 0, len(qualifiers))
	for _, q := range qualifiers {
		s := sumAmounts(filterByQualifier(rows, q))
		els = append(els, bucket.Element{WS: w * s, Idx1: q})
	}

	baseScalar := p.CreditRho(crif.CreditQ).BaseCorrelation
	return bucket.Delta(els, func(a, b bucket.Element) (float64, float64, float64) {
		if a.Idx1 == b.Idx1 {
			return 1, 1, 1
		}
		return baseScalar, 1, 1
	})
}
