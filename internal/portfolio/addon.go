package portfolio

import (
	"github.com/shopspring/decimal"

	"github.com/suhasg-simmrs/simm-rs/internal/crif"
)

// addOn computes the three add-on terms of spec.md §4.5 and combines them,
// rounded to two decimals. Per the Open Question in spec.md §9, the source
// rounds the combined fixed+notional+multiplier sum once, after the
// multiplier term (which itself depends on every product's already-computed
// SIMM_P) — this is preserved here rather than "fixed" to round each term
// independently, since the spec explicitly asks implementers to flag, not
// guess, and the decision is recorded in DESIGN.md.
func addOn(table crif.View, simmByProduct map[string]float64) float64 {
	fixed := addOnFixed(table)
	notional := addOnNotional(table)
	multiplier := addOnMultiplier(table, simmByProduct)

	sum := fixed + notional + multiplier
	rounded, _ := decimal.NewFromFloat(sum).Round(2).Float64()
	return rounded
}

// addOnFixed implements AddOn_fixed = Σ amounts of Param_AddOnFixedAmount
// rows.
func addOnFixed(table crif.View) float64 {
	return table.Filter(crif.ColumnIn(func(r crif.Row) string { return string(r.RiskType) }, string(crif.ParamAddOnFixed))).SumUSD()
}

// addOnNotional implements AddOn_notional = Σ_qualifier factor_q·notional_q,
// where factor_q is the qualifier's Param_AddOnNotionalFactor sum divided
// by 100 and notional_q is its Notional row sum.
func addOnNotional(table crif.View) float64 {
	factors := sumByQualifier(table, crif.ParamAddOnNotional)
	notionals := sumByQualifier(table, crif.RiskNotional)

	var sum float64
	for q, factor := range factors {
		sum += (factor / 100) * notionals[q]
	}
	return sum
}

// addOnMultiplier implements AddOn_multiplier = Σ_P SIMM_P·(m_P−1), m_P
// taken as the raw sum of Param_ProductClassMultiplier rows whose
// Qualifier equals the product class; a product with no such row
// contributes zero, not -SIMM_P (spec.md §4.5: "zero contribution when no
// such row").
func addOnMultiplier(table crif.View, simmByProduct map[string]float64) float64 {
	var sum float64
	for product, simmP := range simmByProduct {
		rows := table.Filter(
			crif.ColumnIn(func(r crif.Row) string { return string(r.RiskType) }, string(crif.ParamClassMult)),
			crif.ColumnIn(func(r crif.Row) string { return r.Qualifier }, product),
		)
		if rows.Len() == 0 {
			continue
		}
		m := rows.SumUSD()
		sum += simmP * (m - 1)
	}
	return sum
}

func sumByQualifier(table crif.View, rt crif.RiskType) map[string]float64 {
	rows := table.Filter(crif.ColumnIn(func(r crif.Row) string { return string(r.RiskType) }, string(rt))).Rows()
	out := make(map[string]float64)
	for _, r := range rows {
		if r.HasAmount {
			out[r.Qualifier] += r.AmountUSD
		}
	}
	return out
}
