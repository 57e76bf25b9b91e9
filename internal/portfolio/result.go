// Package portfolio implements the Portfolio Aggregator (spec.md §4.5): the
// final cross-risk-class, cross-product-class combine, the add-on term,
// and the breakdown table.
package portfolio

import "fmt"

// BreakdownRow is one row of the output breakdown table (spec.md §6). Most
// rows describe a single (product class, risk class, risk measure) cell;
// the final row instead carries SIMMTotal and (if non-zero) AddOn, with
// ProductClass/RiskClass/RiskMeasure left blank, matching the "header row
// followed by one row per cell, plus a single total row" shape spec.md §4.5
// describes.
type BreakdownRow struct {
	ProductClass     string
	SIMMProductClass float64
	RiskClass        string
	SIMMRiskClass    float64
	RiskMeasure      string
	SIMMRiskMeasure  float64

	// SIMMTotal and AddOn are only set on the final summary row.
	SIMMTotal *float64
	AddOn     *float64
}

// Result is the Portfolio Aggregator's output: the scalar SIMM total plus
// its structured breakdown.
type Result struct {
	Total     float64
	Breakdown []BreakdownRow
}

// Header returns the breakdown table's column names, in the order spec.md
// §6 lists them. The Add-On column is only meaningful on rows where AddOn
// is non-nil.
func Header() []string {
	return []string{
		"SIMM Total", "Add-On", "Product Class", "SIMM_ProductClass",
		"Risk Class", "SIMM_RiskClass", "Risk Measure", "SIMM_RiskMeasure",
	}
}

// Strings renders one row as the string cells Header describes, for
// callers (cmd/simmcalc) that print the breakdown as a table. Blank
// optional fields render as the empty string, not "0".
func (r BreakdownRow) Strings() []string {
	total, addOn := "", ""
	if r.SIMMTotal != nil {
		total = fmt.Sprintf("%.2f", *r.SIMMTotal)
	}
	if r.AddOn != nil {
		addOn = fmt.Sprintf("%.2f", *r.AddOn)
	}
	productCcy, riskClassCcy, measureCcy := "", "", ""
	if r.ProductClass != "" {
		productCcy = fmt.Sprintf("%.2f", r.SIMMProductClass)
	}
	if r.RiskClass != "" {
		riskClassCcy = fmt.Sprintf("%.2f", r.SIMMRiskClass)
	}
	if r.RiskMeasure != "" {
		measureCcy = fmt.Sprintf("%.2f", r.SIMMRiskMeasure)
	}
	return []string{total, addOn, r.ProductClass, productCcy, r.RiskClass, riskClassCcy, r.RiskMeasure, measureCcy}
}
