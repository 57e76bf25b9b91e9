// Package testing provides shared CRIF fixture builders so per-package
// tests elsewhere in the module stay short.
package testing

import "github.com/suhasg-simmrs/simm-rs/internal/crif"

// CRIFRow builds a single CRIF row with an amount, leaving every other
// field at its zero value for the caller to set.
func CRIFRow(productClass string, riskType crif.RiskType, qualifier string, bucket crif.Bucket, label1 string, amountUSD float64) crif.Row {
	return crif.Row{
		ProductClass: productClass,
		RiskType:     riskType,
		Qualifier:    qualifier,
		Bucket:       bucket,
		Label1:       label1,
		AmountUSD:    amountUSD,
		HasAmount:    true,
	}
}

// CRIFTable builds a Table directly from a set of rows, the way production
// code builds one from a parsed CRIF file.
func CRIFTable(rows ...crif.Row) crif.Table {
	return crif.NewTableFromRows(rows)
}

// SingleCurrencyIRFixtures returns a small, internally consistent set of
// Rates delta rows across two tenors in one currency, for tests that need
// more than one row but don't care about the exact shape.
func SingleCurrencyIRFixtures(ccy string) []crif.Row {
	return []crif.Row{
		CRIFRow("RatesFX", crif.RiskIRCurve, ccy, crif.NewNumericBucket(1), "2w", 100000),
		CRIFRow("RatesFX", crif.RiskIRCurve, ccy, crif.NewNumericBucket(1), "1y", -40000),
	}
}
