package riskclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suhasg-simmrs/simm-rs/internal/crif"
	"github.com/suhasg-simmrs/simm-rs/internal/simmparams"
)

// TestFXDelta_S3 reproduces spec.md §8's scenario S3: a single FX row whose
// Qualifier equals the calculation currency charges zero (its risk weight
// is zero).
func TestFXDelta_S3(t *testing.T) {
	p, err := simmparams.New("2_5")
	require.NoError(t, err)

	rows := []crif.Row{
		{ProductClass: "RatesFX", RiskType: crif.RiskFX, Qualifier: "USD", AmountUSD: 1_000_000, HasAmount: true},
	}
	view := crif.NewTableFromRows(rows).View()
	assert.Equal(t, 0.0, fxDelta(view, p, "USD"))
}

func TestFXDelta_NonCalcCurrencyIsNonZero(t *testing.T) {
	p, err := simmparams.New("2_5")
	require.NoError(t, err)

	rows := []crif.Row{
		{ProductClass: "RatesFX", RiskType: crif.RiskFX, Qualifier: "EUR", AmountUSD: 1_000_000, HasAmount: true},
	}
	view := crif.NewTableFromRows(rows).View()
	assert.Greater(t, fxDelta(view, p, "USD"), 0.0)
}

func TestEquityDelta_ResidualAddsLinearly(t *testing.T) {
	p, err := simmparams.New("2_5")
	require.NoError(t, err)

	numericOnly := []crif.Row{
		{ProductClass: "Equity", RiskType: crif.RiskEquity, Qualifier: "AAPL", Bucket: crif.NewNumericBucket(1), AmountUSD: 10000, HasAmount: true},
	}
	withResidual := []crif.Row{
		numericOnly[0],
		{ProductClass: "Equity", RiskType: crif.RiskEquity, Qualifier: "OBSCURECO", Bucket: crif.ResidualBucket, AmountUSD: 5000, HasAmount: true},
	}

	kBase := equityDelta(crif.NewTableFromRows(numericOnly).View(), p)
	kWithResidual := equityDelta(crif.NewTableFromRows(withResidual).View(), p)
	assert.Greater(t, kWithResidual, kBase)
}

func TestCreditDelta_SameIssuerUsesSameNameRho(t *testing.T) {
	p, err := simmparams.New("2_5")
	require.NoError(t, err)

	sameIssuer := []crif.Row{
		{ProductClass: "Credit", RiskType: crif.RiskCreditQ, Qualifier: "ISSUER1", Bucket: crif.NewNumericBucket(1), Label1: "1y", AmountUSD: 1000, HasAmount: true},
		{ProductClass: "Credit", RiskType: crif.RiskCreditQ, Qualifier: "ISSUER1", Bucket: crif.NewNumericBucket(1), Label1: "5y", AmountUSD: 1000, HasAmount: true},
	}
	diffIssuer := []crif.Row{
		{ProductClass: "Credit", RiskType: crif.RiskCreditQ, Qualifier: "ISSUER1", Bucket: crif.NewNumericBucket(1), Label1: "1y", AmountUSD: 1000, HasAmount: true},
		{ProductClass: "Credit", RiskType: crif.RiskCreditQ, Qualifier: "ISSUER2", Bucket: crif.NewNumericBucket(1), Label1: "1y", AmountUSD: 1000, HasAmount: true},
	}

	kSame := creditDelta(crif.NewTableFromRows(sameIssuer).View(), crif.CreditQ, crif.RiskCreditQ, p)
	kDiff := creditDelta(crif.NewTableFromRows(diffIssuer).View(), crif.CreditQ, crif.RiskCreditQ, p)
	// Same-name rho (0.98) is higher than different-name (0.43), so the
	// same-issuer pair diversifies less and produces a larger K.
	assert.Greater(t, kSame, kDiff)
}

func TestCommodityDelta_EmptyIsZero(t *testing.T) {
	p, _ := simmparams.New("2_5")
	view := crif.NewTableFromRows(nil).View()
	assert.Equal(t, 0.0, commodityDelta(view, p))
}
