package riskclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suhasg-simmrs/simm-rs/internal/crif"
	"github.com/suhasg-simmrs/simm-rs/internal/simmparams"
)

func TestIRVega_EmptyIsZero(t *testing.T) {
	p, _ := simmparams.New("2_5")
	assert.Equal(t, 0.0, irVega(crif.NewTableFromRows(nil).View(), p, "USD"))
}

func TestIRVega_SingleCurrencyIsPositive(t *testing.T) {
	p, err := simmparams.New("2_5")
	require.NoError(t, err)

	rows := []crif.Row{
		{ProductClass: "RatesFX", RiskType: crif.RiskIRVol, Qualifier: "USD", Label1: "1y", AmountUSD: 50000, HasAmount: true},
	}
	view := crif.NewTableFromRows(rows).View()
	assert.Greater(t, irVega(view, p, "USD"), 0.0)
}

func TestFXVega_PairCollapsesBySwap(t *testing.T) {
	p, err := simmparams.New("2_5")
	require.NoError(t, err)

	rows := []crif.Row{
		{ProductClass: "RatesFX", RiskType: crif.RiskFXVol, Qualifier: "EURUSD", AmountUSD: 1000, HasAmount: true},
		{ProductClass: "RatesFX", RiskType: crif.RiskFXVol, Qualifier: "USDEUR", AmountUSD: 500, HasAmount: true},
	}
	view := crif.NewTableFromRows(rows).View()
	// Both rows collapse into a single EURUSD pair element; the kernel
	// should see them netted, not as two distinct elements.
	assert.Greater(t, fxVega(view, p), 0.0)
}

func TestCreditVega_BucketsCombineAcrossGamma(t *testing.T) {
	p, err := simmparams.New("2_5")
	require.NoError(t, err)

	rows := []crif.Row{
		{ProductClass: "Credit", RiskType: crif.RiskCreditVol, Qualifier: "ISSUER1", Bucket: crif.NewNumericBucket(1), Label1: "1y", AmountUSD: 1000, HasAmount: true},
		{ProductClass: "Credit", RiskType: crif.RiskCreditVol, Qualifier: "ISSUER2", Bucket: crif.NewNumericBucket(2), Label1: "1y", AmountUSD: 1000, HasAmount: true},
	}
	view := crif.NewTableFromRows(rows).View()
	assert.Greater(t, creditVega(view, p), 0.0)
}

func TestEquityVega_Bucket12UsesDistinctVRW(t *testing.T) {
	p, err := simmparams.New("2_5")
	require.NoError(t, err)

	bucket1 := []crif.Row{
		{ProductClass: "Equity", RiskType: crif.RiskEquityVol, Qualifier: "AAPL", Bucket: crif.NewNumericBucket(1), AmountUSD: 10000, HasAmount: true},
	}
	bucket12 := []crif.Row{
		{ProductClass: "Equity", RiskType: crif.RiskEquityVol, Qualifier: "IDX", Bucket: crif.NewNumericBucket(12), AmountUSD: 10000, HasAmount: true},
	}
	k1 := equityVega(crif.NewTableFromRows(bucket1).View(), p)
	k12 := equityVega(crif.NewTableFromRows(bucket12).View(), p)
	assert.NotEqual(t, k1, k12)
}
