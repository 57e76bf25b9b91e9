package riskclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suhasg-simmrs/simm-rs/internal/crif"
	"github.com/suhasg-simmrs/simm-rs/internal/simmparams"
)

func TestCurvatureScale_TwoWeekIsHalf(t *testing.T) {
	assert.Equal(t, 0.5, curvatureScale("2w"))
}

func TestCurvatureScale_LongTenorIsSmaller(t *testing.T) {
	assert.Less(t, curvatureScale("30y"), curvatureScale("2w"))
}

func TestIRCurvature_InflationOnlyZeroSumAtCalcCcyIsZero(t *testing.T) {
	p, err := simmparams.New("2_5")
	require.NoError(t, err)

	rows := []crif.Row{
		{ProductClass: "RatesFX", RiskType: crif.RiskInflationVol, Qualifier: "USD", AmountUSD: 1000, HasAmount: true},
		{ProductClass: "RatesFX", RiskType: crif.RiskInflationVol, Qualifier: "USD", AmountUSD: -1000, HasAmount: true},
	}
	view := crif.NewTableFromRows(rows).View()
	assert.Equal(t, 0.0, irCurvature(view, p, "USD"))
}

func TestIRCurvature_NonZeroCurrencyCharges(t *testing.T) {
	p, err := simmparams.New("2_5")
	require.NoError(t, err)

	rows := []crif.Row{
		{ProductClass: "RatesFX", RiskType: crif.RiskIRVol, Qualifier: "USD", Label1: "1y", AmountUSD: 50000, HasAmount: true},
	}
	view := crif.NewTableFromRows(rows).View()
	assert.Greater(t, irCurvature(view, p, "USD"), 0.0)
}

func TestIRCurvature_NonNegative(t *testing.T) {
	p, err := simmparams.New("2_5")
	require.NoError(t, err)

	rows := []crif.Row{
		{ProductClass: "RatesFX", RiskType: crif.RiskIRVol, Qualifier: "USD", Label1: "1y", AmountUSD: -50000, HasAmount: true},
		{ProductClass: "RatesFX", RiskType: crif.RiskIRVol, Qualifier: "EUR", Label1: "1y", AmountUSD: 30000, HasAmount: true},
	}
	view := crif.NewTableFromRows(rows).View()
	assert.GreaterOrEqual(t, irCurvature(view, p, "USD"), 0.0)
}

func TestEquityCurvature_Bucket12IsZero(t *testing.T) {
	p, err := simmparams.New("2_5")
	require.NoError(t, err)

	rows := []crif.Row{
		{ProductClass: "Equity", RiskType: crif.RiskEquityVol, Qualifier: "IDX", Bucket: crif.NewNumericBucket(12), AmountUSD: 10000, HasAmount: true},
	}
	view := crif.NewTableFromRows(rows).View()
	assert.Equal(t, 0.0, equityCurvature(view, p))
}

func TestCreditCurvature_NonNegative(t *testing.T) {
	p, err := simmparams.New("2_5")
	require.NoError(t, err)

	rows := []crif.Row{
		{ProductClass: "Credit", RiskType: crif.RiskCreditVol, Qualifier: "ISSUER1", Bucket: crif.NewNumericBucket(1), Label1: "1y", AmountUSD: 1000, HasAmount: true},
	}
	view := crif.NewTableFromRows(rows).View()
	assert.GreaterOrEqual(t, creditCurvature(view, p), 0.0)
}

func TestFXCurvature_NonNegative(t *testing.T) {
	p, err := simmparams.New("2_5")
	require.NoError(t, err)

	rows := []crif.Row{
		{ProductClass: "RatesFX", RiskType: crif.RiskFXVol, Qualifier: "EURUSD", AmountUSD: 1000, HasAmount: true},
	}
	view := crif.NewTableFromRows(rows).View()
	assert.GreaterOrEqual(t, fxCurvature(view, p), 0.0)
}
