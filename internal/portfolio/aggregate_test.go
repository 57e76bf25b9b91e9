package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suhasg-simmrs/simm-rs/internal/crif"
	"github.com/suhasg-simmrs/simm-rs/internal/simmparams"
)

// TestAggregate_S5 reproduces spec.md §8's scenario S5: a single
// Param_AddOnFixedAmount row with no other rows produces SIMM_total = 500
// and an AddOn-only breakdown shape.
func TestAggregate_S5(t *testing.T) {
	p, err := simmparams.New("2_5")
	require.NoError(t, err)

	table := crif.NewTableFromRows([]crif.Row{
		{ProductClass: "RatesFX", RiskType: crif.ParamAddOnFixed, AmountUSD: 500, HasAmount: true},
	})
	result := Aggregate(table, p, "USD", 1)
	assert.Equal(t, 500.0, result.Total)
	require.Len(t, result.Breakdown, 1)
	require.NotNil(t, result.Breakdown[0].AddOn)
	assert.Equal(t, 500.0, *result.Breakdown[0].AddOn)
	require.NotNil(t, result.Breakdown[0].SIMMTotal)
	assert.Equal(t, 500.0, *result.Breakdown[0].SIMMTotal)
}

// TestAggregate_EmptyCRIF reproduces spec.md §8 invariant 6: SIMM(∅) = 0,
// with a single-row breakdown and no Add-On column present.
func TestAggregate_EmptyCRIF(t *testing.T) {
	p, err := simmparams.New("2_5")
	require.NoError(t, err)

	table := crif.NewTableFromRows(nil)
	result := Aggregate(table, p, "USD", 1)
	assert.Equal(t, 0.0, result.Total)
	require.Len(t, result.Breakdown, 1)
	assert.Nil(t, result.Breakdown[0].AddOn)
}

// TestAggregate_NonNegative checks spec.md §8 invariant 1: SIMM_total ≥ 0.
func TestAggregate_NonNegative(t *testing.T) {
	p, err := simmparams.New("2_6")
	require.NoError(t, err)

	table := crif.NewTableFromRows([]crif.Row{
		{ProductClass: "RatesFX", RiskType: crif.RiskIRCurve, Qualifier: "USD", Bucket: crif.NewNumericBucket(1), Label1: "1y", AmountUSD: -50000, HasAmount: true},
		{ProductClass: "RatesFX", RiskType: crif.RiskFX, Qualifier: "EUR", AmountUSD: 20000, HasAmount: true},
		{ProductClass: "Credit", RiskType: crif.RiskCreditQ, Qualifier: "ISSUER1", Bucket: crif.NewNumericBucket(1), Label1: "5y", AmountUSD: 10000, HasAmount: true},
	})
	result := Aggregate(table, p, "USD", 1)
	assert.GreaterOrEqual(t, result.Total, 0.0)
}

// TestAggregate_ExchangeRateMonotonicity checks spec.md §8 invariant 2:
// scaling exchange_rate by α scales every risk-class charge (and hence the
// total) by α.
func TestAggregate_ExchangeRateMonotonicity(t *testing.T) {
	p, err := simmparams.New("2_5")
	require.NoError(t, err)

	table := crif.NewTableFromRows([]crif.Row{
		{ProductClass: "RatesFX", RiskType: crif.RiskIRCurve, Qualifier: "USD", Bucket: crif.NewNumericBucket(1), Label1: "2w", AmountUSD: 1000, HasAmount: true},
	})
	r1 := Aggregate(table, p, "USD", 1)
	r2 := Aggregate(table, p, "USD", 2)
	assert.InDelta(t, r1.Total*2, r2.Total, 1e-6)
}

func TestAggregate_ProductClassMultiplier(t *testing.T) {
	p, err := simmparams.New("2_5")
	require.NoError(t, err)

	table := crif.NewTableFromRows([]crif.Row{
		{ProductClass: "RatesFX", RiskType: crif.RiskIRCurve, Qualifier: "USD", Bucket: crif.NewNumericBucket(1), Label1: "2w", AmountUSD: 1000, HasAmount: true},
		{ProductClass: "RatesFX", RiskType: crif.ParamClassMult, Qualifier: "RatesFX", AmountUSD: 1.1, HasAmount: true},
	})
	baseline := crif.NewTableFromRows([]crif.Row{
		{ProductClass: "RatesFX", RiskType: crif.RiskIRCurve, Qualifier: "USD", Bucket: crif.NewNumericBucket(1), Label1: "2w", AmountUSD: 1000, HasAmount: true},
	})
	withMultiplier := Aggregate(table, p, "USD", 1)
	withoutMultiplier := Aggregate(baseline, p, "USD", 1)
	assert.Greater(t, withMultiplier.Total, withoutMultiplier.Total)
}
