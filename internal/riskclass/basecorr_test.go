package riskclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suhasg-simmrs/simm-rs/internal/crif"
	"github.com/suhasg-simmrs/simm-rs/internal/simmparams"
)

// TestBaseCorr_S4 reproduces spec.md §8's scenario S4: a single base-corr
// row charges CREDIT_Q_BASE_CORR_WEIGHT · amount = 10 · 100 = 1000.
func TestBaseCorr_S4(t *testing.T) {
	p, err := simmparams.New("2_5")
	require.NoError(t, err)

	rows := []crif.Row{
		{ProductClass: "Credit", RiskType: crif.RiskBaseCorr, Qualifier: "X", AmountUSD: 100, HasAmount: true},
	}
	view := crif.NewTableFromRows(rows).View()
	assert.Equal(t, 1000.0, baseCorr(view, p))
}

func TestBaseCorr_EmptyIsZero(t *testing.T) {
	p, _ := simmparams.New("2_5")
	assert.Equal(t, 0.0, baseCorr(crif.NewTableFromRows(nil).View(), p))
}

// TestAggregate_BaseCorrOnlyUnderCreditQ checks spec.md §4.4's "emitted
// into CreditQ's BaseCorr measure; zero for all other risk classes".
func TestAggregate_BaseCorrOnlyUnderCreditQ(t *testing.T) {
	p, err := simmparams.New("2_5")
	require.NoError(t, err)

	rows := []crif.Row{
		{ProductClass: "Credit", RiskType: crif.RiskBaseCorr, Qualifier: "X", AmountUSD: 100, HasAmount: true},
	}
	out := Aggregate(crif.NewTableFromRows(rows).View(), p, "USD")
	assert.Equal(t, 1000.0, out[ClassMeasure{Class: crif.CreditQ, Measure: crif.BaseCorr}])
	_, ok := out[ClassMeasure{Class: crif.CreditNonQ, Measure: crif.BaseCorr}]
	assert.False(t, ok)
}

// TestAggregate_MeasureOrthogonality checks spec.md §8 invariant 7: Vol
// rows contribute zero to Delta and vice versa.
func TestAggregate_MeasureOrthogonality(t *testing.T) {
	p, err := simmparams.New("2_5")
	require.NoError(t, err)

	rows := []crif.Row{
		{ProductClass: "Equity", RiskType: crif.RiskEquityVol, Qualifier: "AAPL", Bucket: crif.NewNumericBucket(1), AmountUSD: 10000, HasAmount: true},
	}
	out := Aggregate(crif.NewTableFromRows(rows).View(), p, "USD")
	_, hasDelta := out[ClassMeasure{Class: crif.Equity, Measure: crif.Delta}]
	assert.False(t, hasDelta)
}
