package crif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable_MissingRequiredColumn(t *testing.T) {
	_, err := NewTable([]string{"ProductClass", "RiskType"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Qualifier")
}

func TestNewTable_ParsesRecords(t *testing.T) {
	header := AllColumns
	records := []Record{
		{
			"ProductClass": "RatesFX", "RiskType": "Risk_IRCurve", "Qualifier": "USD",
			"Bucket": "", "Label1": "2W", "Label2": "", "AmountUSD": "1000",
		},
		{
			"ProductClass": "RatesFX", "RiskType": "Param_AddOnFixedAmount", "Qualifier": "",
			"Bucket": "", "Label1": "", "Label2": "", "AmountUSD": "",
		},
	}
	tbl, err := NewTable(header, records)
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())

	rows := tbl.View().Rows()
	assert.Equal(t, Tenor("2w"), rows[0].Tenor())
	assert.True(t, rows[0].HasAmount)
	assert.Equal(t, 1000.0, rows[0].AmountUSD)

	assert.False(t, rows[1].HasAmount)
	assert.Equal(t, 0.0, rows[1].AmountUSD)
}

func TestTable_Empty(t *testing.T) {
	tbl, err := NewTable(AllColumns, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, 0.0, tbl.View().SumUSD())
}

func TestParseBucket(t *testing.T) {
	assert.True(t, ParseBucket("Residual").IsResidual())
	assert.True(t, ParseBucket("residual").IsResidual())
	assert.True(t, ParseBucket("0").IsResidual())
	assert.True(t, ParseBucket("").IsResidual())
	assert.True(t, ParseBucket("not-a-number").IsResidual())

	b := ParseBucket("5")
	assert.False(t, b.IsResidual())
	assert.Equal(t, 5, b.Num())
}

func TestByRiskClass(t *testing.T) {
	rows := []Row{
		{ProductClass: "RatesFX", RiskType: RiskIRCurve, Qualifier: "USD", AmountUSD: 1, HasAmount: true},
		{ProductClass: "RatesFX", RiskType: RiskFX, Qualifier: "EUR", AmountUSD: 1, HasAmount: true},
		{ProductClass: "RatesFX", RiskType: ParamAddOnFixed, AmountUSD: 1, HasAmount: true},
	}
	tbl := NewTableFromRows(rows)
	assert.Equal(t, 1, tbl.ByRiskClass(Rates).Len())
	assert.Equal(t, 1, tbl.ByRiskClass(FX).Len())
}
