package crif

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rowsForViewTests() []Row {
	return []Row{
		{ProductClass: "RatesFX", RiskType: RiskIRCurve, Qualifier: "USD", Label1: "2w", Bucket: ResidualBucket, AmountUSD: 100, HasAmount: true},
		{ProductClass: "RatesFX", RiskType: RiskIRCurve, Qualifier: "EUR", Label1: "1y", Bucket: ResidualBucket, AmountUSD: 200, HasAmount: true},
		{ProductClass: "Credit", RiskType: RiskCreditQ, Qualifier: "ISSUER1", Bucket: NewNumericBucket(2), AmountUSD: 0, HasAmount: false},
		{ProductClass: "Credit", RiskType: RiskCreditQ, Qualifier: "ISSUER2", Bucket: ResidualBucket, AmountUSD: 50, HasAmount: true},
	}
}

func TestView_SumUSD_SkipsAbsent(t *testing.T) {
	v := NewView(rowsForViewTests())
	assert.Equal(t, 350.0, v.SumUSD())
}

func TestView_ProductList(t *testing.T) {
	v := NewView(rowsForViewTests())
	assert.Equal(t, []string{"RatesFX", "Credit"}, v.ProductList())
}

func TestView_Filter(t *testing.T) {
	v := NewView(rowsForViewTests())
	sub := v.Filter(ColumnIn(func(r Row) string { return r.ProductClass }, "Credit"))
	assert.Equal(t, 2, sub.Len())
}

func TestView_TenorList(t *testing.T) {
	v := NewView(rowsForViewTests())
	assert.Equal(t, []Tenor{"2w", "1y"}, v.TenorList())
}

func TestView_CurrencyPairList_CollapsesSwap(t *testing.T) {
	v := NewView([]Row{
		{Qualifier: "KRWUSD"},
		{Qualifier: "USDKRW"},
		{Qualifier: "EURUSD"},
	})
	assert.Equal(t, []string{"KRWUSD", "EURUSD"}, v.CurrencyPairList())
}

func TestView_BucketList(t *testing.T) {
	v := NewView(rowsForViewTests())
	list := v.BucketList()
	assert.Equal(t, []Bucket{ResidualBucket, NewNumericBucket(2)}, list)
}
