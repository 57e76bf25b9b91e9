package simmparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suhasg-simmrs/simm-rs/internal/crif"
)

func TestNew_UnknownVersion(t *testing.T) {
	_, err := New("1_9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1_9")
}

func TestNew_SupportedVersions(t *testing.T) {
	for _, v := range []string{"2_5", "2_6", "2_7"} {
		p, err := New(v)
		require.NoError(t, err)
		assert.Equal(t, v, p.Version())
	}
}

func TestRatesRW_RegularVol2wPinnedForV25(t *testing.T) {
	p, err := New("2_5")
	require.NoError(t, err)
	rw, err := p.RatesRW(RegularVol, "2w")
	require.NoError(t, err)
	assert.Equal(t, 115.0, rw)
}

func TestRatesRW_UnknownTenorErrors(t *testing.T) {
	p, _ := New("2_5")
	_, err := p.RatesRW(RegularVol, "40y")
	require.Error(t, err)
}

func TestIRGammaDiffCcy_PinnedForV25(t *testing.T) {
	p, _ := New("2_5")
	assert.Equal(t, 0.24, p.IRGammaDiffCcy())
}

func TestCreditQBaseCorrWeight_PinnedAcrossVersions(t *testing.T) {
	for _, v := range []string{"2_5", "2_6", "2_7"} {
		p, _ := New(v)
		assert.Equal(t, 10.0, p.CreditQBaseCorrWeight())
	}
}

func TestPsi_DiagonalIsOneAndSymmetric(t *testing.T) {
	p, _ := New("2_6")
	classes := crif.AllRiskClasses()
	for _, rc := range classes {
		assert.Equal(t, 1.0, p.Psi(rc, rc))
	}
	for _, a := range classes {
		for _, b := range classes {
			assert.Equal(t, p.Psi(a, b), p.Psi(b, a))
		}
	}
}

func TestEquityGamma_DiagonalAndRange(t *testing.T) {
	p, _ := New("2_5")
	g, ok := p.EquityGamma(3, 3)
	require.True(t, ok)
	assert.Equal(t, 1.0, g)

	_, ok = p.EquityGamma(0, 3)
	assert.False(t, ok)

	_, ok = p.EquityGamma(13, 3)
	assert.False(t, ok)
}

func TestCreditRW_OutOfRangeBucketErrors(t *testing.T) {
	p, _ := New("2_5")
	_, err := p.CreditRW(crif.CreditQ, 13)
	require.Error(t, err)

	_, err = p.CreditRW(crif.CreditNonQ, 3)
	require.Error(t, err)

	rw, err := p.CreditRW(crif.CreditNonQ, 2)
	require.NoError(t, err)
	assert.Equal(t, 160.0, rw)
}

func TestCreditRW_RatesHasNoCreditTable(t *testing.T) {
	p, _ := New("2_5")
	_, err := p.CreditRW(crif.Rates, 1)
	require.Error(t, err)
}

func TestT_FallsBackFromLocusToDefault(t *testing.T) {
	p, _ := New("2_5")
	assert.Equal(t, 2.3e8, p.T(crif.Rates, crif.Delta, "USD"))
	assert.Equal(t, 2.1e8, p.T(crif.Rates, crif.Delta, "EUR"))
}

func TestClassifyCurrency(t *testing.T) {
	assert.Equal(t, HighVol, ClassifyCurrency("TRY"))
	assert.Equal(t, RegularVol, ClassifyCurrency("USD"))
	assert.Equal(t, RegularVol, ClassifyCurrency("PLN"))
}

func TestRateTenorCorr_SameTenorIsOne(t *testing.T) {
	p, _ := New("2_5")
	assert.Equal(t, 1.0, p.RateTenorCorr("5y", "5y"))
}

func TestEquityVRW_Bucket12IsDistinct(t *testing.T) {
	p, _ := New("2_5")
	assert.NotEqual(t, p.EquityVRW(1), p.EquityVRW(12))
}

func TestRateTenorCorr_DistantTenorsFloor(t *testing.T) {
	p, _ := New("2_5")
	rho := p.RateTenorCorr("2w", "30y")
	assert.GreaterOrEqual(t, rho, 0.24)
	assert.Less(t, rho, 1.0)
}
