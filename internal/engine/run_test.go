package engine

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suhasg-simmrs/simm-rs/internal/config"
	"github.com/suhasg-simmrs/simm-rs/internal/crif"
)

func testConfig() config.Config {
	return config.Config{
		WeightsAndCorrVersion: "2_5",
		CalculationCurrency:   "USD",
		ExchangeRate:          1,
		LogLevel:              "error",
	}
}

func TestRun_EmptyTableIsZero(t *testing.T) {
	result, err := Run(crif.NewTableFromRows(nil), testConfig(), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Total)
}

func TestRun_UnknownVersionIsError(t *testing.T) {
	cfg := testConfig()
	cfg.WeightsAndCorrVersion = "9_9"
	_, err := Run(crif.NewTableFromRows(nil), cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestRun_InvalidConfigIsError(t *testing.T) {
	cfg := testConfig()
	cfg.ExchangeRate = 0
	_, err := Run(crif.NewTableFromRows(nil), cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestRun_S5FixedAddOnOnly(t *testing.T) {
	table := crif.NewTableFromRows([]crif.Row{
		{ProductClass: "RatesFX", RiskType: crif.ParamAddOnFixed, AmountUSD: 500, HasAmount: true},
	})
	result, err := Run(table, testConfig(), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 500.0, result.Total)
}
