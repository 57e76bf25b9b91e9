// Package engine wires the CRIF data model, the Parameter Provider, and the
// Portfolio Aggregator into the single pipeline a caller actually runs.
package engine

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/suhasg-simmrs/simm-rs/internal/config"
	"github.com/suhasg-simmrs/simm-rs/internal/crif"
	"github.com/suhasg-simmrs/simm-rs/internal/portfolio"
	"github.com/suhasg-simmrs/simm-rs/internal/simmparams"
	"github.com/suhasg-simmrs/simm-rs/internal/utils"
)

// Run ties CRIF → Parameter Provider → Portfolio Aggregator together and is
// the module's single top-level entry point: everything cmd/simmcalc and
// callers embedding this module as a library need is reachable from here.
func Run(table crif.Table, cfg config.Config, log zerolog.Logger) (portfolio.Result, error) {
	componentLog := log.With().Str("component", "engine").Logger()
	timer := utils.NewTimer("engine.Run", componentLog)
	defer timer.Stop()

	if err := cfg.Validate(); err != nil {
		return portfolio.Result{}, fmt.Errorf("validating configuration: %w", err)
	}

	provider, err := simmparams.New(cfg.WeightsAndCorrVersion)
	if err != nil {
		return portfolio.Result{}, fmt.Errorf("building parameter provider: %w", err)
	}

	result := portfolio.Aggregate(table, provider, cfg.CalculationCurrency, cfg.ExchangeRate)

	componentLog.Info().
		Int("row_count", table.View().Len()).
		Str("version", cfg.WeightsAndCorrVersion).
		Str("calc_ccy", cfg.CalculationCurrency).
		Float64("simm_total", result.Total).
		Msg("SIMM run complete")

	return result, nil
}
