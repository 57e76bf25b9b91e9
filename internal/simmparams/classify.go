package simmparams

import (
	"math"

	"github.com/suhasg-simmrs/simm-rs/internal/crif"
)

// highVolCurrencies and lowVolCurrencies are the fixed currency sets the
// rates and FX tables key off. Any currency outside both sets is Regular.
// These are representative classifications, not a literal regulatory
// publication; internal/simmparams documents the scalar tables that depend
// on them, not the classification itself (DESIGN.md).
var highVolCurrencies = map[string]bool{
	"BRL": true, "RUB": true, "TRY": true, "ZAR": true, "ARS": true,
	"MXN": true, "IDR": true, "COP": true, "EGP": true, "NGN": true,
}

var lowVolCurrencies = map[string]bool{
	"GBP": true, "CHF": true, "AUD": true,
	"NZD": true, "CAD": true, "SEK": true, "NOK": true, "DKK": true,
	"HKD": true, "KRW": true, "SGD": true, "TWD": true,
}

// ClassifyCurrency assigns a three-letter ISO currency code to a volatility
// group used by both the rates delta/vega tables and the FX tables.
func ClassifyCurrency(ccy string) CurrencyVolGroup {
	switch {
	case highVolCurrencies[ccy]:
		return HighVol
	case lowVolCurrencies[ccy]:
		return LowVol
	default:
		return RegularVol
	}
}

// tenorYears maps each canonical tenor (plus the Inf/XCcy pseudo-tenors) to
// an approximate year fraction, used only to drive the tenor correlation
// decay formula below.
var tenorYears = map[crif.Tenor]float64{
	"2w": 2.0 / 52, "1m": 1.0 / 12, "3m": 0.25, "6m": 0.5,
	"1y": 1, "2y": 2, "3y": 3, "5y": 5, "10y": 10, "15y": 15, "20y": 20, "30y": 30,
	crif.InfTenor: 10, crif.XCcyTenor: 10,
}

// tenorCorr computes the tenor-tenor correlation used by both the rates
// delta and rates vega kernels: an exponential decay in log-time distance,
// floored at a version-specific minimum. This mirrors the shape of SIMM's
// published rates correlation surface without reproducing its literal
// calibration (DESIGN.md).
func tenorCorr(t1, t2 crif.Tenor, theta, floor float64) float64 {
	if t1 == t2 {
		return 1
	}
	y1, ok1 := tenorYears[t1]
	y2, ok2 := tenorYears[t2]
	if !ok1 || !ok2 || y1 <= 0 || y2 <= 0 {
		return floor
	}
	ratio := y1 / y2
	if ratio < 1 {
		ratio = 1 / ratio
	}
	decay := math.Exp(-theta * math.Log(ratio))
	if decay < floor {
		return floor
	}
	return decay
}
