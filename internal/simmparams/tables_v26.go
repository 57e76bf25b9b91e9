package simmparams

import "github.com/suhasg-simmrs/simm-rs/internal/crif"

// newV26 builds the 2_6 parameter set: the same shape as 2_5 with the
// version-over-version recalibration SIMM typically applies (small increases
// to a handful of risk weights and the cross-currency gamma).
func newV26() *params {
	ratesRegular := [12]float64{118, 109, 97, 76, 68, 62, 57, 53, 54, 57, 64, 61}
	ratesLow := [12]float64{15, 21, 22, 20, 21, 22, 23, 23, 23, 24, 24, 24}
	ratesHigh := [12]float64{159, 159, 159, 159, 159, 159, 159, 159, 159, 159, 159, 159}

	return &params{
		version: "2_6",

		ratesRW:              buildRatesRW(ratesRegular, ratesLow, ratesHigh),
		ratesVegaRW:          0.22,
		inflationRW:          48,
		ccyBasisSwapSpreadRW: 22,
		rateTenorTheta:       0.60,
		rateTenorFloor:       0.24,
		rateVegaTenorTheta:   0.35,
		rateVegaTenorFloor:   0.40,
		subCurvesCorr:        0.982,
		ccyBasisSpreadCorr:   0.50,
		inflationCorr:        0.318,
		irGammaDiffCcy:       0.27,
		irHVR:                0.63,

		fxDeltaRW: map[CurrencyVolGroup]float64{
			RegularVol: 8.1, LowVol: 7.2, HighVol: 16.2,
		},
		fxDeltaCorrRegular: [2][2]float64{{0.5, 0.25}, {0.25, 0.15}},
		fxDeltaCorrHigh:    [2][2]float64{{0.25, 0.15}, {0.15, 0.08}},
		fxVegaCorr:         0.5,
		fxVolRW: map[CurrencyVolGroup]float64{
			RegularVol: 0.155, LowVol: 0.135, HighVol: 0.31,
		},
		fxHVR: 0.5,

		equityRW:          buildBucketTable(12, 28, map[int]float64{0: 50, 5: 23, 10: 31, 12: 21}),
		equityIntraCorr:   buildBucketTable(12, 0.18, map[int]float64{12: 0.50}),
		equityGammaOff:    0.15,
		equityVegaRW:      buildBucketTable(12, 0.245, map[int]float64{0: 0.245, 12: 0.175}),
		equityVRW:         0.285,
		equityVRWBucket12: 0.205,
		equityHVR:         0.58,

		commodityRW:        buildBucketTable(17, 21, map[int]float64{0: 0, 7: 36, 14: 100, 15: 100, 17: 20}),
		commodityIntraCorr: buildBucketTable(17, 0.20, map[int]float64{14: 0, 15: 0}),
		commodityGammaOff:  0.18,
		commodityVegaRW:    buildBucketTable(17, 0.285, map[int]float64{0: 0.285}),
		commodityVRW:       0.655,
		commodityHVR:       0.70,

		creditQRW:             buildBucketTable(12, 102, map[int]float64{0: 343, 1: 76, 12: 305}),
		creditQGammaOff:       0.35,
		creditQRho:            CreditRho{SameName: 0.98, DifferentName: 0.44, ResidualInvolved: 0.5, BaseCorrelation: 0.33},
		creditQVegaRW:         0.53,
		creditQHVR:            0.72,
		creditQBaseCorrWeight: 10,

		creditNonQRW:       buildBucketTable(2, 102, map[int]float64{0: 1300, 2: 163}),
		creditNonQGammaOff: 0.60,
		creditNonQRho:      CreditRho{SameName: 0.98, DifferentName: 0.51, ResidualInvolved: 0.5, BaseCorrelation: 0},
		creditNonQVegaRW:   0.56,
		creditNonQHVR:      0.72,

		tDefault: map[crif.Measure]float64{
			crif.Delta:     2.15e8,
			crif.Vega:      2.75e8,
			crif.Curvature: 2.75e8,
			crif.BaseCorr:  2.15e8,
		},
		tByLocus: map[string]float64{
			"Rates:Delta:USD": 2.35e8,
			"FX:Delta:USD":    9.5e9,
		},

		psi: symmetricPsi(map[[2]crif.RiskClass]float64{
			{crif.Rates, crif.FX}:              0.25,
			{crif.Rates, crif.CreditQ}:         0.20,
			{crif.Rates, crif.CreditNonQ}:      0.20,
			{crif.Rates, crif.Equity}:          0.18,
			{crif.Rates, crif.Commodity}:       0.20,
			{crif.FX, crif.CreditQ}:            0.22,
			{crif.FX, crif.CreditNonQ}:         0.22,
			{crif.FX, crif.Equity}:             0.24,
			{crif.FX, crif.Commodity}:          0.24,
			{crif.CreditQ, crif.CreditNonQ}:    0.50,
			{crif.CreditQ, crif.Equity}:        0.20,
			{crif.CreditQ, crif.Commodity}:     0.20,
			{crif.CreditNonQ, crif.Equity}:     0.18,
			{crif.CreditNonQ, crif.Commodity}:  0.18,
			{crif.Equity, crif.Commodity}:      0.35,
		}),
	}
}
