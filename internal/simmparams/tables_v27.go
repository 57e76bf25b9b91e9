package simmparams

import "github.com/suhasg-simmrs/simm-rs/internal/crif"

// newV27 builds the 2_7 parameter set, continuing the 2_6 recalibration
// trend.
func newV27() *params {
	ratesRegular := [12]float64{121, 112, 99, 78, 70, 63, 58, 54, 55, 58, 65, 62}
	ratesLow := [12]float64{16, 22, 23, 21, 22, 23, 24, 24, 24, 25, 25, 25}
	ratesHigh := [12]float64{163, 163, 163, 163, 163, 163, 163, 163, 163, 163, 163, 163}

	return &params{
		version: "2_7",

		ratesRW:              buildRatesRW(ratesRegular, ratesLow, ratesHigh),
		ratesVegaRW:          0.225,
		inflationRW:          49,
		ccyBasisSwapSpreadRW: 23,
		rateTenorTheta:       0.60,
		rateTenorFloor:       0.24,
		rateVegaTenorTheta:   0.35,
		rateVegaTenorFloor:   0.40,
		subCurvesCorr:        0.982,
		ccyBasisSpreadCorr:   0.50,
		inflationCorr:        0.318,
		irGammaDiffCcy:       0.28,
		irHVR:                0.63,

		fxDeltaRW: map[CurrencyVolGroup]float64{
			RegularVol: 8.3, LowVol: 7.4, HighVol: 16.6,
		},
		fxDeltaCorrRegular: [2][2]float64{{0.5, 0.25}, {0.25, 0.15}},
		fxDeltaCorrHigh:    [2][2]float64{{0.25, 0.15}, {0.15, 0.08}},
		fxVegaCorr:         0.5,
		fxVolRW: map[CurrencyVolGroup]float64{
			RegularVol: 0.16, LowVol: 0.14, HighVol: 0.32,
		},
		fxHVR: 0.5,

		equityRW:          buildBucketTable(12, 29, map[int]float64{0: 39, 5: 24, 10: 32, 12: 22}),
		equityIntraCorr:   buildBucketTable(12, 0.185, map[int]float64{12: 0.50}),
		equityGammaOff:    0.15,
		equityVegaRW:      buildBucketTable(12, 0.25, map[int]float64{0: 0.25, 12: 0.18}),
		equityVRW:         0.29,
		equityVRWBucket12: 0.21,
		equityHVR:         0.58,

		commodityRW:        buildBucketTable(17, 22, map[int]float64{0: 0, 7: 37, 14: 100, 15: 100, 17: 21}),
		commodityIntraCorr: buildBucketTable(17, 0.20, map[int]float64{14: 0, 15: 0}),
		commodityGammaOff:  0.18,
		commodityVegaRW:    buildBucketTable(17, 0.29, map[int]float64{0: 0.29}),
		commodityVRW:       0.66,
		commodityHVR:       0.70,

		creditQRW:             buildBucketTable(12, 104, map[int]float64{0: 363, 1: 77, 12: 310}),
		creditQGammaOff:       0.35,
		creditQRho:            CreditRho{SameName: 0.98, DifferentName: 0.45, ResidualInvolved: 0.5, BaseCorrelation: 0.33},
		creditQVegaRW:         0.54,
		creditQHVR:            0.72,
		creditQBaseCorrWeight: 10,

		creditNonQRW:       buildBucketTable(2, 104, map[int]float64{0: 2900, 2: 166}),
		creditNonQGammaOff: 0.60,
		creditNonQRho:      CreditRho{SameName: 0.98, DifferentName: 0.52, ResidualInvolved: 0.5, BaseCorrelation: 0},
		creditNonQVegaRW:   0.57,
		creditNonQHVR:      0.72,

		tDefault: map[crif.Measure]float64{
			crif.Delta:     2.2e8,
			crif.Vega:      2.8e8,
			crif.Curvature: 2.8e8,
			crif.BaseCorr:  2.2e8,
		},
		tByLocus: map[string]float64{
			"Rates:Delta:USD": 2.4e8,
			"FX:Delta:USD":    9.7e9,
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
