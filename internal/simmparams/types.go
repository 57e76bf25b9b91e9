// Package simmparams is the Parameter Provider (spec.md §4.1): a
// capability set of risk weights, correlations, concentration thresholds
// and cross-class correlations, polymorphic over the SIMM version. Each
// version is a distinct Go value behind the same Provider interface; no
// string dispatch happens inside the aggregation kernels that consume it
// (spec.md §9's Design Note).
package simmparams

import "github.com/suhasg-simmrs/simm-rs/internal/crif"

// CurrencyVolGroup classifies a currency for the purposes of the rates
// delta/vega risk-weight tables and the FX risk-weight/correlation tables.
type CurrencyVolGroup int

const (
	RegularVol CurrencyVolGroup = iota
	LowVol
	HighVol
)

func (g CurrencyVolGroup) String() string {
	switch g {
	case RegularVol:
		return "Regular"
	case LowVol:
		return "Low"
	case HighVol:
		return "High"
	default:
		return "Unknown"
	}
}

// CreditRho is the four-scalar collapsed correlation table credit risk
// types use in place of a full name×name matrix (spec.md §4.1: "for
// credit, it collapses to four scalars").
type CreditRho struct {
	SameName         float64
	DifferentName    float64
	ResidualInvolved float64
	BaseCorrelation  float64
}

// Provider is the capability set a single SIMM version exposes. All
// coordinates are string/enum-typed, never risk-class-specific Go types,
// so the call sites in internal/riskclass and internal/portfolio are
// written once against the interface and never switch on version.
type Provider interface {
	// Version reports the version tag ("2_5", "2_6", "2_7").
	Version() string

	// RatesRW returns the rates delta risk weight for a tenor, given the
	// currency's volatility group classification (spec.md §4.1: rates
	// weights are NOT served through RW — they depend jointly on currency
	// volatility group and tenor).
	RatesRW(group CurrencyVolGroup, tenor crif.Tenor) (float64, error)

	// RatesVegaRW returns the scalar IR vega risk weight (IR_VRW).
	RatesVegaRW() float64

	// InflationRW and CCyBasisSwapSpreadRW are the scalar delta risk
	// weights for Risk_Inflation and Risk_XCcyBasis rows.
	InflationRW() float64
	CCyBasisSwapSpreadRW() float64

	// RateTenorCorr returns the tenor-tenor correlation used for the IR
	// delta kernel's cross term.
	RateTenorCorr(t1, t2 crif.Tenor) float64
	// RateVegaTenorCorr is the analogous table for Risk_IRVol.
	RateVegaTenorCorr(t1, t2 crif.Tenor) float64

	// SubCurvesCorr, CCyBasisSpreadCorr, InflationCorr are the scalar
	// sub-curve correlation constants the delta kernel's rates path uses.
	SubCurvesCorr() float64
	CCyBasisSpreadCorr() float64
	InflationCorr() float64

	// IRGammaDiffCcy is the cross-currency gamma used when more than one
	// currency is present in the IR aggregation.
	IRGammaDiffCcy() float64
	// IRHVR is the Historical Volatility Ratio the Rates curvature charge
	// is divided by (squared) at the end of the calculation (spec.md §4.4).
	IRHVR() float64

	// FXDeltaRW returns the FX delta risk weight for a qualifier currency's
	// volatility group.
	FXDeltaRW(group CurrencyVolGroup) float64
	// FXDeltaCorr selects the 2x2 correlation table keyed by the
	// volatility membership of the two qualifier currencies, choosing the
	// table variant based on whether the calculation currency is itself
	// high-volatility.
	FXDeltaCorr(calcCcyHighVol, q1HighVol, q2HighVol bool) float64
	// FXVegaCorr is the single scalar FX vega correlation.
	FXVegaCorr() float64
	// FXVolRW returns the FX vega/curvature risk-weight input for a
	// qualifier currency pair's volatility category.
	FXVolRW(group CurrencyVolGroup) float64
	FXHVR() float64

	// EquityRW / EquityIntraBucketCorr / EquityGamma are the Equity bucket
	// tables (buckets 1..12).
	EquityRW(bucket int) (float64, error)
	EquityIntraBucketCorr(bucket int) (float64, bool)
	EquityGamma(b1, b2 int) (float64, bool)
	EquityVegaRW(bucket int) (float64, bool)
	// EquityVRW returns the scalar vega risk-weight multiplier (EQUITY_VRW,
	// or EQUITY_VRW_BUCKET_12 for bucket 12).
	EquityVRW(bucket int) float64
	EquityHVR() float64

	// CommodityRW / CommodityIntraBucketCorr / CommodityGamma are the
	// Commodity bucket tables (buckets 1..17).
	CommodityRW(bucket int) (float64, error)
	CommodityIntraBucketCorr(bucket int) (float64, bool)
	CommodityGamma(b1, b2 int) (float64, bool)
	CommodityVegaRW(bucket int) (float64, bool)
	// CommodityVRW returns the scalar vega risk-weight multiplier
	// (COMMODITY_VRW).
	CommodityVRW() float64
	CommodityHVR() float64

	// CreditRW / CreditGamma / CreditRho serve both CreditQ and CreditNonQ
	// (the class distinguishes the bucket count, not the shape of the
	// tables).
	CreditRW(rc crif.RiskClass, bucket int) (float64, error)
	CreditGamma(rc crif.RiskClass, b1, b2 int) (float64, bool)
	CreditRho(rc crif.RiskClass) CreditRho
	CreditVegaRW(rc crif.RiskClass) float64
	CreditHVR(rc crif.RiskClass) float64
	CreditQBaseCorrWeight() float64

	// T returns the concentration threshold (in USD) for a risk
	// class/measure/locus (currency or bucket number as a string).
	// Concentration thresholds always resolve to a value: an unrecognised
	// locus falls back to the measure's default threshold (and, failing
	// that, a package-wide fallback) rather than erroring,
	// since under-concentration is the conservative (CR=1) direction.
	T(rc crif.RiskClass, measure crif.Measure, locus string) float64

	// Psi is the 6x6 cross-risk-class correlation. Undefined combinations
	// (there are none among the six risk classes) would be zero.
	Psi(rc1, rc2 crif.RiskClass) float64
}
