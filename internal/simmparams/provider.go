package simmparams

import (
	"fmt"

	"github.com/suhasg-simmrs/simm-rs/internal/crif"
)

// params is the single concrete Provider implementation. Each supported
// version builds one of these with its own table of numbers; the methods
// below are shared, generic logic over whatever table a version supplies
// (spec.md §9's "three near-identical numeric tables are the main axis of
// variation" design note).
type params struct {
	version string

	ratesRW                map[CurrencyVolGroup]map[crif.Tenor]float64
	ratesVegaRW             float64
	inflationRW             float64
	ccyBasisSwapSpreadRW    float64
	rateTenorTheta          float64
	rateTenorFloor          float64
	rateVegaTenorTheta      float64
	rateVegaTenorFloor      float64
	subCurvesCorr           float64
	ccyBasisSpreadCorr      float64
	inflationCorr           float64
	irGammaDiffCcy          float64
	irHVR                   float64

	fxDeltaRW          map[CurrencyVolGroup]float64
	fxDeltaCorrRegular [2][2]float64
	fxDeltaCorrHigh    [2][2]float64
	fxVegaCorr         float64
	fxVolRW            map[CurrencyVolGroup]float64
	fxHVR              float64

	equityRW          []float64 // 1-indexed; index 0 unused
	equityIntraCorr   []float64
	equityGammaOff    float64
	equityVegaRW      []float64
	equityVRW         float64
	equityVRWBucket12 float64
	equityHVR         float64

	commodityRW        []float64
	commodityIntraCorr []float64
	commodityGammaOff  float64
	commodityVegaRW    []float64
	commodityVRW       float64
	commodityHVR       float64

	creditQRW             []float64
	creditQGammaOff       float64
	creditQRho            CreditRho
	creditQVegaRW         float64
	creditQHVR            float64
	creditQBaseCorrWeight float64

	creditNonQRW       []float64
	creditNonQGammaOff float64
	creditNonQRho      CreditRho
	creditNonQVegaRW   float64
	creditNonQHVR      float64

	tDefault map[crif.Measure]float64
	tByLocus map[string]float64

	psi [6][6]float64
}

// New constructs the Provider for a SIMM version tag. Unknown version tags
// are a fatal error, per spec.md §4.1.
func New(version string) (Provider, error) {
	switch version {
	case "2_5":
		return newV25(), nil
	case "2_6":
		return newV26(), nil
	case "2_7":
		return newV27(), nil
	default:
		return nil, fmt.Errorf("simmparams: unsupported version %q", version)
	}
}

func (p *params) Version() string { return p.version }

func (p *params) RatesRW(group CurrencyVolGroup, tenor crif.Tenor) (float64, error) {
	byTenor, ok := p.ratesRW[group]
	if !ok {
		return 0, fmt.Errorf("simmparams: no rates risk weight table for volatility group %s", group)
	}
	rw, ok := byTenor[tenor]
	if !ok {
		return 0, fmt.Errorf("simmparams: no rates risk weight for tenor %q in group %s", tenor, group)
	}
	return rw, nil
}

func (p *params) RatesVegaRW() float64          { return p.ratesVegaRW }
func (p *params) InflationRW() float64          { return p.inflationRW }
func (p *params) CCyBasisSwapSpreadRW() float64 { return p.ccyBasisSwapSpreadRW }

func (p *params) RateTenorCorr(t1, t2 crif.Tenor) float64 {
	return tenorCorr(t1, t2, p.rateTenorTheta, p.rateTenorFloor)
}

func (p *params) RateVegaTenorCorr(t1, t2 crif.Tenor) float64 {
	return tenorCorr(t1, t2, p.rateVegaTenorTheta, p.rateVegaTenorFloor)
}

func (p *params) SubCurvesCorr() float64      { return p.subCurvesCorr }
func (p *params) CCyBasisSpreadCorr() float64 { return p.ccyBasisSpreadCorr }
func (p *params) InflationCorr() float64      { return p.inflationCorr }
func (p *params) IRGammaDiffCcy() float64     { return p.irGammaDiffCcy }
func (p *params) IRHVR() float64              { return p.irHVR }

func (p *params) FXDeltaRW(group CurrencyVolGroup) float64 { return p.fxDeltaRW[group] }

func (p *params) FXDeltaCorr(calcCcyHighVol, q1HighVol, q2HighVol bool) float64 {
	table := p.fxDeltaCorrRegular
	if calcCcyHighVol {
		table = p.fxDeltaCorrHigh
	}
	return table[boolIdx(q1HighVol)][boolIdx(q2HighVol)]
}

func (p *params) FXVegaCorr() float64                     { return p.fxVegaCorr }
func (p *params) FXVolRW(group CurrencyVolGroup) float64  { return p.fxVolRW[group] }
func (p *params) FXHVR() float64                          { return p.fxHVR }

func (p *params) EquityRW(bucket int) (float64, error) {
	return lookupBucket(p.equityRW, bucket, "equity")
}

func (p *params) EquityIntraBucketCorr(bucket int) (float64, bool) {
	return lookupBucketOK(p.equityIntraCorr, bucket)
}

func (p *params) EquityGamma(b1, b2 int) (float64, bool) {
	return bucketGamma(len(p.equityRW)-1, b1, b2, p.equityGammaOff)
}

func (p *params) EquityVegaRW(bucket int) (float64, bool) {
	return lookupBucketOK(p.equityVegaRW, bucket)
}

func (p *params) EquityVRW(bucket int) float64 {
	if bucket == 12 {
		return p.equityVRWBucket12
	}
	return p.equityVRW
}

func (p *params) EquityHVR() float64 { return p.equityHVR }

func (p *params) CommodityRW(bucket int) (float64, error) {
	return lookupBucket(p.commodityRW, bucket, "commodity")
}

func (p *params) CommodityIntraBucketCorr(bucket int) (float64, bool) {
	return lookupBucketOK(p.commodityIntraCorr, bucket)
}

func (p *params) CommodityGamma(b1, b2 int) (float64, bool) {
	return bucketGamma(len(p.commodityRW)-1, b1, b2, p.commodityGammaOff)
}

func (p *params) CommodityVegaRW(bucket int) (float64, bool) {
	return lookupBucketOK(p.commodityVegaRW, bucket)
}

func (p *params) CommodityVRW() float64 { return p.commodityVRW }

func (p *params) CommodityHVR() float64 { return p.commodityHVR }

func (p *params) creditTables(rc crif.RiskClass) (rw []float64, gammaOff float64, rho CreditRho, vegaRW, hvr float64, ok bool) {
	switch rc {
	case crif.CreditQ:
		return p.creditQRW, p.creditQGammaOff, p.creditQRho, p.creditQVegaRW, p.creditQHVR, true
	case crif.CreditNonQ:
		return p.creditNonQRW, p.creditNonQGammaOff, p.creditNonQRho, p.creditNonQVegaRW, p.creditNonQHVR, true
	default:
		return nil, 0, CreditRho{}, 0, 0, false
	}
}

func (p *params) CreditRW(rc crif.RiskClass, bucket int) (float64, error) {
	rw, _, _, _, _, ok := p.creditTables(rc)
	if !ok {
		return 0, fmt.Errorf("simmparams: %s has no credit risk-weight table", rc)
	}
	return lookupBucket(rw, bucket, rc.String())
}

func (p *params) CreditGamma(rc crif.RiskClass, b1, b2 int) (float64, bool) {
	rw, gammaOff, _, _, _, ok := p.creditTables(rc)
	if !ok {
		return 0, false
	}
	return bucketGamma(len(rw)-1, b1, b2, gammaOff)
}

func (p *params) CreditRho(rc crif.RiskClass) CreditRho {
	_, _, rho, _, _, _ := p.creditTables(rc)
	return rho
}

func (p *params) CreditVegaRW(rc crif.RiskClass) float64 {
	_, _, _, vegaRW, _, _ := p.creditTables(rc)
	return vegaRW
}

func (p *params) CreditHVR(rc crif.RiskClass) float64 {
	_, _, _, _, hvr, _ := p.creditTables(rc)
	return hvr
}

func (p *params) CreditQBaseCorrWeight() float64 { return p.creditQBaseCorrWeight }

func (p *params) T(rc crif.RiskClass, measure crif.Measure, locus string) float64 {
	key := rc.String() + ":" + measure.String() + ":" + locus
	if v, ok := p.tByLocus[key]; ok {
		return v
	}
	if v, ok := p.tDefault[measure]; ok {
		return v
	}
	return defaultConcentrationThreshold
}

func (p *params) Psi(rc1, rc2 crif.RiskClass) float64 {
	i, j := int(rc1), int(rc2)
	if i < 0 || i >= 6 || j < 0 || j >= 6 {
		return 0
	}
	return p.psi[i][j]
}

// defaultConcentrationThreshold is the fallback used when a class/measure
// has no registered threshold at all: a large USD notional that keeps CR at
// 1 (no concentration add-on) rather than erroring.
const defaultConcentrationThreshold = 1_000_000_000

func boolIdx(b bool) int {
	if b {
		return 1
	}
	return 0
}

// lookupBucket returns table[bucket] for a fatal-on-miss 1-indexed bucket
// table: out-of-range bucket numbers are a parameter-provider error (spec.md
// §4.1, "fatal error on unknown risk class or bucket out of range"). Index 0
// is the Residual bucket (crif.Bucket.Num() is 0 for Residual) and is a
// legitimate, populated entry in these tables, not an out-of-range miss.
func lookupBucket(table []float64, bucket int, className string) (float64, error) {
	if bucket < 0 || bucket >= len(table) {
		return 0, fmt.Errorf("simmparams: %s bucket %d out of range", className, bucket)
	}
	return table[bucket], nil
}

// lookupBucketOK is the non-fatal counterpart used by optional per-bucket
// tables (vega risk weight, intra-bucket correlation) where a miss just
// means "not applicable to this bucket". Index 0 (Residual) is in range for
// the same reason as lookupBucket.
func lookupBucketOK(table []float64, bucket int) (float64, bool) {
	if bucket < 0 || bucket >= len(table) {
		return 0, false
	}
	return table[bucket], true
}

// bucketGamma returns 1 for the diagonal and a uniform cross-bucket
// correlation off the diagonal. Real SIMM calibrates a distinct value per
// bucket pair; internal/simmparams uses one scalar per risk class, which
// preserves the aggregation's shape without reproducing the full published
// matrix (DESIGN.md).
func bucketGamma(numBuckets, b1, b2 int, off float64) (float64, bool) {
	if b1 <= 0 || b1 > numBuckets || b2 <= 0 || b2 > numBuckets {
		return 0, false
	}
	if b1 == b2 {
		return 1, true
	}
	return off, true
}
