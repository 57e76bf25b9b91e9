// Package crif implements the CRIF (Common Risk Interchange Format) data
// model and the CRIF View query surface described in spec.md §3 and §4.2.
//
// The core never parses CSV or JSON itself (spec.md §1 places that with an
// external collaborator); it consumes rows that are already split into the
// nine named string columns and turns them into the typed Row below, per
// the Design Note in spec.md §9 ("parse CRIF once into a typed record;
// enums for ProductClass, RiskType, Tenor").
package crif

import (
	"fmt"
	"strconv"
	"strings"
)

// RiskType is one of the ~16 closed CRIF risk-type tags, plus the three
// Param_* add-on tags.
type RiskType string

// The closed set of risk types spec.md §3 names.
const (
	RiskIRCurve        RiskType = "Risk_IRCurve"
	RiskInflation      RiskType = "Risk_Inflation"
	RiskXCcyBasis      RiskType = "Risk_XCcyBasis"
	RiskIRVol          RiskType = "Risk_IRVol"
	RiskInflationVol   RiskType = "Risk_InflationVol"
	RiskFX             RiskType = "Risk_FX"
	RiskFXVol          RiskType = "Risk_FXVol"
	RiskCreditQ        RiskType = "Risk_CreditQ"
	RiskCreditVol      RiskType = "Risk_CreditVol"
	RiskBaseCorr       RiskType = "Risk_BaseCorr"
	RiskCreditNonQ     RiskType = "Risk_CreditNonQ"
	RiskCreditVolNonQ  RiskType = "Risk_CreditVolNonQ"
	RiskEquity         RiskType = "Risk_Equity"
	RiskEquityVol      RiskType = "Risk_EquityVol"
	RiskCommodity      RiskType = "Risk_Commodity"
	RiskCommodityVol   RiskType = "Risk_CommodityVol"
	ParamAddOnFixed    RiskType = "Param_AddOnFixedAmount"
	ParamAddOnNotional RiskType = "Param_AddOnNotionalFactor"
	ParamClassMult     RiskType = "Param_ProductClassMultiplier"
	RiskNotional       RiskType = "Notional"
)

// RiskClass is one of the six top-level aggregation groups.
type RiskClass int

const (
	Rates RiskClass = iota
	FX
	CreditQ
	CreditNonQ
	Equity
	Commodity
	numRiskClasses
)

func (c RiskClass) String() string {
	switch c {
	case Rates:
		return "Rates"
	case FX:
		return "FX"
	case CreditQ:
		return "CreditQ"
	case CreditNonQ:
		return "CreditNonQ"
	case Equity:
		return "Equity"
	case Commodity:
		return "Commodity"
	default:
		return fmt.Sprintf("RiskClass(%d)", int(c))
	}
}

// AllRiskClasses lists the six risk classes in a fixed order, used whenever
// the engine needs to iterate them deterministically (psi matrix, the
// portfolio breakdown, ...).
func AllRiskClasses() []RiskClass {
	return []RiskClass{Rates, FX, CreditQ, CreditNonQ, Equity, Commodity}
}

// Measure is one of the four risk measures a (risk class, bucket) pair can
// be aggregated under.
type Measure int

const (
	Delta Measure = iota
	Vega
	Curvature
	BaseCorr
)

func (m Measure) String() string {
	switch m {
	case Delta:
		return "Delta"
	case Vega:
		return "Vega"
	case Curvature:
		return "Curvature"
	case BaseCorr:
		return "BaseCorr"
	default:
		return fmt.Sprintf("Measure(%d)", int(m))
	}
}

// riskTypeInfo records how a risk type feeds the aggregation: which risk
// class it belongs to, and which measure(s) it contributes sensitivities
// to. Vol-type risk types feed both Vega and Curvature (spec.md §4.4), so
// curvature is tracked as a separate boolean rather than folded into a
// single Measure field.
type riskTypeInfo struct {
	class        RiskClass
	measure      Measure
	hasCurvature bool
}

var riskTypeTable = map[RiskType]riskTypeInfo{
	RiskIRCurve:       {class: Rates, measure: Delta},
	RiskInflation:     {class: Rates, measure: Delta},
	RiskXCcyBasis:     {class: Rates, measure: Delta},
	RiskIRVol:         {class: Rates, measure: Vega, hasCurvature: true},
	RiskInflationVol:  {class: Rates, measure: Vega, hasCurvature: true},
	RiskFX:            {class: FX, measure: Delta},
	RiskFXVol:         {class: FX, measure: Vega, hasCurvature: true},
	RiskCreditQ:       {class: CreditQ, measure: Delta},
	RiskCreditVol:     {class: CreditQ, measure: Vega, hasCurvature: true},
	RiskBaseCorr:      {class: CreditQ, measure: BaseCorr},
	RiskCreditNonQ:    {class: CreditNonQ, measure: Delta},
	RiskCreditVolNonQ: {class: CreditNonQ, measure: Vega, hasCurvature: true},
	RiskEquity:        {class: Equity, measure: Delta},
	RiskEquityVol:     {class: Equity, measure: Vega, hasCurvature: true},
	RiskCommodity:     {class: Commodity, measure: Delta},
	RiskCommodityVol:  {class: Commodity, measure: Vega, hasCurvature: true},
}

// RiskClassOf maps a risk type tag to its risk class via the fixed
// injection spec.md §3 describes. ok is false for add-on Param_* tags and
// for Notional, which do not participate in the quadratic aggregation.
func RiskClassOf(rt RiskType) (RiskClass, bool) {
	info, ok := riskTypeTable[rt]
	if !ok {
		return 0, false
	}
	return info.class, true
}

// MeasureOf returns the primary measure (Delta/Vega/BaseCorr) a risk type
// feeds.
func MeasureOf(rt RiskType) (Measure, bool) {
	info, ok := riskTypeTable[rt]
	if !ok {
		return 0, false
	}
	return info.measure, true
}

// HasCurvature reports whether rt also contributes to the Curvature measure
// (true for every "*Vol" risk type).
func HasCurvature(rt RiskType) bool {
	info, ok := riskTypeTable[rt]
	return ok && info.hasCurvature
}

// Tenor is one of the twelve canonical tenor labels, or the sentinel "Inf"
// / "XCcy" markers used for inflation and cross-currency-basis rows.
type Tenor string

// CanonicalTenors lists the twelve tenors in their fixed order (spec.md §3
// and the determinism Design Note in §9: "iterate qualifiers by
// first-appearance" pairs with a fixed tenor order for GIRR buckets).
var CanonicalTenors = []Tenor{"2w", "1m", "3m", "6m", "1y", "2y", "3y", "5y", "10y", "15y", "20y", "30y"}

var canonicalTenorSet = func() map[Tenor]int {
	m := make(map[Tenor]int, len(CanonicalTenors))
	for i, t := range CanonicalTenors {
		m[t] = i
	}
	return m
}()

// ParseTenor lowercases s and reports whether it is one of the twelve
// canonical tenors.
func ParseTenor(s string) (Tenor, bool) {
	t := Tenor(strings.ToLower(strings.TrimSpace(s)))
	_, ok := canonicalTenorSet[t]
	return t, ok
}

// TenorIndex returns the tenor's position in the canonical ordered set, or
// -1 if t is not canonical.
func TenorIndex(t Tenor) int {
	if idx, ok := canonicalTenorSet[t]; ok {
		return idx
	}
	return -1
}

// InfTenor and XCcyTenor are the pseudo-tenor labels used for inflation and
// cross-currency-basis rows (spec.md §4.4), which do not belong to the
// twelve canonical tenors but still need an ordering position after them.
const (
	InfTenor   Tenor = "Inf"
	XCcyTenor  Tenor = "XCcy"
)

// Bucket is a sum type: either a numeric bucket (1..17 depending on risk
// class) or the Residual sentinel. Modelling it this way (rather than
// overloading integer 0, per the Design Note in spec.md §9) keeps "sum
// Residual additively, combine numeric buckets via gamma" a type-level
// distinction instead of a runtime convention callers can get wrong.
type Bucket struct {
	residual bool
	n        int
}

// ResidualBucket is the sentinel Residual bucket (CRIF literal "Residual",
// internally bucket 0).
var ResidualBucket = Bucket{residual: true}

// NewNumericBucket constructs a numeric bucket. n == 0 maps to
// ResidualBucket rather than panicking, mirroring ParseBucket's treatment of
// the CRIF literal "0".
func NewNumericBucket(n int) Bucket {
	if n == 0 {
		return ResidualBucket
	}
	return Bucket{n: n}
}

// IsResidual reports whether b is the Residual sentinel.
func (b Bucket) IsResidual() bool { return b.residual }

// Num returns the numeric bucket number, or 0 for Residual.
func (b Bucket) Num() int { return b.n }

func (b Bucket) String() string {
	if b.residual {
		return "Residual"
	}
	return strconv.Itoa(b.n)
}

// ParseBucket parses a CRIF Bucket cell. The literal "Residual" (any case)
// and the numeral "0" both map to ResidualBucket; any other integer is a
// numeric bucket.
func ParseBucket(raw string) Bucket {
	s := strings.TrimSpace(raw)
	if strings.EqualFold(s, "Residual") || s == "" {
		return ResidualBucket
	}
	n, err := strconv.Atoi(s)
	if err != nil || n == 0 {
		return ResidualBucket
	}
	return Bucket{n: n}
}

// Row is a single CRIF sensitivity entry (spec.md §3).
type Row struct {
	ProductClass string
	RiskType     RiskType
	Qualifier    string
	Bucket       Bucket
	Label1       string // raw tenor label
	Label2       string // sub-curve identifier, or "Inf"/"XCcy" marker
	AmountUSD    float64
	HasAmount    bool // false when the source cell was blank/unparseable
}

// RiskClass returns the row's risk class, and false for rows (Param_*,
// Notional) that don't belong to one of the six risk classes.
func (r Row) RiskClass() (RiskClass, bool) {
	return RiskClassOf(r.RiskType)
}

// Tenor parses Label1 into a canonical (lowercased) tenor, falling back to
// the raw, unmodified label for "Inf"/"XCcy" pseudo-tenors.
func (r Row) Tenor() Tenor {
	if t, ok := ParseTenor(r.Label1); ok {
		return t
	}
	return Tenor(r.Label1)
}
