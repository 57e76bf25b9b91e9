package bucket

// Delta computes K for a single (risk class, bucket) group of weighted delta
// sensitivities, per spec.md §4.3's delta kernel.
func Delta(els []Element, pair PairCorr) float64 {
	return reduce(els, pair, false)
}

// Vega has the same algebraic shape as Delta; the two are kept as distinct
// named entry points because their PairCorr callbacks are built from
// different parameter-provider tables (internal/riskclass), even though the
// reduction itself is identical.
func Vega(els []Element, pair PairCorr) float64 {
	return reduce(els, pair, false)
}

// Curvature uses ρ² in place of ρ in every cross term and ignores
// concentration factors entirely (spec.md §4.3); callers pass a PairCorr
// whose f return is always 1.
func Curvature(els []Element, pair PairCorr) float64 {
	return reduce(els, pair, true)
}
