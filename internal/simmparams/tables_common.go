package simmparams

import "github.com/suhasg-simmrs/simm-rs/internal/crif"

// buildBucketTable returns a 1-indexed table of length n+1 (index 0 unused)
// filled with base, with the listed overrides applied.
func buildBucketTable(n int, base float64, overrides map[int]float64) []float64 {
	t := make([]float64, n+1)
	for i := 1; i <= n; i++ {
		t[i] = base
	}
	for b, v := range overrides {
		t[b] = v
	}
	return t
}

// buildRatesRW builds the {volatility group -> {tenor -> weight}} table from
// one ordered slice of twelve weights per group.
func buildRatesRW(regular, low, high [12]float64) map[CurrencyVolGroup]map[crif.Tenor]float64 {
	build := func(weights [12]float64) map[crif.Tenor]float64 {
		m := make(map[crif.Tenor]float64, len(crif.CanonicalTenors))
		for i, t := range crif.CanonicalTenors {
			m[t] = weights[i]
		}
		return m
	}
	return map[CurrencyVolGroup]map[crif.Tenor]float64{
		RegularVol: build(regular),
		LowVol:     build(low),
		HighVol:    build(high),
	}
}

// symmetricPsi builds the 6x6 cross-risk-class correlation matrix from the
// fifteen distinct off-diagonal pairs, in the fixed order
// crif.AllRiskClasses returns them.
func symmetricPsi(pairs map[[2]crif.RiskClass]float64) [6][6]float64 {
	var m [6][6]float64
	for i := 0; i < 6; i++ {
		m[i][i] = 1
	}
	for pair, v := range pairs {
		i, j := int(pair[0]), int(pair[1])
		m[i][j] = v
		m[j][i] = v
	}
	return m
}
