package bucket

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func unitPair(rho, phi, f float64) PairCorr {
	return func(a, b Element) (float64, float64, float64) { return rho, phi, f }
}

func TestDelta_EmptyIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Delta(nil, unitPair(0, 0, 0)))
}

func TestDelta_SingletonIsAbsoluteValue(t *testing.T) {
	els := []Element{{WS: -1500}}
	assert.Equal(t, 1500.0, Delta(els, unitPair(1, 1, 1)))
}

func TestDelta_TwoFullyCorrelated(t *testing.T) {
	els := []Element{{WS: 100}, {WS: 100}}
	k := Delta(els, unitPair(1, 1, 1))
	assert.InDelta(t, 200.0, k, 1e-9)
}

func TestDelta_TwoUncorrelated(t *testing.T) {
	els := []Element{{WS: 100}, {WS: 100}}
	k := Delta(els, unitPair(0, 1, 1))
	assert.InDelta(t, math.Sqrt(2)*100, k, 1e-9)
}

func TestDelta_ConcentrationFactorScalesCrossTerm(t *testing.T) {
	els := []Element{{WS: 100}, {WS: 100}}
	full := Delta(els, unitPair(1, 1, 1))
	dampened := Delta(els, unitPair(1, 1, 0.5))
	assert.Less(t, dampened, full)
}

func TestCurvature_SquaresRho(t *testing.T) {
	els := []Element{{WS: 100}, {WS: 100}}
	// rho=0.5 squared is 0.25, not 0.5: the curvature result must be lower
	// than what the (unsquared) delta kernel would give for the same pair.
	kCurv := Curvature(els, unitPair(0.5, 1, 1))
	kDelta := Delta(els, unitPair(0.5, 1, 1))
	assert.Less(t, kCurv, kDelta)
	assert.InDelta(t, math.Sqrt(100*100+100*100+2*0.25*100*100), kCurv, 1e-9)
}

func TestReduce_NegativeQuadraticFormClampsToZero(t *testing.T) {
	els := []Element{{WS: 100}, {WS: 100}}
	k := Delta(els, unitPair(-5, 1, 1))
	assert.Equal(t, 0.0, k)
}
