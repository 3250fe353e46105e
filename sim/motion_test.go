package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMotion_ZeroAlwaysReturnsZero(t *testing.T) {
	assert.Equal(t, 0.0, ZeroMotion.At(0))
	assert.Equal(t, 0.0, ZeroMotion.At(123.456))
}

func TestMotion_LinearSegments_InterpolatesBetweenBreakpoints(t *testing.T) {
	m := Motion{Kind: MotionLinearSegments, Breakpoints: []float64{0, 1, 2}, Values: []float64{0, 1, 0}}
	assert.InDelta(t, 0.5, m.At(0.5), 1e-9)
	assert.InDelta(t, 1.0, m.At(1.0), 1e-9)
	assert.InDelta(t, 0.5, m.At(1.5), 1e-9)
}

func TestMotion_LinearSegments_ClampsOutsideRange(t *testing.T) {
	m := Motion{Kind: MotionLinearSegments, Breakpoints: []float64{0, 1}, Values: []float64{0, 1}}
	assert.InDelta(t, 0.0, m.At(-5), 1e-9)
	assert.InDelta(t, 1.0, m.At(5), 1e-9)
}

func TestMotion_CyclicWrapsAtPeriod(t *testing.T) {
	m := Motion{Kind: MotionLinearSegments, Breakpoints: []float64{0, 1}, Values: []float64{0, 1}, Period: 1}
	assert.InDelta(t, m.At(0.25), m.At(1.25), 1e-9)
	assert.InDelta(t, m.At(0.25), m.At(5.25), 1e-9)
}

func TestMotion_CubicSegments_MatchesValuesAtBreakpoints(t *testing.T) {
	m := Motion{
		Kind:        MotionCubicSegments,
		Breakpoints: []float64{0, 1},
		Values:      []float64{0, 1},
		Tangents:    []float64{1, 1},
	}
	assert.InDelta(t, 0.0, m.At(0), 1e-9)
	assert.InDelta(t, 1.0, m.At(1), 1e-9)
}
