package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func onePhantom() *Phantom {
	return &Phantom{
		X: []float64{0}, Y: []float64{0}, Z: []float64{0},
		Rho: []float64{1}, T1: []float64{1}, T2: []float64{0.1}, T2Star: []float64{0.12},
		OffResonance:     []float64{0},
		DiffusionLambda1: []float64{0},
		DiffusionLambda2: []float64{0},
		DiffusionTheta:   []float64{0},
	}
}

func TestPhantom_Validate_AcceptsWellFormedPhantom(t *testing.T) {
	require.NoError(t, onePhantom().Validate())
}

func TestPhantom_Validate_RejectsLengthMismatch(t *testing.T) {
	p := onePhantom()
	p.Y = append(p.Y, 0)
	err := p.Validate()
	require.Error(t, err)
	var mismatch *PhantomShapeMismatchError
	assert.ErrorAs(t, err, &mismatch)
}

func TestPhantom_Validate_RejectsNonPositiveT1(t *testing.T) {
	p := onePhantom()
	p.T1[0] = 0
	require.Error(t, p.Validate())
}

func TestPhantom_Validate_RejectsT2GreaterThanT2Star(t *testing.T) {
	p := onePhantom()
	p.T2[0] = 0.2
	p.T2Star[0] = 0.1
	require.Error(t, p.Validate())
}

func TestPhantom_NumSpins_MatchesPositionArrayLength(t *testing.T) {
	p := onePhantom()
	assert.Equal(t, 1, p.NumSpins())
}

func TestPhantom_MotionAt_DefaultsToStationaryPosition(t *testing.T) {
	p := onePhantom()
	x, y, z := p.MotionAt(0, 100)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
	assert.Equal(t, 0.0, z)
}

func TestPhantom_MotionAt_AppliesMotionField(t *testing.T) {
	p := onePhantom()
	p.MotionX = []Motion{{Kind: MotionLinearSegments, Breakpoints: []float64{0, 1}, Values: []float64{0, 1}}}
	x, _, _ := p.MotionAt(0, 0.5)
	assert.InDelta(t, 0.5, x, 1e-9)
}
