package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func twoBlockSequence() Sequence {
	return NewSequence([]Block{
		{RF: &RFEvent{Envelope: []complex128{0, 100, 0}, DwellTime: 1e-5}},
		{Gx: &GradEvent{Kind: GradTrap, Amplitude: 0.01, RiseTime: 1e-4, FlatTime: 1e-4, FallTime: 1e-4}},
	})
}

func TestSequence_ConcatAppendsBlocksInOrder(t *testing.T) {
	a := twoBlockSequence()
	b := NewSequence([]Block{{ADC: &ADCEvent{NumSamples: 1, DwellTime: 1e-3}}})
	c := a.Concat(b)
	assert.Len(t, c.Blocks, 3)
}

func TestSequence_ScaleAmplitudeScalesOnlyGradients(t *testing.T) {
	s := twoBlockSequence()
	scaled := s.ScaleAmplitude(2.0)
	assert.InDelta(t, 0.02, scaled.Blocks[1].Gx.Amplitude, 1e-12)
	assert.Equal(t, s.Blocks[0].RF.Envelope, scaled.Blocks[0].RF.Envelope)
}

func TestSequence_SubsetReturnsContiguousBlockRange(t *testing.T) {
	s := twoBlockSequence()
	sub := s.Subset(1, 2)
	assert.Len(t, sub.Blocks, 1)
	assert.NotNil(t, sub.Blocks[0].Gx)
}

func TestSequence_BlockStartIsSumOfPriorDurations(t *testing.T) {
	s := twoBlockSequence()
	assert.Equal(t, 0.0, s.BlockStart(0))
	assert.InDelta(t, s.Blocks[0].Duration(), s.BlockStart(1), 1e-12)
}

func TestSequence_PredicatesReflectPresenceAndDuration(t *testing.T) {
	s := twoBlockSequence()
	assert.True(t, s.RFOn(0))
	assert.False(t, s.RFOn(1))
	assert.True(t, s.GradOn(1, AxisX))
	assert.False(t, s.GradOn(1, AxisY))
	assert.False(t, s.ADCOn(0))
}

func TestSequence_DurationIsSumOfBlockDurations(t *testing.T) {
	s := twoBlockSequence()
	want := s.Blocks[0].Duration() + s.Blocks[1].Duration()
	assert.InDelta(t, want, s.Duration(), 1e-12)
}
