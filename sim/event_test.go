package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRFEvent_CenterTimeIsArgmaxEnvelope(t *testing.T) {
	rf := &RFEvent{Envelope: []complex128{0, 10, 100, 10, 0}, DwellTime: 1e-5, Delay: 2e-5}
	assert.InDelta(t, 2e-5+2*1e-5, rf.CenterTime(), 1e-12)
}

func TestRFEvent_IsOnFalseForEmptyEnvelope(t *testing.T) {
	rf := &RFEvent{}
	assert.False(t, rf.IsOn())
	var nilRF *RFEvent
	assert.False(t, nilRF.IsOn())
}

func TestGradEvent_TrapezoidAmplitudeRampsLinearly(t *testing.T) {
	g := &GradEvent{Kind: GradTrap, Amplitude: 1.0, RiseTime: 1e-4, FlatTime: 2e-4, FallTime: 1e-4}
	assert.InDelta(t, 0.5, g.AmplitudeAt(5e-5), 1e-9)
	assert.InDelta(t, 1.0, g.AmplitudeAt(1.5e-4), 1e-9)
	assert.InDelta(t, 0.5, g.AmplitudeAt(3.5e-4), 1e-9)
	assert.InDelta(t, 0.0, g.AmplitudeAt(5e-4), 1e-9)
}

func TestGradEvent_CornerTimesForTrapezoid(t *testing.T) {
	g := &GradEvent{Kind: GradTrap, Delay: 1e-5, RiseTime: 1e-4, FlatTime: 2e-4, FallTime: 1e-4}
	corners := g.CornerTimes()
	assert.Equal(t, []float64{1e-5, 1e-5 + 1e-4, 1e-5 + 3e-4, 1e-5 + 4e-4}, corners)
}

func TestADCEvent_SampleTimesUseCenterOfDwellConvention(t *testing.T) {
	adc := &ADCEvent{NumSamples: 3, DwellTime: 1e-3, Delay: 1e-4}
	times := adc.SampleTimes()
	assert.InDelta(t, 1e-4+0.5e-3, times[0], 1e-12)
	assert.InDelta(t, 1e-4+1.5e-3, times[1], 1e-12)
	assert.InDelta(t, 1e-4+2.5e-3, times[2], 1e-12)
}

func TestBlock_DurationIsMaxOfContainedEventEndTimes(t *testing.T) {
	blk := &Block{
		Gx:  &GradEvent{Kind: GradTrap, Amplitude: 1, RiseTime: 1e-4, FlatTime: 1e-4, FallTime: 1e-4},
		ADC: &ADCEvent{NumSamples: 10, DwellTime: 1e-4, Delay: 0},
	}
	assert.InDelta(t, blk.ADC.EndTime(), blk.Duration(), 1e-12)
}

func TestBlock_DurationFallsBackToDelayWhenNoEvents(t *testing.T) {
	blk := &Block{Delay: 5e-4}
	assert.InDelta(t, 5e-4, blk.Duration(), 1e-12)
}
