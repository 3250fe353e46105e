package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloch-sim/bloch-sim/sim"
)

func TestBuild_EmptySequenceYieldsEmptyGrid(t *testing.T) {
	g := Build(sim.NewSequence(nil), sim.DefaultScannerConfig())
	assert.Empty(t, g.T)
	assert.Empty(t, g.Dt)
}

func TestBuild_GridIsStrictlyMonotonicIncreasing(t *testing.T) {
	seq := sim.NewSequence([]sim.Block{
		{RF: &sim.RFEvent{Envelope: []complex128{0, 100, 0}, DwellTime: 1e-5}},
		{ADC: &sim.ADCEvent{NumSamples: 5, DwellTime: 1e-3}},
	})
	g := Build(seq, sim.DefaultScannerConfig())
	require.NotEmpty(t, g.T)
	for i := 1; i < len(g.T); i++ {
		assert.Greater(t, g.T[i], g.T[i-1])
	}
}

func TestBuild_EveryADCSampleTimeAppearsInGrid(t *testing.T) {
	seq := sim.NewSequence([]sim.Block{
		{ADC: &sim.ADCEvent{NumSamples: 4, DwellTime: 1e-3, Delay: 1e-4}},
	})
	g := Build(seq, sim.DefaultScannerConfig())
	require.Len(t, g.ADCIndex, 4)
	sampleTimes := seq.Blocks[0].ADC.SampleTimes()
	for k, idx := range g.ADCIndex {
		assert.InDelta(t, sampleTimes[k], g.T[idx], sim.Epsilon*10)
	}
}

func TestBuild_RFBreaksBracketTheRFWindow(t *testing.T) {
	seq := sim.NewSequence([]sim.Block{
		{RF: &sim.RFEvent{Envelope: []complex128{0, 100, 200, 100, 0}, DwellTime: 1e-5, Delay: 1e-4}},
	})
	g := Build(seq, sim.DefaultScannerConfig())
	require.Len(t, g.RFBreaks, 2)
	start, end := g.RFBreaks[0], g.RFBreaks[1]
	assert.Less(t, start, end)
	assert.InDelta(t, seq.Blocks[0].RF.StartTime(), g.T[start], 1e-6)
	assert.InDelta(t, seq.Blocks[0].RF.EndTime(), g.T[end], 1e-6)
}

func TestBuild_DensifiesGradientRampsAtNominalStep(t *testing.T) {
	cfg := sim.ScannerConfig{GradStep: 1e-4, RFStep: 1e-5}
	seq := sim.NewSequence([]sim.Block{
		{Gx: &sim.GradEvent{Kind: sim.GradTrap, Amplitude: 0.01, RiseTime: 5e-4, FlatTime: 0, FallTime: 5e-4}},
	})
	g := Build(seq, cfg)
	require.NotEmpty(t, g.T)
	for i := 1; i < len(g.T); i++ {
		assert.LessOrEqual(t, g.Dt[i-1], cfg.GradStep+sim.Epsilon)
	}
}
