package pulseq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloch-sim/bloch-sim/sim"
)

func sampleSequence() sim.Sequence {
	rf := &sim.RFEvent{
		Envelope:  []complex128{0, 100, 200, 100, 0},
		DwellTime: 1e-5,
		FreqOffset: 10,
		PhaseOffset: 0.1,
		Delay:     1e-4,
	}
	gx := &sim.GradEvent{Kind: sim.GradTrap, Amplitude: 0.02, Delay: 0, RiseTime: 1e-4, FlatTime: 2e-4, FallTime: 1e-4}
	adc := &sim.ADCEvent{NumSamples: 4, DwellTime: 1e-3, Delay: 5e-4, PhaseOffset: 0}
	blk1 := sim.Block{RF: rf, Gx: gx}
	blk2 := sim.Block{ADC: adc, Delay: 1e-3}
	return sim.NewSequence([]sim.Block{blk1, blk2})
}

func TestFromSequenceToSequence_RoundTripsBlockCount(t *testing.T) {
	seq := sampleSequence()
	doc := FromSequence(seq, Version{Major: 1, Minor: 4, Revision: 0})
	got, err := ToSequence(doc)
	require.NoError(t, err)
	assert.Len(t, got.Blocks, len(seq.Blocks))
}

func TestFromSequenceToSequence_RoundTripsTimingsWithinOneRasterUnit(t *testing.T) {
	seq := sampleSequence()
	doc := FromSequence(seq, Version{Major: 1, Minor: 4, Revision: 0})
	got, err := ToSequence(doc)
	require.NoError(t, err)

	assert.InDelta(t, seq.Duration(), got.Duration(), GradRaster)
	assert.InDelta(t, seq.Blocks[0].Gx.Amplitude, got.Blocks[0].Gx.Amplitude, 1e-6)
	assert.InDelta(t, seq.Blocks[1].ADC.Delay, got.Blocks[1].ADC.Delay, GradRaster)
	assert.Equal(t, seq.Blocks[1].ADC.NumSamples, got.Blocks[1].ADC.NumSamples)
}

func TestParseWrite_RoundTripsThroughText(t *testing.T) {
	seq := sampleSequence()
	doc := FromSequence(seq, Version{Major: 1, Minor: 4, Revision: 0})
	text := doc.String()

	reparsed, err := Parse(text)
	require.NoError(t, err)

	got, err := ToSequence(reparsed)
	require.NoError(t, err)
	assert.Len(t, got.Blocks, len(seq.Blocks))
	assert.InDelta(t, seq.Duration(), got.Duration(), GradRaster)
}

func TestParse_RejectsUnsupportedVersion(t *testing.T) {
	text := "[VERSION]\nmajor 2\nminor 0\nrevision 0\n\n"
	_, err := Parse(text)
	require.Error(t, err)
	var verErr *sim.UnsupportedVersionError
	assert.ErrorAs(t, err, &verErr)
}

func TestParse_MissingVersionSectionIsFatal(t *testing.T) {
	_, err := Parse("[DEFINITIONS]\nfoo bar\n")
	require.Error(t, err)
}

func TestToSequence_DanglingShapeReferenceIsFatal(t *testing.T) {
	d := NewDocument(Version{Major: 1, Minor: 4})
	d.RF[1] = RFRow{ID: 1, Amplitude: 100, MagShapeID: 99, PhaseShapeID: 98}
	d.Blocks = []BlockRow{{Index: 0, RFID: 1}}
	_, err := ToSequence(d)
	require.Error(t, err)
	var dangling *sim.DanglingReferenceError
	assert.ErrorAs(t, err, &dangling)
}
