package engine

import "github.com/bloch-sim/bloch-sim/sim"

// assembler accumulates ADC samples in acquisition order and exposes
// them either as a plain Signal or, for return_type == "raw", as a
// RawAcquisition carrying per-sample block/phase provenance.
type assembler struct {
	samples sim.Signal
	blocks  []int
	phases  []float64
}

func newAssembler() *assembler {
	return &assembler{}
}

func (a *assembler) add(sample complex128, block int, phase float64) {
	a.samples = append(a.samples, sample)
	a.blocks = append(a.blocks, block)
	a.phases = append(a.phases, phase)
}

func (a *assembler) raw() *sim.RawAcquisition {
	return &sim.RawAcquisition{
		Samples:       a.samples,
		BlockIndex:    a.blocks,
		ReceiverPhase: a.phases,
	}
}
