package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimResult_SignalReturnTypePopulatesOnlySignal(t *testing.T) {
	r := &SimResult{Signal: Signal{1 + 2i, 3 + 4i}, Complete: true}
	assert.Len(t, r.Signal, 2)
	assert.Nil(t, r.Magnetization)
	assert.Nil(t, r.Raw)
	assert.Nil(t, r.Dict)
}

func TestRawAcquisition_TracksBlockIndexAndPhasePerSample(t *testing.T) {
	raw := &RawAcquisition{
		Samples:       Signal{1 + 0i, 0 + 1i},
		BlockIndex:    []int{0, 2},
		ReceiverPhase: []float64{0, 1.5707963267948966},
	}
	assert.Equal(t, 2, len(raw.Samples))
	assert.Equal(t, []int{0, 2}, raw.BlockIndex)
	assert.InDelta(t, 1.5707963267948966, raw.ReceiverPhase[1], 1e-12)
}

func TestDictEntry_CapturesLastKernelAndFinalState(t *testing.T) {
	e := DictEntry{LastKernel: KernelPrecession, Mxy: 0.5 + 0.1i, Mz: 0.8}
	assert.Equal(t, KernelPrecession, e.LastKernel)
	assert.InDelta(t, 0.8, e.Mz, 1e-12)
}

func TestSimResult_CompleteFalseOnCancellation(t *testing.T) {
	r := &SimResult{Complete: false}
	assert.False(t, r.Complete)
}
