// Package engine wires the scheduler, the Bloch kernels, and a backend
// together behind the single synchronous Simulate entry point. It sits
// above sim/scheduler, sim/bloch, and sim/backend, since sim itself
// cannot import any of those sub-packages without an import cycle.
package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/bloch-sim/bloch-sim/sim"
	"github.com/bloch-sim/bloch-sim/sim/bloch"
	"github.com/bloch-sim/bloch-sim/sim/scheduler"

	// Registers the CPU backend into sim.NewBackendFunc (see
	// sim/backend/registry.go); blank-imported so Simulate works without
	// every caller having to remember the wiring import themselves.
	_ "github.com/bloch-sim/bloch-sim/sim/backend"
)

// Simulate runs the full pipeline: Pulseq-derived Sequence + Phantom +
// scanner/run parameters → per-ADC complex samples. It is synchronous
// at the API boundary; cancel may be nil, in which case the run cannot
// be cancelled.
func Simulate(phantom *sim.Phantom, seq sim.Sequence, params sim.SimParams, cancel *sim.CancelToken) (*sim.SimResult, error) {
	if err := phantom.Validate(); err != nil {
		return nil, err
	}
	if sim.NewBackendFunc == nil {
		return nil, fmt.Errorf("engine: no backend registered")
	}
	be, err := sim.NewBackendFunc(params.GPU, params.NThreads)
	if err != nil {
		// BackendUnavailable / MultipleBackends are recovered kinds,
		// already warned by the registry; execution continues on CPU.
		logrus.Warnf("backend selection recovered: %v", err)
	}
	if be == nil {
		return nil, fmt.Errorf("engine: backend selection returned no backend")
	}

	grid := scheduler.Build(seq, params.Scanner)
	n := phantom.NumSpins()
	mag := sim.NewMagnetization(phantom)

	var diff *bloch.DiffusionState
	var rng *sim.PartitionedRNG
	if needsDiffusion(phantom) {
		diff = bloch.NewDiffusionState(n)
		rng = sim.NewPartitionedRNG(params.Seed)
	}

	logrus.Infof("simulate: %d spins, %d grid steps, backend=%s, method=%s", n, len(grid.T), be.Name(), params.SimMethod)

	rfOn := buildRFOnMask(grid)
	blockOf := buildBlockIndex(seq, grid.T)
	adcAt := make(map[int]int, len(grid.ADCIndex))
	for k, idx := range grid.ADCIndex {
		adcAt[idx] = k
	}

	asm := newAssembler()
	complete := true

	for i := range grid.T {
		if cancel.Cancelled() {
			logrus.Warn("simulate: cancelled, returning partial signal")
			complete = false
			break
		}
		b := blockOf[i]
		if b < 0 || b >= len(seq.Blocks) {
			continue
		}
		blk := &seq.Blocks[b]
		blockStart := seq.BlockStart(b)
		t, dt := grid.T[i], grid.Dt[i]

		var stepErr error
		if rfOn[i] {
			be.Launch(sim.KernelExcitation, n, func(s, e int) {
				if err := bloch.ExcitationStep(phantom, mag, diff, blk, blockStart, t, dt, s, e, i); err != nil {
					stepErr = err
				}
			})
		} else {
			be.Launch(sim.KernelPrecession, n, func(s, e int) {
				if err := bloch.PrecessionStep(phantom, mag, diff, rng, blk, blockStart, t, dt, s, e, i); err != nil {
					stepErr = err
				}
			})
		}
		be.Synchronize()
		if stepErr != nil {
			return nil, stepErr
		}

		if k, ok := adcAt[i]; ok {
			asm.add(sumTransverse(mag.Mxy), grid.ADCBlock[k], grid.ADCPhase[k])
		}
	}

	result := &sim.SimResult{Complete: complete}
	switch params.ReturnType {
	case sim.ReturnState:
		result.Magnetization = mag
	case sim.ReturnRaw:
		result.Raw = asm.raw()
	default:
		result.Signal = asm.samples
	}
	if params.SimMethod == sim.MethodBlochDict {
		lastKernel := sim.KernelPrecession
		if len(rfOn) > 0 && rfOn[len(rfOn)-1] {
			lastKernel = sim.KernelExcitation
		}
		result.Dict = buildDict(mag, lastKernel)
	}
	return result, nil
}

func needsDiffusion(p *sim.Phantom) bool {
	for i := 0; i < p.NumSpins(); i++ {
		if bloch.HasDiffusion(p, i) {
			return true
		}
	}
	return false
}

// sumTransverse accumulates the final transverse component across all
// spins. The reduction is a plain sequential sum: complex addition is
// associative within 1 ULP for the spin counts this engine targets, so
// the order it's performed in does not matter.
func sumTransverse(mxy []complex128) complex128 {
	var total complex128
	for _, v := range mxy {
		total += v
	}
	return total
}

func buildDict(mag *sim.Magnetization, lastKernel sim.KernelID) []sim.DictEntry {
	dict := make([]sim.DictEntry, len(mag.Mxy))
	for i := range dict {
		dict[i] = sim.DictEntry{LastKernel: lastKernel, Mxy: mag.Mxy[i], Mz: mag.Mz[i]}
	}
	return dict
}
