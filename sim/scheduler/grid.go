// Package scheduler builds the adaptive, non-uniform time grid the
// Bloch integrator steps over: dense within RF and gradient events,
// sparse elsewhere, with every ADC sample time landing on a grid point
// to within sim.Epsilon.
package scheduler

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/bloch-sim/bloch-sim/sim"
)

// Grid is the (t, Δt) pair the integrator consumes, plus the RF break
// indices used to partition the run into excitation/precession spans.
type Grid struct {
	T         []float64 // sample times, strictly increasing
	Dt        []float64 // Dt[i] = T[i+1] - T[i]; len(Dt) == len(T)
	RFBreaks  []int     // indices in T closest to each RF start/end
	ADCIndex  []int     // index in T for every ADC sample, in acquisition order
	ADCBlock  []int     // the block each ADC sample in ADCIndex belongs to
	ADCPhase  []float64 // the ADC event's receiver phase for each sample
}

// Build runs the densification algorithm over seq using cfg's nominal steps.
func Build(seq sim.Sequence, cfg sim.ScannerConfig) Grid {
	var allTimes []float64
	var rfKeys []float64

	type adcSample struct {
		t     float64
		block int
		phase float64
	}
	var adcSamples []adcSample

	for i := range seq.Blocks {
		blk := &seq.Blocks[i]
		t0 := seq.BlockStart(i)

		if blk.RF.IsOn() {
			t1 := t0 + blk.RF.StartTime()
			t2 := t0 + blk.RF.EndTime()
			tc := t0 + blk.RF.CenterTime()
			keys := []float64{t1, t1 + sim.Epsilon, tc, t2 - sim.Epsilon, t2}
			sort.Float64s(keys)
			allTimes = append(allTimes, densify(keys, cfg.RFStep)...)
			rfKeys = append(rfKeys, t1, t2)
		}

		for _, axis := range []sim.GradAxis{sim.AxisX, sim.AxisY, sim.AxisZ} {
			g := blk.Grad(axis)
			if !g.IsOn() {
				continue
			}
			corners := g.CornerTimes()
			padded := make([]float64, 0, len(corners)+2)
			padded = append(padded, t0+corners[0]-sim.Epsilon)
			for _, c := range corners {
				padded = append(padded, t0+c)
			}
			padded = append(padded, t0+corners[len(corners)-1]+sim.Epsilon)
			sort.Float64s(padded)
			allTimes = append(allTimes, densify(padded, cfg.GradStep)...)
		}

		if blk.ADC.IsOn() {
			for _, st := range blk.ADC.SampleTimes() {
				adcSamples = append(adcSamples, adcSample{t: t0 + st, block: i, phase: blk.ADC.PhaseOffset})
			}
		}
	}

	for _, s := range adcSamples {
		allTimes = append(allTimes, s.t)
	}

	if len(allTimes) == 0 {
		return Grid{}
	}

	sort.Float64s(allTimes)
	allTimes = dedupe(allTimes)

	full := make([]float64, 0, len(allTimes)+2)
	full = append(full, allTimes[0]-sim.Epsilon)
	full = append(full, allTimes...)
	full = append(full, allTimes[len(allTimes)-1]+sim.Epsilon)

	t := full[:len(full)-1]
	dt := make([]float64, len(t))
	for i := range t {
		dt[i] = full[i+1] - full[i]
	}

	g := Grid{T: t, Dt: dt}
	for _, rk := range rfKeys {
		g.RFBreaks = append(g.RFBreaks, closestIndex(t, rk))
	}
	for _, s := range adcSamples {
		g.ADCIndex = append(g.ADCIndex, closestIndex(t, s.t))
		g.ADCBlock = append(g.ADCBlock, s.block)
		g.ADCPhase = append(g.ADCPhase, s.phase)
	}
	return g
}

// densify inserts interior points between consecutive entries of a
// sorted slice so that no gap exceeds spacing.
func densify(times []float64, spacing float64) []float64 {
	if len(times) == 0 {
		return nil
	}
	if spacing <= 0 {
		return append([]float64(nil), times...)
	}
	out := make([]float64, 0, len(times)*2)
	for i := 0; i < len(times)-1; i++ {
		t0, t1 := times[i], times[i+1]
		if t1 <= t0 {
			out = append(out, t0)
			continue
		}
		n := int((t1-t0)/spacing) + 1
		span := make([]float64, n+1)
		floats.Span(span, t0, t1)
		out = append(out, span[:len(span)-1]...)
	}
	out = append(out, times[len(times)-1])
	return out
}

// dedupe removes consecutive near-equal entries from a sorted slice.
func dedupe(sorted []float64) []float64 {
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v-out[len(out)-1] > sim.Epsilon {
			out = append(out, v)
		}
	}
	return out
}

// closestIndex returns the index of the sorted slice entry nearest to target.
func closestIndex(t []float64, target float64) int {
	i := sort.SearchFloat64s(t, target)
	if i == 0 {
		return 0
	}
	if i >= len(t) {
		return len(t) - 1
	}
	if target-t[i-1] <= t[i]-target {
		return i - 1
	}
	return i
}
