package engine

import (
	"sort"

	"github.com/bloch-sim/bloch-sim/sim"
	"github.com/bloch-sim/bloch-sim/sim/scheduler"
)

// buildRFOnMask turns grid.RFBreaks (a flat start,end,start,end,... list
// of grid indices, one pair per RF-on block) into a per-grid-step
// boolean: true while an RF pulse is playing. Step i spans
// [T[i], T[i+1]], so the steps start..end-1 cover the pulse and the step
// leaving the end index is already precession. Grid steps outside any
// pair default to precession.
func buildRFOnMask(grid scheduler.Grid) []bool {
	mask := make([]bool, len(grid.T))
	for p := 0; p+1 < len(grid.RFBreaks); p += 2 {
		start, end := grid.RFBreaks[p], grid.RFBreaks[p+1]
		for i := start; i < end && i < len(mask); i++ {
			mask[i] = true
		}
	}
	return mask
}

// buildBlockIndex maps each grid time to the sequence block it falls
// within, via a cumulative block-start binary search. Grid steps past
// the last block's end (the final Epsilon pad) map to the last block.
func buildBlockIndex(seq sim.Sequence, t []float64) []int {
	starts := make([]float64, len(seq.Blocks))
	for i := range seq.Blocks {
		starts[i] = seq.BlockStart(i)
	}
	idx := make([]int, len(t))
	for i, tv := range t {
		b := sort.SearchFloat64s(starts, tv)
		if b == len(starts) || starts[b] > tv {
			b--
		}
		if b < 0 {
			b = 0
		}
		idx[i] = b
	}
	return idx
}
