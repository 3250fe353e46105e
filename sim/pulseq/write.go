package pulseq

import (
	"fmt"
	"sort"
	"strings"
)

// String renders a Document as a .seq text file: one section per
// non-empty table, sorted by id for determinism.
func (d *Document) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "[VERSION]\nmajor %d\nminor %d\nrevision %d\n\n",
		d.Version.Major, d.Version.Minor, d.Version.Revision)

	if len(d.Definitions) > 0 {
		b.WriteString("[DEFINITIONS]\n")
		for _, k := range sortedStringKeys(d.Definitions) {
			fmt.Fprintf(&b, "%s %s\n", k, d.Definitions[k])
		}
		b.WriteString("\n")
	}

	if len(d.Blocks) > 0 {
		b.WriteString("[BLOCKS]\n")
		for _, row := range d.Blocks {
			fmt.Fprintf(&b, "%d %d %d %d %d %d %d %d\n",
				row.Index, row.DurationRaster, row.RFID, row.GxID, row.GyID, row.GzID, row.ADCID, row.ExtID)
		}
		b.WriteString("\n")
	}

	if len(d.RF) > 0 {
		b.WriteString("[RF]\n")
		for _, id := range sortedRFKeys(d.RF) {
			r := d.RF[id]
			fmt.Fprintf(&b, "%d %.10g %d %d %.10g %.10g %d\n",
				r.ID, r.Amplitude, r.MagShapeID, r.PhaseShapeID, r.FreqOffset, r.PhaseOffset, r.DelayRaster)
		}
		b.WriteString("\n")
	}

	writeGradSection(&b, d, "[TRAP]", GradRowTrap)
	writeGradSection(&b, d, "[GRADIENTS]", GradRowArbitrary)

	if len(d.ADC) > 0 {
		b.WriteString("[ADC]\n")
		for _, id := range sortedADCKeys(d.ADC) {
			a := d.ADC[id]
			fmt.Fprintf(&b, "%d %d %d %d %.10g\n", a.ID, a.NumSamples, a.DwellNanos, a.DelayRaster, a.PhaseOffset)
		}
		b.WriteString("\n")
	}

	if len(d.Delays) > 0 {
		b.WriteString("[DELAYS]\n")
		for _, id := range sortedDelayKeys(d.Delays) {
			fmt.Fprintf(&b, "%d %d\n", id, d.Delays[id])
		}
		b.WriteString("\n")
	}

	if len(d.Shapes) > 0 {
		b.WriteString("[SHAPES]\n")
		for _, id := range sortedShapeKeys(d.Shapes) {
			s := d.Shapes[id]
			fmt.Fprintf(&b, "shape_id %d\nnum_samples %d\n", id, s.NumSamples)
			for _, v := range s.Compressed {
				fmt.Fprintf(&b, "%.10g\n", v)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func writeGradSection(b *strings.Builder, d *Document, header string, kind GradKind) {
	var ids []int
	for id, g := range d.Grad {
		if g.Kind == kind {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return
	}
	sort.Ints(ids)
	b.WriteString(header + "\n")
	for _, id := range ids {
		g := d.Grad[id]
		if kind == GradRowTrap {
			fmt.Fprintf(b, "%d %.10g %d %d %d\n", g.ID, g.Amplitude, g.RiseRaster, g.FlatRaster, g.FallRaster)
		} else {
			fmt.Fprintf(b, "%d %.10g %d %d\n", g.ID, g.Amplitude, g.DelayRaster, g.ShapeID)
		}
	}
	b.WriteString("\n")
}

func sortedStringKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedRFKeys(m map[int]RFRow) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func sortedADCKeys(m map[int]ADCRow) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func sortedDelayKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func sortedShapeKeys(m map[int]Shape) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
