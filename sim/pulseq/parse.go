package pulseq

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/bloch-sim/bloch-sim/sim"
)

// Parse reads a .seq text document into a Document, per its section
// grammar. Malformed rows surface as a FormatError; an unrecognized
// version surfaces as UnsupportedVersionError;
// a shape id referenced by an event but absent from [SHAPES] surfaces
// as DanglingReferenceError once the caller resolves it (Parse itself
// only validates shape ids that are self-contained within [SHAPES]).
func Parse(text string) (*Document, error) {
	d := NewDocument(Version{})
	section := ""
	var shapeID int
	var shapeSamples int
	var shapeVals []float64

	flushShape := func() {
		if section == "[SHAPES]" && shapeID != 0 {
			d.Shapes[shapeID] = Shape{NumSamples: shapeSamples, Compressed: shapeVals}
		}
		shapeID, shapeSamples, shapeVals = 0, 0, nil
	}

	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	haveVersion := false

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			flushShape()
			section = line
			continue
		}

		fields := strings.Fields(line)
		var err error
		switch section {
		case "[VERSION]":
			err = parseVersionLine(d, fields)
		case "[DEFINITIONS]":
			if len(fields) < 2 {
				err = sim.FormatError("malformed definitions line: " + line)
			} else {
				d.Definitions[fields[0]] = strings.Join(fields[1:], " ")
			}
		case "[BLOCKS]":
			err = parseBlockLine(d, fields)
		case "[RF]":
			err = parseRFLine(d, fields)
		case "[TRAP]":
			err = parseTrapLine(d, fields)
		case "[GRADIENTS]":
			err = parseGradLine(d, fields)
		case "[ADC]":
			err = parseADCLine(d, fields)
		case "[DELAYS]":
			err = parseDelayLine(d, fields)
		case "[SHAPES]":
			err = parseShapeLine(fields, &shapeID, &shapeSamples, &shapeVals, flushShape)
		default:
			err = sim.FormatError("content before any section header")
		}
		if err != nil {
			return nil, err
		}
		if section == "[VERSION]" {
			haveVersion = true
		}
	}
	flushShape()
	if err := sc.Err(); err != nil {
		return nil, sim.FormatError(err.Error())
	}
	if !haveVersion {
		return nil, sim.FormatError("missing [VERSION] section")
	}
	if err := checkVersion(d.Version); err != nil {
		return nil, err
	}
	return d, nil
}

func parseVersionLine(d *Document, fields []string) error {
	if len(fields) != 2 {
		return sim.FormatError("malformed version line")
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return sim.FormatError("non-integer version field: " + fields[1])
	}
	switch fields[0] {
	case "major":
		d.Version.Major = n
	case "minor":
		d.Version.Minor = n
	case "revision":
		d.Version.Revision = n
	default:
		return sim.FormatError("unknown version field: " + fields[0])
	}
	return nil
}

func parseInts(fields []string, want int) ([]int, error) {
	if len(fields) != want {
		return nil, sim.FormatError("wrong field count")
	}
	out := make([]int, want)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, sim.FormatError("non-integer field: " + f)
		}
		out[i] = n
	}
	return out, nil
}

func parseBlockLine(d *Document, fields []string) error {
	v, err := parseInts(fields, 8)
	if err != nil {
		return err
	}
	d.Blocks = append(d.Blocks, BlockRow{
		Index: v[0], DurationRaster: v[1], RFID: v[2],
		GxID: v[3], GyID: v[4], GzID: v[5], ADCID: v[6], ExtID: v[7],
	})
	return nil
}

func parseRFLine(d *Document, fields []string) error {
	if len(fields) != 7 {
		return sim.FormatError("malformed RF row")
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return sim.FormatError("non-integer RF id")
	}
	amp, err1 := strconv.ParseFloat(fields[1], 64)
	mag, err2 := strconv.Atoi(fields[2])
	phs, err3 := strconv.Atoi(fields[3])
	freq, err4 := strconv.ParseFloat(fields[4], 64)
	phase, err5 := strconv.ParseFloat(fields[5], 64)
	delay, err6 := strconv.Atoi(fields[6])
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil || err6 != nil {
		return sim.FormatError("malformed RF row fields")
	}
	d.RF[id] = RFRow{ID: id, Amplitude: amp, MagShapeID: mag, PhaseShapeID: phs, FreqOffset: freq, PhaseOffset: phase, DelayRaster: delay}
	return nil
}

func parseTrapLine(d *Document, fields []string) error {
	if len(fields) != 5 {
		return sim.FormatError("malformed TRAP row")
	}
	id, e0 := strconv.Atoi(fields[0])
	amp, e1 := strconv.ParseFloat(fields[1], 64)
	rise, e2 := strconv.Atoi(fields[2])
	flat, e3 := strconv.Atoi(fields[3])
	fall, e4 := strconv.Atoi(fields[4])
	if e0 != nil || e1 != nil || e2 != nil || e3 != nil || e4 != nil {
		return sim.FormatError("malformed TRAP row fields")
	}
	d.Grad[id] = GradRow{ID: id, Kind: GradRowTrap, Amplitude: amp, RiseRaster: rise, FlatRaster: flat, FallRaster: fall}
	return nil
}

func parseGradLine(d *Document, fields []string) error {
	if len(fields) != 4 {
		return sim.FormatError("malformed GRADIENTS row")
	}
	id, e0 := strconv.Atoi(fields[0])
	amp, e1 := strconv.ParseFloat(fields[1], 64)
	delay, e2 := strconv.Atoi(fields[2])
	shapeID, e3 := strconv.Atoi(fields[3])
	if e0 != nil || e1 != nil || e2 != nil || e3 != nil {
		return sim.FormatError("malformed GRADIENTS row fields")
	}
	d.Grad[id] = GradRow{ID: id, Kind: GradRowArbitrary, Amplitude: amp, DelayRaster: delay, ShapeID: shapeID}
	return nil
}

func parseADCLine(d *Document, fields []string) error {
	if len(fields) != 5 {
		return sim.FormatError("malformed ADC row")
	}
	id, e0 := strconv.Atoi(fields[0])
	n, e1 := strconv.Atoi(fields[1])
	dwell, e2 := strconv.Atoi(fields[2])
	delay, e3 := strconv.Atoi(fields[3])
	phase, e4 := strconv.ParseFloat(fields[4], 64)
	if e0 != nil || e1 != nil || e2 != nil || e3 != nil || e4 != nil {
		return sim.FormatError("malformed ADC row fields")
	}
	d.ADC[id] = ADCRow{ID: id, NumSamples: n, DwellNanos: dwell, DelayRaster: delay, PhaseOffset: phase}
	return nil
}

func parseDelayLine(d *Document, fields []string) error {
	v, err := parseInts(fields, 2)
	if err != nil {
		return err
	}
	d.Delays[v[0]] = v[1]
	return nil
}

func parseShapeLine(fields []string, shapeID, shapeSamples *int, shapeVals *[]float64, flush func()) error {
	if len(fields) == 2 && fields[0] == "shape_id" {
		flush()
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return sim.FormatError("non-integer shape_id")
		}
		*shapeID = n
		return nil
	}
	if len(fields) == 2 && fields[0] == "num_samples" {
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return sim.FormatError("non-integer num_samples")
		}
		*shapeSamples = n
		return nil
	}
	if len(fields) != 1 {
		return sim.FormatError("malformed shape sample line")
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return sim.FormatError("non-numeric shape sample")
	}
	*shapeVals = append(*shapeVals, v)
	return nil
}
