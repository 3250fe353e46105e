package pulseq

import (
	"math"

	"github.com/bloch-sim/bloch-sim/sim"
)

// FromSequence renders a Sequence into a Document at the given version,
// ready to be written with Document.String.
func FromSequence(seq sim.Sequence, version Version) *Document {
	d := NewDocument(version)
	nextID := 1
	newID := func() int { id := nextID; nextID++; return id }

	for i := range seq.Blocks {
		blk := &seq.Blocks[i]
		row := BlockRow{Index: i}

		if blk.RF.IsOn() {
			row.RFID = newID()
			d.RF[row.RFID] = rfToRow(row.RFID, blk.RF, d)
		}
		if blk.Gx.IsOn() {
			row.GxID = newID()
			d.Grad[row.GxID] = gradToRow(row.GxID, blk.Gx, d)
		}
		if blk.Gy.IsOn() {
			row.GyID = newID()
			d.Grad[row.GyID] = gradToRow(row.GyID, blk.Gy, d)
		}
		if blk.Gz.IsOn() {
			row.GzID = newID()
			d.Grad[row.GzID] = gradToRow(row.GzID, blk.Gz, d)
		}
		if blk.ADC.IsOn() {
			row.ADCID = newID()
			d.ADC[row.ADCID] = ADCRow{
				ID:          row.ADCID,
				NumSamples:  blk.ADC.NumSamples,
				DwellNanos:  toRasterUnits(blk.ADC.DwellTime, 1e-9),
				DelayRaster: toRasterUnits(blk.ADC.Delay, GradRaster),
				PhaseOffset: blk.ADC.PhaseOffset,
			}
		}

		row.ExtID = newID()
		d.Delays[row.ExtID] = toRasterUnits(blk.Delay, GradRaster)
		row.DurationRaster = toRasterUnits(blk.Duration(), GradRaster)

		d.Blocks = append(d.Blocks, row)
	}
	return d
}

func rfToRow(id int, rf *sim.RFEvent, d *Document) RFRow {
	mag := make([]float64, len(rf.Envelope))
	phase := make([]float64, len(rf.Envelope))
	peak := 0.0
	for _, v := range rf.Envelope {
		m := math.Hypot(real(v), imag(v))
		if m > peak {
			peak = m
		}
	}
	for i, v := range rf.Envelope {
		if peak > 0 {
			mag[i] = math.Hypot(real(v), imag(v)) / peak
		}
		phase[i] = math.Atan2(imag(v), real(v)) / (2 * math.Pi)
	}
	magID, phaseID := id*2, id*2+1
	d.Shapes[magID] = NewShape(mag)
	d.Shapes[phaseID] = NewShape(phase)
	return RFRow{
		ID: id, Amplitude: peak, MagShapeID: magID, PhaseShapeID: phaseID,
		FreqOffset: rf.FreqOffset, PhaseOffset: rf.PhaseOffset,
		DelayRaster: toRasterUnits(rf.Delay, RFRaster),
	}
}

func gradToRow(id int, g *sim.GradEvent, d *Document) GradRow {
	if g.Kind == sim.GradArbitrary {
		shapeID := id * 2
		d.Shapes[shapeID] = NewShape(g.Waveform.Samples)
		return GradRow{ID: id, Kind: GradRowArbitrary, Amplitude: g.Amplitude, DelayRaster: toRasterUnits(g.Delay, GradRaster), ShapeID: shapeID}
	}
	return GradRow{
		ID: id, Kind: GradRowTrap, Amplitude: g.Amplitude,
		DelayRaster: toRasterUnits(g.Delay, GradRaster),
		RiseRaster:  toRasterUnits(g.RiseTime, GradRaster),
		FlatRaster:  toRasterUnits(g.FlatTime, GradRaster),
		FallRaster:  toRasterUnits(g.FallTime, GradRaster),
	}
}

// ToSequence reconstructs a Sequence from a Document. Every non-zero id
// referenced by a block must resolve in its table; an id that doesn't
// is a DanglingReferenceError.
func ToSequence(d *Document) (sim.Sequence, error) {
	blocks := make([]sim.Block, len(d.Blocks))
	for i, row := range d.Blocks {
		var blk sim.Block

		if row.RFID != 0 {
			r, ok := d.RF[row.RFID]
			if !ok {
				return sim.Sequence{}, &sim.DanglingReferenceError{Kind: "rf", ID: row.RFID}
			}
			rf, err := rfFromRow(r, d)
			if err != nil {
				return sim.Sequence{}, err
			}
			blk.RF = rf
		}
		var err error
		if blk.Gx, err = gradFromID(d, row.GxID); err != nil {
			return sim.Sequence{}, err
		}
		if blk.Gy, err = gradFromID(d, row.GyID); err != nil {
			return sim.Sequence{}, err
		}
		if blk.Gz, err = gradFromID(d, row.GzID); err != nil {
			return sim.Sequence{}, err
		}
		if row.ADCID != 0 {
			a, ok := d.ADC[row.ADCID]
			if !ok {
				return sim.Sequence{}, &sim.DanglingReferenceError{Kind: "adc", ID: row.ADCID}
			}
			blk.ADC = &sim.ADCEvent{
				NumSamples:  a.NumSamples,
				DwellTime:   fromRasterUnits(a.DwellNanos, 1e-9),
				Delay:       fromRasterUnits(a.DelayRaster, GradRaster),
				PhaseOffset: a.PhaseOffset,
			}
		}
		if row.ExtID != 0 {
			units, ok := d.Delays[row.ExtID]
			if !ok {
				return sim.Sequence{}, &sim.DanglingReferenceError{Kind: "delay", ID: row.ExtID}
			}
			blk.Delay = fromRasterUnits(units, GradRaster)
		}
		blocks[i] = blk
	}
	return sim.NewSequence(blocks), nil
}

func rfFromRow(r RFRow, d *Document) (*sim.RFEvent, error) {
	magShape, ok := d.Shapes[r.MagShapeID]
	if !ok {
		return nil, &sim.DanglingReferenceError{Kind: "shape", ID: r.MagShapeID}
	}
	phaseShape, ok := d.Shapes[r.PhaseShapeID]
	if !ok {
		return nil, &sim.DanglingReferenceError{Kind: "shape", ID: r.PhaseShapeID}
	}
	mag := magShape.Decompress()
	phase := phaseShape.Decompress()
	envelope := make([]complex128, len(mag))
	for i := range mag {
		theta := 2 * math.Pi * phase[i]
		envelope[i] = complex(r.Amplitude*mag[i]*math.Cos(theta), r.Amplitude*mag[i]*math.Sin(theta))
	}
	return &sim.RFEvent{
		Envelope: envelope, DwellTime: RFRaster,
		FreqOffset: r.FreqOffset, PhaseOffset: r.PhaseOffset,
		Delay: fromRasterUnits(r.DelayRaster, RFRaster),
	}, nil
}

func gradFromID(d *Document, id int) (*sim.GradEvent, error) {
	if id == 0 {
		return nil, nil
	}
	g, ok := d.Grad[id]
	if !ok {
		return nil, &sim.DanglingReferenceError{Kind: "gradient", ID: id}
	}
	if g.Kind == GradRowArbitrary {
		shape, ok := d.Shapes[g.ShapeID]
		if !ok {
			return nil, &sim.DanglingReferenceError{Kind: "shape", ID: g.ShapeID}
		}
		return &sim.GradEvent{
			Kind: sim.GradArbitrary, Amplitude: g.Amplitude,
			Delay:    fromRasterUnits(g.DelayRaster, GradRaster),
			Waveform: sim.Shape{Samples: shape.Decompress(), RasterTime: GradRaster},
		}, nil
	}
	return &sim.GradEvent{
		Kind: sim.GradTrap, Amplitude: g.Amplitude,
		Delay:    fromRasterUnits(g.DelayRaster, GradRaster),
		RiseTime: fromRasterUnits(g.RiseRaster, GradRaster),
		FlatTime: fromRasterUnits(g.FlatRaster, GradRaster),
		FallTime: fromRasterUnits(g.FallRaster, GradRaster),
	}, nil
}
