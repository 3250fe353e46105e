package sim

// Sequence is an ordered collection of Blocks laid end-to-end on a
// monotonically increasing time axis. Sequences are immutable inputs
// to a simulation run: every method below returns a new Sequence
// rather than mutating the receiver.
type Sequence struct {
	Blocks []Block
}

// NewSequence wraps a slice of blocks into a Sequence.
func NewSequence(blocks []Block) Sequence {
	return Sequence{Blocks: append([]Block(nil), blocks...)}
}

// Concat implements `a ⊕ b`: a sequence whose blocks are a.Blocks ++ b.Blocks.
func (a Sequence) Concat(b Sequence) Sequence {
	out := make([]Block, 0, len(a.Blocks)+len(b.Blocks))
	out = append(out, a.Blocks...)
	out = append(out, b.Blocks...)
	return Sequence{Blocks: out}
}

// ScaleAmplitude scales all gradient amplitudes by factor; RF is untouched.
func (s Sequence) ScaleAmplitude(factor float64) Sequence {
	out := make([]Block, len(s.Blocks))
	for i, blk := range s.Blocks {
		out[i] = blk
		out[i].Gx = scaleGrad(blk.Gx, factor)
		out[i].Gy = scaleGrad(blk.Gy, factor)
		out[i].Gz = scaleGrad(blk.Gz, factor)
	}
	return Sequence{Blocks: out}
}

func scaleGrad(g *GradEvent, factor float64) *GradEvent {
	if g == nil {
		return nil
	}
	scaled := *g
	scaled.Amplitude *= factor
	return &scaled
}

// Subset returns the sub-sequence spanning block indices [from, to).
func (s Sequence) Subset(from, to int) Sequence {
	if from < 0 {
		from = 0
	}
	if to > len(s.Blocks) {
		to = len(s.Blocks)
	}
	if from >= to {
		return Sequence{}
	}
	return Sequence{Blocks: append([]Block(nil), s.Blocks[from:to]...)}
}

// Duration is the sum of block durations.
func (s Sequence) Duration() float64 {
	var total float64
	for i := range s.Blocks {
		total += s.Blocks[i].Duration()
	}
	return total
}

// BlockStart returns the start time of block i: the sum of prior block durations.
func (s Sequence) BlockStart(i int) float64 {
	var t float64
	for j := 0; j < i && j < len(s.Blocks); j++ {
		t += s.Blocks[j].Duration()
	}
	return t
}

// RFOn reports whether block i carries an RF event with positive duration.
func (s Sequence) RFOn(i int) bool {
	return i >= 0 && i < len(s.Blocks) && s.Blocks[i].RF.IsOn()
}

// GradOn reports whether block i carries a gradient on the given axis with positive duration.
func (s Sequence) GradOn(i int, axis GradAxis) bool {
	if i < 0 || i >= len(s.Blocks) {
		return false
	}
	return s.Blocks[i].Grad(axis).IsOn()
}

// ADCOn reports whether block i carries an ADC window with positive duration.
func (s Sequence) ADCOn(i int) bool {
	return i >= 0 && i < len(s.Blocks) && s.Blocks[i].ADC.IsOn()
}

// RFCenter returns the time-of-maximum |RF envelope|, relative to the
// sequence start, including the block's own start offset and the RF
// event's delay.
func (s Sequence) RFCenter(i int) float64 {
	if !s.RFOn(i) {
		return s.BlockStart(i)
	}
	return s.BlockStart(i) + s.Blocks[i].RF.CenterTime()
}
