package sim

// Signal is the complex time-domain ADC sample vector a scanner would
// record: S(k) = Σ_i Mxy,i(t_k), accumulated in ADC-sample order.
type Signal []complex128

// RawAcquisition bundles the ADC sample matrix with per-sample
// provenance, consumed by a downstream k-space reconstruction that is
// itself out of scope here.
type RawAcquisition struct {
	Samples       Signal
	BlockIndex    []int     // which sequence block each sample belongs to
	ReceiverPhase []float64 // the ADC event's phase offset for each sample
}

// DictEntry is one spin's coarse fingerprint in BlochDict mode: which
// kernel branch last touched it and its final state.
type DictEntry struct {
	LastKernel KernelID
	Mxy        complex128
	Mz         float64
}

// SimResult is what Simulate returns; exactly one of its fields is
// populated, selected by SimParams.ReturnType.
type SimResult struct {
	Signal        Signal           // return_type == "mat"
	Magnetization *Magnetization   // return_type == "state"
	Raw           *RawAcquisition  // return_type == "raw"
	Dict          []DictEntry      // non-nil iff SimMethod == MethodBlochDict
	Complete      bool             // false iff the run was cancelled before the horizon
}
