package phantomio

import "github.com/bloch-sim/bloch-sim/sim"

// ErrUnsupportedFormat is returned by the stub readers below: their
// interfaces are fully specified, but decoding the underlying binary
// formats requires an HDF5/MAT dependency this repository does not
// carry.
type ErrUnsupportedFormat string

func (e ErrUnsupportedFormat) Error() string { return "unsupported phantom format: " + string(e) }

// JEMRISReader would decode JEMRIS HDF5 `.h5` phantoms: root attributes
// Name/Dims/Dynamic/Ns/Version; groups position/{x,y,z},
// contrast/{rho,T1,T2,Deltaw}; per-contrast type driving the decoder.
type JEMRISReader struct{}

func (JEMRISReader) ReadPhantom(path string) (*sim.Phantom, error) {
	return nil, ErrUnsupportedFormat("jemris hdf5: " + path)
}

// MRiLabReader would decode MRiLab `.mat` phantoms: a VObj struct with
// XDim/YDim/ZDim/XDimRes/YDimRes/ZDimRes/Rho/T1/T2/T2Star/ChemShift,
// optionally narrowed by a frequency-range file.
type MRiLabReader struct{}

func (MRiLabReader) ReadPhantom(path string) (*sim.Phantom, error) {
	return nil, ErrUnsupportedFormat("mrilab mat: " + path)
}

var (
	_ sim.PhantomReader = JEMRISReader{}
	_ sim.PhantomReader = MRiLabReader{}
)
