package sim

// Buffer is an opaque backend-owned allocation. The CPU backend's
// Buffer is simply the host slice itself; a GPU backend would wrap a
// device pointer instead.
type Buffer interface{}

// KernelID names one of the integrator's elementwise kernels.
type KernelID string

const (
	KernelPrecession KernelID = "precession"
	KernelExcitation KernelID = "excitation"
)

// Work is one elementwise kernel invocation over the spin range [start, end).
type Work func(start, end int)

// Backend is the small kernel-launch interface the integrator dispatches
// through: allocate, copy in, launch, copy out, synchronize.
type Backend interface {
	Name() string
	Allocate(n int) Buffer
	CopyIn(buf Buffer, host []float64)
	CopyOut(host []float64, buf Buffer)
	// Launch partitions n spin-step updates across the backend's lanes
	// (threads or device grid) and invokes work once per partition,
	// batched so each invocation covers enough spins to amortize
	// dispatch cost.
	Launch(kernel KernelID, n int, work Work)
	Synchronize()
}

// NewBackendFunc is registered by sim/backend's init(), a bridge
// variable that avoids an import cycle between sim (interface owner)
// and sim/backend (implementation).
//
// It implements process-wide lazy backend selection: the first call
// observes which accelerator libraries are functional and binds the
// backend for the remainder of the process; zero or multiple
// functional candidates fall back to CPU with a recovered
// BackendUnavailableError/MultipleBackendsError.
var NewBackendFunc func(requestGPU bool, nThreads int) (Backend, error)

// PhantomReader decodes a third-party phantom file into a Phantom.
type PhantomReader interface {
	ReadPhantom(path string) (*Phantom, error)
}
