package backend

import "github.com/bloch-sim/bloch-sim/sim"

// gpuBackend is a placeholder for a device-dispatch backend. This
// repository ships no accelerator kernel library, so DetectAccelerators
// below never reports a functional candidate and this type is never
// actually selected in production. It exists so the Backend interface
// boundary is exercised end-to-end by tests that stub DetectAccelerators
// to simulate a device being present.
type gpuBackend struct {
	name string
	cpuBackend
}

func newGPUBackendStub(name string, nThreads int) sim.Backend {
	if nThreads < 1 {
		nThreads = 1
	}
	return &gpuBackend{name: name, cpuBackend: cpuBackend{nThreads: nThreads}}
}

func (b *gpuBackend) Name() string { return b.name }
