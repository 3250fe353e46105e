package backend

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/bloch-sim/bloch-sim/sim"
)

// DetectAccelerators reports which accelerator libraries are functional
// in the current process. The production value always returns nil (no
// GPU backend ships in this repository — see gpu_stub.go); tests
// override it to exercise the BackendUnavailable/MultipleBackends
// recovery paths.
var DetectAccelerators = func() []string { return nil }

var (
	once        sync.Once
	instance    sim.Backend
	selectErr   error
)

func init() {
	sim.NewBackendFunc = GetBackend
}

// GetBackend implements process-wide lazy backend selection: the first
// call observes DetectAccelerators() and binds the backend for the
// remainder of the process; readers thereafter need not synchronize
// (sync.Once publishes the decision with the necessary happens-before
// edge).
func GetBackend(requestGPU bool, nThreads int) (sim.Backend, error) {
	once.Do(func() {
		if !requestGPU {
			instance = NewCPUBackend(nThreads)
			return
		}
		switch accel := DetectAccelerators(); len(accel) {
		case 0:
			selectErr = &sim.BackendUnavailableError{Requested: "gpu"}
			logrus.Warn(selectErr)
			instance = NewCPUBackend(nThreads)
		case 1:
			instance = newGPUBackendStub(accel[0], nThreads)
		default:
			selectErr = &sim.MultipleBackendsError{Candidates: accel}
			logrus.Warn(selectErr)
			instance = NewCPUBackend(nThreads)
		}
	})
	return instance, selectErr
}

// ResetForTest clears the process-wide backend singleton so tests can
// exercise GetBackend's selection logic more than once per process.
// Production code never calls this.
func ResetForTest() {
	once = sync.Once{}
	instance = nil
	selectErr = nil
}
