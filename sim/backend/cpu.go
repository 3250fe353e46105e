// Package backend provides the CPU kernel-dispatch backend and the
// process-wide backend registry.
package backend

import (
	"sync"

	"github.com/bloch-sim/bloch-sim/sim"
)

// minBatch is the spin-step-update count a single kernel launch should
// cover before it's worth paying goroutine dispatch cost.
const minBatch = 10_000

// cpuBackend implements sim.Backend with thread-parallel loops bounded
// by nThreads.
type cpuBackend struct {
	nThreads int
}

// NewCPUBackend returns a CPU backend bounded to nThreads workers (≥ 1).
func NewCPUBackend(nThreads int) sim.Backend {
	if nThreads < 1 {
		nThreads = 1
	}
	return &cpuBackend{nThreads: nThreads}
}

func (b *cpuBackend) Name() string { return "cpu" }

func (b *cpuBackend) Allocate(n int) sim.Buffer {
	return make([]float64, n)
}

func (b *cpuBackend) CopyIn(buf sim.Buffer, host []float64) {
	copy(buf.([]float64), host)
}

func (b *cpuBackend) CopyOut(host []float64, buf sim.Buffer) {
	copy(host, buf.([]float64))
}

// Launch partitions n spin-step updates into batches of at least
// minBatch (fewer than nThreads batches when n is small) and runs one
// goroutine per batch, joining before returning.
func (b *cpuBackend) Launch(_ sim.KernelID, n int, work sim.Work) {
	if n <= 0 {
		return
	}
	batch := (n + b.nThreads - 1) / b.nThreads
	if batch < minBatch {
		batch = minBatch
	}
	if batch >= n {
		work(0, n)
		return
	}

	var wg sync.WaitGroup
	for start := 0; start < n; start += batch {
		end := start + batch
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			work(s, e)
		}(start, end)
	}
	wg.Wait()
}

// Synchronize is a no-op for the CPU backend: Launch already joins all
// of a kernel's goroutines before returning.
func (b *cpuBackend) Synchronize() {}
