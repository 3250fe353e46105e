package backend

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCPUBackend_LaunchCoversEveryIndexExactlyOnce(t *testing.T) {
	be := NewCPUBackend(4)
	n := 50_000
	seen := make([]int32, n)

	be.Launch("precession", n, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})

	for i, v := range seen {
		if v != 1 {
			t.Fatalf("index %d covered %d times, want 1", i, v)
		}
	}
}

func TestCPUBackend_LaunchHandlesZeroSpins(t *testing.T) {
	be := NewCPUBackend(2)
	called := false
	be.Launch("precession", 0, func(start, end int) { called = true })
	assert.False(t, called)
}

func TestCPUBackend_AllocateCopyInCopyOutRoundTrips(t *testing.T) {
	be := NewCPUBackend(1)
	buf := be.Allocate(3)
	be.CopyIn(buf, []float64{1, 2, 3})
	out := make([]float64, 3)
	be.CopyOut(out, buf)
	assert.Equal(t, []float64{1, 2, 3}, out)
}

func TestNewCPUBackend_ClampsNonPositiveThreadsToOne(t *testing.T) {
	be := NewCPUBackend(0).(*cpuBackend)
	assert.Equal(t, 1, be.nThreads)
}
