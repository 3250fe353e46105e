// Package testutil provides shared test infrastructure for the Bloch
// simulator: golden dataset types and float-tolerance assertion
// helpers. No test in this repository imports it; the existing tests
// assert with testify directly.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset is the structure of testdata/goldendataset.json: one
// entry per concrete scenario that has a closed-form reference value
// to check the integrator against.
type GoldenDataset struct {
	SpinEcho []SpinEchoCase `json:"spin_echo"`
	PGSE     []PGSECase     `json:"pgse"`
}

// SpinEchoCase is a single spin, a 90° hard pulse, free precession,
// sampled magnitude checked against the analytic T2 decay exp(-t/T2).
type SpinEchoCase struct {
	Name        string  `json:"name"`
	T1          float64 `json:"t1"`
	T2          float64 `json:"t2"`
	DwellTime   float64 `json:"dwell_time"`
	NumSamples  int     `json:"num_samples"`
	RelTol      float64 `json:"rel_tol"`
}

// PGSECase is a diffusion-weighted acquisition checked against the
// Stejskal-Tanner attenuation law.
type PGSECase struct {
	Name           string    `json:"name"`
	DiffusionCoeff float64   `json:"diffusion_coeff"`
	BValues        []float64 `json:"b_values"`
	RelTol         float64   `json:"rel_tol"`
}

// LoadGoldenDataset loads the golden dataset from the testdata
// directory. The path is resolved relative to this source file:
// sim/internal/testutil/ -> testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("failed to parse golden dataset: %v", err)
	}
	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// AssertComplexMagnitudeEqual compares |want| and |got| with relative
// tolerance over the magnitude of the complex transverse signal, not
// its phase.
func AssertComplexMagnitudeEqual(t *testing.T, name string, want, got complex128, relTol float64) {
	t.Helper()
	AssertFloat64Equal(t, name, cmplxAbs(want), cmplxAbs(got), relTol)
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
