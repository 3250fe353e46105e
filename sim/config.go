package sim

// ScannerConfig groups the nominal time-grid steps and raster constants
// a scheduler run needs.
type ScannerConfig struct {
	GradStep float64 // dt_gr, seconds, default DefaultGradStep
	RFStep   float64 // dt_rf, seconds, default DefaultRFStep
}

// DefaultScannerConfig returns the nominal grid steps.
func DefaultScannerConfig() ScannerConfig {
	return ScannerConfig{GradStep: DefaultGradStep, RFStep: DefaultRFStep}
}

// ReturnType selects the shape of Simulate's result.
type ReturnType string

const (
	ReturnMat   ReturnType = "mat"
	ReturnState ReturnType = "state"
	ReturnRaw   ReturnType = "raw"
)

// SimMethod selects the integrator's output granularity.
type SimMethod string

const (
	MethodBloch     SimMethod = "Bloch"
	MethodBlochDict SimMethod = "BlochDict"
)

// SimParams groups the top-level parameters of a simulation run.
type SimParams struct {
	ReturnType ReturnType
	SimMethod  SimMethod
	GPU        bool
	NThreads   int
	Scanner    ScannerConfig
	Seed       int64 // controls the diffusion random walk
}

// DefaultSimParams returns the spec's documented defaults.
func DefaultSimParams() SimParams {
	return SimParams{
		ReturnType: ReturnMat,
		SimMethod:  MethodBloch,
		GPU:        false,
		NThreads:   1,
		Scanner:    DefaultScannerConfig(),
	}
}
