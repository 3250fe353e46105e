package sim

import "math"

// GammaBar is the proton gyromagnetic ratio in Hz/T, i.e. γ/2π.
const GammaBar = 42.5775e6

// Gamma is the proton gyromagnetic ratio in rad/s/T.
const Gamma = 2 * math.Pi * GammaBar

// Epsilon is the single compile-time fuzz constant used whenever the
// scheduler or codec must nudge a sample off an event boundary or
// compare floating point times for "effectively equal". Centralized
// here rather than redefined ad hoc per call site.
const Epsilon = 1e-12

// DefaultGradStep is the nominal gradient/ADC time-grid step dt_gr, in seconds.
const DefaultGradStep = 1e-3

// DefaultRFStep is the nominal RF time-grid step dt_rf, in seconds (100x finer).
const DefaultRFStep = 1e-5
