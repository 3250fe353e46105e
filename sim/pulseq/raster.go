package pulseq

import "math"

// Raster periods the codec rounds timings to on write and reconstructs
// exactly on read.
const (
	GradRaster = 1e-6 // 1 microsecond, gradient/ADC/block raster
	RFRaster   = 1e-7 // 100 nanoseconds, RF raster
)

// toRasterUnits rounds a duration in seconds to the nearest integer
// multiple of raster, returned as that integer count.
func toRasterUnits(seconds, raster float64) int {
	return int(math.Round(seconds / raster))
}

// fromRasterUnits recovers a duration in seconds from an integer raster
// unit count.
func fromRasterUnits(units int, raster float64) float64 {
	return float64(units) * raster
}
