package raster

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-sar/internal/num"
)

// Amplitude returns sqrt(I² + Q²) for every pixel.
//
// This uses SIMD-optimized implementations when available (AVX2, SSE2,
// NEON); the only allocation is the output plane.
func Amplitude(c *Complex) *Plane {
	out := &Plane{rows: c.Rows(), cols: c.Cols(), data: make([]float64, len(c.i.data))}
	vecmath.Magnitude(out.data, c.i.data, c.q.data)
	return out
}

// Intensity returns I² + Q² for every pixel.
func Intensity(c *Complex) *Plane {
	out := &Plane{rows: c.Rows(), cols: c.Cols(), data: make([]float64, len(c.i.data))}
	vecmath.Power(out.data, c.i.data, c.q.data)
	return out
}

// Phase returns atan2(Q, I) for every pixel in radians. Pixels where both
// I and Q are zero carry an undefined phase and map to 0.
func Phase(c *Complex) *Plane {
	out := &Plane{rows: c.Rows(), cols: c.Cols(), data: make([]float64, len(c.i.data))}
	for idx, re := range c.i.data {
		im := c.q.data[idx]
		if re == 0 && im == 0 {
			continue
		}
		out.data[idx] = math.Atan2(im, re)
	}
	return out
}

// IntensityDB returns 10*log10(I² + Q²) for every pixel. Zero-intensity
// pixels map to -Inf, matching the dB convention.
func IntensityDB(c *Complex) *Plane {
	out := Intensity(c)
	for idx, v := range out.data {
		out.data[idx] = num.LinearPowerToDB(v)
	}
	return out
}
