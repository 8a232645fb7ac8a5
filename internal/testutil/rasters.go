// Package testutil provides deterministic raster generators and tolerance
// helpers shared across the module's tests.
package testutil

import (
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-sar/sar/raster"
)

// NewComplex allocates a complex raster, failing t on invalid shape.
func NewComplex(t testing.TB, rows, cols int) *raster.Complex {
	t.Helper()
	c, err := raster.NewComplex(rows, cols)
	if err != nil {
		t.Fatalf("NewComplex(%d, %d): %v", rows, cols, err)
	}
	return c
}

// ImpulseComplex generates a raster that is zero everywhere except for a
// single sample v at (r, c).
func ImpulseComplex(t testing.TB, rows, cols, r, c int, v complex128) *raster.Complex {
	t.Helper()
	out := NewComplex(t, rows, cols)
	out.Set(r, c, v)
	return out
}

// ConstantComplex generates a raster with every pixel set to v.
func ConstantComplex(t testing.TB, rows, cols int, v complex128) *raster.Complex {
	t.Helper()
	out := NewComplex(t, rows, cols)
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			out.Set(r, col, v)
		}
	}
	return out
}

// SidelobeRow generates a raster that is zero everywhere except for the
// real-valued pattern [-0.3, 1.0, -0.3] centered at (r, c), the classic
// two-tap sidelobe fixture.
func SidelobeRow(t testing.TB, rows, cols, r, c int) *raster.Complex {
	t.Helper()
	out := NewComplex(t, rows, cols)
	out.Set(r, c-1, complex(-0.3, 0))
	out.Set(r, c, complex(1.0, 0))
	out.Set(r, c+1, complex(-0.3, 0))
	return out
}

// NoiseComplex generates a raster of uniform noise in [-amp, amp] on both
// channels with a fixed seed for reproducibility.
func NoiseComplex(t testing.TB, rows, cols int, seed int64, amp float64) *raster.Complex {
	t.Helper()
	out := NewComplex(t, rows, cols)
	rng := rand.New(rand.NewSource(seed))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			re := (rng.Float64()*2 - 1) * amp
			im := (rng.Float64()*2 - 1) * amp
			out.Set(r, c, complex(re, im))
		}
	}
	return out
}
