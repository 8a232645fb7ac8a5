package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sar/sar/raster"
)

// RequirePlaneNearlyEqual fails t if got and want differ in shape or if any
// pixel pair exceeds eps (absolute tolerance).
func RequirePlaneNearlyEqual(t *testing.T, got, want *raster.Plane, eps float64) {
	t.Helper()
	if got.Rows() != want.Rows() || got.Cols() != want.Cols() {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d",
			got.Rows(), got.Cols(), want.Rows(), want.Cols())
	}
	g, w := got.Data(), want.Data()
	for i := range g {
		diff := math.Abs(g[i] - w[i])
		if diff > eps {
			t.Fatalf("pixel (%d,%d): got %v, want %v (diff %v > eps %v)",
				i/got.Cols(), i%got.Cols(), g[i], w[i], diff, eps)
		}
	}
}

// RequireComplexNearlyEqual fails t if got and want differ in shape or in
// any I or Q sample beyond eps.
func RequireComplexNearlyEqual(t *testing.T, got, want *raster.Complex, eps float64) {
	t.Helper()
	RequirePlaneNearlyEqual(t, got.I(), want.I(), eps)
	RequirePlaneNearlyEqual(t, got.Q(), want.Q(), eps)
}

// RequireFinite fails t if any pixel of p is NaN or Inf.
func RequireFinite(t *testing.T, p *raster.Plane) {
	t.Helper()
	for i, v := range p.Data() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("pixel (%d,%d): non-finite value %v", i/p.Cols(), i%p.Cols(), v)
		}
	}
}
