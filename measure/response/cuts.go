package response

import "github.com/cwbudde/algo-sar/sar/raster"

// RowCut returns a copy of the range profile through (r, c): the samples of
// row r within half columns of c, clamped to the plane bounds.
func RowCut(p *raster.Plane, r, c, half int) []float64 {
	lo, hi := clampSpan(c, half, p.Cols())

	out := make([]float64, hi-lo)
	copy(out, p.Row(r)[lo:hi])
	return out
}

// ColCut returns a copy of the azimuth profile through (r, c): the samples
// of column c within half rows of r, clamped to the plane bounds.
func ColCut(p *raster.Plane, r, c, half int) []float64 {
	lo, hi := clampSpan(r, half, p.Rows())

	out := make([]float64, hi-lo)
	for i := lo; i < hi; i++ {
		out[i-lo] = p.At(i, c)
	}
	return out
}

func clampSpan(center, half, n int) (lo, hi int) {
	lo = center - half
	if lo < 0 {
		lo = 0
	}

	hi = center + half + 1
	if hi > n {
		hi = n
	}

	return lo, hi
}
