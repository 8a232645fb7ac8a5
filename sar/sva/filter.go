package sva

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-sar/internal/num"
	"github.com/cwbudde/algo-sar/sar/raster"
)

// Filter applies spatially variant apodization to rasters. A Filter is
// immutable after construction and safe for concurrent use.
type Filter struct {
	mode     Mode
	boundary Boundary
	workers  int
}

// Mode returns the configured filtering mode.
func (f *Filter) Mode() Mode { return f.mode }

// Boundary returns the configured edge handling policy.
func (f *Filter) Boundary() Boundary { return f.boundary }

func (f *Filter) validate() error {
	if !f.mode.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(f.mode))
	}

	if !f.boundary.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownBoundary, int(f.boundary))
	}

	return nil
}

// Run filters the raster according to the configured mode.
func (f *Filter) Run(in *raster.Complex) (*raster.Complex, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	switch f.mode {
	case ModeAmplitudeBased:
		return f.FilterAmplitude(in)
	default:
		return f.FilterComplex(in)
	}
}

// FilterComplex filters the I and Q planes of a complex raster. The weight
// pair for each pixel is computed once from the complex center sample and
// the complex neighbor sums, then the same pair is applied additively to
// both planes: one sidelobe-suppression decision per pixel, one correction
// per channel.
func (f *Filter) FilterComplex(in *raster.Complex) (*raster.Complex, error) {
	if in == nil {
		return nil, ErrEmptyRaster
	}

	if err := f.validate(); err != nil {
		return nil, err
	}

	out, err := raster.NewComplex(in.Rows(), in.Cols())
	if err != nil {
		return nil, err
	}

	f.runPass(&pass{
		rows:     in.Rows(),
		cols:     in.Cols(),
		boundary: f.boundary,
		re:       in.I().Data(),
		im:       in.Q().Data(),
		outRe:    out.I().Data(),
		outIm:    out.Q().Data(),
	})

	return out, nil
}

// FilterPlane filters a single real-valued channel. The weight computation
// runs with an implicit zero imaginary part.
func (f *Filter) FilterPlane(in *raster.Plane) (*raster.Plane, error) {
	if in == nil {
		return nil, ErrEmptyRaster
	}

	if err := f.validate(); err != nil {
		return nil, err
	}

	out, err := raster.NewPlane(in.Rows(), in.Cols())
	if err != nil {
		return nil, err
	}

	f.runPass(&pass{
		rows:     in.Rows(),
		cols:     in.Cols(),
		boundary: f.boundary,
		re:       in.Data(),
		outRe:    out.Data(),
	})

	return out, nil
}

// WeightsAt returns the azimuth and range weights the filter would apply at
// (r, c) of the given raster. Exposed for analysis and verification.
func (f *Filter) WeightsAt(in *raster.Complex, r, c int) (wAz, wRg float64) {
	p := pass{
		rows:     in.Rows(),
		cols:     in.Cols(),
		boundary: f.boundary,
		re:       in.I().Data(),
		im:       in.Q().Data(),
	}

	xr := p.re[r*p.cols+c]
	xi := p.im[r*p.cols+c]

	azRe, azIm := p.azimuthSum(r, c)
	rgRe, rgIm := p.rangeSum(r, c)

	return weight(xr, xi, azRe, azIm), weight(xr, xi, rgRe, rgIm)
}

// weight computes the adaptive apodization weight for one axis from the
// center sample x and the complex neighbor sum N:
//
//	w = clamp(-Re(x·conj(N)) / |N|², 0, 0.5)
//
// A zero neighbor sum is degenerate and yields no correction.
func weight(xr, xi, nRe, nIm float64) float64 {
	den := nRe*nRe + nIm*nIm
	if den == 0 {
		return 0
	}

	return num.Clamp(-(xr*nRe+xi*nIm)/den, 0, 0.5)
}

// pass carries the per-run state of one filtering sweep. im and outIm are
// nil for real-valued single-channel passes. All reads go to the input
// slices, all writes to the output slices; pixels are fully independent.
type pass struct {
	rows, cols   int
	boundary     Boundary
	re, im       []float64
	outRe, outIm []float64
}

func (p *pass) azimuthSum(r, c int) (nRe, nIm float64) {
	lo, hi, ok := axisNeighbors(p.boundary, r, p.rows)
	if !ok {
		return 0, 0
	}

	if lo >= 0 {
		idx := lo*p.cols + c
		nRe += p.re[idx]
		if p.im != nil {
			nIm += p.im[idx]
		}
	}

	if hi >= 0 {
		idx := hi*p.cols + c
		nRe += p.re[idx]
		if p.im != nil {
			nIm += p.im[idx]
		}
	}

	return nRe, nIm
}

func (p *pass) rangeSum(r, c int) (nRe, nIm float64) {
	lo, hi, ok := axisNeighbors(p.boundary, c, p.cols)
	if !ok {
		return 0, 0
	}

	row := r * p.cols
	if lo >= 0 {
		nRe += p.re[row+lo]
		if p.im != nil {
			nIm += p.im[row+lo]
		}
	}

	if hi >= 0 {
		nRe += p.re[row+hi]
		if p.im != nil {
			nIm += p.im[row+hi]
		}
	}

	return nRe, nIm
}

func (p *pass) filterRows(r0, r1 int) {
	for r := r0; r < r1; r++ {
		row := r * p.cols
		for c := 0; c < p.cols; c++ {
			idx := row + c

			xr := p.re[idx]
			xi := 0.0
			if p.im != nil {
				xi = p.im[idx]
			}

			azRe, azIm := p.azimuthSum(r, c)
			rgRe, rgIm := p.rangeSum(r, c)

			wAz := weight(xr, xi, azRe, azIm)
			wRg := weight(xr, xi, rgRe, rgIm)

			p.outRe[idx] = xr + wAz*azRe + wRg*rgRe
			if p.outIm != nil {
				p.outIm[idx] = xi + wAz*azIm + wRg*rgIm
			}
		}
	}
}

// runPass sweeps the raster in row bands. Bands only read the immutable
// input (a one-row halo at band edges included), so the join at the end is
// the only synchronization and the result does not depend on the worker
// count.
func (f *Filter) runPass(p *pass) {
	workers := f.workers
	if workers > p.rows {
		workers = p.rows
	}

	if workers <= 1 {
		p.filterRows(0, p.rows)
		return
	}

	band := (p.rows + workers - 1) / workers

	var wg sync.WaitGroup
	for r0 := 0; r0 < p.rows; r0 += band {
		r1 := min(r0+band, p.rows)

		wg.Add(1)
		go func(r0, r1 int) {
			defer wg.Done()
			p.filterRows(r0, r1)
		}(r0, r1)
	}
	wg.Wait()
}
