package sva

import "github.com/cwbudde/algo-sar/sar/raster"

// FilterAmplitude runs the amplitude-based variant: the detected amplitude
// is filtered as a single real channel and the complex output is rebuilt
// carrying the filtered magnitude under the original, unfiltered phase.
//
// Reconstruction scales each input sample by A'/A rather than recomputing
// cos/sin of the phase angle, so the output phase equals the input phase
// exactly wherever the amplitude is nonzero. Pixels with zero amplitude
// have no defined phase and are emitted as (0, 0).
func (f *Filter) FilterAmplitude(in *raster.Complex) (*raster.Complex, error) {
	if in == nil {
		return nil, ErrEmptyRaster
	}

	if err := f.validate(); err != nil {
		return nil, err
	}

	amp := raster.Amplitude(in)

	filtered, err := f.FilterPlane(amp)
	if err != nil {
		return nil, err
	}

	out, err := raster.NewComplex(in.Rows(), in.Cols())
	if err != nil {
		return nil, err
	}

	iIn, qIn := in.I().Data(), in.Q().Data()
	iOut, qOut := out.I().Data(), out.Q().Data()
	a, af := amp.Data(), filtered.Data()

	for idx := range a {
		if a[idx] == 0 {
			continue
		}

		s := af[idx] / a[idx]
		iOut[idx] = s * iIn[idx]
		qOut[idx] = s * qIn[idx]
	}

	return out, nil
}
