package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-sar/internal/num"
)

// Errors returned by response analysis functions.
var (
	ErrEmptyCut          = errors.New("response: cut is empty or too short")
	ErrInvalidOversample = errors.New("response: oversample factor must be >= 1")
	ErrNoSidelobes       = errors.New("response: no mainlobe null found in cut")
)

// Metrics holds point-target response analysis results.
type Metrics struct {
	PeakIndex     float64 // peak position in input-sample units
	PeakValue     float64 // interpolated peak magnitude
	PSLR          float64 // peak sidelobe ratio in dB (negative)
	ISLR          float64 // integrated sidelobe ratio in dB
	Resolution3dB float64 // mainlobe half-power width in input-sample units
}

// Analyzer computes response metrics from 1D cuts through a point target.
type Analyzer struct {
	// Oversample is the minimum spectral interpolation factor applied
	// before measuring the response.
	Oversample int
}

// NewAnalyzer creates an analyzer with the given oversampling factor.
func NewAnalyzer(oversample int) *Analyzer {
	return &Analyzer{Oversample: oversample}
}

// Analyze computes all response metrics from a cut. The cut should span the
// mainlobe and at least the first few sidelobes on each side.
func (a *Analyzer) Analyze(cut []float64) (Metrics, error) {
	if len(cut) < 4 {
		return Metrics{}, ErrEmptyCut
	}

	if a.Oversample < 1 {
		return Metrics{}, fmt.Errorf("%w: %d", ErrInvalidOversample, a.Oversample)
	}

	env, factor, err := a.interpolate(cut)
	if err != nil {
		return Metrics{}, err
	}

	peakIdx := 0
	for i, v := range env {
		if v > env[peakIdx] {
			peakIdx = i
		}
	}
	peak := env[peakIdx]

	m := Metrics{
		PeakIndex: float64(peakIdx) / factor,
		PeakValue: peak,
	}

	// Mainlobe extent: walk outward from the peak to the first strict
	// local minimum on each side. Minima above half the peak are treated
	// as ripple, not nulls.
	left, okL := firstNullLeft(env, peakIdx)
	right, okR := firstNullRight(env, peakIdx)
	if !okL && !okR {
		return Metrics{}, ErrNoSidelobes
	}
	if !okL {
		left = 0
	}
	if !okR {
		right = len(env) - 1
	}

	maxSide := 0.0
	sideEnergy := 0.0
	mainEnergy := 0.0
	for i, v := range env {
		if i >= left && i <= right {
			mainEnergy += v * v
			continue
		}
		sideEnergy += v * v
		if v > maxSide {
			maxSide = v
		}
	}

	if peak > 0 {
		m.PSLR = num.LinearToDB(maxSide / peak)
	}
	if mainEnergy > 0 {
		m.ISLR = num.LinearPowerToDB(sideEnergy / mainEnergy)
	}

	m.Resolution3dB = halfPowerWidth(env, peakIdx) / factor

	return m, nil
}

// interpolate zero-pads the spectrum of the cut and returns the magnitude
// envelope of the reconstruction together with the effective interpolation
// factor.
func (a *Analyzer) interpolate(cut []float64) ([]float64, float64, error) {
	n := nextPowerOf2(len(cut))
	m := nextPowerOf2(n * a.Oversample)
	factor := float64(m) / float64(n)

	padded := make([]complex128, n)
	for i, v := range cut {
		padded[i] = complex(v, 0)
	}

	fwd, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, 0, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	spec := make([]complex128, n)
	if err := fwd.Forward(spec, padded); err != nil {
		return nil, 0, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	// Zero-pad in the middle of the spectrum, splitting the Nyquist bin to
	// keep the interpolated signal real-valued.
	wide := make([]complex128, m)
	if m == n {
		copy(wide, spec)
	} else {
		half := n / 2
		copy(wide[:half], spec[:half])
		copy(wide[m-half+1:], spec[half+1:])
		nyq := spec[half] / 2
		wide[half] = nyq
		wide[m-half] = nyq
	}

	inv, err := algofft.NewPlan64(m)
	if err != nil {
		return nil, 0, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	interp := make([]complex128, m)
	if err := inv.Inverse(interp, wide); err != nil {
		return nil, 0, fmt.Errorf("response: inverse FFT failed: %w", err)
	}

	// The inverse normalizes by the wide length; rescale to the original
	// sample amplitude and detect the envelope.
	env := make([]float64, m)
	for i, c := range interp {
		re := real(c) * factor
		im := imag(c) * factor
		env[i] = math.Hypot(re, im)
	}

	return env, factor, nil
}

func firstNullLeft(env []float64, peak int) (int, bool) {
	limit := env[peak] / 2
	for i := peak - 1; i > 0; i-- {
		if env[i] < limit && env[i] < env[i-1] && env[i] <= env[i+1] {
			return i, true
		}
	}
	return 0, false
}

func firstNullRight(env []float64, peak int) (int, bool) {
	limit := env[peak] / 2
	for i := peak + 1; i < len(env)-1; i++ {
		if env[i] < limit && env[i] < env[i+1] && env[i] <= env[i-1] {
			return i, true
		}
	}
	return 0, false
}

// halfPowerWidth returns the width of the region around the peak where the
// envelope stays above peak/sqrt(2), in envelope samples.
func halfPowerWidth(env []float64, peak int) float64 {
	threshold := env[peak] / math.Sqrt2

	lo := peak
	for lo > 0 && env[lo-1] >= threshold {
		lo--
	}

	hi := peak
	for hi < len(env)-1 && env[hi+1] >= threshold {
		hi++
	}

	return float64(hi - lo + 1)
}

func nextPowerOf2(v int) int {
	n := 1
	for n < v {
		n <<= 1
	}
	return n
}
