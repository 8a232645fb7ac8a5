package response

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-sar/sar/raster"
)

// sincCut samples sinc(t/stretch) around a center sample, a stand-in for an
// unweighted point-target response (first sidelobe near -13.3 dB).
func sincCut(length, center int, stretch float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		t := float64(i-center) / stretch
		if t == 0 {
			out[i] = 1
			continue
		}
		out[i] = math.Sin(math.Pi*t) / (math.Pi * t)
	}
	return out
}

func TestAnalyzeSincResponse(t *testing.T) {
	cut := sincCut(33, 16, 2)

	m, err := NewAnalyzer(16).Analyze(cut)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(m.PeakIndex-16) > 0.5 {
		t.Fatalf("peak index = %v, want near 16", m.PeakIndex)
	}

	if math.Abs(m.PeakValue-1) > 0.05 {
		t.Fatalf("peak value = %v, want near 1", m.PeakValue)
	}

	// Unweighted sinc: first sidelobe around -13.3 dB.
	if m.PSLR > -10 || m.PSLR < -16 {
		t.Fatalf("PSLR = %v dB, want in (-16, -10)", m.PSLR)
	}

	if m.ISLR >= 0 {
		t.Fatalf("ISLR = %v dB, want negative", m.ISLR)
	}

	// 3 dB width of sinc(t/2) is about 1.77 samples.
	if m.Resolution3dB < 1.2 || m.Resolution3dB > 2.5 {
		t.Fatalf("resolution = %v samples, want near 1.77", m.Resolution3dB)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	t.Run("empty cut", func(t *testing.T) {
		if _, err := NewAnalyzer(8).Analyze(nil); !errors.Is(err, ErrEmptyCut) {
			t.Fatalf("err = %v, want ErrEmptyCut", err)
		}
	})

	t.Run("bad oversample", func(t *testing.T) {
		if _, err := NewAnalyzer(0).Analyze([]float64{1, 2, 1}); !errors.Is(err, ErrInvalidOversample) {
			t.Fatalf("err = %v, want ErrInvalidOversample", err)
		}
	})

	t.Run("no nulls", func(t *testing.T) {
		flat := []float64{1, 1, 1, 1, 1, 1, 1, 1}
		if _, err := NewAnalyzer(4).Analyze(flat); !errors.Is(err, ErrNoSidelobes) {
			t.Fatalf("err = %v, want ErrNoSidelobes", err)
		}
	})
}

func TestCutsClampToPlaneBounds(t *testing.T) {
	p, err := raster.NewPlaneFromData(3, 4, []float64{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	})
	if err != nil {
		t.Fatal(err)
	}

	row := RowCut(p, 1, 0, 2)
	if len(row) != 3 || row[0] != 4 || row[2] != 6 {
		t.Fatalf("row cut = %v, want [4 5 6]", row)
	}

	col := ColCut(p, 2, 3, 1)
	if len(col) != 2 || col[0] != 7 || col[1] != 11 {
		t.Fatalf("col cut = %v, want [7 11]", col)
	}
}

func TestSceneStats(t *testing.T) {
	p, err := raster.NewPlaneFromData(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	if err != nil {
		t.Fatal(err)
	}

	s := SceneStats(p)

	if s.Mean != 5 {
		t.Fatalf("mean = %v, want 5", s.Mean)
	}
	if s.Min != 1 || s.Max != 9 {
		t.Fatalf("min/max = %v/%v, want 1/9", s.Min, s.Max)
	}
	if s.Median != 5 {
		t.Fatalf("median = %v, want 5", s.Median)
	}
	if s.P5 < 1 || s.P5 > 2 || s.P95 < 8 || s.P95 > 9 {
		t.Fatalf("percentiles P5=%v P95=%v out of expected range", s.P5, s.P95)
	}
}
