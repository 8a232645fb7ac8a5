package raster

import (
	"errors"
	"math"
	"testing"
)

func TestNewPlaneValidation(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 4},
		{"zero cols", 4, 0},
		{"negative", -1, -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewPlane(tc.rows, tc.cols); !errors.Is(err, ErrInvalidShape) {
				t.Fatalf("NewPlane(%d, %d) err = %v, want ErrInvalidShape", tc.rows, tc.cols, err)
			}
		})
	}
}

func TestNewPlaneFromDataLength(t *testing.T) {
	if _, err := NewPlaneFromData(2, 3, make([]float64, 5)); !errors.Is(err, ErrBadDataLength) {
		t.Fatalf("err = %v, want ErrBadDataLength", err)
	}

	p, err := NewPlaneFromData(2, 3, []float64{0, 1, 2, 3, 4, 5})
	if err != nil {
		t.Fatal(err)
	}

	if got := p.At(1, 2); got != 5 {
		t.Fatalf("At(1,2) = %v, want 5", got)
	}
}

func TestShapeMismatchDetectedBeforeUse(t *testing.T) {
	i, _ := NewPlane(4, 4)
	q, _ := NewPlane(4, 5)

	if _, err := NewComplexFromPlanes(i, q); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("err = %v, want ErrShapeMismatch", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	c, err := NewComplex(3, 3)
	if err != nil {
		t.Fatal(err)
	}

	c.Set(1, 1, complex(2, -3))

	clone := c.Clone()
	clone.Set(1, 1, complex(7, 7))

	if got := c.At(1, 1); got != complex(2, -3) {
		t.Fatalf("original mutated through clone: %v", got)
	}
}

func TestIntensityIsAmplitudeSquared(t *testing.T) {
	c, err := NewComplex(4, 5)
	if err != nil {
		t.Fatal(err)
	}

	for r := 0; r < c.Rows(); r++ {
		for col := 0; col < c.Cols(); col++ {
			c.Set(r, col, complex(float64(r)-1.5, float64(col)*0.25-0.5))
		}
	}

	amp := Amplitude(c)
	pow := Intensity(c)

	for idx, a := range amp.Data() {
		want := a * a
		if math.Abs(pow.Data()[idx]-want) > 1e-12 {
			t.Fatalf("index %d: intensity %v, amplitude² %v", idx, pow.Data()[idx], want)
		}
	}
}

func TestPhaseZeroAtOrigin(t *testing.T) {
	c, err := NewComplex(2, 2)
	if err != nil {
		t.Fatal(err)
	}

	c.Set(0, 0, complex(0, 0))
	c.Set(0, 1, complex(1, 1))

	ph := Phase(c)

	if got := ph.At(0, 0); got != 0 {
		t.Fatalf("phase at zero sample = %v, want 0", got)
	}

	if got, want := ph.At(0, 1), math.Pi/4; math.Abs(got-want) > 1e-12 {
		t.Fatalf("phase = %v, want %v", got, want)
	}
}

func TestIntensityDB(t *testing.T) {
	c, err := NewComplex(1, 2)
	if err != nil {
		t.Fatal(err)
	}

	c.Set(0, 0, complex(10, 0)) // intensity 100 -> 20 dB
	db := IntensityDB(c)

	if got := db.At(0, 0); math.Abs(got-20) > 1e-12 {
		t.Fatalf("dB = %v, want 20", got)
	}

	if !math.IsInf(db.At(0, 1), -1) {
		t.Fatal("zero intensity should map to -Inf dB")
	}
}
