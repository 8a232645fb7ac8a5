package sva

import "testing"

func TestAxisNeighbors(t *testing.T) {
	cases := []struct {
		name   string
		b      Boundary
		i, n   int
		lo, hi int
		ok     bool
	}{
		{"interior mirror", BoundaryMirror, 3, 8, 2, 4, true},
		{"interior zero", BoundaryZero, 3, 8, 2, 4, true},
		{"interior suppress", BoundarySuppress, 3, 8, 2, 4, true},

		{"first mirror", BoundaryMirror, 0, 8, 1, 1, true},
		{"last mirror", BoundaryMirror, 7, 8, 6, 6, true},
		{"first zero", BoundaryZero, 0, 8, -1, 1, true},
		{"last zero", BoundaryZero, 7, 8, 6, -1, true},
		{"first suppress", BoundarySuppress, 0, 8, 0, 0, false},
		{"last suppress", BoundarySuppress, 7, 8, 0, 0, false},

		{"length one mirror", BoundaryMirror, 0, 1, 0, 0, false},
		{"length one zero", BoundaryZero, 0, 1, 0, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lo, hi, ok := axisNeighbors(tc.b, tc.i, tc.n)
			if lo != tc.lo || hi != tc.hi || ok != tc.ok {
				t.Fatalf("axisNeighbors(%v, %d, %d) = (%d, %d, %v), want (%d, %d, %v)",
					tc.b, tc.i, tc.n, lo, hi, ok, tc.lo, tc.hi, tc.ok)
			}
		})
	}
}

func TestBoundaryPoliciesAtEdgePixel(t *testing.T) {
	// Row [1, -1, 1]: the left edge pixel sees N_rg = -2 under mirror
	// (interior neighbor doubled), -1 under zero padding, and no range
	// correction at all under suppress.
	mk := func(t *testing.T) *pass {
		t.Helper()
		return &pass{rows: 1, cols: 3, re: []float64{1, -1, 1}}
	}

	t.Run("mirror", func(t *testing.T) {
		p := mk(t)
		p.boundary = BoundaryMirror
		if nRe, _ := p.rangeSum(0, 0); nRe != -2 {
			t.Fatalf("range sum = %v, want -2", nRe)
		}
	})

	t.Run("zero", func(t *testing.T) {
		p := mk(t)
		p.boundary = BoundaryZero
		if nRe, _ := p.rangeSum(0, 0); nRe != -1 {
			t.Fatalf("range sum = %v, want -1", nRe)
		}
	})

	t.Run("suppress", func(t *testing.T) {
		p := mk(t)
		p.boundary = BoundarySuppress
		if nRe, _ := p.rangeSum(0, 0); nRe != 0 {
			t.Fatalf("range sum = %v, want 0", nRe)
		}
	})
}

func TestSingleLineRasterHasNoAzimuthCorrection(t *testing.T) {
	p := &pass{rows: 1, cols: 4, boundary: BoundaryMirror, re: []float64{1, -1, 1, -1}}

	for c := 0; c < 4; c++ {
		if nRe, nIm := p.azimuthSum(0, c); nRe != 0 || nIm != 0 {
			t.Fatalf("column %d: azimuth sum (%v, %v), want (0, 0)", c, nRe, nIm)
		}
	}
}

func TestBoundaryString(t *testing.T) {
	names := map[Boundary]string{
		BoundaryMirror:   "mirror",
		BoundaryZero:     "zero",
		BoundarySuppress: "suppress",
		Boundary(99):     "unknown",
	}

	for b, want := range names {
		if got := b.String(); got != want {
			t.Fatalf("Boundary(%d).String() = %q, want %q", int(b), got, want)
		}
	}
}
