package num

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		name            string
		v, lo, hi, want float64
	}{
		{"inside", 0.25, 0, 0.5, 0.25},
		{"below", -1, 0, 0.5, 0},
		{"above", 2, 0, 0.5, 0.5},
		{"swapped bounds", 2, 0.5, 0, 0.5},
		{"at lower", 0, 0, 0.5, 0},
		{"at upper", 0.5, 0, 0.5, 0.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
				t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", tc.v, tc.lo, tc.hi, got, tc.want)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1, 1+1e-13, 1e-12) {
		t.Fatal("expected values within eps to compare equal")
	}

	if NearlyEqual(1, 1.1, 1e-12) {
		t.Fatal("expected distant values to compare unequal")
	}

	if !NearlyEqual(0, 0, 0) {
		t.Fatal("expected exact zeros to compare equal with default eps")
	}
}

func TestDBConversions(t *testing.T) {
	if got := LinearToDB(10); !NearlyEqual(got, 20, 1e-12) {
		t.Fatalf("LinearToDB(10) = %v, want 20", got)
	}

	if got := LinearPowerToDB(100); !NearlyEqual(got, 20, 1e-12) {
		t.Fatalf("LinearPowerToDB(100) = %v, want 20", got)
	}

	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("LinearToDB(0) should be -Inf")
	}

	if !math.IsNaN(LinearPowerToDB(-1)) {
		t.Fatal("LinearPowerToDB(-1) should be NaN")
	}
}
