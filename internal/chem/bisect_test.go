package chem

import (
	"math"
	"testing"
)

func TestBisectLog_FindsRootAcrossDecades(t *testing.T) {
	// The score log10(h) - log10(root) is monotonic and crosses zero at
	// the root; bisection must recover it anywhere in the bracket.
	for _, root := range []float64{1e-13, 1e-9, 1e-5, 1e-1} {
		got := bisectLog(func(h float64) float64 {
			return math.Log10(h) - math.Log10(root)
		})
		if math.Abs(math.Log10(got)-math.Log10(root)) > 1e-10 {
			t.Errorf("root %v: got %v", root, got)
		}
	}
}

func TestBisectLog_SaturatesAtBracketEdges(t *testing.T) {
	// A score with no zero crossing pushes the result to a bracket edge
	// instead of diverging.
	low := bisectLog(func(h float64) float64 { return 1 })
	if low > hMin*1.001 {
		t.Errorf("always-positive score: got %v, want ~%v", low, hMin)
	}
	high := bisectLog(func(h float64) float64 { return -1 })
	if high < hMax*0.999 {
		t.Errorf("always-negative score: got %v, want ~%v", high, hMax)
	}
}

func TestPosQuadRoot(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    float64
	}{
		{"simple factorable", 1, -3, 2, 2},
		{"weak acid form", 1, 1e-5, -1e-6, (-1e-5 + math.Sqrt(1e-10+4e-6)) / 2},
		{"negative discriminant", 1, 0, 1, 0},
		{"both roots negative", 1, 3, 2, 0},
	}
	for _, tc := range tests {
		if got := posQuadRoot(tc.a, tc.b, tc.c); math.Abs(got-tc.want) > 1e-15 {
			t.Errorf("%s: posQuadRoot(%v, %v, %v) = %v, want %v", tc.name, tc.a, tc.b, tc.c, got, tc.want)
		}
	}
}

func TestClampPH(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{7.2, 7.2},
		{-3, 0},
		{15.4, 14},
		{0, 0},
		{14, 14},
		{math.NaN(), 7},
	}
	for _, tc := range tests {
		if got := clampPH(tc.in); got != tc.want {
			t.Errorf("clampPH(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
