package forest

import (
	"math"
	"testing"
)

func TestBurntFraction(t *testing.T) {
	if got := (RunStats{}).BurntFraction(); got != 0 {
		t.Fatalf("empty forest fraction = %v", got)
	}
	if got := (RunStats{Tree: 30, Burnt: 10}).BurntFraction(); got != 0.25 {
		t.Fatalf("fraction = %v, want 0.25", got)
	}
}

func TestCriticalDensity(t *testing.T) {
	curve := []DensityResult{
		{Density: 40, BurntFraction: 0.0625},
		{Density: 50, BurntFraction: 0.25},
		{Density: 60, BurntFraction: 0.75},
		{Density: 70, BurntFraction: 0.9375},
	}
	cases := []struct {
		threshold float64
		want      float64
		ok        bool
	}{
		{0.5, 55, true},
		{0.01, 40, true},
		{0.75, 60, true},
		{0.99, 0, false},
	}
	for _, tc := range cases {
		got, ok := CriticalDensity(curve, tc.threshold)
		if ok != tc.ok || math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("threshold %v: got (%v, %v), want (%v, %v)", tc.threshold, got, ok, tc.want, tc.ok)
		}
	}
}
