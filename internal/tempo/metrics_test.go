package tempo

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculate(t *testing.T) {
	tick120 := 60.0 / (120 * TicksPerQuarterNote) // 0.0208333s

	tests := []struct {
		name       string
		intervals  []float64
		wantBPM    float64
		wantJitter float64
	}{
		{name: "nil", intervals: nil},
		{name: "single interval", intervals: []float64{0.02}},
		{name: "zero mean", intervals: []float64{0, 0, 0}},
		{name: "zero mean with spread", intervals: []float64{-0.01, 0.01}},
		{
			name:      "steady 120 BPM",
			intervals: []float64{tick120, tick120, tick120, tick120},
			wantBPM:   120,
		},
		{
			// mean 0.025 -> 100 BPM, sample stdev of {0.02,0.03} = 0.0070710678
			name:       "two intervals",
			intervals:  []float64{0.02, 0.03},
			wantBPM:    100,
			wantJitter: math.Sqrt2 / 2 * 0.01 / 0.025 * 100,
		},
		{
			// mean 0.01 -> 250 BPM, sample stdev of {0.009,0.01,0.011} = 0.001
			name:       "three intervals",
			intervals:  []float64{0.009, 0.010, 0.011},
			wantBPM:    250,
			wantJitter: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bpm, jitter := Calculate(tt.intervals)
			if !almostEqual(bpm, tt.wantBPM) {
				t.Errorf("bpm = %v, want %v", bpm, tt.wantBPM)
			}
			if !almostEqual(jitter, tt.wantJitter) {
				t.Errorf("jitter = %v, want %v", jitter, tt.wantJitter)
			}
		})
	}
}

func TestStability(t *testing.T) {
	tests := []struct {
		jitter float64
		want   float64
	}{
		{jitter: 0, want: 100},
		{jitter: 2.5, want: 97.5},
		{jitter: 100, want: 0},
		{jitter: 140, want: 0},
	}
	for _, tt := range tests {
		if got := Stability(tt.jitter); !almostEqual(got, tt.want) {
			t.Errorf("Stability(%v) = %v, want %v", tt.jitter, got, tt.want)
		}
	}
}

func TestNewReading(t *testing.T) {
	r := NewReading([]float64{0.009, 0.010, 0.011})
	if !almostEqual(r.BPM, 250) {
		t.Errorf("BPM = %v, want 250", r.BPM)
	}
	if !almostEqual(r.Stability, 90) {
		t.Errorf("Stability = %v, want 90", r.Stability)
	}
	if r.Samples != 3 {
		t.Errorf("Samples = %d, want 3", r.Samples)
	}
}
