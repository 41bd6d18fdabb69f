package tempo

import "math"

// TicksPerQuarterNote is the MIDI clock resolution.
const TicksPerQuarterNote = 24

// Reading is one BPM estimate over the current window.
type Reading struct {
	BPM       float64 // beats per minute
	Jitter    float64 // sample stdev of the intervals as a percentage of their mean
	Stability float64 // 100 - Jitter, floored at 0
	Samples   int     // intervals the estimate is based on
}

// Calculate returns the tempo and jitter implied by a set of tick intervals
// in seconds. Fewer than two intervals, or a zero mean, yield (0, 0).
func Calculate(intervals []float64) (bpm, jitter float64) {
	n := len(intervals)
	if n < 2 {
		return 0, 0
	}

	var sum float64
	for _, v := range intervals {
		sum += v
	}
	mean := sum / float64(n)
	if mean == 0 {
		return 0, 0
	}

	var sq float64
	for _, v := range intervals {
		d := v - mean
		sq += d * d
	}
	stdev := math.Sqrt(sq / float64(n-1))

	bpm = 60.0 / (mean * TicksPerQuarterNote)
	jitter = stdev / mean * 100
	return bpm, jitter
}

// Stability converts a jitter percentage into a stability percentage.
func Stability(jitter float64) float64 {
	return math.Max(0, 100-jitter)
}

// NewReading computes a Reading for intervals.
func NewReading(intervals []float64) Reading {
	bpm, jitter := Calculate(intervals)
	return Reading{
		BPM:       bpm,
		Jitter:    jitter,
		Stability: Stability(jitter),
		Samples:   len(intervals),
	}
}
