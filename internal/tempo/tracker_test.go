package tempo

import (
	"fmt"
	"math"
	"testing"

	"github.com/leandrodaf/midiclock/sdk/contracts"
)

// 125 BPM gives an integral tick spacing: 60s / (125 * 24) = 20ms.
const tick125 = uint64(20_000_000)

func clockAt(ns uint64) contracts.MIDI {
	return contracts.MIDI{Timestamp: ns, Status: byte(contracts.TimingClock)}
}

func transport(cmd contracts.MIDICommand, ns uint64) contracts.MIDI {
	return contracts.MIDI{Timestamp: ns, Status: byte(cmd)}
}

func newTestTracker() *Tracker {
	tr := NewTracker(DefaultConfig())
	n := 0
	tr.newSession = func() string {
		n++
		return fmt.Sprintf("session-%d", n)
	}
	return tr
}

// feedTicks sends count evenly spaced ticks starting at start and returns the readings.
func feedTicks(tr *Tracker, start uint64, count int) []Update {
	var out []Update
	for i := 0; i < count; i++ {
		if u, ok := tr.Observe(clockAt(start + uint64(i)*tick125)); ok {
			out = append(out, u)
		}
	}
	return out
}

func TestTracker_FirstReadingAfterMinIntervals(t *testing.T) {
	tr := newTestTracker()

	if got := feedTicks(tr, 0, 24); len(got) != 0 {
		t.Fatalf("got %d readings after 23 intervals, want 0", len(got))
	}

	u, ok := tr.Observe(clockAt(24 * tick125))
	if !ok {
		t.Fatal("no reading on the 24th interval")
	}
	if u.Kind != KindReading {
		t.Errorf("Kind = %v, want reading", u.Kind)
	}
	if math.Abs(u.Reading.BPM-125) > 1e-9 {
		t.Errorf("BPM = %v, want 125", u.Reading.BPM)
	}
	if u.Reading.Jitter > 1e-9 {
		t.Errorf("Jitter = %v, want 0", u.Reading.Jitter)
	}
	if u.Reading.Stability < 100-1e-9 {
		t.Errorf("Stability = %v, want 100", u.Reading.Stability)
	}
	if u.Reading.Samples != 24 {
		t.Errorf("Samples = %d, want 24", u.Reading.Samples)
	}
}

func TestTracker_ReportCadence(t *testing.T) {
	tests := []struct {
		name        string
		ticks       int
		wantSamples []int
	}{
		{name: "half beats while filling", ticks: 1 + 36, wantSamples: []int{24, 36}},
		{name: "full window", ticks: 1 + 48, wantSamples: []int{24, 36, 48}},
		{name: "every tick once full", ticks: 1 + 48 + 6, wantSamples: []int{24, 36, 48, 48, 48, 48, 48, 48, 48}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestTracker()
			got := feedTicks(tr, 0, tt.ticks)
			if len(got) != len(tt.wantSamples) {
				t.Fatalf("got %d readings, want %d", len(got), len(tt.wantSamples))
			}
			for i, u := range got {
				if u.Reading.Samples != tt.wantSamples[i] {
					t.Errorf("reading %d Samples = %d, want %d", i, u.Reading.Samples, tt.wantSamples[i])
				}
			}
		})
	}
}

func TestTracker_ReadingsAfterTwoBeatsOfTicks(t *testing.T) {
	tr := newTestTracker()

	// 72 intervals: readings at 24, 36 and 48, then 24 more on a full window.
	got := feedTicks(tr, 0, 1+24+48)
	if len(got) != 27 {
		t.Fatalf("got %d readings, want 27", len(got))
	}
	if tr.Buffered() != DefaultWindowSize {
		t.Errorf("Buffered() = %d, want %d", tr.Buffered(), DefaultWindowSize)
	}
}

func TestTracker_FullWindowNotMultipleOfReportEvery(t *testing.T) {
	tr := NewTracker(Config{WindowSize: 5, MinIntervals: 2, ReportEvery: 2})

	var samples []int
	for _, u := range feedTicks(tr, 0, 1+7) {
		samples = append(samples, u.Reading.Samples)
	}

	want := []int{2, 4, 5, 5, 5}
	if len(samples) != len(want) {
		t.Fatalf("samples = %v, want %v", samples, want)
	}
	for i := range want {
		if samples[i] != want[i] {
			t.Errorf("samples = %v, want %v", samples, want)
			break
		}
	}
}

func TestTracker_JitterFromUnevenTicks(t *testing.T) {
	tr := NewTracker(Config{WindowSize: 4, MinIntervals: 2, ReportEvery: 1})

	// intervals alternate 18ms / 22ms: mean 20ms, so 125 BPM with jitter.
	ts := uint64(0)
	var last Update
	tr.Observe(clockAt(ts))
	for i := 0; i < 4; i++ {
		if i%2 == 0 {
			ts += 18_000_000
		} else {
			ts += 22_000_000
		}
		if u, ok := tr.Observe(clockAt(ts)); ok {
			last = u
		}
	}

	if math.Abs(last.Reading.BPM-125) > 1e-6 {
		t.Errorf("BPM = %v, want 125", last.Reading.BPM)
	}
	// sample stdev of {18,22,18,22} = sqrt(16/3) ms
	wantJitter := math.Sqrt(16.0/3.0) / 20 * 100
	if math.Abs(last.Reading.Jitter-wantJitter) > 1e-6 {
		t.Errorf("Jitter = %v, want %v", last.Reading.Jitter, wantJitter)
	}
}

func TestTracker_StartAndStopClear(t *testing.T) {
	for _, cmd := range []contracts.MIDICommand{contracts.Start, contracts.Stop} {
		t.Run(fmt.Sprintf("0x%X", byte(cmd)), func(t *testing.T) {
			tr := newTestTracker()
			feedTicks(tr, 0, 30)
			if tr.Buffered() != 29 {
				t.Fatalf("Buffered() = %d, want 29", tr.Buffered())
			}

			u, ok := tr.Observe(transport(cmd, 31*tick125))
			if !ok {
				t.Fatal("transport message produced no update")
			}
			if tr.Buffered() != 0 {
				t.Errorf("Buffered() after transport = %d, want 0", tr.Buffered())
			}

			// First tick after the reset only anchors.
			tr.Observe(clockAt(40 * tick125))
			if tr.Buffered() != 0 {
				t.Errorf("Buffered() after anchor tick = %d, want 0", tr.Buffered())
			}
			tr.Observe(clockAt(41 * tick125))
			if tr.Buffered() != 1 {
				t.Errorf("Buffered() after second tick = %d, want 1", tr.Buffered())
			}

			wantKind := KindStart
			if cmd == contracts.Stop {
				wantKind = KindStop
			}
			if u.Kind != wantKind {
				t.Errorf("Kind = %v, want %v", u.Kind, wantKind)
			}
		})
	}
}

func TestTracker_StartOpensNewSession(t *testing.T) {
	tr := newTestTracker()

	feedTicks(tr, 0, 2)
	first := tr.Session()
	if first != "session-1" {
		t.Fatalf("Session() = %q, want session-1", first)
	}

	u, _ := tr.Observe(transport(contracts.Start, 10*tick125))
	if u.Session != "session-2" {
		t.Errorf("Start session = %q, want session-2", u.Session)
	}

	u, _ = tr.Observe(transport(contracts.Stop, 20*tick125))
	if u.Session != "session-2" {
		t.Errorf("Stop session = %q, want session-2", u.Session)
	}
}

func TestTracker_ContinueKeepsWindow(t *testing.T) {
	tr := newTestTracker()
	feedTicks(tr, 0, 11)

	u, ok := tr.Observe(transport(contracts.Continue, 500*tick125))
	if !ok || u.Kind != KindContinue {
		t.Fatalf("Continue update = %+v, %v", u, ok)
	}
	if tr.Buffered() != 10 {
		t.Errorf("Buffered() after Continue = %d, want 10", tr.Buffered())
	}

	// The gap between the last tick and the first one after Continue is skipped.
	tr.Observe(clockAt(1000 * tick125))
	if tr.Buffered() != 10 {
		t.Errorf("Buffered() after anchor tick = %d, want 10", tr.Buffered())
	}
}

func TestTracker_IgnoresOtherMessages(t *testing.T) {
	tr := newTestTracker()
	for _, ev := range []contracts.MIDI{
		{Status: 0x90, Data1: 60, Data2: 100},
		{Status: byte(contracts.ActiveSensing)},
		{Status: 0xF2, Data1: 1},
	} {
		if u, ok := tr.Observe(ev); ok {
			t.Errorf("Observe(%+v) = %+v, want nothing", ev, u)
		}
	}
}

func TestTracker_OutOfOrderTickReanchors(t *testing.T) {
	tr := newTestTracker()
	tr.Observe(clockAt(100 * tick125))
	tr.Observe(clockAt(50 * tick125))
	if tr.Buffered() != 0 {
		t.Errorf("Buffered() = %d, want 0 after backwards tick", tr.Buffered())
	}
	tr.Observe(clockAt(51 * tick125))
	if got := tr.window.Values(); len(got) != 1 || math.Abs(got[0]-0.02) > 1e-12 {
		t.Errorf("window = %v, want [0.02]", got)
	}
}

func TestTracker_EqualTimestampsReanchor(t *testing.T) {
	tr := newTestTracker()

	// Two ticks decoded from one packet share a timestamp.
	tr.Observe(clockAt(0))
	tr.Observe(clockAt(tick125))
	tr.Observe(clockAt(tick125))
	tr.Observe(clockAt(2 * tick125))

	got := tr.window.Values()
	if len(got) != 2 {
		t.Fatalf("window = %v, want two intervals", got)
	}
	for i, v := range got {
		if math.Abs(v-0.02) > 1e-12 {
			t.Errorf("interval %d = %v, want 0.02", i, v)
		}
	}
}

func TestNewTracker_Defaults(t *testing.T) {
	tr := NewTracker(Config{})
	if tr.cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want %+v", tr.cfg, DefaultConfig())
	}
	if tr.window.Cap() != DefaultWindowSize {
		t.Errorf("window cap = %d, want %d", tr.window.Cap(), DefaultWindowSize)
	}
}
