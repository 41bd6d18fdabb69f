package contracts

import "testing"

func TestMIDICommandAndChannel(t *testing.T) {
	tests := []struct {
		name        string
		status      byte
		wantCommand MIDICommand
		wantChannel byte
		realtime    bool
	}{
		{name: "note on channel 1", status: 0x90, wantCommand: NoteOn, wantChannel: 0},
		{name: "note off channel 10", status: 0x89, wantCommand: NoteOff, wantChannel: 9},
		{name: "timing clock", status: 0xF8, wantCommand: TimingClock, realtime: true},
		{name: "start", status: 0xFA, wantCommand: Start, realtime: true},
		{name: "stop", status: 0xFC, wantCommand: Stop, realtime: true},
		{name: "song position", status: 0xF2, wantCommand: MIDICommand(0xF2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MIDI{Status: tt.status}
			if got := m.Command(); got != tt.wantCommand {
				t.Errorf("Command() = 0x%X, want 0x%X", byte(got), byte(tt.wantCommand))
			}
			if got := m.Channel(); got != tt.wantChannel {
				t.Errorf("Channel() = %d, want %d", got, tt.wantChannel)
			}
			if got := m.IsRealtime(); got != tt.realtime {
				t.Errorf("IsRealtime() = %v, want %v", got, tt.realtime)
			}
		})
	}
}

func TestMIDIEventFilterAllows(t *testing.T) {
	clock := ClockFilter()

	if !clock.Allows(TimingClock) {
		t.Error("clock filter should allow TimingClock")
	}
	if !clock.Allows(Continue) {
		t.Error("clock filter should allow Continue")
	}
	if clock.Allows(NoteOn) {
		t.Error("clock filter should reject NoteOn")
	}
	if clock.Allows(ActiveSensing) {
		t.Error("clock filter should reject ActiveSensing")
	}

	var nilFilter *MIDIEventFilter
	if !nilFilter.Allows(NoteOn) {
		t.Error("nil filter should allow everything")
	}
	if !(&MIDIEventFilter{}).Allows(Reset) {
		t.Error("empty filter should allow everything")
	}
}

func TestMIDITime(t *testing.T) {
	m := MIDI{Timestamp: 1_500_000_000}
	if got := m.Time().UnixNano(); got != 1_500_000_000 {
		t.Errorf("Time().UnixNano() = %d, want 1500000000", got)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{in: "", want: InfoLevel},
		{in: "info", want: InfoLevel},
		{in: "DEBUG", want: DebugLevel},
		{in: " warning ", want: WarnLevel},
		{in: "error", want: ErrorLevel},
		{in: "fatal", want: FatalLevel},
		{in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLogLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLogLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
