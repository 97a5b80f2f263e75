package music

import (
	"math"
	"testing"
)

// --------------------------------------------------------------------
// Pitch <-> frequency conversion
// --------------------------------------------------------------------

func TestPitchToFrequency(t *testing.T) {
	tests := []struct {
		name  string
		pitch int
		want  float64
	}{
		{"concert A", 69, 440.0},
		{"middle C", 60, 261.626},
		{"A one octave up", 81, 880.0},
		{"A one octave down", 57, 220.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PitchToFrequency(tt.pitch)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("PitchToFrequency(%d) = %f, want %f", tt.pitch, got, tt.want)
			}
		})
	}
}

func TestFrequencyToPitch(t *testing.T) {
	tests := []struct {
		name string
		freq float64
		want int
	}{
		{"concert A", 440.0, 69},
		{"middle C", 261.63, 60},
		{"slightly sharp A", 445.0, 69},
		{"zero frequency", 0.0, MinPitch},
		{"negative frequency", -10.0, MinPitch},
		{"above MIDI range", 40000.0, MaxPitch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FrequencyToPitch(tt.freq); got != tt.want {
				t.Errorf("FrequencyToPitch(%f) = %d, want %d", tt.freq, got, tt.want)
			}
		})
	}
}

func TestPitchRoundTrip(t *testing.T) {
	for pitch := MinPitch; pitch <= MaxPitch; pitch++ {
		if got := FrequencyToPitch(PitchToFrequency(pitch)); got != pitch {
			t.Errorf("round trip for pitch %d produced %d", pitch, got)
		}
	}
}

// --------------------------------------------------------------------
// NoteEvent
// --------------------------------------------------------------------

func TestNoteEvent_PitchClass(t *testing.T) {
	tests := []struct {
		pitch int
		want  int
	}{
		{60, 0},  // C4
		{69, 9},  // A4
		{0, 0},   // C-1
		{11, 11}, // B-1
		{127, 7}, // G9
	}

	for _, tt := range tests {
		n := NoteEvent{Pitch: tt.pitch}
		if got := n.PitchClass(); got != tt.want {
			t.Errorf("PitchClass() for pitch %d = %d, want %d", tt.pitch, got, tt.want)
		}
	}
}

func TestNoteEvent_EndTime(t *testing.T) {
	n := NoteEvent{StartTime: 1.5, Duration: 0.25}
	if got := n.EndTime(); got != 1.75 {
		t.Errorf("EndTime() = %f, want 1.75", got)
	}
}

// --------------------------------------------------------------------
// NoteTrack
// --------------------------------------------------------------------

func TestNoteTrack_SortedByOnset(t *testing.T) {
	track := NewNoteTrack("test", InstrumentGuitar)
	track.Append(NoteEvent{Pitch: 60, StartTime: 2.0, Duration: 0.5})
	track.Append(NoteEvent{Pitch: 62, StartTime: 0.5, Duration: 0.5})
	track.Append(NoteEvent{Pitch: 64, StartTime: 1.0, Duration: 0.5})

	sorted := track.SortedByOnset()
	wantPitches := []int{62, 64, 60}
	for i, want := range wantPitches {
		if sorted[i].Pitch != want {
			t.Errorf("sorted[%d].Pitch = %d, want %d", i, sorted[i].Pitch, want)
		}
	}

	// The track itself keeps generation order.
	if track.Notes[0].Pitch != 60 {
		t.Errorf("SortedByOnset mutated the track")
	}
}

func TestNoteTrack_EndTime(t *testing.T) {
	track := NewNoteTrack("test", InstrumentBass)
	if got := track.EndTime(); got != 0 {
		t.Errorf("empty track EndTime() = %f, want 0", got)
	}

	track.Append(NoteEvent{Pitch: 40, StartTime: 0.0, Duration: 3.0})
	track.Append(NoteEvent{Pitch: 43, StartTime: 2.0, Duration: 0.5})
	if got := track.EndTime(); got != 3.0 {
		t.Errorf("EndTime() = %f, want 3.0", got)
	}
}

func TestClampVelocity(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, 0},
		{0, 0},
		{64, 64},
		{127, 127},
		{300, 127},
	}

	for _, tt := range tests {
		if got := ClampVelocity(tt.in); got != tt.want {
			t.Errorf("ClampVelocity(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
