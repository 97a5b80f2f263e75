package music

import (
	"math"
	"sort"
)

// Standard MIDI conventions used throughout the model.
const (
	MinPitch = 0
	MaxPitch = 127

	MinVelocity = 0
	MaxVelocity = 127

	PercussionChannel = 9

	// ConcertA is the reference tuning frequency for MIDI note 69.
	ConcertA = 440.0
)

// PitchClassNames maps pitch class (pitch mod 12) to its sharp-spelled name.
var PitchClassNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Instrument identifies the synthesis voice assigned to a track.
// The set is closed: rendering dispatches on it exactly once per track.
type Instrument int

const (
	InstrumentGuitar Instrument = iota
	InstrumentBass
	InstrumentDrums
)

func (i Instrument) String() string {
	switch i {
	case InstrumentGuitar:
		return "guitar"
	case InstrumentBass:
		return "bass"
	case InstrumentDrums:
		return "drums"
	default:
		return "unknown"
	}
}

// NoteEvent is a single transcribed or generated note. Events are immutable
// value types; StartTime is always >= 0 and Duration always > 0.
type NoteEvent struct {
	Pitch     int     `json:"pitch"`      // MIDI note number 0-127
	Velocity  int     `json:"velocity"`   // 0-127
	StartTime float64 `json:"start_time"` // seconds
	Duration  float64 `json:"duration"`   // seconds
	Channel   int     `json:"channel"`    // 0-15, channel 9 is percussion
}

// EndTime returns the time at which the note stops sounding.
func (n NoteEvent) EndTime() float64 {
	return n.StartTime + n.Duration
}

// PitchClass returns the note's pitch reduced to one of 12 classes.
func (n NoteEvent) PitchClass() int {
	return ((n.Pitch % 12) + 12) % 12
}

// PitchToFrequency converts a MIDI note number to its equal-tempered
// frequency in Hz: freq = 440 * 2^((pitch-69)/12).
func PitchToFrequency(pitch int) float64 {
	return ConcertA * math.Pow(2.0, float64(pitch-69)/12.0)
}

// FrequencyToPitch converts a frequency in Hz to the nearest MIDI note
// number, clamped to the valid range.
func FrequencyToPitch(freq float64) int {
	if freq <= 0 {
		return MinPitch
	}
	pitch := int(math.Round(69.0 + 12.0*math.Log2(freq/ConcertA)))
	return ClampPitch(pitch)
}

// ClampPitch clamps a note number into the valid MIDI range.
func ClampPitch(pitch int) int {
	if pitch < MinPitch {
		return MinPitch
	}
	if pitch > MaxPitch {
		return MaxPitch
	}
	return pitch
}

// ClampVelocity clamps a velocity into the valid MIDI range.
func ClampVelocity(velocity int) int {
	if velocity < MinVelocity {
		return MinVelocity
	}
	if velocity > MaxVelocity {
		return MaxVelocity
	}
	return velocity
}

// NoteTrack is one instrument part: an append-ordered sequence of events.
// Append order is the temporal generation order; consumers that need strict
// temporal order should use SortedByOnset.
type NoteTrack struct {
	Name       string      `json:"name"`
	Instrument Instrument  `json:"instrument"`
	Notes      []NoteEvent `json:"notes"`
}

// NewNoteTrack creates an empty track for the given instrument.
func NewNoteTrack(name string, instrument Instrument) *NoteTrack {
	return &NoteTrack{
		Name:       name,
		Instrument: instrument,
		Notes:      make([]NoteEvent, 0),
	}
}

// Append adds a note to the track preserving generation order.
func (t *NoteTrack) Append(n NoteEvent) {
	t.Notes = append(t.Notes, n)
}

// IsEmpty reports whether the track has no notes.
func (t *NoteTrack) IsEmpty() bool {
	return len(t.Notes) == 0
}

// SortedByOnset returns a copy of the track's notes ordered by start time.
// Equal onsets keep their generation order.
func (t *NoteTrack) SortedByOnset() []NoteEvent {
	sorted := make([]NoteEvent, len(t.Notes))
	copy(sorted, t.Notes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime < sorted[j].StartTime
	})
	return sorted
}

// EndTime returns the latest note end time in the track, 0 for empty tracks.
func (t *NoteTrack) EndTime() float64 {
	end := 0.0
	for _, n := range t.Notes {
		if n.EndTime() > end {
			end = n.EndTime()
		}
	}
	return end
}
