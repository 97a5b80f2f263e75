package tonal

import (
	"testing"

	"github.com/backline-audio/backline/music"
)

func scaleTrack(pitches []int, duration float64) *music.NoteTrack {
	track := music.NewNoteTrack("test", music.InstrumentGuitar)
	for i, p := range pitches {
		track.Append(music.NoteEvent{
			Pitch:     p,
			Velocity:  90,
			StartTime: float64(i) * duration,
			Duration:  duration,
		})
	}
	return track
}

// --------------------------------------------------------------------
// Key detection on scale material
// --------------------------------------------------------------------

func TestKeyEstimator_Scales(t *testing.T) {
	tests := []struct {
		name    string
		pitches []int
		want    string
	}{
		{"C major scale", []int{60, 62, 64, 65, 67, 69, 71, 72}, "C major"},
		{"G major scale", []int{67, 69, 71, 72, 74, 76, 78, 79}, "G major"},
		{"D major scale", []int{62, 64, 66, 67, 69, 71, 73, 74}, "D major"},
		{"A natural minor scale", []int{57, 59, 60, 62, 64, 65, 67, 69}, "A minor"},
		{"C natural minor scale", []int{60, 62, 63, 65, 67, 68, 70, 72}, "C minor"},
	}

	ke := NewKeyEstimator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Tonic notes get extra weight, as they would in real melodies.
			track := scaleTrack(tt.pitches, 0.5)
			track.Append(music.NoteEvent{Pitch: tt.pitches[0], Velocity: 90, StartTime: 4.0, Duration: 2.0})

			result := ke.Estimate(track)
			if result.KeyName != tt.want {
				t.Errorf("KeyName = %q, want %q", result.KeyName, tt.want)
			}
		})
	}
}

// --------------------------------------------------------------------
// Defaults and edge cases
// --------------------------------------------------------------------

func TestKeyEstimator_EmptyTrack(t *testing.T) {
	ke := NewKeyEstimator()

	tests := []struct {
		name  string
		track *music.NoteTrack
	}{
		{"nil track", nil},
		{"no notes", music.NewNoteTrack("empty", music.InstrumentGuitar)},
		{"only sub-weight notes", scaleTrack([]int{60, 64, 67}, 0.05)}, // floor(0.05*10) = 0
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ke.Estimate(tt.track)
			if result.KeyName != "C major" {
				t.Errorf("KeyName = %q, want \"C major\" (default)", result.KeyName)
			}
		})
	}
}

func TestKeyEstimator_ScoresAllCandidates(t *testing.T) {
	ke := NewKeyEstimator()
	result := ke.Estimate(scaleTrack([]int{60, 62, 64, 65, 67, 69, 71}, 1.0))
	if len(result.CorrelationScores) != 24 {
		t.Fatalf("got %d candidate scores, want 24", len(result.CorrelationScores))
	}

	// The winner's score must equal the reported correlation.
	idx := 2 * result.Tonic
	if result.Mode == KeyModeMinor {
		idx++
	}
	if result.CorrelationScores[idx] != result.Correlation {
		t.Errorf("winner score %f does not match Correlation %f",
			result.CorrelationScores[idx], result.Correlation)
	}
}

func TestKeyEstimator_DurationWeighting(t *testing.T) {
	ke := NewKeyEstimator()

	// Same pitch classes as C major, but with long durations concentrated on
	// A and E the profile match shifts to A minor.
	track := music.NewNoteTrack("test", music.InstrumentGuitar)
	for i, p := range []int{57, 60, 62, 64, 65, 67, 71} {
		track.Append(music.NoteEvent{Pitch: p, Velocity: 90, StartTime: float64(i), Duration: 0.5})
	}
	track.Append(music.NoteEvent{Pitch: 57, Velocity: 90, StartTime: 8.0, Duration: 4.0}) // A
	track.Append(music.NoteEvent{Pitch: 64, Velocity: 90, StartTime: 12.0, Duration: 3.0}) // E

	result := ke.Estimate(track)
	if result.KeyName != "A minor" {
		t.Errorf("KeyName = %q, want \"A minor\"", result.KeyName)
	}
}
