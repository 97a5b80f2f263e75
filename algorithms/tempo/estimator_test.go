package tempo

import (
	"testing"

	"github.com/backline-audio/backline/music"
)

func trackWithOnsets(onsets ...float64) *music.NoteTrack {
	track := music.NewNoteTrack("test", music.InstrumentGuitar)
	for _, onset := range onsets {
		track.Append(music.NoteEvent{Pitch: 60, Velocity: 90, StartTime: onset, Duration: 0.1})
	}
	return track
}

// --------------------------------------------------------------------
// Defaults
// --------------------------------------------------------------------

func TestEstimator_Defaults(t *testing.T) {
	tests := []struct {
		name  string
		track *music.NoteTrack
	}{
		{"nil track", nil},
		{"empty track", trackWithOnsets()},
		{"two onsets only", trackWithOnsets(0.0, 0.5)},
		{"all intervals too long", trackWithOnsets(0.0, 2.5, 5.0)},
		{"all intervals too short", trackWithOnsets(0.0, 0.05, 0.1)},
	}

	e := NewEstimator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := e.Estimate(tt.track)
			if result.BPM != 120.0 {
				t.Errorf("BPM = %f, want 120 (default)", result.BPM)
			}
			if result.TimeSignature != music.CommonTime {
				t.Errorf("TimeSignature = %+v, want 4/4", result.TimeSignature)
			}
		})
	}
}

// --------------------------------------------------------------------
// Estimation
// --------------------------------------------------------------------

func TestEstimator_SteadyOnsets(t *testing.T) {
	tests := []struct {
		name    string
		spacing float64
		want    float64
	}{
		{"120 BPM quarters", 0.5, 120.0},
		{"100 BPM quarters", 0.6, 100.0},
		{"150 BPM quarters", 0.4, 150.0},
		{"slow ballad clamped", 1.5, 60.0},   // 40 BPM clamps up to 60
		{"fast line clamped", 0.25, 200.0},   // 240 BPM clamps down to 200
	}

	e := NewEstimator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			onsets := make([]float64, 8)
			for i := range onsets {
				onsets[i] = float64(i) * tt.spacing
			}
			result := e.Estimate(trackWithOnsets(onsets...))
			if result.BPM != tt.want {
				t.Errorf("BPM = %f, want %f", result.BPM, tt.want)
			}
		})
	}
}

func TestEstimator_RoundsToFive(t *testing.T) {
	// 0.495s spacing is 121.2 BPM, which rounds to 120 before voting.
	e := NewEstimator()
	result := e.Estimate(trackWithOnsets(0.0, 0.495, 0.99, 1.485))
	if result.BPM != 120.0 {
		t.Errorf("BPM = %f, want 120", result.BPM)
	}
}

func TestEstimator_ModePicksMostCommon(t *testing.T) {
	// Five 0.5s intervals (120 BPM) and two 0.6s intervals (100 BPM).
	e := NewEstimator()
	result := e.Estimate(trackWithOnsets(0.0, 0.5, 1.0, 1.5, 2.0, 2.5, 3.1, 3.7))
	if result.BPM != 120.0 {
		t.Errorf("BPM = %f, want 120 (majority interval)", result.BPM)
	}
}

func TestEstimator_ModeTieKeepsFirst(t *testing.T) {
	// One 0.5s interval then one 0.6s interval: tied vote resolves to the
	// first candidate encountered in onset order.
	e := NewEstimator()
	result := e.Estimate(trackWithOnsets(0.0, 0.5, 1.1))
	if result.BPM != 120.0 {
		t.Errorf("BPM = %f, want 120 (first of tied candidates)", result.BPM)
	}
}

func TestEstimator_UnsortedOnsets(t *testing.T) {
	// Onset order in the track does not matter; intervals come from the
	// sorted onset sequence.
	e := NewEstimator()
	result := e.Estimate(trackWithOnsets(1.0, 0.0, 1.5, 0.5))
	if result.BPM != 120.0 {
		t.Errorf("BPM = %f, want 120", result.BPM)
	}
}
