package tonal

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/backline-audio/backline/music"
)

// KeyMode represents major or minor mode.
type KeyMode int

const (
	KeyModeMajor KeyMode = iota
	KeyModeMinor
)

func (m KeyMode) String() string {
	if m == KeyModeMinor {
		return "minor"
	}
	return "major"
}

// Krumhansl-Schmuckler key profiles, empirically derived from listener
// probe-tone ratings.
//
// Reference: Krumhansl, C. (1990). "Cognitive Foundations of Musical Pitch"
var (
	krumhanslMajor = []float64{6.35, 2.23, 3.48, 2.33, 4.38, 4.09, 2.52, 5.19, 2.39, 3.66, 2.29, 2.88}
	krumhanslMinor = []float64{6.33, 2.68, 3.52, 5.38, 2.60, 3.53, 2.54, 4.75, 3.98, 2.69, 3.34, 3.17}
)

// KeyCandidate is one scored (tonic, mode) hypothesis.
type KeyCandidate struct {
	Tonic       int     `json:"tonic"` // pitch class 0-11
	Mode        KeyMode `json:"mode"`
	KeyName     string  `json:"key_name"`
	Correlation float64 `json:"correlation"`
}

// KeyResult contains the key estimation outcome.
type KeyResult struct {
	Tonic       int     `json:"tonic"` // pitch class 0-11
	Mode        KeyMode `json:"mode"`
	KeyName     string  `json:"key_name"` // e.g. "C major"
	Correlation float64 `json:"correlation"`

	// CorrelationScores holds all 24 candidate scores: index 2*tonic for
	// major, 2*tonic+1 for minor, tonics ascending.
	CorrelationScores []float64 `json:"correlation_scores"`
}

// KeyEstimator derives the tonal center of a note track by correlating its
// duration-weighted pitch-class distribution against rotated key profiles.
type KeyEstimator struct{}

// NewKeyEstimator creates a key estimator.
func NewKeyEstimator() *KeyEstimator {
	return &KeyEstimator{}
}

// Estimate returns the most probable key of the track. Tracks with no notes
// or zero accumulated weight default to C major.
func (ke *KeyEstimator) Estimate(track *music.NoteTrack) KeyResult {
	histogram, total := pitchClassHistogram(track)
	if total == 0 {
		return KeyResult{
			Tonic:   0,
			Mode:    KeyModeMajor,
			KeyName: keyName(0, KeyModeMajor),
		}
	}

	distribution := make([]float64, 12)
	for i, w := range histogram {
		distribution[i] = float64(w) / float64(total)
	}

	scores := make([]float64, 24)
	best := KeyCandidate{Tonic: 0, Mode: KeyModeMajor, Correlation: math.Inf(-1)}

	// Tonics ascending, major before minor at each tonic; only a strictly
	// greater correlation replaces the front-runner, so ties keep the first
	// maximum found.
	for tonic := 0; tonic < 12; tonic++ {
		majorCorr := profileCorrelation(distribution, krumhanslMajor, tonic)
		scores[2*tonic] = majorCorr
		if majorCorr > best.Correlation {
			best = KeyCandidate{Tonic: tonic, Mode: KeyModeMajor, Correlation: majorCorr}
		}

		minorCorr := profileCorrelation(distribution, krumhanslMinor, tonic)
		scores[2*tonic+1] = minorCorr
		if minorCorr > best.Correlation {
			best = KeyCandidate{Tonic: tonic, Mode: KeyModeMinor, Correlation: minorCorr}
		}
	}

	return KeyResult{
		Tonic:             best.Tonic,
		Mode:              best.Mode,
		KeyName:           keyName(best.Tonic, best.Mode),
		Correlation:       best.Correlation,
		CorrelationScores: scores,
	}
}

// pitchClassHistogram accumulates integer duration weights per pitch class,
// weight = floor(duration * 10).
func pitchClassHistogram(track *music.NoteTrack) ([12]int64, int64) {
	var histogram [12]int64
	var total int64
	if track == nil {
		return histogram, 0
	}
	for _, n := range track.Notes {
		weight := int64(math.Floor(n.Duration * 10.0))
		if weight <= 0 {
			continue
		}
		histogram[n.PitchClass()] += weight
		total += weight
	}
	return histogram, total
}

// profileCorrelation computes the Pearson correlation between the observed
// distribution and the profile rotated so that its tonic lands on the given
// pitch class. Zero variance on either side yields 0.
func profileCorrelation(distribution, profile []float64, tonic int) float64 {
	rotated := make([]float64, 12)
	for i := range profile {
		rotated[(i+tonic)%12] = profile[i]
	}

	if stat.Variance(distribution, nil) == 0 || stat.Variance(rotated, nil) == 0 {
		return 0
	}

	corr := stat.Correlation(distribution, rotated, nil)
	if math.IsNaN(corr) {
		return 0
	}
	return corr
}

func keyName(tonic int, mode KeyMode) string {
	return music.PitchClassNames[tonic] + " " + mode.String()
}
