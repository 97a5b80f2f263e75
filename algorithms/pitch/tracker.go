package pitch

import (
	"context"
	"math"
)

// PitchSample is one frame-level pitch observation. Samples are ephemeral:
// produced by the Tracker, consumed by note segmentation, never persisted.
type PitchSample struct {
	Frequency  float64 `json:"frequency"`  // Hz
	Confidence float64 `json:"confidence"` // 0-1
	Time       float64 `json:"time"`       // seconds, window start
}

// TrackerParams contains parameters for frame-level pitch tracking.
type TrackerParams struct {
	SampleRate int `json:"sample_rate"`
	WindowSize int `json:"window_size"`
	HopSize    int `json:"hop_size"`

	// Frequency range constraints
	MinFreq float64 `json:"min_freq"` // Hz, lower bound of the lag search
	MaxFreq float64 `json:"max_freq"` // Hz, upper bound of the lag search
}

// DefaultTrackerParams returns the default analysis configuration:
// non-overlapping 2048-sample windows over the melodic range.
func DefaultTrackerParams(sampleRate int) TrackerParams {
	return TrackerParams{
		SampleRate: sampleRate,
		WindowSize: 2048,
		HopSize:    2048,
		MinFreq:    80.0,   // low guitar/vocal range
		MaxFreq:    1000.0, // upper melodic range
	}
}

// Tracker extracts a fundamental-frequency trajectory from raw mono samples
// using time-domain autocorrelation.
//
// References:
// - Rabiner, L.R. (1977). "On the use of autocorrelation analysis for pitch detection"
// - de Cheveigné, A., Kawahara, H. (2002). "YIN, a fundamental frequency estimator"
//
// The lag scan is an intentional direct double loop, O(window * lag range)
// per window. Poor signal never raises an error, it only lowers confidence.
type Tracker struct {
	params TrackerParams
}

// NewTracker creates a pitch tracker with default parameters.
func NewTracker(sampleRate int) *Tracker {
	return NewTrackerWithParams(DefaultTrackerParams(sampleRate))
}

// NewTrackerWithParams creates a pitch tracker with custom parameters.
func NewTrackerWithParams(params TrackerParams) *Tracker {
	return &Tracker{params: params}
}

// Params returns the tracker's current parameters.
func (t *Tracker) Params() TrackerParams {
	return t.params
}

// Track produces one PitchSample per analysis window. Malformed or empty
// input yields an empty sequence, not an error.
func (t *Tracker) Track(samples []float64) []PitchSample {
	result, _ := t.TrackContext(context.Background(), samples, nil)
	return result
}

// TrackContext is Track with periodic cancellation checks and optional
// per-window progress reporting.
func (t *Tracker) TrackContext(ctx context.Context, samples []float64, progress func(done, total int)) ([]PitchSample, error) {
	results := make([]PitchSample, 0)
	if len(samples) == 0 || t.params.SampleRate <= 0 || t.params.HopSize <= 0 {
		return results, nil
	}

	minLag := int(math.Round(float64(t.params.SampleRate) / t.params.MaxFreq))
	maxLag := int(math.Round(float64(t.params.SampleRate) / t.params.MinFreq))
	if minLag < 1 {
		minLag = 1
	}

	totalWindows := 0
	for start := 0; start < len(samples); start += t.params.HopSize {
		totalWindows++
	}

	window := 0
	for start := 0; start < len(samples); start += t.params.HopSize {
		if window%16 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		end := start + t.params.WindowSize
		if end > len(samples) {
			end = len(samples)
		}
		frame := samples[start:end]

		// A frame shorter than the longest candidate period cannot resolve
		// the low end of the range; it is skipped outright.
		if len(frame) >= maxLag {
			time := float64(start) / float64(t.params.SampleRate)
			results = append(results, t.analyzeFrame(frame, minLag, maxLag, time))
		}

		window++
		if progress != nil {
			progress(window, totalWindows)
		}
	}

	return results, nil
}

// analyzeFrame runs the autocorrelation lag scan over one window.
func (t *Tracker) analyzeFrame(frame []float64, minLag, maxLag int, time float64) PitchSample {
	bestLag := minLag
	bestCorr := 0.0

	// Ascending scan with strictly-greater replacement: ties resolve to the
	// smallest lag, i.e. the highest candidate frequency.
	for lag := minLag; lag <= maxLag && lag < len(frame); lag++ {
		corr := 0.0
		for i := 0; i+lag < len(frame); i++ {
			corr += frame[i] * frame[i+lag]
		}
		if corr > bestCorr {
			bestCorr = corr
			bestLag = lag
		}
	}

	energy := 0.0
	for _, s := range frame {
		energy += s * s
	}

	confidence := 0.0
	if energy > 0 {
		confidence = bestCorr / energy
		if confidence < 0 {
			confidence = 0
		} else if confidence > 1 {
			confidence = 1
		}
	}

	return PitchSample{
		Frequency:  float64(t.params.SampleRate) / float64(bestLag),
		Confidence: confidence,
		Time:       time,
	}
}
