package tempo

import (
	"math"
	"sort"

	"github.com/backline-audio/backline/music"
)

// EstimatorParams contains parameters for tempo estimation.
type EstimatorParams struct {
	// Inter-onset intervals outside (MinInterval, MaxInterval) are discarded
	// as either retriggers or rests, in seconds.
	MinInterval float64 `json:"min_interval"`
	MaxInterval float64 `json:"max_interval"`

	// RoundTo quantizes candidate BPM values to this step before voting.
	RoundTo float64 `json:"round_to"`

	// Final clamp range and the fallback when voting is impossible.
	MinBPM     float64 `json:"min_bpm"`
	MaxBPM     float64 `json:"max_bpm"`
	DefaultBPM float64 `json:"default_bpm"`

	// MinOnsets is the minimum onset count required to attempt estimation.
	MinOnsets int `json:"min_onsets"`
}

// DefaultEstimatorParams returns the standard tempo estimation configuration.
func DefaultEstimatorParams() EstimatorParams {
	return EstimatorParams{
		MinInterval: 0.1,
		MaxInterval: 2.0,
		RoundTo:     5.0,
		MinBPM:      60.0,
		MaxBPM:      200.0,
		DefaultBPM:  120.0,
		MinOnsets:   3,
	}
}

// Result holds the estimated tempo and meter.
type Result struct {
	BPM           float64             `json:"bpm"`
	TimeSignature music.TimeSignature `json:"time_signature"`
}

// Estimator derives a single BPM from note onset spacing by voting over
// quantized inter-onset intervals.
//
// The meter is always reported as 4/4. This is a known limitation of the
// current design, not a detection failure.
type Estimator struct {
	params EstimatorParams
}

// NewEstimator creates a tempo estimator with default parameters.
func NewEstimator() *Estimator {
	return NewEstimatorWithParams(DefaultEstimatorParams())
}

// NewEstimatorWithParams creates a tempo estimator with custom parameters.
func NewEstimatorWithParams(params EstimatorParams) *Estimator {
	return &Estimator{params: params}
}

// Estimate returns the track's tempo. Sparse or degenerate onset material
// resolves to the default BPM rather than an error.
func (e *Estimator) Estimate(track *music.NoteTrack) Result {
	result := Result{
		BPM:           e.params.DefaultBPM,
		TimeSignature: music.CommonTime,
	}

	if track == nil || len(track.Notes) < e.params.MinOnsets {
		return result
	}

	onsets := make([]float64, 0, len(track.Notes))
	for _, n := range track.Notes {
		onsets = append(onsets, n.StartTime)
	}
	sort.Float64s(onsets)

	candidates := make([]float64, 0, len(onsets)-1)
	for i := 1; i < len(onsets); i++ {
		interval := onsets[i] - onsets[i-1]
		if interval <= e.params.MinInterval || interval >= e.params.MaxInterval {
			continue
		}
		bpm := 60.0 / interval
		candidates = append(candidates, math.Round(bpm/e.params.RoundTo)*e.params.RoundTo)
	}

	if len(candidates) == 0 {
		return result
	}

	result.BPM = e.clamp(modeFirstMax(candidates))
	return result
}

// modeFirstMax returns the statistical mode of the values. Counts accumulate
// in encounter order and only a strictly greater count replaces the current
// best, so ties resolve to the first-encountered maximum.
func modeFirstMax(values []float64) float64 {
	type valueCount struct {
		value float64
		count int
	}

	counts := make([]valueCount, 0, len(values))
	index := make(map[float64]int)
	for _, v := range values {
		if i, ok := index[v]; ok {
			counts[i].count++
		} else {
			index[v] = len(counts)
			counts = append(counts, valueCount{value: v, count: 1})
		}
	}

	best := counts[0]
	for _, vc := range counts[1:] {
		if vc.count > best.count {
			best = vc
		}
	}
	return best.value
}

func (e *Estimator) clamp(bpm float64) float64 {
	if bpm < e.params.MinBPM {
		return e.params.MinBPM
	}
	if bpm > e.params.MaxBPM {
		return e.params.MaxBPM
	}
	return bpm
}
