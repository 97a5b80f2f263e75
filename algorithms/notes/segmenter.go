package notes

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/backline-audio/backline/algorithms/pitch"
	"github.com/backline-audio/backline/music"
)

// SegmenterParams contains parameters for note segmentation.
type SegmenterParams struct {
	// ConfidenceGate is the strict lower bound a pitch sample must exceed
	// to count as voiced.
	ConfidenceGate float64 `json:"confidence_gate"`

	// StabilityThreshold is the maximum semitone distance from the active
	// note's pitch for a sample to continue that note.
	StabilityThreshold int `json:"stability_threshold"`

	// MinNoteDuration drops finalized notes shorter than this, in seconds.
	MinNoteDuration float64 `json:"min_note_duration"`

	// Velocity mapping: velocity = round(VelocityFloor + VelocityRange * avgConfidence).
	VelocityFloor float64 `json:"velocity_floor"`
	VelocityRange float64 `json:"velocity_range"`
}

// DefaultSegmenterParams returns the standard segmentation configuration.
func DefaultSegmenterParams() SegmenterParams {
	return SegmenterParams{
		ConfidenceGate:     0.5,
		StabilityThreshold: 1,
		MinNoteDuration:    0.05,
		VelocityFloor:      40.0,
		VelocityRange:      87.0,
	}
}

// Segmenter converts a chronological frame-level pitch stream into discrete
// note events. A sample opens, continues, or closes the single in-progress
// note; there is never more than one active note (monophonic input).
type Segmenter struct {
	params SegmenterParams
}

// NewSegmenter creates a segmenter with default parameters.
func NewSegmenter() *Segmenter {
	return NewSegmenterWithParams(DefaultSegmenterParams())
}

// NewSegmenterWithParams creates a segmenter with custom parameters.
func NewSegmenterWithParams(params SegmenterParams) *Segmenter {
	return &Segmenter{params: params}
}

// activeNote tracks the in-progress note while scanning the pitch stream.
type activeNote struct {
	anchorPitch int
	startTime   float64
	lastTime    float64
	pitches     []int
	confidences []float64
}

// Segment converts the pitch stream into a note track. Empty input yields
// an empty track.
func (s *Segmenter) Segment(samples []pitch.PitchSample, trackName string) *music.NoteTrack {
	track := music.NewNoteTrack(trackName, music.InstrumentGuitar)

	var active *activeNote
	for _, sample := range samples {
		candidate, voiced := s.candidatePitch(sample)

		if !voiced {
			if active != nil {
				s.finalize(active, track)
				active = nil
			}
			continue
		}

		if active == nil {
			active = &activeNote{
				anchorPitch: candidate,
				startTime:   sample.Time,
				lastTime:    sample.Time,
				pitches:     []int{candidate},
				confidences: []float64{sample.Confidence},
			}
			continue
		}

		if absInt(candidate-active.anchorPitch) <= s.params.StabilityThreshold {
			active.lastTime = sample.Time
			active.pitches = append(active.pitches, candidate)
			active.confidences = append(active.confidences, sample.Confidence)
			continue
		}

		// Pitch moved beyond the stability window: close out and restart.
		s.finalize(active, track)
		active = &activeNote{
			anchorPitch: candidate,
			startTime:   sample.Time,
			lastTime:    sample.Time,
			pitches:     []int{candidate},
			confidences: []float64{sample.Confidence},
		}
	}

	if active != nil {
		s.finalize(active, track)
	}

	return track
}

// candidatePitch gates a sample on confidence and maps it to a MIDI pitch.
// The gate is a strict greater-than: confidence exactly at the threshold is
// unvoiced.
func (s *Segmenter) candidatePitch(sample pitch.PitchSample) (int, bool) {
	if sample.Confidence <= s.params.ConfidenceGate || sample.Frequency <= 0 {
		return 0, false
	}
	midi := int(math.Round(69.0 + 12.0*math.Log2(sample.Frequency/music.ConcertA)))
	return music.ClampPitch(midi), true
}

// finalize closes the in-progress note and appends it to the track unless it
// falls below the minimum duration.
func (s *Segmenter) finalize(n *activeNote, track *music.NoteTrack) {
	duration := n.lastTime - n.startTime
	if duration < s.params.MinNoteDuration {
		return
	}

	avgConfidence := stat.Mean(n.confidences, nil)
	velocity := music.ClampVelocity(int(math.Round(s.params.VelocityFloor + s.params.VelocityRange*avgConfidence)))

	track.Append(music.NoteEvent{
		Pitch:     mostFrequentPitch(n.pitches),
		Velocity:  velocity,
		StartTime: n.startTime,
		Duration:  duration,
		Channel:   0,
	})
}

// mostFrequentPitch returns the most common pitch in the note's samples.
// Ties keep the first-encountered pitch: counts are accumulated in encounter
// order and only a strictly greater count replaces the current best.
func mostFrequentPitch(pitches []int) int {
	type pitchCount struct {
		pitch int
		count int
	}

	counts := make([]pitchCount, 0, len(pitches))
	index := make(map[int]int)
	for _, p := range pitches {
		if i, ok := index[p]; ok {
			counts[i].count++
		} else {
			index[p] = len(counts)
			counts = append(counts, pitchCount{pitch: p, count: 1})
		}
	}

	best := counts[0]
	for _, pc := range counts[1:] {
		if pc.count > best.count {
			best = pc
		}
	}
	return best.pitch
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
