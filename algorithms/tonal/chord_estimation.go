package tonal

import (
	"sort"

	"github.com/backline-audio/backline/music"
)

// ChordEstimatorParams contains parameters for chord estimation.
type ChordEstimatorParams struct {
	// BeatsPerWindow sets the analysis window length in beats.
	BeatsPerWindow float64 `json:"beats_per_window"`
}

// DefaultChordEstimatorParams returns the standard one-beat window setup.
func DefaultChordEstimatorParams() ChordEstimatorParams {
	return ChordEstimatorParams{BeatsPerWindow: 1.0}
}

// ChordEstimator derives a merged chord sequence from a note track by
// grouping sounding pitch classes per beat-length window and classifying
// the interval set above the lowest pitch.
type ChordEstimator struct {
	params ChordEstimatorParams
}

// NewChordEstimator creates a chord estimator with default parameters.
func NewChordEstimator() *ChordEstimator {
	return NewChordEstimatorWithParams(DefaultChordEstimatorParams())
}

// NewChordEstimatorWithParams creates a chord estimator with custom parameters.
func NewChordEstimatorWithParams(params ChordEstimatorParams) *ChordEstimator {
	return &ChordEstimator{params: params}
}

// Estimate scans contiguous windows from time 0 to the track's end and
// returns the merged chord sequence. Empty tracks or non-positive tempo
// yield an empty sequence.
func (ce *ChordEstimator) Estimate(track *music.NoteTrack, tempoBPM float64) []music.Chord {
	chords := make([]music.Chord, 0)
	if track == nil || track.IsEmpty() || tempoBPM <= 0 {
		return chords
	}

	windowLen := (60.0 / tempoBPM) * ce.params.BeatsPerWindow
	trackEnd := track.EndTime()

	for windowStart := 0.0; windowStart < trackEnd; windowStart += windowLen {
		windowEnd := windowStart + windowLen

		var windowNotes []music.NoteEvent
		for _, n := range track.Notes {
			if n.StartTime < windowEnd && n.EndTime() > windowStart {
				windowNotes = append(windowNotes, n)
			}
		}
		if len(windowNotes) == 0 {
			continue
		}

		root, quality := classifyWindow(windowNotes)
		chords = append(chords, music.Chord{
			Root:      root,
			Quality:   quality,
			StartTime: windowStart,
			Duration:  windowLen,
		})
	}

	return MergeChords(chords)
}

// classifyWindow derives (root, quality) from the notes sounding in one
// window. The root is the pitch class of the lowest sounding pitch; the
// quality comes from the interval set normalized to that root.
func classifyWindow(windowNotes []music.NoteEvent) (int, music.ChordQuality) {
	lowest := windowNotes[0].Pitch
	for _, n := range windowNotes[1:] {
		if n.Pitch < lowest {
			lowest = n.Pitch
		}
	}
	root := ((lowest % 12) + 12) % 12

	intervalSet := make(map[int]bool)
	for _, n := range windowNotes {
		interval := ((n.PitchClass() - root) + 12) % 12
		if interval != 0 {
			intervalSet[interval] = true
		}
	}

	return root, classifyIntervals(intervalSet)
}

// classifyIntervals maps an interval set (root excluded) to a chord quality.
// The exact-match tests run in a fixed priority order; windows holding only
// the root come out major.
func classifyIntervals(intervals map[int]bool) music.ChordQuality {
	switch {
	case intervalsExactly(intervals, 4, 7):
		return music.QualityMajor
	case intervalsExactly(intervals, 3, 7):
		return music.QualityMinor
	case intervalsExactly(intervals, 4, 7, 10):
		return music.QualityDominant7
	case intervalsExactly(intervals, 4, 7, 11):
		return music.QualityMajor7
	case intervalsExactly(intervals, 3, 7, 10):
		return music.QualityMinor7
	case intervalsExactly(intervals, 3, 6):
		return music.QualityDiminished
	case intervalsExactly(intervals, 4, 8):
		return music.QualityAugmented
	case intervals[3]:
		return music.QualityMinor
	default:
		return music.QualityMajor
	}
}

// intervalsExactly reports whether the interval set is exactly the given
// collection.
func intervalsExactly(intervals map[int]bool, want ...int) bool {
	if len(intervals) != len(want) {
		return false
	}
	for _, w := range want {
		if !intervals[w] {
			return false
		}
	}
	return true
}

// MergeChords merges consecutive chords sharing root and quality, summing
// durations and keeping the first chord's start time. Merging an already
// merged sequence is a no-op.
func MergeChords(chords []music.Chord) []music.Chord {
	merged := make([]music.Chord, 0, len(chords))
	for _, c := range chords {
		if len(merged) > 0 && merged[len(merged)-1].SameHarmony(c) {
			merged[len(merged)-1].Duration += c.Duration
			continue
		}
		merged = append(merged, c)
	}
	return merged
}

// ChordAt returns the chord sounding at the given time within a merged,
// time-ordered sequence, or false when the time falls outside every region.
func ChordAt(chords []music.Chord, at float64) (music.Chord, bool) {
	idx := sort.Search(len(chords), func(i int) bool {
		return chords[i].EndTime() > at
	})
	if idx < len(chords) && chords[idx].StartTime <= at {
		return chords[idx], true
	}
	return music.Chord{}, false
}
