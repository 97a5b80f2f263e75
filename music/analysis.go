package music

import (
	"gopkg.in/music-theory.v0/key"
)

// SectionType labels one structural region of the song.
type SectionType int

const (
	SectionUnknown SectionType = iota
	SectionIntro
	SectionVerse
	SectionChorus
	SectionBridge
	SectionSolo
	SectionOutro
)

func (s SectionType) String() string {
	switch s {
	case SectionIntro:
		return "intro"
	case SectionVerse:
		return "verse"
	case SectionChorus:
		return "chorus"
	case SectionBridge:
		return "bridge"
	case SectionSolo:
		return "solo"
	case SectionOutro:
		return "outro"
	default:
		return "unknown"
	}
}

// Section is one time-bounded structural region. Sections in an Analysis are
// time-ordered, non-overlapping, and together tile the whole song.
type Section struct {
	Type      SectionType `json:"type"`
	StartTime float64     `json:"start_time"` // seconds
	EndTime   float64     `json:"end_time"`   // seconds
}

// Duration returns the section length in seconds.
func (s Section) Duration() float64 {
	return s.EndTime - s.StartTime
}

// TimeSignature describes the meter. The analyzer currently always reports
// 4/4; genuine signature detection is an acknowledged limitation.
type TimeSignature struct {
	Upper int `json:"upper"`
	Lower int `json:"lower"`
}

// CommonTime is the fixed 4/4 meter assumed throughout the pipeline.
var CommonTime = TimeSignature{Upper: 4, Lower: 4}

// BeatsPerBar returns the number of beats in one bar.
func (ts TimeSignature) BeatsPerBar() int {
	return ts.Upper
}

// Analysis is the immutable structural snapshot of one processed recording,
// created once per file and read by every downstream generator.
type Analysis struct {
	Tempo         float64       `json:"tempo"` // BPM
	TimeSignature TimeSignature `json:"time_signature"`
	Key           string        `json:"key"` // e.g. "C major"
	Chords        []Chord       `json:"chords"`
	Sections      []Section     `json:"sections"`
	TotalDuration float64       `json:"total_duration"` // seconds
}

// BeatDuration returns the length of one beat in seconds.
func (a *Analysis) BeatDuration() float64 {
	if a.Tempo <= 0 {
		return 0
	}
	return 60.0 / a.Tempo
}

// BarDuration returns the length of one bar in seconds.
func (a *Analysis) BarDuration() float64 {
	return a.BeatDuration() * float64(a.TimeSignature.BeatsPerBar())
}

// TheoryKey resolves the estimated key name into a structured music-theory
// key value for callers that need the root class and mode.
func (a *Analysis) TheoryKey() key.Key {
	return key.Of(a.Key)
}
