package music

// ChordQuality is the closed set of chord qualities the analyzer emits.
type ChordQuality int

const (
	QualityMajor ChordQuality = iota
	QualityMinor
	QualityDominant7
	QualityMajor7
	QualityMinor7
	QualityDiminished
	QualityAugmented
)

func (q ChordQuality) String() string {
	switch q {
	case QualityMajor:
		return "major"
	case QualityMinor:
		return "minor"
	case QualityDominant7:
		return "dominant7"
	case QualityMajor7:
		return "major7"
	case QualityMinor7:
		return "minor7"
	case QualityDiminished:
		return "diminished"
	case QualityAugmented:
		return "augmented"
	default:
		return "unknown"
	}
}

// Suffix returns the short chord-symbol suffix for the quality.
func (q ChordQuality) Suffix() string {
	switch q {
	case QualityMajor:
		return ""
	case QualityMinor:
		return "m"
	case QualityDominant7:
		return "7"
	case QualityMajor7:
		return "maj7"
	case QualityMinor7:
		return "m7"
	case QualityDiminished:
		return "dim"
	case QualityAugmented:
		return "aug"
	default:
		return ""
	}
}

// Chord is one harmonic region of the analyzed song. Root is a pitch class
// (0=C .. 11=B). Adjacent chords in an Analysis never share (Root, Quality).
type Chord struct {
	Root      int          `json:"root"` // pitch class 0-11
	Quality   ChordQuality `json:"quality"`
	StartTime float64      `json:"start_time"` // seconds
	Duration  float64      `json:"duration"`   // seconds
}

// EndTime returns the time at which the chord region ends.
func (c Chord) EndTime() float64 {
	return c.StartTime + c.Duration
}

// RootName returns the sharp-spelled name of the chord root.
func (c Chord) RootName() string {
	return PitchClassNames[((c.Root%12)+12)%12]
}

// Name renders the chord symbol, e.g. "Am7" or "F#dim".
func (c Chord) Name() string {
	return c.RootName() + c.Quality.Suffix()
}

// SameHarmony reports whether two chords share root and quality, the
// condition under which adjacent chords are merged.
func (c Chord) SameHarmony(other Chord) bool {
	return c.Root == other.Root && c.Quality == other.Quality
}
