package generate

import (
	"math"

	"github.com/backline-audio/backline/logging"
	"github.com/backline-audio/backline/music"
	"github.com/backline-audio/backline/patterns"
)

// Bass register bounds and the octave the chord root is resolved into.
const (
	BassRootBase = 36 // chord root pitch class mapped into the bass octave
	BassMinPitch = 28
	BassMaxPitch = 60
)

// BassGenerator produces a bass track by tiling genre bass patterns across
// each analyzed chord region, following the chord roots.
type BassGenerator struct {
	genre  patterns.Genre
	logger logging.Logger
}

// NewBassGenerator creates a bass generator for the genre.
func NewBassGenerator(genre patterns.Genre) *BassGenerator {
	return &BassGenerator{
		genre: genre,
		logger: logging.WithFields(logging.Fields{
			"component": "bass_generator",
			"genre":     string(genre),
		}),
	}
}

// Generate renders the bass track for the analyzed song. A genre with no
// registered bass patterns yields an empty track, not an error.
func (g *BassGenerator) Generate(analysis *music.Analysis) *music.NoteTrack {
	track := music.NewNoteTrack("Bass", music.InstrumentBass)

	lines := patterns.BassLines(g.genre)
	if len(lines) == 0 {
		g.logger.Warn("no bass patterns registered for genre")
		return track
	}

	beatDur := analysis.BeatDuration()
	barDur := analysis.BarDuration()
	if barDur <= 0 {
		return track
	}

	for chordIdx, chord := range analysis.Chords {
		rootPitch := BassRootBase + chord.Root

		// Alternate every other half of a four-chord cycle: indices 2 and 3
		// use the alternate pattern when the genre defines one.
		pattern := lines[0]
		if chordIdx%4 >= 2 && len(lines) > 1 {
			pattern = lines[1]
		}

		patternDur := float64(pattern.Bars) * barDur
		if patternDur <= 0 {
			continue
		}

		repeats := int(math.Ceil(chord.Duration / patternDur))
		for rep := 0; rep < repeats; rep++ {
			repStart := float64(rep) * patternDur
			if repStart >= chord.Duration {
				break
			}

			for _, pn := range pattern.Notes {
				noteStart := repStart + pn.Position*beatDur
				if noteStart >= chord.Duration {
					continue
				}

				pitch := rootPitch + pn.RootOffset + 12*pn.OctaveOffset
				if pitch < BassMinPitch {
					pitch = BassMinPitch
				} else if pitch > BassMaxPitch {
					pitch = BassMaxPitch
				}

				duration := pn.Duration * beatDur
				if noteStart+duration > chord.Duration {
					duration = chord.Duration - noteStart
				}
				if duration <= 0 {
					continue
				}

				track.Append(music.NoteEvent{
					Pitch:     pitch,
					Velocity:  music.ClampVelocity(pn.Velocity),
					StartTime: chord.StartTime + noteStart,
					Duration:  duration,
					Channel:   1,
				})
			}
		}
	}

	g.logger.Debug("bass track generated", logging.Fields{
		"notes":  len(track.Notes),
		"chords": len(analysis.Chords),
	})
	return track
}
