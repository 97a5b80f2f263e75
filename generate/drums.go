// Package generate renders the static pattern catalogs against an analyzed
// song structure to produce drum and bass note tracks.
package generate

import (
	"math"
	"math/rand"

	"github.com/backline-audio/backline/logging"
	"github.com/backline-audio/backline/music"
	"github.com/backline-audio/backline/patterns"
)

// DrumHitDuration is the fixed duration given to every percussion event.
// Percussion envelopes are controlled by the synthesizer, not note length.
const DrumHitDuration = 0.1

// DrumGenerator produces a percussion track for a genre by tiling groove
// patterns over each section and substituting a fill on final bars.
type DrumGenerator struct {
	genre  patterns.Genre
	rng    *rand.Rand
	logger logging.Logger
}

// NewDrumGenerator creates a drum generator for the genre. Fill selection is
// seeded from the analyzed song itself, so identical input produces an
// identical track.
func NewDrumGenerator(genre patterns.Genre) *DrumGenerator {
	return &DrumGenerator{
		genre: genre,
		logger: logging.WithFields(logging.Fields{
			"component": "drum_generator",
			"genre":     string(genre),
		}),
	}
}

// NewDrumGeneratorWithRand creates a drum generator with a caller-supplied
// random source for fill selection.
func NewDrumGeneratorWithRand(genre patterns.Genre, rng *rand.Rand) *DrumGenerator {
	g := NewDrumGenerator(genre)
	g.rng = rng
	return g
}

// Generate renders the drum track for the analyzed song. A genre with no
// registered drum patterns yields an empty track, not an error.
func (g *DrumGenerator) Generate(analysis *music.Analysis) *music.NoteTrack {
	track := music.NewNoteTrack("Drums", music.InstrumentDrums)

	grooves := patterns.DrumGrooves(g.genre)
	if len(grooves) == 0 {
		g.logger.Warn("no drum patterns registered for genre")
		return track
	}
	fills := patterns.DrumFills(g.genre)

	rng := g.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(contentSeed(analysis)))
	}

	beatDur := analysis.BeatDuration()
	barDur := analysis.BarDuration()
	if barDur <= 0 {
		return track
	}

	for _, section := range analysis.Sections {
		sectionDur := section.Duration()
		if sectionDur <= 0 {
			continue
		}
		barCount := int(math.Ceil(sectionDur / barDur))

		groove := grooves[0]
		if section.Type == music.SectionChorus && len(grooves) > 1 {
			groove = grooves[1]
		}

		for bar := 0; bar < barCount; bar++ {
			pattern := groove
			if bar == barCount-1 && len(fills) > 0 {
				pattern = fills[rng.Intn(len(fills))]
			}

			barStart := section.StartTime + float64(bar)*barDur
			for _, hit := range pattern.Hits {
				track.Append(music.NoteEvent{
					Pitch:     music.ClampPitch(hit.Drum),
					Velocity:  music.ClampVelocity(hit.Velocity),
					StartTime: barStart + hit.Position*beatDur,
					Duration:  DrumHitDuration,
					Channel:   music.PercussionChannel,
				})
			}
		}
	}

	g.logger.Debug("drum track generated", logging.Fields{
		"notes":    len(track.Notes),
		"sections": len(analysis.Sections),
	})
	return track
}

// contentSeed derives a deterministic random seed from the analysis so
// generation is reproducible for identical input.
func contentSeed(analysis *music.Analysis) int64 {
	seed := int64(analysis.TotalDuration*1000.0) + int64(analysis.Tempo)
	seed = seed*31 + int64(len(analysis.Chords))
	seed = seed*31 + int64(len(analysis.Sections))
	return seed
}
