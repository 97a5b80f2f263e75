// Package midiexport writes generated note tracks to a standard MIDI file
// so arrangements can be edited in external sequencers.
package midiexport

import (
	"fmt"
	"math"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/backline-audio/backline/logging"
	"github.com/backline-audio/backline/music"
)

// TicksPerQuarter is the pulse resolution of exported files.
const TicksPerQuarter = 960

// Exporter writes note tracks as a format-1 SMF: one conductor track
// carrying tempo and meter, then one track per instrument.
type Exporter struct {
	logger logging.Logger
}

// NewExporter creates an Exporter.
func NewExporter() *Exporter {
	return &Exporter{logger: logging.GetGlobalLogger()}
}

// WriteFile renders tracks at the analysis tempo and writes them to path.
func (e *Exporter) WriteFile(path string, analysis *music.Analysis, tracks ...music.NoteTrack) error {
	ticks := smf.MetricTicks(TicksPerQuarter)
	s := smf.New()
	s.TimeFormat = ticks

	var conductor smf.Track
	conductor.Add(0, smf.MetaTrackSequenceName("conductor"))
	conductor.Add(0, smf.MetaTempo(analysis.Tempo))
	conductor.Add(0, smf.MetaMeter(uint8(analysis.TimeSignature.Upper), uint8(analysis.TimeSignature.Lower)))
	conductor.Close(0)
	s.Add(conductor)

	for _, track := range tracks {
		tr, err := buildTrack(track, analysis.Tempo)
		if err != nil {
			return fmt.Errorf("building track %q: %w", track.Name, err)
		}
		s.Add(tr)
	}

	if err := s.WriteFile(path); err != nil {
		return fmt.Errorf("writing midi file: %w", err)
	}
	e.logger.Info("exported midi", logging.Fields{
		"path":   path,
		"tracks": len(tracks),
		"tempo":  analysis.Tempo,
	})
	return nil
}

// midiEvent is a note boundary flattened onto the tick axis. Offs sort
// before ons at the same tick so retriggered notes are not cut short.
type midiEvent struct {
	tick    uint32
	on      bool
	channel uint8
	key     uint8
	vel     uint8
}

func buildTrack(track music.NoteTrack, tempo float64) (smf.Track, error) {
	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(track.Name))

	events := make([]midiEvent, 0, len(track.Notes)*2)
	for _, n := range track.Notes {
		if n.Pitch < 0 || n.Pitch > music.MaxPitch {
			return tr, fmt.Errorf("pitch %d out of midi range", n.Pitch)
		}
		on := secondsToTicks(n.StartTime, tempo)
		off := secondsToTicks(n.EndTime(), tempo)
		if off <= on {
			off = on + 1
		}
		events = append(events,
			midiEvent{tick: on, on: true, channel: uint8(n.Channel), key: uint8(n.Pitch), vel: uint8(n.Velocity)},
			midiEvent{tick: off, on: false, channel: uint8(n.Channel), key: uint8(n.Pitch)},
		)
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return !events[i].on && events[j].on
	})

	var cursor uint32
	for _, ev := range events {
		delta := ev.tick - cursor
		cursor = ev.tick
		if ev.on {
			tr.Add(delta, midi.NoteOn(ev.channel, ev.key, ev.vel))
		} else {
			tr.Add(delta, midi.NoteOff(ev.channel, ev.key))
		}
	}
	tr.Close(0)
	return tr, nil
}

func secondsToTicks(seconds, tempo float64) uint32 {
	beats := seconds * tempo / 60.0
	return uint32(math.Round(beats * TicksPerQuarter))
}
