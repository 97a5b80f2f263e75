package synth

import (
	"math"
	"math/rand"

	"github.com/backline-audio/backline/music"
	"github.com/backline-audio/backline/transcode"
)

// Percussion voice constants. Each drum is a short synthesized burst; the
// note's nominal duration is ignored in favor of the voice's own decay.
const (
	kickStartFreq  = 100.0 // Hz, falls exponentially
	kickPitchDecay = 30.0  // pitch sweep decay constant
	kickAmpDecay   = 0.15  // seconds
	kickLength     = 0.3   // seconds

	snareToneFreq = 200.0
	snareAmpDecay = 0.1
	snareLength   = 0.25

	closedHatLength = 0.05
	closedHatDecay  = 0.02

	openHatLength = 0.2
	openHatDecay  = 0.08

	crashLength = 0.8
	crashDecay  = 0.25

	genericDrumDecay = 0.2
)

// renderDrumNote dispatches a percussion pitch id to its synthesis routine.
func (s *Synthesizer) renderDrumNote(buffer *transcode.AudioData, note music.NoteEvent, rng *rand.Rand) {
	switch note.Pitch {
	case 36:
		s.renderKick(buffer, note, rng)
	case 38, 40:
		s.renderSnare(buffer, note, rng)
	case 42, 44:
		s.renderNoiseBurst(buffer, note, rng, closedHatLength, closedHatDecay)
	case 46, 26:
		s.renderNoiseBurst(buffer, note, rng, openHatLength, openHatDecay)
	case 49, 57:
		s.renderNoiseBurst(buffer, note, rng, crashLength, crashDecay)
	default:
		s.renderGenericDrum(buffer, note)
	}
}

// renderKick writes an exponentially pitch-swept tone blended with bounded
// noise under an exponential amplitude decay.
func (s *Synthesizer) renderKick(buffer *transcode.AudioData, note music.NoteEvent, rng *rand.Rand) {
	amp := s.params.Gain * float64(note.Velocity) / 127.0
	sr := float64(s.params.SampleRate)
	startFrame := int(note.StartTime * sr)
	totalFrames := int(kickLength * sr)

	for i := 0; i < totalFrames; i++ {
		t := float64(i) / sr
		freq := kickStartFreq * math.Exp(-kickPitchDecay*t)
		tone := math.Sin(2 * math.Pi * freq * t)
		noise := (rng.Float64()*2 - 1) * 0.5
		decay := math.Exp(-t / kickAmpDecay)
		addSample(buffer, startFrame+i, amp*decay*(0.8*tone+0.2*noise))
	}
}

// renderSnare writes a 200 Hz tone blended mostly with noise, decaying
// faster than the kick.
func (s *Synthesizer) renderSnare(buffer *transcode.AudioData, note music.NoteEvent, rng *rand.Rand) {
	amp := s.params.Gain * float64(note.Velocity) / 127.0
	sr := float64(s.params.SampleRate)
	startFrame := int(note.StartTime * sr)
	totalFrames := int(snareLength * sr)

	for i := 0; i < totalFrames; i++ {
		t := float64(i) / sr
		tone := math.Sin(2 * math.Pi * snareToneFreq * t)
		noise := rng.Float64()*2 - 1
		decay := math.Exp(-t / snareAmpDecay)
		addSample(buffer, startFrame+i, amp*decay*(0.3*tone+0.7*noise))
	}
}

// renderNoiseBurst writes a decaying noise burst capped at the given length.
// Hi-hats and cymbals differ only in cap and decay constant.
func (s *Synthesizer) renderNoiseBurst(buffer *transcode.AudioData, note music.NoteEvent, rng *rand.Rand, length, decayConst float64) {
	amp := s.params.Gain * float64(note.Velocity) / 127.0
	sr := float64(s.params.SampleRate)
	startFrame := int(note.StartTime * sr)
	totalFrames := int(length * sr)

	for i := 0; i < totalFrames; i++ {
		t := float64(i) / sr
		noise := rng.Float64()*2 - 1
		decay := math.Exp(-t / decayConst)
		addSample(buffer, startFrame+i, amp*decay*noise)
	}
}

// renderGenericDrum writes a plain decaying sine at the MIDI-mapped
// frequency for unmapped percussion pitches.
func (s *Synthesizer) renderGenericDrum(buffer *transcode.AudioData, note music.NoteEvent) {
	freq := music.PitchToFrequency(note.Pitch)
	amp := s.params.Gain * float64(note.Velocity) / 127.0
	sr := float64(s.params.SampleRate)
	startFrame := int(note.StartTime * sr)
	totalFrames := int(note.Duration * sr)

	for i := 0; i < totalFrames; i++ {
		t := float64(i) / sr
		decay := math.Exp(-t / genericDrumDecay)
		addSample(buffer, startFrame+i, amp*decay*math.Sin(2*math.Pi*freq*t))
	}
}
