// Package transcode handles moving audio between the filesystem and the
// in-memory PCM representation the pipeline works on: decoding source
// recordings (natively for WAV, via FFmpeg for everything else) and writing
// 16-bit PCM WAV output.
package transcode

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidAudioInput marks an unreadable or corrupt source file.
var ErrInvalidAudioInput = errors.New("invalid audio input")

// AudioData represents decoded or synthesized audio data. PCM is interleaved
// when Channels > 1 and holds normalized samples in [-1, 1].
type AudioData struct {
	PCM        []float64     `json:"-"`
	SampleRate int           `json:"sample_rate"`
	Channels   int           `json:"channels"`
	Duration   time.Duration `json:"duration"`
}

// NewAudioData allocates a zeroed buffer of the given frame count.
func NewAudioData(frames, sampleRate, channels int) (*AudioData, error) {
	if frames <= 0 || sampleRate <= 0 || channels <= 0 {
		return nil, fmt.Errorf("cannot allocate %d-frame %d-channel buffer at %d Hz", frames, channels, sampleRate)
	}
	return &AudioData{
		PCM:        make([]float64, frames*channels),
		SampleRate: sampleRate,
		Channels:   channels,
		Duration:   time.Duration(float64(frames) / float64(sampleRate) * float64(time.Second)),
	}, nil
}

// Frames returns the per-channel sample count.
func (a *AudioData) Frames() int {
	if a.Channels <= 0 {
		return 0
	}
	return len(a.PCM) / a.Channels
}

// Seconds returns the buffer length in seconds.
func (a *AudioData) Seconds() float64 {
	if a.SampleRate <= 0 {
		return 0
	}
	return float64(a.Frames()) / float64(a.SampleRate)
}

// Mono returns a single-channel view of the audio, averaging channels when
// the source is multichannel. Mono input returns the PCM slice itself.
func (a *AudioData) Mono() []float64 {
	if a.Channels <= 1 {
		return a.PCM
	}
	frames := a.Frames()
	mono := make([]float64, frames)
	for i := 0; i < frames; i++ {
		sum := 0.0
		for c := 0; c < a.Channels; c++ {
			sum += a.PCM[i*a.Channels+c]
		}
		mono[i] = sum / float64(a.Channels)
	}
	return mono
}

// ToStereo returns a two-channel copy of the audio, duplicating mono input
// and downmixing anything wider than stereo.
func (a *AudioData) ToStereo() *AudioData {
	if a.Channels == 2 {
		return a
	}
	mono := a.Mono()
	stereo := make([]float64, len(mono)*2)
	for i, s := range mono {
		stereo[2*i] = s
		stereo[2*i+1] = s
	}
	return &AudioData{
		PCM:        stereo,
		SampleRate: a.SampleRate,
		Channels:   2,
		Duration:   a.Duration,
	}
}
