package mix

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/backline-audio/backline/logging"
	"github.com/backline-audio/backline/transcode"
)

// ErrEmptyStemCollection is returned when a mixdown is requested for a
// collection with no stems.
var ErrEmptyStemCollection = errors.New("mix: stem collection is empty")

// Mixer sums a stem collection into a single stereo buffer.
type Mixer struct {
	logger logging.Logger
}

// NewMixer creates a Mixer.
func NewMixer() *Mixer {
	return &Mixer{logger: logging.GetGlobalLogger()}
}

// MixDown sums every stem into one buffer sized to the longest stem, with
// each stem scaled by its effective level times the master level. Stems
// gated to zero by mute or solo are skipped entirely. Mono stems are
// upmixed to stereo before summing.
func (m *Mixer) MixDown(sc *StemCollection) (*transcode.AudioData, error) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	if len(sc.stems) == 0 {
		return nil, ErrEmptyStemCollection
	}

	sampleRate := sc.stems[0].Buffer.SampleRate
	maxFrames := 0
	for _, s := range sc.stems {
		if f := s.Buffer.Frames(); f > maxFrames {
			maxFrames = f
		}
	}

	out, err := transcode.NewAudioData(maxFrames, sampleRate, 2)
	if err != nil {
		return nil, fmt.Errorf("allocating mix buffer: %w", err)
	}

	levels := sc.effectiveLevels()
	for i, s := range sc.stems {
		gain := levels[i]
		if gain == 0 {
			continue
		}
		buf := s.Buffer
		if buf.Channels == 1 {
			buf = buf.ToStereo()
		}
		frames := buf.Frames()
		for f := 0; f < frames; f++ {
			out.PCM[f*2] += buf.PCM[f*2] * gain
			out.PCM[f*2+1] += buf.PCM[f*2+1] * gain
		}
	}

	m.logger.Debug("mixed stems", logging.Fields{
		"stems":       len(sc.stems),
		"frames":      maxFrames,
		"sample_rate": sampleRate,
	})
	return out, nil
}

// ExportStems writes each stem to dir as "<name>_stem.wav" with the stem
// name lowercased, at the stem's own sample rate and channel count. Mixer
// levels are not baked in; each file carries the raw stem audio.
func (m *Mixer) ExportStems(sc *StemCollection, dir string) ([]string, error) {
	stems := sc.Stems()
	if len(stems) == 0 {
		return nil, ErrEmptyStemCollection
	}

	paths := make([]string, 0, len(stems))
	for _, s := range stems {
		name := strings.ToLower(s.Name) + "_stem.wav"
		path := filepath.Join(dir, name)
		if err := transcode.WriteWAV(path, s.Buffer); err != nil {
			return paths, fmt.Errorf("exporting stem %q: %w", s.Name, err)
		}
		m.logger.Info("exported stem", logging.Fields{
			"stem": s.Name,
			"path": path,
		})
		paths = append(paths, path)
	}
	return paths, nil
}

// ExportMix mixes the collection down and writes the result to path.
func (m *Mixer) ExportMix(sc *StemCollection, path string) error {
	mixed, err := m.MixDown(sc)
	if err != nil {
		return err
	}
	if err := transcode.WriteWAV(path, mixed); err != nil {
		return fmt.Errorf("exporting mix: %w", err)
	}
	m.logger.Info("exported mix", logging.Fields{
		"path":     path,
		"duration": mixed.Seconds(),
	})
	return nil
}
