package structure

import (
	"math"
	"sort"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"

	"github.com/backline-audio/backline/algorithms/tempo"
	"github.com/backline-audio/backline/algorithms/tonal"
	"github.com/backline-audio/backline/logging"
	"github.com/backline-audio/backline/music"
)

// AnalyzerParams contains parameters for structural analysis.
type AnalyzerParams struct {
	SampleRate int `json:"sample_rate"`

	// BlockBars sets the section resolution: blocks of this many bars are
	// classified as one unit.
	BlockBars int `json:"block_bars"`

	// FrameSize is the windowed-energy frame length in samples.
	FrameSize int `json:"frame_size"`
}

// DefaultAnalyzerParams returns the standard structural analysis setup.
func DefaultAnalyzerParams(sampleRate int) AnalyzerParams {
	return AnalyzerParams{
		SampleRate: sampleRate,
		BlockBars:  8,
		FrameSize:  1024,
	}
}

// Analyzer assembles the per-file Analysis record: it runs tempo, key and
// chord estimation over the transcribed track and segments the song into
// sections from note density and spectral energy.
type Analyzer struct {
	params AnalyzerParams

	tempoEstimator *tempo.Estimator
	keyEstimator   *tonal.KeyEstimator
	chordEstimator *tonal.ChordEstimator

	logger logging.Logger
}

// NewAnalyzer creates a structure analyzer with default parameters.
func NewAnalyzer(sampleRate int) *Analyzer {
	return NewAnalyzerWithParams(DefaultAnalyzerParams(sampleRate))
}

// NewAnalyzerWithParams creates a structure analyzer with custom parameters.
func NewAnalyzerWithParams(params AnalyzerParams) *Analyzer {
	return &Analyzer{
		params:         params,
		tempoEstimator: tempo.NewEstimator(),
		keyEstimator:   tonal.NewKeyEstimator(),
		chordEstimator: tonal.NewChordEstimator(),
		logger: logging.WithFields(logging.Fields{
			"component": "structure_analyzer",
		}),
	}
}

// Analyze builds the immutable analysis snapshot for one recording. The raw
// samples feed the energy side of section classification; they may be nil,
// in which case sections fall back to note density alone.
func (a *Analyzer) Analyze(track *music.NoteTrack, samples []float64) *music.Analysis {
	tempoResult := a.tempoEstimator.Estimate(track)
	keyResult := a.keyEstimator.Estimate(track)
	chords := a.chordEstimator.Estimate(track, tempoResult.BPM)

	totalDuration := track.EndTime()
	if a.params.SampleRate > 0 {
		sampleDuration := float64(len(samples)) / float64(a.params.SampleRate)
		if sampleDuration > totalDuration {
			totalDuration = sampleDuration
		}
	}

	analysis := &music.Analysis{
		Tempo:         tempoResult.BPM,
		TimeSignature: tempoResult.TimeSignature,
		Key:           keyResult.KeyName,
		Chords:        chords,
		TotalDuration: totalDuration,
	}
	analysis.Sections = a.segment(track, samples, analysis)

	a.logger.Debug("analysis assembled", logging.Fields{
		"tempo":    analysis.Tempo,
		"key":      analysis.Key,
		"chords":   len(analysis.Chords),
		"sections": len(analysis.Sections),
		"duration": analysis.TotalDuration,
	})

	return analysis
}

// segment labels fixed blocks of bars from note density and spectral energy:
// a leading low-density run is the intro, a trailing one the outro, interior
// blocks with above-median energy are choruses, the rest verses.
func (a *Analyzer) segment(track *music.NoteTrack, samples []float64, analysis *music.Analysis) []music.Section {
	if track.IsEmpty() || analysis.TotalDuration <= 0 {
		end := analysis.TotalDuration
		if end <= 0 {
			end = 0
		}
		return []music.Section{{Type: music.SectionUnknown, StartTime: 0, EndTime: end}}
	}

	blockLen := analysis.BarDuration() * float64(a.params.BlockBars)
	if blockLen <= 0 {
		return []music.Section{{Type: music.SectionUnknown, StartTime: 0, EndTime: analysis.TotalDuration}}
	}

	blockCount := int(math.Ceil(analysis.TotalDuration / blockLen))
	if blockCount <= 1 {
		return []music.Section{{Type: music.SectionVerse, StartTime: 0, EndTime: analysis.TotalDuration}}
	}

	densities := make([]float64, blockCount)
	for _, n := range track.Notes {
		idx := int(n.StartTime / blockLen)
		if idx >= blockCount {
			idx = blockCount - 1
		}
		densities[idx]++
	}
	for i := range densities {
		densities[i] /= blockLen
	}

	energies := a.blockEnergies(samples, blockLen, blockCount)

	medianDensity := median(densities)
	medianEnergy := median(energies)

	// Leading and trailing sparse runs bound the body of the song.
	introEnd := 0
	for introEnd < blockCount && densities[introEnd] < medianDensity {
		introEnd++
	}
	outroStart := blockCount
	for outroStart > introEnd && densities[outroStart-1] < medianDensity {
		outroStart--
	}

	sections := make([]music.Section, 0, blockCount)
	for i := 0; i < blockCount; i++ {
		start := float64(i) * blockLen
		end := start + blockLen
		if end > analysis.TotalDuration || i == blockCount-1 {
			end = analysis.TotalDuration
		}

		var kind music.SectionType
		switch {
		case i < introEnd:
			kind = music.SectionIntro
		case i >= outroStart:
			kind = music.SectionOutro
		case energies != nil && energies[i] > medianEnergy:
			kind = music.SectionChorus
		default:
			kind = music.SectionVerse
		}

		// Collapse runs of the same type into one section.
		if len(sections) > 0 && sections[len(sections)-1].Type == kind {
			sections[len(sections)-1].EndTime = end
			continue
		}
		sections = append(sections, music.Section{Type: kind, StartTime: start, EndTime: end})
	}

	return sections
}

// blockEnergies computes the Hann-windowed spectral energy of each block.
// Returns nil when no raw samples are available.
func (a *Analyzer) blockEnergies(samples []float64, blockLen float64, blockCount int) []float64 {
	if len(samples) == 0 || a.params.SampleRate <= 0 || a.params.FrameSize <= 0 {
		return nil
	}

	energies := make([]float64, blockCount)
	counts := make([]int, blockCount)
	hann := window.Hann(a.params.FrameSize)

	for start := 0; start+a.params.FrameSize <= len(samples); start += a.params.FrameSize {
		frame := make([]float64, a.params.FrameSize)
		copy(frame, samples[start:start+a.params.FrameSize])
		for i := range frame {
			frame[i] *= hann[i]
		}

		spectrum := fft.FFTReal(frame)
		energy := 0.0
		for _, bin := range spectrum[:len(spectrum)/2] {
			re := real(bin)
			im := imag(bin)
			energy += re*re + im*im
		}

		frameTime := float64(start) / float64(a.params.SampleRate)
		idx := int(frameTime / blockLen)
		if idx >= blockCount {
			idx = blockCount - 1
		}
		energies[idx] += energy
		counts[idx]++
	}

	for i := range energies {
		if counts[i] > 0 {
			energies[i] /= float64(counts[i])
		}
	}
	return energies
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2.0
	}
	return sorted[n/2]
}
