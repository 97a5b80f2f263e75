// Package pipeline orchestrates the full arrangement run: decode the source
// recording, transcribe it to notes, analyze structure, generate drum and
// bass parts, synthesize them, and mix everything into stems. Stages run
// strictly in sequence; each consumes the immutable output of the previous
// one.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/backline-audio/backline/algorithms/notes"
	"github.com/backline-audio/backline/algorithms/pitch"
	"github.com/backline-audio/backline/algorithms/structure"
	"github.com/backline-audio/backline/generate"
	"github.com/backline-audio/backline/logging"
	"github.com/backline-audio/backline/mix"
	"github.com/backline-audio/backline/music"
	"github.com/backline-audio/backline/patterns"
	"github.com/backline-audio/backline/synth"
	"github.com/backline-audio/backline/transcode"
)

// ProgressFunc receives (fraction in [0,1], human-readable status) tuples as
// the run advances. Fractions are non-decreasing within one run. The callback
// fires on the pipeline's goroutine; callers owning UI state must marshal it
// themselves.
type ProgressFunc func(fraction float64, status string)

// Overall progress checkpoints. Pitch detection reports continuously across
// the first 70% of the transcription span.
const (
	progressTranscribed = 0.50
	progressAnalyzed    = 0.60
	progressDrums       = 0.70
	progressBass        = 0.75
	progressSynthesized = 0.90
	progressMixed       = 1.00

	pitchShareOfTranscription = 0.7
)

// Result holds every artifact a run produces. On failure the fields filled
// by stages that completed before the error remain set, so a transcribed
// track stays queryable even if generation later fails.
type Result struct {
	RunID      string               `json:"run_id"`
	SourcePath string               `json:"source_path"`
	Genre      patterns.Genre       `json:"genre"`
	Audio      *transcode.AudioData `json:"audio,omitempty"`
	Melody     *music.NoteTrack     `json:"melody,omitempty"`
	Analysis   *music.Analysis      `json:"analysis,omitempty"`
	Drums      *music.NoteTrack     `json:"drums,omitempty"`
	Bass       *music.NoteTrack     `json:"bass,omitempty"`
	Stems      *mix.StemCollection  `json:"-"`
	Mix        *transcode.AudioData `json:"-"`
	Elapsed    time.Duration        `json:"elapsed"`
}

// Pipeline runs the arrangement chain for one configuration. A Pipeline is
// reusable across runs; each Process call is independent.
type Pipeline struct {
	cfg      *Config
	genre    patterns.Genre
	progress ProgressFunc
	logger   logging.Logger
}

// New creates a Pipeline. An unrecognized genre is not an error here: the
// generators produce empty tracks for it, and Process logs a warning.
func New(cfg *Config) (*Pipeline, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{
		cfg:   cfg,
		genre: patterns.Genre(cfg.Genre),
		logger: logging.WithFields(logging.Fields{
			"component": "pipeline",
			"genre":     cfg.Genre,
		}),
	}, nil
}

// OnProgress registers the progress callback for subsequent runs.
func (p *Pipeline) OnProgress(fn ProgressFunc) {
	p.progress = fn
}

// Process runs the full chain on one audio file. The returned Result is
// non-nil even on error and carries the artifacts of every stage that
// completed.
func (p *Pipeline) Process(ctx context.Context, path string) (*Result, error) {
	start := time.Now()
	res := &Result{
		RunID:      uuid.NewString(),
		SourcePath: path,
		Genre:      p.genre,
	}
	defer func() { res.Elapsed = time.Since(start) }()

	logger := p.logger.WithFields(logging.Fields{"run_id": res.RunID, "path": path})
	if !p.genre.Valid() {
		logger.Warn("no patterns registered for genre; backing tracks will be empty")
	}

	rep := newReporter(p.progress)
	rep.report(0, "Loading audio...")

	decoder := transcode.NewDecoder(&transcode.DecoderConfig{
		TargetSampleRate: p.cfg.SampleRate,
		TargetChannels:   1,
		FFmpegPath:       p.cfg.FFmpegPath,
		FFprobePath:      p.cfg.FFprobePath,
		Timeout:          60 * time.Second,
	})
	audio, err := decoder.DecodeFile(path)
	if err != nil {
		return res, fmt.Errorf("decoding %s: %w", path, err)
	}
	res.Audio = audio

	melody, err := p.transcribe(ctx, audio, rep)
	if err != nil {
		return res, err
	}
	res.Melody = melody
	rep.report(progressTranscribed, "Transcription complete")

	if err := ctx.Err(); err != nil {
		return res, err
	}
	analyzer := structure.NewAnalyzer(audio.SampleRate)
	res.Analysis = analyzer.Analyze(melody, audio.Mono())
	rep.report(progressAnalyzed, "Analyzing song structure...")

	res.Drums = generate.NewDrumGenerator(p.genre).Generate(res.Analysis)
	rep.report(progressDrums, "Generating drums...")

	res.Bass = generate.NewBassGenerator(p.genre).Generate(res.Analysis)
	rep.report(progressBass, "Generating bass...")

	if err := ctx.Err(); err != nil {
		return res, err
	}
	synthesizer := synth.NewSynthesizer(audio.SampleRate)
	stems := mix.NewStemCollection()
	stems.Add(&mix.Stem{Name: "Melody", Buffer: audio.ToStereo(), Source: path, Level: 1.0})
	for _, track := range []*music.NoteTrack{res.Drums, res.Bass} {
		buf, err := synthesizer.Render(track)
		if err != nil {
			return res, fmt.Errorf("synthesizing %s: %w", track.Name, err)
		}
		stems.Add(mix.NewStem(track.Name, buf))
	}
	res.Stems = stems
	rep.report(progressSynthesized, "Synthesizing backing tracks...")

	mixed, err := mix.NewMixer().MixDown(stems)
	if err != nil {
		return res, fmt.Errorf("mixing stems: %w", err)
	}
	res.Mix = mixed
	rep.report(progressMixed, "Done")

	logger.Info("pipeline run complete", logging.Fields{
		"notes":    len(melody.Notes),
		"tempo":    res.Analysis.Tempo,
		"key":      res.Analysis.Key,
		"chords":   len(res.Analysis.Chords),
		"sections": len(res.Analysis.Sections),
		"elapsed":  time.Since(start).String(),
	})
	return res, nil
}

// transcribe runs pitch tracking and note segmentation. Pitch tracking
// reports sub-progress across the first 70% of the transcription span.
func (p *Pipeline) transcribe(ctx context.Context, audio *transcode.AudioData, rep *reporter) (*music.NoteTrack, error) {
	params := pitch.DefaultTrackerParams(audio.SampleRate)
	params.WindowSize = p.cfg.WindowSize
	params.HopSize = p.cfg.HopSize
	tracker := pitch.NewTrackerWithParams(params)
	samples, err := tracker.TrackContext(ctx, audio.Mono(), func(done, total int) {
		if total == 0 {
			return
		}
		frac := float64(done) / float64(total) * pitchShareOfTranscription * progressTranscribed
		rep.report(frac, "Detecting melody...")
	})
	if err != nil {
		return nil, err
	}
	rep.report(pitchShareOfTranscription*progressTranscribed, "Segmenting notes...")
	return notes.NewSegmenter().Segment(samples, "Melody"), nil
}

// reporter clamps progress into [0,1] and keeps it monotonically
// non-decreasing for the life of one run.
type reporter struct {
	fn   ProgressFunc
	last float64
}

func newReporter(fn ProgressFunc) *reporter {
	return &reporter{fn: fn}
}

func (r *reporter) report(fraction float64, status string) {
	if r.fn == nil {
		return
	}
	if fraction < r.last {
		fraction = r.last
	}
	if fraction > 1 {
		fraction = 1
	}
	r.last = fraction
	r.fn(fraction, status)
}
