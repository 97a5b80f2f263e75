package pipeline

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/backline-audio/backline/patterns"
)

// Config carries the caller-facing knobs for a pipeline run. Fields are
// populated from BACKLINE_* environment variables by LoadConfig; zero
// values fall back to the documented defaults.
type Config struct {
	Genre       string `envconfig:"GENRE" default:"rock"`
	SampleRate  int    `envconfig:"SAMPLE_RATE" default:"44100"`
	WindowSize  int    `envconfig:"WINDOW_SIZE" default:"2048"`
	HopSize     int    `envconfig:"HOP_SIZE" default:"2048"`
	FFmpegPath  string `envconfig:"FFMPEG_PATH" default:"ffmpeg"`
	FFprobePath string `envconfig:"FFPROBE_PATH" default:"ffprobe"`
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("backline", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

// DefaultConfig returns a Config with every knob at its default.
func DefaultConfig() *Config {
	return &Config{
		Genre:       string(patterns.GenreRock),
		SampleRate:  44100,
		WindowSize:  2048,
		HopSize:     2048,
		FFmpegPath:  "ffmpeg",
		FFprobePath: "ffprobe",
	}
}

// Validate checks the config for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate %d", c.SampleRate)
	}
	if c.WindowSize <= 0 || c.HopSize <= 0 {
		return fmt.Errorf("invalid window/hop size %d/%d", c.WindowSize, c.HopSize)
	}
	return nil
}
