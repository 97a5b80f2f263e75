package cmd

import (
	"github.com/spf13/cobra"

	"github.com/backline-audio/backline/logging"
	"github.com/backline-audio/backline/pipeline"
)

var (
	flagGenre      string
	flagSampleRate int
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "backline",
	Short: "Generate a backing band for a melody recording",
	Long: `backline transcribes a monophonic melody recording, analyzes its
tempo, key, chords and structure, and generates genre-appropriate drum and
bass tracks mixed with the original.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logging.SetLevel(logging.DebugLevel)
		}
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagGenre, "genre", "g", "", "backing track genre (rock, pop, jazz, blues, funk, country)")
	rootCmd.PersistentFlags().IntVar(&flagSampleRate, "sample-rate", 0, "output sample rate in Hz")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// loadConfig builds the run configuration from BACKLINE_* environment
// variables, with command-line flags taking precedence.
func loadConfig() (*pipeline.Config, error) {
	cfg, err := pipeline.LoadConfig()
	if err != nil {
		return nil, err
	}
	if flagGenre != "" {
		cfg.Genre = flagGenre
	}
	if flagSampleRate > 0 {
		cfg.SampleRate = flagSampleRate
	}
	return cfg, nil
}
