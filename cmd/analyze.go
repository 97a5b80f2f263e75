package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/backline-audio/backline/algorithms/notes"
	"github.com/backline-audio/backline/algorithms/pitch"
	"github.com/backline-audio/backline/algorithms/structure"
	"github.com/backline-audio/backline/transcode"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <audio-file>",
	Short: "Transcribe and analyze a recording without generating audio",
	Long: `Runs pitch detection, note segmentation and structure analysis on
the recording and prints the resulting analysis as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		decoder := transcode.NewDecoder(&transcode.DecoderConfig{
			TargetSampleRate: cfg.SampleRate,
			TargetChannels:   1,
			FFmpegPath:       cfg.FFmpegPath,
			FFprobePath:      cfg.FFprobePath,
			Timeout:          60 * time.Second,
		})
		audio, err := decoder.DecodeFile(args[0])
		if err != nil {
			return err
		}

		params := pitch.DefaultTrackerParams(audio.SampleRate)
		params.WindowSize = cfg.WindowSize
		params.HopSize = cfg.HopSize
		samples, err := pitch.NewTrackerWithParams(params).TrackContext(context.Background(), audio.Mono(), nil)
		if err != nil {
			return err
		}
		melody := notes.NewSegmenter().Segment(samples, "Melody")
		analysis := structure.NewAnalyzer(audio.SampleRate).Analyze(melody, audio.Mono())

		theoryKey := analysis.TheoryKey()
		out, err := json.MarshalIndent(struct {
			Source   string `json:"source"`
			Notes    int    `json:"notes"`
			KeyRoot  string `json:"key_root"`
			KeyMode  string `json:"key_mode"`
			Analysis any    `json:"analysis"`
		}{args[0], len(melody.Notes),
			theoryKey.Root.String(theoryKey.AdjSymbol), theoryKey.Mode.String(),
			analysis}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}
