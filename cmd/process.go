package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/backline-audio/backline/midiexport"
	"github.com/backline-audio/backline/mix"
	"github.com/backline-audio/backline/pipeline"
)

var (
	flagOutDir  string
	flagMixFile string
	flagMidi    bool
	flagNoStems bool
)

func init() {
	processCmd.Flags().StringVarP(&flagOutDir, "out", "o", ".", "output directory for stems")
	processCmd.Flags().StringVar(&flagMixFile, "mix", "", "write the combined mix to this path")
	processCmd.Flags().BoolVar(&flagMidi, "midi", false, "also export generated parts as a MIDI file")
	processCmd.Flags().BoolVar(&flagNoStems, "no-stems", false, "skip writing per-instrument stem files")
	rootCmd.AddCommand(processCmd)
}

var processCmd = &cobra.Command{
	Use:   "process <audio-file>",
	Short: "Run the full arrangement pipeline on a recording",
	Long: `Transcribes the recording, analyzes it, generates drum and bass
backing tracks and writes the resulting stems (and optionally a combined
mix and a MIDI file) to the output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		p, err := pipeline.New(cfg)
		if err != nil {
			return err
		}
		p.OnProgress(func(fraction float64, status string) {
			fmt.Fprintf(os.Stderr, "\r[%3.0f%%] %-40s", fraction*100, status)
		})

		res, err := p.Process(context.Background(), args[0])
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return err
		}

		fmt.Printf("run %s: %d notes, %.0f BPM, %s, %d chords, %d sections\n",
			res.RunID, len(res.Melody.Notes), res.Analysis.Tempo, res.Analysis.Key,
			len(res.Analysis.Chords), len(res.Analysis.Sections))

		if err := os.MkdirAll(flagOutDir, 0o755); err != nil {
			return err
		}
		mixer := mix.NewMixer()
		if !flagNoStems {
			paths, err := mixer.ExportStems(res.Stems, flagOutDir)
			if err != nil {
				return err
			}
			for _, path := range paths {
				fmt.Printf("wrote %s\n", path)
			}
		}
		if flagMixFile != "" {
			if err := mixer.ExportMix(res.Stems, flagMixFile); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", flagMixFile)
		}
		if flagMidi {
			midiPath := filepath.Join(flagOutDir, "backing.mid")
			exporter := midiexport.NewExporter()
			err := exporter.WriteFile(midiPath, res.Analysis,
				*res.Melody, *res.Drums, *res.Bass)
			if err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", midiPath)
		}
		return nil
	},
}
