package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backline-audio/backline/patterns"
)

func init() {
	rootCmd.AddCommand(genresCmd)
}

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List the genres with registered backing patterns",
	Run: func(cmd *cobra.Command, args []string) {
		for _, g := range patterns.Genres() {
			fmt.Println(g)
		}
	},
}
