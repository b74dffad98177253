package main

import (
	"os"

	"github.com/spf13/cobra"
)

var getOutput string

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a single note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := requestContext()
		defer cancel()

		note, err := newAPI().Get(ctx, args[0])
		if err != nil {
			log.Error().Err(err).Str("note_id", args[0]).Msg("get note failed")
			fatal("Error fetching note", err)
		}

		if err := writeNote(os.Stdout, note, getOutput); err != nil {
			fatal("Error writing output", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().StringVarP(&getOutput, "output", "o", outputText, "Output format: text, json or yaml")
}
