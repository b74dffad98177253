package main

import (
	"os"

	"github.com/spf13/cobra"
)

var listOutput string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := requestContext()
		defer cancel()

		notes, err := newAPI().List(ctx)
		if err != nil {
			log.Error().Err(err).Msg("list notes failed")
			fatal("Error listing notes", err)
		}

		if err := writeNotes(os.Stdout, notes, listOutput); err != nil {
			fatal("Error writing output", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listOutput, "output", "o", outputText, "Output format: text, json or yaml")
}
