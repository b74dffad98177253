package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := requestContext()
		defer cancel()

		if err := newAPI().Delete(ctx, args[0]); err != nil {
			log.Error().Err(err).Str("note_id", args[0]).Msg("delete note failed")
			fatal("Error deleting note", err)
		}

		fmt.Printf("Note deleted successfully! %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
