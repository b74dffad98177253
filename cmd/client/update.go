package main

import (
	"errors"
	"fmt"

	"notekeeper/internal/domain"

	"github.com/spf13/cobra"
)

var (
	updateTitle   string
	updateContent string
)

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Change the title or content of a note",
	Long:  `Only the flags that are given are sent; the other field keeps its stored value.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var req domain.UpdateNoteRequest
		if cmd.Flags().Changed("title") {
			req.Title = &updateTitle
		}
		if cmd.Flags().Changed("content") {
			req.Content = &updateContent
		}
		if req.Title == nil && req.Content == nil {
			fatal("Error updating note", errors.New("nothing to update, pass --title and/or --content"))
		}

		ctx, cancel := requestContext()
		defer cancel()

		if err := newAPI().Update(ctx, args[0], req); err != nil {
			log.Error().Err(err).Str("note_id", args[0]).Msg("update note failed")
			fatal("Error updating note", err)
		}

		fmt.Println("Note updated successfully!")
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title (at least 3 characters)")
	updateCmd.Flags().StringVar(&updateContent, "content", "", "New content (at least 3 characters)")
}
