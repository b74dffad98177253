package main

import (
	"fmt"

	"notekeeper/internal/domain"

	"github.com/spf13/cobra"
)

var (
	createTitle   string
	createContent string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := requestContext()
		defer cancel()

		note, err := newAPI().Create(ctx, domain.CreateNoteRequest{Title: createTitle, Content: createContent})
		if err != nil {
			log.Error().Err(err).Msg("create note failed")
			fatal("Error creating note", err)
		}

		fmt.Printf("Note created successfully! %s\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVar(&createTitle, "title", "", "Note title (at least 3 characters)")
	createCmd.Flags().StringVar(&createContent, "content", "", "Note content (at least 3 characters)")
	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("content")
}
