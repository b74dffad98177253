// Package tui is the interactive terminal client for the notes API.
package tui

import (
	"context"

	"notekeeper/internal/client"
	"notekeeper/internal/logger"

	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	api    client.NotesAPI
	logger *logger.Logger
}

func New(api client.NotesAPI, log *logger.Logger) *TUI {
	return &TUI{api: api, logger: log}
}

// Run blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.api, t.logger)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
