package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"notekeeper/internal/client"
	"notekeeper/internal/domain"
	"notekeeper/internal/logger"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	noticeCreated   = "Note created successfully!"
	noticeTimeout   = 3 * time.Second
	statusTimeout   = 2 * time.Second
	msgRequestError = "Something went wrong."
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenForm
)

// clipboardWrite is swapped in tests.
var clipboardWrite = clipboard.WriteAll

type appModel struct {
	ctx    context.Context
	api    client.NotesAPI
	logger *logger.Logger

	currentScreen screen
	spinner       spinner.Model

	list   listModel
	detail detailModel
	form   formModel

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
}

func newAppModel(ctx context.Context, api client.NotesAPI, log *logger.Logger) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		ctx:           ctx,
		api:           api,
		logger:        log,
		currentScreen: screenList,
		spinner:       s,
		list:          newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadList())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQ) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			switch {
			case key.Matches(msg, keys.yes):
				m.showConfirm = false
				return m, m.cmdDeleteNote(m.detail.id)
			case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
				m.showConfirm = false
			}
			return m, nil
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case notesLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Msg("failed to load notes")
			m.list.failed = true
			return m, nil
		}
		m.list.failed = false
		m.list.notes = msg.notes
		m.list.clampCursor()
		return m, nil

	case noteLoadedMsg:
		if msg.id != m.detail.id {
			// A load for a note the user has since navigated away from.
			return m, nil
		}
		m.detail.loading = false
		if msg.err != nil {
			if !errors.Is(msg.err, client.ErrNotFound) {
				m.logger.Error().Err(msg.err).Str("note_id", m.detail.id).Msg("failed to load note")
			}
			m.detail.missing = true
			return m, nil
		}
		m.detail.note = msg.note
		return m, nil

	case noteCreatedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.showErrorf(requestError(msg.err))
			return m, nil
		}
		m.list.append(msg.note)
		m.list.notice = noticeCreated
		m.currentScreen = screenList
		return m, cmdClearNotice()

	case noteUpdatedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.showErrorf(requestError(msg.err))
			return m, nil
		}
		m.list.replace(msg.id, msg.title, msg.content)
		if m.detail.note != nil && m.detail.note.ID == msg.id {
			m.detail.note.Title = msg.title
			m.detail.note.Content = msg.content
		}
		m.currentScreen = screenDetail
		return m, nil

	case noteDeletedMsg:
		if msg.err != nil {
			m.showErrorf(requestError(msg.err))
			return m, nil
		}
		m.list.remove(msg.id)
		m.detail = detailModel{}
		m.currentScreen = screenList
		return m, nil

	case copiedMsg:
		m.detail.status = "Copied!"
		return m, cmdClearStatus()

	case copyFailedMsg:
		m.showErrorf(msg.err.Error())
		return m, nil

	case clearStatusMsg:
		m.detail.status = ""
		return m, nil

	case clearNoticeMsg:
		m.list.notice = ""
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenList:
		body = m.list.View(m.spinner.View())
	case screenDetail:
		body = m.detail.View(m.spinner.View())
	case screenForm:
		body = m.form.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// requestError is the text shown for a failed mutation. Validation failures
// carry the server's per-field messages.
func requestError(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && errors.Is(err, client.ErrInvalidInput) {
		return apiErr.Error()
	}
	if errors.Is(err, client.ErrNotFound) {
		return msgNoteMissing
	}
	return msgRequestError
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.notes)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		note, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{id: note.ID, loading: true}
		m.currentScreen = screenDetail
		return m, m.cmdLoadNote(note.ID)
	case key.Matches(keyMsg, keys.newItem):
		m.form = newFormModel(nil)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.reload):
		m.list.loading = true
		return m, m.cmdLoadList()
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	}

	if m.detail.note == nil || m.detail.loading || m.detail.missing {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.edit):
		m.form = newFormModel(m.detail.note)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.delete):
		m.confirm = confirmModel{title: m.detail.note.Title}
		m.showConfirm = true
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.detail.note.Content)
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.form.editing {
				m.currentScreen = screenDetail
			} else {
				m.currentScreen = screenList
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.form = m.form.toggleFocus()
			return m, nil
		case key.Matches(keyMsg, keys.submit):
			if m.form.submitting {
				return m, nil
			}
			if !m.form.valid() {
				m.form = m.form.touchAll()
				return m, nil
			}
			m.form.submitting = true
			title, content := m.form.title.Value(), m.form.content.Value()
			if m.form.editing {
				return m, m.cmdUpdateNote(m.form.noteID, title, content)
			}
			return m, m.cmdCreateNote(title, content)
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.updateInput(msg)
	return m, cmd
}

func (m appModel) cmdLoadList() tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		notes, err := api.List(ctx)
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m appModel) cmdLoadNote(id string) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		note, err := api.Get(ctx, id)
		return noteLoadedMsg{id: id, note: note, err: err}
	}
}

func (m appModel) cmdCreateNote(title, content string) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		note, err := api.Create(ctx, domain.CreateNoteRequest{Title: title, Content: content})
		return noteCreatedMsg{note: note, err: err}
	}
}

func (m appModel) cmdUpdateNote(id, title, content string) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		err := api.Update(ctx, id, domain.UpdateNoteRequest{Title: &title, Content: &content})
		return noteUpdatedMsg{id: id, title: title, content: content, err: err}
	}
}

func (m appModel) cmdDeleteNote(id string) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		err := api.Delete(ctx, id)
		return noteDeletedMsg{id: id, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func cmdClearNotice() tea.Cmd {
	return tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}
