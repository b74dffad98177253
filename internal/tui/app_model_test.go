package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"notekeeper/internal/client"
	"notekeeper/internal/domain"
	"notekeeper/internal/logger"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	notes     []*domain.NoteResponse
	createErr error
	updateErr error
	deleteErr error
	getErr    error

	created []domain.CreateNoteRequest
	updated map[string]domain.UpdateNoteRequest
	deleted []string
}

func (f *fakeAPI) List(context.Context) ([]*domain.NoteResponse, error) {
	return f.notes, nil
}

func (f *fakeAPI) Get(_ context.Context, id string) (*domain.NoteResponse, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, n := range f.notes {
		if n.ID == id {
			cp := *n
			return &cp, nil
		}
	}
	return nil, client.ErrNotFound
}

func (f *fakeAPI) Create(_ context.Context, req domain.CreateNoteRequest) (*domain.NoteResponse, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	return &domain.NoteResponse{ID: "new-id", Title: req.Title, Content: req.Content}, nil
}

func (f *fakeAPI) Update(_ context.Context, id string, req domain.UpdateNoteRequest) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.updated == nil {
		f.updated = make(map[string]domain.UpdateNoteRequest)
	}
	f.updated[id] = req
	return nil
}

func (f *fakeAPI) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func press(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func step(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	am, ok := next.(appModel)
	require.True(t, ok)
	return am, cmd
}

// run feeds the result of cmd back into the model.
func run(t *testing.T, m appModel, cmd tea.Cmd) (appModel, tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	return step(t, m, cmd())
}

func loadedModel(t *testing.T, api *fakeAPI) appModel {
	t.Helper()

	m := newAppModel(context.Background(), api, logger.Nop())
	m, _ = run(t, m, m.cmdLoadList())
	return m
}

func groceries() *domain.NoteResponse {
	return &domain.NoteResponse{ID: "g-1", Title: "Groceries", Content: "milk, eggs"}
}

func TestList_States(t *testing.T) {
	m := newAppModel(context.Background(), &fakeAPI{}, logger.Nop())
	assert.Contains(t, m.View(), "Loading notes...")

	empty, _ := step(t, m, notesLoadedMsg{notes: []*domain.NoteResponse{}})
	assert.Contains(t, empty.View(), "There are no notes yet.")

	failed, _ := step(t, m, notesLoadedMsg{err: errors.New("boom")})
	assert.Contains(t, failed.View(), "Something went wrong.")
}

func TestList_TruncatesLongContent(t *testing.T) {
	long := strings.Repeat("a", 150)
	m := loadedModel(t, &fakeAPI{notes: []*domain.NoteResponse{{ID: "1", Title: "Long", Content: long}}})

	view := m.View()
	assert.Contains(t, view, strings.Repeat("a", 100)+"...")
	assert.NotContains(t, view, strings.Repeat("a", 101))
}

func TestPreview(t *testing.T) {
	exact := strings.Repeat("x", 100)
	assert.Equal(t, exact, preview(exact))
	assert.Equal(t, exact+"...", preview(exact+"y"))
	assert.Equal(t, strings.Repeat("日", 100)+"...", preview(strings.Repeat("日", 120)))
	assert.Equal(t, "short", preview("short"))
}

func TestCreateFlow(t *testing.T) {
	api := &fakeAPI{notes: []*domain.NoteResponse{}}
	m := loadedModel(t, api)

	m, _ = step(t, m, press("n"))
	require.Equal(t, screenForm, m.currentScreen)

	m, _ = step(t, m, press("ab"))
	assert.Contains(t, m.View(), hintTitle)

	m, cmd := step(t, m, press("ctrl+s"))
	assert.Nil(t, cmd, "submit must be disabled while invalid")
	assert.Contains(t, m.View(), hintContent)

	m, _ = step(t, m, press("c"))
	m, _ = step(t, m, press("tab"))
	m, _ = step(t, m, press("milk, eggs"))
	assert.NotContains(t, m.View(), hintTitle)
	assert.NotContains(t, m.View(), hintContent)

	m, cmd = step(t, m, press("ctrl+s"))
	require.True(t, m.form.submitting)
	m, cmd = run(t, m, cmd)

	require.Len(t, api.created, 1)
	assert.Equal(t, domain.CreateNoteRequest{Title: "abc", Content: "milk, eggs"}, api.created[0])
	assert.Equal(t, screenList, m.currentScreen)
	require.Len(t, m.list.notes, 1)
	assert.Equal(t, "new-id", m.list.notes[0].ID)
	assert.Contains(t, m.View(), noticeCreated)
	require.NotNil(t, cmd)

	m, _ = step(t, m, clearNoticeMsg{})
	assert.NotContains(t, m.View(), noticeCreated)
}

func TestCreate_ServerRejects(t *testing.T) {
	api := &fakeAPI{createErr: &client.APIError{StatusCode: 422, Message: "Invalid inputs passed, please check your data."}}
	m := loadedModel(t, api)

	m.form = newFormModel(nil)
	m.form.title.SetValue("abc")
	m.form.content.SetValue("def")
	m.currentScreen = screenForm

	m, cmd := step(t, m, press("ctrl+s"))
	m, _ = run(t, m, cmd)

	assert.True(t, m.showError)
	assert.Equal(t, screenForm, m.currentScreen)
	assert.False(t, m.form.submitting)
	assert.Empty(t, m.list.notes)
}

func openDetail(t *testing.T, api *fakeAPI) appModel {
	t.Helper()

	m := loadedModel(t, api)
	m, cmd := step(t, m, press("enter"))
	require.Equal(t, screenDetail, m.currentScreen)
	m, _ = run(t, m, cmd)
	return m
}

func TestDetail_NotFound(t *testing.T) {
	api := &fakeAPI{notes: []*domain.NoteResponse{groceries()}, getErr: client.ErrNotFound}
	m := openDetail(t, api)

	assert.Contains(t, m.View(), "This note can't be found")

	m, cmd := step(t, m, press("d"))
	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
}

func TestDetail_IgnoresLoadForAnotherNote(t *testing.T) {
	api := &fakeAPI{notes: []*domain.NoteResponse{groceries()}}
	m := loadedModel(t, api)

	m, cmd := step(t, m, press("enter"))
	require.Equal(t, "g-1", m.detail.id)

	other := &domain.NoteResponse{ID: "w-2", Title: "Work", Content: "standup"}
	m, _ = step(t, m, noteLoadedMsg{id: other.ID, note: other})
	assert.Nil(t, m.detail.note)
	assert.True(t, m.detail.loading)

	m, _ = step(t, m, noteLoadedMsg{id: other.ID, err: client.ErrNotFound})
	assert.False(t, m.detail.missing)

	m, _ = run(t, m, cmd)
	require.NotNil(t, m.detail.note)
	assert.Equal(t, "Groceries", m.detail.note.Title)
	assert.False(t, m.detail.loading)
}

func TestEditFlow_ReplacesLocalCopy(t *testing.T) {
	api := &fakeAPI{notes: []*domain.NoteResponse{groceries()}}
	m := openDetail(t, api)
	require.NotNil(t, m.detail.note)

	m, _ = step(t, m, press("e"))
	require.Equal(t, screenForm, m.currentScreen)
	assert.Equal(t, "Groceries", m.form.title.Value())

	m.form.title.SetValue("Shopping")
	m, cmd := step(t, m, press("ctrl+s"))
	m, _ = run(t, m, cmd)

	require.Contains(t, api.updated, "g-1")
	assert.Equal(t, "Shopping", *api.updated["g-1"].Title)
	assert.Equal(t, screenDetail, m.currentScreen)
	assert.Equal(t, "Shopping", m.detail.note.Title)
	assert.Equal(t, "Shopping", m.list.notes[0].Title)
	assert.Equal(t, "milk, eggs", m.list.notes[0].Content)
}

func TestDeleteFlow(t *testing.T) {
	api := &fakeAPI{notes: []*domain.NoteResponse{groceries()}}
	m := openDetail(t, api)

	m, _ = step(t, m, press("d"))
	require.True(t, m.showConfirm)
	m, cmd := step(t, m, press("n"))
	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
	assert.Empty(t, api.deleted)

	m, _ = step(t, m, press("d"))
	m, cmd = step(t, m, press("y"))
	m, _ = run(t, m, cmd)

	assert.Equal(t, []string{"g-1"}, api.deleted)
	assert.Equal(t, screenList, m.currentScreen)
	assert.Empty(t, m.list.notes)
	assert.Contains(t, m.View(), "There are no notes yet.")
}

func TestDeleteFailure_KeepsNote(t *testing.T) {
	api := &fakeAPI{notes: []*domain.NoteResponse{groceries()}, deleteErr: client.ErrServer}
	m := openDetail(t, api)

	m, _ = step(t, m, press("d"))
	m, cmd := step(t, m, press("y"))
	m, _ = run(t, m, cmd)

	assert.True(t, m.showError)
	assert.Equal(t, msgRequestError, m.errorOverlay.message)
	assert.Equal(t, screenDetail, m.currentScreen)
	assert.Len(t, m.list.notes, 1)
}

func TestCopyToClipboard(t *testing.T) {
	var copied string
	orig := clipboardWrite
	clipboardWrite = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { clipboardWrite = orig })

	m := openDetail(t, &fakeAPI{notes: []*domain.NoteResponse{groceries()}})

	m, cmd := step(t, m, press("c"))
	m, _ = run(t, m, cmd)

	assert.Equal(t, "milk, eggs", copied)
	assert.Equal(t, "Copied!", m.detail.status)
}
