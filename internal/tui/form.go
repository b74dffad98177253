package tui

import (
	"unicode/utf8"

	"notekeeper/internal/domain"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	hintTitle   = "Title must be at least 3 characters long"
	hintContent = "Content must be at least 3 characters long"
)

const (
	fieldTitle = iota
	fieldContent
)

// formModel backs both the create and the edit screen. Validation here is
// advisory; the server decides.
type formModel struct {
	title      textinput.Model
	content    textarea.Model
	focus      int
	editing    bool
	noteID     string
	touched    [2]bool
	submitting bool
}

func newFormModel(note *domain.NoteResponse) formModel {
	title := textinput.New()
	title.Placeholder = "Title"
	title.Width = 50
	title.Focus()

	content := textarea.New()
	content.Placeholder = "Content"
	content.SetWidth(60)
	content.SetHeight(8)

	m := formModel{title: title, content: content}
	if note == nil {
		return m
	}

	m.editing = true
	m.noteID = note.ID
	m.title.SetValue(note.Title)
	m.content.SetValue(note.Content)
	return m
}

func validField(v string) bool {
	return utf8.RuneCountInString(v) >= domain.MinFieldLength
}

func (m formModel) valid() bool {
	return validField(m.title.Value()) && validField(m.content.Value())
}

func (m formModel) titleHint() string {
	if m.touched[fieldTitle] && !validField(m.title.Value()) {
		return hintTitle
	}
	return ""
}

func (m formModel) contentHint() string {
	if m.touched[fieldContent] && !validField(m.content.Value()) {
		return hintContent
	}
	return ""
}

func (m formModel) toggleFocus() formModel {
	if m.focus == fieldTitle {
		m.focus = fieldContent
		m.title.Blur()
		m.content.Focus()
	} else {
		m.focus = fieldTitle
		m.content.Blur()
		m.title.Focus()
	}
	return m
}

// touchAll marks both fields so their hints show after a rejected submit.
func (m formModel) touchAll() formModel {
	m.touched[fieldTitle] = true
	m.touched[fieldContent] = true
	return m
}

func (m formModel) updateInput(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == fieldTitle {
		before := m.title.Value()
		m.title, cmd = m.title.Update(msg)
		if m.title.Value() != before {
			m.touched[fieldTitle] = true
		}
		return m, cmd
	}

	before := m.content.Value()
	m.content, cmd = m.content.Update(msg)
	if m.content.Value() != before {
		m.touched[fieldContent] = true
	}
	return m, cmd
}

func (m formModel) View() string {
	heading := "New note"
	if m.editing {
		heading = "Edit note"
	}

	out := "Title\n" + m.title.View() + "\n"
	if hint := m.titleHint(); hint != "" {
		out += hintStyle.Render(hint) + "\n"
	}
	out += "\nContent\n" + m.content.View() + "\n"
	if hint := m.contentHint(); hint != "" {
		out += hintStyle.Render(hint) + "\n"
	}

	if m.submitting {
		out += "\nSaving...\n"
	}

	hotKeys := "tab switch field  esc cancel"
	if m.valid() {
		hotKeys += "  ctrl+s save"
	}
	return renderPage(heading, out, hotKeys)
}
