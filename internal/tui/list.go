package tui

import (
	"fmt"
	"strings"

	"notekeeper/internal/domain"
)

const (
	msgListFailed = "Something went wrong."
	msgListEmpty  = "There are no notes yet."
)

type listModel struct {
	notes   []*domain.NoteResponse
	idx     int
	loading bool
	failed  bool
	notice  string
}

func newListModel() listModel {
	return listModel{loading: true}
}

func (m listModel) current() (*domain.NoteResponse, bool) {
	if len(m.notes) == 0 || m.idx < 0 || m.idx >= len(m.notes) {
		return nil, false
	}
	return m.notes[m.idx], true
}

func (m *listModel) clampCursor() {
	if m.idx >= len(m.notes) {
		m.idx = len(m.notes) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *listModel) append(note *domain.NoteResponse) {
	m.notes = append(m.notes, note)
	m.idx = len(m.notes) - 1
}

func (m *listModel) replace(id, title, content string) {
	for _, n := range m.notes {
		if n.ID == id {
			n.Title = title
			n.Content = content
			return
		}
	}
}

func (m *listModel) remove(id string) {
	for i, n := range m.notes {
		if n.ID == id {
			m.notes = append(m.notes[:i], m.notes[i+1:]...)
			break
		}
	}
	m.clampCursor()
}

func (m listModel) View(spin string) string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(spin + " Loading notes...\n")
	case m.failed:
		b.WriteString(errorStyle.Render(msgListFailed) + "\n")
	case len(m.notes) == 0:
		b.WriteString(msgListEmpty + "\n")
		b.WriteString("Press n to create one.\n")
	default:
		for i, n := range m.notes {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			fmt.Fprintf(&b, "%s%s\n", cursor, titleStyle.Render(fitText(firstLine(n.Title), 60)))
			fmt.Fprintf(&b, "    %s\n", helpStyle.Render(strings.ReplaceAll(preview(n.Content), "\n", " ")))
		}
	}

	if m.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(m.notice) + "\n")
	}

	hotKeys := "enter open  n new  r reload  q quit"
	return renderPage("Notes", b.String(), hotKeys)
}
