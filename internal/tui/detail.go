package tui

import (
	"strings"

	"notekeeper/internal/domain"
)

const msgNoteMissing = "This note can't be found"

type detailModel struct {
	id      string
	note    *domain.NoteResponse
	loading bool
	missing bool
	status  string
}

func (m detailModel) View(spin string) string {
	var b strings.Builder
	title := "Note"

	switch {
	case m.loading:
		b.WriteString(spin + " Loading note...\n")
	case m.missing || m.note == nil:
		b.WriteString(errorStyle.Render(msgNoteMissing) + "\n")
	default:
		title = m.note.Title
		b.WriteString(m.note.Content + "\n\n")
		b.WriteString(helpStyle.Render("updated " + m.note.UpdatedAt.Local().Format("2006-01-02 15:04")))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n" + noticeStyle.Render(m.status) + "\n")
	}

	hotKeys := "esc back"
	if m.note != nil && !m.loading && !m.missing {
		hotKeys = "esc back  e edit  d delete  c copy"
	}
	return renderPage(title, b.String(), hotKeys)
}
