package tui

type confirmModel struct {
	title string
}

func (m confirmModel) View() string {
	content := "Delete \"" + fitText(m.title, 40) + "\"? This can't be undone.\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render(errorStyle.Render(m.message) + "\n\n" + helpStyle.Render("enter/esc close"))
}
