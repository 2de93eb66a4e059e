package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cassette/internal/ui"
	"github.com/llehouerou/cassette/internal/ui/overlay"
	"github.com/llehouerou/cassette/internal/ui/playerbar"
	"github.com/llehouerou/cassette/internal/ui/render"
	"github.com/llehouerou/cassette/internal/ui/styles"
	"github.com/llehouerou/cassette/internal/ui/tracklist"
)

// View renders the application UI.
func (m Model) View() string {
	width := m.Width
	if width <= 0 {
		width = ui.DefaultWidth
	}
	width = min(width, ui.MaxWidth)
	inner := max(width-ui.FrameOverhead, ui.MinInnerWidth)

	s := m.vm.State()
	st := styles.T().S()

	title := styles.Title("cassette")
	sections := []string{
		title,
		"",
		tracklist.Render(m.vm.Tracks(), s.Track.Source, inner),
		"",
		playerbar.Render(s, inner),
		render.Separator(inner),
		st.Status.Render(render.Truncate(render.Sanitize(m.Status), inner)),
	}

	if m.showHelp {
		sections = append(sections, m.help.FullHelpView(m.keyMap.FullHelp()))
	} else {
		sections = append(sections, m.help.ShortHelpView(m.keyMap.ShortHelp()))
	}

	view := styles.Frame().Width(width - ui.BorderWidth).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))

	if m.prompt.Active() {
		view = overlay.Center(view, m.prompt.View(), lipgloss.Width(view), lipgloss.Height(view))
	}
	return view
}
