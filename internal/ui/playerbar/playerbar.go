// Package playerbar renders the playback state: status, progress, volume
// and speed.
package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cassette/internal/icons"
	"github.com/llehouerou/cassette/internal/playback"
	"github.com/llehouerou/cassette/internal/ui/render"
	"github.com/llehouerou/cassette/internal/ui/styles"
)

// Height is the number of lines Render produces.
const Height = 3

// Render returns the player bar for the given inner width.
//
//	▶ Playing   audio1
//	01:05  ━━━━━━━━──────────  03:00
//	🔊  50%   ⏩ 1.0x
func Render(s playback.State, width int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(s, width),
		RenderProgressBar(s.CurrentTime, s.Duration, width),
		renderControls(s, width),
	)
}

func renderHeader(s playback.State, width int) string {
	st := styles.T().S()
	statusStyle := st.Paused
	if s.Playing {
		statusStyle = st.Playing
	}
	status := statusStyle.Render(icons.Status(s.Playing) + " " + s.Status())

	titleWidth := max(width-lipgloss.Width(status)-3, 0)
	title := st.Title.Render(render.Truncate(render.Sanitize(s.Track.Name), titleWidth))
	return status + "   " + title
}

func renderControls(s playback.State, width int) string {
	left := RenderVolume(s.Volume) + "   " + RenderRate(s.PlaybackRate)
	right := styles.T().S().Subtle.Render(icons.Download() + " " + render.Sanitize(s.Track.Source))
	if lipgloss.Width(left)+lipgloss.Width(right)+1 > width {
		return left
	}
	return render.Row(left, right, width)
}
