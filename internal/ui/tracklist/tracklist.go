// Package tracklist renders the catalog as a row of numbered buttons.
package tracklist

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cassette/internal/catalog"
	"github.com/llehouerou/cassette/internal/icons"
	"github.com/llehouerou/cassette/internal/ui/render"
	"github.com/llehouerou/cassette/internal/ui/styles"
)

// maxNameWidth caps a single button label.
const maxNameWidth = 24

// Label is the plain text of the button for track number n (1-based).
// Only the first nine tracks have a number key.
func Label(n int, t catalog.Track) string {
	name := render.Truncate(render.Sanitize(t.Name), maxNameWidth)
	if n > 9 {
		return icons.FormatTrack(name)
	}
	return strconv.Itoa(n) + " " + icons.FormatTrack(name)
}

// Render lays the buttons out left to right, wrapping at width. The
// button of the active source is highlighted.
func Render(tracks []catalog.Track, active string, width int) string {
	st := styles.T().S()

	var lines []string
	var line []string
	lineWidth := 0
	for i, t := range tracks {
		style := st.Button
		if t.Source == active {
			style = st.ActiveButton
		}
		button := style.Render(Label(i+1, t))
		w := lipgloss.Width(button)

		if len(line) > 0 && lineWidth+1+w > width {
			lines = append(lines, strings.Join(line, " "))
			line, lineWidth = nil, 0
		}
		if len(line) > 0 {
			lineWidth++
		}
		line = append(line, button)
		lineWidth += w
	}
	if len(line) > 0 {
		lines = append(lines, strings.Join(line, " "))
	}
	return strings.Join(lines, "\n")
}
