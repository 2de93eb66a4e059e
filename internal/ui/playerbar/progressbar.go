package playerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cassette/internal/playback"
	"github.com/llehouerou/cassette/internal/ui"
	"github.com/llehouerou/cassette/internal/ui/styles"
)

const (
	filledBlock = "━"
	emptyBlock  = "─"
)

// RenderProgressBar renders "01:23  ━━━━────  04:56" in width cells.
func RenderProgressBar(position, duration time.Duration, width int) string {
	st := styles.T().S()
	posStr := st.Base.Render(playback.FormatTime(position))
	durStr := st.Muted.Render(playback.FormatTime(duration))

	barWidth := width - lipgloss.Width(posStr) - lipgloss.Width(durStr) - 4
	if barWidth < ui.MinProgressBarWidth {
		return posStr + " / " + durStr
	}

	filled := filledCells(position, duration, barWidth)
	bar := styles.ProgressGradient(strings.Repeat(filledBlock, filled), barWidth) +
		st.Subtle.Render(strings.Repeat(emptyBlock, barWidth-filled))

	return posStr + "  " + bar + "  " + durStr
}

// filledCells maps the position onto barWidth cells.
func filledCells(position, duration time.Duration, barWidth int) int {
	if duration <= 0 || position <= 0 {
		return 0
	}
	ratio := float64(position) / float64(duration)
	return min(int(float64(barWidth)*ratio), barWidth)
}
