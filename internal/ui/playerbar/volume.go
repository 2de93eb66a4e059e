package playerbar

import (
	"fmt"

	"github.com/llehouerou/cassette/internal/icons"
	"github.com/llehouerou/cassette/internal/ui/styles"
)

// RenderVolume renders the volume indicator.
// Format: "🔊  50%" or "🔇   0%" when silent
func RenderVolume(volume float64) string {
	pct := int(volume*100 + 0.5)
	return styles.T().S().Base.Render(fmt.Sprintf("%s %3d%%", icons.Volume(volume), pct))
}

// RenderRate renders the playback speed with one decimal.
func RenderRate(rate float64) string {
	return styles.T().S().Base.Render(fmt.Sprintf("%s %.1fx", icons.Rate(), rate))
}
