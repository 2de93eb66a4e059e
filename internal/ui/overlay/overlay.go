// Package overlay draws a box on top of an already rendered view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Center places box in the middle of base. base is padded to width and
// height first. Styling on both sides survives.
func Center(base, box string, width, height int) string {
	if box == "" {
		return base
	}
	boxLines := strings.Split(box, "\n")
	boxWidth := 0
	for _, l := range boxLines {
		boxWidth = max(boxWidth, ansi.StringWidth(l))
	}
	top := max((height-len(boxLines))/2, 0)
	left := max((width-boxWidth)/2, 0)
	return Place(base, box, left, top, width, height)
}

// Place draws box with its top-left corner at column x, row y of base.
func Place(base, box string, x, y, width, height int) string {
	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}

	for i, line := range strings.Split(box, "\n") {
		row := y + i
		if row >= len(baseLines) {
			break
		}
		w := ansi.StringWidth(line)
		b := baseLines[row]
		if bw := ansi.StringWidth(b); bw < width {
			b += strings.Repeat(" ", width-bw)
		}
		baseLines[row] = ansi.Cut(b, 0, x) + line + ansi.Cut(b, x+w, max(width, x+w))
	}
	return strings.Join(baseLines, "\n")
}
