package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// fallbackGray stands in for ANSI palette colors, which have no RGB value.
var fallbackGray = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Title renders text bold, shading from the theme's primary to its
// secondary color.
func Title(text string) string {
	clusters := graphemes(text)
	return paint(clusters, ramp(len(clusters), T().Primary, T().Secondary), true)
}

// ProgressGradient renders the filled part of a progress bar. The ramp
// spans the whole bar width so a cell keeps its color as playback
// advances.
func ProgressGradient(filled string, width int) string {
	clusters := graphemes(filled)
	if len(clusters) == 0 {
		return ""
	}
	return paint(clusters, ramp(max(width, len(clusters)), T().Primary, T().Secondary), false)
}

func graphemes(s string) []string {
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

func paint(clusters []string, colors []colorful.Color, bold bool) string {
	var b strings.Builder
	for i, c := range clusters {
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors[i].Hex())).
			Bold(bold)
		b.WriteString(style.Render(c))
	}
	return b.String()
}

// ramp returns n colors from one end to the other, blended in HCL so the
// steps look even.
func ramp(n int, from, to lipgloss.Color) []colorful.Color {
	start, end := toColorful(from), toColorful(to)
	if n < 2 {
		return []colorful.Color{start}
	}
	out := make([]colorful.Color, n)
	for i := range out {
		out[i] = start.BlendHcl(end, float64(i)/float64(n-1)).Clamped()
	}
	return out
}

func toColorful(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return fallbackGray
	}
	return col
}
