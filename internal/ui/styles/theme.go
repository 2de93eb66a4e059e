package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the player.
type Theme struct {
	// Accent colors, also the ends of the progress gradient
	Primary   lipgloss.Color
	Secondary lipgloss.Color

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgButton lipgloss.Color
	Border   lipgloss.Color

	Success lipgloss.Color // playing
	Error   lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles.
type Styles struct {
	Base         lipgloss.Style
	Muted        lipgloss.Style
	Subtle       lipgloss.Style
	Title        lipgloss.Style
	Playing      lipgloss.Style
	Paused       lipgloss.Style
	Button       lipgloss.Style
	ActiveButton lipgloss.Style
	Status       lipgloss.Style
	Error        lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgButton: lipgloss.Color("#303030"),
	Border:   lipgloss.Color("#585858"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	button := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(t.FgBase).
		Background(t.BgButton)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Playing: lipgloss.NewStyle().Foreground(t.Success).Bold(true),
		Paused:  lipgloss.NewStyle().Foreground(t.FgMuted).Bold(true),
		Button:  button,
		ActiveButton: button.
			Foreground(lipgloss.Color("#1a1a1a")).
			Background(t.Primary).
			Bold(true),
		Status: lipgloss.NewStyle().Foreground(t.Secondary),
		Error:  lipgloss.NewStyle().Foreground(t.Error),
	}
}
