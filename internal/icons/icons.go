package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Play       string
	Pause      string
	Volume     string
	VolumeMute string
	Rate       string
	Download   string
	Track      string
}

var (
	nerdIcons = Icons{
		Play:       "\uf04b",     // nf-fa-play
		Pause:      "\uf04c",     // nf-fa-pause
		Volume:     "\uf028",     // nf-fa-volume_up
		VolumeMute: "\ueee8",     // nf-fa-volume_xmark
		Rate:       "\U000f0f86", // nf-md-speedometer
		Download:   "\uf019",     // nf-fa-download
		Track:      "\uf001",     // nf-fa-music
	}

	unicodeIcons = Icons{
		Play:       "▶",
		Pause:      "⏸",
		Volume:     "🔊",
		VolumeMute: "🔇",
		Rate:       "⏩",
		Download:   "⬇",
		Track:      "♪",
	}

	noneIcons = Icons{
		Play:       ">",
		Pause:      "||",
		Volume:     "vol",
		VolumeMute: "mute",
		Rate:       "x",
		Download:   "dl",
		Track:      "",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// Status returns the play or pause symbol for the playing flag.
func Status(playing bool) string {
	if playing {
		return current.Play
	}
	return current.Pause
}

// Volume returns the speaker icon, muted when v is zero.
func Volume(v float64) string {
	if v <= 0 {
		return current.VolumeMute
	}
	return current.Volume
}

func Rate() string {
	return current.Rate
}

func Download() string {
	return current.Download
}

// FormatTrack formats a track name with the appropriate icon.
func FormatTrack(name string) string {
	if current.Track == "" {
		return name
	}
	return current.Track + " " + name
}
