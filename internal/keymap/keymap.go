package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
}

// All contains all key bindings, in help order.
var All = []Binding{
	{ActionPlayPause, []string{" "}, "play/pause"},
	{ActionSelectTrack, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, "select track"},
	{ActionSeekBack, []string{"left", "h"}, "seek back"},
	{ActionSeekForward, []string{"right", "l"}, "seek forward"},
	{ActionGoToTime, []string{"g"}, "go to time"},
	{ActionVolumeDown, []string{"-", "down", "j"}, "volume down"},
	{ActionVolumeUp, []string{"+", "=", "up", "k"}, "volume up"},
	{ActionRateDown, []string{"["}, "slower"},
	{ActionRateUp, []string{"]"}, "faster"},
	{ActionRateReset, []string{"\\"}, "normal speed"},
	{ActionDownload, []string{"d"}, "download"},
	{ActionHelp, []string{"?"}, "help"},
	{ActionQuit, []string{"q", "ctrl+c"}, "quit"},
}

// KeyMap exposes the bindings to bubbles/help.
type KeyMap struct {
	bindings []key.Binding
	short    []key.Binding
}

// NewKeyMap builds help bindings from the binding table.
func NewKeyMap(bindings []Binding) KeyMap {
	var km KeyMap
	for _, b := range bindings {
		kb := key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(helpKeys(b), b.Description),
		)
		km.bindings = append(km.bindings, kb)
		switch b.Action {
		case ActionPlayPause, ActionSelectTrack, ActionGoToTime, ActionHelp, ActionQuit:
			km.short = append(km.short, kb)
		}
	}
	return km
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return km.short
}

// FullHelp implements help.KeyMap, four bindings per column.
func (km KeyMap) FullHelp() [][]key.Binding {
	var cols [][]key.Binding
	for i := 0; i < len(km.bindings); i += 4 {
		cols = append(cols, km.bindings[i:min(i+4, len(km.bindings))])
	}
	return cols
}

// helpKeys is the key column shown in help.
func helpKeys(b Binding) string {
	if b.Action == ActionSelectTrack {
		return "1-9"
	}
	keys := make([]string, 0, len(b.Keys))
	for _, k := range b.Keys {
		switch k {
		case " ":
			k = "space"
		case "left":
			k = "←"
		case "right":
			k = "→"
		case "up":
			k = "↑"
		case "down":
			k = "↓"
		}
		keys = append(keys, k)
	}
	return strings.Join(keys, "/")
}
