// Package textinput provides the go-to-time prompt.
package textinput

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cassette/internal/ui/styles"
)

// ResultMsg is sent when the prompt is confirmed or canceled.
type ResultMsg struct {
	Text     string
	Canceled bool
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.T().Primary)
}

func hintStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

// Model is a single-line prompt.
type Model struct {
	title  string
	input  textinput.Model
	active bool
}

// New creates an inactive prompt.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "mm:ss"
	ti.CharLimit = 16
	ti.Width = 16
	ti.Prompt = "> "
	return Model{input: ti}
}

// Start activates the prompt with a title and initial text.
func (m *Model) Start(title, initial string) tea.Cmd {
	m.title = title
	m.active = true
	m.input.SetValue(initial)
	m.input.CursorEnd()
	return m.input.Focus()
}

// Active reports whether the prompt is showing.
func (m Model) Active() bool {
	return m.active
}

// Value is the current text.
func (m Model) Value() string {
	return m.input.Value()
}

// SetError shows a one-line error under the input.
func (m *Model) SetError(err error) {
	m.input.Err = err
}

func (m *Model) stop() {
	m.active = false
	m.input.Blur()
	m.input.Err = nil
}

// Update handles keys while the prompt is active.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.stop()
			return m, func() tea.Msg { return ResultMsg{Canceled: true} }
		case "enter":
			text := m.input.Value()
			m.stop()
			return m, func() tea.Msg { return ResultMsg{Text: text} }
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt box, or nothing when inactive.
func (m Model) View() string {
	if !m.active {
		return ""
	}
	content := titleStyle().Render(m.title) + "\n\n" + m.input.View()
	if m.input.Err != nil {
		content += "\n" + styles.T().S().Error.Render(m.input.Err.Error())
	}
	content += "\n\n" + hintStyle().Render("Enter: confirm, Esc: cancel")
	return styles.PromptBox().Render(content)
}
