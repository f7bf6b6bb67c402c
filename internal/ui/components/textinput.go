package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput wraps bubbles/textinput for short free-text fields such as a
// nickname.
type TextInput struct {
	Model    textinput.Model
	MaxRunes int
}

// NewTextInput creates a focused text input limited to maxRunes characters
// (0 means unlimited).
func NewTextInput(placeholder string, maxRunes int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxRunes > 0 {
		ti.CharLimit = maxRunes
	}

	return TextInput{
		Model:    ti,
		MaxRunes: maxRunes,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	return t.Model.View()
}

// Value returns the trimmed input value.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// SetValue replaces the current input value, truncated to MaxRunes.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}
