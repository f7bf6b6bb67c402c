package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayoumin/mbti-sub003/internal/ui/theme"
)

// MultiChoice is a single-answer option selector. Options can be picked
// with the arrow keys and enter, or directly by their number.
type MultiChoice struct {
	Question    string
	Options     []string
	Selected    int
	Submitted   bool
	ChosenIndex int

	// Previous marks an earlier answer with a check so users revisiting a
	// question can see what they picked. -1 means none.
	Previous int
}

// NewMultiChoice creates a selector. previous is the index of an existing
// answer, or -1; when set it also becomes the initial highlight.
func NewMultiChoice(question string, options []string, previous int) MultiChoice {
	selected := 0
	if previous >= 0 && previous < len(options) {
		selected = previous
	} else {
		previous = -1
	}
	return MultiChoice{
		Question:    question,
		Options:     options,
		Selected:    selected,
		ChosenIndex: -1,
		Previous:    previous,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter", "space":
		m.submit(m.Selected)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if idx := int(key[0] - '1'); idx < len(m.Options) {
				m.submit(idx)
			}
		}
	}

	return m, nil
}

func (m *MultiChoice) submit(idx int) {
	m.Selected = idx
	m.Submitted = true
	m.ChosenIndex = idx
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)
		if i == m.Previous {
			line += "  ✓"
		}

		var style lipgloss.Style
		switch {
		case m.Submitted && i == m.ChosenIndex:
			style = theme.Chosen
		case m.Submitted:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line) + "\n")
	}

	return b.String()
}

// Chosen returns the submitted option index.
func (m MultiChoice) Chosen() (int, bool) {
	return m.ChosenIndex, m.Submitted
}
