package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/dayoumin/mbti-sub003/internal/quiz"
	"github.com/dayoumin/mbti-sub003/internal/router"
	"github.com/dayoumin/mbti-sub003/internal/screen"
	"github.com/dayoumin/mbti-sub003/internal/screens/home"
	"github.com/dayoumin/mbti-sub003/internal/store"
	"github.com/dayoumin/mbti-sub003/internal/ui/layout"
)

// Options configures the interactive app.
type Options struct {
	// Quizzes are listed on the home screen.
	Quizzes []*quiz.Quiz

	// Attempts persists finished attempts. Nil disables saving and history.
	Attempts store.AttemptRepo

	// Start, when set, opens this quiz directly on top of the home screen.
	Start *quiz.Quiz
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	m := AppModel{
		router: router.New(home.New(opts.Quizzes, opts.Attempts)),
	}
	if opts.Start != nil {
		m.router.Push(home.StartScreen(opts.Start, opts.Attempts))
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render composes the current frame. It is empty until the first window
// size message arrives.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	frame := layout.Frame{Hints: defaultHints(m.router.Depth())}
	if active != nil {
		frame.Title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			frame.Status = sp.Status()
		}
		if kp, ok := active.(screen.KeyHintProvider); ok {
			if hints := kp.KeyHints(); hints != nil {
				frame.Hints = hints
			}
		}
	}

	content := m.router.View(m.width, frame.BodyHeight(m.width, m.height))
	return frame.Render(content, m.width, m.height)
}

// defaultHints are shown for screens without their own key hints.
func defaultHints(depth int) []layout.KeyHint {
	if depth > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
