package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/keedam/preloadquiz/internal/normalize"
	"github.com/keedam/preloadquiz/internal/router"
	"github.com/keedam/preloadquiz/internal/screen"
	"github.com/keedam/preloadquiz/internal/screens/picker"
	"github.com/keedam/preloadquiz/internal/screens/welcome"
	"github.com/keedam/preloadquiz/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	QuizDir    string
	Extensions []string
	Logger     *zap.Logger
	Normalizer *normalize.Normalizer

	// File skips the splash and starts this quiz source directly.
	File string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model. Without a file the welcome splash is
// shown first and then replaced by the picker.
func newAppModel(opts Options) AppModel {
	pickerOpts := picker.Options{
		Dir:        opts.QuizDir,
		Extensions: opts.Extensions,
		Normalizer: opts.Normalizer,
		Logger:     opts.Logger,
		Autoload:   opts.File,
	}

	var first screen.Screen
	if opts.File != "" {
		first = picker.New(pickerOpts)
	} else {
		first = welcome.New(func() screen.Screen { return picker.New(pickerOpts) })
	}
	return AppModel{router: router.New(first)}
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

	case tea.KeyPressMsg:
		// Esc belongs to the screens: the quiz uses it to close the jump
		// control before leaving.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
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

// render draws header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(kp.KeyHints(), footerHints...)
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Normalizer == nil {
		opts.Normalizer = normalize.New(opts.Logger)
	}

	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
