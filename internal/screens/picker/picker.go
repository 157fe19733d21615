package picker

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/keedam/preloadquiz/internal/normalize"
	"github.com/keedam/preloadquiz/internal/quiz"
	"github.com/keedam/preloadquiz/internal/router"
	"github.com/keedam/preloadquiz/internal/screen"
	quizscreen "github.com/keedam/preloadquiz/internal/screens/quiz"
	"github.com/keedam/preloadquiz/internal/source"
	"github.com/keedam/preloadquiz/internal/ui/components"
	"github.com/keedam/preloadquiz/internal/ui/layout"
	"github.com/keedam/preloadquiz/internal/ui/theme"
)

// Options configures the picker.
type Options struct {
	Dir        string
	Extensions []string
	Normalizer *normalize.Normalizer
	Logger     *zap.Logger

	// Autoload, when set, is loaded as soon as the picker starts.
	Autoload string
}

// sourcesMsg carries the result of scanning the quiz directory.
type sourcesMsg struct {
	Entries []source.Entry
	Err     error
}

// loadedMsg carries the result of loading one source.
type loadedMsg struct {
	Path      string
	Questions []quiz.Question
	Report    normalize.Report
	Err       error
}

// PickerScreen lists quiz sources and starts a session for the chosen one.
// While it is active no session exists, which is the Initial phase.
type PickerScreen struct {
	opts    Options
	entries []source.Entry
	menu    components.Menu
	scanned bool
	status  string
	errMsg  string
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates a PickerScreen.
func New(opts Options) *PickerScreen {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Normalizer == nil {
		opts.Normalizer = normalize.New(opts.Logger)
	}
	if opts.Dir == "" {
		opts.Dir = "."
	}
	return &PickerScreen{opts: opts}
}

func (p *PickerScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{p.scan()}
	if p.opts.Autoload != "" {
		cmds = append(cmds, p.load(p.opts.Autoload))
	}
	return tea.Batch(cmds...)
}

func (p *PickerScreen) Title() string {
	return "Choose a Quiz"
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "r", Description: "Rescan"},
		{Key: "q", Description: "Quit"},
	}
}

func (p *PickerScreen) scan() tea.Cmd {
	dir, exts := p.opts.Dir, p.opts.Extensions
	return func() tea.Msg {
		entries, err := source.List(dir, exts)
		return sourcesMsg{Entries: entries, Err: err}
	}
}

func (p *PickerScreen) load(path string) tea.Cmd {
	n := p.opts.Normalizer
	return func() tea.Msg {
		qs, report, err := source.Load(path, n)
		return loadedMsg{Path: path, Questions: qs, Report: report, Err: err}
	}
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sourcesMsg:
		return p.handleSources(msg)

	case loadedMsg:
		return p.handleLoaded(msg)

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q":
			return p, tea.Quit
		case "r":
			p.errMsg = ""
			return p, p.scan()
		}
	}

	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *PickerScreen) handleSources(msg sourcesMsg) (screen.Screen, tea.Cmd) {
	p.scanned = true
	if msg.Err != nil {
		p.entries = nil
		p.menu = components.NewMenu(nil)
		p.errMsg = msg.Err.Error()
		p.opts.Logger.Warn("scan quiz dir", zap.String("dir", p.opts.Dir), zap.Error(msg.Err))
		return p, nil
	}

	p.entries = msg.Entries
	items := make([]components.MenuItem, len(msg.Entries))
	for i, e := range msg.Entries {
		path := e.Path
		items[i] = components.MenuItem{
			Label:  e.Name,
			Action: func() tea.Cmd { return p.load(path) },
		}
	}
	p.menu = components.NewMenu(items)
	return p, nil
}

func (p *PickerScreen) handleLoaded(msg loadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		p.status = ""
		p.errMsg = describeLoadError(msg.Err)
		p.opts.Logger.Warn("load quiz source", zap.String("source", msg.Path), zap.Error(msg.Err))
		return p, nil
	}

	session := quiz.NewSession()
	if err := session.Load(msg.Questions); err != nil {
		p.errMsg = err.Error()
		return p, nil
	}

	p.errMsg = ""
	p.status = LoadSummary(msg.Report)
	p.opts.Logger.Info("quiz started",
		zap.String("attempt_id", session.ID()),
		zap.String("source", msg.Path),
		zap.Int("questions", msg.Report.Kept),
		zap.Int("dropped", len(msg.Report.Dropped)),
	)

	next := quizscreen.New(session, filepath.Base(msg.Path), p.opts.Logger)
	return p, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

// LoadSummary renders a load report as "Loaded N questions (M skipped)".
func LoadSummary(r normalize.Report) string {
	noun := "questions"
	if r.Kept == 1 {
		noun = "question"
	}
	return fmt.Sprintf("Loaded %d %s (%d skipped)", r.Kept, noun, len(r.Dropped))
}

func describeLoadError(err error) string {
	switch {
	case errors.Is(err, source.ErrSourceNotFound):
		return err.Error()
	case errors.Is(err, source.ErrEmptyResult):
		return "Could not load any valid questions from this file."
	default:
		return "Could not read quiz: " + err.Error()
	}
}

func (p *PickerScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render("Preload Quiz"))
	sections = append(sections, theme.Subtitle.Width(cw).Render("Quizzes in "+p.opts.Dir))

	switch {
	case !p.scanned:
		sections = append(sections, theme.Hint.Render("Scanning..."))
	case len(p.entries) == 0 && p.errMsg == "":
		sections = append(sections, theme.Hint.Render("No quiz files found in "+p.opts.Dir))
	case len(p.entries) > 0:
		sections = append(sections, components.Card(strings.TrimRight(p.menu.View(), "\n"), cw))
	}

	if p.status != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Secondary).Render(p.status))
	}
	if p.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Width(cw).Render(p.errMsg))
	}

	content := strings.Join(sections, "\n\n")
	return components.Frame(content, width, height)
}
