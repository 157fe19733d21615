package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/keedam/preloadquiz/internal/quiz"
	"github.com/keedam/preloadquiz/internal/router"
	"github.com/keedam/preloadquiz/internal/screen"
	"github.com/keedam/preloadquiz/internal/ui/components"
	"github.com/keedam/preloadquiz/internal/ui/layout"
	"github.com/keedam/preloadquiz/internal/ui/theme"
)

// ResultsScreen shows the score and the per-question review of a finished
// session.
type ResultsScreen struct {
	session  *quiz.Session
	title    string
	logger   *zap.Logger
	finished *quiz.FinishedView
	button   components.Button
	offset   int // first review row shown
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for a session in PhaseFinished.
func New(session *quiz.Session, title string, logger *zap.Logger) *ResultsScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &ResultsScreen{
		session:  session,
		title:    title,
		logger:   logger,
		finished: quiz.BuildView(session).Finished,
	}
	r.button = components.NewButton("Take a New Quiz", "enter", r.takeNew)
	r.button.Disabled = r.finished == nil
	return r
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return r.title + " · Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter/r", Description: "Take a New Quiz"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Quizzes"},
	}
}

// takeNew discards the finished attempt and returns to the picker.
func (r *ResultsScreen) takeNew() tea.Cmd {
	r.session = r.session.Reset()
	r.logger.Info("quiz reset")
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "r":
		return r, r.takeNew()
	case "esc":
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if r.offset > 0 {
			r.offset--
		}
		return r, nil
	case "down", "j":
		if r.finished != nil && r.offset < len(r.finished.Review)-1 {
			r.offset++
		}
		return r, nil
	}

	var cmd tea.Cmd
	r.button, cmd = r.button.Update(msg)
	return r, cmd
}

// ScoreLine renders the score as "N out of M".
func ScoreLine(f *quiz.FinishedView) string {
	return fmt.Sprintf("%d out of %d", f.Score, f.Total)
}

func (r *ResultsScreen) View(width, height int) string {
	f := r.finished
	if f == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(theme.Title.Width(cw).Render("Quiz complete!"))
	b.WriteString("\n\n")

	pct := 0
	if f.Total > 0 {
		pct = f.Score * 100 / f.Total
	}
	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Your score: %s (%d%%)", ScoreLine(f), pct)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Review"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw)))
	b.WriteString("\n")

	// Header, score, review title, button and padding take about 12 rows.
	rows := height - 12
	if rows < 3 {
		rows = 3
	}
	b.WriteString(renderReview(f.Review, r.offset, rows, cw))
	b.WriteString("\n")
	b.WriteString(r.button.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// renderReview renders review items starting at offset, at most rows
// items. Each item takes two or three lines.
func renderReview(items []quiz.ReviewItem, offset, rows, cw int) string {
	var b strings.Builder
	end := offset + rows/3
	if end <= offset {
		end = offset + 1
	}
	if end > len(items) {
		end = len(items)
	}
	for _, it := range items[offset:end] {
		mark, style := "✗", theme.Incorrect
		if it.Correct {
			mark, style = "✓", theme.Correct
		}
		b.WriteString(style.Render(fmt.Sprintf("%s %d. ", mark, it.Number)))
		b.WriteString(theme.Body.Width(cw - 6).Render(it.Question))
		b.WriteString("\n")

		given := "   Your answer: " + it.Given
		if !it.Answered {
			b.WriteString(theme.Disabled.Render(given))
		} else {
			b.WriteString(style.Render(given))
		}
		b.WriteString("\n")
		if !it.Correct {
			b.WriteString(theme.Correct.Render("   Correct answer: " + it.CorrectAnswer))
			b.WriteString("\n")
		}
	}
	if end < len(items) {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("… %d more", len(items)-end)))
		b.WriteString("\n")
	}
	return b.String()
}
