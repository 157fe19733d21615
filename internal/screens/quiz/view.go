package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/keedam/preloadquiz/internal/quiz"
	"github.com/keedam/preloadquiz/internal/ui/components"
	"github.com/keedam/preloadquiz/internal/ui/layout"
	"github.com/keedam/preloadquiz/internal/ui/theme"
)

func progressLabel(pos, total int) string {
	return fmt.Sprintf("Question %d of %d", pos, total)
}

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var question string
	switch {
	case s.view.Answering != nil:
		question = s.view.Answering.Question
	case s.view.Feedback != nil:
		question = s.view.Feedback.Question
	default:
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No active question."))
	}

	var sections []string

	if !layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight) {
		sections = append(sections, progressBar(s.view.Jump, cw).View())
	}

	sections = append(sections, components.Card(
		theme.Question.Width(cw-4).Render(question), cw))
	sections = append(sections, s.choices.View())

	if fv := s.view.Feedback; fv != nil {
		if fv.Correct {
			sections = append(sections, components.Banner("Correct!", true, cw))
		} else {
			sections = append(sections, components.Banner(
				"Incorrect! The correct answer was: "+fv.CorrectAnswer, false, cw))
		}
		sections = append(sections, theme.Hint.Render("press any key: "+fv.ContinueLabel))
	}

	if s.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	if s.jumping {
		sections = append(sections, renderJumpStrip(s.view.Jump, cw), s.jump.View())
	}

	content := lipgloss.NewStyle().Width(cw).Render(strings.Join(sections, "\n\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// progressBar builds the per-question bar from the jump entries.
func progressBar(entries []qz.JumpEntry, cw int) components.ProgressBar {
	answered := make([]bool, len(entries))
	current := -1
	for i, e := range entries {
		answered[i] = e.Answered
		if e.Current {
			current = i
		}
	}
	return components.NewProgressBar(answered, current, cw)
}

// renderJumpStrip lists every question number, marking the current one and
// those already answered.
func renderJumpStrip(entries []qz.JumpEntry, cw int) string {
	cells := make([]string, 0, len(entries))
	for _, e := range entries {
		label := fmt.Sprintf("%d", e.Index+1)
		switch {
		case e.Current:
			cells = append(cells, theme.Selected.Render("["+label+"]"))
		case e.Answered:
			cells = append(cells, theme.Correct.Render(" "+label+"✓"))
		default:
			cells = append(cells, theme.Disabled.Render(" "+label+" "))
		}
	}
	return lipgloss.NewStyle().Width(cw).Render(strings.Join(cells, " "))
}
