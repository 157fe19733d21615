package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/keedam/preloadquiz/internal/ui/theme"
)

// ProgressBar shows one segment per question: answered questions filled,
// the current one highlighted, the rest empty. When there are more
// questions than columns each column stands for a run of questions.
type ProgressBar struct {
	Answered []bool // by question index
	Current  int    // 0-based, -1 for none
	Width    int
}

// NewProgressBar creates a bar for len(answered) questions.
func NewProgressBar(answered []bool, current, width int) ProgressBar {
	return ProgressBar{Answered: answered, Current: current, Width: width}
}

// Count returns how many questions are answered.
func (p ProgressBar) Count() int {
	n := 0
	for _, a := range p.Answered {
		if a {
			n++
		}
	}
	return n
}

// View renders "N/T answered" followed by the segments.
func (p ProgressBar) View() string {
	total := len(p.Answered)
	label := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d/%d answered", p.Count(), total)) + "  "
	if total == 0 {
		return label
	}

	cols := p.Width - lipgloss.Width(label)
	if cols < 4 {
		cols = 4
	}
	// Up to two columns per question keeps short quizzes readable.
	per := cols / total
	if per > 2 {
		per = 2
	}

	var b strings.Builder
	b.WriteString(label)
	if per >= 1 {
		for i := range p.Answered {
			b.WriteString(p.segment(i, i).style().Render(strings.Repeat(" ", per)))
		}
		return b.String()
	}

	for c := 0; c < cols; c++ {
		lo := c * total / cols
		hi := (c+1)*total/cols - 1
		if hi < lo {
			hi = lo
		}
		b.WriteString(p.segment(lo, hi).style().Render(" "))
	}
	return b.String()
}

type cell int

const (
	cellEmpty cell = iota
	cellFilled
	cellCurrent
)

func (c cell) style() lipgloss.Style {
	switch c {
	case cellCurrent:
		return theme.ProgressCurrent
	case cellFilled:
		return theme.ProgressFilled
	}
	return theme.ProgressEmpty
}

// segment classifies the questions lo..hi shown in one cell. The current
// question wins; otherwise the cell is filled only when every question in
// it is answered.
func (p ProgressBar) segment(lo, hi int) cell {
	if p.Current >= lo && p.Current <= hi {
		return cellCurrent
	}
	for i := lo; i <= hi; i++ {
		if !p.Answered[i] {
			return cellEmpty
		}
	}
	return cellFilled
}
