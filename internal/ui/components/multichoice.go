package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/keedam/preloadquiz/internal/ui/theme"
)

// ChoiceMsg is emitted when the user picks an option.
type ChoiceMsg struct {
	Index int
}

// MultiChoice is a numbered single-choice option list. Options can be
// picked with the cursor and Enter, or directly with keys 1-9. A locked
// list ignores input and highlights the chosen and correct options.
type MultiChoice struct {
	Options []string
	Cursor  int
	Locked  bool
	Chosen  int
	Correct int
}

// NewMultiChoice creates an unlocked list with the cursor on preselected,
// or on the first option when preselected is out of range.
func NewMultiChoice(options []string, preselected int) MultiChoice {
	cursor := 0
	if preselected >= 0 && preselected < len(options) {
		cursor = preselected
	}
	return MultiChoice{
		Options: options,
		Cursor:  cursor,
		Chosen:  -1,
		Correct: -1,
	}
}

// Lock freezes the list showing chosen and correct. Either index may be -1.
func (m MultiChoice) Lock(chosen, correct int) MultiChoice {
	m.Locked = true
	m.Chosen = chosen
	m.Correct = correct
	if chosen >= 0 {
		m.Cursor = chosen
	}
	return m
}

// Update handles cursor movement and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Locked || len(m.Options) == 0 {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
		return m, nil
	case "enter":
		return m, choose(m.Cursor)
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		idx := int(key[0] - '1')
		if idx < len(m.Options) {
			m.Cursor = idx
			return m, choose(idx)
		}
	}
	return m, nil
}

func choose(idx int) tea.Cmd {
	return func() tea.Msg { return ChoiceMsg{Index: idx} }
}

// View renders the option list.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.Locked {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		var style lipgloss.Style
		switch {
		case m.Locked && i == m.Correct:
			style = theme.Correct
			line += "  ✓"
		case m.Locked && i == m.Chosen:
			style = theme.Incorrect
			line += "  ✗"
		case m.Locked:
			style = theme.Disabled
		case i == m.Cursor:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line) + "\n")
	}
	return b.String()
}
