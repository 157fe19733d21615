package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

type pressedMsg struct{}

func pressed() tea.Cmd {
	return func() tea.Msg { return pressedMsg{} }
}

func TestButton_FiresOnBoundKey(t *testing.T) {
	b := NewButton("Take a New Quiz", "enter", pressed)

	_, cmd := b.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd != nil {
		t.Error("unbound key should not press the button")
	}

	_, cmd = b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should press the button")
	}
	if _, ok := cmd().(pressedMsg); !ok {
		t.Error("expected OnPress command")
	}
}

func TestButton_DisabledIgnoresKeys(t *testing.T) {
	b := NewButton("Take a New Quiz", "enter", pressed)
	b.Disabled = true

	if _, cmd := b.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("disabled button should ignore its key")
	}
	if strings.Contains(b.View(), "▸") {
		t.Error("disabled button should not show the pointer")
	}
}

func TestButton_ViewShowsKey(t *testing.T) {
	view := NewButton("Take a New Quiz", "enter", pressed).View()
	if !strings.Contains(view, "Take a New Quiz") || !strings.Contains(view, "[Enter]") {
		t.Errorf("view = %q", view)
	}
}

func TestKeyLabel(t *testing.T) {
	tests := map[string]string{
		"enter":  "Enter",
		"r":      "R",
		"ctrl+r": "Ctrl+R",
		"":       "?",
	}
	for in, want := range tests {
		if got := keyLabel(in); got != want {
			t.Errorf("keyLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestProgressBar_CountAndLabel(t *testing.T) {
	p := NewProgressBar([]bool{true, false, true}, 1, 60)
	if p.Count() != 2 {
		t.Errorf("Count = %d, want 2", p.Count())
	}
	if !strings.Contains(p.View(), "2/3 answered") {
		t.Errorf("view = %q", p.View())
	}
}

func TestProgressBar_Segments(t *testing.T) {
	p := NewProgressBar([]bool{true, false, false}, 1, 60)
	tests := []struct {
		lo, hi int
		want   cell
	}{
		{0, 0, cellFilled},
		{1, 1, cellCurrent},
		{2, 2, cellEmpty},
		{0, 2, cellCurrent},
	}
	for _, tt := range tests {
		if got := p.segment(tt.lo, tt.hi); got != tt.want {
			t.Errorf("segment(%d, %d) = %d, want %d", tt.lo, tt.hi, got, tt.want)
		}
	}

	done := NewProgressBar([]bool{true, true, false}, -1, 60)
	if got := done.segment(0, 1); got != cellFilled {
		t.Errorf("fully answered run = %d, want filled", got)
	}
	if got := done.segment(1, 2); got != cellEmpty {
		t.Errorf("partly answered run = %d, want empty", got)
	}
}

func TestProgressBar_ManyQuestionsFitWidth(t *testing.T) {
	answered := make([]bool, 500)
	p := NewProgressBar(answered, 250, 60)
	if w := lipgloss.Width(p.View()); w > 60 {
		t.Errorf("width = %d, want at most 60", w)
	}
}

func TestProgressBar_Empty(t *testing.T) {
	if !strings.Contains(NewProgressBar(nil, -1, 60).View(), "0/0 answered") {
		t.Error("empty bar should still show its label")
	}
}
