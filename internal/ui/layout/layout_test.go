package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestRenderHeader_ShowsTitleAndStatus(t *testing.T) {
	out := RenderHeader("capitals.json", "Question 2 of 5", 80)
	for _, want := range []string{"Preload Quiz", "capitals.json", "Question 2 of 5"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderHeader_LongTitleKeepsStatus(t *testing.T) {
	title := strings.Repeat("very-long-quiz-name-", 10) + ".json"
	out := RenderHeader(title, "Question 12 of 40", 60)

	if !strings.Contains(out, "Question 12 of 40") {
		t.Error("status should survive a long title")
	}
	if !strings.Contains(out, "…") {
		t.Error("long title should be truncated")
	}
	if w := lipgloss.Width(out); w > 60 {
		t.Errorf("header width = %d, want at most 60", w)
	}
}

func TestRenderFooter_DropsHintsThatDoNotFit(t *testing.T) {
	hints := []KeyHint{
		{Key: "1-9", Description: "Answer"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Submit"},
		{Key: "g", Description: "Go to question"},
		{Key: "Esc", Description: "Quit quiz"},
		{Key: "Ctrl+C", Description: "Quit"},
	}

	wide := RenderFooter(hints, 200)
	if !strings.Contains(wide, "Go to question") {
		t.Error("wide footer should show every hint")
	}

	narrow := RenderFooter(hints, 60)
	if !strings.Contains(narrow, "Ctrl+C") {
		t.Error("the last hint must always be shown")
	}
	if !strings.Contains(narrow, "1-9") {
		t.Error("leading hints should be kept first")
	}
	if strings.Contains(narrow, "Quit quiz") {
		t.Error("hints that do not fit should be dropped")
	}
	if lines := strings.Count(narrow, "\n"); lines != 2 {
		t.Errorf("footer has %d line breaks, want 2 (single content row)", lines)
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) || !IsTooSmall(MinWidth, MinHeight-1) {
		t.Error("below minimum should be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("minimum size should fit")
	}
}
