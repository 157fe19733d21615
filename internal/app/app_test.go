package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/keedam/preloadquiz/internal/screens/picker"
	"github.com/keedam/preloadquiz/internal/screens/welcome"
)

func TestNewAppModel_StartsWithWelcome(t *testing.T) {
	m := newAppModel(Options{QuizDir: t.TempDir()})
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Errorf("active = %T, want welcome screen", m.router.Active())
	}
}

func TestNewAppModel_FileSkipsWelcome(t *testing.T) {
	m := newAppModel(Options{QuizDir: t.TempDir(), File: "quiz.json"})
	if _, ok := m.router.Active().(*picker.PickerScreen); !ok {
		t.Errorf("active = %T, want picker screen", m.router.Active())
	}
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := newAppModel(Options{QuizDir: t.TempDir()})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestAppModel_ViewRendersFrame(t *testing.T) {
	var model tea.Model = newAppModel(Options{QuizDir: t.TempDir(), File: "missing.json"})
	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	out := model.(AppModel).render()
	if !strings.Contains(out, "Preload Quiz") {
		t.Error("header should show the app name")
	}
	if !strings.Contains(out, "Ctrl+C") {
		t.Error("footer should show the quit hint")
	}
}

func TestAppModel_TooSmall(t *testing.T) {
	var model tea.Model = newAppModel(Options{QuizDir: t.TempDir()})
	model, _ = model.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	if !strings.Contains(model.(AppModel).render(), "Terminal too small") {
		t.Error("expected min-size message")
	}
}
