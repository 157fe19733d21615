package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/keedam/preloadquiz/internal/ui/theme"
)

// Button is a single action bound to one key. It renders as the label
// followed by its key, e.g. "▸ Take a New Quiz [Enter]".
type Button struct {
	Label    string
	Key      string // as reported by tea.KeyMsg.String(), e.g. "enter"
	Disabled bool
	OnPress  func() tea.Cmd
}

// NewButton creates an enabled button bound to key.
func NewButton(label, key string, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Key:     key,
		OnPress: onPress,
	}
}

// Update fires OnPress when the bound key is pressed. A disabled button
// ignores every message.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if b.Disabled || b.OnPress == nil {
		return b, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == b.Key {
		return b, b.OnPress()
	}
	return b, nil
}

// View renders the button with its key hint.
func (b Button) View() string {
	hint := "[" + keyLabel(b.Key) + "]"
	if b.Disabled {
		return theme.ButtonInactive.Render(theme.Disabled.Render(b.Label + " " + hint))
	}
	return theme.ButtonActive.Render("▸ "+b.Label) + " " + theme.Hint.Render(hint)
}

// keyLabel turns a key name into footer-style text: "enter" → "Enter",
// "ctrl+r" → "Ctrl+R".
func keyLabel(key string) string {
	if key == "" {
		return "?"
	}
	parts := strings.Split(key, "+")
	for i, p := range parts {
		if len(p) == 1 {
			parts[i] = strings.ToUpper(p)
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "+")
}
