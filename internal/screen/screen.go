package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/keedam/preloadquiz/internal/ui/layout"
)

// Screen is one page of the terminal UI. Screens are swapped by the router
// and never talk to each other directly.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body between header and footer.
	View(width, height int) string

	// Title is shown in the center of the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider lets a screen fill the right side of the header.
type StatusProvider interface {
	Status() string
}
