// Package screen defines what the router stacks: one full-window view
// such as the dashboard, a practice attempt or the planner.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pteprep/internal/ui/layout"
)

// Screen is a view between the header and the footer.
type Screen interface {
	// Init runs when the screen is pushed or swapped in. Timed screens
	// start their tick chain here.
	Init() tea.Cmd

	// Update receives every message while the screen is on top.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area of the given size.
	View(width, height int) string

	// Title is the screen's breadcrumb in the header.
	Title() string
}

// KeyHintProvider replaces the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens that edit text or step through
// a form. While CapturesInput reports true, Esc goes to the screen
// instead of closing it.
type InputCapturer interface {
	CapturesInput() bool
}
