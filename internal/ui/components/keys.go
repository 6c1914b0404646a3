package components

import (
	"strings"

	"github.com/abhisek/pteprep/internal/ui/theme"
)

// KeyButton is an on-screen action bound to a key.
type KeyButton struct {
	Key    string
	Label  string
	Active bool
}

// KeyBar renders buttons in a row. Inactive buttons are dimmed.
func KeyBar(buttons ...KeyButton) string {
	parts := make([]string, 0, len(buttons))
	for _, b := range buttons {
		text := "[" + b.Key + "] " + b.Label
		if b.Active {
			parts = append(parts, theme.KeyActive.Render(text))
		} else {
			parts = append(parts, theme.KeyInactive.Render(text))
		}
	}
	return strings.Join(parts, " ")
}
