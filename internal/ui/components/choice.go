package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pteprep/internal/ui/theme"
)

// Choice is one option of a ChoiceList.
type Choice struct {
	Label       string
	Description string
}

// ChoiceList is a single-answer selector with optional descriptions.
// Number keys jump straight to an option.
type ChoiceList struct {
	Question string
	Options  []Choice
	Selected int
}

// NewChoiceList creates a selector with the option at initial preselected.
func NewChoiceList(question string, options []Choice, initial int) ChoiceList {
	if initial < 0 || initial >= len(options) {
		initial = 0
	}
	return ChoiceList{Question: question, Options: options, Selected: initial}
}

// Update handles keyboard navigation. chosen is true when the learner
// confirms an option with Enter or its number key.
func (c ChoiceList) Update(msg tea.Msg) (next ChoiceList, chosen bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, false
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		return c, true
	default:
		if len(key) == 1 && key[0] >= '1' && int(key[0]-'1') < len(c.Options) {
			c.Selected = int(key[0] - '1')
			return c, true
		}
	}
	return c, false
}

// View renders the question and options.
func (c ChoiceList) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Question) + "\n\n"
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)
	for i, opt := range c.Options {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == c.Selected {
			prefix = "▸ "
			style = theme.Selected
		}
		s += style.Render(fmt.Sprintf("%s%d) %s", prefix, i+1, opt.Label))
		if opt.Description != "" {
			s += desc.Render("  " + opt.Description)
		}
		s += "\n"
	}
	return s
}
