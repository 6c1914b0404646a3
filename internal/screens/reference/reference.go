// Package reference shows the quick-reference cards.
package reference

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pteprep/internal/reference"
	"github.com/abhisek/pteprep/internal/screen"
	"github.com/abhisek/pteprep/internal/ui/layout"
	"github.com/abhisek/pteprep/internal/ui/theme"
)

var tabNames = []string{"Templates", "Timing", "Phrases", "Symbols"}

// Screen is the quick-reference view.
type Screen struct {
	tab      int
	template int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the quick-reference screen.
func New() *Screen { return &Screen{} }

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Quick Reference" }

func (s *Screen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab", Description: "Next card"}}
	if s.tab == 0 {
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Template"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "tab", "right", "l":
		s.tab = (s.tab + 1) % len(tabNames)
	case "shift+tab", "left", "h":
		s.tab = (s.tab + len(tabNames) - 1) % len(tabNames)
	case "up", "k":
		if s.template > 0 {
			s.template--
		}
	case "down", "j":
		if s.template < len(reference.Templates())-1 {
			s.template++
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		if i == s.tab {
			parts[i] = theme.KeyActive.Render(name)
		} else {
			parts[i] = theme.KeyInactive.Render(name)
		}
	}
	out := strings.Join(parts, " ") + "\n\n"

	switch s.tab {
	case 0:
		out += s.renderTemplates(width)
	case 1:
		out += renderTiming()
	case 2:
		out += renderPhrases(width)
	case 3:
		out += renderSymbols()
	}
	return out
}

func (s *Screen) renderTemplates(width int) string {
	list := reference.Templates()
	var names strings.Builder
	for i, t := range list {
		if i == s.template {
			names.WriteString(theme.Selected.Render("▸ "+t.Title) + "\n")
		} else {
			names.WriteString(theme.Unselected.Render("  "+t.Title) + "\n")
		}
	}
	body := lipgloss.NewStyle().Width(max(40, width-40)).Render(list[s.template].Body)
	return layout.Columns(width, names.String(), theme.Card.Render(body))
}

func renderTiming() string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render(fmt.Sprintf("%-26s %-12s %-12s", "Task", "Preparation", "Response")) + "\n")
	for _, r := range reference.TimingGuide() {
		b.WriteString(fmt.Sprintf("%-26s %-12s %-12s", r.Task, r.Preparation, r.Response))
		if r.Tip != "" {
			b.WriteString(theme.Hint.Render(" " + r.Tip))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderPhrases(width int) string {
	blocks := make([]string, 0, 4)
	for _, g := range reference.Phrases() {
		lines := []string{theme.Heading.Render(g.Name)}
		for _, p := range g.Phrases {
			lines = append(lines, "• "+p)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	if layout.IsCompactWidth(width) {
		return strings.Join(blocks, "\n\n")
	}
	half := (len(blocks) + 1) / 2
	return layout.Columns(width,
		strings.Join(blocks[:half], "\n\n"),
		strings.Join(blocks[half:], "\n\n"))
}

func renderSymbols() string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render("Note-taking symbols") + "\n")
	for _, sym := range reference.Symbols() {
		b.WriteString(fmt.Sprintf("  %-4s %s\n", sym.Symbol, sym.Meaning))
	}
	return b.String()
}
