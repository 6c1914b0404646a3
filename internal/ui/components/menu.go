package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pteprep/internal/ui/theme"
)

// MenuItem is one entry of a Menu.
type MenuItem struct {
	Label    string
	Hint     string        // dim text after the label
	Badge    func() string // live text after the label, e.g. an unread count
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list of actions. Items are numbered; pressing a
// number runs that item directly.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu selects the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.move(1)
	return m
}

// move steps the selection by dir, skipping disabled items and wrapping.
func (m *Menu) move(dir int) {
	n := len(m.Items)
	for step := 1; step <= n; step++ {
		i := ((m.Selected+dir*step)%n + n) % n
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) run(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	item := m.Items[i]
	if item.Disabled || item.Action == nil {
		return nil
	}
	return item.Action()
}

// Update handles arrow keys, enter and number shortcuts.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter":
		return m, m.run(m.Selected)
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= min(9, len(m.Items)) {
			if !m.Items[n-1].Disabled {
				m.Selected = n - 1
			}
			return m, m.run(n - 1)
		}
	}
	return m, nil
}

// View renders the menu, one item per line.
func (m Menu) View() string {
	var b strings.Builder
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	for i, item := range m.Items {
		num := "  "
		if i < 9 {
			num = strconv.Itoa(i+1) + " "
		}
		label := item.Label
		if item.Badge != nil {
			if badge := item.Badge(); badge != "" {
				label += " (" + badge + ")"
			}
		}
		style := lipgloss.NewStyle().Foreground(theme.Text)
		cursor := "  "
		switch {
		case item.Disabled:
			style = dim
		case i == m.Selected:
			cursor = "▸ "
			style = theme.Selected
		}
		b.WriteString(dim.Render(num) + style.Render(cursor+label))
		if item.Hint != "" {
			b.WriteString(dim.Render("  " + item.Hint))
		}
		b.WriteString("\n")
	}
	return b.String()
}
