// Package inbox lists notifications.
package inbox

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pteprep/internal/app"
	"github.com/abhisek/pteprep/internal/notify"
	"github.com/abhisek/pteprep/internal/screen"
	"github.com/abhisek/pteprep/internal/ui/layout"
	"github.com/abhisek/pteprep/internal/ui/theme"
)

// Screen is the notification list.
type Screen struct {
	state    *app.State
	selected int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the inbox screen.
func New(st *app.State) *Screen { return &Screen{state: st} }

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Notifications" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Mark read"},
		{Key: "A", Description: "Mark all read"},
		{Key: "D", Description: "Dismiss"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	in := s.state.Inbox()
	items := in.Items()
	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(items)-1 {
			s.selected++
		}
	case "enter":
		if s.selected < len(items) {
			in.MarkRead(items[s.selected].ID)
		}
	case "a":
		in.MarkAllRead()
	case "d":
		if s.selected < len(items) {
			in.Remove(items[s.selected].ID)
			s.selected = max(0, min(s.selected, len(in.Items())-1))
		}
	}
	return s, nil
}

func kindStyle(k notify.Kind) string {
	switch k {
	case notify.KindSuccess:
		return theme.Done.Render("●")
	case notify.KindWarning:
		return theme.Danger.Render("●")
	case notify.KindReminder:
		return theme.Title.Render("●")
	}
	return theme.Subtitle.Render("●")
}

func (s *Screen) View(width, height int) string {
	items := s.state.Inbox().Items()
	if len(items) == 0 {
		return theme.Hint.Render("No notifications. Reminders appear here while the app is open.")
	}
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d unread", s.state.Inbox().Unread())) + "\n\n")
	for i, n := range items {
		cursor := "  "
		title := theme.Body.Render(n.Title)
		if !n.Read {
			title = theme.Heading.Render(n.Title)
		}
		if i == s.selected {
			cursor = theme.Selected.Render("▸ ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s\n", cursor, kindStyle(n.Kind), title,
			theme.Hint.Render(n.Timestamp.Format("Jan 2 15:04"))))
		msg := "    " + n.Message
		if n.Action != "" {
			msg += "  → " + n.Action
		}
		b.WriteString(theme.Subtitle.Render(msg) + "\n")
	}
	return b.String()
}
