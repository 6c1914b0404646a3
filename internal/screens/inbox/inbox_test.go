package inbox

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pteprep/internal/app/apptest"
)

func key(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

func TestMarkReadAndDismiss(t *testing.T) {
	env := apptest.Onboarded(t)
	env.Now = time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC) // day 7, 08:00
	env.State.PollNotifications()

	in := env.State.Inbox()
	if in.Unread() < 2 {
		t.Fatalf("unread = %d, want morning and week notifications", in.Unread())
	}
	total := len(in.Items())

	s := New(env.State)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if in.Unread() != total-1 {
		t.Errorf("unread = %d after mark read", in.Unread())
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(key('d'))
	if len(in.Items()) != total-1 {
		t.Errorf("items = %d after dismiss", len(in.Items()))
	}

	s.Update(key('a'))
	if in.Unread() != 0 {
		t.Errorf("unread = %d after mark all", in.Unread())
	}
}

func TestEmptyInbox(t *testing.T) {
	env := apptest.New(t)
	s := New(env.State)
	s.Update(key('d'))
	if s.View(80, 20) == "" {
		t.Error("empty inbox should render a hint")
	}
}
