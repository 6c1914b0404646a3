// Package dashboard is the home screen: today's figures, the focus timer
// and the menu into every other view.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pteprep/internal/app"
	"github.com/abhisek/pteprep/internal/focus"
	"github.com/abhisek/pteprep/internal/progress"
	"github.com/abhisek/pteprep/internal/router"
	"github.com/abhisek/pteprep/internal/screen"
	"github.com/abhisek/pteprep/internal/screens/inbox"
	mockscreen "github.com/abhisek/pteprep/internal/screens/mocktest"
	"github.com/abhisek/pteprep/internal/screens/onboarding"
	plannerscreen "github.com/abhisek/pteprep/internal/screens/planner"
	progressscreen "github.com/abhisek/pteprep/internal/screens/progress"
	"github.com/abhisek/pteprep/internal/screens/reference"
	"github.com/abhisek/pteprep/internal/screens/taskguide"
	vocabscreen "github.com/abhisek/pteprep/internal/screens/vocab"
	"github.com/abhisek/pteprep/internal/ui/components"
	"github.com/abhisek/pteprep/internal/ui/layout"
	"github.com/abhisek/pteprep/internal/ui/theme"
)

// Screen is the dashboard.
type Screen struct {
	state      *app.State
	menu       components.Menu
	confirming bool // reset confirmation shown
	err        string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

func push(s screen.Screen) tea.Cmd {
	return router.Navigate(router.PushScreenMsg{Screen: s})
}

// New creates the dashboard.
func New(st *app.State) *Screen {
	items := []components.MenuItem{
		{Label: "Today's Tasks", Hint: "practice guide and counters", Action: func() tea.Cmd { return push(taskguide.New(st)) }},
		{Label: "Mock Tests", Hint: "full 70-question exam", Action: func() tea.Cmd { return push(mockscreen.New(st)) }},
		{Label: "Study Planner", Hint: "this week's sessions", Action: func() tea.Cmd { return push(plannerscreen.New(st)) }},
		{Label: "Vocabulary", Hint: "academic word cards", Action: func() tea.Cmd { return push(vocabscreen.New(st)) }},
		{Label: "Progress", Hint: "analytics and score calculator", Action: func() tea.Cmd { return push(progressscreen.New(st)) }},
		{Label: "Quick Reference", Hint: "templates and timings", Action: func() tea.Cmd { return push(reference.New()) }},
		{Label: "Notifications", Badge: func() string { return unreadBadge(st) }, Action: func() tea.Cmd { return push(inbox.New(st)) }},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	}
	return &Screen{state: st, menu: components.NewMenu(items)}
}

func unreadBadge(st *app.State) string {
	if n := st.Inbox().Unread(); n > 0 {
		return fmt.Sprintf("%d unread", n)
	}
	return ""
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Dashboard" }

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset profile"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓/1-8", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Space", Description: "Focus timer"},
		{Key: "R", Description: "Reset timer"},
		{Key: "X", Description: "Reset progress"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.confirming {
		switch kmsg.String() {
		case "y", "Y":
			s.confirming = false
			return s, s.reset()
		case "n", "N", "esc":
			s.confirming = false
		}
		return s, nil
	}

	switch kmsg.String() {
	case "space", " ":
		s.state.Focus().Toggle()
		return s, nil
	case "r":
		s.state.Focus().Reset()
		return s, nil
	case "x", "X":
		s.confirming = true
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) reset() tea.Cmd {
	if err := s.state.Reset(context.Background()); err != nil {
		s.err = err.Error()
		return nil
	}
	st := s.state
	next := onboarding.New(st, func() screen.Screen { return New(st) })
	return router.Navigate(router.ReplaceScreenMsg{Screen: next})
}

func (s *Screen) View(width, height int) string {
	sum, err := s.state.Summary()
	if err != nil {
		return theme.Danger.Render(err.Error())
	}
	p, _ := s.state.Profile()

	colWidth := max(36, (width-8)/2)
	if layout.IsCompactWidth(width) {
		colWidth = width - 4
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		s.renderOverview(sum, p.TargetScore, colWidth),
		s.renderSections(sum, colWidth),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		s.renderFocus(colWidth),
		theme.Card.Width(colWidth).Render(s.menu.View()),
	)

	out := layout.Columns(width, left, right)
	if s.confirming {
		out = theme.Danger.Render("Reset your profile and today's task progress? (y/n)") + "\n\n" + out
	}
	if s.err != "" {
		out = theme.Danger.Render(s.err) + "\n\n" + out
	}
	if latest := s.latestUnread(); latest != "" && !layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) {
		out += "\n" + theme.Hint.Render("✉ "+latest)
	}
	return out
}

func (s *Screen) latestUnread() string {
	for _, n := range s.state.Inbox().Items() {
		if !n.Read {
			return n.Title + ": " + n.Message
		}
	}
	return ""
}

func (s *Screen) renderOverview(sum progress.Summary, target, width int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("Day %d of %d", sum.Day, progress.PlanDays)))
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  ·  %d days left", sum.RemainingDays)) + "\n")
	b.WriteString(theme.Heading.Render(fmt.Sprintf("Week %d: %s", sum.Phase.Week, sum.Phase.Name)) + "\n")
	b.WriteString(theme.Hint.Render(sum.Phase.Description) + "\n\n")

	b.WriteString(fmt.Sprintf("Estimated score  %s  / target %d\n",
		theme.Title.Render(fmt.Sprint(sum.EstimatedScore)), target))
	b.WriteString(fmt.Sprintf("Tasks at target  %d / %d\n", sum.TasksComplete, sum.TasksTotal))
	b.WriteString(fmt.Sprintf("High priority    %d / %d\n", sum.HighComplete, sum.HighTotal))
	if pl := s.state.Planner(); pl != nil {
		done, total := pl.TodayStats()
		b.WriteString(fmt.Sprintf("Study sessions   %d / %d today\n", done, total))
	}
	b.WriteString("\n")
	bar := components.NewProgressBar("Today", sum.TodayCompletion/100, true, width-4)
	bar.Color = theme.Success
	b.WriteString(bar.View())
	return theme.Card.Width(width).Render(b.String())
}

func (s *Screen) renderSections(sum progress.Summary, width int) string {
	lines := []string{theme.Heading.Render("Sections")}
	for _, sec := range sum.Sections {
		bar := components.NewProgressBar(sec.Section.Label(), sec.Percent()/100, true, width-4)
		bar.LabelWidth = 9
		bar.Color = theme.SectionColor(string(sec.Section))
		lines = append(lines, bar.View())
	}
	return theme.Card.Width(width).Render(strings.Join(lines, "\n"))
}

func (s *Screen) renderFocus(width int) string {
	f := s.state.Focus()
	state := "paused"
	switch {
	case f.Completed():
		state = theme.Done.Render("complete!")
	case f.Running():
		state = theme.Done.Render("running")
	}
	bar := components.NewProgressBar("", f.Progress(), true, width-4)
	bar.Color = theme.Secondary
	body := theme.Heading.Render("Focus timer") + "  " + state + "\n" +
		theme.Title.Render(focus.Clock(f.TimeLeft())) +
		theme.Subtitle.Render(fmt.Sprintf(" of %d min", f.Total()/60)) + "\n" +
		bar.View() + "\n" +
		components.KeyBar(
			components.KeyButton{Key: "space", Label: startLabel(f), Active: !f.Completed()},
			components.KeyButton{Key: "r", Label: "Reset", Active: true},
		)
	return theme.Card.Width(width).Render(body)
}

func startLabel(f *focus.Timer) string {
	if f.Running() {
		return "Pause"
	}
	return "Start"
}
