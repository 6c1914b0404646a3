// Package taskguide lists today's tasks with their counters, the per-task
// guide, and the entry point to practice.
package taskguide

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pteprep/internal/app"
	"github.com/abhisek/pteprep/internal/router"
	"github.com/abhisek/pteprep/internal/screen"
	practicescreen "github.com/abhisek/pteprep/internal/screens/practice"
	"github.com/abhisek/pteprep/internal/tasks"
	"github.com/abhisek/pteprep/internal/ui/layout"
	"github.com/abhisek/pteprep/internal/ui/theme"
)

// Filters in the order the f key cycles through them.
var Filters = []string{
	"all",
	string(tasks.High), string(tasks.Medium), string(tasks.Low),
	string(tasks.Speaking), string(tasks.Writing), string(tasks.Reading), string(tasks.Listening),
}

// Screen is the task guide.
type Screen struct {
	state    *app.State
	filter   int
	selected int
	detail   bool
	err      string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.InputCapturer = (*Screen)(nil)

// New creates the task guide showing every task.
func New(st *app.State) *Screen {
	return &Screen{state: st}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Today's Tasks" }

// CapturesInput keeps Esc on this screen while a task guide is open.
func (s *Screen) CapturesInput() bool { return s.detail }

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.detail {
		return []layout.KeyHint{
			{Key: "P", Description: "Practice"},
			{Key: "+/-", Description: "Count"},
			{Key: "Esc", Description: "Back to list"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "+/-", Description: "Count"},
		{Key: "Enter", Description: "Guide"},
		{Key: "P", Description: "Practice"},
		{Key: "F", Description: "Filter"},
		{Key: "Esc", Description: "Back"},
	}
}

// Visible returns the tasks matching the current filter.
func (s *Screen) Visible() []tasks.Task {
	b := s.state.Board()
	if b == nil {
		return nil
	}
	return b.Filter(Filters[s.filter])
}

func (s *Screen) current() (tasks.Task, bool) {
	list := s.Visible()
	if s.selected < 0 || s.selected >= len(list) {
		return tasks.Task{}, false
	}
	return list[s.selected], true
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	s.err = ""
	n := len(s.Visible())

	switch kmsg.String() {
	case "esc":
		s.detail = false
	case "up", "k":
		if !s.detail && s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if !s.detail && s.selected < n-1 {
			s.selected++
		}
	case "f":
		if !s.detail {
			s.filter = (s.filter + 1) % len(Filters)
			s.selected = 0
		}
	case "enter":
		if _, ok := s.current(); ok {
			s.detail = !s.detail
		}
	case "+", "=":
		s.count(s.state.IncrementTask)
	case "-":
		s.count(s.state.DecrementTask)
	case "p":
		if t, ok := s.current(); ok {
			next := practicescreen.New(s.state, t.ID)
			return s, router.Navigate(router.PushScreenMsg{Screen: next})
		}
	}
	return s, nil
}

func (s *Screen) count(fn func(context.Context, string) (tasks.Task, error)) {
	t, ok := s.current()
	if !ok {
		return
	}
	if _, err := fn(context.Background(), t.ID); err != nil {
		s.err = err.Error()
	}
}

func (s *Screen) View(width, height int) string {
	if s.state.Board() == nil {
		return theme.Danger.Render("Complete onboarding first.")
	}
	if s.detail {
		if t, ok := s.current(); ok {
			return s.renderDetail(t, width)
		}
	}

	var b strings.Builder
	done, target := s.state.Board().Totals()
	b.WriteString(theme.Heading.Render("Filter: "+Filters[s.filter]) +
		theme.Subtitle.Render(fmt.Sprintf("   %d / %d items done today", done, target)) + "\n\n")

	list := s.Visible()
	if len(list) == 0 {
		b.WriteString(theme.Hint.Render("No tasks match this filter."))
	}
	for i, t := range list {
		b.WriteString(s.renderRow(t, i == s.selected) + "\n")
	}
	if s.err != "" {
		b.WriteString("\n" + theme.Danger.Render(s.err))
	}
	return b.String()
}

func (s *Screen) renderRow(t tasks.Task, selected bool) string {
	cursor := "  "
	name := theme.Unselected.Render(fmt.Sprintf("%-28s", t.Name))
	if selected {
		cursor = theme.Selected.Render("▸ ")
		name = theme.Selected.Render(fmt.Sprintf("%-28s", t.Name))
	}
	counter := fmt.Sprintf("%3d / %-3d", t.Completed, t.DailyTarget)
	if t.IsComplete() {
		counter = theme.Done.Render(counter + " ✓")
	}
	return cursor + name + "  " +
		theme.SectionStyle(string(t.Section)).Render(fmt.Sprintf("%-10s", t.Section.Label())) + " " +
		theme.PriorityStyle(string(t.Priority)).Render(fmt.Sprintf("%-7s", t.Priority)) + " " +
		counter
}

func (s *Screen) renderDetail(t tasks.Task, width int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(t.Name) + "  " +
		theme.SectionStyle(string(t.Section)).Render(t.Section.Label()) + "  " +
		theme.PriorityStyle(string(t.Priority)).Render(string(t.Priority)+" priority") + "\n")
	b.WriteString(theme.Body.Render(t.Description) + "\n\n")
	b.WriteString(fmt.Sprintf("Today: %d / %d", t.Completed, t.DailyTarget))
	if t.IsComplete() {
		b.WriteString("  " + theme.Done.Render("target reached"))
	} else {
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  (%d to go)", t.Remaining())))
	}
	b.WriteString("\n\n")

	cw := max(30, (width-10)/3)
	cols := []string{
		bullets("Scoring criteria", t.ScoringCriteria, cw),
		bullets("Common mistakes", t.CommonMistakes, cw),
		bullets("Tips", t.Tips, cw),
	}
	b.WriteString(layout.Columns(width, cols...))
	if s.err != "" {
		b.WriteString("\n" + theme.Danger.Render(s.err))
	}
	return b.String()
}

func bullets(title string, items []string, width int) string {
	lines := []string{theme.Heading.Render(title)}
	for _, it := range items {
		lines = append(lines, lipgloss.NewStyle().Width(width).Render("• "+it))
	}
	return strings.Join(lines, "\n")
}
