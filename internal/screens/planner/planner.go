// Package planner is the weekly study planner view.
package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pteprep/internal/app"
	"github.com/abhisek/pteprep/internal/planner"
	"github.com/abhisek/pteprep/internal/screen"
	"github.com/abhisek/pteprep/internal/ui/layout"
	"github.com/abhisek/pteprep/internal/ui/theme"
)

// Screen shows the seven days starting today and their sessions.
type Screen struct {
	state      *app.State
	day        int // index into the week
	selected   int
	form       *form
	confirming bool // reseed confirmation
	err        string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.InputCapturer = (*Screen)(nil)

// New creates the planner on today.
func New(st *app.State) *Screen {
	return &Screen{state: st}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Study Planner" }

// CapturesInput keeps Esc on the screen while the form is open.
func (s *Screen) CapturesInput() bool { return s.form != nil || s.confirming }

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.form != nil {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if s.confirming {
		return []layout.KeyHint{{Key: "Y", Description: "Replace plan"}, {Key: "N", Description: "Cancel"}}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Day"},
		{Key: "↑↓", Description: "Session"},
		{Key: "Space", Description: "Done"},
		{Key: "N", Description: "New"},
		{Key: "E", Description: "Edit"},
		{Key: "D", Description: "Delete"},
		{Key: "S", Description: "Reseed"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) week() []string {
	return planner.WeekDates(s.state.Now())
}

// Date is the selected date.
func (s *Screen) Date() string {
	return s.week()[s.day]
}

// Sessions lists the selected day's sessions in start order.
func (s *Screen) Sessions() []planner.Session {
	pl := s.state.Planner()
	if pl == nil {
		return nil
	}
	return pl.ForDate(s.Date())
}

func (s *Screen) current() (planner.Session, bool) {
	list := s.Sessions()
	if s.selected < 0 || s.selected >= len(list) {
		return planner.Session{}, false
	}
	return list[s.selected], true
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	pl := s.state.Planner()
	if pl == nil {
		return s, nil
	}
	if s.form != nil {
		return s, s.updateForm(pl, msg)
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	ctx := context.Background()
	s.err = ""

	if s.confirming {
		switch kmsg.String() {
		case "y", "Y":
			s.fail(s.state.ReseedPlanner(ctx))
			s.day, s.selected, s.confirming = 0, 0, false
		case "n", "N", "esc":
			s.confirming = false
		}
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if s.day > 0 {
			s.day--
			s.selected = 0
		}
	case "right", "l":
		if s.day < planner.SeedDays-1 {
			s.day++
			s.selected = 0
		}
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.Sessions())-1 {
			s.selected++
		}
	case "space", " ":
		if cur, ok := s.current(); ok {
			_, err := pl.ToggleComplete(ctx, cur.ID)
			s.fail(err)
		}
	case "d":
		if cur, ok := s.current(); ok {
			s.fail(pl.Delete(ctx, cur.ID))
			s.selected = max(0, min(s.selected, len(s.Sessions())-1))
		}
	case "n":
		s.form = newForm(planner.Session{Date: s.Date(), StartTime: "09:00", EndTime: "10:00"})
		return s, s.form.fields[fieldDate].Focus()
	case "e":
		if cur, ok := s.current(); ok {
			s.form = newForm(cur)
			return s, s.form.fields[fieldDate].Focus()
		}
	case "s":
		s.confirming = true
	}
	return s, nil
}

func (s *Screen) updateForm(pl *planner.Planner, msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		s.form = nil
		return nil
	}
	cmd, submitted := s.form.update(msg)
	if !submitted {
		return cmd
	}

	ctx := context.Background()
	for i := range s.form.fields {
		s.form.fields[i].SetError("")
	}
	d := s.form.draft()
	var (
		saved planner.Session
		err   error
	)
	if s.form.editing == "" {
		saved, err = pl.Create(ctx, d)
	} else {
		saved, err = pl.Update(ctx, s.form.editing, d)
	}
	if err != nil {
		s.form.fail(err)
		return nil
	}
	s.form = nil
	s.focusSession(saved)
	return nil
}

// focusSession moves the cursor onto saved if it is within the week.
func (s *Screen) focusSession(saved planner.Session) {
	for i, date := range s.week() {
		if date != saved.Date {
			continue
		}
		s.day = i
		for j, sess := range s.Sessions() {
			if sess.ID == saved.ID {
				s.selected = j
			}
		}
	}
}

func (s *Screen) fail(err error) {
	if err != nil {
		s.err = err.Error()
	}
}

func (s *Screen) View(width, height int) string {
	if s.state.Planner() == nil {
		return theme.Danger.Render("Complete onboarding first.")
	}
	if s.form != nil {
		return s.form.view()
	}

	var b strings.Builder
	b.WriteString(s.renderWeek() + "\n\n")

	date := s.Date()
	heading := date
	if t, err := time.Parse(planner.DateLayout, date); err == nil {
		heading = t.Format("Monday, 2 January")
	}
	b.WriteString(theme.Heading.Render(heading) + "\n\n")

	list := s.Sessions()
	if len(list) == 0 {
		b.WriteString(theme.Hint.Render("No sessions planned. Press N to add one."))
	}
	for i, sess := range list {
		b.WriteString(renderSession(sess, i == s.selected) + "\n")
	}

	if s.confirming {
		b.WriteString("\n" + theme.Danger.Render("Replace every session with a fresh starter week? (y/n)"))
	}
	if s.err != "" {
		b.WriteString("\n" + theme.Danger.Render(s.err))
	}
	return b.String()
}

func (s *Screen) renderWeek() string {
	pl := s.state.Planner()
	parts := make([]string, 0, planner.SeedDays)
	for i, date := range s.week() {
		label := date[5:]
		if t, err := time.Parse(planner.DateLayout, date); err == nil {
			label = t.Format("Mon 02")
		}
		done, total := 0, 0
		for _, sess := range pl.ForDate(date) {
			total++
			if sess.Completed {
				done++
			}
		}
		cell := fmt.Sprintf("%s %d/%d", label, done, total)
		switch {
		case i == s.day:
			parts = append(parts, theme.KeyActive.Render(cell))
		case total > 0 && done == total:
			parts = append(parts, theme.Done.Render(" "+cell+" "))
		default:
			parts = append(parts, theme.KeyInactive.Render(cell))
		}
	}
	return strings.Join(parts, " ")
}

func renderSession(sess planner.Session, selected bool) string {
	check := "[ ]"
	if sess.Completed {
		check = theme.Done.Render("[✓]")
	}
	cursor := "  "
	when := fmt.Sprintf("%s–%s", sess.StartTime, sess.EndTime)
	if selected {
		cursor = theme.Selected.Render("▸ ")
		when = theme.Selected.Render(when)
	}
	line := fmt.Sprintf("%s%s %s  %s", cursor, check, when,
		theme.Subtitle.Render(fmt.Sprintf("(%s)", formatDuration(sess.Duration()))))
	line += "  " + theme.Body.Render(strings.Join(sess.Tasks, ", "))
	if sess.Notes != "" {
		line += "\n      " + theme.Hint.Render(sess.Notes)
	}
	return line
}

func formatDuration(d time.Duration) string {
	h, m := int(d.Hours()), int(d.Minutes())%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%02dm", h, m)
}
