// Package onboarding collects the learner's target score, daily hours and
// English level before any other screen is reachable.
package onboarding

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pteprep/internal/app"
	"github.com/abhisek/pteprep/internal/profile"
	"github.com/abhisek/pteprep/internal/router"
	"github.com/abhisek/pteprep/internal/screen"
	"github.com/abhisek/pteprep/internal/ui/components"
	"github.com/abhisek/pteprep/internal/ui/layout"
	"github.com/abhisek/pteprep/internal/ui/theme"
)

type step int

const (
	stepTarget step = iota
	stepHours
	stepLevel
	stepConfirm
)

// Screen walks through the three onboarding questions.
type Screen struct {
	state  *app.State
	next   func() screen.Screen
	step   step
	target components.ChoiceList
	hours  components.ChoiceList
	level  components.ChoiceList
	err    string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.InputCapturer = (*Screen)(nil)

// New creates the onboarding screen. next builds the screen shown once the
// profile is saved.
func New(st *app.State, next func() screen.Screen) *Screen {
	d := profile.Defaults()
	levels := make([]components.Choice, len(profile.Levels))
	levelIdx := 0
	for i, l := range profile.Levels {
		levels[i] = components.Choice{Label: l.Label(), Description: profile.LevelDescriptions[l]}
		if l == d.CurrentLevel {
			levelIdx = i
		}
	}
	return &Screen{
		state:  st,
		next:   next,
		target: components.NewChoiceList("What's your target PTE score?", choices(profile.TargetOptions, true), indexOf(profile.TargetOptions, d.TargetScore)),
		hours:  components.NewChoiceList("How many hours can you study daily?", choices(profile.HourOptions, false), indexOf(profile.HourOptions, d.DailyHours)),
		level:  components.NewChoiceList("What's your current English level?", levels, levelIdx),
	}
}

func choices(opts []profile.Option, withValue bool) []components.Choice {
	out := make([]components.Choice, len(opts))
	for i, o := range opts {
		label := o.Label
		if withValue {
			label = fmt.Sprintf("%d  %s", o.Value, o.Label)
		}
		out[i] = components.Choice{Label: label, Description: o.Description}
	}
	return out
}

func indexOf(opts []profile.Option, v int) int {
	for i, o := range opts {
		if o.Value == v {
			return i
		}
	}
	return 0
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Welcome" }

// CapturesInput lets Esc step back through the questions.
func (s *Screen) CapturesInput() bool { return s.step > stepTarget }

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.step == stepConfirm {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start my plan"},
			{Key: "Esc", Description: "Back"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "1-4", Description: "Pick"},
		{Key: "Enter", Description: "Next"},
	}
	if s.step > stepTarget {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Input returns the answers chosen so far.
func (s *Screen) Input() profile.Input {
	return profile.Input{
		TargetScore: profile.TargetOptions[s.target.Selected].Value,
		DailyHours:  profile.HourOptions[s.hours.Selected].Value,
		Level:       profile.Levels[s.level.Selected],
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if kmsg.String() == "esc" {
		if s.step > stepTarget {
			s.step--
			s.err = ""
		}
		return s, nil
	}

	var chosen bool
	switch s.step {
	case stepTarget:
		s.target, chosen = s.target.Update(msg)
	case stepHours:
		s.hours, chosen = s.hours.Update(msg)
	case stepLevel:
		s.level, chosen = s.level.Update(msg)
	case stepConfirm:
		if kmsg.String() == "enter" {
			return s, s.finish()
		}
	}
	if chosen {
		s.step++
	}
	return s, nil
}

func (s *Screen) finish() tea.Cmd {
	if _, err := s.state.Onboard(context.Background(), s.Input()); err != nil {
		s.err = err.Error()
		return nil
	}
	next := s.next()
	return router.Navigate(router.ReplaceScreenMsg{Screen: next})
}

func (s *Screen) View(width, height int) string {
	cardWidth := min(width-4, 72)
	var b strings.Builder
	b.WriteString(renderBanner(cardWidth, s.step == stepTarget) + "\n\n")
	b.WriteString(theme.Title.Render("Welcome to PTE Prep") + "\n")
	b.WriteString(theme.Subtitle.Render("Your 30-day study plan starts with three questions.") + "\n\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Step %d of 3", min(int(s.step)+1, 3))) + "\n\n")

	switch s.step {
	case stepTarget:
		b.WriteString(s.target.View())
	case stepHours:
		b.WriteString(s.hours.View())
	case stepLevel:
		b.WriteString(s.level.View())
	case stepConfirm:
		in := s.Input()
		b.WriteString(theme.Heading.Render("Your plan") + "\n\n")
		b.WriteString(fmt.Sprintf("  Target score   %d\n", in.TargetScore))
		b.WriteString(fmt.Sprintf("  Daily hours    %d\n", in.DailyHours))
		b.WriteString(fmt.Sprintf("  Level          %s\n\n", in.Level.Label()))
		b.WriteString(theme.Hint.Render("Press Enter to generate today's tasks."))
	}
	if s.err != "" {
		b.WriteString("\n\n" + theme.Danger.Render(s.err))
	}

	card := theme.Card.Width(cardWidth).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
