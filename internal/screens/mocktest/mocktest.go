// Package mocktest shows the mock test schedule and history and runs a full
// timed mock test.
package mocktest

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pteprep/internal/app"
	"github.com/abhisek/pteprep/internal/focus"
	engine "github.com/abhisek/pteprep/internal/mocktest"
	"github.com/abhisek/pteprep/internal/progress"
	"github.com/abhisek/pteprep/internal/screen"
	"github.com/abhisek/pteprep/internal/ui/components"
	"github.com/abhisek/pteprep/internal/ui/layout"
	"github.com/abhisek/pteprep/internal/ui/theme"
)

type mode int

const (
	modeOverview mode = iota
	modeRunning
	modeResult
)

// pending is the action awaiting a y/n answer.
type pending int

const (
	pendingNone pending = iota
	pendingAbandon
	pendingClear
)

type timerTickMsg struct {
	gen int
	at  time.Time
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{gen: gen, at: t}
	})
}

// Screen is the mock test hub.
type Screen struct {
	state   *app.State
	mode    mode
	test    *engine.Engine
	gen     int
	input   components.TextInput
	confirm pending
	err     string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.InputCapturer = (*Screen)(nil)

// New creates the mock test screen on its overview.
func New(st *app.State) *Screen {
	return &Screen{state: st}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Mock Tests" }

// CapturesInput keeps Esc on the screen while a test is running.
func (s *Screen) CapturesInput() bool { return s.mode == modeRunning || s.confirm != pendingNone }

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.confirm != pendingNone {
		return []layout.KeyHint{{Key: "Y", Description: "Confirm"}, {Key: "N", Description: "Cancel"}}
	}
	switch s.mode {
	case modeRunning:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Ctrl+B", Description: "Previous"},
			{Key: "Ctrl+F", Description: "Finish"},
			{Key: "Esc", Description: "Abandon"},
		}
	case modeResult:
		return []layout.KeyHint{{Key: "Enter", Description: "Done"}, {Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "S", Description: "Start mock test"},
		{Key: "C", Description: "Clear history"},
		{Key: "Esc", Description: "Back"},
	}
}

// Test returns the running engine, nil on the overview.
func (s *Screen) Test() *engine.Engine { return s.test }

func (s *Screen) start() tea.Cmd {
	s.gen++
	s.err = ""
	s.test = s.state.StartMock(s.record)
	s.mode = modeRunning
	s.input = components.NewTextInput("Type your answer, or leave blank to skip", 0)
	return tea.Batch(tickCmd(s.gen), s.input.Init())
}

// record runs inside the engine's completion callback.
func (s *Screen) record(r engine.Result) {
	if err := s.state.RecordMock(context.Background(), r); err != nil {
		s.err = err.Error()
	}
	// A time-out can land while the abandon prompt is open.
	s.confirm = pendingNone
	s.mode = modeResult
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if msg.gen != s.gen || s.mode != modeRunning {
			return s, nil
		}
		s.test.Tick(1)
		if s.test.Done() {
			return s, nil
		}
		return s, tickCmd(s.gen)
	case tea.KeyMsg:
		if s.confirm != pendingNone {
			return s, s.handleConfirm(msg.String())
		}
		switch s.mode {
		case modeOverview:
			return s, s.handleOverviewKey(msg.String())
		case modeRunning:
			return s, s.handleRunningKey(msg)
		case modeResult:
			if msg.String() == "enter" {
				s.mode = modeOverview
				s.test = nil
			}
		}
	}
	return s, nil
}

func (s *Screen) handleConfirm(key string) tea.Cmd {
	switch key {
	case "y", "Y":
		action := s.confirm
		s.confirm = pendingNone
		switch {
		case action == pendingAbandon && s.mode == modeRunning:
			s.gen++
			s.mode, s.test = modeOverview, nil
		case action == pendingClear && s.mode == modeOverview:
			if err := s.state.ClearMockHistory(context.Background()); err != nil {
				s.err = err.Error()
			}
		}
	case "n", "N", "esc":
		s.confirm = pendingNone
	}
	return nil
}

func (s *Screen) handleOverviewKey(key string) tea.Cmd {
	switch key {
	case "s":
		return s.start()
	case "c":
		if len(s.state.History().Results) > 0 {
			s.confirm = pendingClear
		}
	}
	return nil
}

func (s *Screen) handleRunningKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.confirm = pendingAbandon
		return nil
	case "enter":
		_ = s.test.SetInput(s.input.Value())
		_ = s.test.Next()
		s.input.SetValue("")
		return nil
	case "ctrl+b":
		_ = s.test.Previous()
		s.input.SetValue("")
		return nil
	case "ctrl+f":
		_ = s.test.SetInput(s.input.Value())
		_ = s.test.Next()
		if !s.test.Done() {
			_ = s.test.Finish()
		}
		return nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *Screen) View(width, height int) string {
	var out string
	switch s.mode {
	case modeRunning:
		out = s.renderRunning(width)
	case modeResult:
		out = s.renderResult()
	default:
		out = s.renderOverview(width)
	}
	if s.confirm != pendingNone {
		q := "Clear all mock test history?"
		if s.confirm == pendingAbandon {
			q = "Abandon this mock test? Nothing will be saved."
		}
		out = theme.Danger.Render(q+" (y/n)") + "\n\n" + out
	}
	if s.err != "" {
		out += "\n\n" + theme.Danger.Render(s.err)
	}
	return out
}

func (s *Screen) renderOverview(width int) string {
	day := s.state.Day()
	var sched strings.Builder
	sched.WriteString(theme.Heading.Render("Mock test schedule") + "\n")
	for _, m := range s.state.MockSchedule() {
		status := theme.Hint.Render("locked")
		switch {
		case m.Recommended:
			status = theme.Done.Render("recommended now")
		case m.Available:
			status = theme.Body.Render("available")
		}
		sched.WriteString(fmt.Sprintf("Day %-3d %-22s %s\n", m.Day, m.Name, status))
		sched.WriteString(theme.Hint.Render("        "+m.Description) + "\n")
	}
	if day > 0 {
		sched.WriteString("\n" + theme.Subtitle.Render(fmt.Sprintf("You are on day %d.", day)))
	}

	var hist strings.Builder
	h := s.state.History()
	hist.WriteString(theme.Heading.Render("History") + "\n")
	if len(h.Results) == 0 {
		hist.WriteString(theme.Hint.Render("No mock tests yet. Press S to take your first."))
	}
	for i := len(h.Results) - 1; i >= 0; i-- {
		r := h.Results[i]
		hist.WriteString(fmt.Sprintf("%s  overall %s  S%d W%d R%d L%d\n", r.Date,
			theme.Title.Render(fmt.Sprintf("%2d", r.OverallScore)),
			r.Speaking, r.Writing, r.Reading, r.Listening))
	}
	if diff, ok := h.Improvement(); ok {
		style := theme.Done
		if diff < 0 {
			style = theme.Danger
		}
		hist.WriteString("\n" + style.Render(fmt.Sprintf("%+d since last test", diff)))
	}

	blue := engine.Blueprint()
	info := theme.Subtitle.Render(fmt.Sprintf("Full test: %d questions in %d sections, %d minutes.",
		engine.TotalQuestions(blue), len(blue), engine.TestDuration/60))

	return info + "\n\n" + layout.Columns(width, sched.String(), hist.String())
}

func (s *Screen) renderRunning(width int) string {
	q := s.test.Current()
	var b strings.Builder
	b.WriteString(theme.SectionStyle(strings.ToLower(q.Section)).Render(q.Section) +
		theme.Subtitle.Render(fmt.Sprintf("  ·  %s  ·  question %d of %d", q.Task.Name, q.Number, q.Task.Count)) + "\n")

	clock := theme.Title.Render(focus.Clock(s.test.TimeLeft()))
	if s.test.TimeLeft() < 300 {
		clock = theme.Danger.Render(focus.Clock(s.test.TimeLeft()))
	}
	bar := components.NewProgressBar("Progress", s.test.Progress(), true, max(30, width-20))
	b.WriteString("Time left " + clock + "\n" + bar.View() + "\n\n")

	b.WriteString(theme.Card.Width(min(width-4, 100)).Render(theme.Body.Render(q.Prompt)) + "\n\n")
	b.WriteString(s.input.View())
	if s.test.IsLast() {
		b.WriteString("\n\n" + theme.Hint.Render("Last question. Enter submits the test."))
	}
	return b.String()
}

func (s *Screen) renderResult() string {
	if s.test == nil || s.test.Result() == nil {
		return ""
	}
	r := s.test.Result()
	target := 0
	if p, err := s.state.Profile(); err == nil {
		target = p.TargetScore
	}

	var b strings.Builder
	title := "Mock test complete"
	if r.TimedOut {
		title = "Time's up!"
	}
	b.WriteString(theme.Title.Render(title) + "\n\n")
	b.WriteString(fmt.Sprintf("Overall  %s\n\n", theme.Title.Render(fmt.Sprint(r.OverallScore))))
	for _, sk := range progress.Skills(r.SkillScores) {
		bar := components.NewProgressBar(sk.Section.Label(), float64(sk.Score)/90, false, 50)
		bar.LabelWidth = 9
		bar.Color = theme.SectionColor(string(sk.Section))
		b.WriteString(bar.View() + fmt.Sprintf(" %d\n", sk.Score))
	}
	b.WriteString("\n" + theme.Subtitle.Render(fmt.Sprintf("Answered %d of %d questions in %s",
		r.CompletedTasks, s.test.TotalQuestions(), focus.Clock(r.Duration))) + "\n")
	if target > 0 {
		b.WriteString(theme.Hint.Render(progress.Recommend(r.SkillScores, target)))
	}
	return b.String()
}
