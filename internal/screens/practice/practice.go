// Package practice runs one timed practice attempt for a task.
package practice

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pteprep/internal/app"
	"github.com/abhisek/pteprep/internal/focus"
	engine "github.com/abhisek/pteprep/internal/practice"
	"github.com/abhisek/pteprep/internal/reference"
	"github.com/abhisek/pteprep/internal/router"
	"github.com/abhisek/pteprep/internal/screen"
	"github.com/abhisek/pteprep/internal/ui/components"
	"github.com/abhisek/pteprep/internal/ui/layout"
	"github.com/abhisek/pteprep/internal/ui/theme"
)

// timerTickMsg carries the attempt generation so ticks from a restarted
// attempt are dropped.
type timerTickMsg struct {
	gen int
	at  time.Time
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{gen: gen, at: t}
	})
}

// Screen is a single practice attempt.
type Screen struct {
	state   *app.State
	taskID  string
	name    string
	session *engine.Session
	gen     int
	input   components.TextInput
	saveErr string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a practice screen for taskID.
func New(st *app.State, taskID string) *Screen {
	s := &Screen{
		state:  st,
		taskID: taskID,
		name:   taskName(st, taskID),
		input:  components.NewTextInput("Type your response...", 0),
	}
	s.input.Label = "Response"
	s.session = st.StartPractice(taskID, s.record)
	return s
}

func taskName(st *app.State, id string) string {
	if b := st.Board(); b != nil {
		if t, err := b.Find(id); err == nil {
			return t.Name
		}
	}
	for _, row := range reference.TimingGuide() {
		if row.TaskID == id {
			return row.Task
		}
	}
	return id
}

// record runs inside the engine's completion callback.
func (s *Screen) record(r engine.Result) {
	if err := s.state.RecordPractice(context.Background(), r); err != nil {
		s.saveErr = err.Error()
	}
}

// Session exposes the running attempt.
func (s *Screen) Session() *engine.Session { return s.session }

func (s *Screen) Init() tea.Cmd {
	if engine.IsListeningTask(s.taskID) {
		s.state.Speaker().Speak(engine.Content(s.taskID))
	}
	return tea.Batch(tickCmd(s.gen), s.input.Init())
}

func (s *Screen) Title() string { return "Practice: " + s.name }

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.session.Phase() {
	case engine.PhasePreparation:
		hints := []layout.KeyHint{{Key: "Enter", Description: "Start now"}}
		if engine.IsListeningTask(s.taskID) {
			hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Replay audio"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Leave"})
	case engine.PhaseRecording:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Stop & score"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
	return []layout.KeyHint{
		{Key: "A", Description: "Practice again"},
		{Key: "D", Description: "Dashboard"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if msg.gen != s.gen || s.session.Phase() == engine.PhaseCompleted {
			return s, nil
		}
		s.session.Tick(1)
		if s.session.Phase() == engine.PhaseCompleted {
			return s, nil
		}
		return s, tickCmd(s.gen)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.session.Phase() {
	case engine.PhasePreparation:
		switch msg.String() {
		case "enter":
			_ = s.session.StartRecording()
		case "tab":
			s.state.Speaker().Speak(engine.Content(s.taskID))
		}
		return s, nil

	case engine.PhaseRecording:
		if msg.String() == "enter" {
			_ = s.session.SetResponse(s.input.Value())
			_ = s.session.Stop()
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		_ = s.session.SetResponse(s.input.Value())
		return s, cmd
	}

	switch msg.String() {
	case "d":
		return s, router.Navigate(router.PopToRootMsg{})
	case "a":
		s.gen++
		s.saveErr = ""
		s.session = s.session.Restart()
		s.input.SetValue("")
		return s, s.Init()
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	t := s.session.Timing()
	b.WriteString(theme.Title.Render(s.name) + theme.Subtitle.Render(fmt.Sprintf(
		"   prep %s · response %s", prepLabel(t.Preparation), reference.Duration(t.Recording))) + "\n\n")

	b.WriteString(s.renderPrompt(width) + "\n\n")

	switch s.session.Phase() {
	case engine.PhasePreparation:
		if s.session.Untimed() {
			b.WriteString(theme.Heading.Render("Ready when you are") + "  " + theme.Hint.Render("press Enter to begin"))
		} else {
			b.WriteString(s.renderClock("Preparation", s.session.TimeLeft(), t.Preparation, theme.Warning))
		}
	case engine.PhaseRecording:
		label := "Recording"
		if engine.IsWritingTask(s.taskID) {
			label = "Writing"
		}
		b.WriteString(s.renderClock(label, s.session.TimeLeft(), t.Recording, theme.Error) + "\n\n")
		b.WriteString(s.input.View())
		if engine.IsWritingTask(s.taskID) {
			b.WriteString("\n" + theme.Hint.Render(fmt.Sprintf("%d words", len(strings.Fields(s.input.Value())))))
		}
	case engine.PhaseCompleted:
		b.WriteString(s.renderResult())
	}
	if s.saveErr != "" {
		b.WriteString("\n\n" + theme.Danger.Render("could not save attempt: "+s.saveErr))
	}
	return b.String()
}

func prepLabel(sec int) string {
	if sec == 0 {
		return "none"
	}
	return reference.Duration(sec)
}

func (s *Screen) renderPrompt(width int) string {
	content := engine.Content(s.taskID)
	var body string
	switch {
	case content == "":
		body = theme.Hint.Render("No sample prompt for this task. Use your own material.")
	case engine.IsImageTask(s.taskID):
		body = theme.Body.Render("Open the image and describe it:") + "\n" + theme.Hint.Render(content)
	case engine.IsListeningTask(s.taskID):
		body = theme.Body.Render("♪ Listen to the audio prompt.")
		if s.session.Phase() == engine.PhaseCompleted {
			body += "\n" + theme.Hint.Render("Transcript: "+content)
		}
	default:
		body = theme.Body.Render(content)
	}
	return theme.Card.Width(min(width-4, 100)).Render(lipgloss.NewStyle().Width(min(width-8, 96)).Render(body))
}

func (s *Screen) renderClock(label string, left, total int, c color.Color) string {
	pct := 0.0
	if total > 0 {
		pct = 1 - float64(left)/float64(total)
	}
	bar := components.NewProgressBar("", pct, false, 40)
	bar.Color = c
	return theme.Heading.Render(label) + "  " + theme.Title.Render(focus.Clock(left)) + "\n" + bar.View()
}

func (s *Screen) renderResult() string {
	r := s.session.Result()
	if r == nil {
		return ""
	}
	style := theme.Done
	switch {
	case r.Score < 50:
		style = theme.Danger
	case r.Score < 65:
		style = lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)
	}
	out := theme.Heading.Render("Attempt scored") + "  " + style.Render(fmt.Sprintf("%d / 90", r.Score)) + "\n"
	out += theme.Subtitle.Render(fmt.Sprintf("%s spent · %d characters", focus.Clock(r.Elapsed), len([]rune(r.Response))))
	if b := s.state.Board(); b != nil {
		if t, err := b.Find(s.taskID); err == nil {
			out += "\n" + theme.Hint.Render(fmt.Sprintf("Counted toward today: %d / %d", t.Completed, t.DailyTarget))
		}
	}
	return out
}
