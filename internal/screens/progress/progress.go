// Package progress shows plan analytics, practice history and the score
// calculator with study advice.
package progress

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pteprep/internal/app"
	"github.com/abhisek/pteprep/internal/coach"
	"github.com/abhisek/pteprep/internal/mocktest"
	"github.com/abhisek/pteprep/internal/progress"
	"github.com/abhisek/pteprep/internal/screen"
	"github.com/abhisek/pteprep/internal/store"
	"github.com/abhisek/pteprep/internal/ui/components"
	"github.com/abhisek/pteprep/internal/ui/layout"
	"github.com/abhisek/pteprep/internal/ui/theme"
)

type tab int

const (
	tabOverview tab = iota
	tabSchedule
	tabPractice
	tabCalculator
	tabCount
)

var tabNames = [tabCount]string{"Overview", "Daily schedule", "Practice log", "Score calculator"}

// Score calculator bounds, the PTE scale.
const (
	MinScore = 10
	MaxScore = 90
)

// adviceTimeout bounds one coach request.
const adviceTimeout = 30 * time.Second

type adviceMsg struct {
	req    int
	advice coach.Advice
}

type practiceMsg struct {
	rows []store.TaskScoreSummary
	err  error
}

// Screen is the progress view.
type Screen struct {
	state *app.State
	tab   tab

	practice    []store.TaskScoreSummary
	practiceErr string

	scores   mocktest.SkillScores
	skill    int
	advice   *coach.Advice
	asking   bool
	adviceID int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the progress screen with the calculator seeded from the
// latest mock test.
func New(st *app.State) *Screen {
	return &Screen{state: st, scores: st.CalculatorScores()}
}

func (s *Screen) Init() tea.Cmd {
	st := s.state
	return func() tea.Msg {
		rows, err := st.PracticeSummary(context.Background())
		return practiceMsg{rows: rows, err: err}
	}
}

func (s *Screen) Title() string { return "Progress" }

func (s *Screen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab", Description: "Next view"}, {Key: "1-4", Description: "Jump"}}
	if s.tab == tabCalculator {
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Skill"},
			layout.KeyHint{Key: "←→", Description: "±1"},
			layout.KeyHint{Key: "[ ]", Description: "±5"},
			layout.KeyHint{Key: "A", Description: "Ask coach"},
		)
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// Scores returns the calculator's current values.
func (s *Screen) Scores() mocktest.SkillScores { return s.scores }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case practiceMsg:
		s.practice = msg.rows
		if msg.err != nil {
			s.practiceErr = msg.err.Error()
		}
		return s, nil
	case adviceMsg:
		if msg.req == s.adviceID {
			a := msg.advice
			s.advice, s.asking = &a, false
		}
		return s, nil
	case tea.KeyMsg:
		return s, s.handleKey(msg.String())
	}
	return s, nil
}

func (s *Screen) handleKey(key string) tea.Cmd {
	switch key {
	case "tab":
		s.tab = (s.tab + 1) % tabCount
		return nil
	case "shift+tab":
		s.tab = (s.tab + tabCount - 1) % tabCount
		return nil
	case "1", "2", "3", "4":
		s.tab = tab(key[0] - '1')
		return nil
	}
	if s.tab != tabCalculator {
		return nil
	}

	switch key {
	case "up", "k":
		s.skill = (s.skill + 3) % 4
	case "down", "j":
		s.skill = (s.skill + 1) % 4
	case "left", "h":
		s.adjust(-1)
	case "right", "l":
		s.adjust(1)
	case "[":
		s.adjust(-5)
	case "]":
		s.adjust(5)
	case "a":
		return s.ask()
	}
	return nil
}

func (s *Screen) adjust(delta int) {
	fields := []*int{&s.scores.Speaking, &s.scores.Writing, &s.scores.Reading, &s.scores.Listening}
	v := fields[s.skill]
	*v = min(MaxScore, max(MinScore, *v+delta))
	s.advice = nil
}

// ask requests advice for the current scores. Replies to older requests are
// dropped.
func (s *Screen) ask() tea.Cmd {
	s.adviceID++
	s.asking = true
	req, scores, st := s.adviceID, s.scores, s.state
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), adviceTimeout)
		defer cancel()
		return adviceMsg{req: req, advice: st.Advice(ctx, scores)}
	}
}

func (s *Screen) View(width, height int) string {
	parts := make([]string, 0, tabCount)
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if tab(i) == s.tab {
			parts = append(parts, theme.KeyActive.Render(label))
		} else {
			parts = append(parts, theme.KeyInactive.Render(label))
		}
	}
	out := strings.Join(parts, " ") + "\n\n"

	switch s.tab {
	case tabOverview:
		out += s.renderOverview(width)
	case tabSchedule:
		out += s.renderSchedule()
	case tabPractice:
		out += s.renderPractice()
	case tabCalculator:
		out += s.renderCalculator(width)
	}
	return out
}

func (s *Screen) renderOverview(width int) string {
	sum, err := s.state.Summary()
	if err != nil {
		return theme.Danger.Render(err.Error())
	}

	var left strings.Builder
	left.WriteString(theme.Heading.Render("Your plan") + "\n")
	left.WriteString(fmt.Sprintf("Day %d of %d · %d days left\n", sum.Day, progress.PlanDays, sum.RemainingDays))
	left.WriteString(fmt.Sprintf("Estimated score %d\n", sum.EstimatedScore))
	left.WriteString(fmt.Sprintf("Items done %.0f%% of today's target\n\n", sum.TaskRatio*100))
	for _, sec := range sum.Sections {
		bar := components.NewProgressBar(sec.Section.Label(), sec.Percent()/100, true, 44)
		bar.LabelWidth = 9
		bar.Color = theme.SectionColor(string(sec.Section))
		left.WriteString(bar.View() + "\n")
	}

	var right strings.Builder
	right.WriteString(theme.Heading.Render("Weekly progress") + "\n")
	for _, w := range progress.WeeklyProgress(sum.Day) {
		style := theme.Body
		if w.Week == sum.Phase.Week {
			style = theme.Selected
		}
		right.WriteString(style.Render(fmt.Sprintf("Week %d  %-22s", w.Week, w.Name)))
		right.WriteString(theme.Subtitle.Render(fmt.Sprintf(" %2d%% / target %d%%", w.Current, w.Target)) + "\n")
		right.WriteString(theme.Hint.Render("        "+w.Description) + "\n")
	}
	return layout.Columns(width, left.String(), right.String())
}

func (s *Screen) renderSchedule() string {
	p, err := s.state.Profile()
	if err != nil {
		return theme.Danger.Render(err.Error())
	}
	var b strings.Builder
	b.WriteString(theme.Heading.Render(fmt.Sprintf("Suggested day for %d study hours", p.DailyHours)) + "\n\n")
	for _, slot := range progress.DailySchedule(p.DailyHours) {
		b.WriteString(fmt.Sprintf("%-8s %-36s %s\n", slot.Time, slot.Task,
			theme.PriorityStyle(string(slot.Priority)).Render(string(slot.Priority))))
	}
	return b.String()
}

func (s *Screen) renderPractice() string {
	if s.practiceErr != "" {
		return theme.Danger.Render(s.practiceErr)
	}
	if len(s.practice) == 0 {
		return theme.Hint.Render("No practice attempts yet. Start one from Today's Tasks.")
	}
	var b strings.Builder
	b.WriteString(theme.Heading.Render(fmt.Sprintf("%-26s %8s %8s %6s", "Task", "Attempts", "Average", "Best")) + "\n")
	for _, r := range s.practice {
		b.WriteString(fmt.Sprintf("%-26s %8d %8.1f %6d\n", r.TaskID, r.Attempts, r.Average, r.Best))
	}
	return b.String()
}

func (s *Screen) target() int {
	if p, err := s.state.Profile(); err == nil {
		return p.TargetScore
	}
	return app.DefaultCalculatorScore
}

func (s *Screen) renderCalculator(width int) string {
	target := s.target()
	var b strings.Builder
	for i, sk := range progress.Skills(s.scores) {
		cursor := "  "
		if i == s.skill {
			cursor = theme.Selected.Render("▸ ")
		}
		bar := components.NewProgressBar(sk.Section.Label(), float64(sk.Score)/MaxScore, false, 40)
		bar.LabelWidth = 9
		bar.Color = theme.SectionColor(string(sk.Section))
		b.WriteString(cursor + bar.View() + fmt.Sprintf(" %2d\n", sk.Score))
	}

	overall := s.scores.Overall()
	b.WriteString("\n" + fmt.Sprintf("Overall %s  target %d  ", theme.Title.Render(fmt.Sprint(overall)), target))
	switch progress.BandFor(overall, target) {
	case progress.BandMet:
		b.WriteString(theme.Done.Render("target met"))
	case progress.BandClose:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).Render(fmt.Sprintf("close, %d to go", progress.Gap(overall, target))))
	default:
		b.WriteString(theme.Danger.Render(fmt.Sprintf("%d points below target", progress.Gap(overall, target))))
	}
	b.WriteString("\n\n" + theme.Heading.Render("Recommendation") + "\n")
	b.WriteString(lipgloss.NewStyle().Width(min(80, width-4)).Render(progress.Recommend(s.scores, target)) + "\n")

	switch {
	case s.asking:
		b.WriteString("\n" + theme.Hint.Render("Asking the study coach..."))
	case s.advice != nil:
		b.WriteString("\n" + renderAdvice(*s.advice, min(80, width-4)))
	}
	return b.String()
}

func renderAdvice(a coach.Advice, width int) string {
	title := "Coach"
	switch {
	case a.Fallback != "":
		title = "Coach (built-in advice, " + a.Fallback + ")"
	case !a.Generated:
		title = "Coach (offline)"
	}
	body := lipgloss.NewStyle().Width(width - 4).Render(a.Text)
	for _, d := range a.Drills {
		body += "\n• " + d
	}
	return theme.Card.Width(width).Render(theme.Heading.Render(title) + "\n" + body)
}
