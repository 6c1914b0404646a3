// Package progress derives plan-day, phase and score estimates from the
// profile and task counters. Nothing here holds state.
package progress

import (
	"math"
	"time"

	"github.com/abhisek/pteprep/internal/profile"
	"github.com/abhisek/pteprep/internal/tasks"
)

// PlanDays is the length of the study plan.
const PlanDays = 30

// CurrentDay is the 1-based plan day: the number of started 24h periods
// since the start date. The start instant itself is day 1.
func CurrentDay(start, now time.Time) int {
	days := now.Sub(start).Hours() / 24
	return max(1, int(math.Ceil(days)))
}

// RemainingDays counts plan days left including today.
func RemainingDays(day int) int {
	return max(0, PlanDays-day+1)
}

// Phase is one week-long stage of the plan.
type Phase struct {
	Week        int
	Name        string
	Description string
}

var phases = []Phase{
	{1, "Foundation", "Learning format & templates"},
	{2, "Accuracy", "Grammar, fluency & vocabulary"},
	{3, "Timing", "Exam simulation & speed"},
	{4, "Polishing", "Mock tests & fine-tuning"},
}

// Phases returns the four plan phases in order.
func Phases() []Phase {
	return append([]Phase(nil), phases...)
}

// PhaseFor returns the phase covering day.
func PhaseFor(day int) Phase {
	switch {
	case day <= 7:
		return phases[0]
	case day <= 14:
		return phases[1]
	case day <= 21:
		return phases[2]
	}
	return phases[3]
}

// TaskRatio is total completed repetitions over total daily targets. It can
// exceed 1 when learners go past their targets.
func TaskRatio(b *tasks.Board) float64 {
	completed, target := b.Totals()
	if target == 0 {
		return 0
	}
	return float64(completed) / float64(target)
}

// TodayCompletion is the percentage of tasks that reached their target.
func TodayCompletion(b *tasks.Board) float64 {
	if len(b.Tasks) == 0 {
		return 0
	}
	return float64(b.CompletedCount()) / float64(len(b.Tasks)) * 100
}

func levelBase(l profile.Level) float64 {
	switch l {
	case profile.Advanced:
		return 55
	case profile.Intermediate:
		return 45
	}
	return 35
}

// EstimatedScore projects an exam score from level, task completion and
// days studied. The result is kept inside the 10-90 score scale.
func EstimatedScore(level profile.Level, taskRatio float64, day int) int {
	progressBonus := taskRatio * 25
	dayBonus := math.Min(15, float64(day)*0.5)
	v := int(math.Round(levelBase(level) + progressBonus + dayBonus))
	return max(10, min(90, v))
}

// SectionProgress aggregates counters for one exam section.
type SectionProgress struct {
	Section   tasks.Section
	Completed int
	Target    int
}

// Percent is completed over target, 0 when there is no target.
func (s SectionProgress) Percent() float64 {
	if s.Target == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Target) * 100
}

// Sections groups the board by exam section in exam order.
func Sections(b *tasks.Board) []SectionProgress {
	out := make([]SectionProgress, 0, len(tasks.Sections))
	for _, sec := range tasks.Sections {
		sp := SectionProgress{Section: sec}
		for _, t := range b.Tasks {
			if t.Section == sec {
				sp.Completed += t.Completed
				sp.Target += t.DailyTarget
			}
		}
		out = append(out, sp)
	}
	return out
}

// WeekProgress is the displayed completion for one plan week.
type WeekProgress struct {
	Phase
	Target  int
	Current int
}

// WeeklyProgress returns the week-by-week bars for day. Finished weeks
// show their settled value and the running week grows daily.
func WeeklyProgress(day int) []WeekProgress {
	type curve struct{ target, settled, perDay int }
	curves := []curve{{75, 85, 12}, {80, 78, 11}, {85, 82, 12}, {90, 88, 13}}

	out := make([]WeekProgress, len(phases))
	for i, p := range phases {
		c := curves[i]
		startDay := i * 7
		cur := 0
		switch {
		case i == len(phases)-1 && day > 28, i < len(phases)-1 && day > startDay+7:
			cur = c.settled
		case day > startDay:
			cur = min(c.settled, (day-startDay)*c.perDay)
		}
		out[i] = WeekProgress{Phase: p, Target: c.target, Current: cur}
	}
	return out
}

// Slot is one block of the suggested daily routine.
type Slot struct {
	Time     string
	Task     string
	Priority tasks.Priority
}

var routine = []Slot{
	{"0-30 min", "Warm-up: Read Aloud practice", tasks.High},
	{"30-60 min", "Repeat Sentence intensive", tasks.High},
	{"60-90 min", "Writing: Summarize Written Text", tasks.High},
	{"90-120 min", "Listening: Write from Dictation", tasks.High},
	{"120+ min", "Review & Additional practice", tasks.Medium},
}

// DailySchedule returns the routine trimmed to the learner's hours: two
// half-hour blocks per hour, never fewer than two.
func DailySchedule(dailyHours int) []Slot {
	n := min(len(routine), max(2, dailyHours*2))
	return append([]Slot(nil), routine[:n]...)
}

// Summary bundles every dashboard figure for one moment.
type Summary struct {
	Day             int
	RemainingDays   int
	Phase           Phase
	EstimatedScore  int
	TodayCompletion float64
	TaskRatio       float64
	TasksComplete   int
	TasksTotal      int
	HighComplete    int
	HighTotal       int
	Sections        []SectionProgress
}

// Summarize computes the dashboard figures.
func Summarize(p profile.Profile, b *tasks.Board, now time.Time) Summary {
	day := CurrentDay(p.StartDate, now)
	ratio := TaskRatio(b)
	s := Summary{
		Day:             day,
		RemainingDays:   RemainingDays(day),
		Phase:           PhaseFor(day),
		EstimatedScore:  EstimatedScore(p.CurrentLevel, ratio, day),
		TodayCompletion: TodayCompletion(b),
		TaskRatio:       ratio,
		TasksComplete:   b.CompletedCount(),
		TasksTotal:      len(b.Tasks),
		Sections:        Sections(b),
	}
	for _, t := range b.Tasks {
		if t.Priority == tasks.High {
			s.HighTotal++
			if t.IsComplete() {
				s.HighComplete++
			}
		}
	}
	return s
}
