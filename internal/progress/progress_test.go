package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pteprep/internal/mocktest"
	"github.com/abhisek/pteprep/internal/profile"
	"github.com/abhisek/pteprep/internal/tasks"
)

var start = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestCurrentDay(t *testing.T) {
	assert.Equal(t, 1, CurrentDay(start, start))
	assert.Equal(t, 1, CurrentDay(start, start.Add(-time.Hour)))
	assert.Equal(t, 1, CurrentDay(start, start.Add(time.Minute)))
	assert.Equal(t, 1, CurrentDay(start, start.Add(24*time.Hour)))
	assert.Equal(t, 2, CurrentDay(start, start.Add(25*time.Hour)))
	assert.Equal(t, 15, CurrentDay(start, start.Add(14*24*time.Hour+time.Second)))
}

func TestPhaseFor(t *testing.T) {
	tests := []struct {
		day  int
		want string
	}{
		{1, "Foundation"}, {7, "Foundation"},
		{8, "Accuracy"}, {14, "Accuracy"},
		{15, "Timing"}, {21, "Timing"},
		{22, "Polishing"}, {45, "Polishing"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PhaseFor(tt.day).Name, "day %d", tt.day)
	}
}

func TestRemainingDays(t *testing.T) {
	assert.Equal(t, 30, RemainingDays(1))
	assert.Equal(t, 1, RemainingDays(30))
	assert.Equal(t, 0, RemainingDays(31))
	assert.Equal(t, 0, RemainingDays(90))
}

func TestEstimatedScore(t *testing.T) {
	// 45 + 0.5 x 25 + 5 = 62.5 => 63
	assert.Equal(t, 63, EstimatedScore(profile.Intermediate, 0.5, 10))
	// day bonus caps at 15: 35 + 0 + 15
	assert.Equal(t, 50, EstimatedScore(profile.Beginner, 0, 100))
	// over-completion is capped by the score scale
	assert.Equal(t, 90, EstimatedScore(profile.Advanced, 3, 30))
}

func newBoard() *tasks.Board {
	return tasks.NewBoard(tasks.Generate(profile.Profile{TargetScore: 65, DailyHours: 2}), start)
}

func TestSectionsAndCompletion(t *testing.T) {
	b := newBoard()
	assert.Equal(t, 0.0, TodayCompletion(b))
	assert.Equal(t, 0.0, TaskRatio(b))

	essay, _ := b.Find("write-essay")
	for i := 0; i < essay.DailyTarget; i++ {
		b.Increment("write-essay")
	}
	b.Increment("read-aloud")

	assert.InDelta(t, 12.5, TodayCompletion(b), 1e-9)

	secs := Sections(b)
	require.Len(t, secs, 4)
	assert.Equal(t, tasks.Speaking, secs[0].Section)
	assert.Equal(t, 1, secs[0].Completed)
	assert.Equal(t, tasks.Writing, secs[1].Section)
	assert.Equal(t, 2, secs[1].Completed)
	assert.Equal(t, 5, secs[1].Target) // 3 + 2 at target 65
	assert.InDelta(t, 40, secs[1].Percent(), 1e-9)

	completed, target := b.Totals()
	assert.InDelta(t, float64(completed)/float64(target), TaskRatio(b), 1e-9)
}

func TestSummarize(t *testing.T) {
	b := newBoard()
	p := profile.Profile{TargetScore: 65, DailyHours: 2, CurrentLevel: profile.Advanced, StartDate: start}
	s := Summarize(p, b, start.Add(10*24*time.Hour+time.Hour))

	assert.Equal(t, 11, s.Day)
	assert.Equal(t, 20, s.RemainingDays)
	assert.Equal(t, "Accuracy", s.Phase.Name)
	assert.Equal(t, 61, s.EstimatedScore) // 55 + 0 + 5.5 => 60.5 rounds to 61
	assert.Equal(t, 8, s.TasksTotal)
	assert.Equal(t, 7, s.HighTotal)
}

func TestWeeklyProgress(t *testing.T) {
	w := WeeklyProgress(10)
	require.Len(t, w, 4)
	assert.Equal(t, 85, w[0].Current)
	assert.Equal(t, 33, w[1].Current) // (10-7) x 11
	assert.Equal(t, 0, w[2].Current)
	assert.Equal(t, 0, w[3].Current)

	w = WeeklyProgress(29)
	assert.Equal(t, []int{85, 78, 82, 88}, []int{w[0].Current, w[1].Current, w[2].Current, w[3].Current})

	w = WeeklyProgress(3)
	assert.Equal(t, 36, w[0].Current)
}

func TestDailySchedule(t *testing.T) {
	assert.Len(t, DailySchedule(1), 2)
	assert.Len(t, DailySchedule(2), 4)
	assert.Len(t, DailySchedule(3), 5)
	assert.Len(t, DailySchedule(8), 5)
	assert.Equal(t, "Warm-up: Read Aloud practice", DailySchedule(1)[0].Task)
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, BandMet, BandFor(70, 70))
	assert.Equal(t, BandClose, BandFor(65, 70))
	assert.Equal(t, BandBelow, BandFor(64, 70))
	assert.Equal(t, 6, Gap(64, 70))
	assert.Equal(t, 0, Gap(80, 70))
}

func TestRecommend(t *testing.T) {
	scores := mocktest.SkillScores{Speaking: 60, Writing: 58, Reading: 58, Listening: 75}
	w, ok := Weakest(scores, 65)
	require.True(t, ok)
	assert.Equal(t, tasks.Writing, w.Section, "ties keep exam order")
	assert.Contains(t, Recommend(scores, 65), "Summarize Written Text daily")

	all := mocktest.SkillScores{Speaking: 70, Writing: 70, Reading: 70, Listening: 70}
	assert.Equal(t, OnTargetAdvice, Recommend(all, 65))
}
