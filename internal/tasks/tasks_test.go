package tasks

import (
	"testing"
	"time"

	"github.com/abhisek/pteprep/internal/profile"
)

func TestGenerateCatalog(t *testing.T) {
	list := Generate(profile.Profile{TargetScore: 65, DailyHours: 2, CurrentLevel: profile.Beginner})
	if len(list) != 8 {
		t.Fatalf("catalog size = %d, want 8", len(list))
	}
	seen := map[string]bool{}
	for _, task := range list {
		if seen[task.ID] {
			t.Errorf("duplicate id %q", task.ID)
		}
		seen[task.ID] = true
		if task.Completed != 0 {
			t.Errorf("%s: completed = %d, want 0", task.ID, task.Completed)
		}
		if len(task.ScoringCriteria) == 0 || len(task.CommonMistakes) == 0 || len(task.Tips) == 0 {
			t.Errorf("%s: missing guide text", task.ID)
		}
	}
}

func TestDailyTargetScenario(t *testing.T) {
	list := Generate(profile.Profile{TargetScore: 70, DailyHours: 3})
	want := map[string]int{
		"repeat-sentence":        27, // 15 x 1.5 x 1.2
		"describe-image":         14, // 8 x 1.5 x 1.2 = 14.4
		"read-aloud":             22, // 12 x 1.5 x 1.2 = 21.6
		"summarize-written-text": 5,  // 3 x 1.5 = 4.5
		"write-essay":            3,
		"reading-writing-blanks": 8, // 7.5
		"summarize-spoken-text":  5, // 3 x 1.5 x 1.2 = 5.4
		"write-from-dictation":   18,
	}
	for _, task := range list {
		if got := task.DailyTarget; got != want[task.ID] {
			t.Errorf("%s: dailyTarget = %d, want %d", task.ID, got, want[task.ID])
		}
	}
}

func TestDailyTargetLowHours(t *testing.T) {
	p := profile.Profile{TargetScore: 65, DailyHours: 1}
	if got := DailyTarget(15, Speaking, p); got != 12 {
		t.Errorf("speaking = %d, want 12", got)
	}
	if got := DailyTarget(3, Writing, p); got != 3 {
		t.Errorf("writing ignores hours: got %d, want 3", got)
	}
}

func TestDailyTargetMonotonic(t *testing.T) {
	targets := []int{1, 50, 65, 69, 70, 75, 90}
	hours := []int{1, 2, 3, 4, 8}

	for _, d := range definitions {
		for i, score := range targets {
			for j, h := range hours {
				cur := DailyTarget(d.baseCount, d.section, profile.Profile{TargetScore: score, DailyHours: h})
				if cur < 0 {
					t.Fatalf("%s: negative target", d.id)
				}
				if i > 0 {
					prev := DailyTarget(d.baseCount, d.section, profile.Profile{TargetScore: targets[i-1], DailyHours: h})
					if cur < prev {
						t.Errorf("%s: target decreased with score %d -> %d", d.id, targets[i-1], score)
					}
				}
				if j > 0 {
					prev := DailyTarget(d.baseCount, d.section, profile.Profile{TargetScore: score, DailyHours: hours[j-1]})
					if cur < prev {
						t.Errorf("%s: target decreased with hours %d -> %d", d.id, hours[j-1], h)
					}
				}
			}
		}
	}
}

func newTestBoard() *Board {
	day := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return NewBoard(Generate(profile.Profile{TargetScore: 65, DailyHours: 2}), day)
}

func TestIncrementDecrementRoundTrip(t *testing.T) {
	b := newTestBoard()
	for _, id := range IDs() {
		before, _ := b.Find(id)
		if _, err := b.Increment(id); err != nil {
			t.Fatalf("increment %s: %v", id, err)
		}
		after, err := b.Decrement(id)
		if err != nil {
			t.Fatalf("decrement %s: %v", id, err)
		}
		if after.Completed != before.Completed {
			t.Errorf("%s: completed = %d, want %d", id, after.Completed, before.Completed)
		}
	}
}

func TestDecrementFloorsAtZero(t *testing.T) {
	b := newTestBoard()
	got, err := b.Decrement("write-essay")
	if err != nil {
		t.Fatalf("decrement: %v", err)
	}
	if got.Completed != 0 {
		t.Errorf("completed = %d, want 0", got.Completed)
	}
}

func TestIncrementPastTarget(t *testing.T) {
	b := newTestBoard()
	task, _ := b.Find("write-essay")
	for i := 0; i < task.DailyTarget+3; i++ {
		task, _ = b.Increment("write-essay")
	}
	if !task.IsComplete() {
		t.Error("expected task complete")
	}
	if task.Completed != task.DailyTarget+3 {
		t.Errorf("completed = %d, want %d", task.Completed, task.DailyTarget+3)
	}
	if b.CompletedCount() != 1 {
		t.Errorf("completed count = %d, want 1", b.CompletedCount())
	}
}

func TestUnknownTask(t *testing.T) {
	b := newTestBoard()
	if _, err := b.Increment("nope"); err == nil {
		t.Fatal("expected error for unknown task")
	}
}

func TestFilter(t *testing.T) {
	b := newTestBoard()
	tests := []struct {
		filter string
		want   int
	}{
		{"all", 8},
		{"", 8},
		{"high", 7},
		{"medium", 1},
		{"speaking", 3},
		{"listening", 2},
		{"reading", 1},
		{"unknown", 0},
	}
	for _, tt := range tests {
		if got := len(b.Filter(tt.filter)); got != tt.want {
			t.Errorf("Filter(%q) = %d tasks, want %d", tt.filter, got, tt.want)
		}
	}
}

func TestRolloverIfNewDay(t *testing.T) {
	b := newTestBoard()
	b.Increment("read-aloud")

	sameDay := time.Date(2025, 3, 1, 23, 0, 0, 0, time.UTC)
	if b.RolloverIfNewDay(sameDay) {
		t.Fatal("unexpected rollover on the same day")
	}
	if task, _ := b.Find("read-aloud"); task.Completed != 1 {
		t.Fatalf("completed = %d, want 1", task.Completed)
	}

	nextDay := time.Date(2025, 3, 2, 0, 5, 0, 0, time.UTC)
	if !b.RolloverIfNewDay(nextDay) {
		t.Fatal("expected rollover on the next day")
	}
	if task, _ := b.Find("read-aloud"); task.Completed != 0 {
		t.Errorf("completed = %d after rollover, want 0", task.Completed)
	}
	if b.Day != "2025-03-02" {
		t.Errorf("day = %q", b.Day)
	}
}
