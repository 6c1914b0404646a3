package notify

import (
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/pteprep/internal/profile"
	"github.com/abhisek/pteprep/internal/tasks"
)

var start = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func testProfile() profile.Profile {
	return profile.Profile{TargetScore: 65, DailyHours: 2, CurrentLevel: profile.Beginner, StartDate: start, Completed: true}
}

func board() *tasks.Board {
	return tasks.NewBoard(tasks.Generate(testProfile()), start)
}

func titles(ns []Notification) map[string]bool {
	out := map[string]bool{}
	for _, n := range ns {
		out[n.Title] = true
	}
	return out
}

func TestMorningReminderExactMinute(t *testing.T) {
	b := board()
	at8 := time.Date(2025, 3, 3, 8, 0, 30, 0, time.UTC)
	if !titles(Generate(at8, testProfile(), b))["Morning Study Time!"] {
		t.Error("expected morning reminder at 08:00")
	}
	at801 := time.Date(2025, 3, 3, 8, 1, 0, 0, time.UTC)
	if titles(Generate(at801, testProfile(), b))["Morning Study Time!"] {
		t.Error("unexpected morning reminder at 08:01")
	}
}

func TestGreatProgressWindow(t *testing.T) {
	b := board()
	now := time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)

	complete := func(n int) {
		for _, task := range b.Tasks[:n] {
			for i := task.Completed; i < task.DailyTarget; i++ {
				b.Increment(task.ID)
			}
		}
	}

	complete(6) // 75%
	if titles(Generate(now, testProfile(), b))["Great Progress!"] {
		t.Error("unexpected progress notification at 75%")
	}
	complete(7) // 87.5%
	if !titles(Generate(now, testProfile(), b))["Great Progress!"] {
		t.Error("expected progress notification at 87.5%")
	}
	complete(8) // 100%
	if titles(Generate(now, testProfile(), b))["Great Progress!"] {
		t.Error("unexpected progress notification at 100%")
	}
}

func TestDayTriggers(t *testing.T) {
	b := board()
	tests := []struct {
		day        int
		week, mock bool
	}{
		{7, true, false},
		{14, true, false},
		{15, false, true},
		{21, true, false},
		{22, false, true},
		{27, false, true},
		{28, true, false},
		{10, false, false},
	}
	for _, tt := range tests {
		// Noon on plan day N is N-1 days and 3 hours after a 09:00 start.
		now := start.Add(time.Duration(tt.day-1)*24*time.Hour + 3*time.Hour)
		got := titles(Generate(now, testProfile(), b))
		if got["Week Complete!"] != tt.week {
			t.Errorf("day %d: week complete = %v, want %v", tt.day, got["Week Complete!"], tt.week)
		}
		if got["Mock Test Available"] != tt.mock {
			t.Errorf("day %d: mock = %v, want %v", tt.day, got["Mock Test Available"], tt.mock)
		}
	}
}

func TestInboxKeepsTenNewestFirst(t *testing.T) {
	var in Inbox
	for i := 0; i < 12; i++ {
		in.Merge([]Notification{{ID: fmt.Sprintf("n%d", i)}})
	}
	items := in.Items()
	if len(items) != MaxKept {
		t.Fatalf("items = %d, want %d", len(items), MaxKept)
	}
	if items[0].ID != "n11" || items[9].ID != "n2" {
		t.Errorf("order = %s..%s", items[0].ID, items[9].ID)
	}
}

func TestInboxReplaceKeepsReadState(t *testing.T) {
	var in Inbox
	in.Merge([]Notification{{ID: "a", Title: "old"}, {ID: "b"}})
	if in.Unread() != 2 {
		t.Fatalf("unread = %d", in.Unread())
	}
	if !in.MarkRead("a") {
		t.Fatal("mark read failed")
	}
	in.Merge([]Notification{{ID: "a", Title: "new"}})

	items := in.Items()
	if len(items) != 2 || items[0].Title != "new" || !items[0].Read {
		t.Errorf("items = %+v", items)
	}
	if in.Unread() != 1 {
		t.Errorf("unread = %d, want 1", in.Unread())
	}

	if !in.Remove("b") || in.Remove("b") {
		t.Error("remove should succeed once")
	}
	in.MarkAllRead()
	if in.Unread() != 0 {
		t.Errorf("unread = %d after mark all", in.Unread())
	}
}
