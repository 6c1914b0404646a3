package practice

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pteprep/internal/app/apptest"
	engine "github.com/abhisek/pteprep/internal/practice"
	"github.com/abhisek/pteprep/internal/router"
)

func tick(s *Screen) tea.Cmd {
	_, cmd := s.Update(timerTickMsg{gen: s.gen, at: time.Now()})
	return cmd
}

func typeText(s *Screen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }

func TestTimedAttemptCompletesAndCounts(t *testing.T) {
	env := apptest.Onboarded(t)
	s := New(env.State, "read-aloud")
	timing := engine.TimingFor("read-aloud")

	for range timing.Preparation {
		tick(s)
	}
	if s.Session().Phase() != engine.PhaseRecording {
		t.Fatalf("phase = %s after preparation", s.Session().Phase())
	}
	for range timing.Recording - 1 {
		if tick(s) == nil {
			t.Fatal("tick chain stopped early")
		}
	}
	if cmd := tick(s); cmd != nil {
		t.Error("tick chain should stop once scored")
	}
	if s.Session().Result() == nil {
		t.Fatal("no result after timer ran out")
	}

	task, err := env.State.Board().Find("read-aloud")
	if err != nil {
		t.Fatal(err)
	}
	if task.Completed != 1 {
		t.Errorf("completed = %d, want 1", task.Completed)
	}
	sum, err := env.State.PracticeSummary(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(sum) != 1 || sum[0].TaskID != "read-aloud" || sum[0].Attempts != 1 {
		t.Errorf("practice summary = %+v", sum)
	}
}

func TestWritingTaskStopsOnEnterWithResponse(t *testing.T) {
	env := apptest.Onboarded(t)
	s := New(env.State, "write-essay")
	if !s.Session().Untimed() {
		t.Fatal("essay preparation should be untimed")
	}
	tick(s)
	if s.Session().Phase() != engine.PhasePreparation {
		t.Fatal("untimed preparation must wait for Enter")
	}

	s.Update(enter())
	if s.Session().Phase() != engine.PhaseRecording {
		t.Fatalf("phase = %s", s.Session().Phase())
	}
	typeText(s, "social media connects people")
	s.Update(enter())

	r := s.Session().Result()
	if r == nil {
		t.Fatal("expected a result")
	}
	if r.Response != "social media connects people" {
		t.Errorf("response = %q", r.Response)
	}
}

func TestListeningTaskSpeaksAndAgainStartsFresh(t *testing.T) {
	env := apptest.Onboarded(t)
	s := New(env.State, "repeat-sentence")
	s.Init()
	if len(env.Spoken.Said) != 1 || env.Spoken.Said[0] != engine.Content("repeat-sentence") {
		t.Fatalf("spoken = %v", env.Spoken.Said)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if len(env.Spoken.Said) != 2 {
		t.Errorf("tab should replay the audio")
	}

	s.Update(enter())
	s.Update(enter())
	first := s.Session()
	if first.Phase() != engine.PhaseCompleted {
		t.Fatalf("phase = %s", first.Phase())
	}

	oldGen := s.gen
	s.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if s.Session() == first || s.Session().Phase() != engine.PhasePreparation {
		t.Fatal("practice again should start a new attempt")
	}
	if _, cmd := s.Update(timerTickMsg{gen: oldGen}); cmd != nil {
		t.Error("stale tick should be ignored")
	}
}

func TestUnlistedTaskIsLoggedNotCounted(t *testing.T) {
	env := apptest.Onboarded(t)
	s := New(env.State, "answer-short-question")
	for range 3 {
		tick(s)
	}
	s.Update(enter())
	if s.Session().Result() == nil {
		t.Fatal("expected a result")
	}
	if s.saveErr != "" {
		t.Errorf("save error: %s", s.saveErr)
	}
	completed, _ := env.State.Board().Totals()
	if completed != 0 {
		t.Errorf("off-board task changed the board: %d", completed)
	}
}

func TestDashboardKeyPopsToRootAfterAttempt(t *testing.T) {
	env := apptest.Onboarded(t)
	s := New(env.State, "write-essay")
	s.Init()

	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'd', Text: "d"}); cmd != nil {
		t.Fatal("d should not navigate while the attempt is running")
	}
	s.Update(enter())
	s.Update(enter())

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Errorf("msg = %T, want PopToRootMsg", cmd())
	}
}
