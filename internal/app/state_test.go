package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pteprep/internal/mocktest"
	"github.com/abhisek/pteprep/internal/notify"
	"github.com/abhisek/pteprep/internal/practice"
	"github.com/abhisek/pteprep/internal/profile"
	"github.com/abhisek/pteprep/internal/store"
	"github.com/abhisek/pteprep/internal/tasks"
)

var day1 = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type testEnv struct {
	st    *store.Store
	now   time.Time
	warns []string
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	st, err := store.Open(fmt.Sprintf("file:app_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return &testEnv{st: st, now: day1}
}

func (e *testEnv) open(t *testing.T, daily bool) *State {
	t.Helper()
	s, err := New(context.Background(), e.st, Options{
		DailyReset: daily,
		Now:        func() time.Time { return e.now },
		Rand:       rand.New(rand.NewPCG(1, 2)),
		Warn:       func(f string, a ...any) { e.warns = append(e.warns, fmt.Sprintf(f, a...)) },
	})
	require.NoError(t, err)
	return s
}

var onboarding = profile.Input{TargetScore: 70, DailyHours: 3, Level: profile.Intermediate}

func TestFreshStateNotOnboarded(t *testing.T) {
	env := newEnv(t)
	s := env.open(t, false)

	assert.False(t, s.Onboarded())
	_, err := s.Profile()
	assert.ErrorIs(t, err, profile.ErrNotOnboarded)
	assert.Nil(t, s.Board())
	assert.Nil(t, s.Planner())
	assert.Len(t, s.Deck().Words(), 10)
	assert.Empty(t, s.History().Results)

	_, err = s.IncrementTask(context.Background(), "repeat-sentence")
	assert.ErrorIs(t, err, profile.ErrNotOnboarded)
}

func TestOnboardGeneratesBoardAndPlan(t *testing.T) {
	env := newEnv(t)
	s := env.open(t, false)
	ctx := context.Background()

	_, err := s.Onboard(ctx, onboarding)
	require.NoError(t, err)

	task, err := s.Board().Find("repeat-sentence")
	require.NoError(t, err)
	assert.Equal(t, 27, task.DailyTarget)
	assert.NotEmpty(t, s.Planner().All())
	assert.Equal(t, 1, s.Day())

	_, err = s.IncrementTask(ctx, "repeat-sentence")
	require.NoError(t, err)

	reopened := env.open(t, false)
	task, err = reopened.Board().Find("repeat-sentence")
	require.NoError(t, err)
	assert.Equal(t, 1, task.Completed)
	assert.Len(t, reopened.Planner().All(), len(s.Planner().All()))
}

func TestOnboardRejectsInvalidInput(t *testing.T) {
	s := newEnv(t).open(t, false)
	_, err := s.Onboard(context.Background(), profile.Input{TargetScore: 0, DailyHours: 2, Level: profile.Beginner})
	assert.Error(t, err)
	assert.False(t, s.Onboarded())
}

func TestDailyResetIsOptIn(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	s := env.open(t, false)
	_, err := s.Onboard(ctx, onboarding)
	require.NoError(t, err)
	_, err = s.IncrementTask(ctx, "read-aloud")
	require.NoError(t, err)

	env.now = day1.Add(24 * time.Hour)
	kept := env.open(t, false)
	task, _ := kept.Board().Find("read-aloud")
	assert.Equal(t, 1, task.Completed)

	rolled := env.open(t, true)
	task, _ = rolled.Board().Find("read-aloud")
	assert.Equal(t, 0, task.Completed)
}

func TestResetKeepsPlannerAndVocabulary(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	s := env.open(t, false)
	_, err := s.Onboard(ctx, onboarding)
	require.NoError(t, err)
	_, err = s.Deck().MarkLearned(ctx, "1")
	require.NoError(t, err)

	require.NoError(t, s.Reset(ctx))
	assert.False(t, s.Onboarded())
	assert.Nil(t, s.Board())

	reopened := env.open(t, false)
	assert.False(t, reopened.Onboarded())
	assert.Equal(t, 1, reopened.Deck().Stats().Learned)

	sessions, err := store.NewJSONRepo[[]any](env.st, store.KeyStudySessions).Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, sessions)
	assert.NotEmpty(t, *sessions)
}

func TestCorruptProfileFallsBackWithWarning(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	require.NoError(t, store.NewJSONRepo[string](env.st, store.KeyProfile).Save(ctx, "not a profile"))
	require.NoError(t, store.NewJSONRepo[int](env.st, store.KeyVocabulary).Save(ctx, 42))

	s := env.open(t, false)
	assert.False(t, s.Onboarded())
	assert.Len(t, s.Deck().Words(), 10)
	require.Len(t, env.warns, 2)
	assert.Contains(t, env.warns[0], "profile")
	assert.Contains(t, env.warns[1], "vocabulary")

	_, err := s.Onboard(ctx, onboarding)
	require.NoError(t, err)
	assert.True(t, env.open(t, false).Onboarded())
}

func TestRecordPracticeIncrementsAndLogs(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	s := env.open(t, false)
	_, err := s.Onboard(ctx, onboarding)
	require.NoError(t, err)

	var got *practice.Result
	sess := s.StartPractice("write-from-dictation", func(r practice.Result) { got = &r })
	require.NoError(t, sess.StartRecording())
	require.NoError(t, sess.SetResponse("the lecture was long"))
	require.NoError(t, sess.Stop())
	require.NotNil(t, got)

	require.NoError(t, s.RecordPractice(ctx, *got))
	task, _ := s.Board().Find("write-from-dictation")
	assert.Equal(t, 1, task.Completed)

	// answer-short-question has practice timings but no board entry
	require.NoError(t, s.RecordPractice(ctx, practice.Result{AttemptID: "x", TaskID: "answer-short-question", Score: 50}))

	sum, err := s.PracticeSummary(ctx)
	require.NoError(t, err)
	assert.Len(t, sum, 2)
}

func TestRecordMockAndSchedule(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	s := env.open(t, false)
	_, err := s.Onboard(ctx, onboarding)
	require.NoError(t, err)

	assert.Equal(t, DefaultCalculatorScore, s.CalculatorScores().Speaking)

	var res *mocktest.Result
	eng := s.StartMock(func(r mocktest.Result) { res = &r })
	require.NoError(t, eng.Finish())
	require.NotNil(t, res)
	require.NoError(t, s.RecordMock(ctx, *res))

	assert.Len(t, env.open(t, false).History().Results, 1)
	assert.Equal(t, res.SkillScores, s.CalculatorScores())

	sched := s.MockSchedule()
	require.NotEmpty(t, sched)
	assert.True(t, sched[0].Available)

	require.NoError(t, s.ClearMockHistory(ctx))
	assert.Empty(t, s.History().Results)
}

func TestNotificationsAndAdvice(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	s := env.open(t, false)
	s.PollNotifications()
	assert.Empty(t, s.Inbox().Items())

	_, err := s.Onboard(ctx, onboarding)
	require.NoError(t, err)

	env.now = time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC)
	s.PollNotifications()
	s.PollNotifications()
	require.Len(t, s.Inbox().Items(), 1)
	assert.Equal(t, 1, s.Inbox().Unread())

	adv := s.Advice(ctx, mocktest.SkillScores{Speaking: 80, Writing: 60, Reading: 75, Listening: 72})
	assert.Equal(t, string(tasks.Writing), adv.FocusSkill)
	assert.False(t, adv.Generated)

	timer := s.NewFocusTimer(nil)
	assert.Equal(t, 90*60, timer.Total())
}

func TestProfileErrorsSurface(t *testing.T) {
	s := newEnv(t).open(t, false)
	_, err := s.Summary()
	assert.True(t, errors.Is(err, profile.ErrNotOnboarded))
	assert.ErrorIs(t, s.ReseedPlanner(context.Background()), profile.ErrNotOnboarded)
}

func TestSharedFocusTimerNotifiesOnCompletion(t *testing.T) {
	env := newEnv(t)
	s := env.open(t, false)
	_, err := s.Onboard(context.Background(), profile.Input{TargetScore: 65, DailyHours: 1, Level: profile.Beginner})
	require.NoError(t, err)

	f := s.Focus()
	assert.Same(t, f, s.Focus())
	assert.Equal(t, 30*60, f.Total())

	s.TickFocus()
	assert.Equal(t, f.Total(), f.TimeLeft(), "stopped timer must not move")

	f.Start()
	for range f.Total() {
		s.TickFocus()
	}
	assert.True(t, f.Completed())
	require.Len(t, s.Inbox().Items(), 1)
	assert.Equal(t, "Focus session complete", s.Inbox().Items()[0].Title)

	require.NoError(t, s.Reset(context.Background()))
	assert.NotSame(t, f, s.Focus())
}

type failingSpeaker struct{ failures []error }

func (f *failingSpeaker) Speak(string) {
	f.failures = append(f.failures, errors.New("fetch audio: unexpected status 503"))
}

func (f *failingSpeaker) Failures() []error {
	out := f.failures
	f.failures = nil
	return out
}

func TestSpeechFailuresReachInbox(t *testing.T) {
	env := newEnv(t)
	sp := &failingSpeaker{}
	s, err := New(context.Background(), env.st, Options{
		Speaker: sp,
		Now:     func() time.Time { return env.now },
		Warn:    func(f string, a ...any) { env.warns = append(env.warns, fmt.Sprintf(f, a...)) },
	})
	require.NoError(t, err)

	s.ReportSpeechFailures()
	assert.Zero(t, s.Inbox().Unread())

	s.Speaker().Speak("one")
	s.Speaker().Speak("two")
	s.ReportSpeechFailures()
	require.Equal(t, 1, s.Inbox().Unread())
	n := s.Inbox().Items()[0]
	assert.Equal(t, notify.KindWarning, n.Kind)
	assert.Contains(t, n.Message, "unexpected status 503 (and 1 more)")
	assert.Empty(t, env.warns)

	s.ReportSpeechFailures()
	assert.Equal(t, 1, s.Inbox().Unread())
}
