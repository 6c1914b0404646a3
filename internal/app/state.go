package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/abhisek/pteprep/internal/coach"
	"github.com/abhisek/pteprep/internal/focus"
	"github.com/abhisek/pteprep/internal/llm"
	"github.com/abhisek/pteprep/internal/mocktest"
	"github.com/abhisek/pteprep/internal/notify"
	"github.com/abhisek/pteprep/internal/planner"
	"github.com/abhisek/pteprep/internal/practice"
	"github.com/abhisek/pteprep/internal/profile"
	"github.com/abhisek/pteprep/internal/progress"
	"github.com/abhisek/pteprep/internal/speech"
	"github.com/abhisek/pteprep/internal/store"
	"github.com/abhisek/pteprep/internal/tasks"
	"github.com/abhisek/pteprep/internal/vocab"
)

// Options configures a State.
type Options struct {
	// DailyReset zeroes task counters when the stored board is from an
	// earlier day.
	DailyReset bool

	Speaker  speech.Speaker
	Provider llm.Provider // nil disables model-written coaching

	Now  func() time.Time
	Rand *rand.Rand
	Warn func(format string, args ...any)
}

// OptionsFromEnv reads PTEPREP_DAILY_RESET and the speech settings.
func OptionsFromEnv() Options {
	v := os.Getenv("PTEPREP_DAILY_RESET")
	return Options{
		DailyReset: v == "1" || v == "true" || v == "yes",
		Speaker:    speech.New(speech.ConfigFromEnv()),
	}
}

// DefaultCalculatorScore seeds the score calculator before any mock test.
const DefaultCalculatorScore = 65

// State owns every persisted store and is the only path through which the
// UI and CLI mutate them. Each mutation saves its own store immediately.
type State struct {
	events   store.EventRepo
	profiles *profile.Service
	boards   store.Repo[tasks.Board]
	sessions store.Repo[[]planner.Session]
	words    store.Repo[[]vocab.Word]
	mocks    *mocktest.HistoryService

	profile *profile.Profile
	board   *tasks.Board
	planner *planner.Planner
	deck    *vocab.Deck
	history mocktest.History
	inbox   notify.Inbox
	focus   *focus.Timer

	coach      *coach.Coach
	speaker    speech.Speaker
	dailyReset bool
	now        func() time.Time
	rng        *rand.Rand
	warn       func(format string, args ...any)
}

// New loads all state from st. Corrupt records are reported through
// Options.Warn and replaced by defaults.
func New(ctx context.Context, st *store.Store, opts Options) (*State, error) {
	s := &State{
		events:     st.EventRepo(),
		profiles:   profile.NewService(store.NewJSONRepo[profile.Profile](st, store.KeyProfile)),
		boards:     store.NewJSONRepo[tasks.Board](st, store.KeyTaskProgress),
		sessions:   store.NewJSONRepo[[]planner.Session](st, store.KeyStudySessions),
		words:      store.NewJSONRepo[[]vocab.Word](st, store.KeyVocabulary),
		mocks:      mocktest.NewHistoryService(store.NewJSONRepo[mocktest.History](st, store.KeyMockTestHistory)),
		coach:      coach.New(opts.Provider),
		speaker:    opts.Speaker,
		dailyReset: opts.DailyReset,
		now:        opts.Now,
		rng:        opts.Rand,
		warn:       opts.Warn,
	}
	if s.speaker == nil {
		s.speaker = speech.Nop{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if s.warn == nil {
		s.warn = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
		}
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *State) load(ctx context.Context) error {
	p, err := s.profiles.Load(ctx)
	if s.recovered(err, "profile") {
		p, err = nil, nil
	}
	if err != nil {
		return err
	}
	s.profile = p

	deck, err := vocab.Load(ctx, s.words, vocab.WithRand(s.rng), vocab.WithClock(s.now))
	if s.recovered(err, "vocabulary") {
		if err = s.words.Delete(ctx); err == nil {
			deck, err = vocab.Load(ctx, s.words, vocab.WithRand(s.rng), vocab.WithClock(s.now))
		}
	}
	if err != nil {
		return err
	}
	s.deck = deck

	h, err := s.mocks.Load(ctx)
	if s.recovered(err, "mock test history") {
		h, err = mocktest.History{}, nil
	}
	if err != nil {
		return err
	}
	s.history = h

	if profile.IsOnboarded(s.profile) {
		return s.loadPlan(ctx)
	}
	return nil
}

// recovered reports whether err is a corrupt record, warning if so.
func (s *State) recovered(err error, what string) bool {
	if err == nil || !errors.Is(err, store.ErrCorrupt) {
		return false
	}
	s.warn("stored %s could not be read, using defaults: %v", what, err)
	return true
}

// loadPlan loads the board and planner that depend on the profile.
func (s *State) loadPlan(ctx context.Context) error {
	p := *s.profile

	b, err := s.boards.Load(ctx)
	if s.recovered(err, "task progress") {
		b, err = nil, nil
	}
	if err != nil {
		return fmt.Errorf("load task progress: %w", err)
	}
	if b == nil || len(b.Tasks) == 0 {
		b = tasks.NewBoard(tasks.Generate(p), s.now())
		if err := s.boards.Save(ctx, *b); err != nil {
			return fmt.Errorf("save task progress: %w", err)
		}
	} else if s.dailyReset && b.RolloverIfNewDay(s.now()) {
		if err := s.boards.Save(ctx, *b); err != nil {
			return fmt.Errorf("save task progress: %w", err)
		}
	}
	s.board = b

	pl, err := planner.Load(ctx, s.sessions, p.DailyHours, s.now)
	if s.recovered(err, "study sessions") {
		if err = s.sessions.Delete(ctx); err == nil {
			pl, err = planner.Load(ctx, s.sessions, p.DailyHours, s.now)
		}
	}
	if err != nil {
		return err
	}
	s.planner = pl
	return nil
}

// Onboarded reports whether the learner has completed onboarding.
func (s *State) Onboarded() bool { return profile.IsOnboarded(s.profile) }

// Profile returns the current profile or ErrNotOnboarded.
func (s *State) Profile() (profile.Profile, error) {
	if !s.Onboarded() {
		return profile.Profile{}, profile.ErrNotOnboarded
	}
	return *s.profile, nil
}

// Onboard saves the profile and regenerates today's task board from it.
func (s *State) Onboard(ctx context.Context, in profile.Input) (profile.Profile, error) {
	p, err := s.profiles.Onboard(ctx, in, s.now())
	if err != nil {
		return profile.Profile{}, err
	}
	s.profile = &p
	s.focus = nil
	if err := s.boards.Delete(ctx); err != nil {
		return p, fmt.Errorf("clear task progress: %w", err)
	}
	return p, s.loadPlan(ctx)
}

// Reset deletes the profile and task progress. Planner, vocabulary and mock
// history are kept.
func (s *State) Reset(ctx context.Context) error {
	if err := s.profiles.Reset(ctx); err != nil {
		return err
	}
	if err := s.boards.Delete(ctx); err != nil {
		return fmt.Errorf("delete task progress: %w", err)
	}
	s.profile, s.board, s.planner, s.focus = nil, nil, nil, nil
	s.inbox = notify.Inbox{}
	return nil
}

// Board returns the task board, nil before onboarding.
func (s *State) Board() *tasks.Board { return s.board }

// Planner returns the study planner, nil before onboarding.
func (s *State) Planner() *planner.Planner { return s.planner }

// Deck returns the vocabulary deck.
func (s *State) Deck() *vocab.Deck { return s.deck }

// History returns the mock test history, oldest first.
func (s *State) History() mocktest.History { return s.history }

// Inbox returns the notification inbox.
func (s *State) Inbox() *notify.Inbox { return &s.inbox }

// Speaker returns the configured speech output.
func (s *State) Speaker() speech.Speaker { return s.speaker }

// Now returns the state's clock reading.
func (s *State) Now() time.Time { return s.now() }

// Events exposes the event log for reporting commands.
func (s *State) Events() store.EventRepo { return s.events }

func (s *State) requireBoard() error {
	if s.board == nil {
		return profile.ErrNotOnboarded
	}
	return nil
}

func (s *State) saveBoard(ctx context.Context) error {
	if err := s.boards.Save(ctx, *s.board); err != nil {
		return fmt.Errorf("save task progress: %w", err)
	}
	return nil
}

// IncrementTask adds one completed item to a task.
func (s *State) IncrementTask(ctx context.Context, id string) (tasks.Task, error) {
	if err := s.requireBoard(); err != nil {
		return tasks.Task{}, err
	}
	t, err := s.board.Increment(id)
	if err != nil {
		return tasks.Task{}, err
	}
	return t, s.saveBoard(ctx)
}

// DecrementTask removes one completed item, stopping at zero.
func (s *State) DecrementTask(ctx context.Context, id string) (tasks.Task, error) {
	if err := s.requireBoard(); err != nil {
		return tasks.Task{}, err
	}
	t, err := s.board.Decrement(id)
	if err != nil {
		return tasks.Task{}, err
	}
	return t, s.saveBoard(ctx)
}

// ResetTaskCounters starts a fresh day on the board.
func (s *State) ResetTaskCounters(ctx context.Context) error {
	if err := s.requireBoard(); err != nil {
		return err
	}
	s.board.ResetCounters(s.now())
	return s.saveBoard(ctx)
}

// ReseedPlanner replaces the study plan with the default week.
func (s *State) ReseedPlanner(ctx context.Context) error {
	if s.planner == nil {
		return profile.ErrNotOnboarded
	}
	return s.planner.Reseed(ctx, s.profile.DailyHours)
}

// StartPractice begins a practice attempt for taskID.
func (s *State) StartPractice(taskID string, onComplete func(practice.Result)) *practice.Session {
	opts := []practice.Option{
		practice.WithScorer(practice.NewRandomScorer(s.rng)),
		practice.WithClock(s.now),
	}
	if onComplete != nil {
		opts = append(opts, practice.OnComplete(onComplete))
	}
	return practice.New(taskID, opts...)
}

// RecordPractice logs a finished attempt and counts it toward the task's
// daily target when the task is on the board.
func (s *State) RecordPractice(ctx context.Context, r practice.Result) error {
	err := s.events.AppendPracticeAttempt(ctx, store.PracticeAttemptData{
		AttemptID:     r.AttemptID,
		TaskID:        r.TaskID,
		Score:         r.Score,
		ResponseChars: len([]rune(r.Response)),
		DurationSecs:  r.Elapsed,
	})
	if err != nil {
		return fmt.Errorf("record practice attempt: %w", err)
	}
	if s.board == nil {
		return nil
	}
	if _, err := s.board.Find(r.TaskID); errors.Is(err, tasks.ErrUnknownTask) {
		return nil
	}
	_, err = s.IncrementTask(ctx, r.TaskID)
	return err
}

// PracticeSummary returns per-task practice averages.
func (s *State) PracticeSummary(ctx context.Context) ([]store.TaskScoreSummary, error) {
	return s.events.PracticeSummary(ctx)
}

// StartMock begins a full mock test.
func (s *State) StartMock(onComplete func(mocktest.Result)) *mocktest.Engine {
	opts := []mocktest.Option{
		mocktest.WithScorer(mocktest.NewRandomScorer(s.rng)),
		mocktest.WithClock(s.now),
	}
	if onComplete != nil {
		opts = append(opts, mocktest.OnComplete(onComplete))
	}
	return mocktest.New(opts...)
}

// RecordMock appends a finished mock test to the history.
func (s *State) RecordMock(ctx context.Context, r mocktest.Result) error {
	h, err := s.mocks.Append(ctx, r)
	if err != nil {
		return err
	}
	s.history = h
	return nil
}

// ClearMockHistory empties the mock test history.
func (s *State) ClearMockHistory(ctx context.Context) error {
	if err := s.mocks.Clear(ctx); err != nil {
		return err
	}
	s.history = mocktest.History{}
	return nil
}

// Day is the current plan day, 0 before onboarding.
func (s *State) Day() int {
	if !s.Onboarded() {
		return 0
	}
	return progress.CurrentDay(s.profile.StartDate, s.now())
}

// MockSchedule lists the planned mock tests for the current day.
func (s *State) MockSchedule() []mocktest.Scheduled {
	return mocktest.Schedule(s.Day())
}

// Summary computes the dashboard figures.
func (s *State) Summary() (progress.Summary, error) {
	if err := s.requireBoard(); err != nil {
		return progress.Summary{}, err
	}
	return progress.Summarize(*s.profile, s.board, s.now()), nil
}

// PollNotifications merges the notifications due now into the inbox.
func (s *State) PollNotifications() {
	if s.board == nil {
		return
	}
	s.inbox.Merge(notify.Generate(s.now(), *s.profile, s.board))
}

// ReportSpeechFailures moves background speech errors into the inbox. The
// terminal belongs to the UI while it runs, so they are never printed.
func (s *State) ReportSpeechFailures() {
	r, ok := s.speaker.(speech.FailureReporter)
	if !ok {
		return
	}
	failures := r.Failures()
	if len(failures) == 0 {
		return
	}
	now := s.now()
	msg := failures[len(failures)-1].Error()
	if n := len(failures); n > 1 {
		msg = fmt.Sprintf("%s (and %d more)", msg, n-1)
	}
	s.inbox.Merge([]notify.Notification{{
		ID:        "speech-" + now.Format(time.RFC3339Nano),
		Kind:      notify.KindWarning,
		Title:     "Speech unavailable",
		Message:   msg,
		Timestamp: now,
	}})
}

// NewFocusTimer returns a focus timer sized for the learner's daily hours.
func (s *State) NewFocusTimer(onComplete func()) *focus.Timer {
	hours := profile.Defaults().DailyHours
	if s.Onboarded() {
		hours = s.profile.DailyHours
	}
	return focus.New(focus.TargetMinutes(hours), onComplete)
}

// Focus returns the shared focus timer, creating it on first use. When it
// runs out a notification is added to the inbox.
func (s *State) Focus() *focus.Timer {
	if s.focus == nil {
		s.focus = s.NewFocusTimer(func() {
			now := s.now()
			s.inbox.Merge([]notify.Notification{{
				ID:        "focus-" + now.Format(time.RFC3339),
				Kind:      notify.KindSuccess,
				Title:     "Focus session complete",
				Message:   "Great job! Take a short break before the next block.",
				Timestamp: now,
			}})
		})
	}
	return s.focus
}

// TickFocus advances a running focus timer by one second.
func (s *State) TickFocus() {
	if s.focus != nil && s.focus.Running() {
		s.focus.Tick(1)
	}
}

// CalculatorScores are the starting scores for the score calculator: the
// latest mock result, or DefaultCalculatorScore for every skill.
func (s *State) CalculatorScores() mocktest.SkillScores {
	if r, ok := s.history.Latest(); ok {
		return r.SkillScores
	}
	d := DefaultCalculatorScore
	return mocktest.SkillScores{Speaking: d, Writing: d, Reading: d, Listening: d}
}

// Advice asks the coach about scores against the learner's target.
func (s *State) Advice(ctx context.Context, scores mocktest.SkillScores) coach.Advice {
	in := coach.Input{Scores: scores, Target: profile.Defaults().TargetScore}
	if s.Onboarded() {
		in.Target = s.profile.TargetScore
		in.Level = s.profile.CurrentLevel
		in.Day = s.Day()
	}
	if sum, err := s.events.PracticeSummary(ctx); err == nil {
		in.Practice = sum
	}
	return s.coach.Recommend(ctx, in)
}
