// Package practice runs a single timed practice attempt:
// preparation, then recording (or writing), then a scored completion.
package practice

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Phase is the current step of a practice attempt.
type Phase int

const (
	PhasePreparation Phase = iota // Reading the prompt before responding
	PhaseRecording                // Speaking or writing the response
	PhaseCompleted                // Scored, terminal
)

func (p Phase) String() string {
	switch p {
	case PhasePreparation:
		return "preparation"
	case PhaseRecording:
		return "recording"
	case PhaseCompleted:
		return "completed"
	}
	return "unknown"
}

var (
	ErrFinished   = errors.New("practice session already completed")
	ErrWrongPhase = errors.New("action not allowed in current phase")
)

// Result describes a completed attempt.
type Result struct {
	AttemptID   string
	TaskID      string
	Score       int
	Response    string
	Elapsed     int // seconds spent across both phases
	CompletedAt time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithScorer replaces the default random scorer.
func WithScorer(s Scorer) Option {
	return func(sess *Session) { sess.scorer = s }
}

// WithClock sets the clock used to stamp completion.
func WithClock(now func() time.Time) Option {
	return func(sess *Session) { sess.now = now }
}

// OnComplete registers a callback invoked exactly once with the result.
func OnComplete(fn func(Result)) Option {
	return func(sess *Session) { sess.onComplete = fn }
}

// Session is one practice attempt. It is not safe for concurrent use; the
// UI drives it from a single goroutine.
type Session struct {
	id       string
	taskID   string
	timing   Timing
	phase    Phase
	timeLeft int
	elapsed  int
	response string
	result   *Result

	scorer     Scorer
	now        func() time.Time
	onComplete func(Result)
	opts       []Option
}

// New starts an attempt for taskID in the preparation phase.
func New(taskID string, opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		taskID: taskID,
		timing: TimingFor(taskID),
		phase:  PhasePreparation,
		now:    time.Now,
		opts:   opts,
	}
	for _, o := range opts {
		o(s)
	}
	if s.scorer == nil {
		s.scorer = NewRandomScorer(nil)
	}
	s.timeLeft = s.timing.Preparation
	return s
}

// Restart returns a fresh attempt at the same task with the same options.
func (s *Session) Restart() *Session {
	return New(s.taskID, s.opts...)
}

func (s *Session) ID() string       { return s.id }
func (s *Session) TaskID() string   { return s.taskID }
func (s *Session) Phase() Phase     { return s.phase }
func (s *Session) TimeLeft() int    { return s.timeLeft }
func (s *Session) Timing() Timing   { return s.timing }
func (s *Session) Response() string { return s.response }

// Result returns the completed result, or nil while the attempt is running.
func (s *Session) Result() *Result { return s.result }

// Untimed reports whether preparation waits for an explicit start.
func (s *Session) Untimed() bool {
	return s.phase == PhasePreparation && s.timing.Preparation == 0
}

// Tick advances the timer by seconds. A single call may cross from
// preparation into recording and on to completion. Untimed preparation
// does not count down.
func (s *Session) Tick(seconds int) {
	for seconds > 0 && s.phase != PhaseCompleted {
		if s.Untimed() {
			return
		}
		step := min(seconds, s.timeLeft)
		s.timeLeft -= step
		s.elapsed += step
		seconds -= step
		if s.timeLeft > 0 {
			return
		}
		switch s.phase {
		case PhasePreparation:
			s.enterRecording()
		case PhaseRecording:
			s.complete()
		}
	}
}

// StartRecording skips the rest of preparation.
func (s *Session) StartRecording() error {
	if s.phase != PhasePreparation {
		return s.phaseErr()
	}
	s.enterRecording()
	return nil
}

// Stop ends the recording early and scores the attempt.
func (s *Session) Stop() error {
	if s.phase != PhaseRecording {
		return s.phaseErr()
	}
	s.complete()
	return nil
}

// SetResponse replaces the typed response.
func (s *Session) SetResponse(text string) error {
	if s.phase == PhaseCompleted {
		return ErrFinished
	}
	s.response = text
	return nil
}

func (s *Session) enterRecording() {
	s.phase = PhaseRecording
	s.timeLeft = s.timing.Recording
	if s.timeLeft == 0 {
		s.complete()
	}
}

func (s *Session) complete() {
	if s.result != nil {
		return
	}
	s.phase = PhaseCompleted
	s.timeLeft = 0
	r := Result{
		AttemptID:   s.id,
		TaskID:      s.taskID,
		Score:       s.scorer.Score(s.taskID, s.response),
		Response:    s.response,
		Elapsed:     s.elapsed,
		CompletedAt: s.now(),
	}
	s.result = &r
	if s.onComplete != nil {
		s.onComplete(r)
	}
}

func (s *Session) phaseErr() error {
	if s.phase == PhaseCompleted {
		return ErrFinished
	}
	return ErrWrongPhase
}
