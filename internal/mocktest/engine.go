// Package mocktest runs a full timed mock exam across the four sections and
// keeps the history of results.
package mocktest

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrFinished is returned by actions on a completed test.
var ErrFinished = errors.New("mock test already completed")

// Position locates a question inside the blueprint.
type Position struct {
	Section  int `json:"section"`
	Task     int `json:"task"`
	Question int `json:"question"`
}

// Response is a logged free-text answer.
type Response struct {
	Position
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// Question describes the question at the current position.
type Question struct {
	Position
	Section string
	Task    TaskType
	Number  int // 1-based within the task type
	Prompt  string
}

// Result is the record appended to the history when a test completes.
type Result struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	SkillScores
	OverallScore   int  `json:"overall"`
	Duration       int  `json:"duration"`
	CompletedTasks int  `json:"completedTasks"`
	TimedOut       bool `json:"timedOut"`
}

// Option configures an Engine.
type Option func(*Engine)

// WithScorer replaces the default random scorer.
func WithScorer(s Scorer) Option {
	return func(e *Engine) { e.scorer = s }
}

// WithClock sets the clock used for response and result timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithSections replaces the standard blueprint.
func WithSections(sections []SectionSpec) Option {
	return func(e *Engine) { e.sections = sections }
}

// WithDuration sets the countdown length in seconds.
func WithDuration(seconds int) Option {
	return func(e *Engine) { e.duration = seconds }
}

// OnComplete registers a callback invoked exactly once with the result.
func OnComplete(fn func(Result)) Option {
	return func(e *Engine) { e.onComplete = fn }
}

// Engine is one mock test run. Closing the UI simply drops the engine;
// nothing is checkpointed.
type Engine struct {
	sections  []SectionSpec
	pos       Position
	duration  int
	timeLeft  int
	input     string
	responses []Response
	result    *Result

	scorer     Scorer
	now        func() time.Time
	onComplete func(Result)
}

// New starts a mock test at the first question with the full timer.
func New(opts ...Option) *Engine {
	e := &Engine{
		sections: Blueprint(),
		duration: TestDuration,
		now:      time.Now,
	}
	for _, o := range opts {
		o(e)
	}
	if e.scorer == nil {
		e.scorer = NewRandomScorer(nil)
	}
	e.timeLeft = e.duration
	return e
}

func (e *Engine) Position() Position      { return e.pos }
func (e *Engine) TimeLeft() int           { return e.timeLeft }
func (e *Engine) Input() string           { return e.input }
func (e *Engine) Done() bool              { return e.result != nil }
func (e *Engine) Result() *Result         { return e.result }
func (e *Engine) Sections() []SectionSpec { return e.sections }
func (e *Engine) Responses() []Response   { return append([]Response(nil), e.responses...) }
func (e *Engine) TotalQuestions() int     { return TotalQuestions(e.sections) }
func (e *Engine) IsFirst() bool           { return e.pos == Position{} }

// IsLast reports whether the current question is the final one.
func (e *Engine) IsLast() bool {
	return e.index() == e.TotalQuestions()-1
}

// Current describes the question at the current position.
func (e *Engine) Current() Question {
	sec := e.sections[e.pos.Section]
	task := sec.Tasks[e.pos.Task]
	return Question{
		Position: e.pos,
		Section:  sec.Name,
		Task:     task,
		Number:   e.pos.Question + 1,
		Prompt:   Prompt(task.Name),
	}
}

// Progress is the fraction of questions reached, counting the current one.
func (e *Engine) Progress() float64 {
	total := e.TotalQuestions()
	if total == 0 {
		return 0
	}
	if e.Done() {
		return 1
	}
	return float64(e.index()+1) / float64(total)
}

// SetInput replaces the response buffer for the current question.
func (e *Engine) SetInput(text string) error {
	if e.Done() {
		return ErrFinished
	}
	e.input = text
	return nil
}

// Next logs the buffered response, clears the buffer and advances one
// question. Advancing past the final question completes the test.
func (e *Engine) Next() error {
	if e.Done() {
		return ErrFinished
	}
	if strings.TrimSpace(e.input) != "" {
		e.responses = append(e.responses, Response{
			Position:  e.pos,
			Response:  e.input,
			Timestamp: e.now(),
		})
	}
	e.input = ""

	sec := e.sections[e.pos.Section]
	switch {
	case e.pos.Question < sec.Tasks[e.pos.Task].Count-1:
		e.pos.Question++
	case e.pos.Task < len(sec.Tasks)-1:
		e.pos.Task++
		e.pos.Question = 0
	case e.pos.Section < len(e.sections)-1:
		e.pos.Section++
		e.pos.Task = 0
		e.pos.Question = 0
	default:
		e.complete(false)
	}
	return nil
}

// Previous steps back one question. It is a no-op at the first question.
func (e *Engine) Previous() error {
	if e.Done() {
		return ErrFinished
	}
	switch {
	case e.pos.Question > 0:
		e.pos.Question--
	case e.pos.Task > 0:
		e.pos.Task--
		e.pos.Question = e.sections[e.pos.Section].Tasks[e.pos.Task].Count - 1
	case e.pos.Section > 0:
		e.pos.Section--
		tasks := e.sections[e.pos.Section].Tasks
		e.pos.Task = len(tasks) - 1
		e.pos.Question = tasks[e.pos.Task].Count - 1
	}
	return nil
}

// Tick counts the timer down. Reaching zero completes the test wherever the
// learner is.
func (e *Engine) Tick(seconds int) {
	if e.Done() || seconds <= 0 {
		return
	}
	e.timeLeft = max(0, e.timeLeft-seconds)
	if e.timeLeft == 0 {
		e.complete(true)
	}
}

// Finish completes the test immediately.
func (e *Engine) Finish() error {
	if e.Done() {
		return ErrFinished
	}
	e.complete(false)
	return nil
}

func (e *Engine) complete(timedOut bool) {
	if e.result != nil {
		return
	}
	scores := e.scorer.Score(e.Responses())
	r := Result{
		ID:             uuid.NewString(),
		Date:           e.now().Format("2006-01-02"),
		SkillScores:    scores,
		OverallScore:   scores.Overall(),
		Duration:       e.duration - e.timeLeft,
		CompletedTasks: len(e.responses),
		TimedOut:       timedOut,
	}
	e.result = &r
	if e.onComplete != nil {
		e.onComplete(r)
	}
}

// index is the zero-based linear position across all sections.
func (e *Engine) index() int {
	n := 0
	for s := 0; s < e.pos.Section; s++ {
		n += e.sections[s].Questions()
	}
	tasks := e.sections[e.pos.Section].Tasks
	for t := 0; t < e.pos.Task; t++ {
		n += tasks[t].Count
	}
	return n + e.pos.Question
}
