package store

import (
	"context"
	"errors"
	"time"
)

// Record keys. Each key holds one JSON document, mirroring the layout the
// planner used in browser storage.
const (
	KeyProfile         = "pteProfile"
	KeyStudySessions   = "studySessions"
	KeyVocabulary      = "vocabularyWords"
	KeyTaskProgress    = "taskProgress"
	KeyMockTestHistory = "mockTestHistory"
)

// ErrCorrupt is returned by Load when a stored record cannot be decoded.
var ErrCorrupt = errors.New("corrupt record")

// Repo loads and saves a single persisted value.
type Repo[T any] interface {
	// Load returns the stored value, or nil if nothing has been saved yet.
	Load(ctx context.Context) (*T, error)

	// Save replaces the stored value.
	Save(ctx context.Context, v T) error

	// Delete removes the stored value. Deleting a missing value is not an error.
	Delete(ctx context.Context) error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	After int64     // sequence > After
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a stored LLM request row.
type LLMRequestEvent struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PracticeAttemptData captures one finished practice session.
type PracticeAttemptData struct {
	AttemptID     string
	TaskID        string
	Score         int
	ResponseChars int
	DurationSecs  int
}

// PracticeAttempt is a stored practice attempt row.
type PracticeAttempt struct {
	Sequence  int64
	Timestamp time.Time
	PracticeAttemptData
}

// TaskScoreSummary aggregates practice attempts for one task.
type TaskScoreSummary struct {
	TaskID   string
	Attempts int
	Average  float64
	Best     int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMRequests returns LLM request events, newest first.
	QueryLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// AppendPracticeAttempt records a finished practice session.
	AppendPracticeAttempt(ctx context.Context, data PracticeAttemptData) error

	// QueryPracticeAttempts returns practice attempts, newest first.
	QueryPracticeAttempts(ctx context.Context, opts QueryOpts) ([]PracticeAttempt, error)

	// PracticeSummary aggregates attempts per task, ordered by task ID.
	PracticeSummary(ctx context.Context) ([]TaskScoreSummary, error)
}
