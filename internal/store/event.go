package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	entsql "entgo.io/ent/dialect/sql"
)

// sequenceCounter manages the global monotonic sequence number shared across
// all event tables. Practice attempts and LLM requests live in separate tables,
// so per-table auto-increment IDs can't order them against each other.
//
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo backed by the ent SQL driver and the global
// sequence counter.
type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	c := LlmRequestEventsColumns
	query, args := builder().
		Insert(LlmRequestEventsTable.Name).
		Columns(c[1].Name, c[2].Name, c[3].Name, c[4].Name, c[5].Name,
			c[6].Name, c[7].Name, c[8].Name, c[9].Name, c[10].Name).
		Values(seqNum, now().UTC(), data.Provider, data.Model, data.Purpose,
			data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success, data.ErrorMessage).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	c := LlmRequestEventsColumns
	sel := builder().
		Select(c[1].Name, c[2].Name, c[3].Name, c[4].Name, c[5].Name,
			c[6].Name, c[7].Name, c[8].Name, c[9].Name, c[10].Name).
		From(entsql.Table(LlmRequestEventsTable.Name))
	applyQueryOpts(sel, opts)

	query, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}
	defer rows.Close()

	var out []LLMRequestEvent
	for rows.Next() {
		var e LLMRequestEvent
		if err := rows.Scan(&e.Sequence, &e.Timestamp, &e.Provider, &e.Model, &e.Purpose,
			&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success, &e.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan LLM request event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) AppendPracticeAttempt(ctx context.Context, data PracticeAttemptData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	c := PracticeAttemptsColumns
	query, args := builder().
		Insert(PracticeAttemptsTable.Name).
		Columns(c[1].Name, c[2].Name, c[3].Name, c[4].Name, c[5].Name, c[6].Name, c[7].Name).
		Values(seqNum, now().UTC(), data.AttemptID, data.TaskID, data.Score,
			data.ResponseChars, data.DurationSecs).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save practice attempt: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryPracticeAttempts(ctx context.Context, opts QueryOpts) ([]PracticeAttempt, error) {
	c := PracticeAttemptsColumns
	sel := builder().
		Select(c[1].Name, c[2].Name, c[3].Name, c[4].Name, c[5].Name, c[6].Name, c[7].Name).
		From(entsql.Table(PracticeAttemptsTable.Name))
	applyQueryOpts(sel, opts)

	query, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query practice attempts: %w", err)
	}
	defer rows.Close()

	var out []PracticeAttempt
	for rows.Next() {
		var a PracticeAttempt
		if err := rows.Scan(&a.Sequence, &a.Timestamp, &a.AttemptID, &a.TaskID, &a.Score,
			&a.ResponseChars, &a.DurationSecs); err != nil {
			return nil, fmt.Errorf("scan practice attempt: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *eventRepo) PracticeSummary(ctx context.Context) ([]TaskScoreSummary, error) {
	taskCol := PracticeAttemptsColumns[4].Name
	scoreCol := PracticeAttemptsColumns[5].Name

	query, args := builder().
		Select(
			taskCol,
			entsql.As(entsql.Count("*"), "attempts"),
			entsql.As(entsql.Avg(scoreCol), "average"),
			entsql.As(entsql.Max(scoreCol), "best"),
		).
		From(entsql.Table(PracticeAttemptsTable.Name)).
		GroupBy(taskCol).
		OrderBy(taskCol).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query practice summary: %w", err)
	}
	defer rows.Close()

	var out []TaskScoreSummary
	for rows.Next() {
		var s TaskScoreSummary
		if err := rows.Scan(&s.TaskID, &s.Attempts, &s.Average, &s.Best); err != nil {
			return nil, fmt.Errorf("scan practice summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// applyQueryOpts adds the filters shared by every event table.
func applyQueryOpts(sel *entsql.Selector, opts QueryOpts) {
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("timestamp", opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("timestamp", opts.To.UTC()))
	}
	sel.OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
}
