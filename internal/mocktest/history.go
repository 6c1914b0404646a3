package mocktest

import (
	"context"
	"fmt"

	"github.com/abhisek/pteprep/internal/store"
)

// History is the append-only list of finished mock tests, oldest first.
type History struct {
	Results []Result `json:"results"`
}

// Latest returns the most recent result.
func (h History) Latest() (Result, bool) {
	if len(h.Results) == 0 {
		return Result{}, false
	}
	return h.Results[len(h.Results)-1], true
}

// Improvement is the overall-score change between the last two results.
func (h History) Improvement() (int, bool) {
	n := len(h.Results)
	if n < 2 {
		return 0, false
	}
	return h.Results[n-1].OverallScore - h.Results[n-2].OverallScore, true
}

// HistoryService persists the mock test history.
type HistoryService struct {
	repo store.Repo[History]
}

// NewHistoryService creates a history service backed by repo.
func NewHistoryService(repo store.Repo[History]) *HistoryService {
	return &HistoryService{repo: repo}
}

// Load returns the stored history, empty when nothing was saved.
func (s *HistoryService) Load(ctx context.Context) (History, error) {
	h, err := s.repo.Load(ctx)
	if err != nil {
		return History{}, fmt.Errorf("load mock history: %w", err)
	}
	if h == nil {
		return History{}, nil
	}
	return *h, nil
}

// Append adds r to the end of the history and saves it.
func (s *HistoryService) Append(ctx context.Context, r Result) (History, error) {
	h, err := s.Load(ctx)
	if err != nil {
		return History{}, err
	}
	h.Results = append(h.Results, r)
	if err := s.repo.Save(ctx, h); err != nil {
		return History{}, fmt.Errorf("save mock history: %w", err)
	}
	return h, nil
}

// Clear deletes the history.
func (s *HistoryService) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx); err != nil {
		return fmt.Errorf("clear mock history: %w", err)
	}
	return nil
}
