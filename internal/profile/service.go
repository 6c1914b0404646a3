package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/pteprep/internal/store"
)

// Input holds the onboarding answers.
type Input struct {
	TargetScore int
	DailyHours  int
	Level       Level
}

// Service owns the persisted profile.
type Service struct {
	repo store.Repo[Profile]
}

// NewService creates a profile service backed by repo.
func NewService(repo store.Repo[Profile]) *Service {
	return &Service{repo: repo}
}

// Load returns the stored profile, or nil if onboarding never completed.
func (s *Service) Load(ctx context.Context) (*Profile, error) {
	p, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return p, nil
}

// Current returns the onboarded profile or ErrNotOnboarded.
func (s *Service) Current(ctx context.Context) (Profile, error) {
	p, err := s.Load(ctx)
	if err != nil {
		return Profile{}, err
	}
	if !IsOnboarded(p) {
		return Profile{}, ErrNotOnboarded
	}
	return *p, nil
}

// Onboard validates the answers, stamps the start date and persists the
// completed profile.
func (s *Service) Onboard(ctx context.Context, in Input, now time.Time) (Profile, error) {
	p := Profile{
		TargetScore:  in.TargetScore,
		DailyHours:   in.DailyHours,
		CurrentLevel: in.Level,
		StartDate:    now,
		Completed:    true,
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return Profile{}, fmt.Errorf("save profile: %w", err)
	}
	return p, nil
}

// Reset deletes the stored profile.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.repo.Delete(ctx); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

// IsOnboarded reports whether p gates the rest of the app open.
func IsOnboarded(p *Profile) bool {
	return p != nil && p.Completed
}
