// Package profile holds the learner's configuration and the onboarding gate.
package profile

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Level is the learner's self-assessed English level.
type Level string

const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
)

// Levels lists the valid levels in ascending order.
var Levels = []Level{Beginner, Intermediate, Advanced}

var (
	ErrNotOnboarded  = errors.New("profile not onboarded")
	ErrInvalidTarget = errors.New("target score must be positive")
	ErrInvalidHours  = errors.New("daily hours must be at least 1")
	ErrInvalidLevel  = errors.New("unknown level")
)

// ParseLevel parses a level name case-insensitively.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Levels {
		if l == known {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// Label returns the display name of the level.
func (l Level) Label() string {
	switch l {
	case Beginner:
		return "Beginner"
	case Intermediate:
		return "Intermediate"
	case Advanced:
		return "Advanced"
	}
	return string(l)
}

// Profile is the persisted learner configuration.
type Profile struct {
	TargetScore  int       `json:"targetScore"`
	DailyHours   int       `json:"dailyHours"`
	CurrentLevel Level     `json:"currentLevel"`
	StartDate    time.Time `json:"startDate"`
	Completed    bool      `json:"completed"`
}

// Validate checks the invariants every stored profile must hold.
func (p Profile) Validate() error {
	if p.TargetScore <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTarget, p.TargetScore)
	}
	if p.DailyHours < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidHours, p.DailyHours)
	}
	if _, err := ParseLevel(string(p.CurrentLevel)); err != nil {
		return err
	}
	return nil
}

// Option is one onboarding choice shown to the learner.
type Option struct {
	Value       int
	Label       string
	Description string
}

// TargetOptions are the target scores offered during onboarding.
var TargetOptions = []Option{
	{65, "Good Score", "Most universities accept this"},
	{70, "High Score", "Competitive for top universities"},
	{75, "Excellent", "Elite universities & immigration"},
}

// HourOptions are the daily study budgets offered during onboarding.
var HourOptions = []Option{
	{1, "1 Hour", "Quick daily practice"},
	{2, "2 Hours", "Balanced approach"},
	{3, "3 Hours", "Intensive preparation"},
	{4, "4+ Hours", "Maximum intensity"},
}

// LevelDescriptions maps each level to its onboarding blurb.
var LevelDescriptions = map[Level]string{
	Beginner:     "Basic English skills (40-55 PTE)",
	Intermediate: "Good foundation (56-70 PTE)",
	Advanced:     "Strong English skills (71+ PTE)",
}

// Defaults are the onboarding selections before the learner changes anything.
func Defaults() Profile {
	return Profile{TargetScore: 65, DailyHours: 2, CurrentLevel: Intermediate}
}
