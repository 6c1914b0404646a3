// Package tasks builds the daily practice catalog and tracks per-task counters.
package tasks

import (
	"errors"
	"fmt"
	"strings"
)

// Priority ranks how much a task matters for the target score.
type Priority string

const (
	High   Priority = "high"
	Medium Priority = "medium"
	Low    Priority = "low"
)

// Section is one of the four exam skills.
type Section string

const (
	Speaking  Section = "speaking"
	Writing   Section = "writing"
	Reading   Section = "reading"
	Listening Section = "listening"
)

// Sections lists the exam skills in exam order.
var Sections = []Section{Speaking, Writing, Reading, Listening}

// Label returns the capitalised section name.
func (s Section) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// ErrUnknownTask is returned when a task ID is not in the catalog.
var ErrUnknownTask = errors.New("unknown task")

// Task is one practice activity with a daily completion goal.
type Task struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Priority        Priority `json:"priority"`
	Section         Section  `json:"section"`
	DailyTarget     int      `json:"dailyTarget"`
	Completed       int      `json:"completed"`
	Description     string   `json:"description"`
	ScoringCriteria []string `json:"scoringCriteria"`
	CommonMistakes  []string `json:"commonMistakes"`
	Tips            []string `json:"tips"`
}

// IsComplete reports whether today's target has been reached.
func (t Task) IsComplete() bool {
	return t.Completed >= t.DailyTarget
}

// Remaining returns how many repetitions are left to hit the target.
func (t Task) Remaining() int {
	return max(0, t.DailyTarget-t.Completed)
}

func unknown(id string) error {
	return fmt.Errorf("%w: %q", ErrUnknownTask, id)
}
