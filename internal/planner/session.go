// Package planner keeps the learner's calendar of study sessions.
package planner

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO date format used for session dates.
const DateLayout = "2006-01-02"

var (
	ErrSessionNotFound = errors.New("study session not found")
	ErrInvalidDate     = errors.New("invalid date, want YYYY-MM-DD")
	ErrInvalidTime     = errors.New("invalid time, want HH:MM")
	ErrInvalidRange    = errors.New("end time must be after start time")
)

// Session is one scheduled study block. Tasks are plain task names; they
// are not checked against the task catalog.
type Session struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Tasks     []string `json:"tasks"`
	Completed bool     `json:"completed"`
	Notes     string   `json:"notes"`
}

// Draft holds the user-editable fields of a session.
type Draft struct {
	Date      string
	StartTime string
	EndTime   string
	Tasks     []string
	Notes     string
}

// Validate checks the date and the time range.
func (d Draft) Validate() error {
	if _, err := time.Parse(DateLayout, d.Date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, d.Date)
	}
	for _, v := range []string{d.StartTime, d.EndTime} {
		if !validClock(v) {
			return fmt.Errorf("%w: %q", ErrInvalidTime, v)
		}
	}
	// Zero-padded HH:MM compares correctly as strings.
	if d.EndTime <= d.StartTime {
		return fmt.Errorf("%w: %s-%s", ErrInvalidRange, d.StartTime, d.EndTime)
	}
	return nil
}

// Duration returns the length of the session.
func (s Session) Duration() time.Duration {
	start, err1 := time.Parse("15:04", s.StartTime)
	end, err2 := time.Parse("15:04", s.EndTime)
	if err1 != nil || err2 != nil || !end.After(start) {
		return 0
	}
	return end.Sub(start)
}

// ParseTasks splits a comma-separated task list, dropping blanks.
func ParseTasks(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func validClock(v string) bool {
	if len(v) != 5 {
		return false
	}
	_, err := time.Parse("15:04", v)
	return err == nil
}
