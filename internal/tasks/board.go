package tasks

import "time"

// DayLayout is the date format used to stamp counters.
const DayLayout = "2006-01-02"

// Board is the persisted task list with its counters.
type Board struct {
	// Day is the local date the counters were last reset or created on.
	Day   string `json:"day"`
	Tasks []Task `json:"tasks"`
}

// NewBoard generates a fresh board for the given tasks, stamped with now.
func NewBoard(list []Task, now time.Time) *Board {
	return &Board{Day: now.Format(DayLayout), Tasks: list}
}

// Find returns the task with id.
func (b *Board) Find(id string) (Task, error) {
	i := b.index(id)
	if i < 0 {
		return Task{}, unknown(id)
	}
	return b.Tasks[i], nil
}

// Increment adds one completed repetition. There is no upper bound, so a
// learner can go past the target.
func (b *Board) Increment(id string) (Task, error) {
	i := b.index(id)
	if i < 0 {
		return Task{}, unknown(id)
	}
	b.Tasks[i].Completed++
	return b.Tasks[i], nil
}

// Decrement removes one completed repetition, stopping at zero.
func (b *Board) Decrement(id string) (Task, error) {
	i := b.index(id)
	if i < 0 {
		return Task{}, unknown(id)
	}
	b.Tasks[i].Completed = max(0, b.Tasks[i].Completed-1)
	return b.Tasks[i], nil
}

// CompletedCount returns how many tasks have reached their daily target.
func (b *Board) CompletedCount() int {
	n := 0
	for _, t := range b.Tasks {
		if t.IsComplete() {
			n++
		}
	}
	return n
}

// Totals returns the summed completed and target counts.
func (b *Board) Totals() (completed, target int) {
	for _, t := range b.Tasks {
		completed += t.Completed
		target += t.DailyTarget
	}
	return completed, target
}

// Filter returns the tasks matching f. "all" or "" returns every task;
// otherwise f matches either a priority or a section.
func (b *Board) Filter(f string) []Task {
	if f == "" || f == "all" {
		return append([]Task(nil), b.Tasks...)
	}
	var out []Task
	for _, t := range b.Tasks {
		if string(t.Priority) == f || string(t.Section) == f {
			out = append(out, t)
		}
	}
	return out
}

// ResetCounters zeroes every completed counter and restamps the day.
func (b *Board) ResetCounters(now time.Time) {
	for i := range b.Tasks {
		b.Tasks[i].Completed = 0
	}
	b.Day = now.Format(DayLayout)
}

// RolloverIfNewDay resets counters when now falls on a later date than the
// board's stamp. It reports whether a reset happened.
func (b *Board) RolloverIfNewDay(now time.Time) bool {
	today := now.Format(DayLayout)
	if b.Day == today {
		return false
	}
	b.ResetCounters(now)
	return true
}

func (b *Board) index(id string) int {
	for i, t := range b.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
