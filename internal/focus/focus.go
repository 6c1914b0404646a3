// Package focus implements the countdown study timer shown on the dashboard.
package focus

import "fmt"

// MinutesPerHour is the share of each planned study hour covered by one
// focus block.
const MinutesPerHour = 30

// TargetMinutes returns the focus block length for the given daily hours.
func TargetMinutes(dailyHours int) int {
	return max(1, dailyHours) * MinutesPerHour
}

// Timer counts down a fixed number of seconds. It is driven by Tick from
// the UI's one-second ticker and is not safe for concurrent use.
type Timer struct {
	total      int
	left       int
	running    bool
	completed  bool
	onComplete func()
}

// New returns a stopped timer of targetMinutes minutes. onComplete may be nil.
func New(targetMinutes int, onComplete func()) *Timer {
	total := max(1, targetMinutes) * 60
	return &Timer{total: total, left: total, onComplete: onComplete}
}

// Start resumes the countdown. A completed timer stays completed until Reset.
func (t *Timer) Start() {
	if !t.completed {
		t.running = true
	}
}

// Pause stops the countdown without losing elapsed time.
func (t *Timer) Pause() { t.running = false }

// Toggle switches between running and paused.
func (t *Timer) Toggle() {
	if t.running {
		t.Pause()
		return
	}
	t.Start()
}

// Reset returns the timer to its full length, stopped.
func (t *Timer) Reset() {
	t.left = t.total
	t.running = false
	t.completed = false
}

// Tick advances a running timer by the given seconds. Reaching zero stops
// the timer and fires the completion callback once.
func (t *Timer) Tick(seconds int) {
	if !t.running || t.completed || seconds <= 0 {
		return
	}
	t.left -= seconds
	if t.left > 0 {
		return
	}
	t.left = 0
	t.running = false
	t.completed = true
	if t.onComplete != nil {
		t.onComplete()
	}
}

func (t *Timer) Running() bool   { return t.running }
func (t *Timer) Completed() bool { return t.completed }
func (t *Timer) TimeLeft() int   { return t.left }
func (t *Timer) Total() int      { return t.total }

// Progress is the elapsed fraction in [0, 1].
func (t *Timer) Progress() float64 {
	return float64(t.total-t.left) / float64(t.total)
}

// Clock formats seconds as MM:SS.
func Clock(seconds int) string {
	seconds = max(0, seconds)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
