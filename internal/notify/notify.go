// Package notify generates the time and progress triggered reminders shown
// in the header. Notifications live only in memory.
package notify

import (
	"fmt"
	"slices"
	"time"

	"github.com/abhisek/pteprep/internal/mocktest"
	"github.com/abhisek/pteprep/internal/profile"
	"github.com/abhisek/pteprep/internal/progress"
	"github.com/abhisek/pteprep/internal/tasks"
)

// Kind sets how a notification is styled.
type Kind string

const (
	KindSuccess  Kind = "success"
	KindWarning  Kind = "warning"
	KindInfo     Kind = "info"
	KindReminder Kind = "reminder"
)

// Notification is a single message.
type Notification struct {
	ID        string
	Kind      Kind
	Title     string
	Message   string
	Timestamp time.Time
	Read      bool
	Action    string // label of the suggested action, empty if none
}

// PollInterval is how often the UI regenerates notifications.
const PollInterval = time.Minute

// Generate returns the notifications that apply at now. IDs are stable for
// a given trigger and date so repeated polls replace rather than pile up.
func Generate(now time.Time, p profile.Profile, b *tasks.Board) []Notification {
	var out []Notification
	date := now.Format(tasks.DayLayout)

	if now.Hour() == 8 && now.Minute() == 0 {
		out = append(out, Notification{
			ID:        "reminder-morning-" + date,
			Kind:      KindReminder,
			Title:     "Morning Study Time!",
			Message:   "Time for your morning speaking practice session.",
			Timestamp: now,
			Action:    "Start Practice",
		})
	}

	done, total := b.CompletedCount(), len(b.Tasks)
	if rate := progress.TodayCompletion(b); rate >= 80 && rate < 100 {
		out = append(out, Notification{
			ID:        "progress-" + date,
			Kind:      KindSuccess,
			Title:     "Great Progress!",
			Message:   fmt.Sprintf("You've completed %d/%d tasks today. Keep it up!", done, total),
			Timestamp: now,
		})
	}

	day := progress.CurrentDay(p.StartDate, now)
	if day > 0 && day%7 == 0 {
		out = append(out, Notification{
			ID:        "streak-" + date,
			Kind:      KindSuccess,
			Title:     "Week Complete!",
			Message:   fmt.Sprintf("Congratulations! You've completed %d week(s) of consistent study.", day/7),
			Timestamp: now,
		})
	}

	if slices.Contains(mocktest.MockDays(), day) {
		out = append(out, Notification{
			ID:        "mock-test-" + date,
			Kind:      KindInfo,
			Title:     "Mock Test Available",
			Message:   "A new mock test is ready for you to assess your progress.",
			Timestamp: now,
			Action:    "Take Test",
		})
	}
	return out
}

// MaxKept is the number of notifications the inbox retains.
const MaxKept = 10

// Inbox holds the most recent notifications, newest first.
type Inbox struct {
	items []Notification
}

// Merge puts fresh notifications in front, replacing any with the same ID,
// and trims to MaxKept. A replaced notification keeps its read flag.
func (in *Inbox) Merge(fresh []Notification) {
	read := map[string]bool{}
	for _, n := range in.items {
		if n.Read {
			read[n.ID] = true
		}
	}
	next := make([]Notification, 0, len(fresh)+len(in.items))
	for _, n := range fresh {
		n.Read = n.Read || read[n.ID]
		next = append(next, n)
	}
	for _, n := range in.items {
		if !slices.ContainsFunc(fresh, func(f Notification) bool { return f.ID == n.ID }) {
			next = append(next, n)
		}
	}
	if len(next) > MaxKept {
		next = next[:MaxKept]
	}
	in.items = next
}

// Items returns the notifications, newest first.
func (in *Inbox) Items() []Notification {
	return slices.Clone(in.items)
}

// Unread counts unread notifications.
func (in *Inbox) Unread() int {
	n := 0
	for _, it := range in.items {
		if !it.Read {
			n++
		}
	}
	return n
}

// MarkRead flags the notification with id as read.
func (in *Inbox) MarkRead(id string) bool {
	for i := range in.items {
		if in.items[i].ID == id {
			in.items[i].Read = true
			return true
		}
	}
	return false
}

// MarkAllRead flags every notification as read.
func (in *Inbox) MarkAllRead() {
	for i := range in.items {
		in.items[i].Read = true
	}
}

// Remove deletes the notification with id.
func (in *Inbox) Remove(id string) bool {
	i := slices.IndexFunc(in.items, func(n Notification) bool { return n.ID == id })
	if i < 0 {
		return false
	}
	in.items = slices.Delete(in.items, i, i+1)
	return true
}
