package planner

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/abhisek/pteprep/internal/store"
)

// SeedDays is how many days ahead the starter plan covers.
const SeedDays = 7

var (
	morningTasks = []string{"Read Aloud", "Repeat Sentence", "Describe Image"}
	eveningTasks = []string{"Summarize Written Text", "Write Essay", "Mock Test Practice"}
)

// Seed builds the starter plan for the next SeedDays days starting today.
// Every day gets an evening block; a morning block is added for learners
// studying at least two hours, and both blocks widen at three hours.
func Seed(dailyHours int, now time.Time) []Session {
	var out []Session
	for i := 0; i < SeedDays; i++ {
		date := now.AddDate(0, 0, i).Format(DateLayout)

		if dailyHours >= 2 {
			end := "09:30"
			if dailyHours >= 3 {
				end = "10:00"
			}
			out = append(out, Session{
				ID:        "morning-" + date,
				Date:      date,
				StartTime: "08:00",
				EndTime:   end,
				Tasks:     slices.Clone(morningTasks),
			})
		}

		start, end := "20:00", "21:30"
		if dailyHours >= 3 {
			start, end = "19:00", "21:00"
		}
		out = append(out, Session{
			ID:        "evening-" + date,
			Date:      date,
			StartTime: start,
			EndTime:   end,
			Tasks:     slices.Clone(eveningTasks),
		})
	}
	return out
}

// Planner owns the persisted study sessions. Every mutation is saved
// before it becomes visible.
type Planner struct {
	repo     store.Repo[[]Session]
	sessions []Session
	now      func() time.Time
}

// Load reads the stored sessions. When nothing has been stored yet it seeds
// and saves a starter plan for dailyHours. A stored empty plan stays empty.
func Load(ctx context.Context, repo store.Repo[[]Session], dailyHours int, now func() time.Time) (*Planner, error) {
	if now == nil {
		now = time.Now
	}
	p := &Planner{repo: repo, now: now}

	stored, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load study sessions: %w", err)
	}
	if stored != nil {
		p.sessions = *stored
		return p, nil
	}

	if err := p.commit(ctx, Seed(dailyHours, now())); err != nil {
		return nil, err
	}
	return p, nil
}

// All returns every session in storage order.
func (p *Planner) All() []Session {
	return slices.Clone(p.sessions)
}

// Get returns the session with id.
func (p *Planner) Get(id string) (Session, error) {
	i := p.index(id)
	if i < 0 {
		return Session{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return p.sessions[i], nil
}

// Create validates d, assigns an ID and saves the new session.
func (p *Planner) Create(ctx context.Context, d Draft) (Session, error) {
	if err := d.Validate(); err != nil {
		return Session{}, err
	}
	s := Session{
		ID:        d.Date + "-" + d.StartTime + "-" + strconv.FormatInt(p.now().UnixNano(), 10),
		Date:      d.Date,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
		Tasks:     slices.Clone(d.Tasks),
		Notes:     d.Notes,
	}
	next := append(slices.Clone(p.sessions), s)
	if err := p.commit(ctx, next); err != nil {
		return Session{}, err
	}
	return s, nil
}

// Update replaces the editable fields of the session with id.
func (p *Planner) Update(ctx context.Context, id string, d Draft) (Session, error) {
	if err := d.Validate(); err != nil {
		return Session{}, err
	}
	i := p.index(id)
	if i < 0 {
		return Session{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	next := slices.Clone(p.sessions)
	s := next[i]
	s.Date, s.StartTime, s.EndTime = d.Date, d.StartTime, d.EndTime
	s.Tasks = slices.Clone(d.Tasks)
	s.Notes = d.Notes
	next[i] = s
	if err := p.commit(ctx, next); err != nil {
		return Session{}, err
	}
	return s, nil
}

// Delete removes the session with id.
func (p *Planner) Delete(ctx context.Context, id string) error {
	i := p.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	next := slices.Delete(slices.Clone(p.sessions), i, i+1)
	return p.commit(ctx, next)
}

// ToggleComplete flips the completed flag of the session with id.
func (p *Planner) ToggleComplete(ctx context.Context, id string) (Session, error) {
	i := p.index(id)
	if i < 0 {
		return Session{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	next := slices.Clone(p.sessions)
	next[i].Completed = !next[i].Completed
	if err := p.commit(ctx, next); err != nil {
		return Session{}, err
	}
	return next[i], nil
}

// ForDate returns the sessions on date ordered by start time.
func (p *Planner) ForDate(date string) []Session {
	var out []Session
	for _, s := range p.sessions {
		if s.Date == date {
			out = append(out, s)
		}
	}
	slices.SortStableFunc(out, func(a, b Session) int {
		switch {
		case a.StartTime < b.StartTime:
			return -1
		case a.StartTime > b.StartTime:
			return 1
		}
		return 0
	})
	return out
}

// TodayStats returns completed and total session counts for today.
func (p *Planner) TodayStats() (completed, total int) {
	for _, s := range p.ForDate(p.now().Format(DateLayout)) {
		total++
		if s.Completed {
			completed++
		}
	}
	return completed, total
}

// WeekDates returns today and the following six dates.
func WeekDates(now time.Time) []string {
	out := make([]string, SeedDays)
	for i := range out {
		out[i] = now.AddDate(0, 0, i).Format(DateLayout)
	}
	return out
}

// Reseed replaces every session with a fresh starter plan.
func (p *Planner) Reseed(ctx context.Context, dailyHours int) error {
	return p.commit(ctx, Seed(dailyHours, p.now()))
}

func (p *Planner) commit(ctx context.Context, next []Session) error {
	if err := p.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("save study sessions: %w", err)
	}
	p.sessions = next
	return nil
}

func (p *Planner) index(id string) int {
	return slices.IndexFunc(p.sessions, func(s Session) bool { return s.ID == id })
}
