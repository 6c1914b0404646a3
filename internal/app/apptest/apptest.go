// Package apptest builds an app.State on an in-memory database for screen
// and command tests.
package apptest

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/pteprep/internal/app"
	"github.com/abhisek/pteprep/internal/profile"
	"github.com/abhisek/pteprep/internal/speech"
	"github.com/abhisek/pteprep/internal/store"
)

// Start is the default clock reading: a Monday morning.
var Start = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

// Learner is the profile used by Onboarded.
var Learner = profile.Input{TargetScore: 65, DailyHours: 2, Level: profile.Intermediate}

// Env is a State plus the knobs tests turn.
type Env struct {
	State   *app.State
	Store   *store.Store
	Now     time.Time
	Spoken  *Recorder
	Options app.Options
}

// Recorder is a speech.Speaker that remembers what it was asked to say.
type Recorder struct{ Said []string }

func (r *Recorder) Speak(text string) { r.Said = append(r.Said, text) }

var _ speech.Speaker = (*Recorder)(nil)

// New opens a fresh database named after the test.
func New(t testing.TB) *Env {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	st, err := store.Open(fmt.Sprintf("file:apptest_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	e := &Env{Store: st, Now: Start, Spoken: &Recorder{}}
	e.Options = app.Options{
		Speaker: e.Spoken,
		Now:     func() time.Time { return e.Now },
		Rand:    rand.New(rand.NewPCG(7, 11)),
		Warn:    func(string, ...any) {},
	}
	e.State, err = app.New(context.Background(), st, e.Options)
	require.NoError(t, err)
	return e
}

// Onboarded is New followed by onboarding with Learner.
func Onboarded(t testing.TB) *Env {
	t.Helper()
	e := New(t)
	_, err := e.State.Onboard(context.Background(), Learner)
	require.NoError(t, err)
	return e
}

// Reopen loads a second State from the same database, as a restart would.
func (e *Env) Reopen(t testing.TB) *app.State {
	t.Helper()
	s, err := app.New(context.Background(), e.Store, e.Options)
	require.NoError(t, err)
	return s
}
