package planner

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pteprep/internal/app/apptest"
)

func key(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }

func TestToggleAndDeletePersist(t *testing.T) {
	env := apptest.Onboarded(t)
	s := New(env.State)

	list := s.Sessions()
	require.NotEmpty(t, list, "seeded week should include today")
	first := list[0]

	s.Update(key(' '))
	got, err := env.State.Planner().Get(first.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)

	s.Update(key('d'))
	_, err = env.Reopen(t).Planner().Get(first.ID)
	assert.Error(t, err)
	assert.Len(t, s.Sessions(), len(list)-1)
}

func TestCreateSessionThroughForm(t *testing.T) {
	env := apptest.Onboarded(t)
	s := New(env.State)
	before := len(s.Sessions())

	s.Update(key('n'))
	require.NotNil(t, s.form)
	assert.True(t, s.CapturesInput())

	s.form.fields[fieldStart].SetValue("12:00")
	s.form.fields[fieldEnd].SetValue("12:45")
	s.form.fields[fieldTasks].SetValue("Read Aloud, Repeat Sentence")
	s.Update(enter())

	require.Nil(t, s.form)
	list := s.Sessions()
	require.Len(t, list, before+1)
	cur, ok := s.current()
	require.True(t, ok)
	assert.Equal(t, "12:00", cur.StartTime)
	assert.Equal(t, []string{"Read Aloud", "Repeat Sentence"}, cur.Tasks)
}

func TestFormRejectsBadRangeAndEscCancels(t *testing.T) {
	env := apptest.Onboarded(t)
	s := New(env.State)
	before := len(s.Sessions())

	s.Update(key('n'))
	s.form.fields[fieldEnd].SetValue("08:00")
	s.Update(enter())
	require.NotNil(t, s.form, "invalid draft must keep the form open")
	assert.Equal(t, fieldEnd, s.form.failedField())

	s.form.fields[fieldStart].SetValue("9")
	s.form.fields[fieldEnd].SetValue("10:00")
	s.Update(enter())
	assert.Equal(t, fieldStart, s.form.failedField())

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, s.form)
	assert.Len(t, s.Sessions(), before)
}

func TestDayNavigationAndReseed(t *testing.T) {
	env := apptest.Onboarded(t)
	s := New(env.State)
	today := s.Date()

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.NotEqual(t, today, s.Date())
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Equal(t, today, s.Date())

	seeded := len(env.State.Planner().All())
	s.Update(key('d'))
	s.Update(key('s'))
	require.True(t, s.confirming)
	s.Update(key('y'))
	assert.Len(t, env.State.Planner().All(), seeded)
}
