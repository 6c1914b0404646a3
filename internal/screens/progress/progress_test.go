package progress

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pteprep/internal/app"
	"github.com/abhisek/pteprep/internal/app/apptest"
	"github.com/abhisek/pteprep/internal/practice"
	"github.com/abhisek/pteprep/internal/tasks"
)

func key(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

func TestCalculatorStartsAtDefaultsAndClamps(t *testing.T) {
	env := apptest.Onboarded(t)
	s := New(env.State)
	d := app.DefaultCalculatorScore
	assert.Equal(t, d, s.Scores().Speaking)

	s.Update(key('4'))
	require.Equal(t, tabCalculator, s.tab)

	for range 10 {
		s.Update(key(']'))
	}
	assert.Equal(t, MaxScore, s.Scores().Speaking)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	for range 20 {
		s.Update(key('['))
	}
	assert.Equal(t, MinScore, s.Scores().Writing)
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, MinScore+1, s.Scores().Writing)
}

func TestAskCoachFallsBackToStaticAdvice(t *testing.T) {
	env := apptest.Onboarded(t)
	s := New(env.State)
	s.Update(key('4'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(key('[')) // writing 60

	_, cmd := s.Update(key('a'))
	require.NotNil(t, cmd)
	assert.True(t, s.asking)

	s.Update(cmd())
	require.NotNil(t, s.advice)
	assert.False(t, s.asking)
	assert.Equal(t, string(tasks.Writing), s.advice.FocusSkill)
	assert.False(t, s.advice.Generated)

	stale := adviceMsg{req: s.adviceID - 1}
	s.Update(stale)
	assert.Equal(t, string(tasks.Writing), s.advice.FocusSkill, "stale reply ignored")
}

func TestPracticeLogLoadsOnInit(t *testing.T) {
	env := apptest.Onboarded(t)
	err := env.State.RecordPractice(context.Background(), practice.Result{AttemptID: "a1", TaskID: "read-aloud", Score: 70})
	require.NoError(t, err)

	s := New(env.State)
	s.Update(s.Init()())
	s.Update(key('3'))
	require.Len(t, s.practice, 1)
	assert.Contains(t, s.View(120, 40), "read-aloud")
}

func TestTabsCycle(t *testing.T) {
	env := apptest.Onboarded(t)
	s := New(env.State)
	for i := range tabCount {
		assert.Equal(t, tab(i), s.tab)
		assert.NotEmpty(t, s.View(120, 40))
		s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	}
	assert.Equal(t, tabOverview, s.tab)
}
