package mocktest

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pteprep/internal/app/apptest"
	engine "github.com/abhisek/pteprep/internal/mocktest"
)

func key(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

func ctrl(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl} }

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }

func typeText(s *Screen, text string) {
	for _, r := range text {
		s.Update(key(r))
	}
}

func TestAnswerAndFinishRecordsHistory(t *testing.T) {
	env := apptest.Onboarded(t)
	s := New(env.State)

	s.Update(key('s'))
	require.Equal(t, modeRunning, s.mode)
	assert.True(t, s.CapturesInput())

	typeText(s, "climate")
	s.Update(enter())
	assert.Equal(t, engine.Position{Question: 1}, s.Test().Current().Position)

	s.Update(ctrl('b'))
	assert.True(t, s.Test().IsFirst())

	typeText(s, "again")
	s.Update(ctrl('f'))
	require.Equal(t, modeResult, s.mode)
	assert.Len(t, s.Test().Responses(), 2)

	h := env.State.History()
	require.Len(t, h.Results, 1)
	assert.Equal(t, 2, h.Results[0].CompletedTasks)
	assert.Contains(t, s.View(100, 40), "Mock test complete")

	s.Update(enter())
	assert.Equal(t, modeOverview, s.mode)
	assert.Len(t, env.Reopen(t).History().Results, 1)
}

func TestTimeoutCompletes(t *testing.T) {
	env := apptest.Onboarded(t)
	s := New(env.State)
	s.Update(key('s'))

	var cmd tea.Cmd
	for range engine.TestDuration {
		_, cmd = s.Update(timerTickMsg{gen: s.gen, at: time.Now()})
	}
	assert.Nil(t, cmd, "tick chain should end with the test")
	require.Equal(t, modeResult, s.mode)
	assert.True(t, s.Test().Result().TimedOut)
	assert.Len(t, env.State.History().Results, 1)
}

func TestAbandonDiscardsAndClearEmptiesHistory(t *testing.T) {
	env := apptest.Onboarded(t)
	s := New(env.State)

	s.Update(key('s'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.Equal(t, pendingAbandon, s.confirm)
	s.Update(key('y'))
	assert.Equal(t, modeOverview, s.mode)
	assert.Empty(t, env.State.History().Results)

	s.Update(key('s'))
	s.Update(ctrl('f'))
	s.Update(enter())
	require.Len(t, env.State.History().Results, 1)

	s.Update(key('c'))
	s.Update(key('y'))
	assert.Empty(t, env.State.History().Results)
}

func TestTimeoutDuringAbandonPromptKeepsHistory(t *testing.T) {
	env := apptest.Onboarded(t)
	s := New(env.State)

	s.Update(key('s'))
	s.Update(ctrl('f'))
	s.Update(enter())
	require.Len(t, env.State.History().Results, 1)

	s.Update(key('s'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.Equal(t, pendingAbandon, s.confirm)
	for range engine.TestDuration {
		s.Update(timerTickMsg{gen: s.gen, at: time.Now()})
	}
	require.Equal(t, modeResult, s.mode)
	assert.Equal(t, pendingNone, s.confirm, "time-out closes the abandon prompt")
	require.Len(t, env.State.History().Results, 2)

	s.Update(key('y'))
	assert.Len(t, env.State.History().Results, 2)
	assert.Len(t, env.Reopen(t).History().Results, 2)
}
