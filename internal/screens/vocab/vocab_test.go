package vocab

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pteprep/internal/app/apptest"
	"github.com/abhisek/pteprep/internal/vocab"
)

func key(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }

func TestDrawFlipSayAndLearn(t *testing.T) {
	env := apptest.New(t)
	s := New(env.State)
	d := env.State.Deck()

	s.Update(enter())
	w, ok := d.Current()
	require.True(t, ok)

	s.Update(key('f'))
	assert.True(t, s.flipped)
	assert.Contains(t, s.View(100, 30), w.Definition[:10])

	s.Update(key('s'))
	assert.Equal(t, []string{w.Word}, env.Spoken.Said)

	s.Update(key('y'))
	assert.False(t, s.flipped, "next card starts face down")
	assert.Equal(t, 1, d.Stats().Learned)

	reloaded := env.Reopen(t).Deck()
	assert.Equal(t, 1, reloaded.Stats().Learned)
}

func TestModeCyclesAndTestScore(t *testing.T) {
	env := apptest.New(t)
	s := New(env.State)
	d := env.State.Deck()

	s.Update(key('m'))
	assert.Equal(t, vocab.ModeReview, d.Mode())
	s.Update(enter())
	assert.Equal(t, emptyMessage(vocab.ModeReview), s.msg)

	s.Update(key('m'))
	require.Equal(t, vocab.ModeTest, d.Mode())
	s.Update(enter())
	s.Update(key('y'))
	s.Update(key('n'))
	st := d.Stats()
	assert.Equal(t, 1, st.Score)
	assert.Equal(t, 3, st.Questions)
}

func TestCategoryCycleAndReset(t *testing.T) {
	env := apptest.New(t)
	s := New(env.State)
	d := env.State.Deck()

	s.Update(key('c'))
	assert.Equal(t, d.Categories()[0], d.Category())
	for _, w := range d.Filtered() {
		assert.Equal(t, d.Category(), w.Category)
	}
	for range len(d.Categories()) {
		s.Update(key('c'))
	}
	assert.Equal(t, vocab.AllCategories, d.Category())

	s.Update(enter())
	s.Update(key('y'))
	d.SetMode(vocab.ModeLearn) // clears the drawn card
	s.Update(key('x'))
	require.True(t, s.confirming)
	s.Update(key('y'))
	assert.Equal(t, 0, d.Stats().Learned)
}
