package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pteprep/internal/practice"
)

func TestTemplatesCoverCoreTasks(t *testing.T) {
	for _, id := range []string{"describe-image", "retell-lecture", "write-essay", "summarize-written-text"} {
		tpl, ok := TemplateFor(id)
		require.True(t, ok, id)
		assert.NotEmpty(t, tpl.Body)
		assert.Contains(t, tpl.Body, "[")
	}
	_, ok := TemplateFor("read-aloud")
	assert.False(t, ok)
}

func TestTimingGuideMatchesPracticeTables(t *testing.T) {
	rows := TimingGuide()
	require.Len(t, rows, len(practice.TimedTaskIDs))

	byID := map[string]TimingRow{}
	for _, r := range rows {
		assert.NotEmpty(t, r.Task, r.TaskID)
		assert.NotEmpty(t, r.Tip, r.TaskID)
		byID[r.TaskID] = r
	}
	assert.Equal(t, "3 seconds", byID["repeat-sentence"].Preparation)
	assert.Equal(t, "15 seconds", byID["repeat-sentence"].Response)
	assert.Equal(t, "N/A", byID["write-essay"].Preparation)
	assert.Equal(t, "20 minutes", byID["write-essay"].Response)
}

func TestDuration(t *testing.T) {
	assert.Equal(t, "40 seconds", Duration(40))
	assert.Equal(t, "1 minute", Duration(60))
	assert.Equal(t, "90 seconds", Duration(90))
	assert.Equal(t, "10 minutes", Duration(600))
}

func TestPhrasesAndSymbols(t *testing.T) {
	assert.Len(t, Phrases(), 4)
	assert.Len(t, Symbols(), 14)
}
