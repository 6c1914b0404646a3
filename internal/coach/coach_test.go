package coach

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pteprep/internal/llm"
	"github.com/abhisek/pteprep/internal/mocktest"
	"github.com/abhisek/pteprep/internal/progress"
)

var scores = mocktest.SkillScores{Speaking: 72, Writing: 61, Reading: 70, Listening: 66}

func TestStaticWithoutProvider(t *testing.T) {
	adv := New(nil).Recommend(context.Background(), Input{Scores: scores, Target: 70})
	assert.Equal(t, "writing", adv.FocusSkill)
	assert.Equal(t, progress.Recommend(scores, 70), adv.Text)
	assert.False(t, adv.Generated)

	var zero *Coach
	assert.Equal(t, adv, zero.Recommend(context.Background(), Input{Scores: scores, Target: 70}))
}

func TestStaticOnTarget(t *testing.T) {
	adv := Static(Input{Scores: scores, Target: 60})
	assert.Empty(t, adv.FocusSkill)
	assert.Equal(t, progress.OnTargetAdvice, adv.Text)
}

func TestGeneratedAdvice(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(
		`{"focus_skill":"writing","advice":"Tighten your essay structure.","drills":["Essay outline","SWT x3"," ","WFD","extra"]}`)})
	adv := New(mock).Recommend(context.Background(), Input{Scores: scores, Target: 70, Day: 4})

	require.True(t, adv.Generated)
	assert.Equal(t, "writing", adv.FocusSkill)
	assert.Equal(t, "Tighten your essay structure.", adv.Text)
	assert.Equal(t, []string{"Essay outline", "SWT x3", "WFD"}, adv.Drills)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Same(t, AdviceSchema, calls[0].Schema)
	assert.Contains(t, calls[0].Messages[0].Content, "Focus skill: writing")
	assert.Contains(t, calls[0].Messages[0].Content, "Day 4 of 30")
}

func TestFallbacks(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"provider error", llm.MockResponse{Err: errors.New("down")}},
		{"wrong focus", llm.MockResponse{Content: json.RawMessage(`{"focus_skill":"reading","advice":"x","drills":[]}`)}},
		{"empty advice", llm.MockResponse{Content: json.RawMessage(`{"focus_skill":"writing","advice":"  ","drills":[]}`)}},
		{"schema violation", llm.MockResponse{Content: json.RawMessage(`{"focus_skill":"writing"}`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adv := New(llm.NewMockProvider(tt.resp)).Recommend(context.Background(), Input{Scores: scores, Target: 70})
			static := Static(Input{Scores: scores, Target: 70})
			assert.False(t, adv.Generated)
			assert.Equal(t, static.Text, adv.Text)
			assert.Equal(t, static.Drills, adv.Drills)
			assert.NotEmpty(t, adv.Fallback)
		})
	}
}

func TestOnTargetAsksForNone(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(
		`{"focus_skill":"none","advice":"Keep it steady.","drills":[]}`)})
	adv := New(mock).Recommend(context.Background(), Input{Scores: scores, Target: 50})
	assert.True(t, adv.Generated)
	assert.Empty(t, adv.FocusSkill)
	assert.Empty(t, adv.Drills)
}
