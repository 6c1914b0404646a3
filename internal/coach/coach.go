// Package coach turns mock test scores into study advice. The advice is
// always decided by the score calculator; a configured language model may
// only reword it.
package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/pteprep/internal/llm"
	"github.com/abhisek/pteprep/internal/mocktest"
	"github.com/abhisek/pteprep/internal/profile"
	"github.com/abhisek/pteprep/internal/progress"
	"github.com/abhisek/pteprep/internal/store"
)

// MaxDrills caps the drills kept from a model reply.
const MaxDrills = 3

// Input is what the coach knows about the learner.
type Input struct {
	Scores   mocktest.SkillScores
	Target   int
	Level    profile.Level
	Day      int
	Practice []store.TaskScoreSummary // optional per-task practice averages
}

// Advice is the coach's answer.
type Advice struct {
	FocusSkill string // section name, or "" when every skill meets target
	Text       string
	Drills     []string
	Generated  bool   // true when the wording came from the model
	Fallback   string // why the model was not used, set only on failure
}

// Coach produces advice. The zero value and a Coach with a nil provider
// return the static advice.
type Coach struct {
	provider  llm.Provider
	maxTokens int
}

func New(provider llm.Provider) *Coach {
	return &Coach{provider: provider, maxTokens: 400}
}

// Static returns the score calculator's recommendation for in.
func Static(in Input) Advice {
	w, ok := progress.Weakest(in.Scores, in.Target)
	if !ok {
		return Advice{Text: progress.OnTargetAdvice}
	}
	return Advice{
		FocusSkill: string(w.Section),
		Text:       progress.Recommend(in.Scores, in.Target),
	}
}

// Recommend returns advice for in. Any model failure, including a reply
// that names a different focus skill, yields the static advice.
func (c *Coach) Recommend(ctx context.Context, in Input) Advice {
	static := Static(in)
	if c == nil || c.provider == nil {
		return static
	}
	adv, err := c.generate(ctx, in, static)
	if err != nil {
		static.Fallback = llm.Describe(err)
		return static
	}
	return adv
}

type adviceOutput struct {
	FocusSkill string   `json:"focus_skill"`
	Advice     string   `json:"advice"`
	Drills     []string `json:"drills"`
}

func (c *Coach) generate(ctx context.Context, in Input, static Advice) (Advice, error) {
	ctx = llm.WithPurpose(ctx, "coach")

	req := llm.UserPrompt(systemPrompt, userMessage(in, static))
	req.Schema = AdviceSchema
	req.MaxTokens = c.maxTokens

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return Advice{}, fmt.Errorf("coach generation: %w", err)
	}

	var out adviceOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Advice{}, fmt.Errorf("parse coach response: %w", err)
	}
	want := static.FocusSkill
	if want == "" {
		want = "none"
	}
	if out.FocusSkill != want {
		return Advice{}, fmt.Errorf("coach response focused on %q, want %q", out.FocusSkill, want)
	}
	text := strings.TrimSpace(out.Advice)
	if text == "" {
		return Advice{}, fmt.Errorf("coach response has empty advice")
	}

	drills := make([]string, 0, MaxDrills)
	for _, d := range out.Drills {
		if d = strings.TrimSpace(d); d != "" && len(drills) < MaxDrills {
			drills = append(drills, d)
		}
	}
	return Advice{FocusSkill: static.FocusSkill, Text: text, Drills: drills, Generated: true}, nil
}

func userMessage(in Input, static Advice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Target score: %d\n", in.Target)
	if in.Level != "" {
		fmt.Fprintf(&b, "Level: %s\n", in.Level)
	}
	if in.Day > 0 {
		fmt.Fprintf(&b, "Day %d of %d\n", in.Day, progress.PlanDays)
	}
	fmt.Fprintf(&b, "Scores: speaking %d, writing %d, reading %d, listening %d (overall %d)\n",
		in.Scores.Speaking, in.Scores.Writing, in.Scores.Reading, in.Scores.Listening, in.Scores.Overall())
	for _, p := range in.Practice {
		fmt.Fprintf(&b, "Practice %s: %d attempts, average %.0f\n", p.TaskID, p.Attempts, p.Average)
	}
	if static.FocusSkill == "" {
		b.WriteString("Focus skill: none (all skills meet the target)\n")
	} else {
		fmt.Fprintf(&b, "Focus skill: %s\n", static.FocusSkill)
	}
	fmt.Fprintf(&b, "Baseline advice: %s\n", static.Text)
	return b.String()
}
