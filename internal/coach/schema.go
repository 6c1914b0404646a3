package coach

import "github.com/abhisek/pteprep/internal/llm"

// AdviceSchema is the structured output requested from the model.
var AdviceSchema = &llm.Schema{
	Name:        "study-advice",
	Description: "Short, actionable PTE study advice for one skill",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"focus_skill": map[string]any{
				"type": "string",
				"enum": []any{"speaking", "writing", "reading", "listening", "none"},
			},
			"advice": map[string]any{
				"type":        "string",
				"description": "Two or three sentences addressed to the learner",
			},
			"drills": map[string]any{
				"type":        "array",
				"description": "Up to three concrete practice drills for today",
				"items":       map[string]any{"type": "string"},
			},
		},
		"required":             []any{"focus_skill", "advice", "drills"},
		"additionalProperties": false,
	},
}

const systemPrompt = `You are a concise PTE Academic study coach.
You are given a learner's latest skill scores, their target and the skill
they should focus on. Rewrite the study advice for that skill in your own
words and suggest at most three drills using PTE task names.
Never invent or change scores. Use "none" as focus_skill when no skill is given.`
