package tasks

import (
	"math"

	"github.com/abhisek/pteprep/internal/profile"
)

// definition is the static part of a catalog task.
type definition struct {
	id              string
	name            string
	priority        Priority
	section         Section
	baseCount       int
	description     string
	scoringCriteria []string
	commonMistakes  []string
	tips            []string
}

var definitions = []definition{
	{
		id:              "repeat-sentence",
		name:            "Repeat Sentence",
		priority:        High,
		section:         Speaking,
		baseCount:       15,
		description:     "Listen to a sentence and repeat it exactly as heard",
		scoringCriteria: []string{"Content (3 points)", "Oral Fluency (5 points)", "Pronunciation (5 points)"},
		commonMistakes:  []string{"Missing words", "Adding extra words", "Wrong pronunciation", "Hesitation"},
		tips:            []string{"Practice shadowing technique", "Focus on rhythm and stress", "Record yourself daily"},
	},
	{
		id:              "describe-image",
		name:            "Describe Image",
		priority:        High,
		section:         Speaking,
		baseCount:       8,
		description:     "Describe an image in detail within 40 seconds",
		scoringCriteria: []string{"Content (5 points)", "Oral Fluency (5 points)", "Pronunciation (5 points)"},
		commonMistakes:  []string{"Going off-topic", "Long pauses", "Repetitive language", "Poor structure"},
		tips:            []string{"Use template structure", "Practice describing daily objects", "Time management crucial"},
	},
	{
		id:              "read-aloud",
		name:            "Read Aloud",
		priority:        High,
		section:         Speaking,
		baseCount:       12,
		description:     "Read a text passage aloud with proper pronunciation and fluency",
		scoringCriteria: []string{"Content (5 points)", "Oral Fluency (5 points)", "Pronunciation (5 points)"},
		commonMistakes:  []string{"Mispronunciation", "Wrong stress patterns", "Poor chunking", "Monotone delivery"},
		tips:            []string{"Practice chunking phrases", "Mark stress patterns", "Record and compare"},
	},
	{
		id:              "summarize-written-text",
		name:            "Summarize Written Text",
		priority:        High,
		section:         Writing,
		baseCount:       3,
		description:     "Summarize a passage in one sentence (5-75 words)",
		scoringCriteria: []string{"Content (2 points)", "Form (1 point)", "Grammar (2 points)", "Vocabulary (2 points)"},
		commonMistakes:  []string{"Exceeding word limit", "Multiple sentences", "Missing key points", "Grammar errors"},
		tips:            []string{"Identify main idea first", "Use connecting words", "Check word count"},
	},
	{
		id:          "write-essay",
		name:        "Write Essay",
		priority:    Medium,
		section:     Writing,
		baseCount:   2,
		description: "Write a 200-300 word essay on given topic",
		scoringCriteria: []string{
			"Content (3 points)", "Form (2 points)", "Development (2 points)", "Structure (2 points)",
			"Vocabulary (2 points)", "Language Use (2 points)", "Grammar (2 points)",
		},
		commonMistakes: []string{"Poor structure", "Off-topic content", "Grammar mistakes", "Word count issues"},
		tips:           []string{"Use essay template", "Plan before writing", "Check grammar"},
	},
	{
		id:              "reading-writing-blanks",
		name:            "Reading & Writing: Fill Blanks",
		priority:        High,
		section:         Reading,
		baseCount:       5,
		description:     "Fill in missing words in a text passage",
		scoringCriteria: []string{"Reading (1 point per blank)", "Writing (1 point per blank)"},
		commonMistakes:  []string{"Not reading context", "Grammar mismatches", "Spelling errors"},
		tips:            []string{"Read full text first", "Check grammar fit", "Build vocabulary"},
	},
	{
		id:          "summarize-spoken-text",
		name:        "Summarize Spoken Text",
		priority:    High,
		section:     Listening,
		baseCount:   3,
		description: "Listen to audio and write 50-70 word summary",
		scoringCriteria: []string{
			"Content (2 points)", "Form (2 points)", "Grammar (2 points)", "Vocabulary (2 points)", "Spelling (2 points)",
		},
		commonMistakes: []string{"Missing key points", "Word count issues", "Poor note-taking", "Spelling errors"},
		tips:           []string{"Practice shorthand notes", "Focus on main ideas", "Use template phrases"},
	},
	{
		id:              "write-from-dictation",
		name:            "Write From Dictation",
		priority:        High,
		section:         Listening,
		baseCount:       10,
		description:     "Type exactly what you hear",
		scoringCriteria: []string{"Listening (1 point per word)", "Writing (1 point per word)"},
		commonMistakes:  []string{"Missing words", "Spelling errors", "Wrong word forms"},
		tips:            []string{"Practice spelling", "Listen for function words", "Type as you hear"},
	},
}

// Multipliers returns the target-score and study-hour scaling factors.
func Multipliers(p profile.Profile) (base, hours float64) {
	base = 1
	if p.TargetScore >= 70 {
		base = 1.5
	}
	switch {
	case p.DailyHours >= 3:
		hours = 1.2
	case p.DailyHours >= 2:
		hours = 1
	default:
		hours = 0.8
	}
	return base, hours
}

// DailyTarget computes the daily goal for a base count in a section.
// Speaking and listening scale with study hours too; writing and reading
// scale with the target score only.
func DailyTarget(baseCount int, section Section, p profile.Profile) int {
	base, hours := Multipliers(p)
	v := float64(baseCount) * base
	if section == Speaking || section == Listening {
		v *= hours
	}
	return max(0, int(math.Round(v)))
}

// Generate builds the canonical task list for p with zeroed counters.
func Generate(p profile.Profile) []Task {
	out := make([]Task, 0, len(definitions))
	for _, d := range definitions {
		out = append(out, Task{
			ID:              d.id,
			Name:            d.name,
			Priority:        d.priority,
			Section:         d.section,
			DailyTarget:     DailyTarget(d.baseCount, d.section, p),
			Description:     d.description,
			ScoringCriteria: append([]string(nil), d.scoringCriteria...),
			CommonMistakes:  append([]string(nil), d.commonMistakes...),
			Tips:            append([]string(nil), d.tips...),
		})
	}
	return out
}

// IDs returns the catalog task IDs in catalog order.
func IDs() []string {
	ids := make([]string, len(definitions))
	for i, d := range definitions {
		ids[i] = d.id
	}
	return ids
}
