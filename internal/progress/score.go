package progress

import (
	"cmp"
	"slices"

	"github.com/abhisek/pteprep/internal/mocktest"
	"github.com/abhisek/pteprep/internal/tasks"
)

// Band places a score relative to the learner's target.
type Band int

const (
	BandBelow Band = iota // more than 5 points under target
	BandClose             // within 5 points of target
	BandMet               // at or above target
)

// BandFor classifies score against target.
func BandFor(score, target int) Band {
	switch {
	case score >= target:
		return BandMet
	case score >= target-5:
		return BandClose
	}
	return BandBelow
}

// Gap is how many points the overall score is short of target.
func Gap(overall, target int) int {
	return max(0, target-overall)
}

var recommendations = map[tasks.Section]string{
	tasks.Speaking:  "Focus on pronunciation, fluency, and using templates for Describe Image and Retell Lecture.",
	tasks.Writing:   "Improve grammar, vocabulary range, and essay structure. Practice Summarize Written Text daily.",
	tasks.Reading:   "Work on reading speed, vocabulary, and Fill in the Blanks accuracy.",
	tasks.Listening: "Practice note-taking, focus on Write from Dictation, and improve Summarize Spoken Text.",
}

// OnTargetAdvice is returned when every skill meets the target.
const OnTargetAdvice = "Excellent! You're meeting your target in all areas. Focus on consistency."

// SkillScore pairs a section with its score.
type SkillScore struct {
	Section tasks.Section
	Score   int
}

// Skills flattens scores into exam order.
func Skills(s mocktest.SkillScores) []SkillScore {
	return []SkillScore{
		{tasks.Speaking, s.Speaking},
		{tasks.Writing, s.Writing},
		{tasks.Reading, s.Reading},
		{tasks.Listening, s.Listening},
	}
}

// Weakest returns the lowest-scoring skill under target. Ties go to the
// earlier skill in exam order. ok is false when every skill meets target.
func Weakest(s mocktest.SkillScores, target int) (skill SkillScore, ok bool) {
	var weak []SkillScore
	for _, sk := range Skills(s) {
		if sk.Score < target {
			weak = append(weak, sk)
		}
	}
	if len(weak) == 0 {
		return SkillScore{}, false
	}
	slices.SortStableFunc(weak, func(a, b SkillScore) int { return cmp.Compare(a.Score, b.Score) })
	return weak[0], true
}

// Recommend returns study advice for the weakest skill under target.
func Recommend(s mocktest.SkillScores, target int) string {
	w, ok := Weakest(s, target)
	if !ok {
		return OnTargetAdvice
	}
	return recommendations[w.Section]
}
