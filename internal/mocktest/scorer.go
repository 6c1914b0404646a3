package mocktest

import (
	"math"
	"math/rand/v2"
)

// SkillScores holds one score per exam skill.
type SkillScores struct {
	Speaking  int `json:"speaking"`
	Writing   int `json:"writing"`
	Reading   int `json:"reading"`
	Listening int `json:"listening"`
}

// Overall is the rounded mean of the four skills.
func (s SkillScores) Overall() int {
	return int(math.Round(float64(s.Speaking+s.Writing+s.Reading+s.Listening) / 4))
}

// Scorer produces the per-skill scores for a finished test.
type Scorer interface {
	Score(responses []Response) SkillScores
}

// RandomScorer draws each skill uniformly from 60-79.
type RandomScorer struct {
	rng *rand.Rand
}

// NewRandomScorer creates a scorer. A nil rng uses a time-seeded source.
func NewRandomScorer(rng *rand.Rand) *RandomScorer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &RandomScorer{rng: rng}
}

func (s *RandomScorer) Score([]Response) SkillScores {
	return SkillScores{
		Speaking:  60 + s.rng.IntN(20),
		Writing:   60 + s.rng.IntN(20),
		Reading:   60 + s.rng.IntN(20),
		Listening: 60 + s.rng.IntN(20),
	}
}
