package practice

import (
	"math"
	"math/rand/v2"
)

const (
	baseScore = 60
	minScore  = 30
	maxScore  = 90
)

// Scorer turns a finished attempt into a 30-90 score.
type Scorer interface {
	Score(taskID, response string) int
}

// HeuristicScore is the placeholder scoring formula. quality is used only
// when response is empty.
func HeuristicScore(taskID, response string, quality float64) int {
	if n := len([]rune(response)); n > 0 {
		quality = math.Min(1.2, float64(n)/100)
	}
	raw := int(math.Round(baseScore * DifficultyMultiplier(taskID) * quality))
	return max(minScore, min(maxScore, raw))
}

// RandomScorer scores empty responses with a random quality in [0.6, 1.4).
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

func (s *RandomScorer) Score(taskID, response string) int {
	return HeuristicScore(taskID, response, s.rng.Float64()*0.8+0.6)
}

// FixedScorer always returns the same score. Useful in tests and demos.
type FixedScorer int

func (f FixedScorer) Score(string, string) int { return int(f) }
