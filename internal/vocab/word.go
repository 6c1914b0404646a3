// Package vocab is the vocabulary drill deck.
package vocab

import "time"

// Difficulty grades a word.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Word is one vocabulary entry with its study state.
type Word struct {
	ID           string     `json:"id"`
	Word         string     `json:"word"`
	Definition   string     `json:"definition"`
	Example      string     `json:"example"`
	Category     string     `json:"category"`
	Difficulty   Difficulty `json:"difficulty"`
	Learned      bool       `json:"learned"`
	ReviewCount  int        `json:"reviewCount"`
	LastReviewed time.Time  `json:"lastReviewed,omitzero"`
}

// MaxReviews is the review count at which a learned word leaves review mode.
const MaxReviews = 5

// Catalog returns the starter word list, all unlearned.
func Catalog() []Word {
	return []Word{
		{ID: "1", Word: "analyze", Definition: "to examine something in detail to understand it better", Example: "Scientists analyze data to draw conclusions about climate change.", Category: "Academic", Difficulty: Intermediate},
		{ID: "2", Word: "comprehensive", Definition: "complete and including everything that is necessary", Example: "The report provides a comprehensive overview of the situation.", Category: "Academic", Difficulty: Advanced},
		{ID: "3", Word: "significant", Definition: "important or notable", Example: "There has been a significant improvement in air quality.", Category: "Academic", Difficulty: Intermediate},
		{ID: "4", Word: "collaborate", Definition: "to work together with others on a project", Example: "The teams will collaborate to develop the new product.", Category: "Business", Difficulty: Intermediate},
		{ID: "5", Word: "innovative", Definition: "introducing new ideas or methods", Example: "The company is known for its innovative approach to technology.", Category: "Business", Difficulty: Intermediate},
		{ID: "6", Word: "hypothesis", Definition: "a proposed explanation for a phenomenon", Example: "The scientist tested her hypothesis through careful experimentation.", Category: "Science", Difficulty: Advanced},
		{ID: "7", Word: "sustainable", Definition: "able to be maintained at a certain rate or level", Example: "We need to find sustainable solutions to environmental problems.", Category: "Science", Difficulty: Intermediate},
		{ID: "8", Word: "algorithm", Definition: "a set of rules or instructions for solving a problem", Example: "The search engine uses a complex algorithm to rank results.", Category: "Technology", Difficulty: Advanced},
		{ID: "9", Word: "interface", Definition: "a point where two systems meet and interact", Example: "The user interface is intuitive and easy to navigate.", Category: "Technology", Difficulty: Intermediate},
		{ID: "10", Word: "diversity", Definition: "the state of being diverse; variety", Example: "The company values diversity in its workforce.", Category: "Social", Difficulty: Intermediate},
	}
}
