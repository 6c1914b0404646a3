package mocktest

// TaskType is one question type inside a section.
type TaskType struct {
	Name        string
	Count       int
	TimePerTask int // seconds
	PrepTime    int // seconds
}

// SectionSpec is one of the four exam sections.
type SectionSpec struct {
	Name     string
	Duration int // seconds allotted in the real exam
	Tasks    []TaskType
}

// Questions returns the number of questions in the section.
func (s SectionSpec) Questions() int {
	n := 0
	for _, t := range s.Tasks {
		n += t.Count
	}
	return n
}

// TestDuration is the countdown for the whole mock test, in seconds.
const TestDuration = 3600

// Blueprint returns the standard section layout.
func Blueprint() []SectionSpec {
	return []SectionSpec{
		{
			Name:     "Speaking",
			Duration: 3240,
			Tasks: []TaskType{
				{"Read Aloud", 6, 40, 30},
				{"Repeat Sentence", 10, 15, 3},
				{"Describe Image", 6, 40, 25},
				{"Re-tell Lecture", 3, 40, 10},
				{"Answer Short Question", 10, 10, 3},
			},
		},
		{
			Name:     "Writing",
			Duration: 1800,
			Tasks: []TaskType{
				{"Summarize Written Text", 2, 600, 0},
				{"Write Essay", 1, 1200, 0},
			},
		},
		{
			Name:     "Reading",
			Duration: 1800,
			Tasks: []TaskType{
				{"Multiple Choice (Single)", 2, 120, 0},
				{"Multiple Choice (Multiple)", 2, 120, 0},
				{"Re-order Paragraphs", 2, 150, 0},
				{"Fill in Blanks (Reading)", 4, 90, 0},
				{"Fill in Blanks (R&W)", 5, 90, 0},
			},
		},
		{
			Name:     "Listening",
			Duration: 2700,
			Tasks: []TaskType{
				{"Summarize Spoken Text", 2, 600, 0},
				{"Multiple Choice (Single)", 2, 90, 0},
				{"Fill in Blanks", 2, 60, 0},
				{"Highlight Correct Summary", 2, 90, 0},
				{"Multiple Choice (Multiple)", 2, 90, 0},
				{"Select Missing Word", 2, 60, 0},
				{"Highlight Incorrect Words", 2, 90, 0},
				{"Write from Dictation", 3, 30, 7},
			},
		},
	}
}

// TotalQuestions sums question counts across sections.
func TotalQuestions(sections []SectionSpec) int {
	n := 0
	for _, s := range sections {
		n += s.Questions()
	}
	return n
}

var prompts = map[string]string{
	"Read Aloud":                 "The rapid advancement of artificial intelligence has transformed numerous industries, creating both unprecedented opportunities and significant challenges for society.",
	"Repeat Sentence":            "The university library will be closed for renovations during the summer break.",
	"Describe Image":             "https://images.pexels.com/photos/3184291/pexels-photo-3184291.jpeg?auto=compress&cs=tinysrgb&w=600",
	"Re-tell Lecture":            "Today's lecture focuses on renewable energy sources and their impact on global sustainability efforts.",
	"Answer Short Question":      "What do you call the person who cuts hair professionally?",
	"Summarize Written Text":     "Climate change represents one of the most pressing challenges of our time. Rising global temperatures are causing widespread environmental disruption, including more frequent extreme weather events, rising sea levels, and ecosystem changes. Scientists emphasize the urgent need for coordinated global action to reduce greenhouse gas emissions and implement sustainable practices across all sectors of society.",
	"Write Essay":                "Some people believe that technology has made our lives easier, while others argue it has made them more complicated. Discuss both views and give your opinion.",
	"Multiple Choice (Single)":   "According to the passage, what is the main cause of climate change?",
	"Multiple Choice (Multiple)": "Which of the following are mentioned as effects of climate change? (Select all that apply)",
	"Re-order Paragraphs":        "Arrange the following sentences in the correct order:",
	"Fill in Blanks (Reading)":   "The research _____ that regular exercise can _____ mental health significantly.",
	"Fill in Blanks (R&W)":       "Scientists have _____ a new method for _____ renewable energy more efficiently.",
	"Summarize Spoken Text":      "In today's presentation, we discussed the importance of biodiversity in maintaining ecological balance...",
	"Fill in Blanks":             "The speaker mentioned that _____ is crucial for sustainable development.",
	"Highlight Correct Summary":  "Choose the summary that best represents the main points of the lecture:",
	"Select Missing Word":        "The final word in the sentence was _____.",
	"Highlight Incorrect Words":  "Click on the words that do not match what you heard:",
	"Write from Dictation":       "The research findings were published in the latest scientific journal.",
}

// Prompt returns the sample prompt for a task type name.
func Prompt(taskName string) string {
	if p, ok := prompts[taskName]; ok {
		return p
	}
	return "Sample content for this task."
}
