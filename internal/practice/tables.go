package practice

// Timing is the preparation and response window for a task, in seconds.
type Timing struct {
	Preparation int
	Recording   int
}

// Total returns the full length of an attempt in seconds.
func (t Timing) Total() int {
	return t.Preparation + t.Recording
}

var defaultTiming = Timing{Preparation: 30, Recording: 40}

var timings = map[string]Timing{
	"read-aloud":             {30, 40},
	"repeat-sentence":        {3, 15},
	"describe-image":         {25, 40},
	"retell-lecture":         {10, 40},
	"answer-short-question":  {3, 10},
	"summarize-written-text": {0, 600},
	"write-essay":            {0, 1200},
	"summarize-spoken-text":  {0, 600},
	"write-from-dictation":   {7, 30},
}

// TimingFor returns the timing for taskID, falling back to 30s/40s.
func TimingFor(taskID string) Timing {
	if t, ok := timings[taskID]; ok {
		return t
	}
	return defaultTiming
}

// TimedTaskIDs lists the task types that have their own timing, in exam order.
var TimedTaskIDs = []string{
	"read-aloud",
	"repeat-sentence",
	"describe-image",
	"retell-lecture",
	"answer-short-question",
	"summarize-written-text",
	"write-essay",
	"summarize-spoken-text",
	"write-from-dictation",
}

var difficulty = map[string]float64{
	"read-aloud":             1.1,
	"repeat-sentence":        1.2,
	"describe-image":         0.9,
	"retell-lecture":         0.8,
	"answer-short-question":  1.3,
	"summarize-written-text": 0.9,
	"write-essay":            0.8,
	"summarize-spoken-text":  0.85,
	"write-from-dictation":   1.15,
}

// DifficultyMultiplier returns the scoring weight for taskID (1 if unknown).
func DifficultyMultiplier(taskID string) float64 {
	if m, ok := difficulty[taskID]; ok {
		return m
	}
	return 1
}

var writingTasks = map[string]bool{
	"summarize-written-text": true,
	"write-essay":            true,
	"summarize-spoken-text":  true,
	"write-from-dictation":   true,
}

var listeningTasks = map[string]bool{
	"repeat-sentence":       true,
	"retell-lecture":        true,
	"summarize-spoken-text": true,
	"write-from-dictation":  true,
	"answer-short-question": true,
}

// IsWritingTask reports whether the response is typed rather than spoken.
func IsWritingTask(taskID string) bool { return writingTasks[taskID] }

// IsListeningTask reports whether the prompt is played as audio.
func IsListeningTask(taskID string) bool { return listeningTasks[taskID] }

// IsImageTask reports whether the prompt is an image URL.
func IsImageTask(taskID string) bool { return taskID == "describe-image" }

var contents = map[string]string{
	"read-aloud":             "Climate change represents one of the most significant challenges facing humanity in the twenty-first century. Rising global temperatures, caused primarily by increased greenhouse gas emissions, are leading to more frequent extreme weather events, rising sea levels, and disruptions to ecosystems worldwide.",
	"repeat-sentence":        "The university library will be closed for renovations during the summer break.",
	"describe-image":         "https://images.pexels.com/photos/3184291/pexels-photo-3184291.jpeg?auto=compress&cs=tinysrgb&w=600",
	"retell-lecture":         "Today we'll discuss the impact of artificial intelligence on modern education systems. AI has revolutionized how students learn and how teachers deliver content.",
	"answer-short-question":  "What do you call the person who cuts hair professionally?",
	"summarize-written-text": "Artificial intelligence has become increasingly prevalent in modern society, transforming industries from healthcare to finance. Machine learning algorithms can now process vast amounts of data to identify patterns and make predictions with remarkable accuracy. However, this technological advancement also raises important questions about privacy, employment, and the ethical implications of automated decision-making. As AI continues to evolve, it is crucial that we develop appropriate frameworks to ensure its benefits are maximized while minimizing potential risks.",
	"write-essay":            "Some people believe that social media has a positive impact on society, while others argue it has negative effects. Discuss both views and give your opinion.",
	"summarize-spoken-text":  "In today's lecture, we explored the fascinating world of renewable energy sources. Solar power has emerged as one of the most promising alternatives to fossil fuels, with technological advances making it increasingly cost-effective. Wind energy is another rapidly growing sector, particularly in coastal regions where wind patterns are consistent. The transition to renewable energy is not just an environmental imperative but also an economic opportunity, creating millions of jobs worldwide.",
	"write-from-dictation":   "The research findings were published in the latest scientific journal.",
}

// Content returns the sample prompt for taskID. For describe-image it is an
// image URL that is shown, never fetched.
func Content(taskID string) string {
	if c, ok := contents[taskID]; ok {
		return c
	}
	return "Sample content for practice session."
}
