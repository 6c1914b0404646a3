// Package reference holds the static quick-reference material: response
// templates, useful phrases, note-taking symbols and the timing guide.
package reference

import (
	"fmt"

	"github.com/abhisek/pteprep/internal/practice"
)

// Template is a fill-in-the-blanks response skeleton.
type Template struct {
	ID    string
	Title string
	Body  string
}

// Templates returns the response templates in display order.
func Templates() []Template {
	return []Template{
		{ID: "describe-image", Title: "Describe Image", Body: "This [TYPE OF IMAGE] shows/depicts [MAIN SUBJECT]. In the foreground, we can see [DETAILS]. " +
			"The background contains [BACKGROUND ELEMENTS]. The image suggests/indicates [INTERPRETATION]. " +
			"Overall, this illustrates [MAIN MESSAGE]."},
		{ID: "retell-lecture", Title: "Re-tell Lecture", Body: "The lecture discusses [MAIN TOPIC]. The speaker explains that [KEY POINT 1]. " +
			"Additionally, [KEY POINT 2] is mentioned. The speaker also states that [KEY POINT 3]. " +
			"In conclusion, [FINAL POINT/SUMMARY]."},
		{ID: "write-essay", Title: "Essay", Body: `Introduction:
The topic of [TOPIC] has become increasingly important in today's society. While some argue that [VIEWPOINT A], others believe that [VIEWPOINT B]. This essay will examine both perspectives before presenting my own opinion.

Body Paragraph 1:
On one hand, [SUPPORTING ARGUMENT 1]. For instance, [SPECIFIC EXAMPLE]. This demonstrates that [EXPLANATION].

Body Paragraph 2:
On the other hand, [OPPOSING ARGUMENT]. Evidence for this can be seen in [EXAMPLE]. This clearly shows that [EXPLANATION].

Conclusion:
In conclusion, while both viewpoints have merit, I believe that [YOUR OPINION] because [BRIEF REASON]. Moving forward, it is essential that [FUTURE RECOMMENDATION].`},
		{ID: "summarize-written-text", Title: "Summarize Written Text", Body: "The passage discusses [MAIN TOPIC], explaining that [KEY POINT 1] and [KEY POINT 2], which leads to [CONCLUSION/RESULT]."},
		{ID: "summarize-spoken-text", Title: "Summarize Spoken Text", Body: "The speaker discusses [MAIN TOPIC], stating that [KEY POINT 1] and [KEY POINT 2], concluding that [MAIN CONCLUSION]."},
	}
}

// TemplateFor returns the template for a task id.
func TemplateFor(taskID string) (Template, bool) {
	for _, t := range Templates() {
		if t.ID == taskID {
			return t, true
		}
	}
	return Template{}, false
}

// PhraseGroup is a named list of linking phrases.
type PhraseGroup struct {
	Name    string
	Phrases []string
}

// Phrases returns the writing and speaking phrase banks.
func Phrases() []PhraseGroup {
	return []PhraseGroup{
		{"Introduction", []string{
			"The topic of... has become increasingly important",
			"This issue has gained significant attention",
			"There is ongoing debate about...",
			"It is widely acknowledged that...",
		}},
		{"Connecting", []string{
			"Furthermore", "Moreover", "In addition", "Additionally",
			"However", "Nevertheless", "On the other hand", "Conversely",
			"Therefore", "Consequently", "As a result", "Thus",
		}},
		{"Conclusion", []string{
			"In conclusion", "To summarize", "Overall", "In summary",
			"Taking everything into consideration", "All things considered",
		}},
		{"Opinion", []string{
			"I believe that", "In my opinion", "From my perspective",
			"It seems to me that", "I would argue that",
		}},
	}
}

// Symbol is a note-taking abbreviation.
type Symbol struct {
	Symbol  string
	Meaning string
}

// Symbols returns the note-taking abbreviations.
func Symbols() []Symbol {
	return []Symbol{
		{"↑", "increase, rise, go up"},
		{"↓", "decrease, fall, go down"},
		{"→", "leads to, results in, causes"},
		{"←", "comes from, is caused by"},
		{"=", "equals, is the same as"},
		{"≠", "not equal, different from"},
		{">", "greater than, more than"},
		{"<", "less than, fewer than"},
		{"&", "and"},
		{"w/", "with"},
		{"w/o", "without"},
		{"b/c", "because"},
		{"diff", "different"},
		{"imp", "important"},
	}
}

// TimingRow is one line of the timing guide.
type TimingRow struct {
	TaskID      string
	Task        string
	Preparation string
	Response    string
	Tip         string
}

var taskNames = map[string]string{
	"read-aloud":             "Read Aloud",
	"repeat-sentence":        "Repeat Sentence",
	"describe-image":         "Describe Image",
	"retell-lecture":         "Re-tell Lecture",
	"answer-short-question":  "Answer Short Question",
	"summarize-written-text": "Summarize Written Text",
	"write-essay":            "Write Essay",
	"summarize-spoken-text":  "Summarize Spoken Text",
	"write-from-dictation":   "Write from Dictation",
}

var tips = map[string]string{
	"read-aloud":             "Practice chunking and rhythm",
	"repeat-sentence":        "Focus on exact reproduction",
	"describe-image":         "Use template structure",
	"retell-lecture":         "Take quick notes",
	"answer-short-question":  "Answer immediately",
	"summarize-written-text": "One sentence, 5-75 words",
	"write-essay":            "Plan 2-3 min, write 15 min, check 2 min",
	"summarize-spoken-text":  "Take notes, 50-70 words",
	"write-from-dictation":   "Type as you hear",
}

// TimingGuide lists every timed task with its preparation and response
// windows taken from the practice timing tables.
func TimingGuide() []TimingRow {
	rows := make([]TimingRow, 0, len(practice.TimedTaskIDs))
	for _, id := range practice.TimedTaskIDs {
		tm := practice.TimingFor(id)
		prep := "N/A"
		if tm.Preparation > 0 {
			prep = Duration(tm.Preparation)
		}
		rows = append(rows, TimingRow{
			TaskID:      id,
			Task:        taskNames[id],
			Preparation: prep,
			Response:    Duration(tm.Recording),
			Tip:         tips[id],
		})
	}
	return rows
}

// Duration renders seconds as "40 seconds" or "10 minutes".
func Duration(seconds int) string {
	if seconds >= 60 && seconds%60 == 0 {
		m := seconds / 60
		if m == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", m)
	}
	return fmt.Sprintf("%d seconds", seconds)
}
