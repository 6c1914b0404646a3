package mocktest

// Scheduled is a planned mock test on the 30-day plan.
type Scheduled struct {
	ID          int
	Name        string
	Day         int
	Description string
	Available   bool
	Recommended bool
}

type plannedMock struct {
	name        string
	day         int
	description string
	opensOn     int // first plan day the test is available
	recommendTo int // last plan day it is recommended; 0 means open-ended
}

var plannedMocks = []plannedMock{
	{"Diagnostic Mock Test", 1, "Assess your starting level across all skills", 0, 3},
	{"Progress Check 1", 15, "Mid-journey assessment focusing on accuracy", 14, 17},
	{"Progress Check 2", 22, "Test timing and exam simulation under pressure", 21, 24},
	{"Final Practice Test", 27, "Final confidence builder before your real exam", 26, 0},
}

// Schedule returns the planned mock tests with availability for currentDay.
func Schedule(currentDay int) []Scheduled {
	out := make([]Scheduled, 0, len(plannedMocks))
	for i, m := range plannedMocks {
		available := currentDay >= m.opensOn
		recommended := available && (m.recommendTo == 0 || currentDay <= m.recommendTo)
		out = append(out, Scheduled{
			ID:          i + 1,
			Name:        m.name,
			Day:         m.day,
			Description: m.description,
			Available:   available,
			Recommended: recommended,
		})
	}
	return out
}

// MockDays are the plan days on which a mock test is announced.
func MockDays() []int {
	return []int{15, 22, 27}
}
