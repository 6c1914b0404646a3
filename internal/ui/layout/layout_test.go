package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestFitTitle(t *testing.T) {
	crumbs := "Dashboard › Today's Tasks › Practice: Read Aloud"
	tests := []struct {
		name  string
		width int
		want  string
	}{
		{"fits", 80, crumbs},
		{"drops root", 45, "… › Today's Tasks › Practice: Read Aloud"},
		{"keeps last crumb", 30, "… › Practice: Read Aloud"},
		{"cuts last crumb", 10, "… › Pract…"},
		{"no room", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitTitle(crumbs, tt.width)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, lipgloss.Width(got), max(tt.width, 0))
		})
	}
}

func TestHeaderShowsStatus(t *testing.T) {
	h := RenderHeader("Dashboard", HeaderStatus{Day: 12, Unread: 3, Focused: true}, 100)
	assert.Contains(t, h, "Day 12/30")
	assert.Contains(t, h, "✉ 3")
	assert.Contains(t, h, "● focus")

	h = RenderHeader("Welcome", HeaderStatus{}, 100)
	assert.NotContains(t, h, "Day ")
}

func TestClip(t *testing.T) {
	s := strings.Repeat("line\n", 9) + "line"
	assert.Equal(t, 4, strings.Count(Clip(s, 5), "\n"))
	assert.Equal(t, s, Clip(s, 20))
	assert.Empty(t, Clip(s, 0))
}
