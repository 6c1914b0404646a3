// Package vocab is the flashcard view over the vocabulary deck.
package vocab

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pteprep/internal/app"
	"github.com/abhisek/pteprep/internal/screen"
	"github.com/abhisek/pteprep/internal/ui/components"
	"github.com/abhisek/pteprep/internal/ui/layout"
	"github.com/abhisek/pteprep/internal/ui/theme"
	"github.com/abhisek/pteprep/internal/vocab"
)

// Screen drills one card at a time.
type Screen struct {
	state      *app.State
	flipped    bool
	confirming bool // reset confirmation
	msg        string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.InputCapturer = (*Screen)(nil)

// New creates the vocabulary screen.
func New(st *app.State) *Screen {
	return &Screen{state: st}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Vocabulary" }

func (s *Screen) CapturesInput() bool { return s.confirming }

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{{Key: "Y", Description: "Reset all words"}, {Key: "N", Description: "Cancel"}}
	}
	if _, ok := s.state.Deck().Current(); ok {
		return []layout.KeyHint{
			{Key: "F", Description: "Flip"},
			{Key: "Y", Description: "Learned"},
			{Key: "N", Description: "Review again"},
			{Key: "S", Description: "Say"},
			{Key: "M", Description: "Mode"},
			{Key: "C", Description: "Category"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Draw card"},
		{Key: "M", Description: "Mode"},
		{Key: "C", Description: "Category"},
		{Key: "X", Description: "Reset"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	d := s.state.Deck()
	ctx := context.Background()

	if s.confirming {
		switch kmsg.String() {
		case "y", "Y":
			s.confirming = false
			if err := d.Reset(ctx); err != nil {
				s.msg = err.Error()
			} else {
				s.msg = "Progress reset."
			}
		case "n", "N", "esc":
			s.confirming = false
		}
		return s, nil
	}

	cur, drawn := d.Current()
	switch kmsg.String() {
	case "enter", "space", " ":
		s.draw()
	case "m":
		i := slices.Index(vocab.Modes, d.Mode())
		d.SetMode(vocab.Modes[(i+1)%len(vocab.Modes)])
		s.flipped, s.msg = false, ""
	case "c":
		cats := append([]string{vocab.AllCategories}, d.Categories()...)
		i := slices.Index(cats, d.Category())
		d.SetCategory(cats[(i+1)%len(cats)])
		s.flipped, s.msg = false, ""
	case "f":
		if drawn {
			s.flipped = !s.flipped
		}
	case "s":
		if drawn {
			s.state.Speaker().Speak(cur.Word)
		}
	case "y":
		if drawn {
			if _, err := d.MarkLearned(ctx, cur.ID); err != nil {
				s.msg = err.Error()
				return s, nil
			}
			s.draw()
		}
	case "n":
		if drawn {
			if _, err := d.MarkNeedReview(ctx, cur.ID); err != nil {
				s.msg = err.Error()
				return s, nil
			}
			s.draw()
		}
	case "x":
		if !drawn {
			s.confirming = true
		}
	}
	return s, nil
}

func (s *Screen) draw() {
	s.flipped = false
	s.msg = ""
	if _, err := s.state.Deck().Draw(); err != nil {
		if errors.Is(err, vocab.ErrNoWordAvailable) {
			s.msg = emptyMessage(s.state.Deck().Mode())
			return
		}
		s.msg = err.Error()
	}
}

func emptyMessage(m vocab.Mode) string {
	switch m {
	case vocab.ModeLearn:
		return "Every word here is learned. Switch to review mode or another category."
	case vocab.ModeReview:
		return "Nothing to review yet. Learn a few words first."
	}
	return "No words in this category."
}

func (s *Screen) View(width, height int) string {
	d := s.state.Deck()
	var b strings.Builder

	tabs := make([]string, 0, len(vocab.Modes))
	for _, m := range vocab.Modes {
		label := strings.ToUpper(string(m[:1])) + string(m[1:])
		if m == d.Mode() {
			tabs = append(tabs, theme.KeyActive.Render(label))
		} else {
			tabs = append(tabs, theme.KeyInactive.Render(label))
		}
	}
	b.WriteString(strings.Join(tabs, " ") + "   " + theme.Subtitle.Render("category: "+d.Category()) + "\n\n")

	st := d.Stats()
	bar := components.NewProgressBar("Learned", ratio(st.Learned, st.Total), true, min(60, width-4))
	bar.Color = theme.Success
	b.WriteString(bar.View() + "\n")
	line := fmt.Sprintf("%d words · %d learned · %d to learn", st.Total, st.Learned, st.ToLearn)
	if d.Mode() == vocab.ModeTest {
		line += fmt.Sprintf(" · score %d/%d", st.Score, st.Questions)
	}
	b.WriteString(theme.Subtitle.Render(line) + "\n\n")

	if w, ok := d.Current(); ok {
		b.WriteString(s.renderCard(w, width))
	} else {
		b.WriteString(theme.Hint.Render("Press Enter to draw a card."))
	}
	if s.confirming {
		b.WriteString("\n\n" + theme.Danger.Render("Mark every word as not learned? (y/n)"))
	}
	if s.msg != "" {
		b.WriteString("\n\n" + theme.Hint.Render(s.msg))
	}
	return b.String()
}

func ratio(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}

func (s *Screen) renderCard(w vocab.Word, width int) string {
	cw := min(70, width-4)
	var b strings.Builder
	b.WriteString(theme.Title.Render(w.Word) + "  " + theme.Subtitle.Render(fmt.Sprintf("%s · %s", w.Category, w.Difficulty)) + "\n")
	if w.Learned {
		b.WriteString(theme.Done.Render("learned") + theme.Subtitle.Render(fmt.Sprintf("  reviewed %d×", w.ReviewCount)) + "\n")
	}
	b.WriteString("\n")
	if s.flipped {
		wrap := lipgloss.NewStyle().Width(cw - 4)
		b.WriteString(wrap.Render(theme.Body.Render(w.Definition)) + "\n\n")
		b.WriteString(wrap.Render(theme.Hint.Render("“" + w.Example + "”")))
	} else {
		b.WriteString(theme.Hint.Render("Do you know this word? Press F to check."))
	}
	return theme.Card.Width(cw).Render(b.String())
}
