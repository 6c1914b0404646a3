package planner

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pteprep/internal/planner"
	"github.com/abhisek/pteprep/internal/ui/components"
	"github.com/abhisek/pteprep/internal/ui/theme"
)

const (
	fieldDate = iota
	fieldStart
	fieldEnd
	fieldTasks
	fieldNotes
	fieldCount
)

// form edits one session. editing is empty for a new session.
type form struct {
	editing string
	fields  [fieldCount]components.TextInput
	focused int
}

func newForm(s planner.Session) *form {
	f := &form{editing: s.ID}
	labels := [fieldCount]string{"Date", "Start", "End", "Tasks", "Notes"}
	placeholders := [fieldCount]string{"YYYY-MM-DD", "HH:MM", "HH:MM", "Read Aloud, Write Essay", "optional"}
	values := [fieldCount]string{s.Date, s.StartTime, s.EndTime, strings.Join(s.Tasks, ", "), s.Notes}
	limits := [fieldCount]int{10, 5, 5, 0, 0}
	for i := range f.fields {
		in := components.NewTextInput(placeholders[i], limits[i])
		in.Label = labels[i]
		in.SetValue(values[i])
		if i != fieldDate {
			in.Blur()
		}
		f.fields[i] = in
	}
	return f
}

func (f *form) draft() planner.Draft {
	return planner.Draft{
		Date:      strings.TrimSpace(f.fields[fieldDate].Value()),
		StartTime: strings.TrimSpace(f.fields[fieldStart].Value()),
		EndTime:   strings.TrimSpace(f.fields[fieldEnd].Value()),
		Tasks:     planner.ParseTasks(f.fields[fieldTasks].Value()),
		Notes:     strings.TrimSpace(f.fields[fieldNotes].Value()),
	}
}

func (f *form) move(delta int) tea.Cmd {
	f.fields[f.focused].Blur()
	f.focused = (f.focused + delta + fieldCount) % fieldCount
	return f.fields[f.focused].Focus()
}

// update handles one message and reports whether the learner submitted.
func (f *form) update(msg tea.Msg) (tea.Cmd, bool) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "tab", "down":
			return f.move(1), false
		case "shift+tab", "up":
			return f.move(-1), false
		case "enter":
			return nil, true
		}
	}
	var cmd tea.Cmd
	f.fields[f.focused], cmd = f.fields[f.focused].Update(msg)
	return cmd, false
}

// fail attaches err to the field it concerns.
func (f *form) fail(err error) {
	field := fieldDate
	switch {
	case errors.Is(err, planner.ErrInvalidTime):
		field = fieldEnd
		if strings.Contains(err.Error(), fmt.Sprintf("%q", f.draft().StartTime)) {
			field = fieldStart
		}
	case errors.Is(err, planner.ErrInvalidRange):
		field = fieldEnd
	}
	f.fields[field].SetError(err.Error())
}

// failedField is the field showing an error, or -1.
func (f *form) failedField() int {
	for i, in := range f.fields {
		if in.Err() != "" {
			return i
		}
	}
	return -1
}

func (f *form) view() string {
	title := "New study session"
	if f.editing != "" {
		title = "Edit study session"
	}
	var b strings.Builder
	b.WriteString(theme.Heading.Render(title) + "\n\n")
	for _, in := range f.fields {
		b.WriteString(in.View() + "\n")
	}
	b.WriteString("\n" + theme.Hint.Render("Tab moves between fields, Enter saves, Esc cancels."))
	return theme.Card.Render(b.String())
}
