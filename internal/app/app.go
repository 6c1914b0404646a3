package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pteprep/internal/notify"
	"github.com/abhisek/pteprep/internal/router"
	"github.com/abhisek/pteprep/internal/screen"
	"github.com/abhisek/pteprep/internal/ui/layout"
)

// focusTickMsg advances the shared focus timer.
type focusTickMsg time.Time

// pollMsg regenerates notifications.
type pollMsg time.Time

func focusTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return focusTickMsg(t) })
}

func poll() tea.Cmd {
	return tea.Tick(notify.PollInterval, func(t time.Time) tea.Msg { return pollMsg(t) })
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	state  *State
	width  int
	height int
}

// newAppModel creates the root model with initial as the bottom screen.
func newAppModel(initial screen.Screen, st *State) AppModel {
	st.PollNotifications()
	return AppModel{
		router: router.New(initial),
		state:  st,
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), focusTick(), poll())
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case focusTickMsg:
		m.state.TickFocus()
		m.state.ReportSpeechFailures()
		return m, focusTick()

	case pollMsg:
		m.state.PollNotifications()
		return m, poll()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if c, ok := m.router.Active().(screen.InputCapturer); ok && c.CapturesInput() {
				break
			}
			if m.router.Depth() > 1 {
				return m, router.Navigate(router.PopScreenMsg{})
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// status is the header's right-hand side.
func (m AppModel) status() layout.HeaderStatus {
	s := layout.HeaderStatus{
		Day:    m.state.Day(),
		Unread: m.state.Inbox().Unread(),
	}
	if m.state.focus != nil {
		s.Focused = m.state.focus.Running()
	}
	return s
}

func (m AppModel) hints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.router.Breadcrumb(layout.BreadcrumbSep), m.status(), m.width)
	footer := layout.RenderFooter(m.hints(), m.width)

	contentHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(footer))
	content := layout.Clip(m.router.View(m.width, contentHeight), contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program on initial, which is usually the
// dashboard or onboarding.
func Run(initial screen.Screen, st *State) error {
	p := tea.NewProgram(newAppModel(initial, st))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
