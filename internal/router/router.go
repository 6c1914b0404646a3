package router

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pteprep/internal/screen"
)

// Navigation messages. Screens return them from commands; the root model
// hands them to Router.Update.
type (
	// PushScreenMsg opens Screen on top of the current one.
	PushScreenMsg struct{ Screen screen.Screen }

	// PopScreenMsg closes the current screen.
	PopScreenMsg struct{}

	// PopToRootMsg closes every screen above the dashboard.
	PopToRootMsg struct{}

	// ReplaceScreenMsg swaps the current screen, e.g. onboarding for the
	// dashboard once a profile exists.
	ReplaceScreenMsg struct{ Screen screen.Screen }
)

// Navigate returns a command that delivers msg, for use in key handlers.
func Navigate(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Router is a stack of screens. The bottom screen is never popped.
type Router struct {
	stack []screen.Screen
}

// New creates a Router rooted at root.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push opens s and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the top screen and reports whether anything was closed.
func (r *Router) Pop() bool {
	if len(r.stack) <= 1 {
		return false
	}
	r.stack[len(r.stack)-1] = nil
	r.stack = r.stack[:len(r.stack)-1]
	return true
}

// PopToRoot closes everything above the root screen.
func (r *Router) PopToRoot() {
	for r.Pop() {
	}
}

// Replace swaps the top screen for s and runs its Init.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Active is the screen receiving input.
func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

// Depth is the number of open screens, at least 1.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Breadcrumb joins the titles of the open screens, root first. Screens
// with an empty title are skipped.
func (r *Router) Breadcrumb(sep string) string {
	titles := make([]string, 0, len(r.stack))
	for _, s := range r.stack {
		if t := s.Title(); t != "" {
			titles = append(titles, t)
		}
	}
	return strings.Join(titles, sep)
}

// Update applies navigation messages and forwards everything else to the
// active screen. Screens below the top never see messages, so their
// timers go quiet until they are active again.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		r.Pop()
		return nil
	case PopToRootMsg:
		r.PopToRoot()
		return nil
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	updated, cmd := r.Active().Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
