package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pickedMsg string

func pick(name string) func() tea.Cmd {
	return func() tea.Cmd { return func() tea.Msg { return pickedMsg(name) } }
}

func testMenu() Menu {
	return NewMenu([]MenuItem{
		{Label: "Tasks", Action: pick("tasks")},
		{Label: "Locked", Disabled: true, Action: pick("locked")},
		{Label: "Vocabulary", Action: pick("vocab")},
	})
}

func press(m Menu, k tea.KeyPressMsg) (Menu, tea.Cmd) { return m.Update(k) }

func TestMenuSkipsDisabledAndWraps(t *testing.T) {
	m := testMenu()
	assert.Equal(t, 0, m.Selected)

	m, _ = press(m, tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 2, m.Selected, "disabled item is skipped")

	m, _ = press(m, tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 0, m.Selected, "selection wraps to the top")

	m, _ = press(m, tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 2, m.Selected, "selection wraps to the bottom")
}

func TestMenuFirstEnabledSelected(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a", Disabled: true}, {Label: "b"}})
	assert.Equal(t, 1, m.Selected)
}

func TestMenuEnterAndNumberKeysRunActions(t *testing.T) {
	m := testMenu()

	_, cmd := press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, pickedMsg("tasks"), cmd())

	m, cmd = press(m, tea.KeyPressMsg{Code: '3', Text: "3"})
	require.NotNil(t, cmd)
	assert.Equal(t, pickedMsg("vocab"), cmd())
	assert.Equal(t, 2, m.Selected)

	_, cmd = press(m, tea.KeyPressMsg{Code: '2', Text: "2"})
	assert.Nil(t, cmd, "disabled items do not run")

	_, cmd = press(m, tea.KeyPressMsg{Code: '9', Text: "9"})
	assert.Nil(t, cmd)
}

func TestMenuViewShowsBadge(t *testing.T) {
	unread := 0
	m := NewMenu([]MenuItem{{
		Label: "Notifications",
		Badge: func() string {
			if unread == 0 {
				return ""
			}
			return "2 unread"
		},
	}})
	assert.NotContains(t, m.View(), "unread")
	unread = 2
	assert.True(t, strings.Contains(m.View(), "Notifications (2 unread)"))
}
