package onboarding

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pteprep/internal/app/apptest"
	"github.com/abhisek/pteprep/internal/profile"
	"github.com/abhisek/pteprep/internal/router"
	"github.com/abhisek/pteprep/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "dashboard" }
func (s *stubScreen) Title() string                           { return "Dashboard" }

func key(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }

func TestDefaultsSelectedAndOnboardReplacesScreen(t *testing.T) {
	env := apptest.New(t)
	built := 0
	s := New(env.State, func() screen.Screen { built++; return &stubScreen{} })

	if got := s.Input(); got != (profile.Input{TargetScore: 65, DailyHours: 2, Level: profile.Intermediate}) {
		t.Fatalf("defaults = %+v", got)
	}

	s.Update(enter())
	s.Update(enter())
	s.Update(enter())
	if s.step != stepConfirm {
		t.Fatalf("step = %d, want confirm", s.step)
	}
	if built != 0 || env.State.Onboarded() {
		t.Fatal("onboarded before confirmation")
	}

	_, cmd := s.Update(enter())
	if cmd == nil {
		t.Fatal("expected a replace command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Errorf("expected ReplaceScreenMsg")
	}
	if built != 1 || !env.State.Onboarded() {
		t.Errorf("built=%d onboarded=%v", built, env.State.Onboarded())
	}
}

func TestNumberKeysPickAndEscGoesBack(t *testing.T) {
	env := apptest.New(t)
	s := New(env.State, func() screen.Screen { return &stubScreen{} })

	s.Update(key('3')) // 75
	s.Update(key('4')) // 4 hours
	if !s.CapturesInput() {
		t.Fatal("esc should step back once past the first question")
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if s.step != stepHours {
		t.Fatalf("step = %d after esc, want hours", s.step)
	}
	s.Update(key('1')) // 1 hour
	s.Update(key('3')) // advanced

	want := profile.Input{TargetScore: 75, DailyHours: 1, Level: profile.Advanced}
	if got := s.Input(); got != want {
		t.Errorf("input = %+v, want %+v", got, want)
	}
	s.Update(enter())

	p, err := env.State.Profile()
	if err != nil {
		t.Fatal(err)
	}
	if p.TargetScore != 75 || p.DailyHours != 1 || p.CurrentLevel != profile.Advanced {
		t.Errorf("saved profile = %+v", p)
	}
}

func TestBannerFallsBackWhenNarrow(t *testing.T) {
	if got := renderBanner(72, true); !strings.Contains(got, "██████╗") {
		t.Errorf("wide first step should show the large banner, got %q", got)
	}
	if got := renderBanner(30, true); !strings.Contains(got, bannerCompact) {
		t.Errorf("narrow card should show the compact banner, got %q", got)
	}
	if got := renderBanner(72, false); !strings.Contains(got, bannerCompact) {
		t.Errorf("later steps should show the compact banner, got %q", got)
	}
}
