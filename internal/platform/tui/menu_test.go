package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/golddigger/internal/config"
	"github.com/vovakirdan/golddigger/internal/core"
	"github.com/vovakirdan/golddigger/internal/registry"
)

func init() {
	registry.Register(registry.ModeInfo{ID: "tui-test", Title: "Test mode", Order: -1},
		func(registry.Env) registry.Game { return &fakeGame{} })
}

func TestMenuItems(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	if len(m.items) < 3 {
		t.Fatalf("expected mode, history and quit entries, got %d", len(m.items))
	}
	if m.items[0].ModeID != "tui-test" {
		t.Errorf("first item = %q, expected tui-test", m.items[0].ModeID)
	}
	last := m.items[len(m.items)-1]
	if last.Kind != MenuItemQuit {
		t.Error("last item should be Quit")
	}
	if m.items[len(m.items)-2].Kind != MenuItemScoreboard {
		t.Error("history entry should precede Quit")
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if m.Selected() == nil || m.Selected().ModeID != "tui-test" || cmd == nil {
		t.Fatal("expected first mode selected")
	}

	m = NewMenuModel(core.DefaultConfig())
	for range len(m.items) {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !next.(MenuModel).IsQuitting() {
		t.Error("selecting Quit should quit")
	}
}

func TestSessionFlow(t *testing.T) {
	env := registry.Env{Config: config.DefaultConfig(), Logger: log.New(io.Discard)}
	s := NewSessionModel(env, fakeHistory{}, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	// Run history and back
	step(tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenScoreboard {
		t.Fatalf("expected scoreboard, got %v", s.screen)
	}
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu {
		t.Fatalf("expected menu after back, got %v", s.screen)
	}

	// Into the game, pause, back to the menu
	step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame || s.gameModel == nil {
		t.Fatal("expected game screen")
	}
	g := s.gameModel.game.(*fakeGame)

	step(runeKey('p'))
	step(TickMsg(time.Unix(100, 0)))
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu || s.gameModel != nil {
		t.Fatal("expected menu after leaving a paused game")
	}
	if len(g.finished) != 1 {
		t.Errorf("leaving should record the run once, got %v", g.finished)
	}

	// Quit from the menu
	step(runeKey('q'))
	if !s.quitting || s.View() != "" {
		t.Error("expected session to quit")
	}
}
