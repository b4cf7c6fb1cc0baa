package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rsa-snake/internal/config"
	"github.com/vovakirdan/rsa-snake/internal/core"
	"github.com/vovakirdan/rsa-snake/internal/game"
)

func newTestModel(t *testing.T, player string, d config.Difficulty) Model {
	t.Helper()
	return NewModel(Options{
		Config:     config.DefaultConfig(),
		Runtime:    core.RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 30, Seed: 7},
		Player:     player,
		Difficulty: d,
	})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func TestStartScreen(t *testing.T) {
	tests := []struct {
		name   string
		player string
		diff   config.Difficulty
		screen ScreenID
	}{
		{"no player", "", "", ScreenRegister},
		{"player only", "alice", "", ScreenDifficulty},
		{"player and difficulty", "alice", config.Hard, ScreenPlaying},
		{"blank player", "   ", config.Hard, ScreenRegister},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, tt.player, tt.diff)
			if m.Screen() != tt.screen {
				t.Errorf("screen = %v, expected %v", m.Screen(), tt.screen)
			}
		})
	}
}

func TestRegisterThenPlay(t *testing.T) {
	m := newTestModel(t, "", "")

	// Blank names are refused
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Screen() != ScreenRegister {
		t.Fatalf("screen = %v after blank name", m.Screen())
	}

	// q is part of a name here, not a quit
	m = send(t, m, runeKey("q"))
	m = send(t, m, runeKey("bob"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Screen() != ScreenDifficulty {
		t.Fatalf("screen = %v, expected difficulty", m.Screen())
	}
	if m.Player() != "qbob" {
		t.Errorf("player = %q, expected qbob", m.Player())
	}

	m = send(t, m, runeKey("m"))
	if m.Screen() != ScreenPlaying {
		t.Fatalf("screen = %v, expected playing", m.Screen())
	}
	if m.Session().Difficulty() != config.Medium {
		t.Errorf("difficulty = %v, expected medium", m.Session().Difficulty())
	}
}

func TestCommandsFromKeys(t *testing.T) {
	t.Run("restart", func(t *testing.T) {
		m := newTestModel(t, "alice", config.Easy)
		before := m.Session().Snapshot().Round

		m = send(t, m, runeKey("r"))
		m = send(t, m, TickMsg{})
		if m.Screen() != ScreenPlaying {
			t.Fatalf("screen = %v, expected playing", m.Screen())
		}
		if got := m.Session().Snapshot().Round; got != before+1 {
			t.Errorf("round = %d, expected %d", got, before+1)
		}
	})

	t.Run("main", func(t *testing.T) {
		m := newTestModel(t, "alice", config.Easy)
		m = send(t, m, runeKey("m"))
		m = send(t, m, TickMsg{})
		if m.Screen() != ScreenDifficulty || m.Session() != nil {
			t.Errorf("screen = %v, expected difficulty without a session", m.Screen())
		}
		if m.Player() != "alice" {
			t.Errorf("player = %q, expected alice", m.Player())
		}
	})

	t.Run("new player", func(t *testing.T) {
		m := newTestModel(t, "alice", config.Easy)
		m = send(t, m, runeKey("n"))
		m = send(t, m, TickMsg{})
		if m.Screen() != ScreenRegister || m.Player() != "" {
			t.Errorf("screen = %v player = %q, expected register with no player", m.Screen(), m.Player())
		}
	})

	t.Run("pause", func(t *testing.T) {
		m := newTestModel(t, "alice", config.Easy)
		m = send(t, m, runeKey("p"))
		m = send(t, m, TickMsg{})
		if m.Session().Phase() != game.PhasePaused {
			t.Errorf("phase = %v, expected paused", m.Session().Phase())
		}
	})
}

func TestLeaderboardReturnsToPreviousScreen(t *testing.T) {
	tests := []struct {
		name  string
		start config.Difficulty
		from  ScreenID
	}{
		{"from game", config.Easy, ScreenPlaying},
		{"from menu", "", ScreenDifficulty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, "alice", tt.start)
			m = send(t, m, runeKey("l"))
			if m.Screen() != ScreenLeaderboard {
				t.Fatalf("screen = %v, expected leaderboard", m.Screen())
			}
			m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
			if m.Screen() != tt.from {
				t.Errorf("screen = %v, expected %v", m.Screen(), tt.from)
			}
		})
	}
}

func TestMouseClickPause(t *testing.T) {
	m := newTestModel(t, "alice", config.Easy)
	m.buttons.Layout(m.Session().ButtonRow(), m.runtime.ScreenW)

	var pause core.Button
	for _, b := range m.buttons.Buttons() {
		if b.Name == core.ButtonPause {
			pause = b
		}
	}

	// Clicks off the buttons and non-left clicks do nothing
	m = send(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = send(t, m, tea.MouseMsg{X: pause.Bounds.X, Y: pause.Bounds.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	m = send(t, m, TickMsg{})
	if m.Session().Phase() != game.PhasePlaying {
		t.Fatalf("phase = %v, expected playing", m.Session().Phase())
	}

	m = send(t, m, tea.MouseMsg{X: pause.Bounds.X, Y: pause.Bounds.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = send(t, m, TickMsg{})
	if m.Session().Phase() != game.PhasePaused {
		t.Errorf("phase = %v, expected paused", m.Session().Phase())
	}
}

func TestViewRendersButtons(t *testing.T) {
	m := newTestModel(t, "alice", config.Easy)
	if v := m.View(); v == "" {
		t.Fatal("empty view")
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestPlayerNameTrimmed(t *testing.T) {
	m := newTestModel(t, "  bob ", config.Easy)
	if m.Player() != "bob" {
		t.Errorf("player = %q, expected bob", m.Player())
	}
	if got := m.Session().Player(); got != "bob" {
		t.Errorf("session player = %q, expected bob", got)
	}
}
