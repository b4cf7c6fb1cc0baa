package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rsa-snake/internal/config"
)

// MenuKeyMap defines the key bindings of the difficulty menu.
type MenuKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Select      key.Binding
	Easy        key.Binding
	Medium      key.Binding
	Hard        key.Binding
	Leaderboard key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Easy, k.Medium, k.Hard, k.Select, k.Leaderboard, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Easy, k.Medium, k.Hard},
		{k.Leaderboard, k.Back, k.Quit},
	}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Easy: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "easy"),
		),
		Medium: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "medium"),
		),
		Hard: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hard"),
		),
		Leaderboard: key.NewBinding(
			key.WithKeys("l", "tab"),
			key.WithHelp("l", "leaderboard"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "change player"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuAction is what the difficulty menu asks the app to do.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionPlay
	MenuActionLeaderboard
	MenuActionBack
	MenuActionQuit
)

// DifficultyModel is the welcome screen where a difficulty is picked.
type DifficultyModel struct {
	cfg    config.Config
	items  []config.Difficulty
	cursor int
	keys   MenuKeyMap
}

// NewDifficultyModel creates the menu with the cursor on current.
func NewDifficultyModel(cfg config.Config, current config.Difficulty) DifficultyModel {
	m := DifficultyModel{
		cfg:   cfg,
		items: config.Difficulties(),
		keys:  DefaultMenuKeyMap(),
	}
	for i, d := range m.items {
		if d == current {
			m.cursor = i
		}
	}
	return m
}

// Selected returns the difficulty under the cursor.
func (m DifficultyModel) Selected() config.Difficulty {
	return m.items[m.cursor]
}

func (m *DifficultyModel) choose(d config.Difficulty) {
	for i, item := range m.items {
		if item == d {
			m.cursor = i
		}
	}
}

// Update handles a key press on the menu.
func (m DifficultyModel) Update(msg tea.KeyMsg) (DifficultyModel, MenuAction) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, MenuActionQuit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Easy):
		m.choose(config.Easy)
		return m, MenuActionPlay
	case key.Matches(msg, m.keys.Medium):
		m.choose(config.Medium)
		return m, MenuActionPlay
	case key.Matches(msg, m.keys.Hard):
		m.choose(config.Hard)
		return m, MenuActionPlay
	case key.Matches(msg, m.keys.Select):
		return m, MenuActionPlay
	case key.Matches(msg, m.keys.Leaderboard):
		return m, MenuActionLeaderboard
	case key.Matches(msg, m.keys.Back):
		return m, MenuActionBack
	}
	return m, MenuActionNone
}

// View renders the menu.
func (m DifficultyModel) View(player string, width, height int) string {
	var b strings.Builder

	b.WriteString(strings.Repeat("\n", max(0, height/2-7)))
	b.WriteString(centerText(titleStyle.Render("R S A   S N A K E"), width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Welcome, %s! Choose a difficulty", player), width))
	b.WriteString("\n\n")

	for i, d := range m.items {
		dc := m.cfg.For(d)
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s[%c] %-7s primes %d-%d, %d foods", cursor,
			strings.ToUpper(string(d))[0], d.Title(), dc.Min, dc.Max, dc.FoodCount)
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "E/M/H: Play  |  Enter: Select  |  L: Leaderboard  |  Esc: Change player  |  Q: Quit"
	b.WriteString(centerText(hintStyle.Render(controls), width))
	b.WriteString("\n")

	return b.String()
}
