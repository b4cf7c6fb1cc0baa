package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rsa-snake/internal/core"
	"github.com/vovakirdan/rsa-snake/internal/leaderboard"
)

// Leaderboard layout constants
const (
	maxRounds    = 50 // Rounds shown in the history tab
	tableChrome  = 10 // Title, tabs, borders, help and back button
	minTableRows = 3
)

type leaderboardTab int

const (
	tabRankings leaderboardTab = iota
	tabRounds
)

func (t leaderboardTab) String() string {
	if t == tabRounds {
		return "Recent rounds"
	}
	return "Best times"
}

// LeaderboardKeyMap defines the key bindings for the leaderboard.
type LeaderboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Tab  key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LeaderboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Tab, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LeaderboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Tab},
		{k.Back, k.Quit},
	}
}

// DefaultLeaderboardKeyMap returns default key bindings.
func DefaultLeaderboardKeyMap() LeaderboardKeyMap {
	return LeaderboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right"),
			key.WithHelp("tab", "switch view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "enter"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LeaderboardModel shows best times and the round history.
type LeaderboardModel struct {
	store  leaderboard.Store
	player string
	tab    leaderboardTab
	rows   int // Number of data rows loaded
	rank   int // Current player's position in the rankings, 0 if unranked
	err    error
	table  table.Model
	help   help.Model
	keys   LeaderboardKeyMap
	back   *core.ButtonBar
	width  int
	height int
}

// NewLeaderboardModel creates the screen and loads the current tab.
func NewLeaderboardModel(store leaderboard.Store, player string, width, height int) LeaderboardModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := LeaderboardModel{
		store:  store,
		player: player,
		help:   h,
		keys:   DefaultLeaderboardKeyMap(),
		back:   core.BackButton(),
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

// createTable creates a new table with columns for the current tab.
func (m *LeaderboardModel) createTable() table.Model {
	var columns []table.Column
	if m.tab == tabRounds {
		columns = []table.Column{
			{Title: "Player", Width: 14},
			{Title: "Level", Width: 7},
			{Title: "Time", Width: 9},
			{Title: "Word", Width: 9},
			{Title: "n, e, d", Width: 22},
		}
	} else {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Player", Width: 20},
			{Title: "Best time", Width: 12},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(minTableRows, m.height-tableChrome)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload rebuilds the table from the store.
func (m *LeaderboardModel) reload() {
	m.table = m.createTable()
	m.err = nil
	m.rank = 0

	var rows []table.Row
	if m.store != nil {
		if m.tab == tabRounds {
			rows, m.err = m.roundRows()
		} else {
			rows, m.err = m.rankingRows()
		}
	}
	m.rows = len(rows)
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *LeaderboardModel) rankingRows() ([]table.Row, error) {
	entries, err := m.store.Rankings()
	if err != nil {
		return nil, err
	}
	m.rank = leaderboard.Rank(entries, m.player)
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		name := e.Player
		if name == m.player {
			name += " *"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			name,
			fmt.Sprintf("%.2fs", e.Seconds),
		}
	}
	return rows, nil
}

func (m *LeaderboardModel) roundRows() ([]table.Row, error) {
	rounds, err := m.store.RecentRounds(maxRounds)
	if err != nil {
		return nil, err
	}
	rows := make([]table.Row, len(rounds))
	for i, r := range rounds {
		word := r.Plaintext
		if !r.Decrypted {
			word += "!"
		}
		rows[i] = table.Row{
			r.Player,
			r.Difficulty,
			fmt.Sprintf("%.2fs", r.Seconds),
			word,
			fmt.Sprintf("%d, %d, %d", r.N, r.E, r.D),
		}
	}
	return rows, nil
}

// Resize adapts the table to a new window size.
func (m *LeaderboardModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.reload()
}

// Update handles a key press. It reports true when the player goes back.
func (m LeaderboardModel) Update(msg tea.KeyMsg) (LeaderboardModel, tea.Cmd, bool) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Back):
		return m, nil, true

	case key.Matches(msg, m.keys.Tab):
		if m.tab == tabRankings {
			m.tab = tabRounds
		} else {
			m.tab = tabRankings
		}
		m.reload()
		return m, nil, false

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		m.table, cmd = m.table.Update(msg)
	}
	return m, cmd, false
}

// BackHit reports whether (x, y) is on the Back button.
func (m LeaderboardModel) BackHit(x, y int) bool {
	_, backY := m.body()
	m.back.Layout(backY, m.width)
	btn, ok := m.back.HitTest(x, y)
	return ok && btn.Name == core.ButtonBack
}

// body renders everything above the Back button and returns the row the
// button goes on.
func (m LeaderboardModel) body() (string, int) {
	var b strings.Builder

	b.WriteString(centerText(titleStyle.Render("LEADERBOARD"), m.width))
	b.WriteString("\n\n")

	activeTab := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	inactiveTab := hintStyle.Padding(0, 1)

	var tabs []string
	for _, t := range []leaderboardTab{tabRankings, tabRounds} {
		if t == m.tab {
			tabs = append(tabs, activeTab.Render(t.String()))
		} else {
			tabs = append(tabs, inactiveTab.Render(t.String()))
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	switch {
	case m.err != nil:
		content = errorStyle.Render(fmt.Sprintf("Cannot load the leaderboard: %v", m.err))
	case m.rows == 0:
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4).
			Render("No rounds finished yet.\nDecrypt a message to get on the board!")
	default:
		content = m.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(content)))
	b.WriteString("\n")
	if line := m.rankLine(); line != "" {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	s := b.String()
	return s, lipgloss.Height(s)
}

// rankLine tells the current player where they stand.
func (m LeaderboardModel) rankLine() string {
	if m.tab != tabRankings || m.player == "" || m.err != nil || m.rows == 0 {
		return ""
	}
	if m.rank == 0 {
		return hintStyle.Render(m.player + " has no finished round yet")
	}
	return fmt.Sprintf("Your rank: #%d of %d", m.rank, m.rows)
}

// View renders the leaderboard.
func (m LeaderboardModel) View() string {
	body, backY := m.body()
	m.back.Layout(backY, m.width)

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	btn := m.back.Buttons()[0]
	b.WriteString(strings.Repeat(" ", btn.Bounds.X))
	b.WriteString(buttonStyle.Render("[" + btn.Label + "]"))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(m.help.View(m.keys)))

	return b.String()
}
