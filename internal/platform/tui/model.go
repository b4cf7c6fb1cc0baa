package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rsa-snake/internal/config"
	"github.com/vovakirdan/rsa-snake/internal/core"
	"github.com/vovakirdan/rsa-snake/internal/game"
	"github.com/vovakirdan/rsa-snake/internal/leaderboard"
)

// ScreenID identifies the active screen.
type ScreenID int

const (
	ScreenRegister ScreenID = iota
	ScreenDifficulty
	ScreenPlaying
	ScreenLeaderboard
)

func (s ScreenID) String() string {
	switch s {
	case ScreenRegister:
		return "register"
	case ScreenDifficulty:
		return "difficulty"
	case ScreenPlaying:
		return "playing"
	case ScreenLeaderboard:
		return "leaderboard"
	default:
		return "unknown"
	}
}

// Options configure the application.
type Options struct {
	Config     config.Config
	Runtime    core.RuntimeConfig
	Player     string            // Skips registration when set
	Difficulty config.Difficulty // Skips the first difficulty menu when set with Player
	Store      leaderboard.Store
	Logger     *log.Logger
	Clock      game.Clock
}

// Model is the root Bubble Tea model. It owns the only tick loop; menus
// and overlays are screens of this model, never nested programs.
type Model struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	store   leaderboard.Store
	log     *log.Logger
	clock   game.Clock

	screen     ScreenID
	prevScreen ScreenID // Where Back returns from the leaderboard

	register   RegisterModel
	difficulty DifficultyModel
	board      LeaderboardModel
	session    *game.Session

	player string
	level  config.Difficulty

	canvas     *core.Screen
	buttons    *core.ButtonBar
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	quitting   bool
}

// NewModel creates the application model.
func NewModel(opts Options) Model {
	// A blank name goes through registration
	opts.Player = strings.TrimSpace(opts.Player)
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = opts.Config.Timing.TickRate
	}
	if opts.Store == nil {
		opts.Store = leaderboard.NewBoard()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	chosen := opts.Difficulty != ""
	if !chosen {
		opts.Difficulty = config.Easy
	}

	m := Model{
		cfg:        opts.Config,
		runtime:    opts.Runtime,
		store:      opts.Store,
		log:        opts.Logger,
		clock:      opts.Clock,
		register:   NewRegisterModel(),
		difficulty: NewDifficultyModel(opts.Config, opts.Difficulty),
		player:     opts.Player,
		level:      opts.Difficulty,
		canvas:     core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		buttons:    core.GameButtons(),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}

	switch {
	case m.player == "":
		m.screen = ScreenRegister
	case chosen:
		m.startSession()
	default:
		m.screen = ScreenDifficulty
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd(m.runtime.TickRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	if m.screen == ScreenRegister {
		var cmd tea.Cmd
		m.register.input, cmd = m.register.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey routes a key press to the active screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c quits everywhere; q is a letter on the name prompt
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	switch m.screen {
	case ScreenRegister:
		reg, name, cmd := m.register.Update(msg)
		m.register = reg
		if name != "" {
			m.player = name
			m.log.Info("player registered", "player", name)
			m.setScreen(ScreenDifficulty)
		}
		return m, cmd

	case ScreenDifficulty:
		menu, action := m.difficulty.Update(msg)
		m.difficulty = menu
		switch action {
		case MenuActionQuit:
			return m.quit()
		case MenuActionPlay:
			m.level = m.difficulty.Selected()
			m.startSession()
		case MenuActionLeaderboard:
			m.openLeaderboard()
		case MenuActionBack:
			m.newPlayer()
		}
		return m, nil

	case ScreenLeaderboard:
		if key, _ := m.keyMapper.MapKey(msg); key == core.ActionQuit {
			return m.quit()
		}
		board, cmd, back := m.board.Update(msg)
		m.board = board
		if back {
			m.setScreen(m.prevScreen)
		}
		return m, cmd

	case ScreenPlaying:
		action, isQuit := m.keyMapper.MapKey(msg)
		if isQuit {
			return m.quit()
		}
		if action == core.ActionLeaderboard {
			m.openLeaderboard()
			return m, nil
		}
		m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	}

	return m, nil
}

// handleMouse maps left clicks on buttons to actions.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch m.screen {
	case ScreenPlaying:
		btn, ok := m.buttons.HitTest(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		if btn.Action == core.ActionLeaderboard {
			m.openLeaderboard()
			return m, nil
		}
		m.inputFrame.Set(btn.Action)

	case ScreenLeaderboard:
		if m.board.BackHit(msg.X, msg.Y) {
			m.setScreen(m.prevScreen)
		}
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.canvas.Resize(msg.Width, msg.Height)
	if m.screen == ScreenLeaderboard {
		m.board.Resize(msg.Width, msg.Height)
	}
	return m, nil
}

// handleTick steps the session while the game screen is shown. Other
// screens keep the loop alive without stepping it.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.screen != ScreenPlaying || m.session == nil {
		m.inputFrame.Clear()
		return m, tickCmd(m.runtime.TickRate)
	}

	out := m.session.Step(m.inputFrame)
	m.inputFrame.Clear()

	if out.Kind == game.OutcomeCommandIssued {
		switch m.session.TakeCommand() {
		case game.CommandRestart:
			m.session.NewRound()
		case game.CommandMain:
			m.session = nil
			m.setScreen(ScreenDifficulty)
		case game.CommandNewPlayer:
			m.newPlayer()
		}
	}

	return m, tickCmd(m.runtime.TickRate)
}

// startSession begins a round for the current player and difficulty.
func (m *Model) startSession() {
	m.session = game.NewSession(game.Options{
		Config:     m.cfg,
		Difficulty: m.level,
		Player:     m.player,
		Runtime:    m.runtime,
		Clock:      m.clock,
		Store:      m.store,
		Logger:     m.log,
	})
	// Next session gets a different layout
	m.runtime.Seed++
	m.inputFrame.Clear()
	m.setScreen(ScreenPlaying)
}

func (m *Model) newPlayer() {
	m.session = nil
	m.player = ""
	m.register = NewRegisterModel()
	m.setScreen(ScreenRegister)
}

func (m *Model) openLeaderboard() {
	m.prevScreen = m.screen
	m.board = NewLeaderboardModel(m.store, m.player, m.runtime.ScreenW, m.runtime.ScreenH)
	m.setScreen(ScreenLeaderboard)
}

func (m *Model) setScreen(s ScreenID) {
	if m.screen != s {
		m.log.Debug("screen", "from", m.screen, "to", s)
	}
	m.screen = s
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// Screen returns the active screen.
func (m Model) Screen() ScreenID {
	return m.screen
}

// Session returns the running game session, or nil outside the game.
func (m Model) Session() *game.Session {
	return m.session
}

// Player returns the registered player name.
func (m Model) Player() string {
	return m.player
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.runtime.ScreenW, m.runtime.ScreenH
	switch m.screen {
	case ScreenRegister:
		return m.register.View(w, h)
	case ScreenDifficulty:
		return m.difficulty.View(m.player, w, h)
	case ScreenLeaderboard:
		return m.board.View()
	}

	if m.session == nil {
		return ""
	}
	m.session.Render(m.canvas)
	if row := m.session.ButtonRow(); row < m.canvas.Height() {
		m.buttons.Layout(row, m.canvas.Width())
		m.buttons.Draw(m.canvas)
	}
	return RenderScreen(m.canvas)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
