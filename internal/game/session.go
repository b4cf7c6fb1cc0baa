package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rsa-snake/internal/config"
	"github.com/vovakirdan/rsa-snake/internal/core"
	"github.com/vovakirdan/rsa-snake/internal/leaderboard"
)

// Phase is the session's sub-state between ticks.
type Phase int

const (
	PhasePlaying     Phase = iota
	PhasePaused            // Timer frozen, waiting for a direction
	PhaseAwaitingAck       // Overlay shown, waiting for any key
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseAwaitingAck:
		return "awaiting_ack"
	default:
		return "unknown"
	}
}

// AckKind tells which overlay PhaseAwaitingAck shows.
type AckKind int

const (
	AckNone        AckKind = iota
	AckCiphertext          // After stage 3
	AckRoundResult         // After stage 4
)

// Options configure a Session.
type Options struct {
	Config     config.Config
	Difficulty config.Difficulty
	Player     string
	Runtime    core.RuntimeConfig // Seed and screen size
	Clock      Clock              // Defaults to the wall clock
	Store      leaderboard.Store  // Defaults to an in-memory board
	Logger     *log.Logger        // Defaults to a discarding logger
}

// Session runs rounds of the four stages for one player and difficulty.
// It is driven by Step once per platform tick and is not safe for
// concurrent use.
type Session struct {
	cfg        config.Config
	difficulty config.Difficulty
	player     string
	clock      Clock
	store      leaderboard.Store
	log        *log.Logger
	rng        *rand.Rand

	env    stageEnv
	run    *stageRun
	timer  *Timer
	router CommandRouter

	phase   Phase
	ack     AckKind
	keys    KeyMaterial
	message EncryptionRound
	result  RoundResult

	tick       uint64
	round      int
	moveEvery  int
	moveTicker int
}

// NewSession creates a session and starts its first round.
func NewSession(opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = SystemClock()
	}
	if opts.Store == nil {
		opts.Store = leaderboard.NewBoard()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Config.Difficulties == nil {
		opts.Config = config.DefaultConfig()
	}
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:        opts.Config,
		difficulty: opts.Difficulty,
		player:     opts.Player,
		clock:      opts.Clock,
		store:      opts.Store,
		log:        opts.Logger.With("player", opts.Player, "difficulty", opts.Difficulty),
		rng:        rand.New(rand.NewSource(seed)),
		moveEvery:  opts.Config.Timing.MoveEveryTicks(),
	}

	field := Field{Cols: s.cfg.Field.Cols, Rows: s.cfg.Field.Rows}
	s.env = stageEnv{
		cfg:   s.cfg,
		dc:    s.cfg.For(s.difficulty),
		field: field,
		gen:   NewGenerator(s.rng, field, s.cfg.Field.CellWidth),
		log:   s.log,
	}

	s.NewRound()
	return s
}

// NewRound discards all progress and starts stage 1 with a single-segment
// snake and a fresh timer. The player and difficulty are kept.
func (s *Session) NewRound() {
	s.round++
	s.router = CommandRouter{}
	s.phase = PhasePlaying
	s.ack = AckNone
	s.keys = KeyMaterial{}
	s.message = EncryptionRound{}
	s.result = RoundResult{}
	s.moveTicker = 0

	s.env.snake = NewSnake(s.env.field.Center())
	s.timer = NewTimer(s.clock)
	s.run = startStage(&primeStage{}, &s.env)

	s.log.Debug("round started", "round", s.round)
}

// Step advances the session by one platform tick.
//
// A pending restart, main or new-player command is reported as
// OutcomeCommandIssued on every step until TakeCommand clears it. Pause is
// handled internally.
func (s *Session) Step(input core.InputFrame) Outcome {
	s.tick++

	if s.phase == PhaseAwaitingAck {
		// A key press dismisses the overlay. A clicked button acts on its
		// command instead.
		if input.Has(core.ActionAnyKey) {
			s.acknowledge()
			return proceed()
		}
		s.raiseCommands(input)
		if cmd := s.router.Pending(); cmd != CommandNone {
			return s.issue(cmd)
		}
		return proceed()
	}

	s.raiseCommands(input)

	if s.phase == PhasePaused {
		if cmd := s.router.Pending(); cmd != CommandNone {
			s.phase = PhasePlaying
			return s.issue(cmd)
		}
		if len(input.Directions()) > 0 {
			s.timer.Resume()
			s.phase = PhasePlaying
			s.log.Debug("resumed", "elapsed", s.timer.Elapsed())
		}
		return proceed()
	}

	if cmd := s.router.Pending(); cmd != CommandNone {
		if cmd == CommandPause {
			s.router.Take()
			s.timer.Pause()
			s.phase = PhasePaused
			s.log.Info("paused", "stage", s.run.stage.ID(), "elapsed", s.timer.Elapsed())
			return proceed()
		}
		return s.issue(cmd)
	}

	for _, a := range input.Directions() {
		s.env.snake.Steer(DirectionOf(a))
	}

	s.moveTicker++
	if s.moveTicker < s.moveEvery {
		return proceed()
	}
	s.moveTicker = 0

	return s.handle(s.run.tick(&s.env))
}

// raiseCommands puts the highest-priority command of the frame in the slot.
func (s *Session) raiseCommands(input core.InputFrame) {
	for _, ca := range commandActions {
		if !input.Has(ca.action) {
			continue
		}
		if ca.command == CommandPause && s.phase != PhasePlaying {
			continue
		}
		if s.router.Raise(ca.command) {
			return
		}
	}
}

func (s *Session) issue(cmd Command) Outcome {
	return Outcome{Kind: OutcomeCommandIssued, Command: cmd}
}

// TakeCommand returns and clears the pending command. The caller acts on it:
// NewRound for restart, the menus for main and new player.
func (s *Session) TakeCommand() Command {
	cmd := s.router.Take()
	if cmd != CommandNone {
		s.log.Info("command", "command", cmd, "stage", s.run.stage.ID())
	}
	return cmd
}

// handle moves to the next stage or overlay after a stage outcome.
func (s *Session) handle(out Outcome) Outcome {
	switch out.Kind {
	case OutcomePrimesFound:
		s.log.Info("stage complete", "stage", StagePrimes, "p", out.Primes[0], "q", out.Primes[1])
		s.run = startStage(newExponentStage(out.Primes[0], out.Primes[1]), &s.env)

	case OutcomeExponentChosen:
		s.keys = out.Keys
		s.log.Info("stage complete", "stage", StageExponent, "e", out.Keys.E, "d", out.Keys.D)
		s.run = startStage(newEncryptStage(out.Keys), &s.env)

	case OutcomeMessageEncrypted:
		s.message = out.Message
		s.phase = PhaseAwaitingAck
		s.ack = AckCiphertext
		s.log.Info("stage complete", "stage", StageEncrypt, "plaintext", out.Message.Plaintext)

	case OutcomeRoundFinished:
		out.Result = s.finishRound(out.Result)
		s.result = out.Result
		s.phase = PhaseAwaitingAck
		s.ack = AckRoundResult
	}
	return out
}

// finishRound stamps the elapsed time and records it. Store failures are
// logged and otherwise ignored.
func (s *Session) finishRound(r RoundResult) RoundResult {
	r.Player = s.player
	r.Difficulty = s.difficulty
	r.Elapsed = s.timer.Elapsed()
	seconds := r.Elapsed.Seconds()

	improved, err := s.store.RecordTime(s.player, seconds)
	if err != nil {
		s.log.Warn("cannot record time", "err", err)
	}
	r.Improved = improved

	err = s.store.SaveRound(leaderboard.Round{
		Player:     s.player,
		Difficulty: string(s.difficulty),
		Seconds:    seconds,
		Plaintext:  r.Plaintext,
		N:          r.Keys.N,
		E:          r.Keys.E,
		D:          r.Keys.D,
		Decrypted:  r.Success,
		FinishedAt: s.clock.Now(),
	})
	if err != nil {
		s.log.Warn("cannot save round", "err", err)
	}

	s.log.Info("round finished", "seconds", seconds, "improved", improved, "decrypted", r.Success)
	return r
}

func (s *Session) acknowledge() {
	switch s.ack {
	case AckCiphertext:
		s.phase = PhasePlaying
		s.ack = AckNone
		s.run = startStage(newDecryptStage(s.keys, s.message), &s.env)
	case AckRoundResult:
		s.NewRound()
	}
}

// Phase returns the current sub-state.
func (s *Session) Phase() Phase { return s.phase }

// Ack returns the overlay shown while awaiting acknowledgement.
func (s *Session) Ack() AckKind { return s.ack }

// Stage returns the active stage.
func (s *Session) Stage() StageID { return s.run.stage.ID() }

// Attempt returns how many times the active stage was restarted.
func (s *Session) Attempt() int { return s.run.attempt }

// Elapsed returns the round time so far.
func (s *Session) Elapsed() time.Duration { return s.timer.Elapsed() }

// Player returns the player name.
func (s *Session) Player() string { return s.player }

// Difficulty returns the selected difficulty.
func (s *Session) Difficulty() config.Difficulty { return s.difficulty }

// Keys returns the key material chosen so far in this round.
func (s *Session) Keys() KeyMaterial { return s.keys }

// Message returns the encrypted message once stage 3 is done.
func (s *Session) Message() EncryptionRound { return s.message }

// Result returns the last finished round of this session.
func (s *Session) Result() RoundResult { return s.result }

// Snake returns the snake's cells, head first.
func (s *Session) Snake() []Cell { return s.env.snake.Body() }

// Food returns the food currently on the field.
func (s *Session) Food() []Food {
	items := s.run.stage.food()
	out := make([]Food, len(items))
	copy(out, items)
	return out
}

// Info returns the lines of the info panel.
func (s *Session) Info() []string {
	lines := s.run.stage.info()
	status := fmt.Sprintf("Time elapsed: %.2f s   Player: %s (%s)",
		s.timer.Elapsed().Seconds(), s.player, s.difficulty.Title())
	if s.run.attempt > 0 {
		status += fmt.Sprintf("   Retries: %d", s.run.attempt)
	}
	return append(lines, status)
}
