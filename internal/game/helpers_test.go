package game

import (
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rsa-snake/internal/config"
	"github.com/vovakirdan/rsa-snake/internal/core"
	"github.com/vovakirdan/rsa-snake/internal/leaderboard"
)

// fakeClock is a manually advanced Clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func testEnv(seed int64) *stageEnv {
	cfg := config.DefaultConfig()
	field := Field{Cols: cfg.Field.Cols, Rows: cfg.Field.Rows}
	return &stageEnv{
		cfg:   cfg,
		dc:    cfg.For(config.Easy),
		field: field,
		gen:   NewGenerator(rand.New(rand.NewSource(seed)), field, cfg.Field.CellWidth),
		snake: NewSnake(field.Center()),
		log:   log.New(io.Discard),
	}
}

// newTestSession builds a session on a wide field that moves every tick.
func newTestSession(t *testing.T, clock Clock, store leaderboard.Store) *Session {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Field.Cols = 60
	cfg.Timing.MovesPerSecond = cfg.Timing.TickRate

	return NewSession(Options{
		Config:     cfg,
		Difficulty: config.Easy,
		Player:     "alice",
		Runtime:    core.RuntimeConfig{Seed: 42},
		Clock:      clock,
		Store:      store,
	})
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// setFood replaces the active stage's food.
func setFood(s *Session, items []Food) {
	switch st := s.run.stage.(type) {
	case *primeStage:
		st.items = items
	case *exponentStage:
		st.items = items
	case *encryptStage:
		st.items = items
	case *decryptStage:
		st.items = items
	}
}

// feed puts value right of the head and steps the snake onto it.
func feed(t *testing.T, s *Session, value int) Outcome {
	t.Helper()
	head := s.env.snake.Head()
	setFood(s, []Food{{Cell: head.Add(DirRight), Value: value}})
	out := s.Step(frame(core.ActionRight))
	if s.env.snake.Head() != head.Add(DirRight) {
		t.Fatalf("snake did not move onto food: head %v", s.env.snake.Head())
	}
	return out
}
