package game

// Snapshot captures the session state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Round    int
	Stage    StageID
	Attempt  int
	Phase    Phase
	SnakeLen int
	Head     Cell
	Dir      Direction
	Food     []Food
	Keys     KeyMaterial
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:     s.tick,
		Round:    s.round,
		Stage:    s.run.stage.ID(),
		Attempt:  s.run.attempt,
		Phase:    s.phase,
		SnakeLen: s.env.snake.Len(),
		Head:     s.env.snake.Head(),
		Dir:      s.env.snake.Direction(),
		Food:     s.Food(),
		Keys:     s.keys,
	}
}
