package game

// MoveKind classifies the result of advancing the snake.
type MoveKind int

const (
	MoveIdle       MoveKind = iota // No direction chosen yet
	MoveTranslated                 // Head added, tail removed
	MoveGrew                       // Head added onto food, tail kept
	MoveCollided                   // Wall or self; the body is unchanged
)

// Move is the outcome of one Advance.
type Move struct {
	Kind MoveKind
	Head Cell // New head for Translated/Grew, rejected head for Collided
}

// Snake is an ordered list of cells, head first.
//
// A snake starts Idle and begins moving on its first accepted Steer. The
// steering direction is buffered and applied on the next Advance, so two
// quick presses between moves cannot reverse it.
type Snake struct {
	body    []Cell
	dir     Direction // Direction of the last applied move
	nextDir Direction // Buffered direction for the next move
	moving  bool
}

// NewSnake creates a single-segment idle snake.
func NewSnake(head Cell) *Snake {
	return &Snake{body: []Cell{head}}
}

// Head returns the first segment.
func (s *Snake) Head() Cell {
	return s.body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Moving reports whether the snake has a direction.
func (s *Snake) Moving() bool {
	return s.moving
}

// Direction returns the direction the snake will move next.
func (s *Snake) Direction() Direction {
	return s.nextDir
}

// Occupies reports whether any segment is on c.
func (s *Snake) Occupies(c Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// facing is the direction a reversal is measured against. An idle snake
// faces away from its second segment.
func (s *Snake) facing() Direction {
	if s.moving {
		return s.dir
	}
	if len(s.body) > 1 {
		return directionBetween(s.body[1], s.body[0])
	}
	return DirNone
}

// Steer buffers d for the next move. Reversals are ignored.
func (s *Snake) Steer(d Direction) bool {
	if d == DirNone {
		return false
	}
	if f := s.facing(); f != DirNone && d == f.Opposite() {
		return false
	}
	s.nextDir = d
	if !s.moving {
		s.dir = d
		s.moving = true
	}
	return true
}

// Stop makes the snake idle without changing its shape.
func (s *Snake) Stop() {
	s.moving = false
	s.dir = DirNone
	s.nextDir = DirNone
}

// Recenter collapses the snake into a horizontal line running left from the
// field center, keeping its length, and stops it.
func (s *Snake) Recenter(f Field) {
	c := f.Center()
	for i := range s.body {
		s.body[i] = Cell{Col: c.Col - i, Row: c.Row}
	}
	s.Stop()
}

// Advance moves the snake one cell. isFood reports whether the new head
// lands on food, in which case the snake grows.
func (s *Snake) Advance(f Field, isFood func(Cell) bool) Move {
	if !s.moving {
		return Move{Kind: MoveIdle}
	}

	s.dir = s.nextDir
	head := s.body[0].Add(s.dir)

	// The whole body counts, tail included
	if !f.Contains(head) || s.Occupies(head) {
		return Move{Kind: MoveCollided, Head: head}
	}

	s.body = append(s.body, Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = head

	if isFood != nil && isFood(head) {
		return Move{Kind: MoveGrew, Head: head}
	}

	s.body = s.body[:len(s.body)-1]
	return Move{Kind: MoveTranslated, Head: head}
}
