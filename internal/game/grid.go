// Package game implements the RSA Snake round: four puzzle stages driven by
// a single snake that moves on a bounded grid.
//
// The package is pure game logic. It reads semantic input from
// core.InputFrame, draws into a core.Screen, and never touches the terminal.
package game

import "github.com/vovakirdan/rsa-snake/internal/core"

// Cell is a grid coordinate.
type Cell struct {
	Col, Row int
}

// Add returns the neighbouring cell in direction d.
func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Vector()
	return Cell{Col: c.Col + dx, Row: c.Row + dy}
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Vector returns the unit step of the direction.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// DirectionOf maps a directional action to a Direction.
func DirectionOf(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	case core.ActionRight:
		return DirRight
	default:
		return DirNone
	}
}

// directionBetween returns the direction that leads from a to an adjacent b.
func directionBetween(a, b Cell) Direction {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if a.Add(d) == b {
			return d
		}
	}
	return DirNone
}

// Field is the playing area, Cols x Rows cells. Leaving it is a collision.
type Field struct {
	Cols, Rows int
}

// Contains reports whether c lies inside the field.
func (f Field) Contains(c Cell) bool {
	return c.Col >= 0 && c.Col < f.Cols && c.Row >= 0 && c.Row < f.Rows
}

// Center returns the middle cell.
func (f Field) Center() Cell {
	return Cell{Col: f.Cols / 2, Row: f.Rows / 2}
}

// Size returns the number of cells.
func (f Field) Size() int {
	return f.Cols * f.Rows
}

// Wrap maps a cell that left the field onto the opposite edge.
// Stages never call it: leaving the field restarts the stage instead.
func (f Field) Wrap(c Cell) Cell {
	switch {
	case c.Col < 0:
		c.Col = f.Cols - 1
	case c.Col >= f.Cols:
		c.Col = 0
	}
	switch {
	case c.Row < 0:
		c.Row = f.Rows - 1
	case c.Row >= f.Rows:
		c.Row = 0
	}
	return c
}
