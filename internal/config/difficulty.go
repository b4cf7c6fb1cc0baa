package config

import (
	"fmt"
	"strings"
)

// Difficulty selects number ranges and food counts.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists all difficulties in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty parses a difficulty name, case-insensitively.
// Single letters e/m/h are accepted as on the welcome screen.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "e":
		return Easy, nil
	case "medium", "m", "normal":
		return Medium, nil
	case "hard", "h":
		return Hard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// Title returns the display name.
func (d Difficulty) Title() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return string(d)
	}
}
