package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/rsa-snake/internal/numtheory"
)

// ErrInvalid is matched by every ValidationError.
var ErrInvalid = errors.New("config: invalid")

// ValidationError describes the first invalid setting found.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Message)
}

// Is makes errors.Is(err, ErrInvalid) hold.
func (e ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// minWordLen is the shortest word the encryption stage accepts.
const minWordLen = 5

// Validate checks that the configuration can produce solvable puzzles.
func (c Config) Validate() error {
	if c.Field.Cols < 4 || c.Field.Rows < 4 {
		return ValidationError{"field", fmt.Sprintf("grid %dx%d is smaller than 4x4", c.Field.Cols, c.Field.Rows)}
	}
	if c.Field.CellWidth < 1 {
		return ValidationError{"field.cell_width", "must be at least 1"}
	}
	if c.Timing.TickRate < 1 || c.Timing.MovesPerSecond < 1 {
		return ValidationError{"timing", "rates must be positive"}
	}
	if c.Exponent.SearchCap < 4 {
		return ValidationError{"exponent.search_cap", "must be at least 4"}
	}
	if c.Exponent.PoolSize < 1 {
		return ValidationError{"exponent.pool_size", "must be at least 1"}
	}
	if c.Exponent.DecoyBelow < 0 || c.Exponent.DecoyAbove < 0 || c.Decrypt.DecoySlack < 0 {
		return ValidationError{"decoys", "windows must not be negative"}
	}

	if err := validateVocabulary(c.Vocabulary); err != nil {
		return err
	}

	cells := c.Field.Cols * c.Field.Rows
	for _, d := range Difficulties() {
		dc, ok := c.Difficulties[d]
		if !ok {
			return ValidationError{"difficulties." + string(d), "missing"}
		}
		if err := validateDifficulty(d, dc, cells); err != nil {
			return err
		}
	}
	return nil
}

func validateVocabulary(words []string) error {
	usable := 0
	for _, w := range words {
		for _, r := range w {
			if r < 'A' || r > 'Z' {
				return ValidationError{"vocabulary", fmt.Sprintf("word %q must be upper-case A-Z", w)}
			}
		}
		if len(w) >= minWordLen {
			usable++
		}
	}
	if usable == 0 {
		return ValidationError{"vocabulary", fmt.Sprintf("needs a word of at least %d letters", minWordLen)}
	}
	return nil
}

func validateDifficulty(d Difficulty, dc DifficultyConfig, cells int) error {
	field := "difficulties." + string(d)
	if dc.Min >= dc.Max {
		return ValidationError{field, fmt.Sprintf("min %d must be below max %d", dc.Min, dc.Max)}
	}
	if dc.FoodCount < 2 {
		return ValidationError{field, "food_count must be at least 2"}
	}
	if dc.PoolSize < dc.FoodCount {
		return ValidationError{field, fmt.Sprintf("pool_size %d is smaller than food_count %d", dc.PoolSize, dc.FoodCount)}
	}
	if dc.PoolSize > dc.Max-dc.Min+1 {
		return ValidationError{field, "range holds fewer numbers than pool_size"}
	}
	if dc.FoodCount > 26 {
		return ValidationError{field, "food_count exceeds the 26 distinct letters"}
	}
	primes := numtheory.Primes(dc.Min, dc.Max)
	if len(primes) < 2 {
		return ValidationError{field, "range holds fewer than two primes"}
	}
	// Every letter code must stay below the smallest possible modulus.
	if primes[0]*primes[1] <= 'Z' {
		return ValidationError{field, fmt.Sprintf("smallest modulus %d cannot encode letters", primes[0]*primes[1])}
	}
	// Food plus a reasonably grown snake must fit.
	if dc.FoodCount*4 > cells {
		return ValidationError{field, "field too small for food_count"}
	}
	return nil
}
